// Package client provides the HTTP client for PDOK CBS postcode-4 statistics.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Wim1201/locatie-informatie-v5/internal/demographics/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

const (
	defaultPC4Endpoint    = "https://api.pdok.nl/cbs/postcode4/ogc/v1/collections/postcode4/items"
	blockedValueThreshold = -99990 // CBS uses -99995, -99997, etc. for privacy-suppressed data
)

// dataYears are tried newest first; older years fill suppressed fields.
var dataYears = []int{2024, 2023, 2022}

// FlexNumber handles JSON values that can be either string or number.
type FlexNumber float64

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexNumber(num)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str == "" {
			*f = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return err
		}
		*f = FlexNumber(parsed)
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into FlexNumber", string(data))
}

func (f *FlexNumber) blocked() bool {
	return f == nil || float64(*f) <= blockedValueThreshold
}

// floatPtr returns the value, or nil when missing or suppressed.
func (f *FlexNumber) floatPtr() *float64 {
	if f.blocked() {
		return nil
	}
	val := float64(*f)
	return &val
}

func (f *FlexNumber) intPtr() *int {
	if f.blocked() {
		return nil
	}
	val := int(*f)
	return &val
}

type pc4Properties struct {
	AantalInwoners     *FlexNumber `json:"aantal_inwoners"`
	AantalHuishoudens  *FlexNumber `json:"aantal_part_huishoudens"`
	AantalWoningen     *FlexNumber `json:"aantal_woningen"`
	GemiddeldWOZWaarde *FlexNumber `json:"gemiddelde_woz_waarde_woning"`
	KoopwoningenPct    *FlexNumber `json:"percentage_koopwoningen"`
	HuurwoningenPct    *FlexNumber `json:"percentage_huurwoningen"`
	GemiddeldInkomen   *FlexNumber `json:"gemiddeld_inkomen_huishouden"`
	Stedelijkheid      *FlexNumber `json:"stedelijkheid"`
}

type pc4Response struct {
	Features []struct {
		Properties pc4Properties `json:"properties"`
	} `json:"features"`
}

// Client handles PDOK CBS requests.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        *logger.Logger
}

// New creates a new PDOK CBS client.
func New(timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		endpoint:   defaultPC4Endpoint,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// WithEndpoint points the client at another postcode-4 items endpoint.
func (c *Client) WithEndpoint(endpoint string) *Client {
	c.endpoint = strings.TrimRight(endpoint, "/")
	return c
}

// GetPC4 fetches postcode-4 statistics, merging the published years so that
// each field holds the newest non-suppressed value. Returns nil when no year
// has data for the postcode.
func (c *Client) GetPC4(ctx context.Context, postcode4 string) (*transport.Neighbourhood, error) {
	var (
		years   []*pc4Properties
		primary int
		lastErr error
	)
	for _, year := range dataYears {
		props, err := c.fetchYear(ctx, postcode4, year)
		if err != nil {
			c.log.Debug("pc4 fetch failed", "postcode4", postcode4, "year", year, "error", err)
			lastErr = err
			continue
		}
		if props == nil {
			continue
		}
		years = append(years, props)
		if primary == 0 {
			primary = year
		}
	}

	if len(years) == 0 {
		return nil, lastErr
	}

	merged := merge(years)
	return &transport.Neighbourhood{
		Postcode4:           postcode4,
		DataYear:            primary,
		AantalInwoners:      merged.AantalInwoners.intPtr(),
		AantalHuishoudens:   merged.AantalHuishoudens.intPtr(),
		AantalWoningen:      merged.AantalWoningen.intPtr(),
		GemiddeldeWOZWaarde: merged.GemiddeldWOZWaarde.floatPtr(),
		KoopwoningenPct:     merged.KoopwoningenPct.floatPtr(),
		HuurwoningenPct:     merged.HuurwoningenPct.floatPtr(),
		GemiddeldInkomen:    merged.GemiddeldInkomen.floatPtr(),
		Stedelijkheid:       merged.Stedelijkheid.intPtr(),
	}, nil
}

// merge expects years newest first.
func merge(years []*pc4Properties) pc4Properties {
	result := *years[0]
	for _, older := range years[1:] {
		fillIfBlocked(&result.AantalInwoners, older.AantalInwoners)
		fillIfBlocked(&result.AantalHuishoudens, older.AantalHuishoudens)
		fillIfBlocked(&result.AantalWoningen, older.AantalWoningen)
		fillIfBlocked(&result.GemiddeldWOZWaarde, older.GemiddeldWOZWaarde)
		fillIfBlocked(&result.KoopwoningenPct, older.KoopwoningenPct)
		fillIfBlocked(&result.HuurwoningenPct, older.HuurwoningenPct)
		fillIfBlocked(&result.GemiddeldInkomen, older.GemiddeldInkomen)
		fillIfBlocked(&result.Stedelijkheid, older.Stedelijkheid)
	}
	return result
}

func fillIfBlocked(dst **FlexNumber, src *FlexNumber) {
	if (*dst).blocked() && !src.blocked() {
		*dst = src
	}
}

func (c *Client) fetchYear(ctx context.Context, postcode4 string, year int) (*pc4Properties, error) {
	params := url.Values{}
	params.Set("f", "json")
	params.Set("postcode", postcode4)
	params.Set("jaarcode", strconv.Itoa(year))
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s?%s", c.endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("pdok pc4 request failed", "error", err)
		return nil, fmt.Errorf("pdok pc4 request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("pdok pc4 request error", "status", resp.StatusCode)
		return nil, fmt.Errorf("pdok pc4 status %d", resp.StatusCode)
	}

	var payload pc4Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("pdok pc4 decode failed", "error", err)
		return nil, fmt.Errorf("decode pdok pc4 response: %w", err)
	}

	if len(payload.Features) == 0 {
		return nil, nil
	}
	return &payload.Features[0].Properties, nil
}
