// Package client provides the HTTP client for the PDOK Locatieserver.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Wim1201/locatie-informatie-v5/internal/address/transport"
	"github.com/Wim1201/locatie-informatie-v5/internal/geometry"
	"github.com/Wim1201/locatie-informatie-v5/platform/config"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

const (
	defaultBaseURL = "https://api.pdok.nl/bzk/locatieserver/search/v3_1"
	addressFilter  = "type:adres"
	suggestLimit   = 5
	searchFields   = "weergavenaam,straatnaam,huisnummer,huisletter,huisnummertoevoeging,postcode," +
		"woonplaatsnaam,gemeentenaam,provincienaam,centroide_ll,adresseerbaarobject_id," +
		"nummeraanduiding_id,buurtcode"
)

// Client handles Locatieserver requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// New creates a new Locatieserver client.
func New(cfg config.AddressConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: cfg.GetUpstreamTimeout()},
		log:        log,
	}
}

// WithBaseURL points the client at another Locatieserver deployment.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type searchDoc struct {
	Weergavenaam         string `json:"weergavenaam"`
	Straatnaam           string `json:"straatnaam"`
	Huisnummer           int    `json:"huisnummer"`
	Huisletter           string `json:"huisletter"`
	Huisnummertoevoeging string `json:"huisnummertoevoeging"`
	Postcode             string `json:"postcode"`
	Woonplaatsnaam       string `json:"woonplaatsnaam"`
	Gemeentenaam         string `json:"gemeentenaam"`
	Provincienaam        string `json:"provincienaam"`
	CentroideLL          string `json:"centroide_ll"`
	AdresseerbaarObject  string `json:"adresseerbaarobject_id"`
	Nummeraanduiding     string `json:"nummeraanduiding_id"`
	Buurtcode            string `json:"buurtcode"`
}

type searchResponse struct {
	Response struct {
		NumFound int         `json:"numFound"`
		Docs     []searchDoc `json:"docs"`
	} `json:"response"`
}

type suggestResponse struct {
	Response struct {
		Docs []struct {
			ID           string  `json:"id"`
			Weergavenaam string  `json:"weergavenaam"`
			Score        float64 `json:"score"`
		} `json:"docs"`
	} `json:"response"`
}

// Search returns the best address match for a free-text query, or nil when
// the Locatieserver has no address-type result for it.
func (c *Client) Search(ctx context.Context, query string) (*transport.Location, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("fq", addressFilter)
	params.Set("rows", "1")
	params.Set("fl", searchFields)

	var payload searchResponse
	if err := c.get(ctx, "/free", params, &payload); err != nil {
		return nil, err
	}

	if len(payload.Response.Docs) == 0 {
		return nil, nil
	}

	loc := toLocation(payload.Response.Docs[0])
	return &loc, nil
}

// Suggest returns autocomplete candidates for a partial address.
func (c *Client) Suggest(ctx context.Context, query string) ([]transport.Suggestion, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("fq", addressFilter)
	params.Set("rows", strconv.Itoa(suggestLimit))

	var payload suggestResponse
	if err := c.get(ctx, "/suggest", params, &payload); err != nil {
		return nil, err
	}

	suggestions := make([]transport.Suggestion, 0, len(payload.Response.Docs))
	for _, doc := range payload.Response.Docs {
		if doc.Weergavenaam == "" {
			continue
		}
		suggestions = append(suggestions, transport.Suggestion{
			ID:    doc.ID,
			Label: doc.Weergavenaam,
			Score: doc.Score,
		})
	}

	return suggestions, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("pdok locatieserver request failed", "path", path, "error", err)
		return fmt.Errorf("pdok locatieserver request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("pdok locatieserver upstream error", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("pdok locatieserver status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error("pdok locatieserver decode failed", "path", path, "error", err)
		return fmt.Errorf("decode pdok locatieserver response: %w", err)
	}

	return nil
}

func toLocation(doc searchDoc) transport.Location {
	loc := transport.Location{
		Label:               doc.Weergavenaam,
		Street:              doc.Straatnaam,
		HouseLetter:         doc.Huisletter,
		HouseNumberAddition: doc.Huisnummertoevoeging,
		Postcode:            doc.Postcode,
		City:                doc.Woonplaatsnaam,
		Municipality:        doc.Gemeentenaam,
		Province:            doc.Provincienaam,
		Geometry:            doc.CentroideLL,
		Coordinates:         geometry.Parse(doc.CentroideLL),
		AddressableObjectID: doc.AdresseerbaarObject,
		NumberDesignationID: doc.Nummeraanduiding,
		NeighbourhoodCode:   doc.Buurtcode,
	}
	if doc.Huisnummer > 0 {
		loc.HouseNumber = strconv.Itoa(doc.Huisnummer)
	}
	return loc
}
