// Package client provides the HTTP client for the Ruimtelijke Plannen Opvragen API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Wim1201/locatie-informatie-v5/internal/zoning/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const (
	defaultBaseURL = "https://ruimte.omgevingswet.overheid.nl/ruimtelijke-plannen/api/opvragen/v4"
	// ETRS89 lon/lat, interchangeable with WGS84 at this precision.
	contentCRS = "epsg:4258"
)

// Client is the HTTP client for the Ruimtelijke Plannen API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	log        *logger.Logger
}

// New creates a new Ruimtelijke Plannen client.
func New(apiKey string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		log:        log,
	}
}

// WithBaseURL points the client at another Ruimtelijke Plannen host.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// PlanSummary is one hit of a plan search.
type PlanSummary struct {
	ID       string
	Metadata transport.Metadata
}

type apiPlan struct {
	ID             string `json:"id"`
	Naam           string `json:"naam"`
	Type           string `json:"type"`
	PlanstatusInfo struct {
		Planstatus string `json:"planstatus"`
		Datum      string `json:"datum"`
	} `json:"planstatusInfo"`
	Overheid struct {
		Naam string `json:"naam"`
	} `json:"beleidsmatigVerantwoordelijkeOverheid"`
}

func (p apiPlan) toMetadata() transport.Metadata {
	return transport.Metadata{
		Name:       p.Naam,
		Type:       p.Type,
		Status:     p.PlanstatusInfo.Planstatus,
		StatusDate: p.PlanstatusInfo.Datum,
		Authority:  p.Overheid.Naam,
	}
}

type namedObject struct {
	Naam string `json:"naam"`
}

type apiMaatvoering struct {
	Naam   string `json:"naam"`
	Omvang []struct {
		Naam   string `json:"naam"`
		Waarde string `json:"waarde"`
	} `json:"omvang"`
}

type apiBestemmingsvlak struct {
	Naam     string `json:"naam"`
	Type     string `json:"type"`
	Embedded struct {
		Functieaanduidingen []namedObject    `json:"functieaanduidingen"`
		Bouwaanduidingen    []namedObject    `json:"bouwaanduidingen"`
		Maatvoeringen       []apiMaatvoering `json:"maatvoeringen"`
	} `json:"_embedded"`
}

type geoQuery struct {
	Geo struct {
		Intersects *geojson.Geometry `json:"intersects"`
	} `json:"_geo"`
}

// SearchPlans returns at most limit plans intersecting area, in provider order.
func (c *Client) SearchPlans(ctx context.Context, area orb.Polygon, limit int) ([]PlanSummary, error) {
	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(limit))

	var payload struct {
		Embedded struct {
			Plannen []apiPlan `json:"plannen"`
		} `json:"_embedded"`
	}
	if err := c.post(ctx, "/plannen/_zoek", params, area, &payload); err != nil {
		return nil, err
	}

	plans := make([]PlanSummary, 0, len(payload.Embedded.Plannen))
	for _, p := range payload.Embedded.Plannen {
		plans = append(plans, PlanSummary{ID: p.ID, Metadata: p.toMetadata()})
	}
	return plans, nil
}

// GetPlan fetches the plan metadata.
func (c *Client) GetPlan(ctx context.Context, planID string) (*transport.Metadata, error) {
	var plan apiPlan
	if err := c.do(ctx, http.MethodGet, "/plannen/"+url.PathEscape(planID), nil, nil, &plan); err != nil {
		return nil, err
	}
	meta := plan.toMetadata()
	return &meta, nil
}

// Designation fetches the land-use designations of the plan at point.
func (c *Client) Designation(ctx context.Context, planID string, point orb.Point) (*transport.Designation, error) {
	params := url.Values{}
	params.Set("expand", "functieaanduidingen,bouwaanduidingen,maatvoeringen")

	var payload struct {
		Embedded struct {
			Bestemmingsvlakken []apiBestemmingsvlak `json:"bestemmingsvlakken"`
		} `json:"_embedded"`
	}
	path := "/plannen/" + url.PathEscape(planID) + "/bestemmingsvlakken/_zoek"
	if err := c.post(ctx, path, params, point, &payload); err != nil {
		return nil, err
	}

	designation := &transport.Designation{}
	for _, vlak := range payload.Embedded.Bestemmingsvlakken {
		if strings.EqualFold(vlak.Type, "dubbelbestemming") {
			designation.Double = append(designation.Double, vlak.Naam)
		} else if designation.Primary == "" {
			designation.Primary = vlak.Naam
		}
		for _, f := range vlak.Embedded.Functieaanduidingen {
			designation.FunctionMarkers = append(designation.FunctionMarkers, f.Naam)
		}
		for _, b := range vlak.Embedded.Bouwaanduidingen {
			designation.BuildingMarkers = append(designation.BuildingMarkers, b.Naam)
		}
		for _, m := range vlak.Embedded.Maatvoeringen {
			for _, o := range m.Omvang {
				designation.Measurements = append(designation.Measurements, transport.Measurement{Name: o.Naam, Value: o.Waarde})
			}
		}
	}
	return designation, nil
}

// Documents returns at most limit plan texts.
func (c *Client) Documents(ctx context.Context, planID string, limit int) ([]transport.Document, error) {
	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(limit))

	var payload struct {
		Embedded struct {
			Teksten []struct {
				ID    string `json:"id"`
				Titel string `json:"titel"`
				Links struct {
					Self struct {
						Href string `json:"href"`
					} `json:"self"`
				} `json:"_links"`
			} `json:"teksten"`
		} `json:"_embedded"`
	}
	if err := c.do(ctx, http.MethodGet, "/plannen/"+url.PathEscape(planID)+"/teksten", params, nil, &payload); err != nil {
		return nil, err
	}

	docs := make([]transport.Document, 0, len(payload.Embedded.Teksten))
	for _, t := range payload.Embedded.Teksten {
		if len(docs) == limit {
			break
		}
		docs = append(docs, transport.Document{ID: t.ID, Title: t.Titel, URL: t.Links.Self.Href})
	}
	return docs, nil
}

func (c *Client) post(ctx context.Context, path string, params url.Values, geometry orb.Geometry, out any) error {
	var query geoQuery
	query.Geo.Intersects = geojson.NewGeometry(geometry)

	body, err := json.Marshal(query)
	if err != nil {
		return fmt.Errorf("encode geo query: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, params, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body []byte, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/hal+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Content-Crs", contentCRS)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("ruimtelijke plannen request failed", "path", path, "error", err)
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("ruimtelijke plannen upstream error", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error("ruimtelijke plannen decode failed", "path", path, "error", err)
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
