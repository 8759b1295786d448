// Package client provides the HTTP client for the Kadaster BAG Individuele Bevragingen API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

const defaultBaseURL = "https://api.bag.kadaster.nl/lvbag/individuelebevragingen/v2"

// ErrNotFound is returned when the BAG has no object for the identifier.
var ErrNotFound = errors.New("bag object not found")

// Client is the HTTP client for the BAG API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	log        *logger.Logger
}

// New creates a new BAG client.
func New(apiKey string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		log:        log,
	}
}

// WithBaseURL points the client at another BAG host.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Object is the combined verblijfsobject and pand data for one address.
type Object struct {
	ID           string
	Bouwjaar     int
	Oppervlakte  int
	Gebruiksdoel string
	Status       string
}

type adresseerbaarObjectResponse struct {
	Verblijfsobject *struct {
		Verblijfsobject struct {
			Identificatie   string   `json:"identificatie"`
			Gebruiksdoelen  []string `json:"gebruiksdoelen"`
			Oppervlakte     int      `json:"oppervlakte"`
			Status          string   `json:"status"`
			MaaktDeelUitVan []string `json:"maaktDeelUitVan"`
		} `json:"verblijfsobject"`
	} `json:"verblijfsobject"`
}

type pandResponse struct {
	Pand struct {
		Identificatie          string `json:"identificatie"`
		OorspronkelijkBouwjaar string `json:"oorspronkelijkBouwjaar"`
		Status                 string `json:"status"`
	} `json:"pand"`
}

// GetObject fetches the verblijfsobject and the construction year of the pand it belongs to.
func (c *Client) GetObject(ctx context.Context, objectID string) (*Object, error) {
	var vbo adresseerbaarObjectResponse
	if err := c.get(ctx, "/adresseerbareobjecten/"+url.PathEscape(objectID), &vbo); err != nil {
		return nil, err
	}
	if vbo.Verblijfsobject == nil {
		return nil, fmt.Errorf("object %s is not a verblijfsobject: %w", objectID, ErrNotFound)
	}

	raw := vbo.Verblijfsobject.Verblijfsobject
	obj := &Object{
		ID:          raw.Identificatie,
		Oppervlakte: raw.Oppervlakte,
		Status:      raw.Status,
	}
	if len(raw.Gebruiksdoelen) > 0 {
		obj.Gebruiksdoel = strings.Join(raw.Gebruiksdoelen, ", ")
	}
	if len(raw.MaaktDeelUitVan) == 0 {
		return nil, fmt.Errorf("object %s has no pand", objectID)
	}

	var pand pandResponse
	if err := c.get(ctx, "/panden/"+url.PathEscape(raw.MaaktDeelUitVan[0]), &pand); err != nil {
		return nil, err
	}
	year, err := strconv.Atoi(pand.Pand.OorspronkelijkBouwjaar)
	if err != nil {
		return nil, fmt.Errorf("parse bouwjaar %q: %w", pand.Pand.OorspronkelijkBouwjaar, err)
	}
	obj.Bouwjaar = year

	return obj, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/hal+json")
	req.Header.Set("Accept-Crs", "epsg:28992")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("bag request failed", "path", path, "error", err)
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrNotFound
	default:
		c.log.Error("bag upstream error", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error("bag decode failed", "path", path, "error", err)
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
