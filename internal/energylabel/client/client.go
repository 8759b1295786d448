// Package client provides the HTTP client for EP-Online energy label API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Wim1201/locatie-informatie-v5/internal/energylabel/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

const (
	defaultBaseURL = "https://public.ep-online.nl"
	apiVersion     = "v5"
)

// Client is the HTTP client for EP-Online API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	log        *logger.Logger
}

// New creates a new EP-Online API client.
func New(apiKey string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		log:        log,
	}
}

// WithBaseURL points the client at another EP-Online host.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// GetByAddress fetches energy labels by address.
func (c *Client) GetByAddress(ctx context.Context, key transport.AddressKey) ([]transport.EnergyLabel, error) {
	params := url.Values{}
	params.Set("postcode", strings.ReplaceAll(key.Postcode, " ", ""))
	params.Set("huisnummer", key.Huisnummer)
	if key.Huisletter != "" {
		params.Set("huisletter", key.Huisletter)
	}
	if key.Huisnummertoevoeging != "" {
		params.Set("huisnummertoevoeging", key.Huisnummertoevoeging)
	}

	reqURL := fmt.Sprintf("%s/api/%s/PandEnergielabel/Adres?%s", c.baseURL, apiVersion, params.Encode())
	return c.doRequest(ctx, reqURL)
}

// GetByBAGObjectID fetches energy labels by BAG adresseerbaar object ID.
func (c *Client) GetByBAGObjectID(ctx context.Context, objectID string) ([]transport.EnergyLabel, error) {
	reqURL := fmt.Sprintf("%s/api/%s/PandEnergielabel/AdresseerbaarObject/%s", c.baseURL, apiVersion, url.PathEscape(objectID))
	return c.doRequest(ctx, reqURL)
}

func (c *Client) doRequest(ctx context.Context, reqURL string) ([]transport.EnergyLabel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("ep-online request failed", "error", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		// No label registered for this object
		return nil, nil
	case http.StatusUnauthorized:
		c.log.Error("ep-online unauthorized", "status", resp.StatusCode)
		return nil, fmt.Errorf("unauthorized: invalid API key")
	default:
		c.log.Error("ep-online upstream error", "status", resp.StatusCode)
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var apiLabels []apiEnergyLabel
	if err := json.NewDecoder(resp.Body).Decode(&apiLabels); err != nil {
		c.log.Error("ep-online decode failed", "error", err)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	labels := make([]transport.EnergyLabel, 0, len(apiLabels))
	for _, api := range apiLabels {
		labels = append(labels, api.toTransport())
	}

	return labels, nil
}

// apiEnergyLabel is the subset of PandEnergielabelV5 the building record uses.
type apiEnergyLabel struct {
	Registratiedatum     *time.Time `json:"Registratiedatum"`
	GeldigTot            *time.Time `json:"Geldig_tot"`
	Status               *string    `json:"Status"`
	Gebouwtype           *string    `json:"Gebouwtype"`
	BAGVerblijfsobjectID *string    `json:"BAGVerblijfsobjectID"`
	Bouwjaar             int        `json:"Bouwjaar"`
	Energieklasse        *string    `json:"Energieklasse"`
	EnergieIndex         *float64   `json:"EnergieIndex"`
}

func (a *apiEnergyLabel) toTransport() transport.EnergyLabel {
	return transport.EnergyLabel{
		Energieklasse:        deref(a.Energieklasse),
		EnergieIndex:         a.EnergieIndex,
		Registratiedatum:     a.Registratiedatum,
		GeldigTot:            a.GeldigTot,
		Gebouwtype:           deref(a.Gebouwtype),
		Bouwjaar:             a.Bouwjaar,
		BAGVerblijfsobjectID: deref(a.BAGVerblijfsobjectID),
		Status:               deref(a.Status),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
