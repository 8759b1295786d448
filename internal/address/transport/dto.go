// Package transport provides DTOs for the address domain.
package transport

import "github.com/Wim1201/locatie-informatie-v5/internal/geometry"

// Location is the resolved address for a free-text query.
// Produced once per request and read-only afterwards.
type Location struct {
	Label               string               `json:"weergavenaam"`
	Street              string               `json:"straat"`
	HouseNumber         string               `json:"huisnummer"`
	HouseLetter         string               `json:"huisletter,omitempty"`
	HouseNumberAddition string               `json:"huisnummertoevoeging,omitempty"`
	Postcode            string               `json:"postcode"`
	City                string               `json:"plaats"`
	Municipality        string               `json:"gemeente"`
	Province            string               `json:"provincie"`
	Geometry            string               `json:"geometrie"`
	Coordinates         geometry.Coordinates `json:"coordinaten"`
	AddressableObjectID string               `json:"adresseerbaarobject_id,omitempty"`
	NumberDesignationID string               `json:"nummeraanduiding_id,omitempty"`
	NeighbourhoodCode   string               `json:"buurtcode,omitempty"`
}

// StreetLine returns "Straat 12A-1" for display and prompts.
func (l Location) StreetLine() string {
	line := l.Street
	if l.HouseNumber != "" {
		line += " " + l.HouseNumber + l.HouseLetter
		if l.HouseNumberAddition != "" {
			line += "-" + l.HouseNumberAddition
		}
	}
	return line
}

// Postcode4 returns the numeric part of the postcode, or "" when unknown.
func (l Location) Postcode4() string {
	if len(l.Postcode) < 4 {
		return ""
	}
	return l.Postcode[:4]
}

// SuggestRequest represents the autocomplete query parameters.
type SuggestRequest struct {
	Query string `form:"q" binding:"required,min=3,max=200"`
}

// Suggestion is a single autocomplete entry.
type Suggestion struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
