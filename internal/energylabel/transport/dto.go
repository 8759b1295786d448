// Package transport provides DTOs for the energy label domain.
package transport

import "time"

// EnergyLabel is the registered energy label of an addressable object.
type EnergyLabel struct {
	Energieklasse        string     `json:"energieklasse"` // A++++ .. G
	EnergieIndex         *float64   `json:"energie_index,omitempty"`
	Registratiedatum     *time.Time `json:"registratiedatum,omitempty"`
	GeldigTot            *time.Time `json:"geldig_tot,omitempty"`
	Gebouwtype           string     `json:"gebouwtype,omitempty"`
	Bouwjaar             int        `json:"bouwjaar,omitempty"`
	BAGVerblijfsobjectID string     `json:"bag_verblijfsobject_id,omitempty"`
	Status               string     `json:"status,omitempty"`
}

// AddressKey identifies a dwelling by postcode and house number.
type AddressKey struct {
	Postcode             string
	Huisnummer           string
	Huisletter           string
	Huisnummertoevoeging string
}
