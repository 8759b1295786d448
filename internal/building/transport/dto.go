// Package transport provides DTOs for the building registry domain.
package transport

const (
	// SourceBAG marks a record read from the Kadaster BAG.
	SourceBAG = "bag"
	// SourceSynthetic marks a seeded estimate used when the BAG could not answer.
	SourceSynthetic = "synthetic"
)

// Building is the registry view of the addressable object. Always populated.
type Building struct {
	ObjectID     string `json:"adresseerbaarobject_id,omitempty"`
	Bouwjaar     int    `json:"bouwjaar"`
	Oppervlakte  int    `json:"oppervlakte"`
	Gebruiksdoel string `json:"gebruiksdoel"`
	Status       string `json:"status"`
	Energielabel string `json:"energielabel,omitempty"`
	Source       string `json:"bron"`
}

// Synthetic reports whether the record is a seeded estimate.
func (b Building) Synthetic() bool {
	return b.Source == SourceSynthetic
}
