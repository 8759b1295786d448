// Package transport provides DTOs for the demographics domain.
package transport

// SourceSynthetic marks the seeded municipal estimate.
const SourceSynthetic = "synthetic"

// Demographics is the seeded municipal estimate. Always populated.
type Demographics struct {
	Inwoners            int     `json:"inwoners"`
	GemiddeldeLeeftijd  float64 `json:"gemiddelde_leeftijd"`
	GemiddeldInkomen    int     `json:"gemiddeld_inkomen"`
	Bevolkingsdichtheid int     `json:"bevolkingsdichtheid"`
	KoopwoningenPct     float64 `json:"koopwoningen_pct"`
	Source              string  `json:"bron"`
}

// Neighbourhood holds CBS postcode-4 statistics. Nil pointers are values CBS
// suppressed or did not publish.
type Neighbourhood struct {
	Postcode4           string   `json:"postcode4"`
	DataYear            int      `json:"jaar"`
	AantalInwoners      *int     `json:"aantal_inwoners,omitempty"`
	AantalHuishoudens   *int     `json:"aantal_huishoudens,omitempty"`
	AantalWoningen      *int     `json:"aantal_woningen,omitempty"`
	GemiddeldeWOZWaarde *float64 `json:"gemiddelde_woz_waarde,omitempty"`
	KoopwoningenPct     *float64 `json:"koopwoningen_pct,omitempty"`
	HuurwoningenPct     *float64 `json:"huurwoningen_pct,omitempty"`
	GemiddeldInkomen    *float64 `json:"gemiddeld_inkomen_huishouden,omitempty"`
	Stedelijkheid       *int     `json:"stedelijkheid,omitempty"`
}
