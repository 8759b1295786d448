// Package transport provides DTOs for the location analysis endpoint.
package transport

import (
	addresstransport "github.com/Wim1201/locatie-informatie-v5/internal/address/transport"
	buildingtransport "github.com/Wim1201/locatie-informatie-v5/internal/building/transport"
	demotransport "github.com/Wim1201/locatie-informatie-v5/internal/demographics/transport"
	narrativetransport "github.com/Wim1201/locatie-informatie-v5/internal/narrative/transport"
	zoningtransport "github.com/Wim1201/locatie-informatie-v5/internal/zoning/transport"
)

// AnalyzeRequest is the inbound address query.
type AnalyzeRequest struct {
	Address  string `json:"adres" form:"adres" validate:"required,min=3,max=200"`
	Question string `json:"vraag" form:"vraag" validate:"max=1000"`
}

// UnifiedRecord is the merged provider output and the sole input to narrative
// generation. Every key is always present; absent sections are null or carry
// a marker.
type UnifiedRecord struct {
	Address       addresstransport.Location    `json:"adres"`
	Building      buildingtransport.Building   `json:"pand"`
	Zoning        zoningtransport.Plan         `json:"bestemmingsplan"`
	ZoningDetail  *zoningtransport.Detail      `json:"bestemmingsplan_detail"`
	Demographics  demotransport.Demographics   `json:"demografie"`
	Neighbourhood *demotransport.Neighbourhood `json:"buurt"`
}

// Result is the analysis response.
type Result struct {
	Query     string                        `json:"adres"`
	Question  string                        `json:"vraag,omitempty"`
	Record    UnifiedRecord                 `json:"gegevens"`
	ProviderA narrativetransport.Narrative  `json:"openai_toelichting"`
	ProviderB narrativetransport.Narrative  `json:"anthropic_toelichting"`
	Combined  narrativetransport.Narrative  `json:"samenvatting"`
	Answer    *narrativetransport.Narrative `json:"antwoord,omitempty"`
}

// DisplayAddress is the resolved label, or the street line when the label is missing.
func (r UnifiedRecord) DisplayAddress() string {
	if r.Address.Label != "" {
		return r.Address.Label
	}
	return r.Address.StreetLine()
}
