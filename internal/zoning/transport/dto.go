// Package transport provides DTOs for the zoning plan domain.
package transport

// MarkerNoPlan is the explicit absence marker for a location without a plan.
const MarkerNoPlan = "geen bestemmingsplan gevonden"

// Plan is the zoning plan governing the location. When Found is false the
// other fields are empty and Marker explains why.
type Plan struct {
	Found      bool   `json:"gevonden"`
	ID         string `json:"id,omitempty"`
	Name       string `json:"naam,omitempty"`
	Type       string `json:"type,omitempty"`
	Status     string `json:"status,omitempty"`
	StatusDate string `json:"status_datum,omitempty"`
	Function   string `json:"functie,omitempty"`
	MaxHeight  string `json:"bouwhoogte,omitempty"`
	Authority  string `json:"overheid,omitempty"`
	Marker     string `json:"melding,omitempty"`
}

// Detail is the point-specific elaboration of a plan. A section that could
// not be fetched is nil (or empty) rather than an error.
type Detail struct {
	PlanID      string       `json:"plan_id"`
	Metadata    *Metadata    `json:"plan,omitempty"`
	Designation *Designation `json:"bestemming,omitempty"`
	Documents   []Document   `json:"documenten,omitempty"`
}

// Metadata is the plan-level description.
type Metadata struct {
	Name       string `json:"naam"`
	Type       string `json:"type,omitempty"`
	Status     string `json:"status,omitempty"`
	StatusDate string `json:"status_datum,omitempty"`
	Authority  string `json:"overheid,omitempty"`
}

// Designation collects what the plan allows at the exact point.
type Designation struct {
	Primary         string        `json:"enkelbestemming,omitempty"`
	Double          []string      `json:"dubbelbestemmingen,omitempty"`
	FunctionMarkers []string      `json:"functieaanduidingen,omitempty"`
	BuildingMarkers []string      `json:"bouwaanduidingen,omitempty"`
	Measurements    []Measurement `json:"maatvoeringen,omitempty"`
}

// Measurement is a named dimension such as "maximum bouwhoogte (m)".
type Measurement struct {
	Name  string `json:"naam"`
	Value string `json:"waarde"`
}

// Document is a related plan text.
type Document struct {
	ID    string `json:"id"`
	Title string `json:"titel"`
	URL   string `json:"url,omitempty"`
}

// HasSections reports whether any detail section was fetched.
func (d *Detail) HasSections() bool {
	return d != nil && (d.Metadata != nil || d.Designation != nil || len(d.Documents) > 0)
}
