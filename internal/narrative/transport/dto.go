// Package transport provides DTOs for generated narratives.
package transport

// Source values name the stage of the fallback chain that produced a narrative.
const (
	SourceModel     = "model"
	SourceDirect    = "direct"
	SourceTemplate  = "template"
	SourceSynthesis = "synthese"
)

// Narrative is a titled text produced per request and never persisted.
type Narrative struct {
	Title    string `json:"titel"`
	Text     string `json:"tekst"`
	Provider string `json:"provider,omitempty"`
	Source   string `json:"bron"`
	Model    string `json:"model,omitempty"`
}

// Empty reports whether the narrative carries no text.
func (n Narrative) Empty() bool {
	return n.Text == ""
}
