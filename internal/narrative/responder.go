package narrative

import (
	"context"
	"fmt"
	"strings"

	locationtransport "github.com/Wim1201/locatie-informatie-v5/internal/location/transport"
	"github.com/Wim1201/locatie-informatie-v5/internal/narrative/transport"
	zoningtransport "github.com/Wim1201/locatie-informatie-v5/internal/zoning/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
	"github.com/Wim1201/locatie-informatie-v5/platform/metrics"
)

const (
	answerTitle        = "Antwoord op uw vraag"
	responderProvider  = "responder"
	zoningReferralHint = "Raadpleeg ruimtelijkeplannen.nl of het Omgevingsloket voor de volledige regels."
)

// zoningKeywords route a question to the templated zoning answer.
var zoningKeywords = []string{
	"bestemmingsplan",
	"bestemming",
	"omgevingsplan",
	"zonering",
	"bouwhoogte",
	"dubbelbestemming",
	"functieaanduiding",
	"bouwvlak",
}

// Responder answers follow-up questions. Zoning questions are answered from
// the zoning record without any model call; other questions try the second
// generator's primary chain, then the first's, then a template.
type Responder struct {
	chain []*Generator
	log   *logger.Logger
}

// NewResponder creates a responder trying first, then second.
func NewResponder(first, second *Generator, log *logger.Logger) *Responder {
	return &Responder{chain: []*Generator{first, second}, log: log}
}

// IsZoningQuestion reports whether question mentions a zoning keyword.
func IsZoningQuestion(question string) bool {
	lower := strings.ToLower(question)
	for _, kw := range zoningKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Answer never fails and always returns non-empty text.
func (r *Responder) Answer(ctx context.Context, question string, rec locationtransport.UnifiedRecord, address string) transport.Narrative {
	n := transport.Narrative{Title: answerTitle}

	if IsZoningQuestion(question) {
		n.Provider, n.Source = responderProvider, transport.SourceTemplate
		n.Text = zoningAnswer(rec.Zoning, rec.ZoningDetail, address)
		metrics.NarrativeSource(responderProvider, n.Source)
		return n
	}

	prompt := analysisPrompt(rec, question)
	for _, g := range r.chain {
		if g == nil {
			continue
		}
		if text, model, ok := g.tryPrimary(ctx, prompt); ok {
			n.Text, n.Model, n.Provider, n.Source = text, model, g.Provider(), transport.SourceModel
			metrics.NarrativeSource(g.Provider(), n.Source)
			return n
		}
	}

	n.Provider, n.Source = responderProvider, transport.SourceTemplate
	n.Text = templateAnswer(rec, address, question)
	metrics.NarrativeSource(responderProvider, n.Source)
	return n
}

// zoningAnswer describes the plan from its detail, or generically when the
// detail has no sections.
func zoningAnswer(plan zoningtransport.Plan, detail *zoningtransport.Detail, address string) string {
	if !plan.Found {
		return fmt.Sprintf("Voor %s is geen bestemmingsplan gevonden (%s). %s", address, orUnknown(plan.Marker), zoningReferralHint)
	}
	if !detail.HasSections() {
		return fmt.Sprintf("Voor %s geldt bestemmingsplan %s (status: %s). Gedetailleerde bestemmingsgegevens zijn niet beschikbaar. %s",
			address, orUnknown(plan.Name), orUnknown(plan.Status), zoningReferralHint)
	}

	var sb strings.Builder
	name, status, authority := plan.Name, plan.Status, plan.Authority
	if m := detail.Metadata; m != nil {
		name, status, authority = pick(m.Name, name), pick(m.Status, status), pick(m.Authority, authority)
	}
	fmt.Fprintf(&sb, "Voor %s geldt bestemmingsplan %s (status: %s", address, orUnknown(name), orUnknown(status))
	if authority != "" {
		fmt.Fprintf(&sb, ", vastgesteld door %s", authority)
	}
	sb.WriteString(").")

	if d := detail.Designation; d != nil {
		if d.Primary != "" {
			fmt.Fprintf(&sb, " Enkelbestemming: %s.", d.Primary)
		}
		writeList(&sb, "Dubbelbestemmingen", d.Double)
		writeList(&sb, "Functieaanduidingen", d.FunctionMarkers)
		writeList(&sb, "Bouwaanduidingen", d.BuildingMarkers)
		if len(d.Measurements) > 0 {
			parts := make([]string, 0, len(d.Measurements))
			for _, m := range d.Measurements {
				parts = append(parts, m.Name+": "+m.Value)
			}
			writeList(&sb, "Maatvoeringen", parts)
		}
	}

	if len(detail.Documents) > 0 {
		titles := make([]string, 0, len(detail.Documents))
		for _, doc := range detail.Documents {
			titles = append(titles, orUnknown(doc.Title))
		}
		writeList(&sb, "Documenten", titles)
	}

	sb.WriteString(" ")
	sb.WriteString(zoningReferralHint)
	return sb.String()
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, " %s: %s.", label, strings.Join(items, ", "))
}

func pick(preferred, fallback string) string {
	if preferred != "" {
		return preferred
	}
	return fallback
}
