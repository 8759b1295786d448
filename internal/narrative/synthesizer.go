package narrative

import (
	"fmt"
	"strings"

	locationtransport "github.com/Wim1201/locatie-informatie-v5/internal/location/transport"
	"github.com/Wim1201/locatie-informatie-v5/internal/narrative/transport"
)

const (
	excerptRunes  = 150
	combinedTitle = "Gecombineerde analyse"

	closingInvestment = "Beide analyses zien aanknopingspunten voor een investering; laat de cijfers wel verifiëren door een taxateur."
	closingGeneral    = "Combineer beide analyses met een bezichtiging en lokaal advies voordat u een beslissing neemt."
)

var investmentKeywords = []string{"investering", "investment"}

// Synthesize merges the two provider analyses. Both empty yields an explicit
// could-not-generate message; exactly one empty passes the other through
// verbatim; otherwise both are excerpted under their titles with a closing
// sentence chosen from a's text.
func Synthesize(a, b transport.Narrative, rec locationtransport.UnifiedRecord, address string) transport.Narrative {
	n := transport.Narrative{Title: combinedTitle, Source: transport.SourceSynthesis}
	if city := rec.Address.City; city != "" {
		n.Title = combinedTitle + " " + city
	}

	switch {
	case a.Empty() && b.Empty():
		n.Text = fmt.Sprintf("Er kon geen analyse worden gegenereerd voor %s.", address)
	case a.Empty():
		n.Text = b.Text
	case b.Empty():
		n.Text = a.Text
	default:
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s:\n%s\n\n", a.Title, excerpt(a.Text))
		fmt.Fprintf(&sb, "%s:\n%s\n\n", b.Title, excerpt(b.Text))
		sb.WriteString(closing(a.Text))
		n.Text = sb.String()
	}
	return n
}

func excerpt(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= excerptRunes {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:excerptRunes])) + "..."
}

func closing(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range investmentKeywords {
		if strings.Contains(lower, kw) {
			return closingInvestment
		}
	}
	return closingGeneral
}
