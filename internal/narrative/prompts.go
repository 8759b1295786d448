package narrative

import (
	"fmt"
	"strconv"
	"strings"

	locationtransport "github.com/Wim1201/locatie-informatie-v5/internal/location/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/sanitize"
)

const (
	unknown          = "onbekend"
	maxQuestionRunes = 1000
)

// Instruction is the system prompt shared by both providers.
const Instruction = "Je bent een ervaren vastgoedanalist. Je schrijft in helder Nederlands voor een lezer zonder " +
	"vakkennis en gebruikt uitsluitend de aangeleverde gegevens. Noem geschatte waarden als schatting."

// fields is the flattened view of a unified record used by prompts and
// templates. Missing values read "onbekend".
type fields struct {
	Straat       string
	Postcode     string
	Plaats       string
	Gemeente     string
	Provincie    string
	Bouwjaar     string
	Oppervlakte  string
	Gebruiksdoel string
	Status       string
	Energielabel string
	Geschat      bool
	Inwoners     string
	Inkomen      string
	Leeftijd     string
	Koopwoningen string
	PlanNaam     string
	Functie      string
	Bouwhoogte   string
	PlanStatus   string
	PlanMelding  string
}

func extract(rec locationtransport.UnifiedRecord) fields {
	f := fields{
		Straat:       orUnknown(rec.Address.StreetLine()),
		Postcode:     orUnknown(rec.Address.Postcode),
		Plaats:       orUnknown(rec.Address.City),
		Gemeente:     orUnknown(rec.Address.Municipality),
		Provincie:    orUnknown(rec.Address.Province),
		Bouwjaar:     intOrUnknown(rec.Building.Bouwjaar),
		Oppervlakte:  intOrUnknown(rec.Building.Oppervlakte),
		Gebruiksdoel: orUnknown(rec.Building.Gebruiksdoel),
		Status:       orUnknown(rec.Building.Status),
		Energielabel: orUnknown(rec.Building.Energielabel),
		Geschat:      rec.Building.Synthetic(),
		Inwoners:     intOrUnknown(rec.Demographics.Inwoners),
		Inkomen:      intOrUnknown(rec.Demographics.GemiddeldInkomen),
		Leeftijd:     floatOrUnknown(rec.Demographics.GemiddeldeLeeftijd),
		Koopwoningen: floatOrUnknown(rec.Demographics.KoopwoningenPct),
		PlanNaam:     orUnknown(rec.Zoning.Name),
		Functie:      orUnknown(rec.Zoning.Function),
		Bouwhoogte:   orUnknown(rec.Zoning.MaxHeight),
		PlanStatus:   orUnknown(rec.Zoning.Status),
	}
	if !rec.Zoning.Found {
		f.PlanMelding = orUnknown(rec.Zoning.Marker)
	}
	return f
}

// analysisPrompt builds the location analysis prompt. A non-empty question is appended.
func analysisPrompt(rec locationtransport.UnifiedRecord, question string) string {
	f := extract(rec)

	var sb strings.Builder
	sb.WriteString("Analyseer de onderstaande locatiegegevens op een duidelijke, gestructureerde en begrijpelijke manier.\n\n")

	sb.WriteString("Adresgegevens:\n")
	fmt.Fprintf(&sb, "- Straat en nummer: %s\n", f.Straat)
	fmt.Fprintf(&sb, "- Postcode: %s\n", f.Postcode)
	fmt.Fprintf(&sb, "- Plaats: %s\n", f.Plaats)
	fmt.Fprintf(&sb, "- Gemeente: %s\n", f.Gemeente)
	fmt.Fprintf(&sb, "- Provincie: %s\n\n", f.Provincie)

	sb.WriteString("Pandgegevens")
	if f.Geschat {
		sb.WriteString(" (geschat, registratie niet beschikbaar)")
	}
	sb.WriteString(":\n")
	fmt.Fprintf(&sb, "- Bouwjaar: %s\n", f.Bouwjaar)
	fmt.Fprintf(&sb, "- Oppervlakte: %s m²\n", f.Oppervlakte)
	fmt.Fprintf(&sb, "- Gebruiksdoel: %s\n", f.Gebruiksdoel)
	fmt.Fprintf(&sb, "- Status: %s\n", f.Status)
	fmt.Fprintf(&sb, "- Energielabel: %s\n\n", f.Energielabel)

	sb.WriteString("Demografie gemeente (schatting):\n")
	fmt.Fprintf(&sb, "- Inwoners: %s\n", f.Inwoners)
	fmt.Fprintf(&sb, "- Gemiddeld inkomen: €%s per jaar\n", f.Inkomen)
	fmt.Fprintf(&sb, "- Gemiddelde leeftijd: %s\n", f.Leeftijd)
	fmt.Fprintf(&sb, "- Koopwoningen: %s%%\n\n", f.Koopwoningen)

	sb.WriteString("Bestemmingsplan:\n")
	if f.PlanMelding != "" {
		fmt.Fprintf(&sb, "- %s\n", f.PlanMelding)
	} else {
		fmt.Fprintf(&sb, "- Plan: %s\n", f.PlanNaam)
		fmt.Fprintf(&sb, "- Functie: %s\n", f.Functie)
		fmt.Fprintf(&sb, "- Bouwhoogte toegestaan: %s\n", f.Bouwhoogte)
		fmt.Fprintf(&sb, "- Status plan: %s\n", f.PlanStatus)
	}

	if q := sanitize.PromptInput(question, maxQuestionRunes); q != "" {
		fmt.Fprintf(&sb, "\nVraag van gebruiker: %s\n", q)
		sb.WriteString("Beantwoord deze vraag concreet op basis van de gegevens hierboven.\n")
	}

	return sb.String()
}

// templateAnalysis is the deterministic narrative used when every transport failed.
// It always names the address and the construction year.
func templateAnalysis(rec locationtransport.UnifiedRecord, address string) string {
	f := extract(rec)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyse van %s: het pand heeft bouwjaar %s, een oppervlakte van %s m² en gebruiksdoel %s",
		address, f.Bouwjaar, f.Oppervlakte, f.Gebruiksdoel)
	if f.Geschat {
		sb.WriteString(" (geschatte gegevens)")
	}
	sb.WriteString(". ")
	fmt.Fprintf(&sb, "De gemeente %s telt naar schatting %s inwoners met een gemiddeld inkomen van €%s per jaar. ",
		f.Gemeente, f.Inwoners, f.Inkomen)
	if f.PlanMelding != "" {
		fmt.Fprintf(&sb, "Bestemmingsplan: %s.", f.PlanMelding)
	} else {
		fmt.Fprintf(&sb, "Het geldende bestemmingsplan is %s met functie %s.", f.PlanNaam, f.Functie)
	}
	return sb.String()
}

// templateAnswer is the fallback answer to a non-zoning question.
func templateAnswer(rec locationtransport.UnifiedRecord, address, question string) string {
	f := extract(rec)
	return fmt.Sprintf("Op de vraag %q kon geen AI-antwoord worden gegenereerd. "+
		"Beschikbare gegevens voor %s: bouwjaar %s, oppervlakte %s m², gebruiksdoel %s, gemeente %s.",
		sanitize.PromptInput(question, maxQuestionRunes), address, f.Bouwjaar, f.Oppervlakte, f.Gebruiksdoel, f.Gemeente)
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknown
	}
	return s
}

func intOrUnknown(v int) string {
	if v == 0 {
		return unknown
	}
	return strconv.Itoa(v)
}

func floatOrUnknown(v float64) string {
	if v == 0 {
		return unknown
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
