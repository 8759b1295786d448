package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	addressservice "github.com/Wim1201/locatie-informatie-v5/internal/address/service"
	addresstransport "github.com/Wim1201/locatie-informatie-v5/internal/address/transport"
	buildingservice "github.com/Wim1201/locatie-informatie-v5/internal/building/service"
	buildingtransport "github.com/Wim1201/locatie-informatie-v5/internal/building/transport"
	demoservice "github.com/Wim1201/locatie-informatie-v5/internal/demographics/service"
	"github.com/Wim1201/locatie-informatie-v5/internal/geometry"
	"github.com/Wim1201/locatie-informatie-v5/internal/location/transport"
	"github.com/Wim1201/locatie-informatie-v5/internal/narrative"
	narrativetransport "github.com/Wim1201/locatie-informatie-v5/internal/narrative/transport"
	zoningclient "github.com/Wim1201/locatie-informatie-v5/internal/zoning/client"
	zoningservice "github.com/Wim1201/locatie-informatie-v5/internal/zoning/service"
	zoningtransport "github.com/Wim1201/locatie-informatie-v5/internal/zoning/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/apperr"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
	"github.com/Wim1201/locatie-informatie-v5/platform/validator"

	"github.com/paulmach/orb"
)

type fakeSearcher struct {
	loc *addresstransport.Location
	err error
}

func (f fakeSearcher) Search(context.Context, string) (*addresstransport.Location, error) {
	return f.loc, f.err
}

func (f fakeSearcher) Suggest(context.Context, string) ([]addresstransport.Suggestion, error) {
	return nil, nil
}

type emptyPlans struct{}

func (emptyPlans) SearchPlans(context.Context, orb.Polygon, int) ([]zoningclient.PlanSummary, error) {
	return nil, nil
}

func (emptyPlans) GetPlan(context.Context, string) (*zoningtransport.Metadata, error) {
	return nil, errors.New("unexpected call")
}

func (emptyPlans) Designation(context.Context, string, orb.Point) (*zoningtransport.Designation, error) {
	return nil, errors.New("unexpected call")
}

func (emptyPlans) Documents(context.Context, string, int) ([]zoningtransport.Document, error) {
	return nil, errors.New("unexpected call")
}

type fixedAnalyst struct {
	text string
}

func (f fixedAnalyst) Generate(context.Context, transport.UnifiedRecord, string) narrativetransport.Narrative {
	return narrativetransport.Narrative{Title: "Vast", Text: f.text, Source: narrativetransport.SourceModel}
}

func utrecht() *addresstransport.Location {
	return &addresstransport.Location{
		Label:        "Domplein 1, 3512JC Utrecht",
		Street:       "Domplein",
		HouseNumber:  "1",
		Postcode:     "3512JC",
		City:         "Utrecht",
		Municipality: "Utrecht",
		Province:     "Utrecht",
		Geometry:     "POINT(5.12169 52.09085)",
		Coordinates:  geometry.Parse("POINT(5.12169 52.09085)"),
	}
}

func newPipeline(searcher fakeSearcher) *Service {
	log := logger.Discard()
	policy := narrative.DefaultPolicy()
	genA := narrative.NewGenerator(policy.For(narrative.ProviderOpenAI), nil, nil, log)
	genB := narrative.NewGenerator(policy.For(narrative.ProviderAnthropic), nil, nil, log)

	return New(Deps{
		Address:      addressservice.New(searcher, log),
		Building:     buildingservice.New(nil, nil, log),
		Zoning:       zoningservice.New(emptyPlans{}, log),
		Demographics: demoservice.New(nil, log),
		AnalystA:     genA,
		AnalystB:     genB,
		Responder:    narrative.NewResponder(genB, genA, log),
	}, validator.New(), log)
}

func TestAnalyze_UtrechtWithoutLiveProviders(t *testing.T) {
	svc := newPipeline(fakeSearcher{loc: utrecht()})

	result, err := svc.Analyze(context.Background(), transport.AnalyzeRequest{Address: "Domplein 1 Utrecht"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	rec := result.Record
	if rec.Zoning.Found || rec.Zoning.Marker != zoningtransport.MarkerNoPlan || rec.ZoningDetail != nil {
		t.Fatalf("expected no-plan marker, got %+v", rec.Zoning)
	}
	if rec.Demographics != demoservice.Estimate("Utrecht", "Utrecht") {
		t.Fatalf("expected deterministic estimate, got %+v", rec.Demographics)
	}
	if rec.Building.Source != buildingtransport.SourceSynthetic || rec.Building.Bouwjaar < 1950 || rec.Building.Bouwjaar >= 2020 {
		t.Fatalf("expected synthetic building in range, got %+v", rec.Building)
	}
	if rec.Neighbourhood != nil {
		t.Fatalf("expected no neighbourhood statistics without a source")
	}
	if result.ProviderA.Source != narrativetransport.SourceTemplate || result.ProviderB.Source != narrativetransport.SourceTemplate {
		t.Fatalf("expected template narratives, got %q and %q", result.ProviderA.Source, result.ProviderB.Source)
	}
	if result.Combined.Text == "" {
		t.Fatalf("expected combined narrative")
	}
	if result.Answer != nil {
		t.Fatalf("expected no answer without a question")
	}
}

func TestAnalyze_IsDeterministicAcrossRequests(t *testing.T) {
	svc := newPipeline(fakeSearcher{loc: utrecht()})

	first, err := svc.Analyze(context.Background(), transport.AnalyzeRequest{Address: "Domplein 1 Utrecht"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := svc.Analyze(context.Background(), transport.AnalyzeRequest{Address: "Domplein 1 Utrecht"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first.Record.Building != second.Record.Building || first.Combined.Text != second.Combined.Text {
		t.Fatalf("expected identical records for identical input")
	}
}

func TestAnalyze_QuestionProducesAnswer(t *testing.T) {
	svc := newPipeline(fakeSearcher{loc: utrecht()})

	result, err := svc.Analyze(context.Background(), transport.AnalyzeRequest{
		Address:  "Domplein 1 Utrecht",
		Question: "Welk bestemmingsplan geldt hier?",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Answer == nil || !strings.Contains(result.Answer.Text, zoningtransport.MarkerNoPlan) {
		t.Fatalf("expected zoning answer with marker, got %+v", result.Answer)
	}
	if result.Question != "Welk bestemmingsplan geldt hier?" {
		t.Fatalf("expected question echoed, got %q", result.Question)
	}
}

func TestAnalyze_SynthesizesBothNarratives(t *testing.T) {
	svc := newPipeline(fakeSearcher{loc: utrecht()})
	svc.deps.AnalystA = fixedAnalyst{text: "Goede investering."}
	svc.deps.AnalystB = fixedAnalyst{text: "Rustige straat."}

	result, err := svc.Analyze(context.Background(), transport.AnalyzeRequest{Address: "Domplein 1 Utrecht"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(result.Combined.Text, "Goede investering.") || !strings.Contains(result.Combined.Text, "Rustige straat.") {
		t.Fatalf("expected both excerpts, got %q", result.Combined.Text)
	}
}

func TestAnalyze_ShortAddressIsValidation(t *testing.T) {
	svc := newPipeline(fakeSearcher{loc: utrecht()})

	_, err := svc.Analyze(context.Background(), transport.AnalyzeRequest{Address: "  a "})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAnalyze_UnknownAddressIsNotFound(t *testing.T) {
	svc := newPipeline(fakeSearcher{})

	_, err := svc.Analyze(context.Background(), transport.AnalyzeRequest{Address: "Nergensstraat 999"})
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAnalyze_ResolverFailureIsUnavailable(t *testing.T) {
	svc := newPipeline(fakeSearcher{err: errors.New("connection refused")})

	_, err := svc.Analyze(context.Background(), transport.AnalyzeRequest{Address: "Domplein 1 Utrecht"})
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}
