// Package service runs the location analysis pipeline: resolve the address,
// fetch every provider record concurrently, then generate the narratives.
package service

import (
	"context"
	"strings"

	addresstransport "github.com/Wim1201/locatie-informatie-v5/internal/address/transport"
	buildingtransport "github.com/Wim1201/locatie-informatie-v5/internal/building/transport"
	demotransport "github.com/Wim1201/locatie-informatie-v5/internal/demographics/transport"
	"github.com/Wim1201/locatie-informatie-v5/internal/geometry"
	"github.com/Wim1201/locatie-informatie-v5/internal/location/transport"
	"github.com/Wim1201/locatie-informatie-v5/internal/narrative"
	narrativetransport "github.com/Wim1201/locatie-informatie-v5/internal/narrative/transport"
	zoningtransport "github.com/Wim1201/locatie-informatie-v5/internal/zoning/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/apperr"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
	"github.com/Wim1201/locatie-informatie-v5/platform/validator"

	"golang.org/x/sync/errgroup"
)

// AddressResolver turns a free-text query into a location.
type AddressResolver interface {
	Resolve(ctx context.Context, query string) (*addresstransport.Location, error)
}

// BuildingSource always returns a building record, real or synthetic.
type BuildingSource interface {
	Fetch(ctx context.Context, loc addresstransport.Location) buildingtransport.Building
}

// ZoningSource always returns a plan or an absence marker.
type ZoningSource interface {
	Fetch(ctx context.Context, coords geometry.Coordinates) (zoningtransport.Plan, *zoningtransport.Detail)
}

// DemographicsSource provides the municipal estimate and optional PC4 statistics.
type DemographicsSource interface {
	Estimate(municipality, city string) demotransport.Demographics
	Neighbourhood(ctx context.Context, postcode4 string) *demotransport.Neighbourhood
}

// Analyst writes one provider's narrative.
type Analyst interface {
	Generate(ctx context.Context, rec transport.UnifiedRecord, address string) narrativetransport.Narrative
}

// Answerer responds to a follow-up question.
type Answerer interface {
	Answer(ctx context.Context, question string, rec transport.UnifiedRecord, address string) narrativetransport.Narrative
}

// Deps groups the pipeline collaborators.
type Deps struct {
	Address      AddressResolver
	Building     BuildingSource
	Zoning       ZoningSource
	Demographics DemographicsSource
	AnalystA     Analyst
	AnalystB     Analyst
	Responder    Answerer
}

// Service orchestrates one analysis request. It holds no per-request state.
type Service struct {
	deps Deps
	val  *validator.Validator
	log  *logger.Logger
}

// New creates the location service.
func New(deps Deps, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{deps: deps, val: val, log: log}
}

// Analyze resolves req.Address and builds the full result. Only validation
// and address resolution can fail; every later stage degrades instead.
func (s *Service) Analyze(ctx context.Context, req transport.AnalyzeRequest) (*transport.Result, error) {
	req.Address = strings.TrimSpace(req.Address)
	req.Question = strings.TrimSpace(req.Question)

	if err := s.val.Struct(req); err != nil {
		return nil, apperr.Validation("ongeldige aanvraag").
			WithDetails(validator.FieldErrors(err)).
			WithOp("location.Analyze")
	}

	loc, err := s.deps.Address.Resolve(ctx, req.Address)
	if err != nil {
		return nil, err
	}

	rec := s.collect(ctx, *loc)
	display := rec.DisplayAddress()

	result := &transport.Result{
		Query:    req.Address,
		Question: req.Question,
		Record:   rec,
	}
	result.ProviderA, result.ProviderB = s.narrate(ctx, rec, display)
	result.Combined = narrative.Synthesize(result.ProviderA, result.ProviderB, rec, display)

	if req.Question != "" && s.deps.Responder != nil {
		answer := s.deps.Responder.Answer(ctx, req.Question, rec, display)
		result.Answer = &answer
	}

	s.log.WithContext(ctx).Info("location analyzed",
		"address", display,
		"building_source", rec.Building.Source,
		"zoning_found", rec.Zoning.Found,
		"source_a", result.ProviderA.Source,
		"source_b", result.ProviderB.Source,
	)
	return result, nil
}

// collect fans out to the providers. Each goroutine writes its own field of
// the record, so no locking is needed.
func (s *Service) collect(ctx context.Context, loc addresstransport.Location) transport.UnifiedRecord {
	rec := transport.UnifiedRecord{Address: loc}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rec.Building = s.deps.Building.Fetch(gctx, loc)
		return nil
	})
	g.Go(func() error {
		rec.Zoning, rec.ZoningDetail = s.deps.Zoning.Fetch(gctx, loc.Coordinates)
		return nil
	})
	g.Go(func() error {
		rec.Demographics = s.deps.Demographics.Estimate(loc.Municipality, loc.City)
		rec.Neighbourhood = s.deps.Demographics.Neighbourhood(gctx, loc.Postcode4())
		return nil
	})
	_ = g.Wait()

	return rec
}

func (s *Service) narrate(ctx context.Context, rec transport.UnifiedRecord, address string) (a, b narrativetransport.Narrative) {
	g, gctx := errgroup.WithContext(ctx)
	if s.deps.AnalystA != nil {
		g.Go(func() error {
			a = s.deps.AnalystA.Generate(gctx, rec, address)
			return nil
		})
	}
	if s.deps.AnalystB != nil {
		g.Go(func() error {
			b = s.deps.AnalystB.Generate(gctx, rec, address)
			return nil
		})
	}
	_ = g.Wait()
	return a, b
}
