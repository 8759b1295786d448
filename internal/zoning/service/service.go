// Package service looks up the zoning plan and its point detail for a location.
package service

import (
	"context"
	"strings"

	"github.com/Wim1201/locatie-informatie-v5/internal/geometry"
	"github.com/Wim1201/locatie-informatie-v5/internal/zoning/client"
	"github.com/Wim1201/locatie-informatie-v5/internal/zoning/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
	"github.com/Wim1201/locatie-informatie-v5/platform/metrics"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	searchRadiusMeters = 100
	searchLimit        = 3
	documentLimit      = 3
	circleSegments     = 32

	markerNoCoordinates = "geen coördinaten beschikbaar"
	markerNotConfigured = "bestemmingsplannen niet geconfigureerd"
	markerUnavailable   = "bestemmingsplanservice niet bereikbaar"
)

// PlanSource is the Ruimtelijke Plannen lookup the service depends on.
type PlanSource interface {
	SearchPlans(ctx context.Context, area orb.Polygon, limit int) ([]client.PlanSummary, error)
	GetPlan(ctx context.Context, planID string) (*transport.Metadata, error)
	Designation(ctx context.Context, planID string, point orb.Point) (*transport.Designation, error)
	Documents(ctx context.Context, planID string, limit int) ([]transport.Document, error)
}

// Service produces zoning records. A nil source disables live lookups.
type Service struct {
	source PlanSource
	log    *logger.Logger
}

// New creates a zoning service.
func New(source PlanSource, log *logger.Logger) *Service {
	return &Service{source: source, log: log}
}

// Fetch looks up the plan and, when one was found, its detail at the point.
// The plan's function and allowed height are filled from the detail.
func (s *Service) Fetch(ctx context.Context, coords geometry.Coordinates) (transport.Plan, *transport.Detail) {
	plan := s.Lookup(ctx, coords)
	if !plan.Found {
		return plan, nil
	}

	detail := s.Detail(ctx, plan.ID, coords)
	if detail.Designation != nil {
		plan.Function = detail.Designation.Primary
		plan.MaxHeight = MaxHeight(detail.Designation.Measurements)
	}
	return plan, detail
}

// Lookup searches plans within 100 m of the point and takes the first hit.
// Provider order is treated as undefined; no recency sort is applied.
func (s *Service) Lookup(ctx context.Context, coords geometry.Coordinates) transport.Plan {
	log := s.log.WithContext(ctx)

	switch {
	case !coords.Valid():
		return s.absent(log, markerNoCoordinates)
	case s.source == nil:
		return s.absent(log, markerNotConfigured)
	}

	plans, err := s.source.SearchPlans(ctx, SearchArea(coords.Point(), searchRadiusMeters), searchLimit)
	if err != nil {
		return s.absent(log, markerUnavailable)
	}
	if len(plans) == 0 {
		return s.absent(log, transport.MarkerNoPlan)
	}

	first := plans[0]
	return transport.Plan{
		Found:      true,
		ID:         first.ID,
		Name:       first.Metadata.Name,
		Type:       first.Metadata.Type,
		Status:     first.Metadata.Status,
		StatusDate: first.Metadata.StatusDate,
		Authority:  first.Metadata.Authority,
	}
}

// Detail issues the metadata, point designation and document calls in turn.
// A failed call leaves its section empty; nothing is retried.
func (s *Service) Detail(ctx context.Context, planID string, coords geometry.Coordinates) *transport.Detail {
	detail := &transport.Detail{PlanID: planID}
	if s.source == nil || planID == "" {
		return detail
	}
	log := s.log.WithContext(ctx)

	if meta, err := s.source.GetPlan(ctx, planID); err != nil {
		log.Warn("zoning detail section skipped", "section", "plan", "plan_id", planID, "error", err)
	} else {
		detail.Metadata = meta
	}

	if coords.Valid() {
		if designation, err := s.source.Designation(ctx, planID, coords.Point()); err != nil {
			log.Warn("zoning detail section skipped", "section", "bestemming", "plan_id", planID, "error", err)
		} else {
			detail.Designation = designation
		}
	}

	if docs, err := s.source.Documents(ctx, planID, documentLimit); err != nil {
		log.Warn("zoning detail section skipped", "section", "documenten", "plan_id", planID, "error", err)
	} else {
		if len(docs) > documentLimit {
			docs = docs[:documentLimit]
		}
		detail.Documents = docs
	}

	return detail
}

func (s *Service) absent(log *logger.Logger, marker string) transport.Plan {
	log.ProviderFallback("zoning", marker)
	metrics.ProviderFallback("zoning")
	return transport.Plan{Found: false, Marker: marker}
}

// SearchArea approximates a circle of radiusMeters around center as a
// counter-clockwise polygon.
func SearchArea(center orb.Point, radiusMeters float64) orb.Polygon {
	ring := make(orb.Ring, 0, circleSegments+1)
	step := 360.0 / circleSegments
	for i := 0; i < circleSegments; i++ {
		ring = append(ring, geo.PointAtBearingAndDistance(center, 360-float64(i)*step, radiusMeters))
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}

// MaxHeight returns the first height measurement, or "" when there is none.
func MaxHeight(measurements []transport.Measurement) string {
	for _, m := range measurements {
		if strings.Contains(strings.ToLower(m.Name), "bouwhoogte") {
			return m.Value
		}
	}
	return ""
}
