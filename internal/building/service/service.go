// Package service builds the building record for a resolved address.
package service

import (
	"context"
	"errors"

	addresstransport "github.com/Wim1201/locatie-informatie-v5/internal/address/transport"
	"github.com/Wim1201/locatie-informatie-v5/internal/building/client"
	"github.com/Wim1201/locatie-informatie-v5/internal/building/transport"
	"github.com/Wim1201/locatie-informatie-v5/internal/energylabel"
	energytransport "github.com/Wim1201/locatie-informatie-v5/internal/energylabel/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
	"github.com/Wim1201/locatie-informatie-v5/platform/metrics"
	"github.com/Wim1201/locatie-informatie-v5/platform/seed"
)

const (
	syntheticBaseYear     = 1950
	syntheticYearRange    = 70
	syntheticBaseArea     = 50
	syntheticAreaRange    = 125
	syntheticGebruiksdoel = "woonfunctie"
	syntheticStatus       = "Verblijfsobject in gebruik (geschat)"
)

// Registry is the BAG lookup the service depends on.
type Registry interface {
	GetObject(ctx context.Context, objectID string) (*client.Object, error)
}

// Service produces building records. Both dependencies are optional.
type Service struct {
	registry Registry
	labels   energylabel.EnergyLabelService
	log      *logger.Logger
}

// New creates a building service. A nil registry always yields synthetic
// records; a nil label service leaves Energielabel empty.
func New(registry Registry, labels energylabel.EnergyLabelService, log *logger.Logger) *Service {
	return &Service{registry: registry, labels: labels, log: log}
}

// Fetch returns the building record for the location. It never fails: a
// missing identifier, a missing key or any BAG error yields Synthetic.
func (s *Service) Fetch(ctx context.Context, loc addresstransport.Location) transport.Building {
	log := s.log.WithContext(ctx)
	objectID := loc.AddressableObjectID

	building, reason := s.fromRegistry(ctx, objectID)
	if building == nil {
		log.ProviderFallback("building", reason)
		metrics.ProviderFallback("building")
		synthetic := Synthetic(seedKey(loc))
		synthetic.ObjectID = objectID
		building = &synthetic
	}

	building.Energielabel = s.energyLabel(ctx, objectID, loc)
	return *building
}

func (s *Service) fromRegistry(ctx context.Context, objectID string) (*transport.Building, string) {
	switch {
	case objectID == "":
		return nil, "missing object identifier"
	case s.registry == nil:
		return nil, "BAG_API_KEY not configured"
	}

	obj, err := s.registry.GetObject(ctx, objectID)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, "object not found"
		}
		return nil, err.Error()
	}

	return &transport.Building{
		ObjectID:     objectID,
		Bouwjaar:     obj.Bouwjaar,
		Oppervlakte:  obj.Oppervlakte,
		Gebruiksdoel: obj.Gebruiksdoel,
		Status:       obj.Status,
		Source:       transport.SourceBAG,
	}, ""
}

func (s *Service) energyLabel(ctx context.Context, objectID string, loc addresstransport.Location) string {
	if s.labels == nil {
		return ""
	}

	label, err := s.labels.Lookup(ctx, objectID, energytransport.AddressKey{
		Postcode:             loc.Postcode,
		Huisnummer:           loc.HouseNumber,
		Huisletter:           loc.HouseLetter,
		Huisnummertoevoeging: loc.HouseNumberAddition,
	})
	if err != nil {
		s.log.WithContext(ctx).Warn("energy label lookup failed", "error", err)
		return ""
	}
	if label == nil {
		return ""
	}
	return label.Energieklasse
}

// Synthetic returns the seeded estimate for an identifier:
// year 1950 + h mod 70, area 50 + h mod 125, with h the stable hash of key.
func Synthetic(key string) transport.Building {
	return transport.Building{
		Bouwjaar:     syntheticBaseYear + seed.Mod(key, syntheticYearRange),
		Oppervlakte:  syntheticBaseArea + seed.Mod(key, syntheticAreaRange),
		Gebruiksdoel: syntheticGebruiksdoel,
		Status:       syntheticStatus,
		Source:       transport.SourceSynthetic,
	}
}

// seedKey is the object identifier, or the address label when the lookup returned none.
func seedKey(loc addresstransport.Location) string {
	if loc.AddressableObjectID != "" {
		return loc.AddressableObjectID
	}
	return loc.Label
}
