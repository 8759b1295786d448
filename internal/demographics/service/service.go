// Package service provides the demographic estimate and neighbourhood statistics.
package service

import (
	"context"
	"math"

	"github.com/Wim1201/locatie-informatie-v5/internal/demographics/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
	"github.com/Wim1201/locatie-informatie-v5/platform/seed"
)

const seedRange = 1000

// StatsSource fetches postcode-4 statistics.
type StatsSource interface {
	GetPC4(ctx context.Context, postcode4 string) (*transport.Neighbourhood, error)
}

// Service produces demographic records. A nil stats source disables the
// neighbourhood enrichment; the estimate never depends on it.
type Service struct {
	stats StatsSource
	log   *logger.Logger
}

// New creates a demographics service.
func New(stats StatsSource, log *logger.Logger) *Service {
	return &Service{stats: stats, log: log}
}

// Estimate derives the municipal figures from seed = hash(municipality + "-" + city) mod 1000:
//
//	inwoners            = 5000 + seed*250
//	gemiddelde_leeftijd = 35 + seed/100
//	gemiddeld_inkomen   = 25000 + seed*35
//	bevolkingsdichtheid = 200 + seed*6
//	koopwoningen_pct    = 40 + seed/25
//
// Fractions are rounded to one decimal.
func Estimate(municipality, city string) transport.Demographics {
	s := seed.Mod(municipality+"-"+city, seedRange)
	return transport.Demographics{
		Inwoners:            5000 + s*250,
		GemiddeldeLeeftijd:  oneDecimal(35 + float64(s)/100),
		GemiddeldInkomen:    25000 + s*35,
		Bevolkingsdichtheid: 200 + s*6,
		KoopwoningenPct:     oneDecimal(40 + float64(s)/25),
		Source:              transport.SourceSynthetic,
	}
}

// Estimate is the method form of the package-level Estimate.
func (s *Service) Estimate(municipality, city string) transport.Demographics {
	return Estimate(municipality, city)
}

// Neighbourhood returns CBS statistics for the postcode, or nil when they are unavailable.
func (s *Service) Neighbourhood(ctx context.Context, postcode4 string) *transport.Neighbourhood {
	if s.stats == nil || postcode4 == "" {
		return nil
	}

	stats, err := s.stats.GetPC4(ctx, postcode4)
	if err != nil {
		s.log.WithContext(ctx).ProviderFallback("neighbourhood", err.Error())
		return nil
	}
	return stats
}

func oneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
