// Package zoning provides the zoning plan bounded context module.
package zoning

import (
	"github.com/Wim1201/locatie-informatie-v5/internal/zoning/client"
	"github.com/Wim1201/locatie-informatie-v5/internal/zoning/service"
	"github.com/Wim1201/locatie-informatie-v5/platform/config"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

// Module is the zoning plan module.
type Module struct {
	service *service.Service
}

// NewModule creates the zoning module. Without RUIMTELIJKE_PLANNEN_API_KEY
// every lookup yields the not-configured marker.
func NewModule(cfg config.ZoningConfig, log *logger.Logger) *Module {
	var source service.PlanSource
	if cfg.IsZoningEnabled() {
		source = client.New(cfg.GetRuimtelijkePlannenAPIKey(), cfg.GetUpstreamTimeout(), log)
		log.Info("zoning module initialized")
	} else {
		log.Info("zoning module degraded: RUIMTELIJKE_PLANNEN_API_KEY not configured")
	}

	return &Module{service: service.New(source, log)}
}

// Service returns the zoning service.
func (m *Module) Service() *service.Service {
	return m.service
}
