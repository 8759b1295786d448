// Package building provides the building registry bounded context module.
package building

import (
	"github.com/Wim1201/locatie-informatie-v5/internal/building/client"
	"github.com/Wim1201/locatie-informatie-v5/internal/building/service"
	"github.com/Wim1201/locatie-informatie-v5/internal/energylabel"
	"github.com/Wim1201/locatie-informatie-v5/platform/config"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

// Module is the building registry module.
type Module struct {
	service *service.Service
}

// NewModule creates the building module. Without BAG_API_KEY every record is synthetic.
func NewModule(cfg config.BuildingConfig, labels energylabel.EnergyLabelService, log *logger.Logger) *Module {
	var registry service.Registry
	if cfg.IsBAGEnabled() {
		registry = client.New(cfg.GetBAGAPIKey(), cfg.GetUpstreamTimeout(), log)
		log.Info("building module initialized")
	} else {
		log.Info("building module degraded: BAG_API_KEY not configured, records are synthetic")
	}

	return &Module{service: service.New(registry, labels, log)}
}

// Service returns the building service.
func (m *Module) Service() *service.Service {
	return m.service
}
