// Package energylabel provides the energy label bounded context module.
// This file defines the module that encapsulates all energy label setup.
package energylabel

import (
	"github.com/Wim1201/locatie-informatie-v5/internal/energylabel/client"
	"github.com/Wim1201/locatie-informatie-v5/internal/energylabel/service"
	"github.com/Wim1201/locatie-informatie-v5/platform/config"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

// Config combines what the module needs from configuration.
type Config interface {
	config.EnergyLabelConfig
	config.UpstreamConfig
}

// Module is the energy label bounded context module.
type Module struct {
	service *service.Service
	enabled bool
}

// NewModule creates and initializes the energy label module.
// A module without EP_ONLINE_API_KEY is disabled (graceful degradation).
func NewModule(cfg Config, log *logger.Logger) *Module {
	if !cfg.IsEnergyLabelEnabled() {
		log.Info("energy label module disabled: EP_ONLINE_API_KEY not configured")
		return &Module{enabled: false}
	}

	apiClient := client.New(cfg.GetEPOnlineAPIKey(), cfg.GetUpstreamTimeout(), log)
	svc := service.New(apiClient, log)

	log.Info("energy label module initialized")

	return &Module{
		service: svc,
		enabled: true,
	}
}

// Service returns the energy label service for external use.
// Returns nil if the module is disabled.
func (m *Module) Service() EnergyLabelService {
	if !m.IsEnabled() {
		return nil
	}
	return m.service
}

// IsEnabled returns true if the energy label module is configured and enabled.
func (m *Module) IsEnabled() bool {
	return m != nil && m.enabled
}
