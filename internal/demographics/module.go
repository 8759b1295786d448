// Package demographics provides the demographic estimate bounded context module.
package demographics

import (
	"github.com/Wim1201/locatie-informatie-v5/internal/demographics/client"
	"github.com/Wim1201/locatie-informatie-v5/internal/demographics/service"
	"github.com/Wim1201/locatie-informatie-v5/platform/config"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

// Module is the demographics module.
type Module struct {
	service *service.Service
}

// NewModule creates the demographics module with the public PDOK CBS endpoint.
func NewModule(cfg config.UpstreamConfig, log *logger.Logger) *Module {
	return &Module{service: service.New(client.New(cfg.GetUpstreamTimeout(), log), log)}
}

// Service returns the demographics service.
func (m *Module) Service() *service.Service {
	return m.service
}
