// Package location provides the address analysis bounded context module.
package location

import (
	apphttp "github.com/Wim1201/locatie-informatie-v5/internal/http"
	"github.com/Wim1201/locatie-informatie-v5/internal/location/service"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
	"github.com/Wim1201/locatie-informatie-v5/platform/validator"
)

// Module wires the analysis pipeline and its route.
type Module struct {
	service *service.Service
	handler *Handler
}

// NewModule creates the location module over the provider services.
func NewModule(deps service.Deps, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(deps, val, log)
	return &Module{service: svc, handler: NewHandler(svc)}
}

func (m *Module) Name() string {
	return "location"
}

// Service returns the analysis service for the CLI.
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/locatie", m.handler.Analyze)
}

var _ apphttp.Module = (*Module)(nil)
