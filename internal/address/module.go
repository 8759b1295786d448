// Package address provides the address lookup bounded context module.
package address

import (
	"github.com/Wim1201/locatie-informatie-v5/internal/address/client"
	"github.com/Wim1201/locatie-informatie-v5/internal/address/service"
	apphttp "github.com/Wim1201/locatie-informatie-v5/internal/http"
	"github.com/Wim1201/locatie-informatie-v5/platform/config"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

// Module wires the address lookup service and its autocomplete route.
type Module struct {
	service *service.Service
	handler *Handler
}

// NewModule creates the address module against the public Locatieserver.
func NewModule(cfg config.AddressConfig, log *logger.Logger) *Module {
	return NewModuleWithSearcher(client.New(cfg, log), log)
}

// NewModuleWithSearcher creates the address module on a custom searcher.
func NewModuleWithSearcher(searcher service.Searcher, log *logger.Logger) *Module {
	svc := service.New(searcher, log)
	return &Module{service: svc, handler: NewHandler(svc)}
}

func (m *Module) Name() string {
	return "address"
}

// Service returns the address service for the location pipeline.
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/adres")
	group.GET("/suggest", m.handler.Suggest)
}

var _ apphttp.Module = (*Module)(nil)
