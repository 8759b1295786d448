package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Wim1201/locatie-informatie-v5/internal/address"
	"github.com/Wim1201/locatie-informatie-v5/internal/building"
	"github.com/Wim1201/locatie-informatie-v5/internal/demographics"
	"github.com/Wim1201/locatie-informatie-v5/internal/energylabel"
	apphttp "github.com/Wim1201/locatie-informatie-v5/internal/http"
	"github.com/Wim1201/locatie-informatie-v5/internal/http/router"
	"github.com/Wim1201/locatie-informatie-v5/internal/location"
	locationservice "github.com/Wim1201/locatie-informatie-v5/internal/location/service"
	"github.com/Wim1201/locatie-informatie-v5/internal/narrative"
	"github.com/Wim1201/locatie-informatie-v5/internal/zoning"
	"github.com/Wim1201/locatie-informatie-v5/platform/config"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
	"github.com/Wim1201/locatie-informatie-v5/platform/validator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	val := validator.New()

	energyLabelModule := energylabel.NewModule(cfg, log)
	buildingModule := building.NewModule(cfg, energyLabelModule.Service(), log)
	addressModule := address.NewModule(cfg, log)
	zoningModule := zoning.NewModule(cfg, log)
	demographicsModule := demographics.NewModule(cfg, log)

	narrativeModule, err := narrative.NewModule(cfg, log)
	if err != nil {
		log.Error("failed to initialize narrative module", "error", err)
		panic("failed to initialize narrative module: " + err.Error())
	}

	locationModule := location.NewModule(locationservice.Deps{
		Address:      addressModule.Service(),
		Building:     buildingModule.Service(),
		Zoning:       zoningModule.Service(),
		Demographics: demographicsModule.Service(),
		AnalystA:     narrativeModule.OpenAI(),
		AnalystB:     narrativeModule.Anthropic(),
		Responder:    narrativeModule.Responder(),
	}, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			addressModule,
			locationModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
