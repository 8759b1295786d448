// Command locatie runs one address analysis and prints the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Wim1201/locatie-informatie-v5/internal/address"
	"github.com/Wim1201/locatie-informatie-v5/internal/building"
	"github.com/Wim1201/locatie-informatie-v5/internal/demographics"
	"github.com/Wim1201/locatie-informatie-v5/internal/energylabel"
	"github.com/Wim1201/locatie-informatie-v5/internal/location"
	locationservice "github.com/Wim1201/locatie-informatie-v5/internal/location/service"
	"github.com/Wim1201/locatie-informatie-v5/internal/location/transport"
	"github.com/Wim1201/locatie-informatie-v5/internal/narrative"
	"github.com/Wim1201/locatie-informatie-v5/internal/zoning"
	"github.com/Wim1201/locatie-informatie-v5/platform/apperr"
	"github.com/Wim1201/locatie-informatie-v5/platform/config"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
	"github.com/Wim1201/locatie-informatie-v5/platform/validator"
)

func main() {
	addr := flag.String("adres", "", "address to analyze, e.g. \"Domplein 1 Utrecht\"")
	question := flag.String("vraag", "", "optional follow-up question")
	verbose := flag.Bool("v", false, "log to stdout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := logger.Discard()
	if *verbose {
		log = logger.New(cfg.Env)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	narrativeModule, err := narrative.NewModule(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize narrative module:", err)
		os.Exit(1)
	}
	energyLabelModule := energylabel.NewModule(cfg, log)

	svc := location.NewModule(locationservice.Deps{
		Address:      address.NewModule(cfg, log).Service(),
		Building:     building.NewModule(cfg, energyLabelModule.Service(), log).Service(),
		Zoning:       zoning.NewModule(cfg, log).Service(),
		Demographics: demographics.NewModule(cfg, log).Service(),
		AnalystA:     narrativeModule.OpenAI(),
		AnalystB:     narrativeModule.Anthropic(),
		Responder:    narrativeModule.Responder(),
	}, validator.New(), log).Service()

	result, err := svc.Analyze(ctx, transport.AnalyzeRequest{Address: *addr, Question: *question})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if apperr.Is(err, apperr.KindValidation) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		fmt.Fprintln(os.Stderr, "failed to encode result:", err)
		os.Exit(1)
	}
}
