package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/neko3da4/CHRFORGE/internal/config"
	"github.com/neko3da4/CHRFORGE/internal/gateway"
	"github.com/neko3da4/CHRFORGE/internal/observability"
)

func main() {
	observability.InitLogger("stubgw")

	configPath := flag.String("config", "cmd/stubgw/config.toml", "gateway config file")
	flag.Parse()

	cfg, err := config.LoadGatewayConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load gateway config")
	}
	log.Info().Str("path", *configPath).Msg("loaded gateway config")

	gw, err := gateway.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build gateway")
	}

	log.Info().
		Str("name", gw.Name).
		Str("addr", gw.Addr).
		Int("fixtures", len(cfg.Fixtures)).
		Msg("gateway started")
	if err := gw.Serve(); err != nil {
		log.Fatal().Err(err).Msg("gateway stopped")
	}
}
