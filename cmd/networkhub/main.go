package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/mfreeman451/networkhub/pkg/catalog"
	"github.com/mfreeman451/networkhub/pkg/config"
	"github.com/mfreeman451/networkhub/pkg/lifecycle"
	"github.com/mfreeman451/networkhub/pkg/metrics"
	"github.com/mfreeman451/networkhub/pkg/rng"
	"github.com/mfreeman451/networkhub/pkg/telemetry"
	"github.com/mfreeman451/networkhub/pkg/web"
)

const serviceName = "networkhub"

func main() {
	if err := run(); err != nil {
		if errors.Is(err, lifecycle.ErrBind) {
			log.Fatalf("Cannot start %s: %v (is another process using the port? set PORT or listen_addr)", serviceName, err)
		}

		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to JSON or YAML config file (optional)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	var collector metrics.Collector = metrics.Nop{}
	if cfg.MetricsEnabled {
		collector = metrics.NewRegistry()
	}

	server := web.NewServer(&cfg, catalog.New(), telemetry.NewGenerator(rng.New()), web.WithMetrics(collector))

	return lifecycle.RunServer(context.Background(), &lifecycle.ServerOptions{
		ServiceName: serviceName,
		Config:      &cfg,
		Handler:     server,
		OnShutdown:  []func(){server.Close},
	})
}

// loadConfig starts from the defaults, overlays the optional file and the
// environment, then validates the result.
func loadConfig(path string) (config.ServerConfig, error) {
	cfg := config.Default()

	if path != "" {
		if err := config.LoadAndValidate(path, &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.ApplyEnv(nil)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
