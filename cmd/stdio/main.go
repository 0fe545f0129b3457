package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/capability"
	"github.com/Domenick1991/flightdesk/internal/service/flightops"
	"github.com/Domenick1991/flightdesk/internal/store"
	"github.com/Domenick1991/flightdesk/internal/transport/stdio"
)

// The pipe binary keeps stdout clean for the protocol; all logging goes to
// stderr.
func main() {
	log.SetOutput(os.Stderr)

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		cfg = config.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var storeOpts []store.Option
	var svcOpts []flightops.Option
	if cfg.Catalog.Seed != 0 {
		storeOpts = append(storeOpts, store.WithRand(rand.New(rand.NewSource(cfg.Catalog.Seed))))
		svcOpts = append(svcOpts, flightops.WithRand(rand.New(rand.NewSource(cfg.Catalog.Seed))))
	}

	st := store.NewStore(storeOpts...)
	st.EnsureCatalog()

	svc := flightops.NewService(st, svcOpts...)
	reg := capability.NewRegistry()
	if err := svc.Register(reg); err != nil {
		log.Fatalf("register capabilities: %v", err)
	}

	server := stdio.NewServer(capability.NewDispatcher(reg))
	if err := server.Run(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("stdio server error: %v", err)
	}
}
