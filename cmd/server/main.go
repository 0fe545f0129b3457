package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/bootstrap"
	"github.com/Domenick1991/flightdesk/internal/cache"
	"github.com/Domenick1991/flightdesk/internal/capability"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/service/flightops"
	"github.com/Domenick1991/flightdesk/internal/store"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Printf("load config: %v, using defaults", err)
		cfg = config.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	disp, cleanup := buildDispatcher(cfg)
	defer cleanup()

	log.Printf("flightdesk server listening on %s", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, disp); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func buildDispatcher(cfg *config.Config) (*capability.Dispatcher, func()) {
	var storeOpts []store.Option
	var svcOpts []flightops.Option
	if cfg.Catalog.Seed != 0 {
		storeOpts = append(storeOpts, store.WithRand(rand.New(rand.NewSource(cfg.Catalog.Seed))))
		svcOpts = append(svcOpts, flightops.WithRand(rand.New(rand.NewSource(cfg.Catalog.Seed))))
	}

	st := store.NewStore(storeOpts...)
	st.EnsureCatalog()
	log.Printf("catalog ready: %d flights, %d airports, %d airlines",
		len(st.Flights(0)), len(st.Airports()), len(st.Airlines()))

	cleanup := func() {}
	if cfg.Redis.Addr != "" {
		searchCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.SearchTTLSeconds)*time.Second)
		svcOpts = append(svcOpts, flightops.WithSearchCache(searchCache))
		cleanup = chain(cleanup, func() { _ = searchCache.Close() })
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		svcOpts = append(svcOpts,
			flightops.WithProducer(producer, cfg.Kafka.BookingTopic),
			flightops.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
		cleanup = chain(cleanup, func() { _ = producer.Close() })
	}

	svc := flightops.NewService(st, svcOpts...)
	reg := capability.NewRegistry()
	if err := svc.Register(reg); err != nil {
		log.Fatalf("register capabilities: %v", err)
	}
	return capability.NewDispatcher(reg), cleanup
}

func chain(first, second func()) func() {
	return func() {
		first()
		second()
	}
}
