package main

import (
	"context"
	"fmt"

	"github.com/dinespot/dinesync/internal/adapter"
	"github.com/dinespot/dinesync/internal/config"
	"github.com/dinespot/dinesync/internal/logger"
	"github.com/dinespot/dinesync/internal/netmon"
	"github.com/dinespot/dinesync/internal/server"
	"github.com/dinespot/dinesync/internal/service"
	"github.com/dinespot/dinesync/internal/store"
	"github.com/dinespot/dinesync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dinesync")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open local database")
	}
	defer db.Close()

	storages := store.NewStorages(db)

	tokens := adapter.StaticTokenSource(cfg.Remote.AccessToken)
	gateway, err := newGateway(ctx, cfg.Remote, tokens)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote gateway")
	}

	probe := netmon.NewHTTPProbe(probeURL(cfg), cfg.Remote.RequestTimeout)
	monitor := netmon.NewMonitor(probe, log)

	engine := service.NewSyncEngine(storages, gateway, monitor, service.EngineConfig{
		MaxRetries:        cfg.Sync.MaxRetries,
		ConflictTolerance: cfg.Sync.ConflictTolerance,
	}, log)

	// Every offline-to-online transition drains the queue immediately rather
	// than waiting for the next periodic tick.
	monitor.OnOnline(func(hookCtx context.Context) {
		engine.Sync(hookCtx, models.SyncOptions{})
	})
	monitor.Start(ctx, cfg.Network.ProbeInterval)
	defer monitor.Stop()

	job := service.NewSyncJob(engine)
	job.Start(ctx, cfg.Sync.Interval)
	defer job.Stop()

	roles := adapter.NewJWTRoleProvider(tokens)
	policy := service.NewOfflinePolicy(roles, monitor, log)
	services := server.Services{
		Restaurants: service.NewRestaurantService(storages, gateway, policy, log),
		Menu:        service.NewMenuService(storages, gateway, policy, log),
		Ratings:     service.NewRatingService(storages, gateway, policy, log),
	}

	handler := server.NewHandler(engine, storages.Queue, monitor, services, log)
	srv := server.NewServer(cfg.Server.HTTPAddress, handler.Init(), log)
	srv.RunServer()
}

func newGateway(ctx context.Context, cfg config.Remote, tokens adapter.TokenSource) (adapter.RemoteGateway, error) {
	switch cfg.Backend {
	case "postgres":
		return adapter.NewPostgresGateway(ctx, cfg.DatabaseDSN)
	case "rest":
		return adapter.NewRESTGateway(adapter.RESTConfig{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Timeout: cfg.RequestTimeout,
		}, tokens), nil
	default:
		return nil, fmt.Errorf("unknown remote backend %q", cfg.Backend)
	}
}

// probeURL prefers the configured probe endpoint and falls back to the remote
// base URL, so reachability is measured against the system we actually sync
// with.
func probeURL(cfg *config.Config) string {
	if cfg.Network.ProbeURL != "" {
		return cfg.Network.ProbeURL
	}
	return cfg.Remote.BaseURL
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
