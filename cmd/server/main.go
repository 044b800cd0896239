package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/oggyb/gramps-gamification/internal/app"
	"github.com/oggyb/gramps-gamification/internal/cache"
	"github.com/oggyb/gramps-gamification/internal/config"
	"github.com/oggyb/gramps-gamification/internal/db"
	"github.com/oggyb/gramps-gamification/internal/logger"
	"github.com/oggyb/gramps-gamification/internal/server"
	"github.com/oggyb/gramps-gamification/internal/service/gamification"
	"github.com/oggyb/gramps-gamification/internal/service/streak"
	"github.com/oggyb/gramps-gamification/internal/service/xp"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(ctx); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}
	defer redisCache.Close()

	// Inject logger into app context
	appCtx := app.New(database, redisCache, log,
		app.WithLocation(cfg.Location()),
		app.WithXPCacheTTL(cfg.Gamification.XPCacheTTL),
	)

	xpSvc := xp.NewService(appCtx)
	streakSvc := streak.NewService(appCtx)

	healthSrv := health.NewServer()
	registrars := []server.Registrar{
		gamification.NewRegistrar(appCtx, xpSvc, streakSvc),
		server.RegistrarFunc(func(s *grpc.Server) { healthpb.RegisterHealthServer(s, healthSrv) }),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database, appCtx.Now(), appCtx.Location); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	go server.RunLedgerReplay(ctx, xpSvc, cfg.Gamification.LedgerReplayInterval, log)

	go func() {
		log.Info("starting metrics server", "addr", cfg.Metrics.Addr)
		if err := server.StartMetricsServer(ctx, cfg.Metrics.Addr, appCtx.Metrics.Handler()); err != nil {
			log.Error("metrics server stopped", "err", err)
		}
	}()

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr, "timezone", appCtx.Location.String())

	if err := server.StartGRPCServer(ctx, cfg, log, registrars...); err != nil {
		log.Error("failed to start gRPC server", "err", err)
	}
	log.Info("gRPC server stopped")
}
