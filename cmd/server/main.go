package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/roomify-io/roomify-server/internal/bootstrap"
	"github.com/roomify-io/roomify-server/internal/config"
	"github.com/roomify-io/roomify-server/internal/infra/authn"
	"github.com/roomify-io/roomify-server/internal/infra/cache"
	"github.com/roomify-io/roomify-server/internal/modules/handler"
	"github.com/roomify-io/roomify-server/internal/router"
	"github.com/roomify-io/roomify-server/internal/telemetry"
)

func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer log.Sync() //nolint:errcheck

	// Telemetry first so instrumented clients pick up the global providers.
	if _, err := telemetry.SetupTracing(cfg); err != nil {
		log.Fatal("setup tracing", zap.Error(err))
	}
	if _, err := telemetry.SetupMetrics(cfg); err != nil {
		log.Fatal("setup metrics", zap.Error(err))
	}
	if err := telemetry.InitVisualizeMetrics(); err != nil {
		log.Warn("init visualize metrics", zap.Error(err))
	}

	rdb := do.MustInvoke[*redis.Client](inj)
	if cfg.Telemetry.Enabled {
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Warn("register redis tracing", zap.Error(err))
		}
	}

	r := router.NewRouter(router.RouterDeps{
		Config:           cfg,
		Log:              log,
		Verifier:         do.MustInvoke[authn.SessionVerifier](inj),
		ProjectHandler:   do.MustInvoke[*handler.ProjectHandler](inj),
		VisualizeHandler: do.MustInvoke[*handler.VisualizeHandler](inj),
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	if err := telemetry.Shutdown(ctx); err != nil {
		log.Error("tracing shutdown", zap.Error(err))
	}
	if err := telemetry.ShutdownMetrics(ctx); err != nil {
		log.Error("metrics shutdown", zap.Error(err))
	}
	if err := cache.Close(rdb); err != nil {
		log.Error("redis close", zap.Error(err))
	}
}
