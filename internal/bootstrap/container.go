package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/roomify-io/roomify-server/internal/config"
	"github.com/roomify-io/roomify-server/internal/infra/authn"
	"github.com/roomify-io/roomify-server/internal/infra/blob"
	"github.com/roomify-io/roomify-server/internal/infra/cache"
	"github.com/roomify-io/roomify-server/internal/infra/httpclient"
	"github.com/roomify-io/roomify-server/internal/infra/logger"
	"github.com/roomify-io/roomify-server/internal/infra/render"
	"github.com/roomify-io/roomify-server/internal/modules/handler"
	"github.com/roomify-io/roomify-server/internal/modules/repo"
	"github.com/roomify-io/roomify-server/internal/modules/service"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg)
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})

	// Session verifier
	do.Provide(inj, func(i *do.Injector) (authn.SessionVerifier, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return authn.NewSupabase(cfg), nil
	})

	// Image HTTP client
	do.Provide(inj, func(i *do.Injector) (*httpclient.ImageClient, error) {
		log := do.MustInvoke[*zap.Logger](i)
		return httpclient.NewImageClient(log), nil
	})

	// Renderer
	do.Provide(inj, func(i *do.Injector) (render.Renderer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		return render.NewGeminiRenderer(context.Background(), cfg, log)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.HostingConfigRepo, error) {
		return repo.NewHostingConfigRepo(do.MustInvoke[*redis.Client](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.HostingService, error) {
		return service.NewHostingService(
			do.MustInvoke[repo.HostingConfigRepo](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ImageTransfer, error) {
		return service.NewImageTransfer(
			do.MustInvoke[*httpclient.ImageClient](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AssetPublisher, error) {
		return service.NewAssetPublisher(
			do.MustInvoke[service.ImageTransfer](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.VisualizeService, error) {
		return service.NewVisualizeService(
			do.MustInvoke[service.ProjectService](i),
			do.MustInvoke[service.HostingService](i),
			do.MustInvoke[service.AssetPublisher](i),
			do.MustInvoke[service.ImageTransfer](i),
			do.MustInvoke[render.Renderer](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.VisualizeHandler, error) {
		return handler.NewVisualizeHandler(do.MustInvoke[service.VisualizeService](i)), nil
	})

	return inj
}
