package service

import (
	"context"
	"errors"
	"path"

	"go.uber.org/zap"

	"github.com/roomify-io/roomify-server/internal/config"
	"github.com/roomify-io/roomify-server/internal/modules/model"
	"github.com/roomify-io/roomify-server/internal/modules/repo"
	"github.com/roomify-io/roomify-server/internal/pkg/utils/slug"
)

// SiteStore creates hosting site namespaces in the blob store.
type SiteStore interface {
	EnsurePrefix(ctx context.Context, prefix string) error
}

// HostingService provisions the per-user hosting site. Hosting is an
// enhancement on top of project persistence: every failure is logged and
// reported as a missing config, never as an error to the caller.
type HostingService interface {
	GetOrCreate(ctx context.Context, userID string) *model.HostingConfig
}

type hostingService struct {
	r     repo.HostingConfigRepo
	sites SiteStore
	cfg   *config.Config
	log   *zap.Logger
}

func NewHostingService(r repo.HostingConfigRepo, sites SiteStore, cfg *config.Config, log *zap.Logger) HostingService {
	return &hostingService{r: r, sites: sites, cfg: cfg, log: log}
}

func (s *hostingService) GetOrCreate(ctx context.Context, userID string) *model.HostingConfig {
	existing, err := s.r.Get(ctx, userID)
	if err == nil && existing.Subdomain != "" {
		return existing
	}
	if err != nil && !errors.Is(err, model.ErrHostingConfigNotFound) {
		s.log.Warn("hosting config lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil
	}

	// Get-then-create is not atomic: two concurrent first requests can both
	// provision a site, the second Put wins. The orphaned site prefix is
	// harmless and left behind.
	sub := slug.Subdomain()
	if err := s.sites.EnsurePrefix(ctx, path.Join(s.cfg.Hosting.SitePrefix, sub)); err != nil {
		s.log.Warn("hosting site creation failed",
			zap.String("user_id", userID),
			zap.String("subdomain", sub),
			zap.Error(err))
		return nil
	}

	hc := &model.HostingConfig{Subdomain: sub}
	if err := s.r.Put(ctx, userID, hc); err != nil {
		s.log.Warn("hosting config persist failed",
			zap.String("user_id", userID),
			zap.String("subdomain", sub),
			zap.Error(err))
		return nil
	}

	return hc
}
