package service

import (
	"context"
	"net/url"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/roomify-io/roomify-server/internal/config"
	"github.com/roomify-io/roomify-server/internal/modules/model"
	"github.com/roomify-io/roomify-server/internal/pkg/utils/mime"
)

// SiteUploader writes published assets into a hosting site.
type SiteUploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
	EnsurePrefix(ctx context.Context, prefix string) error
}

// PublishInput describes one image to publish.
type PublishInput struct {
	Hosting   *model.HostingConfig
	URL       string
	ProjectID string
	Label     string
}

// AssetPublisher copies a project image into the user's hosting site and
// returns its public URL. Publishing is best effort: a nil result means the
// asset stays unhosted and the project keeps its original reference.
type AssetPublisher interface {
	Publish(ctx context.Context, in PublishInput) *model.HostedAsset
}

type assetPublisher struct {
	transfer ImageTransfer
	store    SiteUploader
	cfg      *config.Config
	log      *zap.Logger
}

func NewAssetPublisher(transfer ImageTransfer, store SiteUploader, cfg *config.Config, log *zap.Logger) AssetPublisher {
	return &assetPublisher{transfer: transfer, store: store, cfg: cfg, log: log}
}

func (p *assetPublisher) Publish(ctx context.Context, in PublishInput) *model.HostedAsset {
	if in.Hosting == nil || in.Hosting.Subdomain == "" || in.URL == "" {
		return nil
	}

	// Re-publishing an already hosted URL is a no-op.
	if p.isHosted(in.URL) {
		return &model.HostedAsset{URL: in.URL}
	}

	resolved := p.transfer.Resolve(ctx, in.URL, in.Label)
	if resolved == nil {
		p.log.Warn("asset publish skipped, image unresolved",
			zap.String("project_id", in.ProjectID),
			zap.String("label", in.Label))
		return nil
	}

	ext := mime.ExtensionFor(resolved.ContentType, in.URL)
	assetPath := path.Join("projects", in.ProjectID, in.Label+ext)
	key := path.Join(p.cfg.Hosting.SitePrefix, in.Hosting.Subdomain, assetPath)

	if err := p.store.EnsurePrefix(ctx, path.Dir(key)); err != nil {
		p.log.Warn("asset directory creation failed",
			zap.String("project_id", in.ProjectID),
			zap.String("key", key),
			zap.Error(err))
		return nil
	}
	if err := p.store.Upload(ctx, key, resolved.Data, resolved.ContentType); err != nil {
		p.log.Warn("asset upload failed",
			zap.String("project_id", in.ProjectID),
			zap.String("key", key),
			zap.Error(err))
		return nil
	}

	return &model.HostedAsset{
		URL: "https://" + in.Hosting.Subdomain + "." + p.cfg.Hosting.PublicDomain + "/" + assetPath,
	}
}

// isHosted reports whether rawURL already points at a hosting subdomain.
func (p *assetPublisher) isHosted(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.HasSuffix(u.Host, "."+p.cfg.Hosting.PublicDomain)
}
