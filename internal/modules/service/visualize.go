package service

import (
	"context"
	"encoding/base64"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/roomify-io/roomify-server/internal/infra/render"
	"github.com/roomify-io/roomify-server/internal/modules/model"
	"github.com/roomify-io/roomify-server/internal/telemetry"
)

// VisualizeState is the terminal state of one visualization run.
type VisualizeState string

const (
	StateNoSource         VisualizeState = "no_source"
	StateHasRenderedImage VisualizeState = "has_rendered_image"
	StateGenerationFailed VisualizeState = "generation_failed"
	StateSaveFailed       VisualizeState = "save_failed"
	StateSaved            VisualizeState = "saved"
)

type VisualizeInput struct {
	UserID    string
	ProjectID string
	// Force regenerates even when a rendered image is already stored.
	Force bool
}

type VisualizeOutput struct {
	State   VisualizeState
	Project *model.Project
}

// VisualizeService runs the generate-publish-save pipeline for a project.
//
// The pipeline degrades instead of failing: a generation error returns the
// stored project untouched, and a save error returns the generated result
// without persisting it. Only a missing project surfaces as an error.
type VisualizeService interface {
	Run(ctx context.Context, in VisualizeInput) (*VisualizeOutput, error)
}

type visualizeService struct {
	projects  ProjectService
	hosting   HostingService
	publisher AssetPublisher
	transfer  ImageTransfer
	renderer  render.Renderer
	log       *zap.Logger
}

func NewVisualizeService(
	projects ProjectService,
	hosting HostingService,
	publisher AssetPublisher,
	transfer ImageTransfer,
	renderer render.Renderer,
	log *zap.Logger,
) VisualizeService {
	return &visualizeService{
		projects:  projects,
		hosting:   hosting,
		publisher: publisher,
		transfer:  transfer,
		renderer:  renderer,
		log:       log,
	}
}

func (s *visualizeService) Run(ctx context.Context, in VisualizeInput) (*VisualizeOutput, error) {
	p, err := s.projects.Get(ctx, in.UserID, in.ProjectID)
	if err != nil {
		return nil, err
	}

	if p.SourceImage == "" {
		return &VisualizeOutput{State: StateNoSource, Project: p}, nil
	}
	if p.RenderedImage != "" && !in.Force {
		return &VisualizeOutput{State: StateHasRenderedImage, Project: p}, nil
	}

	start := time.Now()
	rendered, ok := s.generate(ctx, p)
	if !ok {
		telemetry.RecordVisualizeFailure(ctx, "generation")
		return &VisualizeOutput{State: StateGenerationFailed, Project: p}, nil
	}

	// The generated image is applied before persistence so a save failure
	// still hands the result back to the client. There is no rollback.
	updated := *p
	updated.RenderedImage = rendered

	s.publishAssets(ctx, in.UserID, &updated)

	saved, err := s.projects.Save(ctx, in.UserID, &updated)
	if err != nil {
		s.log.Warn("visualization result not persisted",
			zap.String("project_id", in.ProjectID),
			zap.Error(err))
		telemetry.RecordVisualizeFailure(ctx, "save")
		return &VisualizeOutput{State: StateSaveFailed, Project: &updated}, nil
	}

	telemetry.RecordVisualizeSuccess(ctx, float64(time.Since(start).Milliseconds()))
	return &VisualizeOutput{State: StateSaved, Project: saved}, nil
}

// generate renders the source image once and returns the result as a data URI.
func (s *visualizeService) generate(ctx context.Context, p *model.Project) (string, bool) {
	src := s.transfer.Resolve(ctx, p.SourceImage, LabelSource)
	if src == nil {
		s.log.Warn("source image unresolved", zap.String("project_id", p.ID))
		return "", false
	}

	data, mimeType, err := s.renderer.Render(ctx, src.Data, src.ContentType)
	if err != nil {
		s.log.Warn("visualization generation failed",
			zap.String("project_id", p.ID),
			zap.Error(err))
		return "", false
	}
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), true
}

// publishAssets pushes the source and rendered images to hosting in parallel
// and folds any resulting public URLs into the project. Publishing failures
// leave the corresponding fields unchanged.
func (s *visualizeService) publishAssets(ctx context.Context, userID string, p *model.Project) {
	hosting := s.hosting.GetOrCreate(ctx, userID)
	if hosting == nil {
		return
	}

	var srcAsset, renAsset *model.HostedAsset
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		srcAsset = s.publisher.Publish(gctx, PublishInput{
			Hosting:   hosting,
			URL:       p.SourceImage,
			ProjectID: p.ID,
			Label:     LabelSource,
		})
		return nil
	})
	g.Go(func() error {
		renAsset = s.publisher.Publish(gctx, PublishInput{
			Hosting:   hosting,
			URL:       p.RenderedImage,
			ProjectID: p.ID,
			Label:     LabelRendered,
		})
		return nil
	})
	_ = g.Wait()

	if srcAsset != nil {
		p.SourcePath = srcAsset.URL
	}
	if renAsset != nil {
		p.RenderedPath = renAsset.URL
		p.PublicPath = renAsset.URL
	}
}
