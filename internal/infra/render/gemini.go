package render

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/roomify-io/roomify-server/internal/config"
)

// renderPrompt asks the model to reinterpret a 2D floor plan as an
// architectural visualization.
const renderPrompt = "Generate a photorealistic 3D architectural visualization " +
	"of this 2D floor plan. Keep the room layout, wall positions and " +
	"proportions exactly as drawn. Render from an elevated three-quarter " +
	"view with natural lighting and modern interior finishes."

// Renderer turns a floor-plan image into a rendered visualization.
// Implementations return the rendered image bytes and their MIME type.
type Renderer interface {
	Render(ctx context.Context, image []byte, mimeType string) ([]byte, string, error)
}

// GeminiRenderer generates visualizations with the Gemini image model.
type GeminiRenderer struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

func NewGeminiRenderer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*GeminiRenderer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiRenderer{
		client: client,
		model:  cfg.Gemini.Model,
		log:    log,
	}, nil
}

func (r *GeminiRenderer) Render(ctx context.Context, image []byte, mimeType string) ([]byte, string, error) {
	contents := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{Text: renderPrompt},
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
			},
		},
	}

	resp, err := r.client.Models.GenerateContent(ctx, r.model, contents, nil)
	if err != nil {
		return nil, "", fmt.Errorf("generate content: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, part.InlineData.MIMEType, nil
			}
		}
	}

	r.log.Warn("model response contained no image part", zap.String("model", r.model))
	return nil, "", errors.New("no image in model response")
}
