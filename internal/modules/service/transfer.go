package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"net/url"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"go.uber.org/zap"

	"github.com/roomify-io/roomify-server/internal/infra/httpclient"
	"github.com/roomify-io/roomify-server/internal/pkg/utils/mime"
)

// LabelRendered marks the AI-generated visualization image. Rendered images
// are normalized to PNG before publishing; everything else passes through.
const (
	LabelRendered = "rendered"
	LabelSource   = "source"
)

// ImageFetcher downloads remote images.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) (*httpclient.FetchedImage, error)
}

// ResolvedImage is image bytes ready for publishing.
type ResolvedImage struct {
	Data        []byte
	ContentType string
}

// ImageTransfer resolves a project image reference (data URI or URL) into
// bytes. A nil result means the image could not be resolved; that is a
// recoverable condition for callers, not an error.
type ImageTransfer interface {
	Resolve(ctx context.Context, imageURL, label string) *ResolvedImage
}

type imageTransfer struct {
	fetcher ImageFetcher
	log     *zap.Logger
}

func NewImageTransfer(fetcher ImageFetcher, log *zap.Logger) ImageTransfer {
	return &imageTransfer{fetcher: fetcher, log: log}
}

func (t *imageTransfer) Resolve(ctx context.Context, imageURL, label string) *ResolvedImage {
	data, contentType, err := t.load(ctx, imageURL)
	if err != nil {
		t.log.Warn("image resolve failed", zap.String("label", label), zap.Error(err))
		return nil
	}
	if contentType == "" {
		contentType = mime.Detect(data)
	}

	if label != LabelRendered {
		return &ResolvedImage{Data: data, ContentType: contentType}
	}

	// Rendered output is re-encoded so the published asset is always a
	// well-formed PNG regardless of what the model produced.
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.log.Warn("rendered image decode failed", zap.Error(err))
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.log.Warn("rendered image encode failed", zap.Error(err))
		return nil
	}
	return &ResolvedImage{Data: buf.Bytes(), ContentType: "image/png"}
}

func (t *imageTransfer) load(ctx context.Context, imageURL string) ([]byte, string, error) {
	if strings.HasPrefix(imageURL, "data:") {
		return parseDataURI(imageURL)
	}

	fetched, err := t.fetcher.FetchImage(ctx, imageURL)
	if err != nil {
		return nil, "", err
	}
	return fetched.Data, fetched.ContentType, nil
}

func parseDataURI(uri string) ([]byte, string, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URI")
	}

	if strings.HasSuffix(meta, ";base64") {
		contentType := strings.TrimSuffix(meta, ";base64")
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", fmt.Errorf("decode data URI: %w", err)
		}
		return data, contentType, nil
	}

	decoded, err := url.QueryUnescape(payload)
	if err != nil {
		return nil, "", fmt.Errorf("unescape data URI: %w", err)
	}
	return []byte(decoded), meta, nil
}
