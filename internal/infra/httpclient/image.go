package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// maxImageBytes caps a single fetched image. Floor plans and renders are
// a few MB at most; anything larger is rejected rather than buffered.
const maxImageBytes = 32 << 20

// ImageClient fetches remote images for transfer and publishing.
type ImageClient struct {
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewImageClient creates an ImageClient with OpenTelemetry instrumentation.
func NewImageClient(log *zap.Logger) *ImageClient {
	return &ImageClient{
		HTTPClient: &http.Client{
			Timeout:   60 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Logger: log,
	}
}

// FetchedImage is a downloaded image body with its declared content type.
type FetchedImage struct {
	Data        []byte
	ContentType string
}

// FetchImage downloads url and returns its body and Content-Type header.
func (c *ImageClient) FetchImage(ctx context.Context, url string) (*FetchedImage, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.Logger.Error("image fetch failed",
			zap.String("url", url),
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if len(body) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	return &FetchedImage{
		Data:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
