// Package imagegen sends prompts to an image-generation provider and fetches
// the resulting image. Failures are reported once and never retried.
package imagegen

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Generator turns a prompt into a reachable image URL.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Pipeline generates an image for a prompt and fetches its bytes.
type Pipeline struct {
	generator Generator
	fetcher   *Fetcher
	logger    *slog.Logger
}

// NewPipeline creates a Pipeline from an explicit generator and fetcher.
func NewPipeline(generator Generator, fetcher *Fetcher, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		generator: generator,
		fetcher:   fetcher,
		logger:    logger.With("system", "imagegen"),
	}
}

// New creates a Pipeline for the configured provider.
func New(ctx context.Context, cfg *Config, logger *slog.Logger) (*Pipeline, error) {
	client := &http.Client{Timeout: cfg.TimeoutDuration()}

	var (
		generator Generator
		err       error
	)

	switch cfg.Provider {
	case ProviderGemini:
		generator, err = NewGemini(ctx, cfg)
		if err != nil {
			return nil, err
		}
	case ProviderOpenAI:
		generator = NewOpenAI(cfg, client)
	default:
		return nil, fmt.Errorf("unknown image provider: %s", cfg.Provider)
	}

	return NewPipeline(generator, NewFetcher(client, cfg.MaxImageSizeBytes()), logger), nil
}

// Run generates and fetches one image. Errors wrap ErrGenerationFailed or ErrFetchFailed.
func (p *Pipeline) Run(ctx context.Context, prompt string) (*Image, error) {
	start := time.Now()

	url, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		p.logger.Error("image generation failed", "error", err, "duration", time.Since(start))
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	img, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		p.logger.Error("image fetch failed", "error", err, "duration", time.Since(start))
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	p.logger.Info(
		"image generated",
		"bytes", len(img.Data),
		"content_type", img.ContentType,
		"duration", time.Since(start),
	)
	return img, nil
}
