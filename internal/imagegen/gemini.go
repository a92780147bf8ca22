package imagegen

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Generator backed by the Gemini API image models.
// Generated bytes are returned as a data URL.
func NewGemini(ctx context.Context, cfg *Config) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &gemini{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (g *gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateImages(
		ctx,
		g.model,
		prompt,
		&genai.GenerateImagesConfig{NumberOfImages: 1},
	)
	if err != nil {
		return "", err
	}

	if resp == nil || len(resp.GeneratedImages) == 0 {
		return "", ErrNoImage
	}

	img := resp.GeneratedImages[0].Image
	if img == nil || len(img.ImageBytes) == 0 {
		return "", ErrNoImage
	}

	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}

	return DataURL(mime, img.ImageBytes), nil
}
