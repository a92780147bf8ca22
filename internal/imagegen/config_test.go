package imagegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/floorplan/internal/imagegen"
)

var testEnv = &imagegen.Env{
	Provider:     "TEST_IMAGES_PROVIDER",
	BaseURL:      "TEST_IMAGES_BASE_URL",
	APIKey:       "TEST_IMAGES_API_KEY",
	Model:        "TEST_IMAGES_MODEL",
	MaxImageSize: "TEST_IMAGES_MAX_IMAGE_SIZE",
}

func TestConfigDefaults(t *testing.T) {
	var cfg imagegen.Config
	require.NoError(t, cfg.Finalize(nil))

	assert.Equal(t, imagegen.ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "flux", cfg.Model)
	assert.Equal(t, "1024x1024", cfg.Size)
	assert.Equal(t, int64(20*1024*1024), cfg.MaxImageSizeBytes())
	assert.Equal(t, "5m0s", cfg.TimeoutDuration().String())
}

func TestConfigEnvOverrides(t *testing.T) {
	t.Setenv("TEST_IMAGES_PROVIDER", "gemini")
	t.Setenv("TEST_IMAGES_API_KEY", "key")
	t.Setenv("TEST_IMAGES_MAX_IMAGE_SIZE", "2MB")

	var cfg imagegen.Config
	require.NoError(t, cfg.Finalize(testEnv))

	assert.Equal(t, imagegen.ProviderGemini, cfg.Provider)
	assert.Equal(t, imagegen.DefaultGeminiModel, cfg.Model)
	assert.Equal(t, int64(2*1024*1024), cfg.MaxImageSizeBytes())
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  imagegen.Config
	}{
		{"unknown provider", imagegen.Config{Provider: "midjourney"}},
		{"gemini without key", imagegen.Config{Provider: imagegen.ProviderGemini}},
		{"bad timeout", imagegen.Config{Timeout: "soon"}},
		{"bad size", imagegen.Config{MaxImageSize: "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Finalize(nil))
		})
	}
}

func TestConfigMerge(t *testing.T) {
	cfg := imagegen.Config{Provider: "openai", Model: "flux", Size: "512x512"}
	cfg.Merge(&imagegen.Config{Model: "dall-e-3"})

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "dall-e-3", cfg.Model)
	assert.Equal(t, "512x512", cfg.Size)
}
