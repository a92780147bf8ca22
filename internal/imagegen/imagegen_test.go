package imagegen_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/floorplan/internal/imagegen"
)

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPipelineRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("plan"))
	}))
	defer srv.Close()

	var calls int
	gen := generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		calls++
		assert.Equal(t, "draw a house", prompt)
		return srv.URL + "/img", nil
	})

	p := imagegen.NewPipeline(gen, imagegen.NewFetcher(srv.Client(), 1024), discard())
	img, err := p.Run(context.Background(), "draw a house")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []byte("plan"), img.Data)
}

func TestPipelineGenerationFailure(t *testing.T) {
	cause := errors.New("provider offline")
	var calls int
	gen := generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		calls++
		return "", cause
	})

	p := imagegen.NewPipeline(gen, imagegen.NewFetcher(http.DefaultClient, 1024), discard())
	_, err := p.Run(context.Background(), "p")

	assert.ErrorIs(t, err, imagegen.ErrGenerationFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, imagegen.ErrFetchFailed)
	assert.Equal(t, 1, calls, "failures are not retried")
	assert.Equal(t, http.StatusBadGateway, imagegen.MapHTTPStatus(err))
}

func TestPipelineFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	gen := generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		return srv.URL, nil
	})

	p := imagegen.NewPipeline(gen, imagegen.NewFetcher(srv.Client(), 1024), discard())
	_, err := p.Run(context.Background(), "p")

	assert.ErrorIs(t, err, imagegen.ErrFetchFailed)
	assert.NotErrorIs(t, err, imagegen.ErrGenerationFailed)
	assert.Equal(t, http.StatusBadGateway, imagegen.MapHTTPStatus(err))
}

func TestNewSelectsProvider(t *testing.T) {
	_, err := imagegen.New(context.Background(), &imagegen.Config{Provider: "dall-e"}, discard())
	assert.Error(t, err)

	p, err := imagegen.New(context.Background(), &imagegen.Config{
		Provider:     imagegen.ProviderOpenAI,
		BaseURL:      "http://localhost:1337",
		Timeout:      "1m",
		MaxImageSize: "1MB",
	}, discard())
	require.NoError(t, err)
	assert.NotNil(t, p)
}
