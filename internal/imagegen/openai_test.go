package imagegen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/floorplan/internal/imagegen"
)

func TestOpenAIGenerate(t *testing.T) {
	var got map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/images/generations", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"url":"https://images.example/plan.jpg"}]}`))
	}))
	defer srv.Close()

	gen := imagegen.NewOpenAI(&imagegen.Config{
		BaseURL: srv.URL + "/",
		APIKey:  "secret",
		Model:   "flux",
		Size:    "1024x1024",
	}, srv.Client())

	url, err := gen.Generate(context.Background(), "a modern house")
	require.NoError(t, err)

	assert.Equal(t, "https://images.example/plan.jpg", url)
	assert.Equal(t, "flux", got["model"])
	assert.Equal(t, "a modern house", got["prompt"])
	assert.Equal(t, "url", got["response_format"])
	assert.EqualValues(t, 1, got["n"])
}

func TestOpenAIGenerateFallsBackToBase64(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":[{"b64_json":"aGVsbG8="}]}`))
	}))
	defer srv.Close()

	gen := imagegen.NewOpenAI(&imagegen.Config{BaseURL: srv.URL, Model: "flux"}, srv.Client())

	url, err := gen.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", url)
}

func TestOpenAIGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"empty data", http.StatusOK, `{"data":[]}`, imagegen.ErrNoImage},
		{"blank item", http.StatusOK, `{"data":[{"url":" "}]}`, imagegen.ErrNoImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			gen := imagegen.NewOpenAI(&imagegen.Config{BaseURL: srv.URL}, srv.Client())
			_, err := gen.Generate(context.Background(), "p")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		gen := imagegen.NewOpenAI(&imagegen.Config{BaseURL: srv.URL}, srv.Client())
		_, err := gen.Generate(context.Background(), "p")

		var perr *imagegen.ProviderError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, http.StatusTooManyRequests, perr.StatusCode)
		assert.Equal(t, "rate limited", perr.Body)
	})
}
