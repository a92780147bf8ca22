package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type imagesRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size,omitempty"`
	ResponseFormat string `json:"response_format"`
}

type imagesResponse struct {
	Data []struct {
		URL     string `json:"url"`
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

type openAI struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	size    string
}

// NewOpenAI creates a Generator for OpenAI-compatible image endpoints.
func NewOpenAI(cfg *Config, client *http.Client) Generator {
	return &openAI{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		size:    cfg.Size,
	}
}

func (o *openAI) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(imagesRequest{
		Model:          o.model,
		Prompt:         prompt,
		N:              1,
		Size:           o.size,
		ResponseFormat: "url",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.baseURL+"/v1/images/generations",
		bytes.NewReader(body),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if o.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+o.apiKey)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &ProviderError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var out imagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode images response: %w", err)
	}
	if len(out.Data) == 0 {
		return "", ErrNoImage
	}

	item := out.Data[0]
	if url := strings.TrimSpace(item.URL); url != "" {
		return url, nil
	}
	// some compatible servers ignore response_format
	if b64 := strings.TrimSpace(item.B64JSON); b64 != "" {
		return "data:image/png;base64," + b64, nil
	}
	return "", ErrNoImage
}
