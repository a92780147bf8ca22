package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Image is a fetched image and the URL it was retrieved from.
type Image struct {
	URL         string
	Data        []byte
	ContentType string
}

// Fetcher retrieves image bytes behind http(s) and data URLs.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

func NewFetcher(client *http.Client, maxBytes int64) *Fetcher {
	return &Fetcher{
		client:   client,
		maxBytes: maxBytes,
	}
}

// Fetch returns the image at rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Image, error) {
	if strings.HasPrefix(rawURL, "data:") {
		return f.decodeDataURL(rawURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse image url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported image url scheme: %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}

	img := &Image{
		URL:         rawURL,
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}
	if err := f.check(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (f *Fetcher) decodeDataURL(rawURL string) (*Image, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(rawURL, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("malformed data url")
	}

	mime, encoding, _ := strings.Cut(meta, ";")
	if encoding != "base64" {
		return nil, fmt.Errorf("unsupported data url encoding: %q", encoding)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data url: %w", err)
	}

	img := &Image{
		URL:         rawURL,
		Data:        data,
		ContentType: mime,
	}
	if err := f.check(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (f *Fetcher) check(img *Image) error {
	if len(img.Data) == 0 {
		return ErrNoImage
	}
	if int64(len(img.Data)) > f.maxBytes {
		return ErrImageTooLarge
	}
	if img.ContentType == "" || img.ContentType == "application/octet-stream" {
		img.ContentType = http.DetectContentType(img.Data)
	}
	return nil
}

// DataURL encodes b as a base64 data URL.
func DataURL(mime string, b []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(b))
}
