// Package storage provides blob storage operations backed by Azure Blob
// Storage or an S3-compatible object store.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/JaimeStill/floorplan/pkg/lifecycle"
)

// System manages blob storage operations and lifecycle coordination.
type System interface {
	// Start registers a startup hook that initializes the storage container.
	Start(lc *lifecycle.Coordinator) error
	// Upload streams data to a blob at the given key with the specified content type.
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	// Download returns a stream for the blob at the given key. The caller must close the reader.
	// Returns ErrNotFound if the blob does not exist.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the blob at the given key. Returns ErrNotFound if the blob does not exist.
	Delete(ctx context.Context, key string) error
	// Exists reports whether a blob exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)
}

// New creates the storage system selected by cfg.Provider. Clients are
// created eagerly; containers are initialized when Start is called.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	logger = logger.With("system", "storage", "provider", string(cfg.Provider))

	switch cfg.Provider {
	case ProviderNone, "":
		return Disabled(logger), nil
	case ProviderAzure:
		return newAzure(cfg, logger)
	case ProviderS3:
		return newS3(cfg, logger)
	}
	return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
}

type disabled struct {
	logger *slog.Logger
}

// Disabled returns a System whose operations fail with ErrDisabled.
func Disabled(logger *slog.Logger) System {
	return &disabled{logger: logger}
}

func (d *disabled) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("blob storage disabled")
	return nil
}

func (d *disabled) Upload(ctx context.Context, key string, reader io.Reader, contentType string) error {
	return ErrDisabled
}

func (d *disabled) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, ErrDisabled
}

func (d *disabled) Delete(ctx context.Context, key string) error {
	return ErrDisabled
}

func (d *disabled) Exists(ctx context.Context, key string) (bool, error) {
	return false, ErrDisabled
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}
