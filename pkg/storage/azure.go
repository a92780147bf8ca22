package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"

	"github.com/JaimeStill/floorplan/pkg/lifecycle"
)

// azure stores exports as block blobs in a single container, created on
// startup when missing.
type azure struct {
	container *container.Client
	name      string
	logger    *slog.Logger
}

func newAzure(cfg *Config, logger *slog.Logger) (*azure, error) {
	client, err := azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("create azure storage client: %w", err)
	}

	return &azure{
		container: client.ServiceClient().NewContainerClient(cfg.ContainerName),
		name:      cfg.ContainerName,
		logger:    logger,
	}, nil
}

func (a *azure) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func() {
		_, err := a.container.Create(lc.Context(), nil)
		if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			a.logger.Error("azure container create failed", "container", a.name, "error", err)
			return
		}
		a.logger.Info("azure container ready", "container", a.name)
	})
	return nil
}

func (a *azure) blob(key string) (*blockblob.Client, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	return a.container.NewBlockBlobClient(key), nil
}

func (a *azure) Upload(ctx context.Context, key string, r io.Reader, contentType string) error {
	b, err := a.blob(key)
	if err != nil {
		return err
	}

	_, err = b.UploadStream(ctx, r, &blockblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return fmt.Errorf("upload blob %s: %w", key, err)
	}
	return nil
}

func (a *azure) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	b, err := a.blob(key)
	if err != nil {
		return nil, err
	}

	resp, err := b.DownloadStream(ctx, nil)
	if err != nil {
		return nil, azureError("download", key, err)
	}
	return resp.Body, nil
}

func (a *azure) Delete(ctx context.Context, key string) error {
	b, err := a.blob(key)
	if err != nil {
		return err
	}

	if _, err := b.Delete(ctx, nil); err != nil {
		return azureError("delete", key, err)
	}
	return nil
}

func (a *azure) Exists(ctx context.Context, key string) (bool, error) {
	b, err := a.blob(key)
	if err != nil {
		return false, err
	}

	_, err = b.GetProperties(ctx, nil)
	switch {
	case err == nil:
		return true, nil
	case bloberror.HasCode(err, bloberror.BlobNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("stat blob %s: %w", key, err)
	}
}

func azureError(op, key string, err error) error {
	if bloberror.HasCode(err, bloberror.BlobNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s blob %s: %w", op, key, err)
}
