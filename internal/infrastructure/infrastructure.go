// Package infrastructure builds the shared systems every domain module
// depends on.
package infrastructure

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/JaimeStill/floorplan/internal/config"
	"github.com/JaimeStill/floorplan/internal/imagegen"
	"github.com/JaimeStill/floorplan/pkg/database"
	"github.com/JaimeStill/floorplan/pkg/lifecycle"
	"github.com/JaimeStill/floorplan/pkg/storage"
)

// Infrastructure is created once per process. Database and Storage join the
// lifecycle in Start.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Images    *imagegen.Pipeline
}

// New constructs every system without contacting external services.
func New(cfg *config.Config) (*Infrastructure, error) {
	handler, err := cfg.LogHandler(os.Stderr)
	if err != nil {
		return nil, err
	}

	lc := lifecycle.New()
	logger := slog.New(handler).With("env", cfg.Env())

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	images, err := imagegen.New(lc.Context(), &cfg.Images, logger)
	if err != nil {
		return nil, fmt.Errorf("image generation init failed: %w", err)
	}

	logger.Info(
		"infrastructure ready",
		"images", cfg.Images.Provider,
		"model", cfg.Images.Model,
		"storage", cfg.Storage.Provider,
		"database", net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port)),
	)

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
		Images:    images,
	}, nil
}

type starter interface {
	Start(lc *lifecycle.Coordinator) error
}

// Start registers the database and storage hooks with the coordinator.
func (i *Infrastructure) Start() error {
	for _, s := range []struct {
		name string
		sys  starter
	}{
		{"database", i.Database},
		{"storage", i.Storage},
	} {
		if err := s.sys.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("%s start failed: %w", s.name, err)
		}
	}
	return nil
}
