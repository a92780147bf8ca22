package api

import (
	"fmt"

	"github.com/JaimeStill/floorplan/internal/config"
	"github.com/JaimeStill/floorplan/internal/infrastructure"
	"github.com/JaimeStill/floorplan/internal/plans"
	"github.com/JaimeStill/floorplan/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration and the
// session registry.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Sessions   *plans.Sessions
	Cookie     string
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) (*Runtime, error) {
	logger := infra.Logger.With("module", "api")

	sessions, err := plans.NewSessions(cfg.Sessions.MaxSessions, logger)
	if err != nil {
		return nil, fmt.Errorf("sessions init failed: %w", err)
	}
	infra.Lifecycle.OnShutdown(sessions.Purge)

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			Storage:   infra.Storage,
			Images:    infra.Images,
		},
		Pagination: cfg.API.Pagination,
		Sessions:   sessions,
		Cookie:     cfg.Sessions.CookieName,
	}, nil
}
