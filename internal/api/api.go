// Package api mounts the form, plans, reference and export endpoints under
// the configured base path.
package api

import (
	"net/http"

	"github.com/JaimeStill/floorplan/internal/config"
	"github.com/JaimeStill/floorplan/internal/infrastructure"
	"github.com/JaimeStill/floorplan/pkg/middleware"
	"github.com/JaimeStill/floorplan/pkg/module"
	"github.com/JaimeStill/floorplan/pkg/routes"
)

// NewModule wires the runtime and domain systems into a module serving
// every API route plus /openapi.json.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime, err := NewRuntime(cfg, infra)
	if err != nil {
		return nil, err
	}
	domain := NewDomain(runtime)

	spec, err := specJSON(cfg)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	all := groups(domain, runtime)
	registerRoutes(mux, all, spec)

	for _, pattern := range routes.Patterns(all...) {
		runtime.Logger.Debug("route registered", "pattern", pattern, "prefix", cfg.API.BasePath)
	}

	m := module.New(cfg.API.BasePath, mux).Use(
		middleware.CORS(&cfg.API.CORS),
		middleware.Logger(runtime.Logger),
		middleware.BodyLimit(cfg.API.MaxBodySizeBytes()),
	)

	return m, nil
}
