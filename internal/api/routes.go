package api

import (
	"net/http"

	"github.com/JaimeStill/floorplan/pkg/openapi"
	"github.com/JaimeStill/floorplan/pkg/routes"
)

func groups(domain *Domain, runtime *Runtime) []routes.Group {
	return []routes.Group{
		newFormHandler(runtime.Logger).routes(),
		domain.Plans.Handler().Routes(),
		domain.Reference.Handler().Routes(),
		newExportHandler(runtime.Storage, runtime.Logger).routes(),
	}
}

func registerRoutes(mux *http.ServeMux, groups []routes.Group, spec []byte) {
	routes.Register(mux, groups...)
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(spec))
}
