package reference

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/floorplan/pkg/handlers"
	"github.com/JaimeStill/floorplan/pkg/routes"
)

// Handler provides HTTP endpoints for reference data.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "reference"),
	}
}

// Routes returns the route group definition for reference endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/reference",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/cities", Handler: h.Cities},
			{Method: "GET", Pattern: "/cities/{city}", Handler: h.CityInfo},
			{Method: "GET", Pattern: "/timeline", Handler: h.Timeline},
			{Method: "GET", Pattern: "/permits", Handler: h.Permits},
		},
	}
}

func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.sys.Cities(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, cities)
}

// CityInfo returns materials, builders, and solar vendors for a city.
// Unknown cities resolve to the default city.
func (h *Handler) CityInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.sys.CityInfo(r.Context(), r.PathValue("city"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, info)
}

func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	t, err := h.sys.Timeline(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, t)
}

func (h *Handler) Permits(w http.ResponseWriter, r *http.Request) {
	lists, err := h.sys.Permits(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, lists)
}
