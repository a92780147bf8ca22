package api

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/floorplan/internal/housespec"
	"github.com/JaimeStill/floorplan/internal/prompt"
	"github.com/JaimeStill/floorplan/pkg/handlers"
	"github.com/JaimeStill/floorplan/pkg/routes"
)

// Preview is the prompt a draft would produce, with the normalized draft.
type Preview struct {
	Draft  housespec.Draft `json:"draft"`
	Prompt prompt.Prompt   `json:"prompt"`
}

type formHandler struct {
	logger *slog.Logger
}

func newFormHandler(logger *slog.Logger) *formHandler {
	return &formHandler{logger: logger.With("handler", "form")}
}

func (h *formHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/form",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/options", Handler: h.options},
			{Method: "POST", Pattern: "/preview", Handler: h.preview},
		},
	}
}

func (h *formHandler) options(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, housespec.FormOptions())
}

func (h *formHandler) preview(w http.ResponseWriter, r *http.Request) {
	draft := housespec.DefaultDraft()
	if err := handlers.DecodeOptional(r, &draft); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	in, err := housespec.Parse(draft)
	if err != nil {
		handlers.RespondError(w, h.logger, housespec.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Preview{
		Draft:  in.Draft(),
		Prompt: prompt.Build(in),
	})
}
