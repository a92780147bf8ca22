package api

import (
	"log/slog"
	"net/http"
	"path"

	"github.com/JaimeStill/floorplan/pkg/handlers"
	"github.com/JaimeStill/floorplan/pkg/routes"
	"github.com/JaimeStill/floorplan/pkg/storage"
)

// exportHandler serves plan images previously exported to blob storage.
type exportHandler struct {
	store  storage.System
	logger *slog.Logger
}

func newExportHandler(store storage.System, logger *slog.Logger) *exportHandler {
	return &exportHandler{
		store:  store,
		logger: logger.With("handler", "exports"),
	}
}

func (h *exportHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/exports",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{key...}", Handler: h.download},
			{Method: "DELETE", Pattern: "/{key...}", Handler: h.remove},
		},
	}
}

func (h *exportHandler) download(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	body, err := h.store.Download(r.Context(), key)
	if err != nil {
		handlers.RespondError(w, h.logger, storage.MapHTTPStatus(err), err)
		return
	}
	defer body.Close()

	if err := handlers.RespondAttachment(w, path.Base(key), contentType(key), -1, body); err != nil {
		h.logger.Warn("export download interrupted", "key", key, "error", err)
	}
}

func (h *exportHandler) remove(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	if err := h.store.Delete(r.Context(), key); err != nil {
		handlers.RespondError(w, h.logger, storage.MapHTTPStatus(err), err)
		return
	}

	h.logger.Info("export deleted", "key", key)
	w.WriteHeader(http.StatusNoContent)
}

func contentType(key string) string {
	switch path.Ext(key) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	}
	return "application/octet-stream"
}
