package plans

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/floorplan/internal/housespec"
	"github.com/JaimeStill/floorplan/internal/imagegen"
	"github.com/JaimeStill/floorplan/pkg/handlers"
	"github.com/JaimeStill/floorplan/pkg/pagination"
	"github.com/JaimeStill/floorplan/pkg/routes"
)

// SessionHeader carries the session ID for clients that do not keep cookies.
const SessionHeader = "X-Session-ID"

// Handler provides HTTP endpoints for plan operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
	cookie     string
}

// TokenRequest identifies the pending action being confirmed or cancelled.
type TokenRequest struct {
	Token string `json:"token"`
}

func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
	cookie string,
) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "plans"),
		pagination: pagination,
		cookie:     cookie,
	}
}

// Routes returns the route group definition for plan endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/plans",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Generate},
			{Method: "DELETE", Pattern: "/session", Handler: h.EndSession},
			{Method: "GET", Pattern: "/pending", Handler: h.Pending},
			{Method: "POST", Pattern: "/pending/confirm", Handler: h.Confirm},
			{Method: "POST", Pattern: "/pending/cancel", Handler: h.Cancel},
			{Method: "POST", Pattern: "/clear", Handler: h.RequestClear},
			{Method: "GET", Pattern: "/{index}", Handler: h.Find},
			{Method: "GET", Pattern: "/{index}/image", Handler: h.Image},
			{Method: "GET", Pattern: "/{index}/spec", Handler: h.Spec},
			{Method: "POST", Pattern: "/{index}/regenerate", Handler: h.Regenerate},
			{Method: "POST", Pattern: "/{index}/delete", Handler: h.RequestDelete},
			{Method: "POST", Pattern: "/{index}/export", Handler: h.Export},
		},
	}
}

// List returns a page of the session's plans in insertion order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sid := h.session(w, r)
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(sid, page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Generate parses a design form body, renders a new plan, and appends it.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	sid := h.session(w, r)

	draft := housespec.DefaultDraft()
	if err := handlers.DecodeOptional(r, &draft); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	in, err := housespec.Parse(draft)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	gen, err := h.sys.Generate(r.Context(), sid, in)
	if err != nil {
		handlers.RespondError(w, h.logger, mapStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, gen)
}

// Find returns a single plan by index.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	sid := h.session(w, r)
	index, err := parseIndex(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	plan, err := h.sys.Find(sid, index)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, plan)
}

// Image serves the plan image as a file download.
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	sid := h.session(w, r)
	index, err := parseIndex(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	dl, err := h.sys.Image(sid, index)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	body := bytes.NewReader(dl.Data)
	if err := handlers.RespondAttachment(w, dl.Filename, dl.ContentType, body.Size(), body); err != nil {
		h.logger.Warn("image download interrupted", "index", index, "error", err)
	}
}

// Spec returns the form values that produced a plan, for editing.
func (h *Handler) Spec(w http.ResponseWriter, r *http.Request) {
	sid := h.session(w, r)
	index, err := parseIndex(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	draft, err := h.sys.Spec(sid, index)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draft)
}

// Regenerate renders a plan's input again and appends the result. A JSON body,
// when present, is applied over the original form values before parsing.
func (h *Handler) Regenerate(w http.ResponseWriter, r *http.Request) {
	sid := h.session(w, r)
	index, err := parseIndex(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var override *housespec.Input
	if len(bytes.TrimSpace(body)) > 0 {
		draft, err := h.sys.Spec(sid, index)
		if err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}
		if err := json.Unmarshal(body, &draft); err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		in, err := housespec.Parse(draft)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		override = &in
	}

	gen, err := h.sys.Regenerate(r.Context(), sid, index, override)
	if err != nil {
		handlers.RespondError(w, h.logger, mapStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, gen)
}

// RequestDelete marks a plan for deletion and returns the confirmation token.
func (h *Handler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	sid := h.session(w, r)
	index, err := parseIndex(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.sys.RequestDelete(sid, index)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusAccepted, p)
}

// RequestClear marks every plan for removal and returns the confirmation token.
func (h *Handler) RequestClear(w http.ResponseWriter, r *http.Request) {
	sid := h.session(w, r)

	p, err := h.sys.RequestClear(sid)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusAccepted, p)
}

// Pending returns the outstanding action, or 204 when there is none.
func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	sid := h.session(w, r)

	p, err := h.sys.Pending(sid)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	if p == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	sid := h.session(w, r)

	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	outcome, err := h.sys.Confirm(sid, req.Token)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, outcome)
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	sid := h.session(w, r)

	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Cancel(sid, req.Token); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Export uploads a plan image to blob storage.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	sid := h.session(w, r)
	index, err := parseIndex(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	out, err := h.sys.Export(r.Context(), sid, index)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, out)
}

// EndSession discards the caller's session and its plans.
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	if id := requestSession(r, h.cookie); id != "" {
		h.sys.End(id)
	}

	http.SetCookie(w, &http.Cookie{
		Name:   h.cookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	w.WriteHeader(http.StatusNoContent)
}

// session resolves the caller's session, issuing a cookie when a new one is opened.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) string {
	id := requestSession(r, h.cookie)

	sess, created := h.sys.Open(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     h.cookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	w.Header().Set(SessionHeader, sess.ID)

	return sess.ID
}

func requestSession(r *http.Request, cookie string) string {
	if id := r.Header.Get(SessionHeader); id != "" {
		return id
	}
	if c, err := r.Cookie(cookie); err == nil {
		return c.Value
	}
	return ""
}

func parseIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrIndexOutOfRange, r.PathValue("index"))
	}
	return index, nil
}

func mapStatus(err error) int {
	if status := imagegen.MapHTTPStatus(err); status != http.StatusInternalServerError {
		return status
	}
	return MapHTTPStatus(err)
}
