// Package web implements the HTML driving adapter using templ components.
package web

import (
	"errors"
	"log/slog"
	"net/http"

	httphandler "github.com/ericfisherdev/hotmeme/internal/adapter/driving/http"
	"github.com/ericfisherdev/hotmeme/internal/application"
)

// Client-visible failure messages. Error detail is only logged.
const (
	msgTokenFailed   = "failed to fetch access token"
	msgContentFailed = "failed to fetch meme"
)

// Handler is the web driving adapter that serves the featured post page.
type Handler struct {
	memeSvc *application.MemeService
	logger  *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(memeSvc *application.MemeService, logger *slog.Logger) *Handler {
	return &Handler{
		memeSvc: memeSvc,
		logger:  logger,
	}
}

// Home fetches the featured post and renders it. Only GET is allowed.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	post, err := h.memeSvc.Featured(r.Context())
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}

	body := RenderPost(post)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Warn("failed to write page", "error", err, "request_id", httphandler.RequestID(r.Context()))
	}
}

// writeFetchError maps a pipeline failure to a plain-text 500 naming only the
// failed stage.
func (h *Handler) writeFetchError(w http.ResponseWriter, r *http.Request, err error) {
	msg := msgContentFailed
	var fetchErr *application.FetchError
	if errors.As(err, &fetchErr) && fetchErr.Stage == application.StageToken {
		msg = msgTokenFailed
	}

	h.logger.Error(msg,
		"error", err,
		"request_id", httphandler.RequestID(r.Context()),
	)
	http.Error(w, msg, http.StatusInternalServerError)
}
