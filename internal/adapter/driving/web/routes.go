package web

import "net/http"

// RegisterRoutes registers the web routes on the provided mux. Only the exact
// root path is served; every other path falls through to the mux's 404.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("/{$}", h.Home)
}
