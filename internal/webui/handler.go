package webui

import "net/http"

// Handler serves the browser-facing pages. All markup is embedded so the
// binary deploys as a single artifact.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func servePage(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
