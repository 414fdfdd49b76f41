package httpapi

import "net/http"

func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", h.Health)

	// POST /media (upload), GET /media (list)
	mux.HandleFunc("/media", h.Media)

	// GET /media/{id}, POST /media/{id}/post
	// Trailing slash so the handler can TrimPrefix("/media/").
	mux.HandleFunc("/media/", h.MediaByID)

	return mux
}
