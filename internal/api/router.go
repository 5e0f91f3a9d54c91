package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRouter creates and configures the HTTP router
func (h *Handler) SetupRouter() *mux.Router {
	r := mux.NewRouter()

	// "/../" must not be cleaned and redirected to "/"
	r.SkipClean(true)

	r.Use(h.RecoveryMiddleware)
	r.Use(h.LoggingMiddleware)

	r.HandleFunc("/", h.Discover).Methods(http.MethodGet)

	r.NotFoundHandler = h.wrap(http.HandlerFunc(NotFound))
	r.MethodNotAllowedHandler = h.wrap(http.HandlerFunc(NotFound))

	return r
}

// wrap applies the router middleware to handlers mux calls directly
func (h *Handler) wrap(next http.Handler) http.Handler {
	return h.RecoveryMiddleware(h.LoggingMiddleware(next))
}
