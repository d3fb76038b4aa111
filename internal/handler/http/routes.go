package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withLogging)
		r.Use(withGZip)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// document and metadata routes
	router.Group(func(r chi.Router) {
		r.Use(withLogging)
		r.Use(withGZip)
		r.Use(h.auth)

		r.Get("/api/data/{collection}", h.listCollection)
		r.Get("/api/data/{collection}/{id}", h.getDocument)
		r.Put("/api/data/{collection}/{id}", h.setDocument)
		r.Delete("/api/data/{collection}/{id}", h.deleteDocument)
		r.Post("/api/data/batch", h.batchWrite)

		r.Get("/api/meta", h.getUserMeta)
		r.Put("/api/meta", h.setUserMeta)
	})

	// The live-subscription route must not pass through the logging or gzip
	// wrappers: both replace the ResponseWriter with a type that does not
	// implement http.Hijacker, which breaks the WebSocket upgrade.
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/subscribe/{collection}", h.subscribe)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
