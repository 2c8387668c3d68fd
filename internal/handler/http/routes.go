package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/posts", h.fetchPosts)
		r.Get("/post/{id}", h.fetchPost)
		r.Post("/createPost", h.createPost)
		r.Delete("/post/{id}", h.deletePost)
		r.Post("/user", h.register)
		r.Get("/auth", h.login)
	})

	// bearer-gated routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Put("/post/{id}", h.updatePost)
	})

	return router
}
