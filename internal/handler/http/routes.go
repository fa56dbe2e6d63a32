package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users/signup", h.signup)
		r.Patch("/users/activate", h.activate)
		r.Post("/users/login", h.login)
		r.Patch("/users/forgot", h.forgotPassword)
		r.Patch("/users/reset", h.resetPassword)
		r.Post("/users/upload", h.upload)
		r.Get("/ping", h.ping)
	})

	// routes requiring a valid access token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/logout", h.logout)
		r.Post("/users/update", h.updateProfile)
		r.Post("/users/transfer", h.transfer)
		r.Get("/users/archives", h.archives)
		r.Get("/users/getUrl/{id}", h.archiveURL)
		r.Post("/users/search", h.search)
		r.Post("/users/boat", h.saveBoat)
		r.Get("/users/boats", h.listBoats)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
