package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withGZip, middleware.Recoverer)

	// account surface, no token required
	router.Group(func(r chi.Router) {
		r.Post("/api/user/available", h.available)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// public reads
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/score/top", h.topScores)
		r.Post("/api/score/player", h.playerScores)
		r.Get("/api/achievement/list", h.listAchievements)
	})

	// authenticated operations behind the token rotation pipeline
	router.Group(func(r chi.Router) {
		r.Post("/api/user/logout", h.authenticated(h.logout))
		r.Post("/api/score/submit", h.authenticated(h.submitScore))
		r.Post("/api/achievement/award", h.authenticated(h.awardAchievement))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
