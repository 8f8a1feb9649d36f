package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	healthPath  = "/api/health"
	pushPath    = "/api/sync/push"
	pullPath    = "/api/sync/pull"
	versionPath = "/api/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// open routes, used by network probes
	router.Get(healthPath, h.health)
	router.Get(versionPath, h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.verifyHash)

		r.Post(pushPath, h.push)
		r.Post(pullPath, h.pull)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
