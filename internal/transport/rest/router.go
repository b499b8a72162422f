package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/aip-review-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Review  *ReviewHandler
	Project *ProjectHandler
}

// RouterConfig holds the middleware applied around the handlers.
// Global wraps every route; Writes wraps the mutating API routes only.
type RouterConfig struct {
	Global []middleware.Middleware
	Writes []middleware.Middleware
}

// NewRouter mounts the health probes and the versioned API.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	for _, mw := range cfg.Global {
		if mw != nil {
			r.Use(mw)
		}
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	writes := middleware.Chain(cfg.Writes...)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.RequireActor)

		api.Route("/aips/{aipID}", func(aip chi.Router) {
			aip.Get("/review", h.Review.State)
			aip.With(writes).Post("/claim", h.Review.Claim)
			aip.With(writes).Post("/request-revision", h.Review.RequestRevision)
			aip.With(writes).Post("/publish", h.Review.Publish)
		})
		api.Get("/city/submissions", h.Review.Submissions)

		api.Route("/{scope}/projects/{projectIDOrRef}", func(p chi.Router) {
			p.Use(writes)
			p.Post("/add-information", h.Project.AddInformation)
			p.Post("/updates", h.Project.PostUpdate)
		})
	})

	return r
}
