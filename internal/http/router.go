package apihttp

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/nigelapi/internal/handlers"
	"github.com/example/nigelapi/internal/rate"
	"github.com/example/nigelapi/pkg/jsonutil"
)

// NewRouter wires routes and middlewares.
func NewRouter(nh *handlers.NigelHandler, lm *rate.LimiterMap) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recover)
	r.Use(CORS)
	r.Use(Metrics)
	r.Use(RateLimit(lm))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		jsonutil.Error(w, http.StatusMethodNotAllowed,
			"Method not allowed", fmt.Sprintf("Method %q is not allowed.", r.Method))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{\"status\":\"ok\"}"))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Get("/nigel-number", nh.ServeHTTP)
	})

	return r
}
