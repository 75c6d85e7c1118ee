package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/health-risk/docs"
	"github.com/blaisecz/health-risk/internal/api/handler"
	"github.com/blaisecz/health-risk/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	patientHandler    *handler.PatientHandler
	metricHandler     *handler.MetricHandler
	predictionHandler *handler.PredictionHandler
	allowedOrigins    []string
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	metricHandler *handler.MetricHandler,
	predictionHandler *handler.PredictionHandler,
	allowedOrigins []string,
) *Router {
	return &Router{
		patientHandler:    patientHandler,
		metricHandler:     metricHandler,
		predictionHandler: predictionHandler,
		allowedOrigins:    allowedOrigins,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Traceparent", "Tracestate"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Patients
		r.Route("/patients", func(r chi.Router) {
			r.Post("/", rt.patientHandler.Create)
			r.Get("/{patientId}", rt.patientHandler.GetByID)

			// Measurements (nested under patients)
			r.Route("/{patientId}/metrics", func(r chi.Router) {
				r.Post("/", rt.metricHandler.Create)
				r.Get("/", rt.metricHandler.List)
				r.Get("/history", rt.metricHandler.History)
			})

			r.Post("/{patientId}/predictions", rt.predictionHandler.Predict)
			r.Get("/{patientId}/insights", rt.predictionHandler.GetInsights)
		})

		// Stateless scoring
		r.Post("/predictions/evaluate", rt.predictionHandler.Evaluate)
	})

	return r
}
