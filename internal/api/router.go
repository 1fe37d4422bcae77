package api

import (
	"net/http"

	_ "fxconverter/docs"
	"fxconverter/internal/platform/metrics"
	"fxconverter/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	swagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// TrustProxyHeaders makes X-Forwarded-For / X-Real-IP override the peer address.
	TrustProxyHeaders bool
}

func NewRouter(rateHandler *handler.Handler, m *metrics.Metrics, opts Options) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	if opts.TrustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	router.Use(requestLogger(m))
	router.Use(middleware.Heartbeat("/healthz"))

	router.Method(http.MethodGet, "/metrics", m.Handler())

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api", func(r chi.Router) {
		r.Get("/rates", rateHandler.GetRates)
		r.Get("/convert", rateHandler.Convert)
		r.Get("/detect-currency", rateHandler.DetectCurrency)
		r.Get("/currencies", rateHandler.GetCurrencies)
	})
	return router
}
