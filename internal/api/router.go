package api

import (
	"heavy-haul-service/internal/api/handlers"
	"heavy-haul-service/internal/platform/obs"
	"heavy-haul-service/internal/ports"
	"heavy-haul-service/internal/services"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Dependencies is everything the HTTP surface needs from the composition root.
type Dependencies struct {
	Ref    services.ReferenceData
	Routes ports.RouteProvider
	// PermitCache may be nil.
	PermitCache ports.PermitSummaryCache

	// RateLimitRPS of zero disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	FuelPricePerGallon float64
	AverageSpeedMPH    float64
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Dependencies) http.Handler {
	obs.RegisterDefault()

	mux := http.NewServeMux()
	validate := validator.New()

	healthHandler := &handlers.HealthHandler{Ref: deps.Ref}
	refHandler := &handlers.ReferenceHandler{Ref: deps.Ref}
	planHandler := &handlers.PlanHandler{Ref: deps.Ref, Validate: validate}
	permitHandler := &handlers.PermitHandler{
		Ref:      deps.Ref,
		Validate: validate,
		Cache:    deps.PermitCache,
	}
	hosHandler := &handlers.HOSHandler{Validate: validate, AverageSpeedMPH: deps.AverageSpeedMPH}
	quoteHandler := &handlers.QuoteHandler{
		Ref:                deps.Ref,
		Routes:             deps.Routes,
		Validate:           validate,
		FuelPricePerGallon: deps.FuelPricePerGallon,
		AverageSpeedMPH:    deps.AverageSpeedMPH,
	}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.Handle("/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/trucks", refHandler.ListTrucks)
	mux.HandleFunc("/states", refHandler.ListStates)
	mux.HandleFunc("/states/{code}", refHandler.GetState)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/permits/route", permitHandler.RoutePermits)
	mux.HandleFunc("/hos/validate", hosHandler.ValidateTrip)
	mux.HandleFunc("/quotes", quoteHandler.Quote)

	var h http.Handler = mux
	if deps.RateLimitRPS > 0 {
		burst := deps.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		h = rateLimitMiddleware(rate.NewLimiter(rate.Limit(deps.RateLimitRPS), burst), h)
	}

	return requestIDMiddleware(loggingMiddleware(metricsMiddleware(h)))
}
