package handlers

import (
	"heavy-haul-service/internal/api/dto"
	"heavy-haul-service/internal/ports"
	"heavy-haul-service/internal/services"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type PermitHandler struct {
	Ref      services.ReferenceData
	Validate *validator.Validate
	// Cache is optional.
	Cache ports.PermitSummaryCache
}

// RoutePermits prices permits and escorts for a loaded vehicle along a route.
func (h *PermitHandler) RoutePermits(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RoutePermitRequest
	if !decodeRequest(w, r, h.Validate, &req) {
		return
	}
	if h.Ref.Permits == nil {
		log.Printf("route permits failed: permit calculator is nil")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	specs := req.Cargo.ToDomain()
	route := dto.Route(req.Route)

	if h.Cache != nil {
		cached, ok, err := h.Cache.Get(r.Context(), specs, route)
		if err != nil {
			log.Printf("permit cache get failed: %v", err)
		} else if ok {
			writeJSON(w, r, http.StatusOK, cached)
			return
		}
	}

	summary := h.Ref.Permits.CalculateDetailedRoutePermits(specs, route)

	if h.Cache != nil {
		if err := h.Cache.Set(r.Context(), specs, route, &summary); err != nil {
			log.Printf("permit cache set failed: %v", err)
		}
	}

	writeJSON(w, r, http.StatusOK, summary)
}
