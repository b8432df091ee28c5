package handlers

import (
	"errors"
	"heavy-haul-service/internal/api/dto"
	"heavy-haul-service/internal/domain"
	"heavy-haul-service/internal/ports"
	"heavy-haul-service/internal/services"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type QuoteHandler struct {
	Ref      services.ReferenceData
	Routes   ports.RouteProvider
	Validate *validator.Validate

	FuelPricePerGallon float64
	AverageSpeedMPH    float64
}

// Quote plans a shipment end to end: route mileage, loads, permits, escorts,
// axle weights, hours of service and cost.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.QuoteRequest
	if !decodeRequest(w, r, h.Validate, &req) {
		return
	}

	origin, dest := strings.TrimSpace(req.Origin), strings.TrimSpace(req.Destination)
	if len(req.Route) == 0 {
		if origin == "" || dest == "" {
			writeError(w, r, http.StatusBadRequest, "origin and destination are required when no route is given")
			return
		}
		if h.Routes == nil {
			writeError(w, r, http.StatusBadRequest, "route service is not configured; pass an explicit route")
			return
		}
	}

	fuel := req.FuelPricePerGallon
	if fuel == 0 {
		fuel = h.FuelPricePerGallon
	}
	speed := req.AverageSpeedMPH
	if speed == 0 {
		speed = h.AverageSpeedMPH
	}

	svcReq := services.ShipmentRequest{
		Items:              dto.LoadItems(req.Items),
		Origin:             origin,
		Destination:        dest,
		Route:              dto.Route(req.Route),
		FuelPricePerGallon: fuel,
		AverageSpeedMPH:    speed,
		HOSOptions:         services.HOSOptions{SleeperSplit: domain.SleeperSplit(req.SleeperSplit)},
	}
	if req.HOSStatus != nil || req.Cycle != "" {
		status := hosStatus(req.Cycle, req.HOSStatus)
		svcReq.HOSStatus = &status
	}

	quote, err := services.PlanShipment(r.Context(), svcReq, h.Ref, h.Routes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyRoute):
			writeError(w, r, http.StatusUnprocessableEntity, "route has no states")
		case errors.Is(err, domain.ErrEmptyCatalog), errors.Is(err, domain.ErrNoReferenceData):
			log.Printf("plan shipment failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal error")
		default:
			log.Printf("plan shipment failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "could not plan shipment")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, quote)
}
