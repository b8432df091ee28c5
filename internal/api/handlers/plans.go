package handlers

import (
	"heavy-haul-service/internal/api/dto"
	"heavy-haul-service/internal/platform/obs"
	"heavy-haul-service/internal/services"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type PlanHandler struct {
	Ref      services.ReferenceData
	Validate *validator.Validate
}

// Plan assigns the requested items to trucks from the catalog.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PlanRequest
	if !decodeRequest(w, r, h.Validate, &req) {
		return
	}

	plan := services.PlanLoads(dto.LoadItems(req.Items), h.Ref.Trucks)
	obs.RecordPlan(plan.TotalTrucks, len(plan.UnassignedItems))

	writeJSON(w, r, http.StatusOK, dto.PlanResponse{Plan: plan})
}
