package handlers

import (
	"heavy-haul-service/internal/api/dto"
	"heavy-haul-service/internal/domain"
	"heavy-haul-service/internal/services"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type HOSHandler struct {
	Validate        *validator.Validate
	AverageSpeedMPH float64
}

// ValidateTrip checks a trip against federal hours-of-service limits.
func (h *HOSHandler) ValidateTrip(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.HOSValidateRequest
	if !decodeRequest(w, r, h.Validate, &req) {
		return
	}
	if req.Cycle == string(domain.Cycle60Hour7Day) && req.Status != nil &&
		req.Status.CycleHoursRemaining > services.FederalHOS.Cycle60Limit {
		writeError(w, r, http.StatusBadRequest, "cycle_hours_remaining exceeds the 60/7 cycle limit")
		return
	}

	hours := req.DrivingHours
	if hours == 0 {
		speed := req.AverageSpeedMPH
		if speed == 0 {
			speed = h.AverageSpeedMPH
		}
		hours = services.EstimateDrivingHours(req.Miles, speed)
	}

	status := hosStatus(req.Cycle, req.Status)
	opts := services.HOSOptions{SleeperSplit: domain.SleeperSplit(req.SleeperSplit)}

	writeJSON(w, r, http.StatusOK, dto.HOSValidateResponse{
		DrivingHours: hours,
		Validation:   services.ValidateTripHOS(hours, status, opts),
	})
}

func hosStatus(cycle string, req *dto.HOSStatusRequest) domain.HOSStatus {
	c := domain.Cycle70Hour8Day
	if cycle != "" {
		c = domain.HOSCycle(cycle)
	}
	if req == nil {
		return services.FreshHOSStatus(c)
	}
	return req.ToDomain(c)
}
