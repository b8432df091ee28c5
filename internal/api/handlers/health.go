package handlers

import (
	"heavy-haul-service/internal/services"
	"net/http"
)

// HealthHandler reports liveness along with the size of the loaded reference data.
type HealthHandler struct {
	Ref services.ReferenceData
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	states := 0
	if h.Ref.Permits != nil {
		states = len(h.Ref.Permits.StateCodes())
	}

	res := map[string]any{
		"status": "ok",
		"trucks": len(h.Ref.Trucks),
		"states": states,
	}
	writeJSON(w, r, http.StatusOK, res)
}
