package handlers

import (
	"heavy-haul-service/internal/domain"
	"heavy-haul-service/internal/services"
	"net/http"
	"strings"
)

// ReferenceHandler exposes the read-only truck catalog and permit dataset.
type ReferenceHandler struct {
	Ref services.ReferenceData
}

func (h *ReferenceHandler) ListTrucks(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, r, http.StatusOK, map[string][]domain.TruckType{"trucks": h.Ref.Trucks})
}

func (h *ReferenceHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	codes := []string{}
	if h.Ref.Permits != nil {
		codes = h.Ref.Permits.StateCodes()
	}
	writeJSON(w, r, http.StatusOK, map[string][]string{"states": codes})
}

func (h *ReferenceHandler) GetState(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	code := strings.TrimSpace(r.PathValue("code"))
	if h.Ref.Permits == nil {
		writeError(w, r, http.StatusNotFound, domain.ErrUnknownState.Error())
		return
	}

	state, ok := h.Ref.Permits.State(code)
	if !ok {
		writeError(w, r, http.StatusNotFound, domain.ErrUnknownState.Error()+": "+strings.ToUpper(code))
		return
	}

	writeJSON(w, r, http.StatusOK, state)
}
