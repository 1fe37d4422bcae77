package handler

import (
	"fxconverter/internal/domain"
	"net/http"
)

// GetRates godoc
// @Summary Get current rates
// @Description Returns the active rate snapshot relative to the configured base currency
// @Tags Rates
// @Produce json
// @Success 200 {object} RatesResponse
// @Failure 503 {string} string "rates not loaded"
// @Router /rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, _ *http.Request) {
	snapshot, err := h.service.Snapshot()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, domain.ErrStoreUninitialized.Error())
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// RatesResponse documents the snapshot wire format.
type RatesResponse struct {
	Date  string             `json:"date" example:"2024-01-01"`
	Base  string             `json:"base" example:"MYR"`
	Rates map[string]float64 `json:"rates"`
}
