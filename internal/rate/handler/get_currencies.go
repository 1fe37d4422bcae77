package handler

import (
	"fxconverter/internal/domain"
	"net/http"
)

type GetCurrenciesResponse struct {
	Base       string            `json:"base" example:"MYR"`
	Date       string            `json:"date" example:"2024-01-01"`
	Currencies []domain.Currency `json:"currencies"`
}

// GetCurrencies godoc
// @Summary List known currencies
// @Description Lists every currency of the active snapshot with its display name
// @Tags Rates
// @Produce json
// @Success 200 {object} GetCurrenciesResponse
// @Failure 503 {string} string "rates not loaded"
// @Router /currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, _ *http.Request) {
	list, err := h.service.Currencies()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, domain.ErrStoreUninitialized.Error())
		return
	}
	writeJSON(w, http.StatusOK, GetCurrenciesResponse{
		Base:       list.Base,
		Date:       list.Date,
		Currencies: list.Currencies,
	})
}
