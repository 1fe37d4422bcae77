package handler

import (
	"fxconverter/internal/domain"
	"net/http"
)

type DetectCurrencyResponse struct {
	DetectedCurrency string   `json:"detected_currency" example:"MYR"`
	Available        bool     `json:"available" example:"true"`
	SuggestedTarget  string   `json:"suggested_target,omitempty" example:"USD"`
	AllCurrencies    []string `json:"all_currencies,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// DetectCurrency godoc
// @Summary Guess the caller's currency
// @Description Resolves the caller IP to a country and maps it to a currency. Geolocation failures fall back to USD.
// @Tags Rates
// @Produce json
// @Success 200 {object} DetectCurrencyResponse
// @Router /detect-currency [get]
func (h *Handler) DetectCurrency(w http.ResponseWriter, r *http.Request) {
	det := h.service.DetectCurrency(r.Context(), clientIP(r))

	if !det.Loaded {
		writeJSON(w, http.StatusOK, DetectCurrencyResponse{
			DetectedCurrency: det.Currency,
			Available:        false,
			Error:            domain.ErrStoreUninitialized.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, DetectCurrencyResponse{
		DetectedCurrency: det.Currency,
		Available:        det.Available,
		SuggestedTarget:  det.SuggestedTarget,
		AllCurrencies:    det.AllCurrencies,
	})
}
