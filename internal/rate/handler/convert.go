package handler

import (
	"errors"
	"fmt"
	"fxconverter/internal/domain"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type ConvertResponse struct {
	From   string  `json:"from" example:"MYR"`
	Amount float64 `json:"amount" example:"1000"`
	To     string  `json:"to" example:"USD"`
	Result float64 `json:"result" example:"210"`
	Date   string  `json:"date" example:"2024-01-01"`
}

// Convert godoc
// @Summary Convert an amount
// @Description Converts amount from one currency into another using the active snapshot
// @Tags Rates
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Success 200 {object} ConvertResponse
// @Failure 400 {string} string "unknown source currency: XXX"
// @Failure 500 {string} string "ups, couldn't convert this time"
// @Failure 503 {string} string "rates not loaded"
// @Router /convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	amount, err := parseAmount(query.Get("amount"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	from := strings.TrimSpace(query.Get("from"))
	if from == "" {
		writeError(w, http.StatusBadRequest, "missing 'from' query parameter")
		return
	}
	to := strings.TrimSpace(query.Get("to"))
	if to == "" {
		writeError(w, http.StatusBadRequest, "missing 'to' query parameter")
		return
	}

	conv, err := h.service.Convert(amount, from, to)
	if err != nil {
		var unknown *domain.UnknownCurrencyError
		switch {
		case errors.Is(err, domain.ErrStoreUninitialized):
			writeError(w, http.StatusServiceUnavailable, domain.ErrStoreUninitialized.Error())
		case errors.As(err, &unknown):
			writeError(w, http.StatusBadRequest, unknown.Error())
		case errors.Is(err, domain.ErrResultOutOfRange):
			writeError(w, http.StatusBadRequest, domain.ErrResultOutOfRange.Error())
		default:
			msg := "ups, couldn't convert this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "Convert", "from": from, "to": to}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		From:   conv.From,
		Amount: conv.Amount,
		To:     conv.To,
		Result: conv.Result,
		Date:   conv.Date,
	})
}

func parseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("missing 'amount' query parameter")
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("invalid 'amount' query parameter: %q", raw)
	}
	return amount, nil
}
