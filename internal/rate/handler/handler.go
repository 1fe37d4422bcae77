package handler

import (
	"context"
	"encoding/json"
	"fxconverter/internal/domain"
	"fxconverter/internal/rate"
	"net"
	"net/http"

	"github.com/sirupsen/logrus"
)

type RateService interface {
	Snapshot() (*domain.Snapshot, error)
	Convert(amount float64, from, to string) (rate.Conversion, error)
	DetectCurrency(ctx context.Context, ip string) rate.Detection
	Currencies() (rate.CurrencyList, error)
}

type Handler struct {
	service RateService
}

func NewRateHandler(rateService RateService) *Handler {
	return &Handler{service: rateService}
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		logrus.WithError(err).Error("Failed to encode response")
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(append(payload, '\n'))
}

// writeError answers with a plain text message, which is what the API's clients display as is.
func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	http.Error(w, errorMsg, statusCode)
}

// clientIP returns the host part of the peer address, or "" if it is not an IP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.String()
	}
	return ""
}
