package rate

import (
	"fmt"
	"fxconverter/internal/domain"
	"math"
)

// Convert converts amount from one currency into another using rates expressed against base.
// Codes must already be normalized to upper case.
func Convert(amount float64, from, to, base string, rates map[string]float64) (float64, error) {
	if err := validateCodes(rates, from, to); err != nil {
		return 0, err
	}
	if from == to {
		return amount, nil
	}

	fromRate, toRate := rates[from], rates[to]
	if err := validateRate(from, fromRate); err != nil {
		return 0, err
	}
	if err := validateRate(to, toRate); err != nil {
		return 0, err
	}

	var result float64
	switch {
	case from == base:
		result = amount * toRate
	case to == base:
		result = amount / fromRate
	default:
		result = amount / fromRate * toRate
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("%w: %v %s to %s", domain.ErrResultOutOfRange, amount, from, to)
	}
	return result, nil
}

// validateCodes checks the source side first so it wins when both are unknown.
func validateCodes(rates map[string]float64, from, to string) error {
	if _, ok := rates[from]; !ok {
		return &domain.UnknownCurrencyError{Code: from, Side: domain.SideSource}
	}
	if _, ok := rates[to]; !ok {
		return &domain.UnknownCurrencyError{Code: to, Side: domain.SideTarget}
	}
	return nil
}

func validateRate(code string, value float64) error {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %q has rate %v", domain.ErrInvalidRate, code, value)
	}
	return nil
}
