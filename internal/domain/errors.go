package domain

import (
	"errors"
	"fmt"
)

var (
	ErrStoreUninitialized = errors.New("rates not loaded")
	ErrUpstreamFetch      = errors.New("rates fetch failed")
	ErrInvalidRate        = errors.New("invalid rate")
	ErrResultOutOfRange   = errors.New("conversion result out of range")
	ErrGeolocation        = errors.New("geolocation failed")
)

type Side string

const (
	SideSource Side = "source"
	SideTarget Side = "target"
)

// UnknownCurrencyError reports a currency code missing from the active snapshot.
type UnknownCurrencyError struct {
	Code string
	Side Side
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown %s currency: %s", e.Side, e.Code)
}
