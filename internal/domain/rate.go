package domain

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// Snapshot is an immutable set of rates relative to a single base currency.
type Snapshot struct {
	base  string
	date  string
	rates map[string]float64
	codes []string
}

// NewSnapshot normalizes codes to upper case and pins the base rate to 1.0.
// Non-positive and non-finite rates are rejected.
func NewSnapshot(base string, date string, rates map[string]float64) (*Snapshot, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		return nil, fmt.Errorf("%w: empty base currency", ErrInvalidRate)
	}

	normalized := make(map[string]float64, len(rates)+1)
	for code, value := range rates {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("%w: %q has rate %v", ErrInvalidRate, code, value)
		}
		normalized[code] = value
	}
	normalized[base] = 1.0

	codes := slices.Collect(maps.Keys(normalized))
	slices.Sort(codes)

	return &Snapshot{base: base, date: date, rates: normalized, codes: codes}, nil
}

func (s *Snapshot) Base() string { return s.base }

func (s *Snapshot) Date() string { return s.date }

// Rate returns the rate for an upper-case code.
func (s *Snapshot) Rate(code string) (float64, bool) {
	v, ok := s.rates[code]
	return v, ok
}

func (s *Snapshot) Has(code string) bool {
	_, ok := s.rates[code]
	return ok
}

// Rates returns a copy of the rate table.
func (s *Snapshot) Rates() map[string]float64 {
	return maps.Clone(s.rates)
}

// Codes returns the known currency codes sorted alphabetically.
func (s *Snapshot) Codes() []string {
	return slices.Clone(s.codes)
}

func (s *Snapshot) Len() int { return len(s.rates) }

type snapshotJSON struct {
	Date  string             `json:"date"`
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (s *Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshotJSON{Date: s.date, Base: s.base, Rates: s.rates})
}
