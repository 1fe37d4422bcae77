package rate

import (
	"errors"
	"math"
	"testing"

	"fxconverter/internal/domain"

	"github.com/stretchr/testify/require"
)

var scenarioRates = map[string]float64{"MYR": 1.0, "USD": 0.21, "EUR": 0.19, "JPY": 31.7}

func TestConvert_Scenario(t *testing.T) {
	got, err := Convert(1000, "MYR", "USD", "MYR", scenarioRates)
	require.NoError(t, err)
	require.InDelta(t, 210.0, got, 1e-9)

	got, err = Convert(1000, "USD", "EUR", "MYR", scenarioRates)
	require.NoError(t, err)
	require.InDelta(t, 904.76, got, 0.01)
	require.InDelta(t, 1000*0.19/0.21, got, 1e-9)

	got, err = Convert(210, "USD", "MYR", "MYR", scenarioRates)
	require.NoError(t, err)
	require.InDelta(t, 1000.0, got, 1e-9)
}

func TestConvert_SameCurrencyIsExact(t *testing.T) {
	for _, amount := range []float64{0, 1, -3.5, 1234.5678, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		for code := range scenarioRates {
			got, err := Convert(amount, code, code, "MYR", scenarioRates)
			require.NoError(t, err)
			require.Equal(t, amount, got)
		}
	}
}

func TestConvert_ZeroAmount(t *testing.T) {
	got, err := Convert(0, "USD", "JPY", "MYR", scenarioRates)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestConvert_RoundTrip(t *testing.T) {
	amounts := []float64{1, 0.01, 99.99, 1e6, -250}
	for from := range scenarioRates {
		for to := range scenarioRates {
			for _, amount := range amounts {
				there, err := Convert(amount, from, to, "MYR", scenarioRates)
				require.NoError(t, err)
				back, err := Convert(there, to, from, "MYR", scenarioRates)
				require.NoError(t, err)
				require.InEpsilon(t, amount, back, 1e-9, "%s->%s->%s", from, to, from)
			}
		}
	}
}

func TestConvert_Linear(t *testing.T) {
	for _, k := range []float64{-2, 0.5, 3, 1000} {
		base, err := Convert(17.25, "EUR", "JPY", "MYR", scenarioRates)
		require.NoError(t, err)
		scaled, err := Convert(k*17.25, "EUR", "JPY", "MYR", scenarioRates)
		require.NoError(t, err)
		require.InEpsilon(t, k*base, scaled, 1e-9)
	}
}

func TestConvert_UnknownCurrency(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
		wantCode string
		wantSide domain.Side
	}{
		{name: "unknown source", from: "XXX", to: "USD", wantCode: "XXX", wantSide: domain.SideSource},
		{name: "unknown target", from: "USD", to: "YYY", wantCode: "YYY", wantSide: domain.SideTarget},
		{name: "both unknown reports source", from: "XXX", to: "YYY", wantCode: "XXX", wantSide: domain.SideSource},
		{name: "same unknown", from: "ZZZ", to: "ZZZ", wantCode: "ZZZ", wantSide: domain.SideSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Convert(1, tc.from, tc.to, "MYR", scenarioRates)
			var unknown *domain.UnknownCurrencyError
			require.True(t, errors.As(err, &unknown))
			require.Equal(t, tc.wantCode, unknown.Code)
			require.Equal(t, tc.wantSide, unknown.Side)
		})
	}
}

func TestConvert_InvalidRateIsAnError(t *testing.T) {
	rates := map[string]float64{"MYR": 1, "BAD": 0, "NAN": math.NaN()}

	_, err := Convert(10, "BAD", "MYR", "MYR", rates)
	require.ErrorIs(t, err, domain.ErrInvalidRate)

	_, err = Convert(10, "MYR", "NAN", "MYR", rates)
	require.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestConvert_OverflowingResult(t *testing.T) {
	cases := []struct {
		name     string
		amount   float64
		from, to string
	}{
		{name: "to base", amount: 1e308, from: "EUR", to: "MYR"},
		{name: "from base", amount: math.MaxFloat64, from: "MYR", to: "JPY"},
		{name: "cross", amount: -1e308, from: "EUR", to: "JPY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Convert(tc.amount, tc.from, tc.to, "MYR", scenarioRates)
			require.ErrorIs(t, err, domain.ErrResultOutOfRange)
		})
	}
}

func TestConvert_NaNAmount(t *testing.T) {
	_, err := Convert(math.NaN(), "MYR", "USD", "MYR", scenarioRates)
	require.ErrorIs(t, err, domain.ErrResultOutOfRange)
}
