package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSnapshot_InjectsBaseAndUppercases(t *testing.T) {
	snap, err := NewSnapshot("myr", "2024-01-01", map[string]float64{"usd": 0.21, "EUR": 0.19})
	require.NoError(t, err)

	require.Equal(t, "MYR", snap.Base())
	require.Equal(t, "2024-01-01", snap.Date())
	require.Equal(t, []string{"EUR", "MYR", "USD"}, snap.Codes())

	v, ok := snap.Rate("MYR")
	require.True(t, ok)
	require.Equal(t, 1.0, v)

	v, ok = snap.Rate("USD")
	require.True(t, ok)
	require.InDelta(t, 0.21, v, 1e-12)
}

func TestNewSnapshot_OverridesProviderBaseRate(t *testing.T) {
	snap, err := NewSnapshot("USD", "2024-01-01", map[string]float64{"USD": 1.5})
	require.NoError(t, err)
	v, _ := snap.Rate("USD")
	require.Equal(t, 1.0, v)
}

func TestNewSnapshot_RejectsInvalidRates(t *testing.T) {
	cases := map[string]float64{
		"zero":     0,
		"negative": -1,
		"nan":      math.NaN(),
		"inf":      math.Inf(1),
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewSnapshot("MYR", "2024-01-01", map[string]float64{"USD": value})
			require.ErrorIs(t, err, ErrInvalidRate)
		})
	}
}

func TestNewSnapshot_RejectsEmptyBase(t *testing.T) {
	_, err := NewSnapshot(" ", "2024-01-01", nil)
	require.ErrorIs(t, err, ErrInvalidRate)
}

func TestSnapshot_AccessorsReturnCopies(t *testing.T) {
	src := map[string]float64{"USD": 0.21}
	snap, err := NewSnapshot("MYR", "2024-01-01", src)
	require.NoError(t, err)

	src["USD"] = 99
	rates := snap.Rates()
	rates["USD"] = 42
	codes := snap.Codes()
	codes[0] = "XXX"

	v, _ := snap.Rate("USD")
	require.InDelta(t, 0.21, v, 1e-12)
	require.Equal(t, []string{"MYR", "USD"}, snap.Codes())
}

func TestSnapshot_MarshalJSON(t *testing.T) {
	snap, err := NewSnapshot("MYR", "2024-01-01", map[string]float64{"USD": 0.21})
	require.NoError(t, err)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	require.JSONEq(t, `{"date":"2024-01-01","base":"MYR","rates":{"MYR":1,"USD":0.21}}`, string(raw))
}

func TestUnknownCurrencyError_Message(t *testing.T) {
	err := &UnknownCurrencyError{Code: "XXX", Side: SideSource}
	require.Equal(t, "unknown source currency: XXX", err.Error())
}
