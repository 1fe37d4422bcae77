package rate

import (
	"context"
	"errors"
	"testing"

	"fxconverter/internal/domain"
	"fxconverter/internal/platform/metrics"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_ReplacesSnapshot(t *testing.T) {
	client := new(MockRateClient)
	store := NewStore()
	loader := NewLoader(client, store, " myr ", metrics.New())

	snap := mustSnapshot(t, "MYR", "2024-01-01", map[string]float64{"USD": 0.21})
	client.On("GetLatestRates", mock.Anything, "MYR").Return(snap, nil).Once()

	got, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Same(t, snap, got)

	current, ok := store.Snapshot()
	require.True(t, ok)
	require.Same(t, snap, current)
	client.AssertExpectations(t)
}

func TestLoader_Load_ErrorKeepsPreviousSnapshot(t *testing.T) {
	client := new(MockRateClient)
	store := NewStore()
	previous := mustSnapshot(t, "MYR", "2024-01-01", nil)
	store.Replace(previous)
	loader := NewLoader(client, store, "MYR", nil)

	client.On("GetLatestRates", mock.Anything, "MYR").
		Return(nil, errors.Join(domain.ErrUpstreamFetch, errors.New("boom"))).Once()

	_, err := loader.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrUpstreamFetch)
	require.Contains(t, err.Error(), `failed to load rates for base "MYR"`)

	current, ok := store.Snapshot()
	require.True(t, ok)
	require.Same(t, previous, current)
}
