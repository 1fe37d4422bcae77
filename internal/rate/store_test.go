package rate

import (
	"sync"
	"testing"

	"fxconverter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSnapshot(t *testing.T, base, date string, rates map[string]float64) *domain.Snapshot {
	t.Helper()
	snap, err := domain.NewSnapshot(base, date, rates)
	require.NoError(t, err)
	return snap
}

func TestStore_EmptyUntilReplaced(t *testing.T) {
	s := NewStore()

	snap, ok := s.Snapshot()
	require.False(t, ok)
	require.Nil(t, snap)

	want := mustSnapshot(t, "MYR", "2024-01-01", map[string]float64{"USD": 0.21})
	s.Replace(want)

	got, ok := s.Snapshot()
	require.True(t, ok)
	require.Same(t, want, got)
}

func TestStore_ReplaceNilKeepsCurrent(t *testing.T) {
	s := NewStore()
	want := mustSnapshot(t, "MYR", "2024-01-01", nil)
	s.Replace(want)
	s.Replace(nil)

	got, ok := s.Snapshot()
	require.True(t, ok)
	require.Same(t, want, got)
}

func TestStore_ConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	s := NewStore()
	first := mustSnapshot(t, "MYR", "2024-01-01", map[string]float64{"USD": 0.21})
	second := mustSnapshot(t, "MYR", "2024-01-02", map[string]float64{"USD": 0.22})
	s.Replace(first)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				snap, ok := s.Snapshot()
				if !assert.True(t, ok) {
					return
				}
				usd, _ := snap.Rate("USD")
				// date and rate always come from the same snapshot
				switch snap.Date() {
				case "2024-01-01":
					assert.InDelta(t, 0.21, usd, 1e-12)
				case "2024-01-02":
					assert.InDelta(t, 0.22, usd, 1e-12)
				default:
					t.Errorf("unexpected date %q", snap.Date())
				}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 200; j++ {
			if j%2 == 0 {
				s.Replace(second)
			} else {
				s.Replace(first)
			}
		}
	}()
	wg.Wait()
}
