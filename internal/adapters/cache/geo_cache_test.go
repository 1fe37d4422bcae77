package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGeoCache_SetAndGet(t *testing.T) {
	c, err := NewGeoCache(128, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	c.Set("203.0.113.7", "MY")
	c.cache.Wait()

	got, ok := c.Get("203.0.113.7")
	require.True(t, ok)
	require.Equal(t, "MY", got)
}

func TestGeoCache_GetMissWhenEmpty(t *testing.T) {
	c, err := NewGeoCache(64, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	code, ok := c.Get("198.51.100.1")
	require.False(t, ok)
	require.Empty(t, code)
}

func TestGeoCache_EntriesExpire(t *testing.T) {
	c, err := NewGeoCache(64, 50*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	c.Set("192.0.2.1", "DE")
	c.cache.Wait()
	_, ok := c.Get("192.0.2.1")
	require.True(t, ok)

	require.Eventually(t, func() bool {
		_, ok := c.Get("192.0.2.1")
		return !ok
	}, 2*time.Second, 20*time.Millisecond)
}

func TestNewGeoCache_Defaults(t *testing.T) {
	c, err := NewGeoCache(0, 0)
	require.NoError(t, err)
	defer c.Close()
	require.Equal(t, time.Hour, c.ttl)
}
