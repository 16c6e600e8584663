package utils_test

import (
	"testing"
	"time"

	"networth/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Run("empty cache misses", func(t *testing.T) {
		cache := utils.NewCache[[]string]()
		_, ok := cache.Get(time.Now())
		assert.False(t, ok)
	})

	t.Run("set then get within the expiration window", func(t *testing.T) {
		cache := utils.NewCache[[]string]()
		cache.Set([]string{"a", "b"}, time.Minute)

		value, ok := cache.Get(time.Now())
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, value)
	})

	t.Run("expired value misses", func(t *testing.T) {
		cache := utils.NewCache[int]()
		cache.Set(42, -time.Second)

		_, ok := cache.Get(time.Now())
		assert.False(t, ok)
	})

	t.Run("refreshAfter in the past forces a miss", func(t *testing.T) {
		cache := utils.NewCache[int]()
		cache.Set(42, time.Minute)

		_, ok := cache.Get(time.Now().Add(-time.Hour))
		assert.False(t, ok)
	})

	t.Run("clear empties the cache", func(t *testing.T) {
		cache := utils.NewCache[int]()
		cache.Set(42, time.Minute)
		cache.Clear()

		_, ok := cache.Get(time.Now())
		assert.False(t, ok)
	})
}
