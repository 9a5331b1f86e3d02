package arith

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramCache(t *testing.T) {
	t.Parallel()

	t.Run("miss then hit", func(t *testing.T) {
		t.Parallel()
		c := newProgramCache(4)

		_, ok := c.get("1 + 1")
		require.False(t, ok)

		prog, err := Parse("1 + 1")
		require.NoError(t, err)
		c.put("1 + 1", prog)

		cached, ok := c.get("1 + 1")
		require.True(t, ok)
		assert.Same(t, prog, cached)
		assert.Equal(t, 1, c.len())
	})

	t.Run("evicts the least recently used entry", func(t *testing.T) {
		t.Parallel()
		c := newProgramCache(2)

		for _, source := range []string{"1", "2"} {
			prog, err := Parse(source)
			require.NoError(t, err)
			c.put(source, prog)
		}

		// Touch "1" so "2" becomes the eviction candidate.
		_, ok := c.get("1")
		require.True(t, ok)

		prog, err := Parse("3")
		require.NoError(t, err)
		c.put("3", prog)

		assert.Equal(t, 2, c.len())
		_, ok = c.get("1")
		assert.True(t, ok, "recently used entry must survive")
		_, ok = c.get("2")
		assert.False(t, ok, "least recently used entry must be evicted")
		_, ok = c.get("3")
		assert.True(t, ok)
	})

	t.Run("put replaces an existing key without growing", func(t *testing.T) {
		t.Parallel()
		c := newProgramCache(2)

		first, err := Parse("1 + 1")
		require.NoError(t, err)
		c.put("1 + 1", first)

		second, err := Parse("1 + 1")
		require.NoError(t, err)
		c.put("1 + 1", second)

		assert.Equal(t, 1, c.len())
		cached, ok := c.get("1 + 1")
		require.True(t, ok)
		assert.Same(t, second, cached)
	})

	t.Run("non-positive capacity falls back to the default", func(t *testing.T) {
		t.Parallel()
		c := newProgramCache(0)
		assert.Equal(t, defaultCacheCapacity, c.capacity)

		c = newProgramCache(-5)
		assert.Equal(t, defaultCacheCapacity, c.capacity)
	})
}

func TestProgramCacheGetOrParse(t *testing.T) {
	t.Parallel()

	t.Run("parses on miss and caches the result", func(t *testing.T) {
		t.Parallel()
		c := newProgramCache(4)

		first, err := c.getOrParse("#1 + #2")
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := c.getOrParse("#1 + #2")
		require.NoError(t, err)
		assert.Same(t, first, second, "second lookup must hit the cache")
	})

	t.Run("parse failures are not cached", func(t *testing.T) {
		t.Parallel()
		c := newProgramCache(4)

		_, err := c.getOrParse("1 + ")
		require.Error(t, err)
		assert.Equal(t, 0, c.len())
	})

	t.Run("concurrent lookups", func(t *testing.T) {
		t.Parallel()
		c := newProgramCache(8)

		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()

				source := fmt.Sprintf("#%d + 1", n%4)
				prog, err := c.getOrParse(source)
				assert.NoError(t, err)
				assert.NotNil(t, prog)
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 4, c.len())
	})
}
