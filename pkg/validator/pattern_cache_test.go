package validator

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternCache(t *testing.T) {
	t.Parallel()

	t.Run("reuses compiled patterns", func(t *testing.T) {
		t.Parallel()
		c := newPatternCache(2)

		first, err := c.compile("^a+$")
		require.NoError(t, err)
		second, err := c.compile("^a+$")
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, 1, c.len())
	})

	t.Run("caches failures", func(t *testing.T) {
		t.Parallel()
		c := newPatternCache(2)

		_, err := c.compile("([")
		require.Error(t, err)
		_, err = c.compile("([")
		require.Error(t, err)
		assert.Equal(t, 1, c.len())
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()
		c := newPatternCache(2)

		a, _ := c.compile("a")
		_, _ = c.compile("b")
		_, _ = c.compile("a")
		_, _ = c.compile("c")

		assert.Equal(t, 2, c.len())
		again, _ := c.compile("a")
		assert.Same(t, a, again, "a was used last and survives")
		assert.NotContains(t, c.items, "b")
	})

	t.Run("concurrent callers share one result", func(t *testing.T) {
		t.Parallel()
		c := newPatternCache(4)

		const workers = 16
		results := make([]*regexp.Regexp, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i], _ = c.compile("^[a-z]+$")
			}()
		}
		wg.Wait()

		cached, err := c.compile("^[a-z]+$")
		require.NoError(t, err)
		for _, re := range results {
			assert.Same(t, cached, re)
		}
		assert.Equal(t, 1, c.len())
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { newPatternCache(0) })
	})
}
