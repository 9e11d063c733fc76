package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheCompose(t *testing.T) {
	c := NewCache()

	first, err := c.Compose(docsConfig())
	require.NoError(t, err)

	second, err := c.Compose(docsConfig())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.CurrentSize)

	other := docsConfig()
	other.ThemeConfig.Sidebar = []string{"/"}
	site, err := c.Compose(other)
	require.NoError(t, err)
	assert.Len(t, site.Navigation, 1)
	assert.Equal(t, 2, c.Stats().CurrentSize)

	c.Clear()
	assert.Equal(t, 0, c.Stats().CurrentSize)
}

func TestCacheDoesNotStoreErrors(t *testing.T) {
	c := NewCache()
	raw := docsConfig()
	raw.Locales = nil

	for i := 0; i < 2; i++ {
		_, err := c.Compose(raw)
		assert.ErrorIs(t, err, ErrMissingDefaultLocale)
	}
	assert.Equal(t, 0, c.Stats().CurrentSize)
	assert.Equal(t, int64(2), c.Stats().Misses)
}

func TestCacheConcurrentCompose(t *testing.T) {
	c := NewCache()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			site, err := c.Compose(docsConfig())
			assert.NoError(t, err)
			assert.Len(t, site.Navigation, 5)
		}()
	}
	wg.Wait()

	stats := c.Stats()
	assert.Equal(t, int64(16), stats.Hits+stats.Misses)
	assert.Equal(t, 1, stats.CurrentSize)
}

func TestCacheEvictsOldest(t *testing.T) {
	c := NewCache(WithMaxEntries(2))

	sidebars := [][]string{{"/"}, {"/", "/a.md"}, {"/", "/b.md"}}
	for _, sidebar := range sidebars {
		raw := docsConfig()
		raw.ThemeConfig.Sidebar = sidebar
		_, err := c.Compose(raw)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Stats().CurrentSize)
	assert.Equal(t, int64(3), c.Stats().Misses)

	raw := docsConfig()
	raw.ThemeConfig.Sidebar = sidebars[2]
	_, err := c.Compose(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.Stats().Hits)

	raw.ThemeConfig.Sidebar = sidebars[0]
	_, err = c.Compose(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(4), c.Stats().Misses, "oldest entry should have been evicted")
	assert.Equal(t, 2, c.Stats().CurrentSize)
}
