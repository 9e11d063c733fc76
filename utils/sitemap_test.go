package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ZacxDev/go-docs-site/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite(t *testing.T) config.Site {
	t.Helper()
	site, err := config.Compose(config.SiteConfig{
		Locales: map[string]config.LocaleConfig{
			"/":    {Lang: "zh-CN", Title: "文档"},
			"/en/": {Lang: "en-US", Title: "Docs"},
		},
		ThemeConfig: config.ThemeConfig{
			Sidebar: []string{"/", "/get-start.md", "/"},
		},
	})
	require.NoError(t, err)
	return site
}

func TestPageURL(t *testing.T) {
	tests := []struct {
		base, locale, page, want string
	}{
		{"/", "/", "/", "/"},
		{"/", "/", "/get-start.md", "/get-start.html"},
		{"/", "/", "/README.md", "/"},
		{"/", "/en/", "/", "/en/"},
		{"/", "/en/", "/guide/README.md", "/en/guide/"},
		{"/", "/en/", "/guide/index.md", "/en/guide/"},
		{"/docs/", "/en/", "/get-start.md", "/docs/en/get-start.html"},
		{"/", "/", "/guide/", "/guide/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageURL(tt.base, tt.locale, tt.page), "%+v", tt)
	}
}

func TestGenerateSitemapContent(t *testing.T) {
	lastMod := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	out, err := GenerateSitemapContent("https://docs.example.com/", testSite(t), lastMod)
	require.NoError(t, err)

	for _, loc := range []string{
		"<loc>https://docs.example.com/</loc>",
		"<loc>https://docs.example.com/get-start.html</loc>",
		"<loc>https://docs.example.com/en/</loc>",
		"<loc>https://docs.example.com/en/get-start.html</loc>",
	} {
		assert.Equal(t, 1, strings.Count(out, loc), loc)
	}
	assert.Equal(t, 4, strings.Count(out, "<url>"))
	assert.Contains(t, out, "<lastmod>2024-03-01</lastmod>")
}

func TestGenerateSitemaps(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "sitemap.xml")

	require.NoError(t, GenerateSitemaps(filename, "https://docs.example.com", testSite(t), time.Time{}))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))
	assert.NotContains(t, string(data), "<lastmod>")
}
