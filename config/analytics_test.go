package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsHeadTags(t *testing.T) {
	tags, err := Analytics{}.HeadTags()
	require.NoError(t, err)
	assert.Empty(t, tags)

	tags, err = Analytics{Provider: AnalyticsNone, ID: "ignored"}.HeadTags()
	require.NoError(t, err)
	assert.Empty(t, tags)

	tags, err = Analytics{Provider: AnalyticsGoogleAnalytics, ID: "UA-131918267-5"}.HeadTags()
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "https://www.googletagmanager.com/gtag/js?id=UA-131918267-5", tags[0].Attributes["src"])
	assert.True(t, tags[0].Async)
	assert.Contains(t, tags[1].Content, "gtag('config', 'UA-131918267-5');")
	assert.Empty(t, tags[1].Attributes)
}

func TestAnalyticsRequiresID(t *testing.T) {
	_, err := Analytics{Provider: AnalyticsCNZZ}.HeadTags()
	assert.ErrorIs(t, err, ErrUnsupportedAnalyticsProvider)
}

func TestAnalyticsTagsComeFirst(t *testing.T) {
	raw := docsConfig()
	raw.Analytics = Analytics{Provider: AnalyticsGoogleAnalytics, ID: "UA-1"}

	cfg, err := Resolve(raw)
	require.NoError(t, err)

	tags := make([]string, len(cfg.Head))
	for i, h := range cfg.Head {
		tags[i] = h.Tag
	}
	assert.Equal(t, []string{"script", "script", "link"}, tags)
}

func TestAnalyticsRejectsUnsafeID(t *testing.T) {
	for _, id := range []string{
		"UA-1'); alert(1); ('",
		"UA 1",
		`G-"x"`,
		"</script>",
	} {
		for _, provider := range []AnalyticsProvider{AnalyticsCNZZ, AnalyticsGoogleAnalytics} {
			_, err := Analytics{Provider: provider, ID: id}.HeadTags()
			assert.ErrorIs(t, err, ErrUnsupportedAnalyticsProvider, "%s %q", provider, id)
		}
	}

	raw := docsConfig()
	raw.Analytics = Analytics{Provider: AnalyticsGoogleAnalytics, ID: "G-1'"}
	_, err := Resolve(raw)
	assert.ErrorIs(t, err, ErrUnsupportedAnalyticsProvider)
}
