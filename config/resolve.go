package config

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Resolve validates raw and returns the resolved configuration: analytics
// expanded into head tags, theme locale text merged field by field and every
// map and slice copied. The first defect found is returned and nothing else.
// Resolving an already resolved configuration returns it unchanged.
func Resolve(raw SiteConfig) (SiteConfig, error) {
	base, err := normalizeBase(raw.Base)
	if err != nil {
		return SiteConfig{}, err
	}

	locales, err := resolveLocales(raw.Locales)
	if err != nil {
		return SiteConfig{}, err
	}

	head, err := resolveHead(raw.Analytics, raw.Head)
	if err != nil {
		return SiteConfig{}, err
	}

	theme, err := resolveTheme(raw.ThemeConfig)
	if err != nil {
		return SiteConfig{}, err
	}

	return SiteConfig{
		Base:        base,
		Locales:     locales,
		Head:        head,
		ThemeConfig: theme,
	}, nil
}

// Compose resolves raw and builds its navigation tree.
func Compose(raw SiteConfig) (Site, error) {
	cfg, err := Resolve(raw)
	if err != nil {
		return Site{}, err
	}

	nav, err := BuildNavigation(cfg.ThemeConfig.Sidebar)
	if err != nil {
		return Site{}, err
	}

	return Site{Config: cfg, Navigation: nav}, nil
}

// Locale returns the locale for key, or the root locale when key is unknown.
func (c SiteConfig) Locale(key string) LocaleConfig {
	if l, ok := c.Locales[key]; ok {
		return l
	}
	return c.Locales[RootLocale]
}

// LocaleView is everything a renderer needs for pages of one locale.
type LocaleView struct {
	Key    string       `yaml:"key" json:"key"`
	Base   string       `yaml:"base" json:"base"`
	Locale LocaleConfig `yaml:"locale" json:"locale"`
	Theme  ThemeLocale  `yaml:"theme" json:"theme"`
	Head   []HeadTag    `yaml:"head" json:"head"`
}

// View returns the configuration for key. Unknown keys get the root locale
// and report RootLocale as their key.
func (c SiteConfig) View(key string) LocaleView {
	if _, ok := c.Locales[key]; !ok {
		key = RootLocale
	}
	return LocaleView{
		Key:    key,
		Base:   c.Base,
		Locale: c.Locale(key),
		Theme:  c.ThemeConfig.LocaleText(key),
		Head:   c.Head,
	}
}

func (c SiteConfig) DefaultLocale() LocaleConfig {
	return c.Locales[RootLocale]
}

// LocaleKeyFor returns the longest locale key that prefixes pagePath.
func (c SiteConfig) LocaleKeyFor(pagePath string) string {
	best := RootLocale
	for key := range c.Locales {
		if len(key) > len(best) && strings.HasPrefix(pagePath, key) {
			best = key
		}
	}
	return best
}

// LocaleKeys returns the locale keys sorted, root first.
func (c SiteConfig) LocaleKeys() []string {
	return sortedKeys(c.Locales)
}

func normalizeBase(base string) (string, error) {
	if base == "" {
		return RootLocale, nil
	}
	if !strings.HasPrefix(base, "/") || !strings.HasSuffix(base, "/") {
		return "", &ConfigError{
			Kind:    InvalidPath,
			Field:   "base",
			Path:    base,
			Message: "base must start and end with /",
		}
	}
	return base, nil
}

func resolveLocales(raw map[string]LocaleConfig) (map[string]LocaleConfig, error) {
	if _, ok := raw[RootLocale]; !ok {
		return nil, &ConfigError{
			Kind:    MissingDefaultLocale,
			Key:     RootLocale,
			Message: "locales must contain the root locale",
		}
	}

	locales := make(map[string]LocaleConfig, len(raw))
	for _, key := range sortedKeys(raw) {
		l := raw[key]
		if msg := checkLocaleKey(key); msg != "" {
			return nil, &ConfigError{Kind: InvalidLocaleConfig, Key: key, Message: msg}
		}
		if l.Lang == "" {
			return nil, &ConfigError{Kind: InvalidLocaleConfig, Key: key, Field: "lang", Message: "must not be empty"}
		}
		if _, err := language.Parse(l.Lang); err != nil {
			return nil, &ConfigError{Kind: InvalidLocaleConfig, Key: key, Field: "lang", Message: err.Error()}
		}
		if l.Title == "" {
			return nil, &ConfigError{Kind: InvalidLocaleConfig, Key: key, Field: "title", Message: "must not be empty"}
		}
		locales[key] = l
	}

	return locales, nil
}

func resolveHead(analytics Analytics, raw []HeadTag) ([]HeadTag, error) {
	injected, err := analytics.HeadTags()
	if err != nil {
		return nil, err
	}

	var head []HeadTag
	head = append(head, injected...)
	for i, tag := range raw {
		if !IsSupportedHeadTag(tag.Tag) {
			return nil, &ConfigError{Kind: UnsupportedHeadTag, Tag: tag.Tag, Index: i}
		}
		tag = tag.clone()
		if tag.Tag != "script" {
			tag.Async = false
		}
		head = append(head, tag)
	}

	return head, nil
}

func resolveTheme(raw ThemeConfig) (ThemeConfig, error) {
	if raw.SidebarDepth < 0 {
		return ThemeConfig{}, &ConfigError{
			Kind:    InvalidThemeConfig,
			Field:   "sidebarDepth",
			Message: "must not be negative",
		}
	}

	for _, key := range sortedKeys(raw.Locales) {
		if msg := checkLocaleKey(key); msg != "" {
			return ThemeConfig{}, &ConfigError{Kind: InvalidLocaleConfig, Key: key, Field: "themeConfig.locales", Message: msg}
		}
	}

	if _, err := BuildNavigation(raw.Sidebar); err != nil {
		return ThemeConfig{}, err
	}

	base := raw
	base.Locales = nil
	return MergeThemeOverrides(base, raw.Locales), nil
}

func checkLocaleKey(key string) string {
	if !strings.HasPrefix(key, "/") || !strings.HasSuffix(key, "/") {
		return "locale key must start and end with /"
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == RootLocale || keys[j] == RootLocale {
			return keys[i] == RootLocale && keys[j] != RootLocale
		}
		return keys[i] < keys[j]
	})
	return keys
}
