package config

import (
	"dario.cat/mergo"
)

// MergeThemeOverrides applies per-locale overrides to base field by field.
// Each locale starts from base.Locales[key] when present, otherwise from the
// base theme text; only non-empty override fields replace it. Neither
// argument is modified.
func MergeThemeOverrides(base ThemeConfig, overrides map[string]ThemeLocale) ThemeConfig {
	merged := base.clone()
	if len(overrides) == 0 {
		return merged
	}
	if merged.Locales == nil {
		merged.Locales = make(map[string]ThemeLocale, len(overrides))
	}

	for key, override := range overrides {
		text, ok := merged.Locales[key]
		if !ok {
			text = base.ThemeLocale
		}
		merged.Locales[key] = overlay(text, override)
	}

	return merged
}

// LocaleText returns the theme text for a locale key, falling back to the
// root locale and then to the base theme text.
func (t ThemeConfig) LocaleText(key string) ThemeLocale {
	if text, ok := t.Locales[key]; ok {
		return text
	}
	if text, ok := t.Locales[RootLocale]; ok {
		return text
	}
	return t.ThemeLocale
}

// overlay returns dst with the non-empty fields of src applied. If the merge
// fails dst is returned as it was.
func overlay(dst, src ThemeLocale) ThemeLocale {
	merged := dst
	if err := mergo.Merge(&merged, src, mergo.WithOverride); err != nil {
		return dst
	}
	return merged
}

func (t ThemeConfig) clone() ThemeConfig {
	c := t
	if t.Sidebar != nil {
		c.Sidebar = append([]string(nil), t.Sidebar...)
	}
	if t.Locales != nil {
		c.Locales = make(map[string]ThemeLocale, len(t.Locales))
		for k, v := range t.Locales {
			c.Locales[k] = v
		}
	}
	return c
}
