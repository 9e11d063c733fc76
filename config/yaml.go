package config

// config/yaml.go

// RootLocale is the locale key of the default locale.
const RootLocale = "/"

type SiteConfig struct {
	Base        string                  `yaml:"base" json:"base"`
	Locales     map[string]LocaleConfig `yaml:"locales" json:"locales"`
	Head        []HeadTag               `yaml:"head" json:"head"`
	Analytics   Analytics               `yaml:"analytics,omitempty" json:"analytics,omitempty"`
	ThemeConfig ThemeConfig             `yaml:"themeConfig" json:"themeConfig"`
}

type LocaleConfig struct {
	Lang        string `yaml:"lang" json:"lang"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type HeadTag struct {
	Tag        string            `yaml:"tag" json:"tag"`
	Attributes map[string]string `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Async      bool              `yaml:"async,omitempty" json:"async,omitempty"`
	Content    string            `yaml:"content,omitempty" json:"content,omitempty"`
}

type Analytics struct {
	Provider AnalyticsProvider `yaml:"provider,omitempty" json:"provider,omitempty"`
	ID       string            `yaml:"id,omitempty" json:"id,omitempty"`
}

type ThemeConfig struct {
	Repo              string                 `yaml:"repo,omitempty" json:"repo,omitempty"`
	EditLinks         bool                   `yaml:"editLinks" json:"editLinks"`
	DocsDir           string                 `yaml:"docsDir" json:"docsDir"`
	Sidebar           []string               `yaml:"sidebar" json:"sidebar"`
	SidebarDepth      int                    `yaml:"sidebarDepth" json:"sidebarDepth"`
	DisplayAllHeaders bool                   `yaml:"displayAllHeaders" json:"displayAllHeaders"`
	ThemeLocale       `yaml:",inline"`
	Locales           map[string]ThemeLocale `yaml:"locales,omitempty" json:"locales,omitempty"`
}

// ThemeLocale is the locale specific text of the theme. Empty fields are
// treated as unset when merging.
type ThemeLocale struct {
	Lang         string `yaml:"lang,omitempty" json:"lang,omitempty"`
	SelectText   string `yaml:"selectText,omitempty" json:"selectText,omitempty"`
	Label        string `yaml:"label,omitempty" json:"label,omitempty"`
	EditLinkText string `yaml:"editLinkText,omitempty" json:"editLinkText,omitempty"`
	LastUpdated  string `yaml:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
}

// Site is a resolved configuration together with its navigation.
type Site struct {
	Config     SiteConfig     `yaml:"config" json:"config"`
	Navigation NavigationTree `yaml:"navigation" json:"navigation"`
}
