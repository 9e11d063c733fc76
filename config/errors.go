package config

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a configuration defect.
type ErrorKind int

const (
	MissingDefaultLocale ErrorKind = iota + 1
	InvalidLocaleConfig
	UnsupportedHeadTag
	InvalidPath
	InvalidThemeConfig
	UnsupportedAnalyticsProvider
)

func (k ErrorKind) String() string {
	switch k {
	case MissingDefaultLocale:
		return "MissingDefaultLocale"
	case InvalidLocaleConfig:
		return "InvalidLocaleConfig"
	case UnsupportedHeadTag:
		return "UnsupportedHeadTag"
	case InvalidPath:
		return "InvalidPath"
	case InvalidThemeConfig:
		return "InvalidThemeConfig"
	case UnsupportedAnalyticsProvider:
		return "UnsupportedAnalyticsProvider"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ConfigError is returned by Resolve and BuildNavigation. Only the fields
// relevant to the kind are set.
type ConfigError struct {
	Kind    ErrorKind
	Key     string // locale key
	Field   string
	Path    string
	Tag     string
	Index   int
	Message string
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())

	switch e.Kind {
	case InvalidLocaleConfig:
		fmt.Fprintf(&b, ": locale %q", e.Key)
		if e.Field != "" {
			fmt.Fprintf(&b, " field %s", e.Field)
		}
	case UnsupportedHeadTag:
		fmt.Fprintf(&b, ": head[%d] tag %q", e.Index, e.Tag)
	case InvalidPath:
		if e.Field != "" {
			fmt.Fprintf(&b, ": %s", e.Field)
		} else {
			fmt.Fprintf(&b, ": sidebar[%d]", e.Index)
		}
		fmt.Fprintf(&b, " %q", e.Path)
	case InvalidThemeConfig:
		fmt.Fprintf(&b, ": %s", e.Field)
	}

	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}

	return b.String()
}

// Is matches any ConfigError of the same kind, so the sentinels below work
// with errors.Is.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrMissingDefaultLocale         = &ConfigError{Kind: MissingDefaultLocale}
	ErrInvalidLocaleConfig          = &ConfigError{Kind: InvalidLocaleConfig}
	ErrUnsupportedHeadTag           = &ConfigError{Kind: UnsupportedHeadTag}
	ErrInvalidPath                  = &ConfigError{Kind: InvalidPath}
	ErrInvalidThemeConfig           = &ConfigError{Kind: InvalidThemeConfig}
	ErrUnsupportedAnalyticsProvider = &ConfigError{Kind: UnsupportedAnalyticsProvider}
)
