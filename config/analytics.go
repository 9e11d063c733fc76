package config

import (
	"fmt"
	"net/url"
	"regexp"
)

// AnalyticsProvider selects the tracking snippet injected into the page head.
type AnalyticsProvider string

const (
	AnalyticsNone            AnalyticsProvider = "none"
	AnalyticsCNZZ            AnalyticsProvider = "cnzz"
	AnalyticsGoogleAnalytics AnalyticsProvider = "googleAnalytics"
)

const (
	cnzzScriptURL = "https://v1.cnzz.com/z_stat.php"
	gtagScriptURL = "https://www.googletagmanager.com/gtag/js"
)

// Tracking ids are interpolated into inline script, so only plain ids pass.
var trackingID = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

const gtagBootstrap = `window.dataLayer = window.dataLayer || [];
function gtag(){dataLayer.push(arguments);}
gtag('js', new Date());
gtag('config', '%s');`

// HeadTags returns the head tags for the configured provider, in the order
// they must appear.
func (a Analytics) HeadTags() ([]HeadTag, error) {
	switch a.Provider {
	case "", AnalyticsNone:
		return nil, nil
	case AnalyticsCNZZ, AnalyticsGoogleAnalytics:
	default:
		return nil, &ConfigError{
			Kind:    UnsupportedAnalyticsProvider,
			Field:   "analytics.provider",
			Message: fmt.Sprintf("unknown provider %q", a.Provider),
		}
	}

	if a.ID == "" {
		return nil, &ConfigError{
			Kind:    UnsupportedAnalyticsProvider,
			Field:   "analytics.id",
			Message: fmt.Sprintf("provider %s requires an id", a.Provider),
		}
	}
	if !trackingID.MatchString(a.ID) {
		return nil, &ConfigError{
			Kind:    UnsupportedAnalyticsProvider,
			Field:   "analytics.id",
			Message: fmt.Sprintf("invalid id %q", a.ID),
		}
	}

	q := url.Values{}
	if a.Provider == AnalyticsCNZZ {
		q.Set("id", a.ID)
		q.Set("web_id", a.ID)
		return []HeadTag{{
			Tag:        "script",
			Attributes: map[string]string{"src": cnzzScriptURL + "?" + q.Encode()},
			Async:      true,
		}}, nil
	}

	q.Set("id", a.ID)
	return []HeadTag{
		{
			Tag:        "script",
			Attributes: map[string]string{"src": gtagScriptURL + "?" + q.Encode()},
			Async:      true,
		},
		{
			Tag:     "script",
			Content: fmt.Sprintf(gtagBootstrap, a.ID),
		},
	}, nil
}
