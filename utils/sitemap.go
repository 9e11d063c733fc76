package utils

import (
	"encoding/xml"
	"path"
	"strings"
	"time"

	"github.com/ZacxDev/go-docs-site/config"
	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// GenerateSitemaps writes the sitemap for site to filename, replacing any
// previous file atomically.
func GenerateSitemaps(filename, origin string, site config.Site, lastMod time.Time) error {
	xmlOutput, err := GenerateSitemapContent(origin, site, lastMod)
	if err != nil {
		return err
	}

	err = renameio.WriteFile(filename, []byte(xml.Header+xmlOutput+"\n"), 0o644)
	return errors.Wrapf(err, "write %s", filename)
}

// GenerateSitemapContent lists every navigation page once per locale.
// Duplicate sidebar entries produce a single URL.
func GenerateSitemapContent(origin string, site config.Site, lastMod time.Time) (string, error) {
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	origin = strings.TrimSuffix(origin, "/")
	seen := make(map[string]bool)

	for _, locale := range site.Config.LocaleKeys() {
		for _, node := range site.Navigation {
			loc := origin + PageURL(site.Config.Base, locale, node.Path)
			if seen[loc] {
				continue
			}
			seen[loc] = true

			url := Url{Loc: loc}
			if !lastMod.IsZero() {
				url.LastMod = lastMod.Format("2006-01-02")
			}
			sitemap.Urls = append(sitemap.Urls, url)
		}
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(xmlOutput), nil
}

// PageURL maps a sidebar page to the URL path the renderer publishes it at:
// README.md and index.md map to their directory and other .md pages to .html.
func PageURL(base, locale, page string) string {
	p := strings.TrimPrefix(page, "/")
	switch name := path.Base(p); {
	case p == "":
	case name == "README.md", name == "index.md":
		p = strings.TrimSuffix(p, name)
	case strings.HasSuffix(p, ".md"):
		p = strings.TrimSuffix(p, ".md") + ".html"
	}

	u := path.Join(base, locale, p)
	if p == "" || strings.HasSuffix(p, "/") {
		u += "/"
	}
	if u == "//" {
		u = "/"
	}
	return u
}
