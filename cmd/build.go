package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/ZacxDev/go-docs-site/config"
	"github.com/ZacxDev/go-docs-site/logging"
	"github.com/ZacxDev/go-docs-site/utils"
	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	manifestFile = "site.json"
	sitemapFile  = "sitemap.xml"
)

// Manifest is the file handed to the renderer.
type Manifest struct {
	Site    config.Site                  `json:"site"`
	Locales map[string]config.LocaleView `json:"locales"`
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the resolved configuration for the renderer",
	Long: `Build resolves the site configuration and writes site.json, holding the
resolved configuration, its navigation and one view per locale, into the
output directory. With --origin a sitemap.xml is written as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")
		origin, _ := cmd.Flags().GetString("origin")

		site, err := loadSite()
		if err != nil {
			return err
		}

		return writeOutputs(outDir, origin, site, time.Now())
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("out", "o", "public", "output directory")
	buildCmd.Flags().String("origin", "", "site origin for sitemap URLs, e.g. https://docs.example.com")
}

func writeOutputs(outDir, origin string, site config.Site, now time.Time) error {
	logger := logging.WithComponent("build")

	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return errors.WithStack(err)
	}

	manifest := Manifest{
		Site:    site,
		Locales: make(map[string]config.LocaleView, len(site.Config.Locales)),
	}
	for _, key := range site.Config.LocaleKeys() {
		manifest.Locales[key] = site.Config.View(key)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	manifestPath := filepath.Join(outDir, manifestFile)
	if err := renameio.WriteFile(manifestPath, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", manifestPath)
	}
	logger.Info().
		Str(logging.FieldPath, manifestPath).
		Int(logging.FieldPages, len(site.Navigation)).
		Msg("wrote site manifest")

	if origin == "" {
		return nil
	}

	sitemapPath := filepath.Join(outDir, sitemapFile)
	if err := utils.GenerateSitemaps(sitemapPath, origin, site, now); err != nil {
		return err
	}
	logger.Info().Str(logging.FieldPath, sitemapPath).Msg("wrote sitemap")

	return nil
}
