package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ZacxDev/go-docs-site/config"
	"github.com/ZacxDev/go-docs-site/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved site configuration",
	Long: `Resolve loads the site configuration, validates it and prints the
resolved form. With --locale only the view for that locale is printed; an
unknown locale falls back to the root locale.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		locale, _ := cmd.Flags().GetString("locale")

		site, err := loadSite()
		if err != nil {
			return err
		}

		var out interface{} = site.Config
		if locale != "" {
			out = site.Config.View(locale)
		}
		return encode(cmd.OutOrStdout(), format, out)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringP("format", "f", "yaml", "output format (yaml or json)")
	resolveCmd.Flags().StringP("locale", "l", "", "print only the view for this locale key")
}

func loadSite() (config.Site, error) {
	raw, err := config.Load(appOptions.Config)
	if err != nil {
		return config.Site{}, err
	}
	return config.Compose(raw)
}

func encode(w io.Writer, format string, v interface{}) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml", "yml":
		data, err = config.Marshal(v)
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		return errors.Errorf("unknown format %q", format)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	_, err = w.Write(data)
	return err
}

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Print the sidebar navigation in render order",
	RunE: func(cmd *cobra.Command, args []string) error {
		locale, _ := cmd.Flags().GetString("locale")

		site, err := loadSite()
		if err != nil {
			return err
		}

		view := site.Config.View(locale)
		for _, node := range site.Navigation {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", node.Index, node.Path, utils.PageURL(site.Config.Base, view.Key, node.Path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(navCmd)
	navCmd.Flags().StringP("locale", "l", config.RootLocale, "locale key used to build page URLs")
}
