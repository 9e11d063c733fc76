package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZacxDev/go-docs-site/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Options are the CLI settings, layered from defaults, DOCSITE_* environment
// variables and flags.
type Options struct {
	Config     string `mapstructure:"config"`
	LogLevel   string `mapstructure:"log-level"`
	LogConsole bool   `mapstructure:"log-console"`
}

var appOptions Options

var rootCmd = &cobra.Command{
	Use:   "docsite",
	Short: "docsite - resolve documentation site configuration",
	Long: `docsite validates a documentation site configuration, resolves its
locales, head tags and theme text, and composes the sidebar navigation that
the site renderer consumes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeOptions(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "config.yaml", "site configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-console", false, "human readable log output")
}

func initializeOptions(cmd *cobra.Command) error {
	v := viper.New()

	v.SetDefault("config", "config.yaml")
	v.SetDefault("log-level", "info")

	v.SetEnvPrefix("DOCSITE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}

	if err := v.Unmarshal(&appOptions); err != nil {
		return errors.Wrap(err, "decode options")
	}

	logging.Configure(logging.Config{
		Level:   appOptions.LogLevel,
		Output:  cmd.ErrOrStderr(),
		Console: appOptions.LogConsole,
	})
	return nil
}
