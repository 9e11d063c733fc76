package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZacxDev/go-docs-site/config"
	"github.com/ZacxDev/go-docs-site/logging"
	"github.com/ZacxDev/go-docs-site/watch"
	"github.com/spf13/cobra"
)

// Composed configurations kept while watching.
const watchCacheEntries = 8

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the resolved configuration whenever the config file changes",
	Long: `Watch performs an initial build, then watches the site configuration
file. Each valid change replaces the output; an invalid change is logged and
the previous output is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")
		origin, _ := cmd.Flags().GetString("origin")
		logger := logging.WithComponent("watch")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		holder := watch.NewHolder(appOptions.Config, config.NewCache(config.WithMaxEntries(watchCacheEntries)))
		if err := holder.Reload(ctx); err != nil {
			return err
		}

		updates := make(chan config.Site, 1)
		holder.Subscribe(updates)

		site, _ := holder.Current()
		if err := writeOutputs(outDir, origin, site, time.Now()); err != nil {
			return err
		}

		if err := holder.Start(ctx); err != nil {
			return err
		}
		defer holder.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info().Msg("stopping")
				return nil
			case site := <-updates:
				if err := writeOutputs(outDir, origin, site, time.Now()); err != nil {
					logger.Error().Err(err).Msg("rebuild failed")
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringP("out", "o", "public", "output directory")
	watchCmd.Flags().String("origin", "", "site origin for sitemap URLs")
}
