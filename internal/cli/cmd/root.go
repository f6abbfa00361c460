// Package cmd provides Cobra CLI commands for tabgrouper.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabgrouper/internal/cli"
)

var (
	app     *cli.App
	opts    cli.Options
	rootCmd = &cobra.Command{
		Use:   "tabgrouper",
		Short: "Keep browser tab groups sorted from the terminal",
		Long: `Tabgrouper - drive native browser tab groups from the terminal.

It reads the tabs of the current browser window, groups them by domain or by
their native tab group, and turns drag gestures into the minimal sequence of
move, group and ungroup calls the browser understands.

Features:
  - Domain and native-group snapshots of the current window
  - Reordering inside a group and moving tabs across groups
  - Collapse, rename and recolor groups with instant feedback
  - Saved group presets
  - An interactive panel and a local HTTP API

Use 'tabgrouper panel' for the interactive view, or 'tabgrouper serve' to
expose the same operations over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(opts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				if err := app.Close(); err != nil {
					app.Logger.Warn().Err(err).Msg("failed to close app")
				}
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.Provider, "provider", "", "tab provider: cdp or memory (overrides config)")
	flags.StringVar(&opts.FixturePath, "fixture", "", "memory provider state file (implies --provider memory)")
	flags.StringVar(&opts.CDPURL, "cdp-url", "", "browser DevTools endpoint (overrides config)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetVersion sets the version reported by --version (called from main.go before Execute).
func SetVersion(version string) {
	rootCmd.Version = version
}
