package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/tabgrouper/internal/api"
	"github.com/bnema/tabgrouper/internal/infrastructure/config"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tab group API over HTTP",
	Long: `Start a local HTTP API exposing snapshots, drops, group metadata and presets.

The OpenAPI document is served at /openapi.json and interactive docs at /docs.
Log level changes in the config file apply without a restart.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (overrides api.listen)")
}

func runServe(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	addr := app.Config.API.Listen
	if serveListen != "" {
		addr = serveListen
	}

	if app.Manager != nil {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			app.SetLogLevel(cfg.Logging.Level)
			app.Logger.Info().Str("level", cfg.Logging.Level).Msg("config reloaded")
		})
		app.Manager.Watch()
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := api.NewServer(app.Logger, app.APIDeps())
	app.Logger.Info().Str("addr", addr).Str("provider", string(app.Config.Provider.Kind)).Msg("api listening")
	if err := api.Serve(ctx, addr, handler); err != nil {
		return fmt.Errorf("serve api: %w", err)
	}
	app.Logger.Info().Msg("api stopped")
	return nil
}
