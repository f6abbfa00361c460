package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tabgrouper/internal/cli/model"
	"github.com/bnema/tabgrouper/internal/logging"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Interactive tab group panel",
	Long: `Browse the current window's groups and reorder them from the keyboard.

Keys: j/k select, J/K move the selected tab, space collapses a group,
u ungroups a tab, r reloads and ? shows all keys.`,
	RunE: runPanel,
}

const defaultPanelSyncInterval = 2 * time.Second

var panelSyncInterval time.Duration

func init() {
	rootCmd.AddCommand(panelCmd)
	panelCmd.Flags().DurationVar(&panelSyncInterval, "sync-interval", defaultPanelSyncInterval,
		"how often to pick up group changes made in the browser (0 disables)")
}

func runPanel(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	// Stderr logs would draw over the alt screen.
	if !app.Config.Logging.EnableFileLog {
		app.SetLogLevel("disabled")
	}

	m := model.NewPanelModel(logging.WithComponent(app.Ctx(), "panel"), app.Theme, model.PanelModelConfig{
		Snapshots: app.Snapshots,
		Drops:     app.Drops,
		Groups:    app.Groups,

		SyncInterval: panelSyncInterval,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
