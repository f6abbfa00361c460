package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabgrouper/internal/cli/styles"
)

var snapshotJSON bool

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Show the tabs of the current window",
}

var snapshotDomainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "Group the current window's tabs by domain",
	Long: `Bucket every tab of the current window by its URL host.

Domains are listed by first appearance; tabs keep their window order.`,
	RunE: runSnapshotDomains,
}

var snapshotGroupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Show native tab groups and ungrouped tabs",
	RunE:  runSnapshotGroups,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotDomainsCmd)
	snapshotCmd.AddCommand(snapshotGroupsCmd)
	snapshotCmd.PersistentFlags().BoolVar(&snapshotJSON, "json", false, "output as JSON")
}

func runSnapshotDomains(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	domains, err := app.Snapshots.BuildDomainSnapshot(app.Ctx())
	if err != nil {
		return err
	}
	if snapshotJSON {
		return writeJSON(domains)
	}
	fmt.Println(rendererFor().RenderDomains(domains))
	return nil
}

func runSnapshotGroups(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	snapshot, err := app.Snapshots.BuildCustomSnapshot(app.Ctx())
	if err != nil {
		return err
	}
	if snapshotJSON {
		return writeJSON(snapshot)
	}
	fmt.Println(rendererFor().RenderGroups(snapshot))
	return nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func rendererFor() *styles.SnapshotRenderer {
	return styles.NewSnapshotRenderer(GetApp().Theme)
}
