package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabgrouper/internal/domain/entity"
)

var (
	dropTab    int64
	dropTarget int64
	dropIndex  int
	dropSide   string
	dropJSON   bool
)

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop a tab into a group, or at a position inside one",
	Long: `Perform the same change a drag and drop in the group panel would.

--target is the destination group id; -1 means ungrouped.
--index is the position inside the destination group the tab is dropped
next to, and --side says on which side. Leave --index at -1 to drop on the
group itself.

Examples:
  tabgrouper drop --tab 12 --target 3 --index 0 --side before
  tabgrouper drop --tab 12 --target -1`,
	RunE: runDrop,
}

func init() {
	rootCmd.AddCommand(dropCmd)

	dropCmd.Flags().Int64Var(&dropTab, "tab", 0, "id of the dragged tab")
	dropCmd.Flags().Int64Var(&dropTarget, "target", int64(entity.NoGroup), "destination group id (-1 for ungrouped)")
	dropCmd.Flags().IntVar(&dropIndex, "index", entity.NoTargetIndex, "position in the destination group (-1 for the group itself)")
	dropCmd.Flags().StringVar(&dropSide, "side", "before", "insert before or after --index")
	dropCmd.Flags().BoolVar(&dropJSON, "json", false, "output the applied plan as JSON")
	_ = dropCmd.MarkFlagRequired("tab")
}

func runDrop(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	side, err := entity.ParseInsertionSide(dropSide)
	if err != nil {
		return err
	}

	// The source group comes from the browser, not from the user.
	snapshot, err := app.Snapshots.BuildCustomSnapshot(ctx)
	if err != nil {
		return err
	}
	tab, source, ok := snapshot.FindTab(entity.TabID(dropTab))
	if !ok {
		return fmt.Errorf("%w: %d", entity.ErrTabNotFound, dropTab)
	}

	result, err := app.Drops.TryDrop(ctx, entity.DragContext{
		Tab:           tab,
		SourceGroupID: source,
		TargetGroupID: entity.GroupID(dropTarget),
		TargetIndex:   dropIndex,
		Side:          side,
	})
	if result != nil {
		if dropJSON {
			if jsonErr := writeJSON(result); jsonErr != nil {
				return jsonErr
			}
		} else {
			fmt.Println(rendererFor().RenderPlan(result.Plan, result.Applied))
		}
	}
	return err
}
