package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/tabgrouper/internal/domain/entity"
)

var (
	groupCreateTabs  []int64
	groupCreateTitle string
	groupCreateColor string
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Change native tab group metadata",
}

var groupCollapseCmd = &cobra.Command{
	Use:   "collapse <group-id> [on|off]",
	Short: "Collapse or expand a group",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runGroupCollapse,
}

var groupRenameCmd = &cobra.Command{
	Use:   "rename <group-id> <title>",
	Short: "Rename a group",
	Long:  `Rename a group. An empty title restores the default "Group <id>" label.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runGroupRename,
}

var groupColorCmd = &cobra.Command{
	Use:   "color <group-id> <color>",
	Short: "Recolor a group",
	Long:  `Recolor a group. Colors: grey, blue, red, yellow, green, pink, purple, cyan, orange.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runGroupColor,
}

var groupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Put tabs into a new group",
	RunE:  runGroupCreate,
}

func init() {
	rootCmd.AddCommand(groupCmd)
	groupCmd.AddCommand(groupCollapseCmd)
	groupCmd.AddCommand(groupRenameCmd)
	groupCmd.AddCommand(groupColorCmd)
	groupCmd.AddCommand(groupCreateCmd)

	groupCreateCmd.Flags().Int64SliceVar(&groupCreateTabs, "tabs", nil, "ids of the tabs to group")
	groupCreateCmd.Flags().StringVar(&groupCreateTitle, "title", "", "group title (defaults to groups.default_title)")
	groupCreateCmd.Flags().StringVar(&groupCreateColor, "color", "", "group color (defaults to groups.default_color)")
	_ = groupCreateCmd.MarkFlagRequired("tabs")
}

func parseGroupID(raw string) (entity.GroupID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return entity.NoGroup, fmt.Errorf("invalid group id %q", raw)
	}
	return entity.GroupID(id), nil
}

func findGroupArg(raw string) (*entity.NativeGroup, error) {
	id, err := parseGroupID(raw)
	if err != nil {
		return nil, err
	}
	app := GetApp()
	return app.Snapshots.FindGroup(app.Ctx(), id)
}

func runGroupCollapse(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	collapsed := true
	if len(args) == 2 {
		switch args[1] {
		case "on", "true":
		case "off", "false":
			collapsed = false
		default:
			return fmt.Errorf("expected on or off, got %q", args[1])
		}
	}

	group, err := findGroupArg(args[0])
	if err != nil {
		return err
	}
	if err := app.Groups.SetCollapsed(app.Ctx(), group, collapsed); err != nil {
		return err
	}

	verb := "Expanded"
	if collapsed {
		verb = "Collapsed"
	}
	fmt.Println(rendererFor().RenderSuccess(fmt.Sprintf("%s %s", verb, group.Title)))
	return nil
}

func runGroupRename(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	group, err := findGroupArg(args[0])
	if err != nil {
		return err
	}
	if err := app.Groups.Rename(app.Ctx(), group, args[1]); err != nil {
		return err
	}
	fmt.Println(rendererFor().RenderSuccess("Renamed to " + group.Title))
	return nil
}

func runGroupColor(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	color, err := entity.ParseGroupColor(args[1])
	if err != nil {
		return err
	}
	group, err := findGroupArg(args[0])
	if err != nil {
		return err
	}
	if err := app.Groups.Recolor(app.Ctx(), group, color); err != nil {
		return err
	}
	fmt.Println(rendererFor().RenderSuccess("Recolored " + app.Theme.GroupBadge(group.Title, group.Color)))
	return nil
}

func runGroupCreate(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	title := groupCreateTitle
	if title == "" {
		title = app.Config.Groups.DefaultTitle
	}
	color := app.Config.Groups.DefaultColor
	if groupCreateColor != "" {
		parsed, err := entity.ParseGroupColor(groupCreateColor)
		if err != nil {
			return err
		}
		color = parsed
	}

	ids := make([]entity.TabID, 0, len(groupCreateTabs))
	for _, id := range groupCreateTabs {
		ids = append(ids, entity.TabID(id))
	}

	groupID, err := app.Groups.CreateGroup(app.Ctx(), ids, title, color)
	if err != nil {
		if groupID != entity.NoGroup {
			fmt.Println(rendererFor().RenderError(fmt.Errorf("group %d created without its title and color", groupID)))
		}
		return err
	}
	fmt.Println(rendererFor().RenderSuccess(fmt.Sprintf("Created group %d", groupID)))
	return nil
}
