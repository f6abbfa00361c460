package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabgrouper/internal/domain/entity"
)

var (
	presetJSON  bool
	presetTitle string
	presetColor string
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved group looks",
	Long:  `Presets store a title and color that can be applied to any group in one step.`,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetList,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Create or replace a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetSave,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetDelete,
}

var presetApplyCmd = &cobra.Command{
	Use:   "apply <name> <group-id>",
	Short: "Apply a preset to a group",
	Args:  cobra.ExactArgs(2),
	RunE:  runPresetApply,
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetDeleteCmd)
	presetCmd.AddCommand(presetApplyCmd)

	presetListCmd.Flags().BoolVar(&presetJSON, "json", false, "output as JSON")
	presetSaveCmd.Flags().StringVar(&presetTitle, "title", "", "group title (empty keeps the group's title)")
	presetSaveCmd.Flags().StringVar(&presetColor, "color", "", "group color (defaults to groups.default_color)")
}

func runPresetList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	presets, err := app.Presets.List(app.Ctx())
	if err != nil {
		return err
	}
	if presetJSON {
		return writeJSON(presets)
	}
	fmt.Println(rendererFor().RenderPresets(presets))
	return nil
}

func runPresetSave(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	color := app.Config.Groups.DefaultColor
	if presetColor != "" {
		parsed, err := entity.ParseGroupColor(presetColor)
		if err != nil {
			return err
		}
		color = parsed
	}

	preset := &entity.GroupPreset{Name: args[0], Title: presetTitle, Color: color}
	if err := app.Presets.Save(app.Ctx(), preset); err != nil {
		return err
	}
	fmt.Println(rendererFor().RenderSuccess("Saved preset " + preset.Name))
	return nil
}

func runPresetDelete(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := app.Presets.Delete(app.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Println(rendererFor().RenderSuccess("Deleted preset " + args[0]))
	return nil
}

func runPresetApply(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	group, err := findGroupArg(args[1])
	if err != nil {
		return err
	}
	if err := app.Presets.ApplyToGroup(app.Ctx(), group, args[0]); err != nil {
		return err
	}
	fmt.Println(rendererFor().RenderSuccess(
		fmt.Sprintf("Applied %s: %s", args[0], app.Theme.GroupBadge(group.Title, group.Color))))
	return nil
}
