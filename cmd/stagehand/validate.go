package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pointvale/stagehand/internal/scene"
)

var validateDemo bool

var validateCmd = &cobra.Command{
	Use:   "validate [project]",
	Short: "Check a project for broken references",
	Long: `Load a project file and report every structural problem found:
dangling exits, unknown items and verbs, degenerate walkboxes, dialog
choices pointing at missing dialogs, and so on.

Exits non-zero when any problem is found.

Examples:
  stagehand validate adventure.yaml
  stagehand validate editor-export.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateDemo, "demo", false, "Validate the built-in demo project")
}

func runValidate(cmd *cobra.Command, args []string) {
	project, err := loadProjectArg(args, validateDemo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	errs := scene.Validate(project)
	if len(errs) == 0 {
		fmt.Printf("%s: ok (%d scenes)\n", project.Name, len(project.Scenes))
		return
	}

	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "%v\n", e)
	}
	fmt.Fprintf(os.Stderr, "\n%d problems found\n", len(errs))
	os.Exit(1)
}
