package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var scenesDemo bool

var scenesCmd = &cobra.Command{
	Use:   "scenes [project]",
	Short: "List a project's scenes",
	Long: `Shows every scene of a project with its content counts.

Examples:
  stagehand scenes adventure.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScenes,
}

func init() {
	scenesCmd.Flags().BoolVar(&scenesDemo, "demo", false, "List the built-in demo project's scenes")
}

func runScenes(cmd *cobra.Command, args []string) {
	project, err := loadProjectArg(args, scenesDemo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (start: %s)\n", project.Name, project.StartScene)
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range project.Scenes {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Name", "Contents")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "----", "--------")

	for _, s := range project.Scenes {
		contents := fmt.Sprintf("%d hotspots, %d exits, %d dialogs, %d puzzles, %d cutscenes",
			len(s.Hotspots), len(s.Exits), len(s.Dialogs), len(s.Puzzles), len(s.Cutscenes))
		fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, s.ID, s.Name, contents)
	}

	fmt.Println()
	fmt.Println("Run 'stagehand play <project> --scene <id>' to start in a scene.")
}
