// stagehand plays point-and-click adventure projects in the terminal.
//
// Usage:
//
//	stagehand play <project>     - Play a project file
//	stagehand play --demo        - Play the built-in demo project
//	stagehand validate <project> - Check a project for broken references
//	stagehand scenes <project>   - List a project's scenes
//	stagehand serve <project>    - Serve a project over SSH
//	stagehand traces             - Inspect recorded playtest sessions
//
// Global flags:
//
//	--config <path>  - Player configuration YAML (tick rate, tuning, traces)
package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pointvale/stagehand/internal/scene"
)

//go:embed demo.yaml
var demoProjectYAML []byte

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stagehand",
	Short: "Play point-and-click adventures in your terminal",
	Long: `stagehand is a scripted scene runtime for point-and-click adventure
projects: scenes with walkable polygons, verbs, items, dialogs, puzzles and
cutscenes, authored as YAML or JSON and played in the terminal.

Available commands:
  play      - Play a project file (or the built-in demo)
  validate  - Check a project for broken references
  scenes    - List a project's scenes
  serve     - Serve a project over SSH
  traces    - Inspect recorded playtest sessions

Examples:
  stagehand play adventure.yaml
  stagehand play --demo
  stagehand validate adventure.yaml
  stagehand serve adventure.yaml --ssh :2222
  stagehand traces --limit 5`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to player configuration YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tracesCmd)
}

// loadProjectArg loads the project named by the command line, or the
// embedded demo when demo is set.
func loadProjectArg(args []string, demo bool) (*scene.Project, error) {
	if demo {
		return scene.LoadYAML(demoProjectYAML)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("a project file is required (or pass --demo)")
	}
	return scene.Load(args[0])
}
