package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pointvale/stagehand/internal/audio"
	"github.com/pointvale/stagehand/internal/config"
	"github.com/pointvale/stagehand/internal/platform/tui"
	"github.com/pointvale/stagehand/internal/runtime"
	"github.com/pointvale/stagehand/internal/scene"
	"github.com/pointvale/stagehand/internal/storage"
)

var (
	flagDemo   bool
	flagScene  string
	flagPick   bool
	flagTrace  bool
	flagStrict bool
)

var playCmd = &cobra.Command{
	Use:   "play [project]",
	Short: "Play a project",
	Long: `Start playing the given project file.

Controls:
  Mouse      - Walk, hover, interact
  1-9        - Select a verb (or a dialog choice)
  I          - Cycle the selected inventory item
  Space      - Advance dialog
  Esc        - Skip cutscene / clear verb
  Q/Ctrl+C   - Quit

Examples:
  stagehand play adventure.yaml
  stagehand play --demo
  stagehand play adventure.yaml --scene cellar
  stagehand play adventure.yaml --pick
  stagehand play adventure.yaml --trace`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Play the built-in demo project")
	playCmd.Flags().StringVar(&flagScene, "scene", "", "Start in the given scene instead of the project's start scene")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Pick the starting scene interactively")
	playCmd.Flags().BoolVar(&flagTrace, "trace", false, "Record a playtest trace for this session")
	playCmd.Flags().BoolVar(&flagStrict, "strict", false, "Refuse to play a project with validation errors")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		os.Exit(1)
	}

	project, err := loadProjectArg(args, flagDemo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if errs := scene.Validate(project); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", e)
		}
		if flagStrict {
			fmt.Fprintf(os.Stderr, "Refusing to play: %d validation errors\n", len(errs))
			os.Exit(1)
		}
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagScene != "":
		if project.SceneByID(flagScene) == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", flagScene)
			fmt.Fprintln(os.Stderr, "Run 'stagehand scenes' to see the project's scenes.")
			os.Exit(1)
		}
		project.StartScene = flagScene
	case flagPick:
		picked, pickErr := tui.RunMenu(project)
		if pickErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
			os.Exit(1)
		}
		if picked == "" {
			return
		}
		project.StartScene = picked
	}

	var sink runtime.EventSink
	var store *storage.Store
	if flagTrace || cfg.Traces.Enabled {
		store, err = storage.Open(cfg.Traces.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open traces database: %v\n", err)
			// Continue without tracing - the game still works
		} else {
			rec, recErr := store.BeginSession(project.Name, project.StartScene)
			if recErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not begin trace session: %v\n", recErr)
			} else {
				sink = rec
			}
		}
	}

	// The TUI owns the terminal, so runtime logs are dropped.
	rt, err := runtime.New(project, runtime.Options{
		Logger: log.New(io.Discard),
		Audio:  audio.Nop{},
		Sink:   sink,
		Tuning: cfg.Tuning(),
	})
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(project, rt, cfg.TickInterval())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running player: %v\n", runErr)
		os.Exit(1)
	}
}
