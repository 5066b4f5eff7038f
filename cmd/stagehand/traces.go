package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pointvale/stagehand/internal/config"
	"github.com/pointvale/stagehand/internal/storage"
)

var (
	flagTracesDB    string
	flagTracesLimit int
	flagSession     string
	flagClearTraces bool
)

var tracesCmd = &cobra.Command{
	Use:   "traces",
	Short: "Inspect recorded playtest sessions",
	Long: `List recorded playtest sessions, or show the event log of one session.

Traces are recorded when playing with --trace (or traces.enabled in the
player configuration) and when serving with --traces.

Examples:
  stagehand traces
  stagehand traces --limit 5
  stagehand traces --session 4f7c...
  stagehand traces --clear`,
	Run: runTraces,
}

func init() {
	tracesCmd.Flags().StringVar(&flagTracesDB, "db", "", "Path to traces database (default: player config traces.path)")
	tracesCmd.Flags().IntVar(&flagTracesLimit, "limit", 10, "How many sessions to list")
	tracesCmd.Flags().StringVar(&flagSession, "session", "", "Show the event log of one session")
	tracesCmd.Flags().BoolVar(&flagClearTraces, "clear", false, "Delete every recorded session")
}

func runTraces(_ *cobra.Command, _ []string) {
	dbPath := flagTracesDB
	if dbPath == "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dbPath = cfg.Traces.Path
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening traces database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClearTraces:
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All sessions deleted.")

	case flagSession != "":
		showSession(store, flagSession)

	default:
		listSessions(store, flagTracesLimit)
	}
}

func listSessions(store *storage.Store, limit int) {
	sessions, err := store.RecentSessions(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play with 'stagehand play <project> --trace' to record one.")
		return
	}

	fmt.Printf("  %-36s  %-20s  %-12s  %s\n", "Session", "Project", "Start", "Date")
	fmt.Printf("  %-36s  %-20s  %-12s  %s\n", "-------", "-------", "-----", "----")

	for _, s := range sessions {
		dateStr := s.StartedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-36s  %-20s  %-12s  %s\n", s.ID, s.Project, s.Scene, dateStr)
	}

	fmt.Println()
	fmt.Println("Run 'stagehand traces --session <id>' to see a session's events.")
}

func showSession(store *storage.Store, sessionID string) {
	events, err := store.SessionEvents(sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving events: %v\n", err)
		os.Exit(1)
	}

	if len(events) == 0 {
		fmt.Printf("No events recorded for session %s.\n", sessionID)
		return
	}

	for _, e := range events {
		fmt.Printf("  %-16s  %-16s  %s\n", e.Kind, e.Scene, e.Detail)
	}
	fmt.Println()
	fmt.Printf("%d events\n", len(events))
}
