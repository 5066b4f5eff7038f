package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pointvale/stagehand/internal/config"
	"github.com/pointvale/stagehand/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagTracesPath  string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve <project>",
	Short: "Serve a project over SSH",
	Long: `Start an SSH server that lets users connect and play the project.

Each SSH connection gets its own fresh playthrough. Playtest traces, when
enabled, are stored per-server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.stagehand/host_key

Examples:
  stagehand serve adventure.yaml                      # Listen on :23234
  stagehand serve adventure.yaml --ssh :2222          # Listen on port 2222
  stagehand serve adventure.yaml --traces ./traces.db # Record every session

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.ExactArgs(1),
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagTracesPath, "traces", "", "Path to playtest traces database (empty = no tracing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		ProjectPath:  args[0],
		TracesPath:   flagTracesPath,
		TickInterval: cfg.TickInterval(),
		Tuning:       cfg.Tuning(),
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving %s on %s\n", args[0], srvCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
