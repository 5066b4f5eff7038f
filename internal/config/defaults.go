package config

import (
	_ "embed"
)

//go:embed defaults/stagehand.yaml
var defaultYAML []byte

// DefaultConfig returns the default player configuration.
func DefaultConfig() Config {
	return Config{
		Player: PlayerConfig{
			TickRate: 20,
		},
		Movement: MovementConfig{
			StepPerTick: 4,
			ExitMargin:  8,
		},
		Timing: TimingConfig{
			FadeMS:          600,
			MessageMS:       3000,
			ResumeDelayMS:   250,
			DefaultActionMS: 500,
		},
		Traces: TracesConfig{
			Enabled: false,
			Path:    "~/.stagehand/traces.db",
		},
	}
}
