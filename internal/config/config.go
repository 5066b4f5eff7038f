// Package config provides YAML-based player configuration loading for the
// stagehand runtime: tick rate, movement and timing tuning, and playtest
// trace settings.
package config

import (
	"time"

	"github.com/pointvale/stagehand/internal/runtime"
)

// Config contains all player-side configuration. Authored project files are
// loaded separately by the scene package; this only tunes how they play.
type Config struct {
	Player   PlayerConfig   `yaml:"player"`
	Movement MovementConfig `yaml:"movement"`
	Timing   TimingConfig   `yaml:"timing"`
	Traces   TracesConfig   `yaml:"traces"`
}

// PlayerConfig defines the simulation loop parameters.
type PlayerConfig struct {
	TickRate int `yaml:"tick_rate"` // simulation ticks per second
}

// MovementConfig defines walking parameters in scene units.
type MovementConfig struct {
	StepPerTick float64 `yaml:"step_per_tick"`
	ExitMargin  float64 `yaml:"exit_margin"`
}

// TimingConfig defines presentation timing in milliseconds.
type TimingConfig struct {
	FadeMS          int `yaml:"fade_ms"`
	MessageMS       int `yaml:"message_ms"`
	ResumeDelayMS   int `yaml:"resume_delay_ms"`
	DefaultActionMS int `yaml:"default_action_ms"`
}

// TracesConfig defines playtest trace recording.
type TracesConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // sqlite database path, ~ expands to home
}

// TickInterval returns the duration of one simulation tick.
func (c Config) TickInterval() time.Duration {
	rate := c.Player.TickRate
	if rate <= 0 {
		rate = DefaultConfig().Player.TickRate
	}
	return time.Second / time.Duration(rate)
}

// Tuning converts the configuration to runtime tuning, substituting runtime
// defaults for zero fields so a partial config file stays playable.
func (c Config) Tuning() runtime.Tuning {
	t := runtime.DefaultTuning()
	if c.Movement.StepPerTick > 0 {
		t.StepPerTick = c.Movement.StepPerTick
	}
	if c.Movement.ExitMargin > 0 {
		t.ExitMargin = c.Movement.ExitMargin
	}
	if c.Timing.FadeMS > 0 {
		t.FadeDuration = time.Duration(c.Timing.FadeMS) * time.Millisecond
	}
	if c.Timing.MessageMS > 0 {
		t.MessageDuration = time.Duration(c.Timing.MessageMS) * time.Millisecond
	}
	if c.Timing.ResumeDelayMS > 0 {
		t.ResumeDelay = time.Duration(c.Timing.ResumeDelayMS) * time.Millisecond
	}
	if c.Timing.DefaultActionMS > 0 {
		t.DefaultActionDuration = time.Duration(c.Timing.DefaultActionMS) * time.Millisecond
	}
	return t
}
