// Package audio defines the playback hook the runtime drives. The runtime
// resolves track ids to asset descriptors and hands them to a Player; what
// actually produces sound (or nothing, in the terminal player) lives behind
// this interface.
package audio

import (
	"github.com/charmbracelet/log"

	"github.com/pointvale/stagehand/internal/scene"
)

// Player receives playback requests. Implementations must tolerate being
// called with any track the project declares; failure is not surfaced to
// gameplay.
type Player interface {
	// PlayMusic starts the given music track, replacing any current one.
	PlayMusic(track scene.AudioTrack)

	// StopMusic stops the current music track, if any.
	StopMusic()

	// PlaySFX plays a one-shot sound effect.
	PlaySFX(track scene.AudioTrack)
}

// Nop discards all playback requests.
type Nop struct{}

func (Nop) PlayMusic(scene.AudioTrack) {}
func (Nop) StopMusic()                 {}
func (Nop) PlaySFX(scene.AudioTrack)   {}

// Logging records playback requests to a logger. Used by the terminal
// player, which has no audio device, so playtesters still see what a scene
// would sound like.
type Logging struct {
	Logger *log.Logger
}

func (l Logging) PlayMusic(track scene.AudioTrack) {
	l.Logger.Info("play music", "track", track.ID, "asset", track.Asset, "loop", track.Loop)
}

func (l Logging) StopMusic() {
	l.Logger.Info("stop music")
}

func (l Logging) PlaySFX(track scene.AudioTrack) {
	l.Logger.Info("play sfx", "track", track.ID, "asset", track.Asset)
}
