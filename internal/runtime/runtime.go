// Package runtime implements the scripted scene runtime: the interpreter
// that plays a scene built from the authored data model. It combines
// polygon-constrained movement, verb/object interaction resolution, a dialog
// state machine, a puzzle evaluator and a timed cutscene sequencer around a
// single mutable play-session state.
//
// The runtime is cooperative and single-threaded: the platform drives it by
// calling Tick once per frame, and every timer (cutscene advancement,
// message auto-clear, fade tween) is a deadline advanced by Tick. Dropping
// the Runtime ends the session and with it every pending timer. There are no
// package-level singletons, so tests and SSH sessions can run any number of
// runtimes side by side.
package runtime

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pointvale/stagehand/internal/audio"
	"github.com/pointvale/stagehand/internal/geom"
	"github.com/pointvale/stagehand/internal/scene"
)

// ErrNoActors is returned by New when the start scene has no actor
// placements and the project declares no actors at all. This is the only
// hard precondition of play mode; every failure after entry degrades to a
// no-op or a user-visible message instead.
var ErrNoActors = errors.New("runtime: scene has no actor placements and no actors exist")

// Tuning holds the gameplay constants the runtime is parameterized by.
type Tuning struct {
	// StepPerTick is how far the player moves per tick, in scene units.
	StepPerTick float64

	// ExitMargin widens the exit proximity radius, in scene units.
	ExitMargin float64

	// FadeDuration is the length of one fade direction (out or in).
	FadeDuration time.Duration

	// MessageDuration is how long a message stays up before auto-clearing.
	MessageDuration time.Duration

	// ResumeDelay is the pause between a scene transition's fade-in
	// completing and a suspended cutscene resuming.
	ResumeDelay time.Duration

	// DefaultActionDuration is applied to cutscene actions with no duration
	// of their own, including unknown action types.
	DefaultActionDuration time.Duration
}

// DefaultTuning returns the tuning used when Options leaves it zero.
func DefaultTuning() Tuning {
	return Tuning{
		StepPerTick:           4,
		ExitMargin:            8,
		FadeDuration:          600 * time.Millisecond,
		MessageDuration:       3 * time.Second,
		ResumeDelay:           250 * time.Millisecond,
		DefaultActionDuration: 500 * time.Millisecond,
	}
}

// Options configures a Runtime. The zero value is usable: silent logger,
// no audio, no event sink, default tuning.
type Options struct {
	Logger *log.Logger
	Audio  audio.Player
	Sink   EventSink
	Tuning Tuning
}

// Runtime owns one play session over a loaded project.
type Runtime struct {
	project *scene.Project
	scn     *scene.Scene
	logger  *log.Logger
	audio   audio.Player
	sink    EventSink
	tuning  Tuning

	// Player state.
	playerActorID string
	placementID   string
	x, y          float64
	direction     string
	animState     string

	// Movement.
	walking          bool
	targetX, targetY float64
	walkCallback     func()

	// Selection / hover.
	selectedVerb string
	selectedItem string
	hovered      string

	// Session copies of global data. Mutations never write back.
	inventory []string
	variables map[string]any

	// Dialog cursor.
	dialog          *scene.Dialog
	dialogLine      int
	dialogEphemeral bool

	// Message line with auto-clear deadline.
	message      string
	messageTimer time.Duration

	// Cutscene cursor (see cutscene.go).
	cs      *scene.Cutscene
	csIndex int
	csPhase csPhase
	csTimer time.Duration

	// Scene transition (see transition.go).
	trans      transition
	fade       float64
	fadeTween  float64 // signed fade rate per second; 0 when no tween runs
	fadeTarget float64

	// Failed attempts per puzzle id, for attempt-indexed hints.
	attempts map[string]int

	walkboxes []geom.Polygon
}

// New creates a runtime for the project's start scene. It fails only when
// neither the scene nor the global data can produce a player actor.
func New(p *scene.Project, opts Options) (*Runtime, error) {
	start := p.SceneByID(p.StartScene)
	if start == nil && len(p.Scenes) > 0 {
		start = p.Scenes[0]
	}
	if start == nil {
		return nil, errors.New("runtime: project has no scenes")
	}
	if len(start.ActorPlacements) == 0 && len(p.Global.Actors) == 0 {
		return nil, ErrNoActors
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}
	tuning := opts.Tuning
	if tuning == (Tuning{}) {
		tuning = DefaultTuning()
	}

	r := &Runtime{
		project:   p,
		logger:    logger,
		audio:     player,
		sink:      opts.Sink,
		tuning:    tuning,
		inventory: append([]string(nil), p.Global.Inventory...),
		variables: make(map[string]any, len(p.Global.Variables)),
		attempts:  make(map[string]int),
		direction: "south",
		animState: "idle",
	}
	for k, v := range p.Global.Variables {
		r.variables[k] = v
	}

	r.enterScene(start)
	return r, nil
}

// enterScene installs a scene as current and places the player at its first
// actor placement. With no placements the position is left as-is (scene
// center on the very first entry).
func (r *Runtime) enterScene(s *scene.Scene) {
	r.scn = s
	r.walkboxes = s.WalkboxPolygons()
	r.walking = false
	r.walkCallback = nil
	r.animState = "idle"

	if len(s.ActorPlacements) > 0 {
		ap := s.ActorPlacements[0]
		r.playerActorID = ap.ActorID
		r.placementID = ap.ID
		r.x, r.y = ap.X, ap.Y
		if ap.Direction != "" {
			r.direction = ap.Direction
		}
		if ap.State != "" {
			r.animState = ap.State
		}
	} else if r.playerActorID == "" {
		// First entry with no placements: preflight guaranteed a global
		// actor exists.
		r.playerActorID = r.project.Global.Actors[0].ID
		r.x, r.y = s.Width/2, s.Height/2
	}

	if len(s.Music) > 0 {
		r.audio.PlayMusic(s.Music[0])
	} else {
		r.audio.StopMusic()
	}
}

// Tick advances every time-dependent part of the session: movement, the
// scene transition tween, the cutscene timer and the message deadline. The
// platform calls it once per frame with the elapsed wall time.
func (r *Runtime) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}

	r.tickTransition(dt)
	if !r.trans.active() {
		r.tickMovement()
	}
	r.tickCutscene(dt)
	// After the cutscene, so a fade action's tween starts moving in the
	// tick that arms it.
	r.tickFade(dt)

	if r.messageTimer > 0 {
		r.messageTimer -= dt
		if r.messageTimer <= 0 {
			r.message = ""
			r.messageTimer = 0
		}
	}
}

// CurrentScene returns the scene being played. Callers must treat it as
// read-only.
func (r *Runtime) CurrentScene() *scene.Scene {
	return r.scn
}

// Project returns the loaded project. Read-only to callers.
func (r *Runtime) Project() *scene.Project {
	return r.project
}

// SelectVerb sets the active verb. Unknown ids clear the selection.
func (r *Runtime) SelectVerb(id string) {
	if r.project.Global.VerbByID(id) == nil {
		r.selectedVerb = ""
		return
	}
	r.selectedVerb = id
}

// SelectItem enters "use item with" mode for an inventory item. Selecting
// the already-selected item, or an item not held, clears the selection.
func (r *Runtime) SelectItem(id string) {
	if id == r.selectedItem || !r.hasItem(id) {
		r.selectedItem = ""
		return
	}
	r.selectedItem = id
}

// showMessage displays a message and arms its auto-clear deadline.
func (r *Runtime) showMessage(text string) {
	if text == "" {
		return
	}
	r.message = text
	r.messageTimer = r.tuning.MessageDuration
	r.emit(EventMessage, text)
}

func (r *Runtime) hasItem(id string) bool {
	for _, it := range r.inventory {
		if it == id {
			return true
		}
	}
	return false
}

func (r *Runtime) addItem(id string) {
	if id == "" || r.hasItem(id) {
		return
	}
	r.inventory = append(r.inventory, id)
	r.emit(EventItemAdded, id)
}

func (r *Runtime) removeItem(id string) {
	for i, it := range r.inventory {
		if it == id {
			r.inventory = append(r.inventory[:i], r.inventory[i+1:]...)
			if r.selectedItem == id {
				r.selectedItem = ""
			}
			r.emit(EventItemRemoved, id)
			return
		}
	}
}

func (r *Runtime) setVariable(name string, value any) {
	if name == "" {
		return
	}
	r.variables[name] = value
}

// playSFX resolves a sound effect id against the current scene and plays
// it. Unresolved ids are logged and otherwise ignored.
func (r *Runtime) playSFX(id string) {
	if id == "" {
		return
	}
	track := r.scn.SFXByID(id)
	if track == nil {
		r.logger.Debug("sfx not found", "scene", r.scn.ID, "sfx", id)
		return
	}
	r.audio.PlaySFX(*track)
}
