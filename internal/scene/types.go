// Package scene defines the authored data model the runtime plays: scenes,
// global data and the project file that bundles them. The model is read-only
// to the runtime except for the session-scoped puzzle Solved and cutscene
// HasPlayed flags, which are reset every time a project is loaded.
package scene

import "github.com/pointvale/stagehand/internal/geom"

// Project is the top-level authored unit: shared global data plus every
// scene of the game.
type Project struct {
	Name       string     `yaml:"name" json:"name"`
	StartScene string     `yaml:"startScene" json:"startScene"`
	Global     GlobalData `yaml:"global" json:"global"`
	Scenes     []*Scene   `yaml:"scenes" json:"scenes"`
}

// SceneByID returns the scene with the given id, or nil.
func (p *Project) SceneByID(id string) *Scene {
	for _, s := range p.Scenes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// GlobalData is authored data shared across every scene.
type GlobalData struct {
	Actors    []Actor        `yaml:"actors" json:"actors"`
	Items     []Item         `yaml:"items" json:"items"`
	Verbs     []Verb         `yaml:"verbs" json:"verbs"`
	Inventory []string       `yaml:"inventory" json:"inventory"`
	Variables map[string]any `yaml:"variables" json:"variables"`
}

// ActorByID returns the actor with the given id, or nil.
func (g *GlobalData) ActorByID(id string) *Actor {
	for i := range g.Actors {
		if g.Actors[i].ID == id {
			return &g.Actors[i]
		}
	}
	return nil
}

// ItemByID returns the item with the given id, or nil.
func (g *GlobalData) ItemByID(id string) *Item {
	for i := range g.Items {
		if g.Items[i].ID == id {
			return &g.Items[i]
		}
	}
	return nil
}

// VerbByID returns the verb with the given id, or nil.
func (g *GlobalData) VerbByID(id string) *Verb {
	for i := range g.Verbs {
		if g.Verbs[i].ID == id {
			return &g.Verbs[i]
		}
	}
	return nil
}

// Actor binds an id to per-state animation references. The runtime only
// tracks the current state label; resolving the binding to drawable frames
// is the renderer's concern.
type Actor struct {
	ID         string            `yaml:"id" json:"id"`
	Name       string            `yaml:"name" json:"name"`
	Animations map[string]string `yaml:"animations" json:"animations"`
}

// Item is an inventory item definition.
type Item struct {
	ID          string    `yaml:"id" json:"id"`
	Name        string    `yaml:"name" json:"name"`
	PickupText  string    `yaml:"pickupText" json:"pickupText"`
	ExamineText string    `yaml:"examineText" json:"examineText"`
	UseWith     []ItemUse `yaml:"useWith" json:"useWith"`
}

// ItemUse declares a valid "use item with target" combination and the
// effects applied when it matches. Target matches an object by id or name.
type ItemUse struct {
	Target string `yaml:"target" json:"target"`
	Result Result `yaml:"result" json:"result"`
}

// Verb is a named interaction mode. Category is normally left empty in
// authored data and resolved from the display name at load time; an explicit
// value overrides synonym matching.
type Verb struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
}

// Scene is one playable room.
type Scene struct {
	ID              string           `yaml:"id" json:"id"`
	Name            string           `yaml:"name" json:"name"`
	Width           float64          `yaml:"width" json:"width"`
	Height          float64          `yaml:"height" json:"height"`
	Walkboxes       []Walkbox        `yaml:"walkboxes" json:"walkboxes"`
	Exits           []Exit           `yaml:"exits" json:"exits"`
	Hotspots        []Object         `yaml:"hotspots" json:"hotspots"`
	Images          []Object         `yaml:"images" json:"images"`
	ActorPlacements []ActorPlacement `yaml:"actorPlacements" json:"actorPlacements"`
	Dialogs         []Dialog         `yaml:"dialogs" json:"dialogs"`
	Puzzles         []Puzzle         `yaml:"puzzles" json:"puzzles"`
	Cutscenes       []Cutscene       `yaml:"cutscenes" json:"cutscenes"`
	SFX             []AudioTrack     `yaml:"sfx" json:"sfx"`
	Music           []AudioTrack     `yaml:"music" json:"music"`
}

// WalkboxPolygons returns the scene's walkable area as a polygon union.
func (s *Scene) WalkboxPolygons() []geom.Polygon {
	polys := make([]geom.Polygon, 0, len(s.Walkboxes))
	for _, wb := range s.Walkboxes {
		polys = append(polys, wb.Polygon())
	}
	return polys
}

// DialogByID returns the dialog with the given id, or nil.
func (s *Scene) DialogByID(id string) *Dialog {
	for i := range s.Dialogs {
		if s.Dialogs[i].ID == id {
			return &s.Dialogs[i]
		}
	}
	return nil
}

// PuzzleByID returns the puzzle with the given id, or nil.
func (s *Scene) PuzzleByID(id string) *Puzzle {
	for i := range s.Puzzles {
		if s.Puzzles[i].ID == id {
			return &s.Puzzles[i]
		}
	}
	return nil
}

// CutsceneByID returns the cutscene with the given id, or nil.
func (s *Scene) CutsceneByID(id string) *Cutscene {
	for i := range s.Cutscenes {
		if s.Cutscenes[i].ID == id {
			return &s.Cutscenes[i]
		}
	}
	return nil
}

// MusicByID returns the music track with the given id, or nil.
func (s *Scene) MusicByID(id string) *AudioTrack {
	for i := range s.Music {
		if s.Music[i].ID == id {
			return &s.Music[i]
		}
	}
	return nil
}

// SFXByID returns the sound effect with the given id, or nil.
func (s *Scene) SFXByID(id string) *AudioTrack {
	for i := range s.SFX {
		if s.SFX[i].ID == id {
			return &s.SFX[i]
		}
	}
	return nil
}

// Vertex is one walkbox polygon vertex.
type Vertex struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Walkbox is an authored polygon defining a walkable region.
type Walkbox struct {
	ID     string   `yaml:"id" json:"id"`
	Points []Vertex `yaml:"points" json:"points"`
}

// Polygon converts the walkbox vertex list to a geometry polygon.
func (w Walkbox) Polygon() geom.Polygon {
	poly := make(geom.Polygon, len(w.Points))
	for i, v := range w.Points {
		poly[i] = geom.Point{X: v.X, Y: v.Y}
	}
	return poly
}

// Exit is a rectangle that moves the player to another scene when reached.
type Exit struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	X           float64 `yaml:"x" json:"x"`
	Y           float64 `yaml:"y" json:"y"`
	W           float64 `yaml:"w" json:"w"`
	H           float64 `yaml:"h" json:"h"`
	TargetScene string  `yaml:"targetScene" json:"targetScene"`
}

// Rect returns the exit's rectangle.
func (e Exit) Rect() geom.Rect {
	return geom.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Object is a hotspot or placed image the player can interact with.
type Object struct {
	ID            string        `yaml:"id" json:"id"`
	Name          string        `yaml:"name" json:"name"`
	X             float64       `yaml:"x" json:"x"`
	Y             float64       `yaml:"y" json:"y"`
	W             float64       `yaml:"w" json:"w"`
	H             float64       `yaml:"h" json:"h"`
	Description   string        `yaml:"description" json:"description"`
	ExamineDialog string        `yaml:"examineDialog" json:"examineDialog"`
	Pickable      bool          `yaml:"pickable" json:"pickable"`
	PickupItem    string        `yaml:"pickupItem" json:"pickupItem"`
	Interactions  []Interaction `yaml:"interactions" json:"interactions"`
}

// Rect returns the object's bounding rectangle.
func (o Object) Rect() geom.Rect {
	return geom.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Interaction binds a verb to an action on an object, optionally gated by a
// runtime-variable condition.
type Interaction struct {
	Verb      string     `yaml:"verb" json:"verb"`
	Condition *Condition `yaml:"condition,omitempty" json:"condition,omitempty"`
	Action    Action     `yaml:"action" json:"action"`
}

// Condition compares a runtime variable against a value. Operator is one of
// ==, !=, >, <, >=, <=. Ordering operators require numeric operands.
type Condition struct {
	Variable string `yaml:"variable" json:"variable"`
	Operator string `yaml:"operator" json:"operator"`
	Value    any    `yaml:"value" json:"value"`
}

// Action kinds. "effects" runs an ordered list of declarative effect
// primitives; there is no arbitrary script execution.
const (
	ActionDialog      = "dialog"
	ActionDialogRef   = "dialogRef"
	ActionCutscene    = "cutscene"
	ActionPickup      = "pickup"
	ActionUseItem     = "use_item"
	ActionChangeScene = "change_scene"
	ActionSetVariable = "set_variable"
	ActionEffects     = "effects"
)

// Action is what an interaction does when it fires. Exactly the fields
// relevant to Kind are consulted.
type Action struct {
	Kind     string   `yaml:"kind" json:"kind"`
	Text     string   `yaml:"text,omitempty" json:"text,omitempty"`
	Dialog   string   `yaml:"dialog,omitempty" json:"dialog,omitempty"`
	Cutscene string   `yaml:"cutscene,omitempty" json:"cutscene,omitempty"`
	Scene    string   `yaml:"scene,omitempty" json:"scene,omitempty"`
	Item     string   `yaml:"item,omitempty" json:"item,omitempty"`
	Variable string   `yaml:"variable,omitempty" json:"variable,omitempty"`
	Value    any      `yaml:"value,omitempty" json:"value,omitempty"`
	Effects  []Effect `yaml:"effects,omitempty" json:"effects,omitempty"`
}

// Effect kinds for the declarative effect list.
const (
	EffectShowMessage   = "show-message"
	EffectSetVariable   = "set-variable"
	EffectAddItem       = "add-item"
	EffectRemoveItem    = "remove-item"
	EffectStartDialog   = "start-dialog"
	EffectStartCutscene = "start-cutscene"
	EffectSolvePuzzle   = "solve-puzzle"
	EffectChangeScene   = "change-scene"
	EffectPlaySFX       = "play-sfx"
)

// Effect is a single declarative state mutation primitive.
type Effect struct {
	Kind     string `yaml:"kind" json:"kind"`
	Text     string `yaml:"text,omitempty" json:"text,omitempty"`
	Item     string `yaml:"item,omitempty" json:"item,omitempty"`
	Variable string `yaml:"variable,omitempty" json:"variable,omitempty"`
	Value    any    `yaml:"value,omitempty" json:"value,omitempty"`
	Dialog   string `yaml:"dialog,omitempty" json:"dialog,omitempty"`
	Cutscene string `yaml:"cutscene,omitempty" json:"cutscene,omitempty"`
	Puzzle   string `yaml:"puzzle,omitempty" json:"puzzle,omitempty"`
	Scene    string `yaml:"scene,omitempty" json:"scene,omitempty"`
	SFX      string `yaml:"sfx,omitempty" json:"sfx,omitempty"`
}

// ActorPlacement positions an actor in a scene. The first placement of a
// scene is where the player spawns on entry.
type ActorPlacement struct {
	ID        string  `yaml:"id" json:"id"`
	ActorID   string  `yaml:"actorId" json:"actorId"`
	X         float64 `yaml:"x" json:"x"`
	Y         float64 `yaml:"y" json:"y"`
	Direction string  `yaml:"direction" json:"direction"`
	State     string  `yaml:"state" json:"state"`
}

// Dialog is an ordered run of lines spoken by an actor, with optional
// branching choices. Choices are metadata for the renderer; the runtime
// branches only through an explicit dialogRef action.
type Dialog struct {
	ID      string   `yaml:"id" json:"id"`
	Actor   string   `yaml:"actor" json:"actor"`
	Lines   []string `yaml:"lines" json:"lines"`
	Choices []Choice `yaml:"choices,omitempty" json:"choices,omitempty"`
}

// Choice is one branch option attached to a dialog.
type Choice struct {
	Text         string `yaml:"text" json:"text"`
	TargetDialog string `yaml:"targetDialog" json:"targetDialog"`
}

// Puzzle condition types.
const (
	PuzzleCondHasItem      = "has-item"
	PuzzleCondVariable     = "variable"
	PuzzleCondPuzzleSolved = "puzzle-solved"
)

// PuzzleCondition is one AND-combined requirement for solving a puzzle.
type PuzzleCondition struct {
	Type     string `yaml:"type" json:"type"`
	Item     string `yaml:"item,omitempty" json:"item,omitempty"`
	Variable string `yaml:"variable,omitempty" json:"variable,omitempty"`
	Value    any    `yaml:"value,omitempty" json:"value,omitempty"`
	Puzzle   string `yaml:"puzzle,omitempty" json:"puzzle,omitempty"`
}

// Result is applied when a puzzle solves or an item use matches. Each effect
// slot is scalar: one item given, one removed, one variable set, one
// cutscene, one sound.
type Result struct {
	Message     string  `yaml:"message,omitempty" json:"message,omitempty"`
	GiveItem    string  `yaml:"giveItem,omitempty" json:"giveItem,omitempty"`
	RemoveItem  string  `yaml:"removeItem,omitempty" json:"removeItem,omitempty"`
	SetVariable *VarSet `yaml:"setVariable,omitempty" json:"setVariable,omitempty"`
	Cutscene    string  `yaml:"cutscene,omitempty" json:"cutscene,omitempty"`
	SFX         string  `yaml:"sfx,omitempty" json:"sfx,omitempty"`
	SolvePuzzle string  `yaml:"solvePuzzle,omitempty" json:"solvePuzzle,omitempty"`
}

// VarSet names a variable and the value to assign.
type VarSet struct {
	Name  string `yaml:"name" json:"name"`
	Value any    `yaml:"value" json:"value"`
}

// Hint is shown when a puzzle attempt fails. AfterAttempts is the number of
// failed attempts required before the hint becomes eligible.
type Hint struct {
	AfterAttempts int    `yaml:"afterAttempts" json:"afterAttempts"`
	Text          string `yaml:"text" json:"text"`
}

// Puzzle is a condition/result gameplay gate. Solved is session state: it is
// mutated in place so revisiting a scene keeps completed puzzles completed,
// and reloading the project resets it.
type Puzzle struct {
	ID         string            `yaml:"id" json:"id"`
	Name       string            `yaml:"name" json:"name"`
	Type       string            `yaml:"type" json:"type"`
	Trigger    string            `yaml:"trigger" json:"trigger"`
	Conditions []PuzzleCondition `yaml:"conditions" json:"conditions"`
	Result     Result            `yaml:"result" json:"result"`
	Solved     bool              `yaml:"solved" json:"solved"`
	Hints      []Hint            `yaml:"hints,omitempty" json:"hints,omitempty"`
}

// Cutscene trigger kinds.
const (
	TriggerSceneEnter     = "scene-enter"
	TriggerObjectInteract = "object-interact"
	TriggerManual         = "manual"
)

// CutsceneTrigger declares when a cutscene starts on its own.
type CutsceneTrigger struct {
	Kind   string `yaml:"kind" json:"kind"`
	Target string `yaml:"target,omitempty" json:"target,omitempty"`
}

// Cutscene action types.
const (
	CutsceneDialog      = "dialog"
	CutsceneSFX         = "sfx"
	CutsceneMusic       = "music"
	CutsceneDirection   = "actor-direction"
	CutsceneSetVariable = "set-variable"
	CutsceneAddItem     = "add-item"
	CutsceneRemoveItem  = "remove-item"
	CutsceneMoveActor   = "move-actor"
	CutsceneWait        = "wait"
	CutsceneChangeScene = "change-scene"
	CutsceneFadeIn      = "fade-in"
	CutsceneFadeOut     = "fade-out"
	CutsceneCameraPan   = "camera-pan"
	CutsceneCameraShake = "camera-shake"
)

// CutsceneAction is one timed step of a cutscene. Delay and Duration are in
// milliseconds.
type CutsceneAction struct {
	Type     string       `yaml:"type" json:"type"`
	Delay    int          `yaml:"delay" json:"delay"`
	Duration int          `yaml:"duration" json:"duration"`
	Params   ActionParams `yaml:"params,omitempty" json:"params,omitempty"`
}

// ActionParams carries the type-specific payload of a cutscene action.
type ActionParams struct {
	Text      string  `yaml:"text,omitempty" json:"text,omitempty"`
	Actor     string  `yaml:"actor,omitempty" json:"actor,omitempty"`
	Direction string  `yaml:"direction,omitempty" json:"direction,omitempty"`
	X         float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y         float64 `yaml:"y,omitempty" json:"y,omitempty"`
	Item      string  `yaml:"item,omitempty" json:"item,omitempty"`
	Variable  string  `yaml:"variable,omitempty" json:"variable,omitempty"`
	Value     any     `yaml:"value,omitempty" json:"value,omitempty"`
	SFX       string  `yaml:"sfx,omitempty" json:"sfx,omitempty"`
	Music     string  `yaml:"music,omitempty" json:"music,omitempty"`
	Scene     string  `yaml:"scene,omitempty" json:"scene,omitempty"`
	Dialog    string  `yaml:"dialog,omitempty" json:"dialog,omitempty"`
}

// Cutscene is an ordered, timed list of scripted actions. HasPlayed is
// session state, reset on project load like Puzzle.Solved.
type Cutscene struct {
	ID        string           `yaml:"id" json:"id"`
	Name      string           `yaml:"name" json:"name"`
	Trigger   CutsceneTrigger  `yaml:"trigger" json:"trigger"`
	Skippable bool             `yaml:"skippable" json:"skippable"`
	HasPlayed bool             `yaml:"hasPlayed" json:"hasPlayed"`
	Actions   []CutsceneAction `yaml:"actions" json:"actions"`
}

// AudioTrack references an audio asset with playback settings.
type AudioTrack struct {
	ID     string  `yaml:"id" json:"id"`
	Asset  string  `yaml:"asset" json:"asset"`
	Volume float64 `yaml:"volume" json:"volume"`
	Loop   bool    `yaml:"loop" json:"loop"`
}
