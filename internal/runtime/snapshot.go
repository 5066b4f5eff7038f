package runtime

// DialogView is the renderer's view of the active dialog.
type DialogView struct {
	ID        string
	Actor     string
	Line      string
	LineIndex int
	LineCount int
	Choices   []string
}

// Snapshot is a copy of the RuntimeState a rendering layer reads every
// frame. The runtime makes no assumptions about how it is drawn.
type Snapshot struct {
	SceneID   string
	SceneName string

	PlayerActorID string
	PlacementID   string
	X, Y          float64
	Direction     string
	AnimState     string

	Walking          bool
	TargetX, TargetY float64

	SelectedVerb  string
	SelectedItem  string
	HoveredObject string

	Message string

	DialogActive bool
	Dialog       DialogView

	CutsceneActive    bool
	CutsceneID        string
	CutsceneSkippable bool

	Transitioning bool
	FadeLevel     float64

	Inventory []string
	Variables map[string]any
}

// State captures the current runtime state. Slices and maps are copied, so
// a renderer can hold a snapshot across frames safely.
func (r *Runtime) State() Snapshot {
	s := Snapshot{
		SceneID:       r.scn.ID,
		SceneName:     r.scn.Name,
		PlayerActorID: r.playerActorID,
		PlacementID:   r.placementID,
		X:             r.x,
		Y:             r.y,
		Direction:     r.direction,
		AnimState:     r.animState,
		Walking:       r.walking,
		TargetX:       r.targetX,
		TargetY:       r.targetY,
		SelectedVerb:  r.selectedVerb,
		SelectedItem:  r.selectedItem,
		HoveredObject: r.hovered,
		Message:       r.message,
		Transitioning: r.trans.active(),
		FadeLevel:     r.fade,
		Inventory:     append([]string(nil), r.inventory...),
		Variables:     make(map[string]any, len(r.variables)),
	}
	for k, v := range r.variables {
		s.Variables[k] = v
	}

	if r.dialog != nil {
		s.DialogActive = true
		s.Dialog = DialogView{
			ID:        r.dialog.ID,
			Actor:     r.dialog.Actor,
			LineIndex: r.dialogLine,
			LineCount: len(r.dialog.Lines),
		}
		if r.dialogLine < len(r.dialog.Lines) {
			s.Dialog.Line = r.dialog.Lines[r.dialogLine]
		}
		for _, c := range r.dialog.Choices {
			s.Dialog.Choices = append(s.Dialog.Choices, c.Text)
		}
	}

	if r.cs != nil {
		s.CutsceneActive = true
		s.CutsceneID = r.cs.ID
		s.CutsceneSkippable = r.cs.Skippable
	}

	return s
}
