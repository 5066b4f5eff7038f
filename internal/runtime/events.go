package runtime

// Event kinds published to the EventSink.
const (
	EventInteraction   = "interaction"
	EventMessage       = "message"
	EventSceneChange   = "scene-change"
	EventPuzzleSolved  = "puzzle-solved"
	EventCutsceneStart = "cutscene-start"
	EventCutsceneSkip  = "cutscene-skip"
	EventDialogStart   = "dialog-start"
	EventItemAdded     = "item-added"
	EventItemRemoved   = "item-removed"
)

// Event is one gameplay occurrence worth recording in a playtest trace.
type Event struct {
	Kind   string
	Scene  string
	Detail string
}

// EventSink receives gameplay events. Implementations must not block: the
// runtime calls Record from its tick path. Recording failures are the
// sink's problem; the runtime never checks.
type EventSink interface {
	Record(e Event)
}

func (r *Runtime) emit(kind, detail string) {
	if r.sink == nil {
		return
	}
	sceneID := ""
	if r.scn != nil {
		sceneID = r.scn.ID
	}
	r.sink.Record(Event{Kind: kind, Scene: sceneID, Detail: detail})
}
