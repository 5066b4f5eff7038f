package runtime

import (
	"testing"
	"time"

	"github.com/pointvale/stagehand/internal/scene"
)

// recordSink collects runtime events for assertions.
type recordSink struct {
	events []Event
}

func (s *recordSink) Record(e Event) {
	s.events = append(s.events, e)
}

func (s *recordSink) count(kind string) int {
	n := 0
	for _, e := range s.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// tickDT is the fixed frame interval used by tests: 20 ticks per second.
const tickDT = 50 * time.Millisecond

func ticks(r *Runtime, n int) {
	for i := 0; i < n; i++ {
		r.Tick(tickDT)
	}
}

// testProject builds a two-scene project exercising every object kind.
func testProject() *scene.Project {
	p := &scene.Project{
		Name:       "test",
		StartScene: "scene-1",
		Global: scene.GlobalData{
			Actors: []scene.Actor{{ID: "hero", Name: "Hero"}},
			Items: []scene.Item{
				{ID: "key", Name: "Key", PickupText: "A small brass key.", UseWith: []scene.ItemUse{
					{Target: "door", Result: scene.Result{Message: "The door unlocks.", RemoveItem: "key", SetVariable: &scene.VarSet{Name: "door_open", Value: true}}},
				}},
				{ID: "rope", Name: "Rope"},
			},
			Verbs: []scene.Verb{
				{ID: "v-look", Name: "Look"},
				{ID: "v-use", Name: "Use"},
				{ID: "v-take", Name: "Pick up"},
				{ID: "v-talk", Name: "Hablar"},
				{ID: "v-open", Name: "Open"},
			},
			Inventory: []string{"key"},
			Variables: map[string]any{"met_guard": false, "coins": 3},
		},
		Scenes: []*scene.Scene{
			{
				ID: "scene-1", Name: "Courtyard", Width: 320, Height: 200,
				Walkboxes: []scene.Walkbox{{ID: "wb-1", Points: []scene.Vertex{
					{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 200, Y: 200}, {X: 0, Y: 200},
				}}},
				Exits: []scene.Exit{{ID: "exit-1", Name: "archway", X: 180, Y: 180, W: 20, H: 20, TargetScene: "scene-2"}},
				ActorPlacements: []scene.ActorPlacement{
					{ID: "pl-1", ActorID: "hero", X: 10, Y: 10, Direction: "south", State: "idle"},
				},
				Hotspots: []scene.Object{
					{
						ID: "door", Name: "Door", X: 100, Y: 0, W: 20, H: 40,
						Description: "A heavy oak door.",
						Interactions: []scene.Interaction{
							{
								Verb:      "v-open",
								Condition: &scene.Condition{Variable: "door_open", Operator: "==", Value: true},
								Action:    scene.Action{Kind: scene.ActionChangeScene, Scene: "scene-2"},
							},
						},
					},
					{
						ID: "sign", Name: "Sign", X: 10, Y: 50, W: 10, H: 10,
						Description: "Beware of the dog.",
					},
					{
						ID: "pebble", Name: "Pebble", X: 40, Y: 50, W: 8, H: 8,
						Pickable: true, PickupItem: "rope",
					},
					{
						ID: "lever", Name: "Lever", X: 60, Y: 50, W: 8, H: 8,
					},
					{
						ID: "statue", Name: "Statue", X: 80, Y: 50, W: 8, H: 8,
					},
				},
				Dialogs: []scene.Dialog{
					{ID: "dlg-guard", Actor: "guard", Lines: []string{"Halt!", "Who goes there?"}, Choices: []scene.Choice{
						{Text: "A friend.", TargetDialog: "dlg-friend"},
					}},
					{ID: "dlg-friend", Actor: "guard", Lines: []string{"Pass, friend."}},
				},
				Puzzles: []scene.Puzzle{
					{
						ID: "pz-lever", Name: "Lever puzzle", Trigger: "lever",
						Conditions: []scene.PuzzleCondition{{Type: scene.PuzzleCondHasItem, Item: "rope"}},
						Result:     scene.Result{Message: "The lever turns.", GiveItem: "key", SetVariable: &scene.VarSet{Name: "lever_on", Value: true}},
						Hints: []scene.Hint{
							{AfterAttempts: 0, Text: "It needs something to grip."},
							{AfterAttempts: 3, Text: "Maybe a rope would help."},
						},
					},
				},
				Cutscenes: []scene.Cutscene{
					{
						ID: "cut-statue", Trigger: scene.CutsceneTrigger{Kind: scene.TriggerObjectInteract, Target: "statue"},
						Skippable: true,
						Actions: []scene.CutsceneAction{
							{Type: scene.CutsceneWait, Duration: 500},
							{Type: scene.CutsceneDialog, Duration: 400, Params: scene.ActionParams{Actor: "hero", Text: "It moved!"}},
						},
					},
				},
				SFX: []scene.AudioTrack{{ID: "sfx-click", Asset: "click.ogg", Volume: 1}},
			},
			{
				ID: "scene-2", Name: "Hallway", Width: 320, Height: 200,
				Walkboxes: []scene.Walkbox{{ID: "wb-2", Points: []scene.Vertex{
					{X: 0, Y: 0}, {X: 300, Y: 0}, {X: 300, Y: 100}, {X: 0, Y: 100},
				}}},
				ActorPlacements: []scene.ActorPlacement{
					{ID: "pl-2", ActorID: "hero", X: 20, Y: 20, Direction: "east", State: "idle"},
				},
				Music: []scene.AudioTrack{{ID: "mus-hall", Asset: "hall.ogg", Volume: 0.8, Loop: true}},
			},
		},
	}
	scene.ResolveVerbCategories(&p.Global)
	return p
}

func newTestRuntime(t *testing.T, sink EventSink) *Runtime {
	t.Helper()
	r, err := New(testProject(), Options{Sink: sink})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return r
}

func TestNewPreflight(t *testing.T) {
	t.Run("fails with no placements and no actors", func(t *testing.T) {
		p := testProject()
		p.Global.Actors = nil
		p.Scenes[0].ActorPlacements = nil
		if _, err := New(p, Options{}); err != ErrNoActors {
			t.Errorf("New() error = %v, expected ErrNoActors", err)
		}
	})

	t.Run("starts with global actor but no placement", func(t *testing.T) {
		p := testProject()
		p.Scenes[0].ActorPlacements = nil
		r, err := New(p, Options{})
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		st := r.State()
		if st.PlayerActorID != "hero" {
			t.Errorf("player actor = %q, expected hero", st.PlayerActorID)
		}
		if st.X != 160 || st.Y != 100 {
			t.Errorf("player at (%v,%v), expected scene center (160,100)", st.X, st.Y)
		}
	})

	t.Run("copies inventory and variables", func(t *testing.T) {
		p := testProject()
		r, err := New(p, Options{})
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		r.addItem("rope")
		r.setVariable("coins", 99)
		if len(p.Global.Inventory) != 1 {
			t.Errorf("global inventory mutated: %v", p.Global.Inventory)
		}
		if p.Global.Variables["coins"] != 3 {
			t.Errorf("global variables mutated: %v", p.Global.Variables["coins"])
		}
	})
}

func TestWalkArrival(t *testing.T) {
	r := newTestRuntime(t, nil)

	r.HandleClick(50, 50)
	st := r.State()
	if !st.Walking {
		t.Fatal("expected walking after click on empty walkable space")
	}

	ticks(r, 60)

	st = r.State()
	if st.Walking {
		t.Error("expected walk to finish")
	}
	if st.X != 50 || st.Y != 50 {
		t.Errorf("player at (%v,%v), expected exact snap to (50,50)", st.X, st.Y)
	}
	// Equal |dx| and |dy|: the horizontal axis wins ties.
	if st.Direction != "east" {
		t.Errorf("direction = %q, expected east", st.Direction)
	}
	if st.AnimState != "idle" {
		t.Errorf("anim state = %q, expected idle after arrival", st.AnimState)
	}
}

func TestWalkAnimationLabel(t *testing.T) {
	r := newTestRuntime(t, nil)
	r.WalkTo(10, 150)
	r.Tick(tickDT)
	st := r.State()
	if st.AnimState != "walk-south" {
		t.Errorf("anim state = %q, expected walk-south mid-walk", st.AnimState)
	}
}

func TestWalkTargetProjection(t *testing.T) {
	r := newTestRuntime(t, nil)
	// (250,50) is outside the 200-wide walkbox; the walk must aim at the
	// nearest edge point instead.
	r.WalkTo(250, 50)
	st := r.State()
	if st.TargetX != 200 || st.TargetY != 50 {
		t.Errorf("walk target (%v,%v), expected projection (200,50)", st.TargetX, st.TargetY)
	}
}

func TestExitTriggersSingleTransition(t *testing.T) {
	sink := &recordSink{}
	r := newTestRuntime(t, sink)

	// Walk straight at the exit center; proximity holds for several
	// consecutive frames once inside the radius.
	r.WalkTo(190, 190)
	ticks(r, 200)

	if got := sink.count(EventSceneChange); got != 1 {
		t.Fatalf("scene changed %d times, expected exactly once", got)
	}
	st := r.State()
	if st.SceneID != "scene-2" {
		t.Errorf("scene = %q, expected scene-2", st.SceneID)
	}
	if st.X != 20 || st.Y != 20 {
		t.Errorf("player at (%v,%v), expected scene-2 placement (20,20)", st.X, st.Y)
	}
	if st.Transitioning {
		t.Error("transition should have completed")
	}
	if st.FadeLevel != 0 {
		t.Errorf("fade level = %v, expected 0 after fade-in", st.FadeLevel)
	}
	if st.AnimState != "idle" || st.Walking {
		t.Errorf("expected idle, not walking after transition; got %q walking=%v", st.AnimState, st.Walking)
	}
}

func TestMessageAutoClear(t *testing.T) {
	r := newTestRuntime(t, nil)
	r.showMessage("hello")
	if r.State().Message != "hello" {
		t.Fatal("message not shown")
	}
	ticks(r, 61) // just past the 3s default
	if got := r.State().Message; got != "" {
		t.Errorf("message = %q, expected auto-clear", got)
	}
}

func TestMessagesReachTheSink(t *testing.T) {
	sink := &recordSink{}
	r := newTestRuntime(t, sink)

	r.showMessage("Beware of the dog.")
	r.showMessage("")

	if got := sink.count(EventMessage); got != 1 {
		t.Fatalf("message events = %d, expected 1", got)
	}
	if got := sink.events[len(sink.events)-1].Detail; got != "Beware of the dog." {
		t.Errorf("event detail = %q, expected the message text", got)
	}
}
