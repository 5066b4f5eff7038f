package runtime

import (
	"strings"
	"testing"

	"github.com/pointvale/stagehand/internal/scene"
)

func (r *Runtime) mustTarget(t *testing.T, x, y float64) Target {
	t.Helper()
	target, ok := r.hitTest(x, y)
	if !ok {
		t.Fatalf("no target at (%v,%v)", x, y)
	}
	return target
}

func TestItemModeOverridesVerb(t *testing.T) {
	r := newTestRuntime(t, nil)

	// The door has a custom interaction bound to v-open; with an item
	// selected, that interaction must not fire even with v-open active.
	r.setVariable("door_open", true)
	r.SelectVerb("v-open")
	r.SelectItem("key")

	r.Interact("v-open", r.mustTarget(t, 105, 10))

	st := r.State()
	if st.Transitioning {
		t.Error("custom interaction fired despite selected item")
	}
	if st.Message != "The door unlocks." {
		t.Errorf("message = %q, expected the item-use result", st.Message)
	}
	if st.SelectedItem != "" {
		t.Error("selected item not cleared after use")
	}
	if r.hasItem("key") {
		t.Error("key should have been removed by the use result")
	}
	if v := st.Variables["door_open"]; v != true {
		t.Errorf("door_open = %v, expected true", v)
	}
}

func TestItemUseNoMatch(t *testing.T) {
	r := newTestRuntime(t, nil)
	r.SelectItem("key")

	r.Interact("v-use", r.mustTarget(t, 12, 52)) // the sign

	st := r.State()
	if st.SelectedItem != "" {
		t.Error("selection must clear on a failed combination too")
	}
	if st.Message != "That doesn't work." {
		t.Errorf("message = %q, expected generic failure", st.Message)
	}
	if !r.hasItem("key") {
		t.Error("failed use must not consume the item")
	}
}

func TestExitClickWalksRegardlessOfVerb(t *testing.T) {
	r := newTestRuntime(t, nil)
	r.SelectVerb("v-look")

	r.Interact("v-look", r.mustTarget(t, 190, 190))

	st := r.State()
	if !st.Walking {
		t.Fatal("expected a walk toward the exit center")
	}
	if st.TargetX != 190 || st.TargetY != 190 {
		t.Errorf("walk target (%v,%v), expected exit center (190,190)", st.TargetX, st.TargetY)
	}
	if st.Message != "" {
		t.Errorf("no message expected for an exit click, got %q", st.Message)
	}
}

func TestConditionalInteraction(t *testing.T) {
	t.Run("condition fails", func(t *testing.T) {
		r := newTestRuntime(t, nil)
		r.Interact("v-open", r.mustTarget(t, 105, 10))
		if got := r.State().Message; got != "Nothing happens." {
			t.Errorf("message = %q, expected neutral refusal", got)
		}
		if r.State().Transitioning {
			t.Error("gated action must not run when the condition fails")
		}
	})

	t.Run("condition passes", func(t *testing.T) {
		r := newTestRuntime(t, nil)
		r.setVariable("door_open", true)
		r.Interact("v-open", r.mustTarget(t, 105, 10))
		if !r.State().Transitioning {
			t.Error("expected the change-scene action to start a transition")
		}
	})
}

func TestLookShowsDescription(t *testing.T) {
	r := newTestRuntime(t, nil)
	r.Interact("v-look", r.mustTarget(t, 12, 52))
	if got := r.State().Message; got != "Beware of the dog." {
		t.Errorf("message = %q, expected the sign description", got)
	}
}

func TestPickableObject(t *testing.T) {
	r := newTestRuntime(t, nil)
	r.Interact("v-take", r.mustTarget(t, 42, 52))
	if !r.hasItem("rope") {
		t.Error("pickable object did not yield its item")
	}
	// Second pickup is a no-op add; inventory stays unique.
	r.Interact("v-take", r.mustTarget(t, 42, 52))
	count := 0
	for _, it := range r.State().Inventory {
		if it == "rope" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("rope appears %d times in inventory", count)
	}
}

func TestPuzzleTriggerVerbs(t *testing.T) {
	tests := []struct {
		name     string
		verb     string
		attempts bool
	}{
		{name: "use attempts", verb: "v-use", attempts: true},
		{name: "open attempts", verb: "v-open", attempts: true},
		{name: "look does not", verb: "v-look", attempts: false},
		{name: "talk does not", verb: "v-talk", attempts: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRuntime(t, nil)
			r.Interact(tc.verb, r.mustTarget(t, 62, 52)) // the lever
			hinted := strings.Contains(r.State().Message, "grip")
			if hinted != tc.attempts {
				t.Errorf("verb %s: hint shown = %v, expected %v (message %q)",
					tc.verb, hinted, tc.attempts, r.State().Message)
			}
		})
	}
}

func TestObjectCutscenePlaysOnce(t *testing.T) {
	sink := &recordSink{}
	r := newTestRuntime(t, sink)

	r.Interact("v-use", r.mustTarget(t, 82, 52)) // the statue
	if !r.CutsceneActive() {
		t.Fatal("expected the object-interact cutscene to start")
	}
	r.SkipCutscene()

	r.Interact("v-use", r.mustTarget(t, 82, 52))
	if r.CutsceneActive() {
		t.Error("a played cutscene must not start again")
	}
	if got := sink.count(EventCutsceneStart); got != 1 {
		t.Errorf("cutscene started %d times, expected once", got)
	}
}

func TestDefaultVerbText(t *testing.T) {
	tests := []struct {
		name string
		verb string
		want string
	}{
		{name: "talk", verb: "v-talk", want: "It doesn't seem very talkative."},
		{name: "open", verb: "v-open", want: "It doesn't open."},
		{name: "unknown verb", verb: "v-nope", want: "I can't do that."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRuntime(t, nil)
			r.Interact(tc.verb, r.mustTarget(t, 12, 52)) // the sign
			if got := r.State().Message; got != tc.want {
				t.Errorf("message = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestClickPriorities(t *testing.T) {
	t.Run("dialog consumes clicks", func(t *testing.T) {
		r := newTestRuntime(t, nil)
		r.startDialogByID("dlg-guard")
		r.HandleClick(190, 190) // would otherwise walk to the exit
		st := r.State()
		if st.Walking {
			t.Error("click during dialog must not start a walk")
		}
		if !st.DialogActive || st.Dialog.LineIndex != 1 {
			t.Errorf("expected dialog advanced to line 1, got active=%v index=%d",
				st.DialogActive, st.Dialog.LineIndex)
		}
	})

	t.Run("cutscene swallows clicks", func(t *testing.T) {
		r := newTestRuntime(t, nil)
		r.Interact("v-use", r.mustTarget(t, 82, 52))
		r.HandleClick(50, 50)
		if r.State().Walking {
			t.Error("click during cutscene must be ignored")
		}
	})
}

func TestRunEffects(t *testing.T) {
	r := newTestRuntime(t, nil)
	r.runEffects([]scene.Effect{
		{Kind: scene.EffectAddItem, Item: "rope"},
		{Kind: scene.EffectSetVariable, Variable: "lights", Value: "on"},
		{Kind: scene.EffectShowMessage, Text: "Done."},
		{Kind: "teleport", Item: "x"}, // unknown kinds are skipped
	})
	st := r.State()
	if !r.hasItem("rope") {
		t.Error("add-item effect missed")
	}
	if st.Variables["lights"] != "on" {
		t.Error("set-variable effect missed")
	}
	if st.Message != "Done." {
		t.Errorf("message = %q, expected Done.", st.Message)
	}
}

func TestHover(t *testing.T) {
	r := newTestRuntime(t, nil)
	r.HoverAt(105, 10)
	if got := r.State().HoveredObject; got != "Door" {
		t.Errorf("hovered = %q, expected Door", got)
	}
	r.HoverAt(150, 150)
	if got := r.State().HoveredObject; got != "" {
		t.Errorf("hovered = %q, expected cleared", got)
	}
}
