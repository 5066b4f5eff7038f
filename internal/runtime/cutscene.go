package runtime

import (
	"time"

	"github.com/pointvale/stagehand/internal/scene"
)

// csPhase is the sequencer's explicit continuation state. Suspension is
// never a nested closure: the phase records what the cutscene is waiting
// for, and the corresponding subsystem advances it.
type csPhase int

const (
	csIdle       csPhase = iota
	csDelay              // waiting out the current action's delay
	csRunning            // action applied, waiting out its duration
	csAwaitWalk          // move-actor: resumes when the walk arrives
	csAwaitScene         // change-scene: resumes after the new scene fades in
)

// startCutscene begins executing a cutscene from its first action. Starting
// one clears any pending cutscene timer first, so at most one cutscene is
// ever being advanced.
func (r *Runtime) startCutscene(c *scene.Cutscene) {
	if c == nil || len(c.Actions) == 0 {
		return
	}
	r.cs = c
	r.csIndex = 0
	r.csPhase = csDelay
	r.csTimer = time.Duration(c.Actions[0].Delay) * time.Millisecond
	r.emit(EventCutsceneStart, c.ID)
}

// startCutsceneByID resolves a cutscene id in the current scene. Missing
// ids are logged and ignored.
func (r *Runtime) startCutsceneByID(id string) {
	c := r.scn.CutsceneByID(id)
	if c == nil {
		r.logger.Debug("cutscene not found", "scene", r.scn.ID, "cutscene", id)
		return
	}
	r.startCutscene(c)
}

// CutsceneActive reports whether a cutscene is currently sequencing.
func (r *Runtime) CutsceneActive() bool {
	return r.cs != nil
}

// SkipCutscene jumps straight to the end of the active cutscene. Honored
// only when the cutscene is authored as skippable. Effects already applied
// by executed actions are not rolled back.
func (r *Runtime) SkipCutscene() {
	if r.cs == nil || !r.cs.Skippable {
		return
	}
	r.emit(EventCutsceneSkip, r.cs.ID)
	if r.dialogEphemeral {
		r.clearDialog()
	}
	r.endCutscene()
}

func (r *Runtime) endCutscene() {
	r.cs = nil
	r.csIndex = 0
	r.csPhase = csIdle
	r.csTimer = 0
}

// tickCutscene advances the delay/duration deadlines of the active action.
func (r *Runtime) tickCutscene(dt time.Duration) {
	switch r.csPhase {
	case csDelay:
		r.csTimer -= dt
		if r.csTimer <= 0 {
			r.performAction()
		}
	case csRunning:
		r.csTimer -= dt
		if r.csTimer <= 0 {
			r.advanceCutscene()
		}
	}
}

// performAction applies the current action's effect. Most actions apply
// synchronously and then run out their duration; move-actor, wait and
// change-scene suspend the default auto-advance instead.
func (r *Runtime) performAction() {
	action := r.cs.Actions[r.csIndex]
	duration := time.Duration(action.Duration) * time.Millisecond
	if duration <= 0 {
		duration = r.tuning.DefaultActionDuration
	}

	switch action.Type {
	case scene.CutsceneMoveActor:
		r.csPhase = csAwaitWalk
		r.walkToWithCallback(action.Params.X, action.Params.Y, r.advanceCutscene)
		return

	case scene.CutsceneWait:
		// No effect; the duration is the point.

	case scene.CutsceneChangeScene:
		r.csPhase = csAwaitScene
		r.changeScene(action.Params.Scene)
		return

	case scene.CutsceneDialog:
		if action.Params.Dialog != "" {
			r.startDialogByID(action.Params.Dialog)
		} else {
			r.startEphemeralDialog(action.Params.Actor, action.Params.Text)
		}

	case scene.CutsceneSFX:
		r.playSFX(action.Params.SFX)

	case scene.CutsceneMusic:
		if track := r.scn.MusicByID(action.Params.Music); track != nil {
			r.audio.PlayMusic(*track)
		} else {
			r.logger.Debug("music not found", "scene", r.scn.ID, "music", action.Params.Music)
		}

	case scene.CutsceneDirection:
		if action.Params.Direction != "" {
			r.direction = action.Params.Direction
		}

	case scene.CutsceneSetVariable:
		r.setVariable(action.Params.Variable, action.Params.Value)

	case scene.CutsceneAddItem:
		r.addItem(action.Params.Item)

	case scene.CutsceneRemoveItem:
		r.removeItem(action.Params.Item)

	case scene.CutsceneFadeIn:
		r.startFadeTween(0, duration)

	case scene.CutsceneFadeOut:
		r.startFadeTween(1, duration)

	case scene.CutsceneCameraPan, scene.CutsceneCameraShake:
		// Accepted as timed no-ops; the visual effect is the renderer's.

	default:
		// Sequencing must never stall on authored data the runtime does
		// not understand.
		r.logger.Warn("unknown cutscene action", "cutscene", r.cs.ID, "type", action.Type)
	}

	r.csPhase = csRunning
	r.csTimer = duration
}

// advanceCutscene moves the cursor to the next action, or ends the
// cutscene after the last one.
func (r *Runtime) advanceCutscene() {
	if r.cs == nil {
		return
	}

	// A dialog line shown by a cutscene action lives exactly as long as
	// the action does.
	if r.dialogEphemeral {
		r.clearDialog()
	}

	r.csIndex++
	if r.csIndex >= len(r.cs.Actions) {
		r.endCutscene()
		return
	}
	r.csPhase = csDelay
	r.csTimer = time.Duration(r.cs.Actions[r.csIndex].Delay) * time.Millisecond
}

// triggerObjectCutscene starts the first unplayed cutscene whose trigger
// targets the given object. Returns true if one started.
func (r *Runtime) triggerObjectCutscene(objectID, objectName string) bool {
	for i := range r.scn.Cutscenes {
		c := &r.scn.Cutscenes[i]
		if c.HasPlayed || c.Trigger.Kind != scene.TriggerObjectInteract {
			continue
		}
		if c.Trigger.Target != objectID && c.Trigger.Target != objectName {
			continue
		}
		c.HasPlayed = true
		r.startCutscene(c)
		return true
	}
	return false
}

// triggerSceneEnterCutscene starts the first unplayed scene-enter cutscene
// of the current scene, if any.
func (r *Runtime) triggerSceneEnterCutscene() {
	for i := range r.scn.Cutscenes {
		c := &r.scn.Cutscenes[i]
		if c.HasPlayed || c.Trigger.Kind != scene.TriggerSceneEnter {
			continue
		}
		c.HasPlayed = true
		r.startCutscene(c)
		return
	}
}
