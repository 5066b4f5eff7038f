package runtime

import "time"

// transition tracks an in-progress scene change. Phases run strictly in
// order: fade to opaque, swap, fade back to clear, then an optional short
// delay before a suspended cutscene resumes.
type transition struct {
	phase       transPhase
	targetScene string
	resumeTimer time.Duration
}

type transPhase int

const (
	transNone transPhase = iota
	transFadeOut
	transFadeIn
	transResume
)

func (t transition) active() bool {
	return t.phase != transNone
}

// changeScene starts a fade transition into the target scene. A transition
// already in progress wins: repeated triggers (an exit radius holding true
// for several frames, say) start exactly one transition. Unknown targets
// degrade to a message.
func (r *Runtime) changeScene(targetID string) {
	if r.trans.active() {
		return
	}
	if r.project.SceneByID(targetID) == nil {
		r.logger.Debug("scene not found", "scene", targetID)
		r.showMessage("That way seems to lead nowhere.")
		return
	}
	r.trans.phase = transFadeOut
	r.trans.targetScene = targetID
}

// tickTransition drives the fade-out → swap → fade-in sequence.
func (r *Runtime) tickTransition(dt time.Duration) {
	step := float64(dt) / float64(r.tuning.FadeDuration)

	switch r.trans.phase {
	case transFadeOut:
		r.fade += step
		if r.fade >= 1 {
			r.fade = 1
			r.swapScene()
			r.trans.phase = transFadeIn
		}

	case transFadeIn:
		r.fade -= step
		if r.fade <= 0 {
			r.fade = 0
			if r.cutsceneSuspendedOnTransition() {
				// A cutscene is suspended on this transition, either by a
				// change-scene action or by a move-actor walk that crossed
				// an exit. Give the new scene a beat before it resumes.
				r.trans.phase = transResume
				r.trans.resumeTimer = r.tuning.ResumeDelay
			} else {
				r.trans.phase = transNone
			}
		}

	case transResume:
		r.trans.resumeTimer -= dt
		if r.trans.resumeTimer <= 0 {
			r.trans.phase = transNone
			r.advanceCutscene()
		}
	}
}

// cutsceneSuspendedOnTransition reports whether the active cutscene is
// waiting on the current scene transition: a change-scene action directly,
// or a move-actor walk that entered an exit radius. The exit path drops the
// arrival callback, so the transition must resume the cutscene itself.
func (r *Runtime) cutsceneSuspendedOnTransition() bool {
	return r.csPhase == csAwaitScene || r.csPhase == csAwaitWalk
}

// swapScene performs the mid-fade work: install the new scene, reposition
// the player, start its music, and fire its entry cutscene. Entry cutscenes
// are skipped while another cutscene is suspended on this very transition;
// one cutscene at a time.
func (r *Runtime) swapScene() {
	target := r.project.SceneByID(r.trans.targetScene)
	if target == nil {
		return
	}
	r.emit(EventSceneChange, target.ID)
	r.enterScene(target)

	if !r.cutsceneSuspendedOnTransition() {
		r.triggerSceneEnterCutscene()
	}
}

// startFadeTween runs the fade level toward a target over the given
// duration, independent of any scene transition. Used by cutscene fade
// actions.
func (r *Runtime) startFadeTween(target float64, duration time.Duration) {
	if duration <= 0 {
		r.fade = target
		r.fadeTween = 0
		return
	}
	r.fadeTarget = target
	r.fadeTween = (target - r.fade) / duration.Seconds()
}

// tickFade advances a standalone fade tween. Scene transitions drive the
// fade level directly and take precedence.
func (r *Runtime) tickFade(dt time.Duration) {
	if r.fadeTween == 0 || r.trans.active() {
		return
	}
	r.fade += r.fadeTween * dt.Seconds()
	if (r.fadeTween > 0 && r.fade >= r.fadeTarget) || (r.fadeTween < 0 && r.fade <= r.fadeTarget) {
		r.fade = r.fadeTarget
		r.fadeTween = 0
	}
}
