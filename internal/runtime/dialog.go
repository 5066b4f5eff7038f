package runtime

import "github.com/pointvale/stagehand/internal/scene"

// startDialog begins line-by-line presentation of a dialog. Exactly one
// dialog can be active; starting a new one replaces the old.
func (r *Runtime) startDialog(d *scene.Dialog) {
	if d == nil || len(d.Lines) == 0 {
		return
	}
	r.dialog = d
	r.dialogLine = 0
	r.dialogEphemeral = false
	r.animState = "talk"
	r.emit(EventDialogStart, d.ID)
}

// startDialogByID resolves a dialog id in the current scene. Missing ids
// are logged and ignored.
func (r *Runtime) startDialogByID(id string) {
	d := r.scn.DialogByID(id)
	if d == nil {
		r.logger.Debug("dialog not found", "scene", r.scn.ID, "dialog", id)
		return
	}
	r.startDialog(d)
}

// startEphemeralDialog shows a single line of speech that is not authored
// as a dialog (inline interaction text, cutscene dialog actions). The
// cutscene sequencer clears it when the action's duration elapses.
func (r *Runtime) startEphemeralDialog(actor, text string) {
	if text == "" {
		return
	}
	r.dialog = &scene.Dialog{Actor: actor, Lines: []string{text}}
	r.dialogLine = 0
	r.dialogEphemeral = true
	r.animState = "talk"
}

// AdvanceDialog moves to the next line. Reaching the end of the lines
// clears the dialog and returns the player to idle. Calling it with no
// active dialog is a no-op.
func (r *Runtime) AdvanceDialog() {
	if r.dialog == nil {
		return
	}
	r.dialogLine++
	if r.dialogLine >= len(r.dialog.Lines) {
		r.clearDialog()
	}
}

// ChooseDialog follows a branching choice of the active dialog. Branching
// never happens automatically: choices are authoring metadata until the
// renderer invokes one explicitly.
func (r *Runtime) ChooseDialog(index int) {
	if r.dialog == nil || index < 0 || index >= len(r.dialog.Choices) {
		return
	}
	target := r.dialog.Choices[index].TargetDialog
	r.clearDialog()
	if target != "" {
		r.startDialogByID(target)
	}
}

func (r *Runtime) clearDialog() {
	r.dialog = nil
	r.dialogLine = 0
	r.dialogEphemeral = false
	r.animState = "idle"
}
