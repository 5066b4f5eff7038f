package runtime

import "github.com/pointvale/stagehand/internal/scene"

// attemptPuzzle checks a puzzle's conditions and either solves it or shows
// a hint. Already-solved puzzles just report as much.
func (r *Runtime) attemptPuzzle(p *scene.Puzzle) {
	if p == nil {
		return
	}
	if p.Solved {
		r.showMessage("That's already taken care of.")
		return
	}

	if !r.puzzleConditionsMet(p) {
		r.attempts[p.ID]++
		r.showMessage(r.puzzleHint(p))
		return
	}

	r.solvePuzzle(p)
}

// puzzleConditionsMet evaluates the AND-combined condition list. Unknown
// condition types fail closed so a typo cannot unlock a gate.
func (r *Runtime) puzzleConditionsMet(p *scene.Puzzle) bool {
	for _, cond := range p.Conditions {
		switch cond.Type {
		case scene.PuzzleCondHasItem:
			if !r.hasItem(cond.Item) {
				return false
			}
		case scene.PuzzleCondVariable:
			if !looseEqual(r.variables[cond.Variable], cond.Value) {
				return false
			}
		case scene.PuzzleCondPuzzleSolved:
			other := r.scn.PuzzleByID(cond.Puzzle)
			if other == nil || !other.Solved {
				return false
			}
		default:
			r.logger.Debug("unknown puzzle condition", "puzzle", p.ID, "type", cond.Type)
			return false
		}
	}
	return true
}

// puzzleHint picks the hint for the current failed-attempt count: the last
// hint whose afterAttempts threshold has been reached, falling back to the
// first hint before any threshold applies.
func (r *Runtime) puzzleHint(p *scene.Puzzle) string {
	if len(p.Hints) == 0 {
		return "That doesn't seem to work yet."
	}
	hint := p.Hints[0].Text
	tries := r.attempts[p.ID]
	for _, h := range p.Hints {
		if tries >= h.AfterAttempts {
			hint = h.Text
		}
	}
	return hint
}

// solvePuzzle marks a puzzle solved and applies its result effects.
// Idempotent: a second call on the same puzzle is a no-op, so effects apply
// exactly once. The Solved flag lives on the loaded scene data, which keeps
// completion across scene revisits within the session.
func (r *Runtime) solvePuzzle(p *scene.Puzzle) {
	if p == nil || p.Solved {
		return
	}
	p.Solved = true
	r.emit(EventPuzzleSolved, p.ID)

	msg := p.Result.Message
	if msg == "" {
		msg = "Something changed."
	}
	r.showMessage(msg)
	r.applyResult(p.Result, false)
}

// solvePuzzleByID resolves a puzzle id in the current scene and solves it
// directly, bypassing condition checks. Used by item-use results and
// declarative effects.
func (r *Runtime) solvePuzzleByID(id string) {
	p := r.scn.PuzzleByID(id)
	if p == nil {
		r.logger.Debug("puzzle not found", "scene", r.scn.ID, "puzzle", id)
		return
	}
	r.solvePuzzle(p)
}

// applyResult applies a result's effect slots: at most one item given, one
// removed, one variable set, one cutscene, one sound, one chained puzzle
// solve. withMessage controls whether the result message is shown here
// (item use shows it; solvePuzzle already has).
func (r *Runtime) applyResult(res scene.Result, withMessage bool) {
	if withMessage && res.Message != "" {
		r.showMessage(res.Message)
	}
	if res.GiveItem != "" {
		r.addItem(res.GiveItem)
	}
	if res.RemoveItem != "" {
		r.removeItem(res.RemoveItem)
	}
	if res.SetVariable != nil {
		r.setVariable(res.SetVariable.Name, res.SetVariable.Value)
	}
	if res.SolvePuzzle != "" {
		r.solvePuzzleByID(res.SolvePuzzle)
	}
	if res.SFX != "" {
		r.playSFX(res.SFX)
	}
	if res.Cutscene != "" {
		r.startCutsceneByID(res.Cutscene)
	}
}
