package scene

import "fmt"

// ValidationError contains details about one project validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate performs structural validation of a project and returns every
// problem found. An empty result means the project is playable.
//
// Checks:
//   - scene ids unique, start scene exists
//   - walkboxes have at least 3 vertices
//   - exits target existing scenes
//   - interactions reference known verbs and existing dialogs/cutscenes/scenes
//   - puzzle conditions reference known items/puzzles; results reference
//     known items/cutscenes
//   - cutscene change-scene actions target existing scenes
//   - actor placements reference known actors
func Validate(p *Project) []ValidationError {
	var errs []ValidationError

	sceneIDs := make(map[string]bool)
	for _, s := range p.Scenes {
		if sceneIDs[s.ID] {
			errs = append(errs, ValidationError{
				Code:    "DUPLICATE_SCENE",
				Message: fmt.Sprintf("scene id %q appears more than once", s.ID),
			})
		}
		sceneIDs[s.ID] = true
	}

	if p.StartScene != "" && !sceneIDs[p.StartScene] {
		errs = append(errs, ValidationError{
			Code:    "MISSING_START_SCENE",
			Message: fmt.Sprintf("start scene %q does not exist", p.StartScene),
		})
	}

	itemIDs := make(map[string]bool)
	for _, it := range p.Global.Items {
		itemIDs[it.ID] = true
	}
	verbIDs := make(map[string]bool)
	for _, v := range p.Global.Verbs {
		verbIDs[v.ID] = true
	}
	actorIDs := make(map[string]bool)
	for _, a := range p.Global.Actors {
		actorIDs[a.ID] = true
	}

	for _, item := range p.Global.Inventory {
		if !itemIDs[item] {
			errs = append(errs, ValidationError{
				Code:    "UNKNOWN_ITEM",
				Message: fmt.Sprintf("initial inventory references unknown item %q", item),
			})
		}
	}

	for _, s := range p.Scenes {
		errs = append(errs, validateScene(s, sceneIDs, itemIDs, verbIDs, actorIDs)...)
	}

	return errs
}

func validateScene(s *Scene, sceneIDs, itemIDs, verbIDs, actorIDs map[string]bool) []ValidationError {
	var errs []ValidationError

	fail := func(code, format string, args ...any) {
		errs = append(errs, ValidationError{
			Code:    code,
			Message: fmt.Sprintf("scene %q: ", s.ID) + fmt.Sprintf(format, args...),
		})
	}

	for _, wb := range s.Walkboxes {
		if len(wb.Points) < 3 {
			fail("DEGENERATE_WALKBOX", "walkbox %q has %d vertices, need at least 3", wb.ID, len(wb.Points))
		}
	}

	for _, e := range s.Exits {
		if e.TargetScene != "" && !sceneIDs[e.TargetScene] {
			fail("DANGLING_EXIT", "exit %q targets unknown scene %q", e.ID, e.TargetScene)
		}
	}

	for _, ap := range s.ActorPlacements {
		if !actorIDs[ap.ActorID] {
			fail("UNKNOWN_ACTOR", "placement %q references unknown actor %q", ap.ID, ap.ActorID)
		}
	}

	dialogIDs := make(map[string]bool)
	for _, d := range s.Dialogs {
		dialogIDs[d.ID] = true
	}
	cutsceneIDs := make(map[string]bool)
	for _, c := range s.Cutscenes {
		cutsceneIDs[c.ID] = true
	}
	puzzleIDs := make(map[string]bool)
	for _, pz := range s.Puzzles {
		puzzleIDs[pz.ID] = true
	}

	for _, d := range s.Dialogs {
		for _, ch := range d.Choices {
			if ch.TargetDialog != "" && !dialogIDs[ch.TargetDialog] {
				fail("DANGLING_CHOICE", "dialog %q choice targets unknown dialog %q", d.ID, ch.TargetDialog)
			}
		}
	}

	objects := make([]Object, 0, len(s.Hotspots)+len(s.Images))
	objects = append(objects, s.Hotspots...)
	objects = append(objects, s.Images...)
	for _, obj := range objects {
		for _, ia := range obj.Interactions {
			if ia.Verb != "" && !verbIDs[ia.Verb] {
				fail("UNKNOWN_VERB", "object %q interaction references unknown verb %q", obj.ID, ia.Verb)
			}
			errs = append(errs, validateAction(s, obj.ID, ia.Action, sceneIDs, dialogIDs, cutsceneIDs, itemIDs)...)
		}
		if obj.PickupItem != "" && !itemIDs[obj.PickupItem] {
			fail("UNKNOWN_ITEM", "object %q yields unknown item %q", obj.ID, obj.PickupItem)
		}
	}

	for _, pz := range s.Puzzles {
		for _, cond := range pz.Conditions {
			switch cond.Type {
			case PuzzleCondHasItem:
				if !itemIDs[cond.Item] {
					fail("UNKNOWN_ITEM", "puzzle %q condition references unknown item %q", pz.ID, cond.Item)
				}
			case PuzzleCondPuzzleSolved:
				if !puzzleIDs[cond.Puzzle] {
					fail("UNKNOWN_PUZZLE", "puzzle %q condition references unknown puzzle %q", pz.ID, cond.Puzzle)
				}
			case PuzzleCondVariable:
				// Variables are free-form; nothing to check statically.
			default:
				fail("UNKNOWN_CONDITION", "puzzle %q has unknown condition type %q", pz.ID, cond.Type)
			}
		}
		errs = append(errs, validateResult(s, "puzzle "+pz.ID, pz.Result, itemIDs, cutsceneIDs)...)
	}

	for _, c := range s.Cutscenes {
		for i, a := range c.Actions {
			if a.Type == CutsceneChangeScene && a.Params.Scene != "" && !sceneIDs[a.Params.Scene] {
				fail("DANGLING_CUTSCENE_SCENE", "cutscene %q action %d targets unknown scene %q", c.ID, i, a.Params.Scene)
			}
		}
	}

	return errs
}

func validateAction(s *Scene, objID string, a Action, sceneIDs, dialogIDs, cutsceneIDs, itemIDs map[string]bool) []ValidationError {
	var errs []ValidationError

	fail := func(code, format string, args ...any) {
		errs = append(errs, ValidationError{
			Code:    code,
			Message: fmt.Sprintf("scene %q object %q: ", s.ID, objID) + fmt.Sprintf(format, args...),
		})
	}

	switch a.Kind {
	case ActionDialogRef:
		if !dialogIDs[a.Dialog] {
			fail("DANGLING_DIALOG", "action references unknown dialog %q", a.Dialog)
		}
	case ActionCutscene:
		if !cutsceneIDs[a.Cutscene] {
			fail("DANGLING_CUTSCENE", "action references unknown cutscene %q", a.Cutscene)
		}
	case ActionChangeScene:
		if !sceneIDs[a.Scene] {
			fail("DANGLING_SCENE", "action references unknown scene %q", a.Scene)
		}
	case ActionUseItem, ActionPickup:
		if a.Item != "" && !itemIDs[a.Item] {
			fail("UNKNOWN_ITEM", "action references unknown item %q", a.Item)
		}
	case ActionEffects:
		for i, ef := range a.Effects {
			switch ef.Kind {
			case EffectStartDialog:
				if !dialogIDs[ef.Dialog] {
					fail("DANGLING_DIALOG", "effect %d references unknown dialog %q", i, ef.Dialog)
				}
			case EffectStartCutscene:
				if !cutsceneIDs[ef.Cutscene] {
					fail("DANGLING_CUTSCENE", "effect %d references unknown cutscene %q", i, ef.Cutscene)
				}
			case EffectChangeScene:
				if !sceneIDs[ef.Scene] {
					fail("DANGLING_SCENE", "effect %d references unknown scene %q", i, ef.Scene)
				}
			case EffectAddItem, EffectRemoveItem:
				if !itemIDs[ef.Item] {
					fail("UNKNOWN_ITEM", "effect %d references unknown item %q", i, ef.Item)
				}
			}
		}
	}

	return errs
}

func validateResult(s *Scene, owner string, r Result, itemIDs, cutsceneIDs map[string]bool) []ValidationError {
	var errs []ValidationError

	fail := func(code, format string, args ...any) {
		errs = append(errs, ValidationError{
			Code:    code,
			Message: fmt.Sprintf("scene %q %s: ", s.ID, owner) + fmt.Sprintf(format, args...),
		})
	}

	if r.GiveItem != "" && !itemIDs[r.GiveItem] {
		fail("UNKNOWN_ITEM", "result gives unknown item %q", r.GiveItem)
	}
	if r.RemoveItem != "" && !itemIDs[r.RemoveItem] {
		fail("UNKNOWN_ITEM", "result removes unknown item %q", r.RemoveItem)
	}
	if r.Cutscene != "" && !cutsceneIDs[r.Cutscene] {
		fail("DANGLING_CUTSCENE", "result triggers unknown cutscene %q", r.Cutscene)
	}

	return errs
}
