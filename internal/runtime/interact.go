package runtime

import "github.com/pointvale/stagehand/internal/scene"

// Target is the clicked thing handed to the interaction resolver: either an
// exit or a hotspot/image object.
type Target struct {
	Exit   *scene.Exit
	Object *scene.Object
}

// ID returns the target's id.
func (t Target) ID() string {
	if t.Exit != nil {
		return t.Exit.ID
	}
	if t.Object != nil {
		return t.Object.ID
	}
	return ""
}

// Name returns the target's display name, falling back to the id.
func (t Target) Name() string {
	name := ""
	switch {
	case t.Exit != nil:
		name = t.Exit.Name
	case t.Object != nil:
		name = t.Object.Name
	}
	if name == "" {
		name = t.ID()
	}
	return name
}

// HandleClick routes a click in scene coordinates. An active dialog
// consumes every click before anything else is considered; cutscenes and
// transitions swallow clicks entirely. Otherwise the click either resolves
// against a hit object or becomes a walk.
func (r *Runtime) HandleClick(x, y float64) {
	if r.dialog != nil {
		r.AdvanceDialog()
		return
	}
	if r.cs != nil || r.trans.active() {
		return
	}

	if target, ok := r.hitTest(x, y); ok {
		r.Interact(r.selectedVerb, target)
		return
	}
	r.WalkTo(x, y)
}

// HoverAt records which object the pointer is over, for the renderer's
// hover label. Empty space clears it.
func (r *Runtime) HoverAt(x, y float64) {
	if target, ok := r.hitTest(x, y); ok {
		r.hovered = target.Name()
		return
	}
	r.hovered = ""
}

// hitTest finds the object at a point. Exits win over hotspots, hotspots
// over images, matching the authored layering.
func (r *Runtime) hitTest(x, y float64) (Target, bool) {
	for i := range r.scn.Exits {
		if r.scn.Exits[i].Rect().Contains(x, y) {
			return Target{Exit: &r.scn.Exits[i]}, true
		}
	}
	for i := range r.scn.Hotspots {
		if r.scn.Hotspots[i].Rect().Contains(x, y) {
			return Target{Object: &r.scn.Hotspots[i]}, true
		}
	}
	for i := range r.scn.Images {
		if r.scn.Images[i].Rect().Contains(x, y) {
			return Target{Object: &r.scn.Images[i]}, true
		}
	}
	return Target{}, false
}

// Interact resolves a verb applied to a clicked target. The resolution
// order is the core contract; the first matching branch wins and every
// branch ends in a state mutation or a user-visible message, never an
// error.
func (r *Runtime) Interact(verbID string, target Target) {
	r.emit(EventInteraction, verbID+" "+target.ID())

	// 1. A selected inventory item overrides the verb entirely.
	if r.selectedItem != "" {
		r.useItemWith(target)
		return
	}

	// 2. Exits ignore the verb; walking close enough performs the actual
	// transition via the movement controller's proximity check.
	if target.Exit != nil {
		center := target.Exit.Rect().Center()
		r.WalkTo(center.X, center.Y)
		return
	}

	obj := target.Object
	if obj == nil {
		r.showMessage(defaultText(scene.CategoryUnknown))
		return
	}
	category := r.verbCategory(verbID)

	// 3. Custom interactions declared on the object, gated by an optional
	// variable condition.
	for i := range obj.Interactions {
		ia := &obj.Interactions[i]
		if ia.Verb != verbID {
			continue
		}
		if !r.conditionMet(ia.Condition) {
			r.showMessage("Nothing happens.")
			return
		}
		r.performInteractionAction(obj, ia.Action)
		return
	}

	// 4. Look/examine shows authored description text.
	if category == scene.CategoryLook {
		if obj.ExamineDialog != "" {
			r.startEphemeralDialog(r.playerActorID, obj.ExamineDialog)
			return
		}
		if obj.Description != "" {
			r.showMessage(obj.Description)
			return
		}
	}

	// 5. Manipulation verbs attempt a puzzle whose trigger targets this
	// object.
	if category == scene.CategoryUse || category == scene.CategoryOpen || category == scene.CategoryPush {
		for i := range r.scn.Puzzles {
			p := &r.scn.Puzzles[i]
			if p.Trigger == obj.ID || p.Trigger == obj.Name {
				r.attemptPuzzle(p)
				return
			}
		}
	}

	// 6. A not-yet-played cutscene registered against this object.
	if r.triggerObjectCutscene(obj.ID, obj.Name) {
		return
	}

	// 7. Built-in verb behavior: pickable objects can actually be picked
	// up; everything else gets the category's stock line.
	if category == scene.CategoryPickUp && obj.Pickable && obj.PickupItem != "" {
		r.pickUp(obj)
		return
	}
	if text := defaultText(category); text != "" {
		r.showMessage(text)
		return
	}

	// 8. Nothing matched.
	r.showMessage("I can't do that.")
}

// useItemWith attempts "use selected item with target". The selection is
// cleared either way; the verb plays no part.
func (r *Runtime) useItemWith(target Target) {
	itemID := r.selectedItem
	r.selectedItem = ""

	item := r.project.Global.ItemByID(itemID)
	if item == nil {
		r.showMessage("That doesn't work.")
		return
	}
	for _, use := range item.UseWith {
		if use.Target == target.ID() || use.Target == target.Name() {
			r.applyResult(use.Result, true)
			if use.Result.Message == "" {
				r.showMessage("That worked.")
			}
			return
		}
	}
	r.showMessage("That doesn't work.")
}

// pickUp moves a pickable object's item into the inventory.
func (r *Runtime) pickUp(obj *scene.Object) {
	item := r.project.Global.ItemByID(obj.PickupItem)
	if item == nil {
		r.logger.Debug("pickup item not found", "object", obj.ID, "item", obj.PickupItem)
		r.showMessage(defaultText(scene.CategoryPickUp))
		return
	}
	r.addItem(item.ID)
	if item.PickupText != "" {
		r.showMessage(item.PickupText)
	} else {
		r.showMessage("Taken.")
	}
}

// performInteractionAction executes an interaction's action variant.
func (r *Runtime) performInteractionAction(obj *scene.Object, a scene.Action) {
	switch a.Kind {
	case scene.ActionDialog:
		r.startEphemeralDialog(r.playerActorID, a.Text)
	case scene.ActionDialogRef:
		r.startDialogByID(a.Dialog)
	case scene.ActionCutscene:
		r.startCutsceneByID(a.Cutscene)
	case scene.ActionPickup:
		if a.Item != "" {
			r.addItem(a.Item)
			r.showMessage("Taken.")
		} else {
			r.pickUp(obj)
		}
	case scene.ActionUseItem:
		if r.hasItem(a.Item) {
			r.selectedItem = a.Item
		} else {
			r.showMessage("I don't have that.")
		}
	case scene.ActionChangeScene:
		r.changeScene(a.Scene)
	case scene.ActionSetVariable:
		r.setVariable(a.Variable, a.Value)
		r.showMessage(a.Text)
	case scene.ActionEffects:
		r.runEffects(a.Effects)
	default:
		r.logger.Debug("unknown interaction action", "object", obj.ID, "kind", a.Kind)
		r.showMessage("Nothing happens.")
	}
}

// runEffects applies a declarative effect list in order. Unknown kinds are
// logged and skipped; an effect list never aborts partway except by
// changing scene or starting a dialog, which later effects then run under.
func (r *Runtime) runEffects(effects []scene.Effect) {
	for _, ef := range effects {
		switch ef.Kind {
		case scene.EffectShowMessage:
			r.showMessage(ef.Text)
		case scene.EffectSetVariable:
			r.setVariable(ef.Variable, ef.Value)
		case scene.EffectAddItem:
			r.addItem(ef.Item)
		case scene.EffectRemoveItem:
			r.removeItem(ef.Item)
		case scene.EffectStartDialog:
			r.startDialogByID(ef.Dialog)
		case scene.EffectStartCutscene:
			r.startCutsceneByID(ef.Cutscene)
		case scene.EffectSolvePuzzle:
			r.solvePuzzleByID(ef.Puzzle)
		case scene.EffectChangeScene:
			r.changeScene(ef.Scene)
		case scene.EffectPlaySFX:
			r.playSFX(ef.SFX)
		default:
			r.logger.Debug("unknown effect", "kind", ef.Kind)
		}
	}
}

// verbCategory returns the load-time resolved category of a verb id.
func (r *Runtime) verbCategory(verbID string) string {
	v := r.project.Global.VerbByID(verbID)
	if v == nil {
		return scene.CategoryUnknown
	}
	return v.Category
}

// defaultText is the stock response per verb category when nothing more
// specific matched.
func defaultText(category string) string {
	switch category {
	case scene.CategoryPickUp:
		return "I can't pick that up."
	case scene.CategoryTalk:
		return "It doesn't seem very talkative."
	case scene.CategoryUse:
		return "I can't use that."
	case scene.CategoryOpen:
		return "It doesn't open."
	case scene.CategoryClose:
		return "There's nothing to close."
	case scene.CategoryPush:
		return "It won't budge."
	case scene.CategoryGive:
		return "I'd rather keep it."
	case scene.CategoryLook:
		return "Nothing special about it."
	default:
		return ""
	}
}
