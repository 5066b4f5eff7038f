package runtime

import (
	"math"

	"github.com/pointvale/stagehand/internal/geom"
)

// WalkTo starts walking the player toward the given point. Targets outside
// every walkbox are projected onto the nearest walkable edge first, so any
// click produces a reachable destination. A click while already walking
// retargets the current walk.
func (r *Runtime) WalkTo(x, y float64) {
	target := geom.ClosestWalkablePoint(geom.Point{X: x, Y: y}, r.walkboxes)
	r.targetX, r.targetY = target.X, target.Y
	r.walking = true
}

// walkToWithCallback is WalkTo plus an arrival continuation. Used by the
// cutscene sequencer's move-actor action; the callback fires on normal
// arrival only, never when an exit interrupts the walk.
func (r *Runtime) walkToWithCallback(x, y float64, done func()) {
	r.WalkTo(x, y)
	r.walkCallback = done
}

// tickMovement advances the walk by one fixed step and runs the exit
// proximity check after the positional update.
func (r *Runtime) tickMovement() {
	if !r.walking {
		return
	}

	dx := r.targetX - r.x
	dy := r.targetY - r.y
	dist := math.Hypot(dx, dy)

	if dist <= r.tuning.StepPerTick {
		r.x, r.y = r.targetX, r.targetY
		r.walking = false
	} else {
		r.x += dx / dist * r.tuning.StepPerTick
		r.y += dy / dist * r.tuning.StepPerTick
	}

	r.direction = dominantDirection(dx, dy)
	if r.walking {
		r.animState = "walk-" + r.direction
	} else {
		r.animState = "idle"
	}

	// Exit proximity is tested after every positional update, mid-walk
	// included. The first matching exit wins and ends this tick's
	// processing; the arrival callback is not fired.
	if r.checkExits() {
		r.walking = false
		r.walkCallback = nil
		return
	}

	if !r.walking && r.walkCallback != nil {
		cb := r.walkCallback
		r.walkCallback = nil
		cb()
	}
}

// checkExits triggers a scene transition when the player is within an
// exit's radius. The radius check is max(w,h)/2 plus a margin around the
// exit center, not strict containment.
func (r *Runtime) checkExits() bool {
	if r.trans.active() {
		return false
	}
	for _, exit := range r.scn.Exits {
		if exit.TargetScene == "" {
			continue
		}
		radius := math.Max(exit.W, exit.H)/2 + r.tuning.ExitMargin
		center := exit.Rect().Center()
		if geom.Dist(geom.Point{X: r.x, Y: r.y}, center) <= radius {
			r.changeScene(exit.TargetScene)
			return true
		}
	}
	return false
}

// dominantDirection derives a facing from a movement vector. The horizontal
// axis wins ties.
func dominantDirection(dx, dy float64) string {
	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return "east"
		}
		return "west"
	}
	if dy >= 0 {
		return "south"
	}
	return "north"
}
