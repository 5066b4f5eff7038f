package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pointvale/stagehand/internal/geom"
	"github.com/pointvale/stagehand/internal/runtime"
	"github.com/pointvale/stagehand/internal/scene"
)

// colorStyles maps Color to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault:      lipgloss.NewStyle(),
	ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.Get(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// viewport maps between scene units and screen cells. The scene viewport
// occupies the screen between the status bar and the bottom panels.
type viewport struct {
	x, y   int
	w, h   int
	sceneW float64
	sceneH float64
}

// sceneViewport computes the viewport for the given screen and scene.
func sceneViewport(s *Screen, scn *scene.Scene) viewport {
	return viewport{
		x:      0,
		y:      1,
		w:      s.Width(),
		h:      s.Height() - bottomRows - 1,
		sceneW: scn.Width,
		sceneH: scn.Height,
	}
}

// bottomRows is the number of screen rows reserved below the viewport for
// the message line, verb bar and inventory bar.
const bottomRows = 3

// toCell converts scene coordinates to a screen cell.
func (v viewport) toCell(sx, sy float64) (int, int) {
	if v.sceneW <= 0 || v.sceneH <= 0 {
		return v.x, v.y
	}
	cx := v.x + int(sx/v.sceneW*float64(v.w))
	cy := v.y + int(sy/v.sceneH*float64(v.h))
	return cx, cy
}

// toScene converts a screen cell to scene coordinates, or false when the
// cell lies outside the viewport.
func (v viewport) toScene(cx, cy int) (float64, float64, bool) {
	if cx < v.x || cx >= v.x+v.w || cy < v.y || cy >= v.y+v.h {
		return 0, 0, false
	}
	// Cell centers, so a click on a one-cell object hits its interior.
	sx := (float64(cx-v.x) + 0.5) / float64(v.w) * v.sceneW
	sy := (float64(cy-v.y) + 0.5) / float64(v.h) * v.sceneH
	return sx, sy, true
}

// drawScene renders the runtime snapshot onto the screen buffer.
func drawScene(s *Screen, verbs []scene.Verb, scn *scene.Scene, snap runtime.Snapshot) {
	s.Clear()

	v := sceneViewport(s, scn)
	drawStatusBar(s, snap)
	drawWalkboxes(s, v, scn)
	drawExits(s, v, scn)
	drawObjects(s, v, scn, snap)
	drawPlayer(s, v, snap)
	drawFade(s, v, snap.FadeLevel)

	if snap.DialogActive {
		drawDialog(s, v, snap.Dialog)
	}

	drawMessage(s, snap)
	drawVerbBar(s, verbs, snap.SelectedVerb)
	drawInventory(s, snap)
}

func drawStatusBar(s *Screen, snap runtime.Snapshot) {
	s.DrawText(0, 0, " "+snap.SceneName, ColorBrightWhite)
	if snap.CutsceneActive {
		hint := "cutscene"
		if snap.CutsceneSkippable {
			hint = "cutscene (esc: skip)"
		}
		s.DrawText(s.Width()-len(hint)-1, 0, hint, ColorYellow)
	} else if snap.HoveredObject != "" {
		s.DrawText(s.Width()-len(snap.HoveredObject)-1, 0, snap.HoveredObject, ColorBrightYellow)
	}
}

func drawWalkboxes(s *Screen, v viewport, scn *scene.Scene) {
	polys := scn.WalkboxPolygons()
	if len(polys) == 0 {
		return
	}
	for cy := v.y; cy < v.y+v.h; cy++ {
		for cx := v.x; cx < v.x+v.w; cx++ {
			sx, sy, ok := v.toScene(cx, cy)
			if !ok {
				continue
			}
			if geom.InAnyPolygon(sx, sy, polys) {
				s.Set(cx, cy, '·', ColorGray)
			}
		}
	}
}

func drawExits(s *Screen, v viewport, scn *scene.Scene) {
	for _, e := range scn.Exits {
		x0, y0 := v.toCell(e.X, e.Y)
		x1, y1 := v.toCell(e.X+e.W, e.Y+e.H)
		s.FillRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1), '░', ColorCyan)
	}
}

func drawObjects(s *Screen, v viewport, scn *scene.Scene, snap runtime.Snapshot) {
	draw := func(o scene.Object, fill rune, c Color) {
		if o.ID == snap.HoveredObject || o.Name == snap.HoveredObject {
			c = ColorBrightYellow
		}
		x0, y0 := v.toCell(o.X, o.Y)
		x1, y1 := v.toCell(o.X+o.W, o.Y+o.H)
		s.FillRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1), fill, c)
		if label := objectLabel(o); label != 0 {
			s.Set(x0, y0, label, c)
		}
	}
	for _, o := range scn.Images {
		draw(o, '▒', ColorBlue)
	}
	for _, o := range scn.Hotspots {
		draw(o, '▒', ColorGreen)
	}
}

// objectLabel returns the first rune of the object's display name.
func objectLabel(o scene.Object) rune {
	name := o.Name
	if name == "" {
		name = o.ID
	}
	for _, r := range name {
		return r
	}
	return 0
}

func drawPlayer(s *Screen, v viewport, snap runtime.Snapshot) {
	cx, cy := v.toCell(snap.X, snap.Y)
	s.Set(cx, cy, '@', ColorBrightWhite)
	if snap.Walking {
		tx, ty := v.toCell(snap.TargetX, snap.TargetY)
		s.Set(tx, ty, '+', ColorGray)
	}
}

// drawFade overlays the viewport with a deterministic dither proportional to
// the fade level, so fades read as a darkening screen in plain cells.
func drawFade(s *Screen, v viewport, level float64) {
	if level <= 0 {
		return
	}
	threshold := int(level * 100)
	for cy := v.y; cy < v.y+v.h; cy++ {
		for cx := v.x; cx < v.x+v.w; cx++ {
			if (cx*7+cy*13)%100 < threshold {
				s.Set(cx, cy, '█', ColorDefault)
			}
		}
	}
}

func drawDialog(s *Screen, v viewport, d runtime.DialogView) {
	boxW := v.w - 4
	boxH := 4 + len(d.Choices)
	boxX := v.x + 2
	boxY := v.y + v.h - boxH - 1

	s.FillRect(boxX, boxY, boxW, boxH, ' ', ColorDefault)
	s.DrawBox(boxX, boxY, boxW, boxH, ColorWhite)

	if d.Actor != "" {
		s.DrawText(boxX+2, boxY, " "+d.Actor+" ", ColorBrightYellow)
	}
	s.DrawText(boxX+2, boxY+1, d.Line, ColorBrightWhite)

	for i, choice := range d.Choices {
		s.DrawText(boxX+2, boxY+2+i, fmt.Sprintf("%d. %s", i+1, choice), ColorCyan)
	}

	hint := "space: next"
	if len(d.Choices) > 0 {
		hint = "1-9: choose"
	}
	s.DrawText(boxX+boxW-len(hint)-2, boxY+boxH-1, " "+hint+" ", ColorGray)
}

func drawMessage(s *Screen, snap runtime.Snapshot) {
	if snap.Message == "" {
		return
	}
	s.DrawTextCentered(s.Height()-3, snap.Message, ColorBrightYellow)
}

func drawVerbBar(s *Screen, verbs []scene.Verb, selected string) {
	var sb strings.Builder
	for i, v := range verbs {
		if i > 0 {
			sb.WriteString("  ")
		}
		marker := " "
		if v.ID == selected {
			marker = "*"
		}
		fmt.Fprintf(&sb, "%s%d %s", marker, i+1, v.Name)
	}
	s.DrawText(1, s.Height()-2, sb.String(), ColorWhite)
}

func drawInventory(s *Screen, snap runtime.Snapshot) {
	var sb strings.Builder
	sb.WriteString("inv:")
	for _, item := range snap.Inventory {
		if item == snap.SelectedItem {
			sb.WriteString(" [" + item + "]")
		} else {
			sb.WriteString(" " + item)
		}
	}
	s.DrawText(1, s.Height()-1, sb.String(), ColorCyan)
}
