package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pointvale/stagehand/internal/runtime"
	"github.com/pointvale/stagehand/internal/scene"
)

// Model is the Bubble Tea model for playing a project.
type Model struct {
	project  *scene.Project
	rt       *runtime.Runtime
	screen   *Screen
	interval time.Duration
	last     time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model around a running runtime.
func NewModel(project *scene.Project, rt *runtime.Runtime, interval time.Duration) Model {
	return Model{
		project:  project,
		rt:       rt,
		screen:   NewScreen(80, 24),
		interval: interval,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.rt.State()

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Cancel):
		if snap.CutsceneActive {
			m.rt.SkipCutscene()
		} else {
			m.rt.SelectVerb("")
		}

	case key.Matches(msg, keys.Advance):
		m.rt.AdvanceDialog()

	case key.Matches(msg, keys.Inventory):
		m.cycleItem(snap)

	default:
		s := msg.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '1')
			if snap.DialogActive && len(snap.Dialog.Choices) > 0 {
				m.rt.ChooseDialog(idx)
			} else if idx < len(m.project.Global.Verbs) {
				m.rt.SelectVerb(m.project.Global.Verbs[idx].ID)
			}
		}
	}

	return m, nil
}

// cycleItem steps the item selection through the inventory and back to none.
func (m Model) cycleItem(snap runtime.Snapshot) {
	if len(snap.Inventory) == 0 {
		return
	}
	if snap.SelectedItem == "" {
		m.rt.SelectItem(snap.Inventory[0])
		return
	}
	for i, item := range snap.Inventory {
		if item == snap.SelectedItem {
			if i+1 < len(snap.Inventory) {
				m.rt.SelectItem(snap.Inventory[i+1])
			} else {
				m.rt.SelectItem(item) // toggles the selection off
			}
			return
		}
	}
	m.rt.SelectItem(snap.Inventory[0])
}

// handleMouse maps terminal cells to scene coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	scn := m.rt.CurrentScene()
	v := sceneViewport(m.screen, scn)
	sx, sy, ok := v.toScene(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.rt.HandleClick(sx, sy)
		}
	case tea.MouseActionMotion:
		m.rt.HoverAt(sx, sy)
	}

	return m, nil
}

// handleTick advances the simulation by the elapsed wall time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.interval
	if !m.last.IsZero() {
		if elapsed := now.Sub(m.last); elapsed > 0 {
			dt = elapsed
		}
	}
	m.last = now

	m.rt.Tick(dt)
	return m, tickCmd(m.interval)
}

// View renders the current runtime snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawScene(m.screen, m.project.Global.Verbs, m.rt.CurrentScene(), m.rt.State())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given runtime.
func Run(project *scene.Project, rt *runtime.Runtime, interval time.Duration) error {
	p := tea.NewProgram(
		NewModel(project, rt, interval),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
