package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pointvale/stagehand/internal/scene"
)

// MenuItem represents a selectable scene in the picker.
type MenuItem struct {
	SceneID string
	Title   string
}

// MenuModel is the Bubble Tea model for the scene picker shown before play
// when a starting scene is not fixed.
type MenuModel struct {
	project  *scene.Project
	items    []MenuItem
	cursor   int
	width    int
	height   int
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a scene picker for the project. The cursor starts on
// the project's start scene.
func NewMenuModel(p *scene.Project) MenuModel {
	items := make([]MenuItem, 0, len(p.Scenes))
	cursor := 0
	for i, s := range p.Scenes {
		title := s.Name
		if title == "" {
			title = s.ID
		}
		items = append(items, MenuItem{SceneID: s.ID, Title: title})
		if s.ID == p.StartScene {
			cursor = i
		}
	}

	return MenuModel{
		project: p,
		items:   items,
		cursor:  cursor,
		width:   80,
		height:  24,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := m.project.Name
	if title == "" {
		title = "stagehand"
	}
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a scene", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		marker := ""
		if item.SceneID == m.project.StartScene {
			marker = " (start)"
		}

		line := fmt.Sprintf("%s%s%s", cursor, item.Title, marker)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the scene picker and returns the chosen scene id, or empty
// when the user quit.
func RunMenu(p *scene.Project) (string, error) {
	model := NewMenuModel(p)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return "", nil
	}
	return m.Selected().SceneID, nil
}
