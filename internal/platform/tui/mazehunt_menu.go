package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// maxStartLevel bounds the start-level picker. Deeper levels are reached
// by playing.
const maxStartLevel = 10

// difficultyOptions are shown in menu order.
var difficultyOptions = []struct {
	name  string
	label string
}{
	{"easy", "Easy (start at level 1)"},
	{"normal", "Normal (start at level 2)"},
	{"hard", "Hard (start at level 4)"},
	{"fixed", "Fixed (no level progression)"},
}

// MazehuntSelection holds the user's choices from the pre-game menu.
type MazehuntSelection struct {
	Difficulty string
	Level      int // 0 = use the preset's start level
}

// MazehuntMenuModel lets users pick a difficulty preset and an optional
// starting level before a run.
type MazehuntMenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     MazehuntSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewMazehuntMenuModel creates a new pre-game menu model.
func NewMazehuntMenuModel(width, height int) MazehuntMenuModel {
	return MazehuntMenuModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m MazehuntMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MazehuntMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m MazehuntMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleDifficultyKey(action)
}

func (m MazehuntMenuModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	// The last row opens the start-level picker
	lastRow := len(difficultyOptions)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < lastRow {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor < lastRow {
			m.choosing = false
			m.selection = MazehuntSelection{Difficulty: difficultyOptions[m.cursor].name}
			return m, tea.Quit
		}
		m.inLevelSelect = true
		m.levelCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MazehuntMenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < maxStartLevel-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = MazehuntSelection{
			Difficulty: "normal",
			Level:      m.levelCursor + 1,
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the pre-game menu.
func (m MazehuntMenuModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("M A Z E H U N T", m.width))
	b.WriteString("\n\n")

	if m.inLevelSelect {
		b.WriteString(centerText("Start at level", m.width))
		b.WriteString("\n\n")
		for i := 0; i < maxStartLevel; i++ {
			cursor := "  "
			if i == m.levelCursor {
				cursor = "> "
			}
			b.WriteString(centerText(fmt.Sprintf("%sLevel %d", cursor, i+1), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText("Enter: Start  |  Esc: Back", m.width))
		return b.String()
	}

	b.WriteString(centerText("Difficulty", m.width))
	b.WriteString("\n\n")
	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt.label, m.width))
		b.WriteString("\n")
	}

	cursor := "  "
	if m.cursor == len(difficultyOptions) {
		cursor = "> "
	}
	b.WriteString(centerText(cursor+"Select start level...", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: Start  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selection returns the user's choices.
func (m MazehuntMenuModel) Selection() MazehuntSelection {
	return m.selection
}

// IsQuitting returns true if user requested to quit.
func (m MazehuntMenuModel) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack returns true if user wants the variant menu again.
func (m MazehuntMenuModel) IsGoingBack() bool {
	return m.back
}

// HasSelection returns true if the user committed a selection.
func (m MazehuntMenuModel) HasSelection() bool {
	return !m.choosing
}

// RunMazehuntMenu runs the pre-game menu and returns the selection.
// The second return value is false when the user backed out or quit.
func RunMazehuntMenu(width, height int) (MazehuntSelection, bool, error) {
	model := NewMazehuntMenuModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MazehuntSelection{}, false, err
	}

	m, ok := finalModel.(MazehuntMenuModel)
	if !ok || !m.HasSelection() {
		return MazehuntSelection{}, false, nil
	}

	return m.Selection(), true, nil
}
