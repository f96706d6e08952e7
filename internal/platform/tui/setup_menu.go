package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colortap/internal/config"
	"github.com/vovakirdan/colortap/internal/core"
)

// difficulties in the order the setup screen cycles through them.
var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// extraLevels are listed past the last unlock so players can start deeper.
const extraLevels = 2

// Setup holds the user's choice from the setup screen.
type Setup struct {
	Difficulty config.DifficultyPreset
	Level      int // 1-based
}

// SetupModel lets users choose difficulty and starting level.
// Left/right cycles difficulty, up/down picks the level.
type SetupModel struct {
	diffCursor  int
	levelCursor int
	width       int
	height      int
	keyMapper   *KeyMapper
	selection   Setup
	choosing    bool
	quitting    bool
	back        bool
}

// NewSetupModel creates a setup model with normal difficulty at level 1.
func NewSetupModel(width, height int) SetupModel {
	return SetupModel{
		diffCursor: 1,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionLeft:
		m.diffCursor = (m.diffCursor + len(difficulties) - 1) % len(difficulties)
		m.levelCursor = min(m.levelCursor, m.levelCount()-1)
	case MenuActionRight:
		m.diffCursor = (m.diffCursor + 1) % len(difficulties)
		m.levelCursor = min(m.levelCursor, m.levelCount()-1)
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < m.levelCount()-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = Setup{
			Difficulty: difficulties[m.diffCursor],
			Level:      m.levelCursor + 1,
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// rules returns the default rules under the highlighted difficulty.
func (m SetupModel) rules() config.ColorTapConfig {
	cfg := config.DefaultColorTapConfig()
	config.ApplyColorTapPreset(&cfg, difficulties[m.diffCursor])
	return cfg
}

func (m SetupModel) levelCount() int {
	return m.rules().LastUnlock() + extraLevels
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("C O L O R   T A P", m.width))
	b.WriteString("\n\n")

	diff := strings.ToUpper(string(difficulties[m.diffCursor]))
	b.WriteString(centerText(fmt.Sprintf("<  Difficulty: %-6s  >", diff), m.width))
	b.WriteString("\n\n")

	rules := m.rules()
	for i := range m.levelCount() {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		mechanics := strings.Join(rules.Mechanics(i+1), ", ")
		if mechanics == "" {
			mechanics = "plain rounds"
		}

		line := fmt.Sprintf("%sLevel %d  %-40s", cursor, i+1, mechanics)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Left/Right: Difficulty  |  Enter: Start  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *Setup {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunSetup runs the setup screen and returns the selection.
// A nil selection means the user backed out or quit.
func RunSetup(cfg core.RuntimeConfig) (*Setup, error) {
	p := tea.NewProgram(
		NewSetupModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
