// Package tui renders the board and drives the rule engine from
// keyboard commands. It consumes engine outputs only; all legality
// decisions stay in the klondike package.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/klondike/klondike"
)

// Model is the Bubble Tea model for an interactive game.
type Model struct {
	controller *Controller
	logger     *log.Logger

	commandInput textinput.Model
	message      string
	messageStyle lipgloss.Style
	quitting     bool

	width  int
	height int
}

// NewModel creates a TUI over an already-dealt engine.
func NewModel(engine *klondike.Engine, state *klondike.GameState, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "d=draw  m <src> <dst> [n]=move  f <col>=flip  h=hint  a=auto  u=undo  q=quit"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		controller:   &Controller{Engine: engine, State: state},
		logger:       logger.WithPrefix("tui"),
		commandInput: ti,
		messageStyle: InfoStyle,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := m.commandInput.Value()
			m.commandInput.SetValue("")
			if strings.TrimSpace(line) == "q" || strings.TrimSpace(line) == "quit" {
				m.quitting = true
				return m, tea.Quit
			}
			m.execute(line)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m *Model) execute(line string) {
	out, err := m.controller.Do(line)
	if err != nil {
		m.message = err.Error()
		m.messageStyle = ErrorStyle
		m.logger.Debug("command failed", "line", line, "error", err)
		return
	}
	m.message = out
	m.messageStyle = InfoStyle
	m.logger.Debug("command ok", "line", line, "result", out)
}

// View renders the board, counters, message and input line
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	e := m.controller.Engine
	info := m.controller.State.Info(e.FoundationCards(), e.History().CanUndo())

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" klondike "))
	b.WriteString("\n\n")
	b.WriteString(RenderBoard(e))
	b.WriteString("\n")
	b.WriteString(RenderInfo(info))
	b.WriteString("\n")
	if e.IsComplete() {
		b.WriteString(HintStyle.Render("game complete!"))
		b.WriteString("\n")
	} else if e.IsBlocked() {
		b.WriteString(ErrorStyle.Render("no moves remain: the game is blocked"))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(m.messageStyle.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.commandInput.View())
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive program and blocks until the player quits.
func Run(engine *klondike.Engine, state *klondike.GameState, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(engine, state, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
