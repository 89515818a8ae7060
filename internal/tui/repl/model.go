// ============================================================================
// mBASIC - BASIC Front End
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive BASIC line parser
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mbasic/foundation/basic"
	mdwprogram "github.com/msto63/mbasic/foundation/basic/program"
	mdwlog "github.com/msto63/mbasic/foundation/core/log"
	"github.com/msto63/mbasic/pkg/core/version"
)

// entryKind classifies history rows for styling
type entryKind int

const (
	entryInput entryKind = iota
	entryOutput
	entryError
	entryInfo
)

// entry is one history row, kept in plain and styled form
type entry struct {
	kind   entryKind
	plain  string
	styled string
}

// Config holds REPL configuration
type Config struct {
	Engine     *basic.Engine
	Program    *mdwprogram.Program // preloaded lines, optional
	Logger     *mdwlog.Logger
	MaxHistory int
	ShowTokens bool
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MaxHistory: 500,
		ShowTokens: true,
	}
}

// Model is the main Bubbletea model for the REPL
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Front end
	engine  *basic.Engine
	program *mdwprogram.Program
	logger  *mdwlog.Logger

	// History
	history    []entry
	maxHistory int
	showTokens bool

	// Input recall
	recall    []string
	recallPos int
}

// New creates a new REPL model
func New(cfg Config) (Model, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.NewDiscard()
	}

	engine := cfg.Engine
	if engine == nil {
		var err error
		engine, err = basic.New(basic.Options{Logger: logger})
		if err != nil {
			return Model{}, err
		}
	}

	prog := cfg.Program
	if prog == nil {
		prog = mdwprogram.New()
	}

	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = DefaultConfig().MaxHistory
	}

	ti := textinput.New()
	ti.Placeholder = `10 PRINT "HALLO"`
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Width = 76
	ti.Focus()

	m := Model{
		input:      ti,
		viewport:   viewport.New(80, 20),
		engine:     engine,
		program:    prog,
		logger:     logger.WithField("component", "repl"),
		maxHistory: maxHistory,
		showTokens: cfg.ShowTokens,
	}
	m.addInfo(fmt.Sprintf("mBASIC %s - HELP zeigt die Befehle, ESC beendet", version.Platform))
	if prog.Len() > 0 {
		m.addInfo(fmt.Sprintf("%d Zeilen geladen", prog.Len()))
	}
	m.updateViewportContent()
	return m, nil
}

// Program returns the lines entered so far
func (m Model) Program() *mdwprogram.Program {
	return m.program
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			return m.submit(line)

		case tea.KeyUp:
			m.recallStep(-1)
			return m, nil

		case tea.KeyDown:
			m.recallStep(1)
			return m, nil

		case tea.KeyPgUp:
			m.viewport.ViewUp()
			return m, nil

		case tea.KeyPgDown:
			m.viewport.ViewDown()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // Title panel
		footerHeight := 5 // Input panel + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight - 2
		if viewportHeight < 3 {
			viewportHeight = 3
		}

		m.viewport.Width = msg.Width - 4
		m.viewport.Height = viewportHeight
		m.input.Width = msg.Width - 8
		m.ready = true
		m.updateViewportContent()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the model
func (m Model) View() string {
	if !m.ready {
		return "Lade mBASIC..."
	}

	var b strings.Builder

	b.WriteString(TitlePanelStyle.Width(m.width - 4).Render(
		LogoStyle.Render(Logo) + "  " + HelpDescStyle.Render("interaktiver Zeilenparser")))
	b.WriteString("\n")

	b.WriteString(HistoryPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(InputPanelStyle.Width(m.width - 4).Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderStatusBar() string {
	tokens := "Tokens aus"
	if m.showTokens {
		tokens = "Tokens an"
	}
	left := fmt.Sprintf("Zeilen: %d", m.program.Len())
	right := "v" + version.Platform

	space := m.width - lipgloss.Width(left) - lipgloss.Width(tokens) - lipgloss.Width(right) - 4
	if space < 2 {
		space = 2
	}
	content := left + strings.Repeat(" ", space/2) + tokens + strings.Repeat(" ", space-space/2) + right
	return StatusBarStyle.Width(m.width - 2).Render(content)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "Parsen"),
		RenderKeyHint("Up/Down", "Verlauf"),
		RenderKeyHint("PgUp/PgDn", "Scrollen"),
		RenderKeyHint("Esc", "Beenden"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// add appends a history row and drops the oldest rows beyond maxHistory
func (m *Model) add(kind entryKind, plain, styled string) {
	m.history = append(m.history, entry{kind: kind, plain: plain, styled: styled})
	if over := len(m.history) - m.maxHistory; over > 0 {
		m.history = append([]entry(nil), m.history[over:]...)
	}
}

func (m *Model) addInfo(text string) {
	m.add(entryInfo, text, InfoStyle.Render(text))
}

func (m *Model) addOutput(plain, styled string) {
	m.add(entryOutput, strings.TrimRight(plain, "\n"), strings.TrimRight(styled, "\n"))
}

func (m *Model) addError(plain, styled string) {
	m.add(entryError, strings.TrimRight(plain, "\n"), strings.TrimRight(styled, "\n"))
}

func (m *Model) updateViewportContent() {
	rows := make([]string, len(m.history))
	for i, e := range m.history {
		rows[i] = e.styled
	}
	m.viewport.SetContent(strings.Join(rows, "\n"))
	m.viewport.GotoBottom()
}

// recallStep moves through previously submitted input
func (m *Model) recallStep(delta int) {
	if len(m.recall) == 0 {
		return
	}
	m.recallPos += delta
	if m.recallPos < 0 {
		m.recallPos = 0
	}
	if m.recallPos >= len(m.recall) {
		m.recallPos = len(m.recall)
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.recall[m.recallPos])
	m.input.CursorEnd()
}

// Run starts the REPL
func Run(cfg Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
