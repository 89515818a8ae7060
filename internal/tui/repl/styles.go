// ============================================================================
// mBASIC - BASIC Front End
// ============================================================================
//
// Package:     repl
// Description: Styles for the interactive line parser
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package repl

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mbasic/internal/render"
)

// Background and text colors on top of the shared palette
var (
	ColorBgPanel   = lipgloss.Color("#1E293B") // Slate 800
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

// Title panel style
var (
	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(render.ColorPrimary).
			Padding(0, 2)

	LogoStyle = lipgloss.NewStyle().
			Foreground(render.ColorPrimary).
			Bold(true)
)

// History styles
var (
	HistoryPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorDimmed).
				Padding(0, 1)

	InputEchoStyle = lipgloss.NewStyle().
			Foreground(render.ColorSecondary).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	OKStyle = lipgloss.NewStyle().
		Foreground(render.ColorSuccess)
)

// Input and status styles
var (
	InputPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(render.ColorPrimary).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(render.ColorText).
			Padding(0, 1)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(render.ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Logo
const Logo = "mBASIC"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}
