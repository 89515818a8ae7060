// ============================================================================
// mBASIC - BASIC Front End
// ============================================================================
//
// Package:     render
// Description: Styles for token, tree and error output
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss"

	mdwparser "github.com/msto63/mbasic/foundation/basic/parser"
)

// Color Palette - Same as the TUI for consistency
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
)

// Tree styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	RoleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	DetailStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)
)

// Error styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Italic(true)

	SourceStyle = lipgloss.NewStyle().
			Foreground(ColorText)
)

// Token kind styles
var tokenStyles = map[mdwparser.Kind]lipgloss.Style{
	mdwparser.KindLineNumber:    lipgloss.NewStyle().Foreground(ColorMuted),
	mdwparser.KindKeyword:       lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
	mdwparser.KindComment:       lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
	mdwparser.KindString:        lipgloss.NewStyle().Foreground(ColorSuccess),
	mdwparser.KindNumber:        lipgloss.NewStyle().Foreground(ColorAccent),
	mdwparser.KindVariable:      lipgloss.NewStyle().Foreground(ColorText),
	mdwparser.KindFunction:      lipgloss.NewStyle().Foreground(ColorSecondary),
	mdwparser.KindConstant:      lipgloss.NewStyle().Foreground(ColorSecondary).Italic(true),
	mdwparser.KindOperator:      lipgloss.NewStyle().Foreground(ColorText),
	mdwparser.KindLogicOperator: lipgloss.NewStyle().Foreground(ColorPrimary),
	mdwparser.KindLineModifier:  lipgloss.NewStyle().Foreground(ColorMuted),
}

// TokenStyle returns the style used for tokens of kind
func TokenStyle(kind mdwparser.Kind) lipgloss.Style {
	if style, ok := tokenStyles[kind]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
