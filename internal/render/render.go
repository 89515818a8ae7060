// ============================================================================
// mBASIC - BASIC Front End
// ============================================================================
//
// Package:     render
// Description: Text rendering of token streams, statement trees and errors
//              for the CLI and the REPL
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdwast "github.com/msto63/mbasic/foundation/basic/ast"
	mdwparser "github.com/msto63/mbasic/foundation/basic/parser"
	mdwerror "github.com/msto63/mbasic/foundation/core/error"
	mdwstringx "github.com/msto63/mbasic/foundation/utils/stringx"
)

// kindWidth is the column width of the token kind
const kindWidth = 15

// Tokens renders one token per row: kind, then value. The line number token
// comes first.
func Tokens(ts *mdwparser.TokenStream, styled bool) string {
	var b strings.Builder
	for _, tok := range ts.All() {
		kind := mdwstringx.PadRight(tok.Kind.String(), kindWidth, ' ')
		value := tokenText(tok)
		if tok.Kind == mdwparser.KindComment {
			value = fmt.Sprintf("%q", value)
		}
		if styled {
			kind = RoleStyle.Render(kind)
			value = TokenStyle(tok.Kind).Render(value)
		}
		b.WriteString(kind)
		b.WriteString(value)
		b.WriteString("\n")
	}
	return b.String()
}

// Inline renders the tokens of one line on a single row, each token
// coloured by kind
func Inline(ts *mdwparser.TokenStream, styled bool) string {
	parts := make([]string, 0, ts.Len()+1)
	for _, tok := range ts.All() {
		text := tokenText(tok)
		if styled {
			text = TokenStyle(tok.Kind).Render(text)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

// tokenText restores the quotes around string literals
func tokenText(tok mdwparser.Token) string {
	if tok.Kind == mdwparser.KindString {
		return `"` + tok.Value + `"`
	}
	return tok.Value
}

// Tree renders node as an indented tree, two spaces per level
func Tree(node mdwast.Node, styled bool) string {
	var b strings.Builder
	for _, line := range mdwast.Tree(node) {
		b.WriteString(strings.Repeat("  ", line.Depth))
		if line.Role != "" {
			b.WriteString(style(RoleStyle, line.Role+": ", styled))
		}
		b.WriteString(style(LabelStyle, line.Label, styled))
		if line.Detail != "" {
			b.WriteString(" ")
			b.WriteString(style(DetailStyle, line.Detail, styled))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Error renders err with its code. When source is given and the error
// carries a position, the source line is shown with a caret below the
// offending column. A "hint" detail is shown on its own row.
func Error(err error, source string, styled bool) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	head := "Fehler"
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		head += " [" + code.String() + "]"
	}
	b.WriteString(style(ErrorStyle, head+":", styled))
	b.WriteString(" ")
	b.WriteString(err.Error())
	b.WriteString("\n")

	if offset, ok := errorOffset(err); ok && !mdwstringx.IsBlank(source) {
		source = strings.TrimRight(source, "\r\n")
		if offset > len(source) {
			offset = len(source)
		}
		b.WriteString("  ")
		b.WriteString(style(SourceStyle, source, styled))
		b.WriteString("\n  ")
		b.WriteString(caretPadding(source[:offset]))
		b.WriteString(style(ErrorStyle, "^", styled))
		b.WriteString("\n")
	}

	var coded *mdwerror.Error
	if errors.As(err, &coded) {
		if hint, ok := coded.Detail("hint"); ok {
			b.WriteString(style(HintStyle, fmt.Sprintf("  Hinweis: meinten Sie %v?", hint), styled))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// errorOffset extracts the byte offset of a lexer or parser error
func errorOffset(err error) (int, bool) {
	var lexErr *mdwparser.LexError
	if errors.As(err, &lexErr) {
		return lexErr.Offset, true
	}
	var parseErr *mdwparser.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Offset, true
	}
	return 0, false
}

// caretPadding keeps tabs so the caret lines up under tab-indented source
func caretPadding(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteRune('\t')
			continue
		}
		b.WriteRune(' ')
	}
	return b.String()
}

func style(s lipgloss.Style, text string, styled bool) string {
	if !styled {
		return text
	}
	return s.Render(text)
}
