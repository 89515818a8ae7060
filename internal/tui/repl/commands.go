// ============================================================================
// mBASIC - BASIC Front End
// ============================================================================
//
// Package:     repl
// Description: Handling of submitted lines and REPL commands
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package repl

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	mdwprogram "github.com/msto63/mbasic/foundation/basic/program"
	mdwlog "github.com/msto63/mbasic/foundation/core/log"
	mdwstringx "github.com/msto63/mbasic/foundation/utils/stringx"
	"github.com/msto63/mbasic/internal/render"
)

// commands lists the words accepted without a line number
var commands = []string{"LIST", "NEW", "CHECK", "TOKENS", "HELP", "EXIT"}

const helpText = `Zeilen mit Zeilennummer werden geparst und gespeichert.
Eine Zeilennummer allein loescht die Zeile.

Befehle:
  LIST [von[-bis]]  Programm anzeigen
  NEW               Programm loeschen
  CHECK             Programm pruefen (Argumente, GOTO-Ziele)
  TOKENS            Token-Anzeige umschalten
  HELP              Diese Hilfe
  EXIT              Beenden`

// submit processes one line of input
func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	line = strings.TrimSpace(line)
	if mdwstringx.IsBlank(line) {
		return m, nil
	}

	m.recall = append(m.recall, line)
	m.recallPos = len(m.recall)
	m.add(entryInput, "> "+line, InputEchoStyle.Render("> "+line))

	var cmd tea.Cmd
	if line[0] >= '0' && line[0] <= '9' {
		m.enterLine(line)
	} else {
		cmd = m.command(line)
	}

	m.updateViewportContent()
	return m, cmd
}

// enterLine parses a numbered line and stores it, or deletes the line when
// only a number was given
func (m *Model) enterLine(line string) {
	if number, err := strconv.Atoi(line); err == nil {
		if m.program.Delete(number) {
			m.addInfo(fmt.Sprintf("Zeile %d geloescht", number))
		} else {
			m.addInfo(fmt.Sprintf("Zeile %d existiert nicht", number))
		}
		return
	}

	stmt, err := m.engine.ParseLine(line)
	if err != nil {
		m.addError(render.Error(err, line, false), render.Error(err, line, true))
		return
	}

	if m.showTokens {
		if ts, err := m.engine.Tokenize(line); err == nil {
			m.addOutput(render.Inline(ts, false), render.Inline(ts, true))
		}
	}
	m.addOutput(render.Tree(stmt, false), render.Tree(stmt, true))

	if m.program.Set(mdwprogram.Line{Number: stmt.LineNumber(), Source: line, Stmt: stmt}) {
		m.addInfo(fmt.Sprintf("Zeile %d ersetzt", stmt.LineNumber()))
	}

	for _, problem := range m.engine.Check(stmt) {
		m.addError(render.Error(problem, "", false), render.Error(problem, "", true))
	}

	m.logger.Debug("REPL line stored", mdwlog.Fields{"line": stmt.LineNumber(), "keyword": stmt.Kind().String()})
}

// command runs a REPL command and returns tea.Quit for EXIT
func (m *Model) command(line string) tea.Cmd {
	fields := strings.Fields(line)
	name := strings.ToUpper(fields[0])
	args := fields[1:]

	m.logger.Debug("REPL command", mdwlog.Fields{"command": name})

	switch name {
	case "LIST":
		from, to, err := parseRange(args)
		if err != nil {
			m.addError("Fehler: "+err.Error(), render.ErrorStyle.Render("Fehler: ")+err.Error())
			return nil
		}
		m.list(from, to)

	case "NEW":
		m.program.Clear()
		m.addInfo("Programm geloescht")

	case "CHECK":
		problems := m.engine.CheckProgram(m.program)
		if len(problems) == 0 {
			m.add(entryOutput, "keine Probleme gefunden", OKStyle.Render("keine Probleme gefunden"))
		}
		for _, problem := range problems {
			m.addError(render.Error(problem, "", false), render.Error(problem, "", true))
		}

	case "TOKENS":
		m.showTokens = !m.showTokens
		if m.showTokens {
			m.addInfo("Token-Anzeige an")
		} else {
			m.addInfo("Token-Anzeige aus")
		}

	case "HELP", "?":
		m.addOutput(helpText, HelpDescStyle.Render(helpText))

	case "EXIT", "QUIT", "BYE":
		return tea.Quit

	default:
		msg := fmt.Sprintf("Fehler: unbekannter Befehl %s", name)
		if hint := suggestCommand(name); hint != "" {
			msg += fmt.Sprintf(" (meinten Sie %s?)", hint)
		}
		m.addError(msg, render.ErrorStyle.Render(msg))
	}
	return nil
}

func (m *Model) list(from, to int) {
	if m.program.Len() == 0 {
		m.addInfo("Programm ist leer")
		return
	}

	if from == 0 && to < 0 {
		var buf bytes.Buffer
		if err := m.program.List(&buf); err == nil {
			m.addOutput(buf.String(), buf.String())
		}
		return
	}

	var rows []string
	m.program.Range(from, to, func(l mdwprogram.Line) bool {
		rows = append(rows, l.String())
		return true
	})
	if len(rows) == 0 {
		m.addInfo("keine Zeilen im Bereich")
		return
	}
	text := strings.Join(rows, "\n")
	m.addOutput(text, text)
}

// parseRange reads the LIST arguments "n" or "n-m"; no argument means all
func parseRange(args []string) (int, int, error) {
	if len(args) == 0 {
		return 0, -1, nil
	}
	if len(args) > 1 {
		return 0, 0, fmt.Errorf("LIST erwartet hoechstens einen Bereich")
	}

	parts := strings.SplitN(args[0], "-", 2)
	from, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("ungueltige Zeilennummer %q", parts[0])
	}
	if len(parts) == 1 {
		return from, from, nil
	}
	if parts[1] == "" {
		return from, -1, nil
	}
	to, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("ungueltige Zeilennummer %q", parts[1])
	}
	return from, to, nil
}

// suggestCommand returns the command closest to name
func suggestCommand(name string) string {
	ranks := fuzzy.RankFindFold(name, commands)
	if len(ranks) == 0 {
		return ""
	}
	sort.Stable(ranks)
	return ranks[0].Target
}
