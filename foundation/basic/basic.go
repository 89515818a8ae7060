// File: basic.go
// Title: BASIC Front End Engine
// Description: High-level API combining lexer, parser, function registry
//              and program store. Wraps lexer and parser failures into
//              coded foundation errors and loads whole programs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine implementation
// - 2026-10-19 v0.2.0: BASIC line parsing, program loading, semantic checks

package basic

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	mdwast "github.com/msto63/mbasic/foundation/basic/ast"
	mdwparser "github.com/msto63/mbasic/foundation/basic/parser"
	mdwprogram "github.com/msto63/mbasic/foundation/basic/program"
	mdwregistry "github.com/msto63/mbasic/foundation/basic/registry"
	mdwerror "github.com/msto63/mbasic/foundation/core/error"
	mdwlog "github.com/msto63/mbasic/foundation/core/log"
	mdwstringx "github.com/msto63/mbasic/foundation/utils/stringx"
)

const (
	// maxScanBuffer caps the reader buffer used by Load
	maxScanBuffer = 1 << 20

	// maxHintDistance is the largest edit distance offered as a keyword hint
	maxHintDistance = 2
)

// Engine represents the BASIC front end that coordinates lexing and parsing
type Engine struct {
	parser   *mdwparser.Parser
	registry *mdwregistry.Registry
	logger   *mdwlog.Logger
	options  Options
}

// Options configures the engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// MaxLineLength limits source line length in bytes (default: 4096)
	MaxLineLength int

	// MaxStatementDepth limits IF nesting (default: 16)
	MaxStatementDepth int

	// MaxExpressionDepth limits expression nesting (default: 64)
	MaxExpressionDepth int

	// Registry supplies function names; a builtin registry is created if nil
	Registry *mdwregistry.Registry

	// Functions are registered in addition to the builtins
	Functions []mdwregistry.FunctionDefinition

	// Cache memoises successfully parsed lines (optional)
	Cache StatementCache
}

// StatementCache stores parsed statements keyed by their trimmed source line
type StatementCache interface {
	Get(key string) (mdwast.Statement, bool)
	Set(key string, stmt mdwast.Statement)
}

// LineError records a source line that failed to parse
type LineError struct {
	Row    int    // 1-based row in the input
	Source string // raw line
	Err    error  // coded error wrapping *parser.LexError or *parser.ParseError
}

// LoadReport summarises a Load call
type LoadReport struct {
	SessionID string
	Rows      int // rows read, including blank ones
	Parsed    int // lines stored in the program
	Replaced  int // lines that overwrote an earlier line with the same number
	Errors    []LineError
	Duration  time.Duration
}

// OK reports whether every non-blank line parsed
func (r *LoadReport) OK() bool {
	return len(r.Errors) == 0
}

// New creates a new engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	reg := opts.Registry
	if reg == nil {
		var err error
		reg, err = mdwregistry.New(mdwregistry.Options{Logger: opts.Logger})
		if err != nil {
			return nil, err
		}
	}
	for _, def := range opts.Functions {
		if err := reg.Register(def); err != nil {
			return nil, mdwerror.Wrap(err, "failed to register configured function").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("basic.New")
		}
	}

	p, err := mdwparser.New(mdwparser.Options{
		Logger:             opts.Logger,
		MaxStatementDepth:  opts.MaxStatementDepth,
		MaxExpressionDepth: opts.MaxExpressionDepth,
		MaxLineLength:      opts.MaxLineLength,
		Functions:          reg,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create parser").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("basic.New")
	}

	return &Engine{
		parser:   p,
		registry: reg,
		logger:   opts.Logger.WithField("component", "basic-engine"),
		options:  opts,
	}, nil
}

// Registry returns the function registry
func (e *Engine) Registry() *mdwregistry.Registry {
	return e.registry
}

// Parser returns the statement parser
func (e *Engine) Parser() *mdwparser.Parser {
	return e.parser
}

// Tokenize lexes one source line
func (e *Engine) Tokenize(line string) (*mdwparser.TokenStream, error) {
	ts, err := e.parser.Lexer().Tokenize(line)
	if err != nil {
		return nil, e.wrapError(err, line)
	}
	return ts, nil
}

// ParseLine lexes and parses one source line
func (e *Engine) ParseLine(line string) (mdwast.Statement, error) {
	key := strings.TrimSpace(line)
	if e.options.Cache != nil {
		if stmt, ok := e.options.Cache.Get(key); ok {
			return stmt, nil
		}
	}

	stmt, err := e.parser.Parse(line)
	if err != nil {
		return nil, e.wrapError(err, line)
	}

	if e.options.Cache != nil {
		e.options.Cache.Set(key, stmt)
	}
	return stmt, nil
}

// Load parses every non-blank line of r into a program. Lines that fail are
// collected in the report and loading continues. The returned error is only
// set when reading fails or ctx is done.
func (e *Engine) Load(ctx context.Context, r io.Reader) (*mdwprogram.Program, *LoadReport, error) {
	start := time.Now()
	report := &LoadReport{SessionID: uuid.New().String()}
	logger := e.logger.WithRequestID(report.SessionID)
	prog := mdwprogram.New()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScanBuffer)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(start)
			return prog, report, mdwerror.Wrap(err, "program load canceled").
				WithCode(mdwerror.CodeCanceled).
				WithOperation("basic.Load").
				WithRequestID(report.SessionID).
				WithDetail("row", report.Rows)
		}

		report.Rows++
		line := scanner.Text()
		if mdwstringx.IsBlank(line) {
			continue
		}

		stmt, err := e.ParseLine(line)
		if err != nil {
			var coded *mdwerror.Error
			if errors.As(err, &coded) {
				coded.WithRequestID(report.SessionID).WithDetail("row", report.Rows)
			}
			report.Errors = append(report.Errors, LineError{Row: report.Rows, Source: line, Err: err})
			continue
		}

		if prog.Set(mdwprogram.Line{Number: stmt.LineNumber(), Source: strings.TrimSpace(line), Stmt: stmt}) {
			report.Replaced++
			logger.Debug("BASIC line replaced", mdwlog.Fields{"line": stmt.LineNumber(), "row": report.Rows})
		}
	}

	report.Parsed = prog.Len()
	report.Duration = time.Since(start)

	if err := scanner.Err(); err != nil {
		return prog, report, mdwerror.Wrap(err, "failed to read program").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("basic.Load").
			WithRequestID(report.SessionID).
			WithDetail("row", report.Rows+1)
	}

	fields := mdwlog.Fields{
		"rows":     report.Rows,
		"lines":    report.Parsed,
		"replaced": report.Replaced,
		"errors":   len(report.Errors),
		"duration": report.Duration.String(),
	}
	if report.OK() {
		logger.Info("BASIC program loaded", fields)
	} else {
		logger.Warn("BASIC program loaded with errors", fields)
	}

	return prog, report, nil
}

// Check reports semantic problems in a single statement: calls with the
// wrong number of arguments
func (e *Engine) Check(stmt mdwast.Statement) []error {
	var problems []error
	for _, call := range mdwast.CollectFunctionCalls(stmt) {
		if err := e.registry.CheckArity(call.Name, len(call.Args)); err != nil {
			problems = append(problems, mdwerror.Wrap(err, "line "+strconv.Itoa(stmt.LineNumber())).
				WithDetail("line", stmt.LineNumber()))
		}
	}
	return problems
}

// CheckProgram runs Check on every line and additionally reports GOTO
// statements whose literal target line does not exist
func (e *Engine) CheckProgram(prog *mdwprogram.Program) []error {
	var problems []error

	for _, line := range prog.Lines() {
		if line.Stmt == nil {
			continue
		}
		problems = append(problems, e.Check(line.Stmt)...)

		mdwast.Walk(line.Stmt, func(n mdwast.Node) bool {
			g, ok := n.(*mdwast.GotoStmt)
			if !ok {
				return true
			}
			target, ok := g.Target.(*mdwast.NumberLit)
			if !ok {
				return false
			}
			n64, err := strconv.ParseInt(target.Text, 10, 0)
			if err != nil {
				problems = append(problems, mdwerror.Newf("line %d: GOTO target %s is not a line number", g.Line, target.Text).
					WithCode(mdwerror.CodeBasicSemantic).
					WithDetail("line", g.Line))
				return false
			}
			if _, exists := prog.Get(int(n64)); !exists {
				problems = append(problems, mdwerror.Newf("line %d: GOTO target %d does not exist", g.Line, n64).
					WithCode(mdwerror.CodeBasicSemantic).
					WithDetail("line", g.Line).
					WithDetail("target", n64))
			}
			return false
		})
	}
	return problems
}

// SuggestKeyword returns the statement keyword closest to word, or "" when
// nothing is close. Letters of word must appear in the keyword in order.
func SuggestKeyword(word string) string {
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) < 2 {
		return ""
	}

	ranks := fuzzy.RankFindFold(word, mdwparser.Keywords())
	if len(ranks) == 0 {
		return ""
	}
	sort.Stable(ranks)
	if ranks[0].Distance > maxHintDistance {
		return ""
	}
	return ranks[0].Target
}

// wrapError converts lexer and parser errors into coded errors
func (e *Engine) wrapError(err error, line string) error {
	var lexErr *mdwparser.LexError
	var parseErr *mdwparser.ParseError

	switch {
	case errors.As(err, &lexErr):
		return mdwerror.Wrap(err, "invalid BASIC line").
			WithCode(mdwerror.CodeBasicLex).
			WithOperation("basic.Tokenize").
			WithDetail("line", lexErr.LineNumber).
			WithDetail("offset", lexErr.Offset)

	case errors.As(err, &parseErr):
		code := mdwerror.CodeBasicParse
		if errors.Is(err, mdwparser.ErrDepthExceeded) {
			code = mdwerror.CodeBasicDepth
		}

		message := "invalid BASIC line"
		hint := ""
		if parseErr.Expected == "statement keyword" {
			hint = SuggestKeyword(statementWord(line))
			if hint != "" {
				message += " (did you mean " + hint + "?)"
			}
		}

		wrapped := mdwerror.Wrap(err, message).
			WithCode(code).
			WithOperation("basic.Parse").
			WithDetail("line", parseErr.LineNumber).
			WithDetail("offset", parseErr.Offset)
		if parseErr.Expected != "" {
			wrapped.WithDetail("expected", parseErr.Expected).WithDetail("found", parseErr.Found)
		}
		if hint != "" {
			wrapped.WithDetail("hint", hint)
		}
		return wrapped

	default:
		return mdwerror.Wrap(err, "invalid BASIC line").WithCode(mdwerror.CodeInvalidInput)
	}
}

// statementWord returns the first word after the line number
func statementWord(line string) string {
	line = strings.TrimLeft(line, " \t0123456789")
	end := 0
	for end < len(line) && isWordByte(line[end]) {
		end++
	}
	return line[:end]
}

func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '$'
}
