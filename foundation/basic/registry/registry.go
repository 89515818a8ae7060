// File: registry.go
// Title: BASIC Function Registry
// Description: Thread-safe registry of callable function names with their
//              arity. The lexer consults it by name only; the engine uses
//              the arity for semantic checks.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Simplified command registry
// - 2026-10-19 v0.2.0: Function definitions with arity, coded errors

package registry

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	mdwparser "github.com/msto63/mbasic/foundation/basic/parser"
	mdwerror "github.com/msto63/mbasic/foundation/core/error"
	mdwlog "github.com/msto63/mbasic/foundation/core/log"
	mdwstringx "github.com/msto63/mbasic/foundation/utils/stringx"
)

// Variadic marks a function without an upper argument bound
const Variadic = -1

// Options configures registry behavior
type Options struct {
	Logger *mdwlog.Logger

	// SkipBuiltins creates an empty registry
	SkipBuiltins bool
}

// FunctionDefinition describes a callable function
type FunctionDefinition struct {
	Name        string // Upper-case name, string functions end in "$"
	MinArgs     int    // Minimum argument count
	MaxArgs     int    // Maximum argument count, Variadic for no limit
	Description string // One-line help text
}

// Registry maps function names to definitions. It implements
// parser.FunctionLookup.
type Registry struct {
	functions map[string]*FunctionDefinition
	logger    *mdwlog.Logger
	mutex     sync.RWMutex
}

// New creates a registry, pre-populated with the builtin functions unless
// opts.SkipBuiltins is set
func New(opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	r := &Registry{
		functions: make(map[string]*FunctionDefinition),
		logger:    opts.Logger.WithField("component", "basic-registry"),
	}

	if !opts.SkipBuiltins {
		for _, def := range Builtins() {
			if err := r.Register(def); err != nil {
				return nil, mdwerror.Wrap(err, "failed to register builtin functions").
					WithOperation("registry.New")
			}
		}
	}

	r.logger.Debug("BASIC function registry initialized", mdwlog.Fields{
		"functionCount": r.Len(),
	})

	return r, nil
}

// Register adds a function definition. Names are normalised to upper case.
func (r *Registry) Register(def FunctionDefinition) error {
	if mdwstringx.IsBlank(def.Name) {
		return mdwerror.New("function name cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("registry.Register")
	}

	name := strings.ToUpper(strings.TrimSpace(def.Name))
	if !validName(name) {
		return mdwerror.Newf("invalid function name %q", def.Name).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("registry.Register").
			WithDetail("name", def.Name)
	}
	if mdwparser.IsReserved(name) {
		return mdwerror.Newf("function name %s is reserved", name).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("registry.Register").
			WithDetail("name", name)
	}
	if word, shadowed := mdwparser.IsShadowed(name); shadowed {
		return mdwerror.Newf("function name %s starts with %s and would never be recognised", name, word).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("registry.Register").
			WithDetail("name", name).
			WithDetail("shadowed_by", word)
	}
	if def.MinArgs < 0 || (def.MaxArgs != Variadic && def.MaxArgs < def.MinArgs) {
		return mdwerror.Newf("invalid arity %d..%d for function %s", def.MinArgs, def.MaxArgs, name).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("registry.Register").
			WithDetail("name", name)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.functions[name]; exists {
		return mdwerror.Newf("function %s already registered", name).
			WithCode(mdwerror.CodeDuplicateEntry).
			WithOperation("registry.Register").
			WithDetail("name", name)
	}

	def.Name = name
	r.functions[name] = &def

	r.logger.Trace("BASIC function registered", mdwlog.Fields{
		"name":    name,
		"minArgs": def.MinArgs,
		"maxArgs": def.MaxArgs,
	})

	return nil
}

// HasFunction checks if a function is registered
func (r *Registry) HasFunction(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, exists := r.functions[strings.ToUpper(name)]
	return exists
}

// Get returns a copy of a function definition
func (r *Registry) Get(name string) (FunctionDefinition, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	def, exists := r.functions[strings.ToUpper(name)]
	if !exists {
		return FunctionDefinition{}, mdwerror.Newf("function %s not found in registry", name).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("registry.Get").
			WithDetail("name", name)
	}
	return *def, nil
}

// Names returns all registered function names in sorted order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered functions
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.functions)
}

// CheckArity verifies that name accepts argc arguments
func (r *Registry) CheckArity(name string, argc int) error {
	def, err := r.Get(name)
	if err != nil {
		return err
	}

	if argc < def.MinArgs || (def.MaxArgs != Variadic && argc > def.MaxArgs) {
		return mdwerror.Newf("%s expects %s, got %d", def.Name, def.ArityString(), argc).
			WithCode(mdwerror.CodeBasicSemantic).
			WithOperation("registry.CheckArity").
			WithDetail("name", def.Name).
			WithDetail("args", argc)
	}
	return nil
}

// ArityString renders the accepted argument count, e.g. "1 argument" or
// "2 to 3 arguments"
func (d FunctionDefinition) ArityString() string {
	plural := func(n int) string {
		if n == 1 {
			return "1 argument"
		}
		return strconv.Itoa(n) + " arguments"
	}

	switch {
	case d.MaxArgs == Variadic:
		return "at least " + plural(d.MinArgs)
	case d.MinArgs == d.MaxArgs:
		return plural(d.MinArgs)
	default:
		return strconv.Itoa(d.MinArgs) + " to " + plural(d.MaxArgs)
	}
}

// validName accepts letter (letter|digit)* with an optional trailing "$"
func validName(name string) bool {
	name = strings.TrimSuffix(name, "$")
	if name == "" {
		return false
	}
	for i, c := range name {
		isLetter := c >= 'A' && c <= 'Z'
		isDigit := c >= '0' && c <= '9'
		if !isLetter && (i == 0 || !isDigit) {
			return false
		}
	}
	return true
}

var _ mdwparser.FunctionLookup = (*Registry)(nil)
