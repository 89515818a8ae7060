// File: program.go
// Title: BASIC Program Line Store
// Description: Keeps parsed source lines ordered by line number in a
//              B-tree. Setting an existing number replaces that line.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial B-tree backed program store

package program

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/btree"

	mdwast "github.com/msto63/mbasic/foundation/basic/ast"
)

// degree of the underlying B-tree
const degree = 4

// Line is one stored program line
type Line struct {
	Number int              // line number, the ordering key
	Source string           // source text as entered
	Stmt   mdwast.Statement // parsed statement
}

// Less orders lines by number
func (l Line) Less(than btree.Item) bool {
	return l.Number < than.(Line).Number
}

// String returns the canonical form of the statement, or the source when
// the line was stored without one
func (l Line) String() string {
	if l.Stmt != nil {
		return l.Stmt.String()
	}
	return l.Source
}

// Program is an ordered, concurrency-safe collection of lines
type Program struct {
	tree  *btree.BTree
	mutex sync.RWMutex
}

// New creates an empty program
func New() *Program {
	return &Program{tree: btree.New(degree)}
}

// Set inserts line or replaces the line with the same number. It reports
// whether a line was replaced.
func (p *Program) Set(line Line) bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.tree.ReplaceOrInsert(line) != nil
}

// Delete removes the line with the given number and reports whether it existed
func (p *Program) Delete(number int) bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.tree.Delete(Line{Number: number}) != nil
}

// Clear removes every line
func (p *Program) Clear() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.tree.Clear(false)
}

// Get returns the line with the given number
func (p *Program) Get(number int) (Line, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	item := p.tree.Get(Line{Number: number})
	if item == nil {
		return Line{}, false
	}
	return item.(Line), true
}

// Len returns the number of lines
func (p *Program) Len() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.tree.Len()
}

// First returns the lowest numbered line
func (p *Program) First() (Line, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	item := p.tree.Min()
	if item == nil {
		return Line{}, false
	}
	return item.(Line), true
}

// Last returns the highest numbered line
func (p *Program) Last() (Line, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	item := p.tree.Max()
	if item == nil {
		return Line{}, false
	}
	return item.(Line), true
}

// Lines returns all lines in ascending order
func (p *Program) Lines() []Line {
	lines := make([]Line, 0, p.Len())
	p.Range(0, -1, func(l Line) bool {
		lines = append(lines, l)
		return true
	})
	return lines
}

// Range calls fn for every line numbered from..to inclusive, in ascending
// order, until fn returns false. A negative to means no upper bound.
// fn must not modify the program.
func (p *Program) Range(from, to int, fn func(Line) bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	visit := func(item btree.Item) bool {
		return fn(item.(Line))
	}

	if to < 0 {
		p.tree.AscendGreaterOrEqual(Line{Number: from}, visit)
		return
	}
	if to < from {
		return
	}
	p.tree.AscendGreaterOrEqual(Line{Number: from}, func(item btree.Item) bool {
		if item.(Line).Number > to {
			return false
		}
		return visit(item)
	})
}

// List writes every line in canonical form, one per row
func (p *Program) List(w io.Writer) error {
	var err error
	p.Range(0, -1, func(l Line) bool {
		_, err = fmt.Fprintln(w, l.String())
		return err == nil
	})
	return err
}
