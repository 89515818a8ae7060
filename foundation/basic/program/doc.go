// Package program stores parsed BASIC lines ordered by line number.
//
// Entering a line whose number already exists replaces it, as in a classic
// BASIC editor. The store only orders lines; nothing executes them.
package program
