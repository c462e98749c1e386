// Package components provides the terminal grid renderer plus the box
// rendering and ANSI-aware text primitives behind it.
package components

// Align controls horizontal text placement within a cell or box edge.
type Align int

const (
	// AlignLeft places text at the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers text.
	AlignCenter
	// AlignRight places text at the right edge.
	AlignRight
)
