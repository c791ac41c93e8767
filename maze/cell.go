package maze

import "fmt"

// Color is the tag carried by a cell. Only "red" and "yellow" have an effect;
// every other token is neutral but is kept verbatim because it takes part in
// a cell's identity.
type Color string

const (
	Red     Color = "red"
	Yellow  Color = "yellow"
	Neutral Color = "neutral"
)

// Delta returns the change a cell of this color applies to the step size
// before the next move is taken.
func (c Color) Delta() int {
	switch c {
	case Red:
		return 1
	case Yellow:
		return -1
	default:
		return 0
	}
}

// Position is a (row, column) location in the maze.
type Position struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// String formats the position the way solutions are printed.
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Add returns the position shifted by the given row and column deltas.
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// CellKey identifies a cell in a maze description. The color is part of the
// key, so two records at the same coordinate with different colors are two
// distinct cells.
type CellKey struct {
	Row   int
	Col   int
	Color Color
}

// Cell represents a single cell in an Alice maze: its location, color tag and
// the ordered list of open exits.
type Cell struct {
	Position
	Color Color       // Color tag applied on arrival.
	Exits []Direction // Exits in the order they were listed.
}

// Key returns the identity of the cell.
func (c Cell) Key() CellKey {
	return CellKey{Row: c.Row, Col: c.Col, Color: c.Color}
}

// HasExit reports whether d is listed among the cell's exits.
func (c Cell) HasExit(d Direction) bool {
	for _, e := range c.Exits {
		if e == d {
			return true
		}
	}
	return false
}
