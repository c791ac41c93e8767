/*
Package maze provides the data model of an Alice maze.

An Alice maze is a set of cells, each carrying a color tag and a list of open
compass exits. Moving out of a cell covers exactly the current step size in
one of the listed directions; arriving on a red cell increases the step size
by one and arriving on a yellow cell decreases it by one.

The package keeps cells in the order they were described, which fixes the
order in which a search expands them, and offers an ASCII rendering for
debugging.
*/
package maze

import (
	"errors"
	"fmt"
)

// ErrDuplicateCell is returned when the same (row, col, color) cell is added twice.
var ErrDuplicateCell = errors.New("duplicate cell")

// Maze holds the cells of an Alice maze together with its start and goal.
type Maze struct {
	Start Position // Where the traveler begins, with step size 1
	Goal  Position // The position to reach

	cells []Cell
	index map[CellKey]int
}

// New creates an empty maze with the given start and goal.
func New(start, goal Position) *Maze {
	return &Maze{
		Start: start,
		Goal:  goal,
		index: make(map[CellKey]int),
	}
}

// AddCell appends a cell to the maze. Its exits are copied.
func (m *Maze) AddCell(c Cell) error {
	if m.index == nil {
		m.index = make(map[CellKey]int)
	}
	key := c.Key()
	if _, exists := m.index[key]; exists {
		return fmt.Errorf("%w: (%d, %d, %s)", ErrDuplicateCell, c.Row, c.Col, c.Color)
	}
	c.Exits = append([]Direction(nil), c.Exits...)
	m.index[key] = len(m.cells)
	m.cells = append(m.cells, c)
	return nil
}

// Cells returns the cells in description order. The slice must not be modified.
func (m *Maze) Cells() []Cell {
	return m.cells
}

// Len returns the number of cells.
func (m *Maze) Len() int {
	return len(m.cells)
}

// Cell looks a cell up by its full identity.
func (m *Maze) Cell(key CellKey) (Cell, bool) {
	i, ok := m.index[key]
	if !ok {
		return Cell{}, false
	}
	return m.cells[i], true
}

// CellAt returns the cell occupying a position. When several cells share the
// position the last one described wins, matching how the search graph is
// built.
func (m *Maze) CellAt(p Position) (Cell, bool) {
	for i := len(m.cells) - 1; i >= 0; i-- {
		if m.cells[i].Position == p {
			return m.cells[i], true
		}
	}
	return Cell{}, false
}

// Bounds returns the smallest and largest positions occupied by cells.
func (m *Maze) Bounds() (Position, Position) {
	if len(m.cells) == 0 {
		return Position{}, Position{}
	}
	lo, hi := m.cells[0].Position, m.cells[0].Position
	for _, c := range m.cells[1:] {
		lo.Row, lo.Col = min(lo.Row, c.Row), min(lo.Col, c.Col)
		hi.Row, hi.Col = max(hi.Row, c.Row), max(hi.Col, c.Col)
	}
	return lo, hi
}

// String provides a textual representation of the maze. Each cell is drawn as
// its color initial with S and G marking the start and goal; missing cells are
// drawn as '#'.
func (m *Maze) String() string {
	var output string
	if len(m.cells) == 0 {
		return output
	}
	lo, hi := m.Bounds()

	for row := lo.Row; row <= hi.Row; row++ {
		cellRow := ""
		for col := lo.Col; col <= hi.Col; col++ {
			p := Position{Row: row, Col: col}
			cell, ok := m.CellAt(p)
			mark := " "
			switch p {
			case m.Start:
				mark = "S"
			case m.Goal:
				mark = "G"
			}
			if !ok {
				cellRow += "[##]"
				continue
			}
			cellRow += "[" + colorInitial(cell.Color) + mark + "]"
		}
		output += cellRow + "\n"
	}

	return output
}

func colorInitial(c Color) string {
	switch c {
	case Red:
		return "R"
	case Yellow:
		return "Y"
	default:
		return "."
	}
}
