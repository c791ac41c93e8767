package solver

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/alice-maze/maze"
)

// ErrIllegalMove is returned by Validate for a path that breaks the movement rules.
var ErrIllegalMove = errors.New("illegal move")

// Validate replays path through m starting with step size 1 and checks that
// every move leaves through a listed exit, covers exactly the step size in
// effect and lands on a cell.
func Validate(m *maze.Maze, path []maze.Position) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrIllegalMove)
	}
	if _, ok := m.CellAt(path[0]); !ok {
		return fmt.Errorf("%w: path starts at %s which is not a cell", ErrIllegalMove, path[0])
	}

	step := 1
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		cell, _ := m.CellAt(from)
		step += cell.Color.Delta()
		if step <= 0 {
			return fmt.Errorf("%w: move %d leaves %s with step size %d", ErrIllegalMove, i, from, step)
		}

		legal := false
		for _, dir := range cell.Exits {
			dRow, dCol := dir.Offset(step)
			if from.Add(dRow, dCol) == to {
				legal = true
				break
			}
		}
		if !legal {
			return fmt.Errorf("%w: move %d from %s to %s with step size %d", ErrIllegalMove, i, from, to, step)
		}
		if _, ok := m.CellAt(to); !ok {
			return fmt.Errorf("%w: move %d lands on %s which is not a cell", ErrIllegalMove, i, to)
		}
	}

	return nil
}
