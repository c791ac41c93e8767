package solver

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/alice-maze/maze"
)

// NoSolution is how an unsolved result prints.
const NoSolution = "no solution"

// Result is the outcome of a search.
type Result struct {
	Solved    bool            // Whether the goal was reached
	Length    int             // Number of moves on the path
	Path      []maze.Position // Start to goal inclusive; empty when unsolved
	Expanded  int             // States taken off the queue
	StepSizes []int           // Step sizes materialized, in discovery order
}

// String renders the result as "(length, [(r, c), ...])" or "no solution".
func (r Result) String() string {
	if !r.Solved {
		return NoSolution
	}
	cells := make([]string, len(r.Path))
	for i, p := range r.Path {
		cells[i] = p.String()
	}
	return fmt.Sprintf("(%d, [%s])", r.Length, strings.Join(cells, ", "))
}
