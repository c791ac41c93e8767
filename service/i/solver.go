package i

import (
	"github.com/beka-birhanu/alice-maze/generate"
	"github.com/beka-birhanu/alice-maze/maze"
	"github.com/beka-birhanu/alice-maze/solver"
	"github.com/google/uuid"
)

// MazeSolver runs shortest-path searches.
type MazeSolver interface {
	// Solve searches m from its start to its goal. The returned ID identifies
	// the run in logs and responses.
	Solve(m *maze.Maze) (uuid.UUID, solver.Result, error)
}

// MazeGenerator creates random mazes.
type MazeGenerator interface {
	Generate(rows, cols int, seed int64, cm generate.ColorModel) (*maze.Maze, error)
}
