package service

import (
	"time"

	"github.com/beka-birhanu/alice-maze/generate"
	"github.com/beka-birhanu/alice-maze/maze"
	"github.com/beka-birhanu/alice-maze/service/i"
)

// MazeFactory produces random mazes. A non-positive seed is replaced by the
// current time.
type MazeFactory struct{}

var _ i.MazeGenerator = MazeFactory{}

// Generate implements i.MazeGenerator.
func (MazeFactory) Generate(rows, cols int, seed int64, cm generate.ColorModel) (*maze.Maze, error) {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return generate.New(rows, cols, seed, cm)
}
