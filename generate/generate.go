/*
Package generate creates random rectangular Alice mazes.

The layout is a spanning tree carved with Wilson's algorithm, so every cell
is reachable with step size 1; exits are opened in both directions. Colors
are then sprinkled over the cells according to a ColorModel. Generation is
deterministic for a given seed.
*/
package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/alice-maze/maze"
)

// MaxDimension is the largest number of rows or columns a generated maze
// may have.
const MaxDimension = 64

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidColorModel = errors.New("invalid color model")

	cardinals = []maze.Direction{maze.North, maze.South, maze.East, maze.West}
	opposite  = map[maze.Direction]maze.Direction{
		maze.North: maze.South,
		maze.South: maze.North,
		maze.East:  maze.West,
		maze.West:  maze.East,
	}
)

// ColorModel defines how colors are distributed over generated cells.
// RedProb and YellowProb are the chances of a cell being red or yellow;
// the remainder is neutral.
type ColorModel struct {
	RedProb    float32 `json:"red_prob" yaml:"red_prob"`       // Probability of a red cell (0.0 to 1.0)
	YellowProb float32 `json:"yellow_prob" yaml:"yellow_prob"` // Probability of a yellow cell (0.0 to 1.0)
}

// Validate checks that the probabilities are in range and sum to at most one.
func (cm ColorModel) Validate() error {
	if cm.RedProb < 0 || cm.YellowProb < 0 || cm.RedProb+cm.YellowProb > 1 {
		return fmt.Errorf("%w: red %.2f, yellow %.2f", ErrInvalidColorModel, cm.RedProb, cm.YellowProb)
	}
	return nil
}

// move is one step of a random walk.
type move struct {
	from      maze.Position
	to        maze.Position
	direction maze.Direction
}

// grid holds the carved exits as a bitmask per cell while generating.
type grid struct {
	rows  int
	cols  int
	exits [][]uint8
	rng   *rand.Rand
}

// New generates a rows x cols maze with the start in the top-left corner and
// the goal in the bottom-right corner.
func New(rows, cols int, seed int64, cm ColorModel) (*maze.Maze, error) {
	if min(rows, cols) <= 0 || max(rows, cols) > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if err := cm.Validate(); err != nil {
		return nil, err
	}

	g := &grid{
		rows:  rows,
		cols:  cols,
		exits: make([][]uint8, rows),
		rng:   rand.New(rand.NewSource(seed)),
	}
	for i := range g.exits {
		g.exits[i] = make([]uint8, cols)
	}
	g.carve()

	m := maze.New(maze.Position{Row: 0, Col: 0}, maze.Position{Row: rows - 1, Col: cols - 1})
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := maze.Cell{
				Position: maze.Position{Row: row, Col: col},
				Color:    g.color(cm),
			}
			for _, dir := range maze.Directions {
				if g.exits[row][col]&(1<<dir) != 0 {
					cell.Exits = append(cell.Exits, dir)
				}
			}
			if err := m.AddCell(cell); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func (g *grid) color(cm ColorModel) maze.Color {
	r := g.rng.Float32()
	switch {
	case r < cm.RedProb:
		return maze.Red
	case r < cm.RedProb+cm.YellowProb:
		return maze.Yellow
	default:
		return maze.Neutral
	}
}

func key(p maze.Position) string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// randomCellPosition generates a random position within the grid.
func (g *grid) randomCellPosition() maze.Position {
	return maze.Position{Row: g.rng.Intn(g.rows), Col: g.rng.Intn(g.cols)}
}

// randomUnvisitedCellPosition selects a random position that has not been visited.
func (g *grid) randomUnvisitedCellPosition(visited map[string]struct{}) maze.Position {
	for {
		pos := g.randomCellPosition()
		if _, included := visited[key(pos)]; !included {
			return pos
		}
	}
}

// neighbors finds all in-bound unit moves from a position.
func (g *grid) neighbors(pos maze.Position) []move {
	var result []move
	for _, dir := range cardinals {
		dRow, dCol := dir.Offset(1)
		to := pos.Add(dRow, dCol)
		if to.Row >= 0 && to.Row < g.rows && to.Col >= 0 && to.Col < g.cols {
			result = append(result, move{from: pos, to: to, direction: dir})
		}
	}
	return result
}

// openWall lists the exit on both sides of the move.
func (g *grid) openWall(m move) {
	g.exits[m.from.Row][m.from.Col] |= 1 << m.direction
	g.exits[m.to.Row][m.to.Col] |= 1 << opposite[m.direction]
}

// randomWalk walks from an unvisited cell until it hits the visited tree,
// remembering the last exit taken from each cell so loops are erased.
func (g *grid) randomWalk(visited map[string]struct{}) (maze.Position, map[maze.Position]move) {
	start := g.randomUnvisitedCellPosition(visited)
	visits := make(map[maze.Position]move)
	cell := start

	for {
		neighbors := g.neighbors(cell)
		next := neighbors[g.rng.Intn(len(neighbors))]
		visits[cell] = next
		if _, included := visited[key(next.to)]; included {
			break
		}
		cell = next.to
	}

	return start, visits
}

// carve builds the spanning tree with Wilson's algorithm.
func (g *grid) carve() {
	visited := make(map[string]struct{})
	visited[key(g.randomCellPosition())] = struct{}{}

	for len(visited) < g.rows*g.cols {
		cell, visits := g.randomWalk(visited)
		for {
			m := visits[cell]
			g.openWall(m)
			visited[key(cell)] = struct{}{}
			if _, included := visited[key(m.to)]; included {
				break
			}
			cell = m.to
		}
	}
}
