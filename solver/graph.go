package solver

import (
	"fmt"

	"github.com/beka-birhanu/alice-maze/maze"
)

// Graph is the directed adjacency relation among the cells of a maze for one
// step size. Neighbor lists are raw: they may name coordinates that hold no
// cell, and callers filter those out with Has.
type Graph struct {
	step      int
	order     []State
	neighbors map[State][]State
	colors    map[State]maze.Color
}

// BuildGraph computes the adjacency relation of m for moves of exactly step
// units. For every cell and every listed exit it records the state reached by
// scaling the exit's unit offset by step. When several cells share a
// position the last one described defines the state.
func BuildGraph(m *maze.Maze, step int) (*Graph, error) {
	g := &Graph{
		step:      step,
		neighbors: make(map[State][]State, m.Len()),
		colors:    make(map[State]maze.Color, m.Len()),
	}

	for _, cell := range m.Cells() {
		node := State{Step: step, Row: cell.Row, Col: cell.Col}
		if _, seen := g.neighbors[node]; !seen {
			g.order = append(g.order, node)
		}

		adj := make([]State, 0, len(cell.Exits))
		for _, dir := range cell.Exits {
			if !dir.Valid() {
				return nil, fmt.Errorf("cell (%d, %d): %w: %s", cell.Row, cell.Col, maze.ErrUnknownDirection, dir)
			}
			dRow, dCol := dir.Offset(step)
			adj = append(adj, State{Step: step, Row: cell.Row + dRow, Col: cell.Col + dCol})
		}
		g.neighbors[node] = adj
		g.colors[node] = cell.Color
	}

	return g, nil
}

// Step returns the step size the graph was built for.
func (g *Graph) Step() int {
	return g.step
}

// States returns every state of the graph in cell description order.
func (g *Graph) States() []State {
	return g.order
}

// Has reports whether a cell exists at the state's position.
func (g *Graph) Has(s State) bool {
	_, ok := g.neighbors[s]
	return ok
}

// Neighbors returns the raw neighbor list of s.
func (g *Graph) Neighbors(s State) []State {
	return g.neighbors[s]
}

// Color returns the color tag of the cell behind s.
func (g *Graph) Color(s State) (maze.Color, bool) {
	c, ok := g.colors[s]
	return c, ok
}
