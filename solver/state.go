package solver

import (
	"fmt"

	"github.com/beka-birhanu/alice-maze/maze"
)

// State is a node of the search graph: the step size in effect on arrival at
// a position.
type State struct {
	Step int
	Row  int
	Col  int
}

// Position drops the step size.
func (s State) Position() maze.Position {
	return maze.Position{Row: s.Row, Col: s.Col}
}

func (s State) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.Step, s.Row, s.Col)
}

// Distance is a hop count from the start state that may still be unknown.
type Distance struct {
	hops  uint32
	known bool
}

// Unknown is the distance of a state that has not been discovered.
func Unknown() Distance {
	return Distance{}
}

// Hops returns a known distance of n edges.
func Hops(n uint32) Distance {
	return Distance{hops: n, known: true}
}

// Value returns the hop count and whether it is known.
func (d Distance) Value() (uint32, bool) {
	return d.hops, d.known
}

// Known reports whether the state has been discovered.
func (d Distance) Known() bool {
	return d.known
}

// Parent is the optional predecessor of a state on its shortest path.
type Parent struct {
	state State
	ok    bool
}

// NoParent is the parent of the start state and of undiscovered states.
func NoParent() Parent {
	return Parent{}
}

// ParentOf wraps a predecessor state.
func ParentOf(s State) Parent {
	return Parent{state: s, ok: true}
}

// Value returns the predecessor and whether there is one.
func (p Parent) Value() (State, bool) {
	return p.state, p.ok
}
