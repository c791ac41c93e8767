// Package solver finds shortest paths through Alice mazes.
//
// The search runs breadth first over (step, row, column) states. The
// adjacency relation for a step size is built the first time the search
// needs it and stays cached for the rest of the run.
package solver

import (
	"errors"
	"fmt"
	"io"

	"github.com/beka-birhanu/alice-maze/maze"
	"github.com/sirupsen/logrus"
)

// Search errors.
var (
	ErrStartNotInMaze = errors.New("start position is not a cell of the maze")
	ErrStepLimit      = errors.New("step size limit exceeded")
)

// Option configures FindPath.
type Option func(*options)

type options struct {
	maxStepSizes int
	logger       logrus.FieldLogger
}

// WithStepLimit bounds the number of distinct step sizes the search may
// materialize. Zero or less means unbounded.
func WithStepLimit(n int) Option {
	return func(o *options) {
		o.maxStepSizes = n
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// node is the cached per-state record. All fields are seeded when the
// state's step size is materialized.
type node struct {
	neighbors []State
	color     maze.Color
	distance  Distance
	parent    Parent
}

type search struct {
	maze   *maze.Maze
	opts   options
	nodes  map[State]*node
	steps  []int
	seen   map[int]bool
	queue  []State
	result Result
}

// FindPath returns a shortest sequence of moves from start to goal. A maze
// with no route yields a Result whose Solved field is false; errors are
// reserved for malformed input and the optional step limit.
func FindPath(m *maze.Maze, start, goal maze.Position, opts ...Option) (Result, error) {
	o := options{logger: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &search{
		maze:  m,
		opts:  o,
		nodes: make(map[State]*node),
		seen:  make(map[int]bool),
	}
	return s.run(start, goal)
}

func (s *search) run(start, goal maze.Position) (Result, error) {
	if err := s.materialize(1); err != nil {
		return Result{}, err
	}

	origin := State{Step: 1, Row: start.Row, Col: start.Col}
	first, ok := s.nodes[origin]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrStartNotInMaze, start)
	}
	first.distance = Hops(0)

	if start == goal {
		s.result.Solved = true
		s.result.Path = []maze.Position{start}
		s.result.StepSizes = s.steps
		return s.result, nil
	}

	s.queue = append(s.queue, origin)
	success, found := State{}, false

	for len(s.queue) > 0 && !found {
		cur := s.queue[0]
		s.queue = s.queue[1:]
		s.result.Expanded++

		curNode := s.nodes[cur]
		step := cur.Step + curNode.color.Delta()
		if step <= 0 {
			continue
		}
		if err := s.materialize(step); err != nil {
			return Result{}, err
		}

		hops, _ := curNode.distance.Value()
		for _, nbr := range s.nodes[State{Step: step, Row: cur.Row, Col: cur.Col}].neighbors {
			next, ok := s.nodes[nbr]
			if !ok || next.distance.Known() {
				continue
			}
			next.distance = Hops(hops + 1)
			next.parent = ParentOf(cur)
			s.queue = append(s.queue, nbr)
			if nbr.Position() == goal {
				success, found = nbr, true
			}
		}
	}

	s.result.StepSizes = s.steps
	if !found {
		s.opts.logger.WithField("expanded", s.result.Expanded).Debug("search exhausted without reaching the goal")
		return s.result, nil
	}

	s.result.Solved = true
	s.result.Path = s.trace(success)
	s.result.Length = len(s.result.Path) - 1
	return s.result, nil
}

// materialize builds the graph for a step size the first time it is needed
// and merges its states into the cache.
func (s *search) materialize(step int) error {
	if s.seen[step] {
		return nil
	}
	if s.opts.maxStepSizes > 0 && len(s.steps) >= s.opts.maxStepSizes {
		return fmt.Errorf("%w: step %d would be size number %d", ErrStepLimit, step, len(s.steps)+1)
	}

	g, err := BuildGraph(s.maze, step)
	if err != nil {
		return fmt.Errorf("building graph for step %d: %w", step, err)
	}

	for _, st := range g.States() {
		if _, exists := s.nodes[st]; exists {
			continue
		}
		color, _ := g.Color(st)
		s.nodes[st] = &node{
			neighbors: g.Neighbors(st),
			color:     color,
			distance:  Unknown(),
			parent:    NoParent(),
		}
	}
	s.seen[step] = true
	s.steps = append(s.steps, step)

	s.opts.logger.WithFields(logrus.Fields{
		"step":   step,
		"states": len(g.States()),
	}).Debug("materialized step size")
	return nil
}

// trace walks parent pointers back to the start state.
func (s *search) trace(end State) []maze.Position {
	var reversed []maze.Position
	cur := end
	for {
		reversed = append(reversed, cur.Position())
		hops, _ := s.nodes[cur].distance.Value()
		if hops == 0 {
			break
		}
		cur, _ = s.nodes[cur].parent.Value()
	}

	path := make([]maze.Position, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path
}
