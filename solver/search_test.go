package solver

import (
	"testing"

	"github.com/beka-birhanu/alice-maze/generate"
	"github.com/beka-birhanu/alice-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCell struct {
	row, col int
	color    maze.Color
	exits    []maze.Direction
}

func newMaze(t *testing.T, start, goal maze.Position, cells ...testCell) *maze.Maze {
	t.Helper()
	m := maze.New(start, goal)
	for _, c := range cells {
		require.NoError(t, m.AddCell(maze.Cell{
			Position: maze.Position{Row: c.row, Col: c.col},
			Color:    c.color,
			Exits:    c.exits,
		}))
	}
	return m
}

func pos(row, col int) maze.Position {
	return maze.Position{Row: row, Col: col}
}

func TestFindPath(t *testing.T) {
	t.Run("Two cells side by side", func(t *testing.T) {
		m := newMaze(t, pos(0, 0), pos(0, 1),
			testCell{0, 0, maze.Neutral, []maze.Direction{maze.East}},
			testCell{0, 1, maze.Neutral, []maze.Direction{maze.West}},
		)

		res, err := FindPath(m, m.Start, m.Goal)
		require.NoError(t, err)
		assert.True(t, res.Solved)
		assert.Equal(t, 1, res.Length)
		assert.Equal(t, []maze.Position{pos(0, 0), pos(0, 1)}, res.Path)
		assert.Equal(t, "(1, [(0, 0), (0, 1)])", res.String())
	})

	t.Run("Red start doubles the first move", func(t *testing.T) {
		m := newMaze(t, pos(0, 0), pos(0, 2),
			testCell{0, 0, maze.Red, []maze.Direction{maze.East}},
			testCell{0, 2, maze.Neutral, nil},
		)

		res, err := FindPath(m, m.Start, m.Goal)
		require.NoError(t, err)
		require.True(t, res.Solved)
		assert.Equal(t, 1, res.Length)
		assert.Equal(t, []maze.Position{pos(0, 0), pos(0, 2)}, res.Path)
		assert.Equal(t, []int{1, 2}, res.StepSizes)
	})

	t.Run("Start without exits", func(t *testing.T) {
		m := newMaze(t, pos(0, 0), pos(0, 1),
			testCell{0, 0, maze.Neutral, nil},
			testCell{0, 1, maze.Neutral, []maze.Direction{maze.West}},
		)

		res, err := FindPath(m, m.Start, m.Goal)
		require.NoError(t, err)
		assert.False(t, res.Solved)
		assert.Empty(t, res.Path)
		assert.Equal(t, NoSolution, res.String())
	})

	t.Run("Start equals goal", func(t *testing.T) {
		m := newMaze(t, pos(2, 3), pos(2, 3),
			testCell{2, 3, maze.Neutral, nil},
		)

		res, err := FindPath(m, m.Start, m.Goal)
		require.NoError(t, err)
		assert.True(t, res.Solved)
		assert.Equal(t, 0, res.Length)
		assert.Equal(t, []maze.Position{pos(2, 3)}, res.Path)
		assert.Equal(t, "(0, [(2, 3)])", res.String())
	})

	t.Run("Goal is not a cell", func(t *testing.T) {
		m := newMaze(t, pos(0, 0), pos(5, 5),
			testCell{0, 0, maze.Neutral, []maze.Direction{maze.East}},
			testCell{0, 1, maze.Red, []maze.Direction{maze.West, maze.East}},
			testCell{0, 3, maze.Yellow, []maze.Direction{maze.West}},
		)

		res, err := FindPath(m, m.Start, m.Goal)
		require.NoError(t, err)
		assert.False(t, res.Solved)
	})

	t.Run("Yellow start is a dead end", func(t *testing.T) {
		m := newMaze(t, pos(0, 0), pos(0, 1),
			testCell{0, 0, maze.Yellow, []maze.Direction{maze.East}},
			testCell{0, 1, maze.Neutral, nil},
		)

		res, err := FindPath(m, m.Start, m.Goal)
		require.NoError(t, err)
		assert.False(t, res.Solved)
		assert.Equal(t, 1, res.Expanded)
	})

	t.Run("Exits pointing off the maze are ignored", func(t *testing.T) {
		m := newMaze(t, pos(0, 0), pos(1, 0),
			testCell{0, 0, maze.Neutral, []maze.Direction{maze.North, maze.West, maze.South}},
			testCell{1, 0, maze.Neutral, nil},
		)

		res, err := FindPath(m, m.Start, m.Goal)
		require.NoError(t, err)
		assert.True(t, res.Solved)
		assert.Equal(t, []maze.Position{pos(0, 0), pos(1, 0)}, res.Path)
	})

	t.Run("Ties break in direction order", func(t *testing.T) {
		m := newMaze(t, pos(1, 1), pos(0, 2),
			testCell{1, 1, maze.Neutral, []maze.Direction{maze.North, maze.East}},
			testCell{0, 1, maze.Neutral, []maze.Direction{maze.East}},
			testCell{1, 2, maze.Neutral, []maze.Direction{maze.North}},
			testCell{0, 2, maze.Neutral, nil},
		)

		res, err := FindPath(m, m.Start, m.Goal)
		require.NoError(t, err)
		require.True(t, res.Solved)
		assert.Equal(t, []maze.Position{pos(1, 1), pos(0, 1), pos(0, 2)}, res.Path)
	})

	t.Run("Step size returns after a yellow cell", func(t *testing.T) {
		// 0,0 red -> step 2 east to 0,2 yellow -> step 1 south to 1,2.
		m := newMaze(t, pos(0, 0), pos(1, 2),
			testCell{0, 0, maze.Red, []maze.Direction{maze.East}},
			testCell{0, 1, maze.Neutral, nil},
			testCell{0, 2, maze.Yellow, []maze.Direction{maze.South}},
			testCell{1, 2, maze.Neutral, nil},
		)

		res, err := FindPath(m, m.Start, m.Goal)
		require.NoError(t, err)
		require.True(t, res.Solved)
		assert.Equal(t, 2, res.Length)
		assert.Equal(t, []maze.Position{pos(0, 0), pos(0, 2), pos(1, 2)}, res.Path)
		assert.NoError(t, Validate(m, res.Path))
	})

	t.Run("Start is not a cell", func(t *testing.T) {
		m := newMaze(t, pos(9, 9), pos(0, 0),
			testCell{0, 0, maze.Neutral, nil},
		)

		_, err := FindPath(m, m.Start, m.Goal)
		assert.ErrorIs(t, err, ErrStartNotInMaze)
	})

	t.Run("Malformed direction aborts", func(t *testing.T) {
		m := newMaze(t, pos(0, 0), pos(0, 1),
			testCell{0, 0, maze.Neutral, []maze.Direction{maze.Direction(42)}},
		)

		_, err := FindPath(m, m.Start, m.Goal)
		assert.ErrorIs(t, err, maze.ErrUnknownDirection)
	})

	t.Run("Step limit", func(t *testing.T) {
		m := newMaze(t, pos(0, 0), pos(0, 2),
			testCell{0, 0, maze.Red, []maze.Direction{maze.East}},
			testCell{0, 2, maze.Neutral, nil},
		)

		_, err := FindPath(m, m.Start, m.Goal, WithStepLimit(1))
		assert.ErrorIs(t, err, ErrStepLimit)

		res, err := FindPath(m, m.Start, m.Goal, WithStepLimit(2))
		require.NoError(t, err)
		assert.True(t, res.Solved)
	})

	t.Run("Later record at a shared position wins", func(t *testing.T) {
		m := newMaze(t, pos(0, 0), pos(0, 1),
			testCell{0, 0, maze.Neutral, []maze.Direction{maze.East}},
			testCell{0, 0, maze.Color("blue"), nil},
			testCell{0, 1, maze.Neutral, nil},
		)

		res, err := FindPath(m, m.Start, m.Goal)
		require.NoError(t, err)
		assert.False(t, res.Solved)
	})
}

// bfsLength is a plain breadth-first search over positions with step size 1.
func bfsLength(m *maze.Maze, start, goal maze.Position) (int, bool) {
	dist := map[maze.Position]int{start: 0}
	queue := []maze.Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == goal {
			return dist[p], true
		}
		cell, _ := m.CellAt(p)
		for _, dir := range cell.Exits {
			dRow, dCol := dir.Offset(1)
			next := p.Add(dRow, dCol)
			if _, ok := m.CellAt(next); !ok {
				continue
			}
			if _, seen := dist[next]; !seen {
				dist[next] = dist[p] + 1
				queue = append(queue, next)
			}
		}
	}
	return 0, false
}

func TestFindPathProperties(t *testing.T) {
	t.Run("Colorless mazes match plain BFS", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			m, err := generate.New(7, 9, seed, generate.ColorModel{})
			require.NoError(t, err)

			want, ok := bfsLength(m, m.Start, m.Goal)
			require.True(t, ok)

			res, err := FindPath(m, m.Start, m.Goal)
			require.NoError(t, err)
			require.True(t, res.Solved)
			assert.Equal(t, want, res.Length, "seed %d", seed)
			assert.Equal(t, []int{1}, res.StepSizes)
		}
	})

	t.Run("Paths obey the movement rules", func(t *testing.T) {
		cm := generate.ColorModel{RedProb: 0.15, YellowProb: 0.1}
		for seed := int64(1); seed <= 40; seed++ {
			m, err := generate.New(8, 8, seed, cm)
			require.NoError(t, err)

			res, err := FindPath(m, m.Start, m.Goal)
			require.NoError(t, err)
			if !res.Solved {
				continue
			}
			assert.Equal(t, m.Start, res.Path[0])
			assert.Equal(t, m.Goal, res.Path[len(res.Path)-1])
			assert.Equal(t, len(res.Path)-1, res.Length)
			assert.NoError(t, Validate(m, res.Path), "seed %d", seed)
		}
	})

	t.Run("Repeated runs agree", func(t *testing.T) {
		m, err := generate.New(10, 10, 5, generate.ColorModel{RedProb: 0.2, YellowProb: 0.1})
		require.NoError(t, err)

		first, err := FindPath(m, m.Start, m.Goal)
		require.NoError(t, err)
		second, err := FindPath(m, m.Start, m.Goal)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Distances grow by one along parent links", func(t *testing.T) {
		m, err := generate.New(9, 9, 11, generate.ColorModel{RedProb: 0.2, YellowProb: 0.1})
		require.NoError(t, err)

		s := &search{
			maze:  m,
			opts:  options{logger: discardLogger()},
			nodes: make(map[State]*node),
			seen:  make(map[int]bool),
		}
		// An off-grid goal forces an exhaustive search.
		_, err = s.run(m.Start, pos(-1, -1))
		require.NoError(t, err)

		for st, n := range s.nodes {
			hops, known := n.distance.Value()
			parent, hasParent := n.parent.Value()
			if !known {
				assert.False(t, hasParent, "undiscovered %s has a parent", st)
				continue
			}
			if hops == 0 {
				assert.False(t, hasParent)
				continue
			}
			require.True(t, hasParent, "%s has no parent", st)
			parentHops, _ := s.nodes[parent].distance.Value()
			assert.Equal(t, parentHops+1, hops, "state %s", st)
		}
	})
}
