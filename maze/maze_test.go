package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	for _, dir := range Directions {
		got, err := ParseDirection(dir.String())
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	}

	_, err := ParseDirection("up")
	assert.ErrorIs(t, err, ErrUnknownDirection)

	_, err = ParseDirection("North")
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestDirectionOffset(t *testing.T) {
	tests := []struct {
		dir        Direction
		step       int
		dRow, dCol int
	}{
		{North, 1, -1, 0},
		{East, 2, 0, 2},
		{South, 3, 3, 0},
		{West, 1, 0, -1},
		{Northeast, 2, -2, 2},
		{Southeast, 1, 1, 1},
		{Southwest, 4, 4, -4},
		{Northwest, 2, -2, -2},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dRow, dCol := tc.dir.Offset(tc.step)
			assert.Equal(t, tc.dRow, dRow)
			assert.Equal(t, tc.dCol, dCol)
		})
	}

	assert.False(t, Direction(8).Valid())
	assert.Equal(t, "Direction(8)", Direction(8).String())
}

func TestColorDelta(t *testing.T) {
	assert.Equal(t, 1, Red.Delta())
	assert.Equal(t, -1, Yellow.Delta())
	assert.Equal(t, 0, Neutral.Delta())
	assert.Equal(t, 0, Color("green").Delta())
}

func TestMaze(t *testing.T) {
	t.Run("Rejects duplicate identity", func(t *testing.T) {
		m := New(Position{}, Position{})
		require.NoError(t, m.AddCell(Cell{Position: Position{1, 1}, Color: Red}))
		err := m.AddCell(Cell{Position: Position{1, 1}, Color: Red, Exits: []Direction{East}})
		assert.ErrorIs(t, err, ErrDuplicateCell)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("Color is part of the identity", func(t *testing.T) {
		m := New(Position{}, Position{})
		require.NoError(t, m.AddCell(Cell{Position: Position{1, 1}, Color: Red}))
		require.NoError(t, m.AddCell(Cell{Position: Position{1, 1}, Color: Yellow, Exits: []Direction{West}}))
		assert.Equal(t, 2, m.Len())

		c, ok := m.Cell(CellKey{Row: 1, Col: 1, Color: Red})
		require.True(t, ok)
		assert.Empty(t, c.Exits)

		last, ok := m.CellAt(Position{1, 1})
		require.True(t, ok)
		assert.Equal(t, Yellow, last.Color)
	})

	t.Run("Exits are copied", func(t *testing.T) {
		exits := []Direction{North}
		m := New(Position{}, Position{})
		require.NoError(t, m.AddCell(Cell{Exits: exits}))
		exits[0] = South

		c, _ := m.CellAt(Position{})
		assert.True(t, c.HasExit(North))
		assert.False(t, c.HasExit(South))
	})

	t.Run("Bounds and String", func(t *testing.T) {
		m := New(Position{0, 0}, Position{1, 2})
		require.NoError(t, m.AddCell(Cell{Position: Position{0, 0}, Color: Neutral}))
		require.NoError(t, m.AddCell(Cell{Position: Position{0, 2}, Color: Red}))
		require.NoError(t, m.AddCell(Cell{Position: Position{1, 2}, Color: Yellow}))

		lo, hi := m.Bounds()
		assert.Equal(t, Position{0, 0}, lo)
		assert.Equal(t, Position{1, 2}, hi)
		assert.Equal(t, "[.S][##][R ]\n[##][##][YG]\n", m.String())
	})

	t.Run("Empty maze", func(t *testing.T) {
		assert.Equal(t, "", New(Position{}, Position{}).String())
	})
}
