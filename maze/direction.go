package maze

import (
	"errors"
	"fmt"
)

// ErrUnknownDirection is returned when a direction token is not one of the
// eight compass names.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction is one of the eight compass exits a cell may list.
type Direction uint8

// The declaration order is the neighbor expansion order.
const (
	North Direction = iota
	East
	South
	West
	Northeast
	Southeast
	Southwest
	Northwest
)

var directionNames = [...]string{
	North:     "north",
	East:      "east",
	South:     "south",
	West:      "west",
	Northeast: "northeast",
	Southeast: "southeast",
	Southwest: "southwest",
	Northwest: "northwest",
}

// Unit row/column deltas per direction. Rows grow southwards.
var directionDeltas = [...]Position{
	North:     {Row: -1, Col: 0},
	East:      {Row: 0, Col: 1},
	South:     {Row: 1, Col: 0},
	West:      {Row: 0, Col: -1},
	Northeast: {Row: -1, Col: 1},
	Southeast: {Row: 1, Col: 1},
	Southwest: {Row: 1, Col: -1},
	Northwest: {Row: -1, Col: -1},
}

// Directions lists every direction in expansion order.
var Directions = []Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

// ParseDirection maps a lowercase compass name to its Direction.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Valid reports whether d is one of the eight compass directions.
func (d Direction) Valid() bool {
	return int(d) < len(directionNames)
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Offset returns the row and column displacement of a move of the given step
// size in this direction.
func (d Direction) Offset(step int) (int, int) {
	delta := directionDeltas[d]
	return delta.Row * step, delta.Col * step
}
