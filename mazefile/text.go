// Package mazefile reads and writes Alice maze descriptions.
//
// The text format is line oriented:
//
//	row, col                      start
//	row, col                      goal
//	row, col, color, dir, dir...  one line per cell
//
// Fields are separated by commas. A YAML document with the same content is
// also supported.
package mazefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beka-birhanu/alice-maze/maze"
)

// ErrMalformedLine is returned for a line that does not follow the format.
var ErrMalformedLine = errors.New("malformed line")

// Parse reads a maze in the text format. Blank lines are skipped.
func Parse(r io.Reader) (*maze.Maze, error) {
	scanner := bufio.NewScanner(r)
	var (
		m          *maze.Maze
		start      maze.Position
		lineNumber int
		records    int
	)

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := splitFields(line)

		switch records {
		case 0:
			p, err := parsePosition(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: start: %w", lineNumber, err)
			}
			start = p
		case 1:
			goal, err := parsePosition(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: goal: %w", lineNumber, err)
			}
			m = maze.New(start, goal)
		default:
			cell, err := parseCell(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			if err := m.AddCell(cell); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
		}
		records++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading maze: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: missing start or goal line", ErrMalformedLine)
	}

	return m, nil
}

// Write emits m in the text format.
func Write(w io.Writer, m *maze.Maze) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d, %d\n", m.Start.Row, m.Start.Col)
	fmt.Fprintf(bw, "%d, %d\n", m.Goal.Row, m.Goal.Col)
	for _, cell := range m.Cells() {
		fields := []string{strconv.Itoa(cell.Row), strconv.Itoa(cell.Col), string(cell.Color)}
		for _, dir := range cell.Exits {
			fields = append(fields, dir.String())
		}
		fmt.Fprintln(bw, strings.Join(fields, ", "))
	}
	return bw.Flush()
}

// Load reads a maze file, choosing the codec by extension: .yaml and .yml
// are YAML documents, anything else is the text format.
func Load(path string) (*maze.Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return Parse(f)
	}
}

func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func parsePosition(fields []string) (maze.Position, error) {
	if len(fields) != 2 {
		return maze.Position{}, fmt.Errorf("%w: want \"row, col\", got %d fields", ErrMalformedLine, len(fields))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return maze.Position{}, fmt.Errorf("%w: row %q", ErrMalformedLine, fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return maze.Position{}, fmt.Errorf("%w: column %q", ErrMalformedLine, fields[1])
	}
	return maze.Position{Row: row, Col: col}, nil
}

func parseCell(fields []string) (maze.Cell, error) {
	if len(fields) < 3 {
		return maze.Cell{}, fmt.Errorf("%w: want \"row, col, color[, dir...]\", got %d fields", ErrMalformedLine, len(fields))
	}
	p, err := parsePosition(fields[:2])
	if err != nil {
		return maze.Cell{}, err
	}
	if fields[2] == "" {
		return maze.Cell{}, fmt.Errorf("%w: empty color", ErrMalformedLine)
	}

	cell := maze.Cell{Position: p, Color: maze.Color(fields[2])}
	for _, token := range fields[3:] {
		dir, err := maze.ParseDirection(token)
		if err != nil {
			return maze.Cell{}, err
		}
		cell.Exits = append(cell.Exits, dir)
	}
	return cell, nil
}
