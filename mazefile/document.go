package mazefile

import (
	"fmt"
	"io"

	"github.com/beka-birhanu/alice-maze/maze"
	"gopkg.in/yaml.v3"
)

// CellDocument is the serialized form of a cell.
type CellDocument struct {
	Row   int      `json:"row" yaml:"row"`
	Col   int      `json:"col" yaml:"col"`
	Color string   `json:"color" yaml:"color"`
	Exits []string `json:"exits,omitempty" yaml:"exits,omitempty"`
}

// Document is the serialized form of a maze shared by the YAML codec and the
// HTTP API.
type Document struct {
	Start [2]int         `json:"start" yaml:"start"`
	Goal  [2]int         `json:"goal" yaml:"goal"`
	Cells []CellDocument `json:"cells" yaml:"cells" binding:"required"`
}

// Maze converts the document, validating every direction token.
func (d *Document) Maze() (*maze.Maze, error) {
	if len(d.Cells) == 0 {
		return nil, fmt.Errorf("%w: maze has no cells", ErrMalformedLine)
	}
	m := maze.New(
		maze.Position{Row: d.Start[0], Col: d.Start[1]},
		maze.Position{Row: d.Goal[0], Col: d.Goal[1]},
	)
	for i, c := range d.Cells {
		if c.Color == "" {
			return nil, fmt.Errorf("cell %d: %w: empty color", i, ErrMalformedLine)
		}
		cell := maze.Cell{
			Position: maze.Position{Row: c.Row, Col: c.Col},
			Color:    maze.Color(c.Color),
		}
		for _, token := range c.Exits {
			dir, err := maze.ParseDirection(token)
			if err != nil {
				return nil, fmt.Errorf("cell %d: %w", i, err)
			}
			cell.Exits = append(cell.Exits, dir)
		}
		if err := m.AddCell(cell); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
	}
	return m, nil
}

// NewDocument converts a maze to its serialized form.
func NewDocument(m *maze.Maze) *Document {
	d := &Document{
		Start: [2]int{m.Start.Row, m.Start.Col},
		Goal:  [2]int{m.Goal.Row, m.Goal.Col},
		Cells: make([]CellDocument, 0, m.Len()),
	}
	for _, cell := range m.Cells() {
		c := CellDocument{Row: cell.Row, Col: cell.Col, Color: string(cell.Color)}
		for _, dir := range cell.Exits {
			c.Exits = append(c.Exits, dir.String())
		}
		d.Cells = append(d.Cells, c)
	}
	return d
}

// DecodeYAML reads a maze from a YAML document.
func DecodeYAML(r io.Reader) (*maze.Maze, error) {
	var d Document
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding yaml maze: %w", err)
	}
	return d.Maze()
}

// EncodeYAML writes m as a YAML document.
func EncodeYAML(w io.Writer, m *maze.Maze) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(m)); err != nil {
		return fmt.Errorf("encoding yaml maze: %w", err)
	}
	return enc.Close()
}
