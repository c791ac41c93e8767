// Package render draws an Alice maze and a path through it as an image.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/beka-birhanu/alice-maze/generate"
	"github.com/beka-birhanu/alice-maze/maze"
	"github.com/yalue/image_utils"
)

// The number of pixels across a square cell. Must be at least 9.
const cellPixels = 24

const markerPixels = cellPixels / 2

// ErrTooLarge is returned when the maze bounds span more than
// generate.MaxDimension rows or columns.
var ErrTooLarge = errors.New("maze too large to render")

var (
	wallColor    = color.Black
	neutralColor = color.White
	redColor     = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	yellowColor  = color.RGBA{R: 240, G: 210, B: 40, A: 255}
	exitColor    = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	pathColor    = color.RGBA{R: 100, G: 120, B: 255, A: 255}
	startColor   = color.RGBA{R: 40, G: 180, B: 70, A: 255}
	goalColor    = color.RGBA{R: 100, G: 120, B: 255, A: 255}
)

// Image rasterizes m with path highlighted and arrows marking the start and
// the goal. Markers for a start or goal outside the maze bounds are omitted.
func Image(m *maze.Maze, path []maze.Position) (*image.RGBA, error) {
	if m.Len() == 0 {
		return nil, fmt.Errorf("cannot render an empty maze")
	}
	lo, hi := m.Bounds()
	rows, cols := hi.Row-lo.Row+1, hi.Col-lo.Col+1
	if rows > generate.MaxDimension || cols > generate.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrTooLarge, rows, cols)
	}
	width := cols * cellPixels
	height := rows * cellPixels

	base := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(base, base.Bounds(), image.NewUniform(wallColor), image.Point{}, draw.Src)

	origin := func(p maze.Position) image.Point {
		return image.Pt((p.Col-lo.Col)*cellPixels, (p.Row-lo.Row)*cellPixels)
	}
	inside := func(p maze.Position) bool {
		return p.Row >= lo.Row && p.Row <= hi.Row && p.Col >= lo.Col && p.Col <= hi.Col
	}

	for _, cell := range m.Cells() {
		tl := origin(cell.Position)
		inner := image.Rect(tl.X+1, tl.Y+1, tl.X+cellPixels-1, tl.Y+cellPixels-1)
		draw.Draw(base, inner, image.NewUniform(cellColor(cell.Color)), image.Point{}, draw.Src)
		for _, dir := range cell.Exits {
			dRow, dCol := dir.Offset(1)
			cx := tl.X + cellPixels/2 + dCol*(cellPixels/2-3)
			cy := tl.Y + cellPixels/2 + dRow*(cellPixels/2-3)
			draw.Draw(base, image.Rect(cx-1, cy-1, cx+1, cy+1), image.NewUniform(exitColor), image.Point{}, draw.Src)
		}
	}

	for _, p := range path {
		tl := origin(p)
		c := cellPixels / 2
		dot := image.Rect(tl.X+c-3, tl.Y+c-3, tl.X+c+3, tl.Y+c+3)
		draw.Draw(base, dot, image.NewUniform(pathColor), image.Point{}, draw.Src)
	}

	decorated := image_utils.NewCompositeImage()
	if e := decorated.AddImage(base, image.Pt(0, 0)); e != nil {
		return nil, fmt.Errorf("error setting base maze image: %w", e)
	}
	if inside(m.Start) {
		startArrow := image_utils.ResizeImage(image_utils.RightArrow(startColor), markerPixels, markerPixels)
		if e := decorated.AddImage(startArrow, origin(m.Start)); e != nil {
			return nil, fmt.Errorf("error adding start arrow: %w", e)
		}
	}
	if inside(m.Goal) {
		goalArrow := image_utils.ResizeImage(image_utils.DownArrow(goalColor), markerPixels, markerPixels)
		goalAt := origin(m.Goal).Add(image.Pt(cellPixels-markerPixels, cellPixels-markerPixels))
		if e := decorated.AddImage(goalArrow, goalAt); e != nil {
			return nil, fmt.Errorf("error adding goal arrow: %w", e)
		}
	}

	return image_utils.ToRGBA(decorated), nil
}

// PNG writes the rendered maze to w.
func PNG(w io.Writer, m *maze.Maze, path []maze.Position) error {
	pic, e := Image(m, path)
	if e != nil {
		return e
	}
	return png.Encode(w, pic)
}

func cellColor(c maze.Color) color.Color {
	switch c {
	case maze.Red:
		return redColor
	case maze.Yellow:
		return yellowColor
	default:
		return neutralColor
	}
}
