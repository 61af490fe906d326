// Package grid computes the background reference lines of the notebook.
//
// The same lines are used by the on-screen board and by the exporters, so an
// exported image shows exactly the grid the user drew on.
package grid

import (
	"math"

	"GridNotebook/internal/state"
)

// Spec is the grid for one session. It is derived from configuration and never saved with a drawing.
type Spec struct {
	CellSize int
	Extent   int
}

// Line is a straight grid line from (X1,Y1) to (X2,Y2).
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Vertical reports whether the line runs top to bottom.
func (l Line) Vertical() bool { return l.X1 == l.X2 }

// Lines returns vertical lines at x = 0, cellSize, 2*cellSize, ... below extent, followed by
// horizontal lines at the same offsets. Every line spans 0..extent.
// Callers pass positive values; anything else yields no lines.
func Lines(cellSize, extent int) []Line {
	if cellSize <= 0 || extent <= 0 {
		return nil
	}
	n := (extent + cellSize - 1) / cellSize
	lines := make([]Line, 0, 2*n)
	e := float64(extent)
	for i := 0; i < extent; i += cellSize {
		x := float64(i)
		lines = append(lines, Line{X1: x, Y1: 0, X2: x, Y2: e})
	}
	for i := 0; i < extent; i += cellSize {
		y := float64(i)
		lines = append(lines, Line{X1: 0, Y1: y, X2: e, Y2: y})
	}
	return lines
}

// Lines is Lines(s.CellSize, s.Extent).
func (s Spec) Lines() []Line { return Lines(s.CellSize, s.Extent) }

// Visible returns the grid lines that cross the viewport, in the same order as
// Lines. Only the indices inside view are generated.
func (s Spec) Visible(view state.Rect) []Line {
	if s.CellSize <= 0 || s.Extent <= 0 {
		return nil
	}
	e := float64(s.Extent)
	xFirst, xLast := s.indexRange(view.X, view.X+view.Width)
	yFirst, yLast := s.indexRange(view.Y, view.Y+view.Height)

	out := make([]Line, 0, max(0, xLast-xFirst+1)+max(0, yLast-yFirst+1))
	for i := xFirst; i <= xLast; i++ {
		x := float64(i * s.CellSize)
		out = append(out, Line{X1: x, Y1: 0, X2: x, Y2: e})
	}
	for i := yFirst; i <= yLast; i++ {
		y := float64(i * s.CellSize)
		out = append(out, Line{X1: 0, Y1: y, X2: e, Y2: y})
	}
	return out
}

// indexRange gives the first and last line index with lo <= i*CellSize <= hi,
// limited to lines below Extent. first > last when there are none.
func (s Spec) indexRange(lo, hi float64) (first, last int) {
	cell := float64(s.CellSize)
	first = max(0, int(math.Ceil(lo/cell)))
	last = min((s.Extent-1)/s.CellSize, int(math.Floor(hi/cell)))
	return first, last
}

// Bounds is the full drawable area.
func (s Spec) Bounds() state.Rect {
	e := float64(s.Extent)
	return state.Rect{Width: e, Height: e}
}
