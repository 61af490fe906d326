package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GridNotebook/internal/state"
)

func TestLines_FortyBy120(t *testing.T) {
	lines := Lines(40, 120)
	require.Len(t, lines, 6)

	want := []Line{
		{X1: 0, Y1: 0, X2: 0, Y2: 120},
		{X1: 40, Y1: 0, X2: 40, Y2: 120},
		{X1: 80, Y1: 0, X2: 80, Y2: 120},
		{X1: 0, Y1: 0, X2: 120, Y2: 0},
		{X1: 0, Y1: 40, X2: 120, Y2: 40},
		{X1: 0, Y1: 80, X2: 120, Y2: 80},
	}
	assert.Equal(t, want, lines)
}

func TestLines_ExtentNotMultipleOfCell(t *testing.T) {
	lines := Lines(40, 100)
	require.Len(t, lines, 6)
	assert.Equal(t, 80.0, lines[2].X1)
	assert.Equal(t, 100.0, lines[2].Y2)
}

func TestLines_Deterministic(t *testing.T) {
	assert.Equal(t, Lines(40, 10000), Spec{CellSize: 40, Extent: 10000}.Lines())
	assert.Len(t, Lines(40, 10000), 2*250)
}

func TestLines_NonPositive(t *testing.T) {
	assert.Empty(t, Lines(0, 100))
	assert.Empty(t, Lines(40, 0))
}

func TestSpec_Visible(t *testing.T) {
	s := Spec{CellSize: 40, Extent: 400}
	lines := s.Visible(state.Rect{X: 100, Y: 0, Width: 60, Height: 50})

	var xs, ys []float64
	for _, l := range lines {
		if l.Vertical() {
			xs = append(xs, l.X1)
		} else {
			ys = append(ys, l.Y1)
		}
	}
	assert.Equal(t, []float64{120, 160}, xs)
	assert.Equal(t, []float64{0, 40}, ys)
}

func TestSpec_VisibleMatchesFilteredLines(t *testing.T) {
	s := Spec{CellSize: 40, Extent: 1000}
	views := []state.Rect{
		{X: 0, Y: 0, Width: 600, Height: 400},
		{X: 37.5, Y: 81, Width: 123, Height: 79},
		{X: 800, Y: 900, Width: 600, Height: 400},
		{X: -50, Y: -50, Width: 30, Height: 30},
		{X: 2000, Y: 2000, Width: 10, Height: 10},
	}
	for _, view := range views {
		var want []Line
		for _, l := range s.Lines() {
			pos, lo, hi := l.Y1, view.Y, view.Y+view.Height
			if l.Vertical() {
				pos, lo, hi = l.X1, view.X, view.X+view.Width
			}
			if pos >= lo && pos <= hi {
				want = append(want, l)
			}
		}
		got := s.Visible(view)
		if len(want) == 0 {
			assert.Empty(t, got, "view %+v", view)
			continue
		}
		assert.Equal(t, want, got, "view %+v", view)
	}
}

func TestSpec_VisibleStopsBelowExtent(t *testing.T) {
	s := Spec{CellSize: 40, Extent: 120}
	lines := s.Visible(state.Rect{X: 0, Y: 0, Width: 200, Height: 200})
	assert.Equal(t, s.Lines(), lines)
}
