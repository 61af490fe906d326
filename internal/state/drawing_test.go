package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawStroke(t *testing.T, d *Drawing, color string, pts ...Point) {
	t.Helper()
	d.BeginStroke()
	for i := 1; i < len(pts); i++ {
		require.NoError(t, d.ExtendStroke(pts[i-1], pts[i], color))
	}
	d.CommitStroke()
}

func collect(d *Drawing) []Stroke {
	var out []Stroke
	for s := range d.Strokes() {
		out = append(out, s)
	}
	return out
}

func TestDrawing_RightThenDown(t *testing.T) {
	d := NewDrawing()
	drawStroke(t, d, "red", Point{10, 10}, Point{20, 10}, Point{20, 20})

	strokes := collect(d)
	require.Len(t, strokes, 1)
	require.Len(t, strokes[0].Segments, 2)
	assert.Equal(t, Segment{Points: []Point{{10, 10}, {20, 10}}, Color: "red"}, strokes[0].Segments[0])
	assert.Equal(t, Segment{Points: []Point{{20, 10}, {20, 20}}, Color: "red"}, strokes[0].Segments[1])

	_, ok := d.UndoLast()
	assert.True(t, ok)
	assert.Equal(t, 0, d.Len())
}

func TestDrawing_SegmentCountMatchesExtendCalls(t *testing.T) {
	for _, n := range []int{1, 2, 7, 250} {
		d := NewDrawing()
		d.BeginStroke()
		for i := 0; i < n; i++ {
			require.NoError(t, d.ExtendStroke(Point{float64(i), 0}, Point{float64(i + 1), 0}, "black"))
		}
		s, ok := d.CommitStroke()
		require.True(t, ok)
		require.Equal(t, n, s.Len())
		for i, seg := range s.Segments {
			assert.Equal(t, float64(i), seg.Points[0].X, "segment %d out of order", i)
		}
	}
}

func TestDrawing_EmptyCommitIsDropped(t *testing.T) {
	d := NewDrawing()
	d.BeginStroke()
	_, ok := d.CommitStroke()
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.InProgress())
}

func TestDrawing_CommitWithoutActiveIsNoop(t *testing.T) {
	d := NewDrawing()
	drawStroke(t, d, "blue", Point{0, 0}, Point{1, 1})
	_, ok := d.CommitStroke()
	assert.False(t, ok)
	assert.Equal(t, 1, d.Len())
}

func TestDrawing_ExtendWithoutBegin(t *testing.T) {
	d := NewDrawing()
	err := d.ExtendStroke(Point{0, 0}, Point{1, 1}, "red")
	assert.ErrorIs(t, err, ErrNoActiveStroke)
	assert.Equal(t, 0, d.Len())
}

func TestDrawing_BeginWhileActiveKeepsStroke(t *testing.T) {
	d := NewDrawing()
	d.BeginStroke()
	require.NoError(t, d.ExtendStroke(Point{0, 0}, Point{1, 0}, "red"))
	d.BeginStroke()
	require.NoError(t, d.ExtendStroke(Point{1, 0}, Point{2, 0}, "red"))
	s, ok := d.CommitStroke()
	require.True(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestDrawing_UndoKeepsEarlierStrokes(t *testing.T) {
	d := NewDrawing()
	drawStroke(t, d, "red", Point{0, 0}, Point{5, 5}, Point{9, 1})
	first := collect(d)[0].Clone()
	drawStroke(t, d, "green", Point{3, 3}, Point{4, 4})

	removed, ok := d.UndoLast()
	require.True(t, ok)
	assert.Equal(t, "green", removed.Segments[0].Color)

	strokes := collect(d)
	require.Len(t, strokes, 1)
	assert.Equal(t, first, strokes[0])
}

func TestDrawing_UndoOnEmpty(t *testing.T) {
	d := NewDrawing()
	_, ok := d.UndoLast()
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
}

func TestDrawing_StrokesIsLive(t *testing.T) {
	d := NewDrawing()
	seq := d.Strokes()
	drawStroke(t, d, "red", Point{0, 0}, Point{1, 1})

	n := 0
	for range seq {
		n++
	}
	assert.Equal(t, 1, n)

	drawStroke(t, d, "red", Point{2, 2}, Point{3, 3})
	n = 0
	for range seq {
		n++
	}
	assert.Equal(t, 2, n)
}

func TestDrawing_SnapshotIsIndependent(t *testing.T) {
	d := NewDrawing()
	drawStroke(t, d, "red", Point{0, 0}, Point{1, 1})
	snap := d.Snapshot()
	snap[0].Segments[0].Points[0].X = 99
	snap[0].Segments[0].Color = "blue"

	live := collect(d)
	assert.Equal(t, 0.0, live[0].Segments[0].Points[0].X)
	assert.Equal(t, "red", live[0].Segments[0].Color)
}

func TestDrawing_ClearAndReplace(t *testing.T) {
	d := NewDrawing()
	drawStroke(t, d, "red", Point{0, 0}, Point{1, 1})
	d.BeginStroke()
	d.Clear()
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.InProgress())

	d.Replace([]Stroke{
		{Segments: []Segment{{Points: []Point{{1, 2}, {3, 4}}, Color: "pink"}}},
		{},
		{Segments: []Segment{{Points: []Point{{5, 6}, {7, 8}, {9, 10}}, Color: "brown"}}},
	})
	strokes := collect(d)
	require.Len(t, strokes, 2)
	assert.Equal(t, "pink", strokes[0].Segments[0].Color)
	assert.Equal(t, "brown", strokes[1].Segments[0].Color)
}

func TestStroke_Bounds(t *testing.T) {
	s := Stroke{Segments: []Segment{
		{Points: []Point{{10, 10}, {20, 10}}},
		{Points: []Point{{20, 10}, {20, 30}}},
	}}
	r, ok := s.Bounds(1)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 9, Y: 9, Width: 12, Height: 22}, r)

	_, ok = Stroke{}.Bounds(1)
	assert.False(t, ok)
}

func TestRect_Overlaps(t *testing.T) {
	view := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	assert.True(t, view.Overlaps(Rect{X: 50, Y: 50, Width: 10, Height: 10}))
	assert.True(t, view.Overlaps(Rect{X: -5, Y: -5, Width: 10, Height: 10}))
	assert.False(t, view.Overlaps(Rect{X: 200, Y: 0, Width: 10, Height: 10}))
	assert.True(t, view.Contains(Point{100, 100}))
	assert.False(t, view.Contains(Point{100.5, 0}))
}

func TestRect_ClipLine(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 50}

	a, b, ok := r.ClipLine(Point{-50, 25}, Point{150, 25})
	require.True(t, ok)
	assert.Equal(t, Point{0, 25}, a)
	assert.Equal(t, Point{100, 25}, b)

	a, b, ok = r.ClipLine(Point{10, 10}, Point{20, 20})
	require.True(t, ok)
	assert.Equal(t, Point{10, 10}, a)
	assert.Equal(t, Point{20, 20}, b)

	_, _, ok = r.ClipLine(Point{-10, -10}, Point{-1, 60})
	assert.False(t, ok)

	_, _, ok = r.ClipLine(Point{200, 10}, Point{300, 10})
	assert.False(t, ok)
}
