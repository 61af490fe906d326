package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GridNotebook/internal/config"
	"GridNotebook/internal/notebook"
	"GridNotebook/internal/state"
)

func newTestBoard(t *testing.T) (*BoardWidget, *notebook.Session) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	s := notebook.New(config.Default())
	b := NewBoardWidget(s)
	b.Resize(fyne.NewSize(200, 120))
	return b, s
}

func press(pos fyne.Position) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: pos},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(pos fyne.Position) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: pos}}
}

func lines(b *BoardWidget) int {
	n := 0
	for _, o := range test.WidgetRenderer(b).Objects() {
		if _, ok := o.(*canvas.Line); ok {
			n++
		}
	}
	return n
}

func TestBoardWidget_ResizeSetsViewport(t *testing.T) {
	_, s := newTestBoard(t)
	assert.Equal(t, state.Rect{Width: 200, Height: 120}, s.View())
}

func TestBoardWidget_GestureCreatesStroke(t *testing.T) {
	b, s := newTestBoard(t)
	gridLines := lines(b)
	require.NotZero(t, gridLines)

	b.MouseDown(press(fyne.NewPos(10, 10)))
	b.Dragged(drag(fyne.NewPos(20, 10)))
	b.Dragged(drag(fyne.NewPos(20, 20)))
	assert.Equal(t, gridLines+2, lines(b), "active stroke should be previewed")
	b.MouseUp(press(fyne.NewPos(20, 20)))
	b.DragEnd()

	require.Equal(t, 1, s.Drawing().Len())
	assert.Equal(t, gridLines+2, lines(b))

	s.Undo()
	assert.Equal(t, gridLines, lines(b))
}

func TestBoardWidget_ScrollMovesView(t *testing.T) {
	b, s := newTestBoard(t)
	b.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DX: 0, DY: -80}})
	assert.Equal(t, 80.0, s.View().Y)

	b.MouseDown(press(fyne.NewPos(5, 5)))
	b.Dragged(drag(fyne.NewPos(15, 5)))
	b.DragEnd()

	seg := s.Drawing().Snapshot()[0].Segments[0]
	assert.Equal(t, state.Point{X: 5, Y: 85}, seg.Points[0])
}
