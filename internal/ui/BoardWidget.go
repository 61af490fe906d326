package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"GridNotebook/internal/export"
	"GridNotebook/internal/notebook"
	"GridNotebook/internal/palette"
	"GridNotebook/internal/state"
)

// BoardWidget is the scrollable drawing surface. It holds no drawing state of
// its own: pointer input goes to the session and every refresh redraws the
// visible part of the session's drawing.
type BoardWidget struct {
	widget.BaseWidget
	session *notebook.Session
	style   export.Style
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(s *notebook.Session) *BoardWidget {
	b := &BoardWidget{
		session: s,
		style:   export.StyleFor(s.Config),
	}
	b.ExtendBaseWidget(b)
	s.OnChange = b.Refresh
	return b
}

func (b *BoardWidget) canvasPoint(pos fyne.Position) state.Point {
	return b.session.ScreenToCanvas(float64(pos.X), float64(pos.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.session.PointerDown(b.canvasPoint(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.session.PointerUp()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.session.PointerMove(b.canvasPoint(e.Position))
}

// DragEnd may arrive instead of MouseUp when the pointer leaves the window;
// PointerUp is a no-op the second time.
func (b *BoardWidget) DragEnd() {
	b.session.PointerUp()
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.session.ScrollBy(float64(-e.Scrolled.DX), float64(-e.Scrolled.DY))
}

// Resize keeps the session's viewport in step with the widget, so exports
// capture exactly what is on screen.
func (b *BoardWidget) Resize(size fyne.Size) {
	b.session.Resize(float64(size.Width), float64(size.Height))
	b.BaseWidget.Resize(size)
	b.Refresh()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(palette.MustParse(b.session.Config.Background))
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

// addLine appends the part of a→b that falls inside the view. Lines are
// clipped here because the widget's children are not clipped to its bounds.
func (r *boardWidgetRenderer) addLine(c color.Color, width float64, a, b state.Point, view state.Rect) {
	a, b, ok := view.ClipLine(a, b)
	if !ok {
		return
	}
	s := r.board.session
	l := canvas.NewLine(c)
	l.StrokeWidth = float32(width)
	x1, y1 := s.CanvasToScreen(a)
	x2, y2 := s.CanvasToScreen(b)
	l.Position1 = fyne.NewPos(float32(x1), float32(y1))
	l.Position2 = fyne.NewPos(float32(x2), float32(y2))
	r.objects = append(r.objects, l)
}

func (r *boardWidgetRenderer) addStroke(st state.Stroke, view state.Rect) {
	pad := max(r.board.style.StrokeWidth, r.board.style.EraserWidth)
	if b, ok := st.Bounds(pad); !ok || !b.Overlaps(view) {
		return
	}
	for _, seg := range st.Segments {
		c := palette.MustParse(seg.Color)
		w := r.board.style.WidthFor(seg.Color)
		for i := 1; i < len(seg.Points); i++ {
			r.addLine(c, w, seg.Points[i-1], seg.Points[i], view)
		}
	}
}

// rebuild recomputes the visible objects from the drawing: background, grid,
// committed strokes in order, then the stroke being drawn.
func (r *boardWidgetRenderer) rebuild() {
	s := r.board.session
	view := s.View()

	r.objects = []fyne.CanvasObject{r.background}
	gridColor := palette.MustParse(s.Config.GridColor)
	for _, l := range s.Grid.Visible(view) {
		r.addLine(gridColor, 1, state.Point{X: l.X1, Y: l.Y1}, state.Point{X: l.X2, Y: l.Y2}, view)
	}
	for st := range s.Drawing().Strokes() {
		r.addStroke(st, view)
	}
	if active, ok := s.Drawing().Active(); ok {
		r.addStroke(active, view)
	}
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
