package notebook

import "GridNotebook/internal/state"

// View returns the visible canvas rectangle.
func (s *Session) View() state.Rect { return s.view }

// Resize records the on-screen size of the board. The scroll offset is
// re-clamped so the view stays inside the grid.
func (s *Session) Resize(width, height float64) {
	s.view.Width, s.view.Height = width, height
	s.clampScroll()
}

// ScrollBy moves the view by dx, dy canvas units, stopping at the grid edges.
func (s *Session) ScrollBy(dx, dy float64) {
	before := s.view
	s.view.X += dx
	s.view.Y += dy
	s.clampScroll()
	if s.view != before {
		s.changed()
	}
}

// ScrollTo moves the view origin to x, y.
func (s *Session) ScrollTo(x, y float64) {
	s.ScrollBy(x-s.view.X, y-s.view.Y)
}

// ScreenToCanvas converts a position inside the board widget to canvas space.
func (s *Session) ScreenToCanvas(x, y float64) state.Point {
	return state.Point{X: x + s.view.X, Y: y + s.view.Y}
}

// CanvasToScreen is the inverse of ScreenToCanvas.
func (s *Session) CanvasToScreen(p state.Point) (float64, float64) {
	return p.X - s.view.X, p.Y - s.view.Y
}

func (s *Session) clampScroll() {
	e := float64(s.Grid.Extent)
	s.view.X = max(0, min(s.view.X, e-s.view.Width))
	s.view.Y = max(0, min(s.view.Y, e-s.view.Height))
}
