package state

// Rect is an axis-aligned area of the canvas.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Overlaps reports whether two rectangles touch or intersect.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.X+r.Width < o.X || o.X+o.Width < r.X ||
		r.Y+r.Height < o.Y || o.Y+o.Height < r.Y)
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Union returns the smallest rectangle covering both.
func (r Rect) Union(o Rect) Rect {
	minX, minY := min(r.X, o.X), min(r.Y, o.Y)
	maxX := max(r.X+r.Width, o.X+o.Width)
	maxY := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Bounds returns the box around every point of the segment, grown by padding on each side.
func (s Segment) Bounds(padding float64) Rect {
	if len(s.Points) == 0 {
		return Rect{}
	}
	minX, minY := s.Points[0].X, s.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range s.Points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return Rect{
		X:      minX - padding,
		Y:      minY - padding,
		Width:  maxX - minX + 2*padding,
		Height: maxY - minY + 2*padding,
	}
}

// Bounds returns the box around the whole stroke. The boolean is false for an empty stroke.
func (s Stroke) Bounds(padding float64) (Rect, bool) {
	if len(s.Segments) == 0 {
		return Rect{}, false
	}
	r := s.Segments[0].Bounds(padding)
	for _, seg := range s.Segments[1:] {
		r = r.Union(seg.Bounds(padding))
	}
	return r, true
}

// ClipLine clips the segment a→b to r (Liang–Barsky). The boolean is false
// when no part of the segment lies inside r.
func (r Rect) ClipLine(a, b Point) (Point, Point, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := b.X-a.X, b.Y-a.Y
	edges := [4][2]float64{
		{-dx, a.X - r.X},
		{dx, r.X + r.Width - a.X},
		{-dy, a.Y - r.Y},
		{dy, r.Y + r.Height - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return Point{}, Point{}, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return Point{}, Point{}, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return Point{}, Point{}, false
			}
			t1 = min(t1, t)
		}
	}
	return Point{X: a.X + t0*dx, Y: a.Y + t0*dy},
		Point{X: a.X + t1*dx, Y: a.Y + t1*dy}, true
}
