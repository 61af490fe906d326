package state

import "errors"

// StrokeWidth is the pen width every segment is drawn with.
const StrokeWidth = 2.0

// ErrNoActiveStroke is returned when a segment is added without BeginStroke.
var ErrNoActiveStroke = errors.New("no active stroke")

// Point is a position in canvas space. Canvas space does not move when the view scrolls.
type Point struct{ X, Y float64 }

// Segment is one drawn piece of a stroke: a polyline of at least two points in a single color.
// Segments produced by pointer input always hold exactly two points.
type Segment struct {
	Points []Point
	Color  string
}

// Stroke is everything drawn during one press-drag-release gesture.
type Stroke struct {
	Segments []Segment
}

// Len returns the number of segments in the stroke.
func (s Stroke) Len() int { return len(s.Segments) }

// Clone returns a deep copy so callers can hold on to it while the drawing keeps changing.
func (s Stroke) Clone() Stroke {
	segs := make([]Segment, len(s.Segments))
	for i, seg := range s.Segments {
		pts := make([]Point, len(seg.Points))
		copy(pts, seg.Points)
		segs[i] = Segment{Points: pts, Color: seg.Color}
	}
	return Stroke{Segments: segs}
}
