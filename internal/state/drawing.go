package state

import "iter"

// Drawing is the undoable document: committed strokes in creation order plus
// at most one stroke that is still being drawn.
//
// A Drawing is owned by a single session and is not safe for concurrent use.
type Drawing struct {
	strokes []Stroke
	active  *Stroke
}

// NewDrawing returns an empty drawing.
func NewDrawing() *Drawing {
	return &Drawing{strokes: make([]Stroke, 0)}
}

// BeginStroke starts a new active stroke. It does nothing while another stroke is active.
func (d *Drawing) BeginStroke() {
	if d.active != nil {
		return
	}
	d.active = &Stroke{}
}

// ExtendStroke appends a from→to segment to the active stroke.
func (d *Drawing) ExtendStroke(from, to Point, color string) error {
	if d.active == nil {
		return ErrNoActiveStroke
	}
	d.active.Segments = append(d.active.Segments, Segment{
		Points: []Point{from, to},
		Color:  color,
	})
	return nil
}

// CommitStroke moves the active stroke into the drawing. Strokes without
// segments (a click with no drag) are dropped. Calling it with no active
// stroke is a no-op.
func (d *Drawing) CommitStroke() (Stroke, bool) {
	if d.active == nil {
		return Stroke{}, false
	}
	s := *d.active
	d.active = nil
	if len(s.Segments) == 0 {
		return Stroke{}, false
	}
	d.strokes = append(d.strokes, s)
	return s, true
}

// InProgress reports whether a gesture is in progress.
func (d *Drawing) InProgress() bool { return d.active != nil }

// Active returns the in-progress stroke for preview rendering.
func (d *Drawing) Active() (Stroke, bool) {
	if d.active == nil {
		return Stroke{}, false
	}
	return *d.active, true
}

// UndoLast removes the most recently committed stroke and returns it.
// The boolean is false when there was nothing to undo.
func (d *Drawing) UndoLast() (Stroke, bool) {
	n := len(d.strokes)
	if n == 0 {
		return Stroke{}, false
	}
	last := d.strokes[n-1]
	d.strokes[n-1] = Stroke{}
	d.strokes = d.strokes[:n-1]
	return last, true
}

// Clear removes every stroke, including an unfinished one.
func (d *Drawing) Clear() {
	d.strokes = make([]Stroke, 0)
	d.active = nil
}

// Replace clears the drawing and appends the given strokes in order.
// Empty strokes are skipped so the non-empty invariant holds.
func (d *Drawing) Replace(strokes []Stroke) {
	d.Clear()
	for _, s := range strokes {
		if len(s.Segments) == 0 {
			continue
		}
		d.strokes = append(d.strokes, s.Clone())
	}
}

// Len returns the number of committed strokes.
func (d *Drawing) Len() int { return len(d.strokes) }

// Strokes iterates over the committed strokes in creation order. The sequence
// reads the drawing at iteration time, so it can be ranged over again after
// further edits.
func (d *Drawing) Strokes() iter.Seq[Stroke] {
	return func(yield func(Stroke) bool) {
		for i := 0; i < len(d.strokes); i++ {
			if !yield(d.strokes[i]) {
				return
			}
		}
	}
}

// Snapshot returns a deep copy of the committed strokes. Save and export work
// on a snapshot so the live drawing can keep changing underneath them.
func (d *Drawing) Snapshot() []Stroke {
	out := make([]Stroke, 0, len(d.strokes))
	for _, s := range d.strokes {
		out = append(out, s.Clone())
	}
	return out
}
