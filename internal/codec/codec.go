// Package codec reads and writes drawings as JSON documents.
//
// A document is an array of strokes, each stroke an array of segments:
//
//	[[{"coords":[10,10,20,10],"color":"red"},{"coords":[20,10,20,20],"color":"red"}]]
//
// There is no version field and no grid metadata; the grid comes from configuration.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"GridNotebook/internal/state"
)

// ErrMalformedDocument is returned when a document does not have the expected shape.
var ErrMalformedDocument = errors.New("malformed document")

// segmentDoc is the on-disk form of a segment. It is kept as raw members so
// keys match exactly; struct tags would also accept "Color" or "COORDS".
type segmentDoc map[string]json.RawMessage

type segmentOut struct {
	Coords []float64 `json:"coords"`
	Color  string    `json:"color"`
}

// Encode writes strokes as a JSON document. Stroke and segment order is kept exactly.
func Encode(w io.Writer, strokes []state.Stroke) error {
	doc := make([][]segmentOut, 0, len(strokes))
	for _, s := range strokes {
		segs := make([]segmentOut, 0, len(s.Segments))
		for _, seg := range s.Segments {
			coords := make([]float64, 0, 2*len(seg.Points))
			for _, p := range seg.Points {
				coords = append(coords, p.X, p.Y)
			}
			segs = append(segs, segmentOut{Coords: coords, Color: seg.Color})
		}
		doc = append(doc, segs)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode drawing: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write drawing: %w", err)
	}
	log.Printf("[CODEC] Encoded %d strokes (%d bytes)", len(strokes), len(data))
	return nil
}

// Decode reads a JSON document. Any structural problem is reported as
// ErrMalformedDocument; nothing is returned in that case.
func Decode(r io.Reader) ([]state.Stroke, error) {
	dec := json.NewDecoder(r)

	var doc *[][]segmentDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, decodeError(err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is null", ErrMalformedDocument)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedDocument)
	}

	strokes := make([]state.Stroke, 0, len(*doc))
	for i, raw := range *doc {
		if len(raw) == 0 {
			return nil, fmt.Errorf("%w: stroke %d has no segments", ErrMalformedDocument, i)
		}
		s := state.Stroke{Segments: make([]state.Segment, 0, len(raw))}
		for j, sd := range raw {
			seg, err := sd.segment()
			if err != nil {
				return nil, fmt.Errorf("%w: stroke %d segment %d: %v", ErrMalformedDocument, i, j, err)
			}
			s.Segments = append(s.Segments, seg)
		}
		strokes = append(strokes, s)
	}
	log.Printf("[CODEC] Decoded %d strokes", len(strokes))
	return strokes, nil
}

func (sd segmentDoc) segment() (state.Segment, error) {
	var color *string
	if raw, ok := sd["color"]; ok {
		if err := json.Unmarshal(raw, &color); err != nil {
			return state.Segment{}, fmt.Errorf("color: %v", err)
		}
	}
	if color == nil {
		return state.Segment{}, errors.New("missing color")
	}

	var coords *[]*float64
	if raw, ok := sd["coords"]; ok {
		if err := json.Unmarshal(raw, &coords); err != nil {
			return state.Segment{}, fmt.Errorf("coords: %v", err)
		}
	}
	if coords == nil {
		return state.Segment{}, errors.New("missing coords")
	}
	if len(*coords) < 4 || len(*coords)%2 != 0 {
		return state.Segment{}, fmt.Errorf("need an even number of at least 4 coords, got %d", len(*coords))
	}
	pts := make([]state.Point, 0, len(*coords)/2)
	for k := 0; k < len(*coords); k += 2 {
		x, y := (*coords)[k], (*coords)[k+1]
		if x == nil || y == nil {
			return state.Segment{}, fmt.Errorf("coord %d is null", k)
		}
		pts = append(pts, state.Point{X: *x, Y: *y})
	}
	return state.Segment{Points: pts, Color: *color}, nil
}

func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: empty document", ErrMalformedDocument)
	case errors.Is(err, io.ErrUnexpectedEOF),
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr):
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return fmt.Errorf("read document: %w", err)
}
