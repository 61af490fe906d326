// Package export renders a drawing and its grid into flat files.
//
// Exports capture the visible viewport only: the view rectangle gives both the
// canvas origin (the scroll offset) and the pixel size of the output.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"github.com/fogleman/gg"

	"GridNotebook/internal/config"
	"GridNotebook/internal/grid"
	"GridNotebook/internal/palette"
	"GridNotebook/internal/state"
)

var (
	ErrInvalidViewport   = errors.New("invalid viewport")
	ErrExportWriteFailed = errors.New("export write failed")
)

// Style holds the fixed colors and widths of an export.
type Style struct {
	Background  string
	GridColor   string
	StrokeWidth float64
	// EraserWidth applies to segments drawn in the background color.
	EraserWidth float64
}

// StyleFor builds the export style from the session config.
func StyleFor(cfg config.Config) Style {
	return Style{
		Background:  cfg.Background,
		GridColor:   cfg.GridColor,
		StrokeWidth: state.StrokeWidth,
		EraserWidth: cfg.EraserWidth(),
	}
}

// WidthFor returns the pen width for a segment drawn in color c.
func (s Style) WidthFor(c string) float64 {
	if s.EraserWidth > 0 && palette.Same(c, s.Background) {
		return s.EraserWidth
	}
	return s.StrokeWidth
}

// colorFor resolves a stored color string. Unknown names render black rather than failing the export.
func colorFor(s string) color.Color {
	c, err := palette.Parse(s)
	if err != nil {
		log.Printf("[EXPORT] %v, drawing in black", err)
		return color.Black
	}
	return c
}

func checkViewport(view state.Rect) (int, int, error) {
	w, h := int(view.Width), int(view.Height)
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, w, h)
	}
	return w, h, nil
}

// Render paints the background, the grid lines crossing view and then every
// segment of every stroke, in order. Later segments cover earlier ones.
func Render(g grid.Spec, strokes []state.Stroke, view state.Rect, st Style) (image.Image, error) {
	dc, err := draw(g, strokes, view, st)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders the view and writes it as PNG.
func WritePNG(w io.Writer, g grid.Spec, strokes []state.Stroke, view state.Rect, st Style) error {
	dc, err := draw(g, strokes, view, st)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("%w: %v", ErrExportWriteFailed, err)
	}
	log.Printf("[EXPORT] Wrote %dx%d PNG with %d strokes", dc.Width(), dc.Height(), len(strokes))
	return nil
}

func draw(g grid.Spec, strokes []state.Stroke, view state.Rect, st Style) (*gg.Context, error) {
	w, h, err := checkViewport(view)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(colorFor(st.Background))
	dc.Clear()
	dc.Translate(-view.X, -view.Y)

	// Grid lines are one pixel wide; the half-pixel shift keeps them on whole pixels.
	dc.SetColor(colorFor(st.GridColor))
	dc.SetLineWidth(1)
	for _, l := range g.Visible(view) {
		if l.Vertical() {
			dc.DrawLine(l.X1+0.5, l.Y1, l.X2+0.5, l.Y2)
		} else {
			dc.DrawLine(l.X1, l.Y1+0.5, l.X2, l.Y2+0.5)
		}
	}
	dc.Stroke()

	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	pad := max(st.StrokeWidth, st.EraserWidth)
	for _, s := range strokes {
		if b, ok := s.Bounds(pad); !ok || !b.Overlaps(view) {
			continue
		}
		for _, seg := range s.Segments {
			if len(seg.Points) < 2 {
				continue
			}
			dc.SetColor(colorFor(seg.Color))
			dc.SetLineWidth(st.WidthFor(seg.Color))
			dc.MoveTo(seg.Points[0].X, seg.Points[0].Y)
			for _, p := range seg.Points[1:] {
				dc.LineTo(p.X, p.Y)
			}
			dc.Stroke()
		}
	}
	return dc, nil
}
