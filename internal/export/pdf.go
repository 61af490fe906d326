package export

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"

	"GridNotebook/internal/grid"
	"GridNotebook/internal/state"
)

func setDraw(p *gofpdf.Fpdf, c color.Color) {
	r, g, b, _ := c.RGBA()
	p.SetDrawColor(int(r>>8), int(g>>8), int(b>>8))
}

// WritePDF renders the same scene as WritePNG onto a single PDF page the size
// of the viewport, one point per pixel. title goes into the document info.
func WritePDF(w io.Writer, g grid.Spec, strokes []state.Stroke, view state.Rect, st Style, title string) error {
	wd, ht, err := checkViewport(view)
	if err != nil {
		return err
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(wd), Ht: float64(ht)},
	})
	p.SetTitle(title, true)
	p.SetCreator("GridNotebook", true)
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	bg := colorFor(st.Background)
	r, gr, b, _ := bg.RGBA()
	p.SetFillColor(int(r>>8), int(gr>>8), int(b>>8))
	p.Rect(0, 0, float64(wd), float64(ht), "F")

	p.ClipRect(0, 0, float64(wd), float64(ht), false)
	ox, oy := view.X, view.Y

	setDraw(p, colorFor(st.GridColor))
	p.SetLineWidth(1)
	for _, l := range g.Visible(view) {
		p.Line(l.X1-ox, l.Y1-oy, l.X2-ox, l.Y2-oy)
	}

	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	pad := max(st.StrokeWidth, st.EraserWidth)
	for _, s := range strokes {
		if bb, ok := s.Bounds(pad); !ok || !bb.Overlaps(view) {
			continue
		}
		for _, seg := range s.Segments {
			setDraw(p, colorFor(seg.Color))
			p.SetLineWidth(st.WidthFor(seg.Color))
			for i := 1; i < len(seg.Points); i++ {
				a, z := seg.Points[i-1], seg.Points[i]
				p.Line(a.X-ox, a.Y-oy, z.X-ox, z.Y-oy)
			}
		}
	}
	p.ClipEnd()

	if err := p.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrExportWriteFailed, err)
	}
	log.Printf("[EXPORT] Wrote %dx%d PDF with %d strokes", wd, ht, len(strokes))
	return nil
}
