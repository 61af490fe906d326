// Package notebook ties the drawing, the active tool and the view together
// into one editing session. The UI shell forwards pointer events and commands
// here and redraws whenever OnChange fires.
package notebook

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"GridNotebook/internal/codec"
	"GridNotebook/internal/config"
	"GridNotebook/internal/export"
	"GridNotebook/internal/grid"
	"GridNotebook/internal/state"
)

// ErrGestureInProgress is returned by save, load and export while the pointer is still down.
var ErrGestureInProgress = errors.New("a stroke is being drawn")

// ToolState is the pen the user holds. It is not part of the drawing.
type ToolState struct {
	Color  string
	Eraser bool
}

// Session is the single owner of a drawing and its editing state.
// All methods must be called from the UI goroutine.
type Session struct {
	ID     string
	Config config.Config
	Grid   grid.Spec

	drawing *state.Drawing
	tool    ToolState
	last    state.Point
	down    bool

	// view is the visible part of the canvas: the scroll offset plus the widget size.
	view state.Rect

	// OnChange is called after anything visible changed.
	OnChange func()
}

// New creates an empty session for cfg.
func New(cfg config.Config) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		Config:  cfg,
		Grid:    cfg.Grid(),
		drawing: state.NewDrawing(),
		tool:    ToolState{Color: cfg.DefaultColor},
		view: state.Rect{
			Width:  float64(cfg.ViewportWidth),
			Height: float64(cfg.ViewportHeight),
		},
	}
	log.Printf("[SESSION %s] Started, grid %dx%d cell %d", s.short(), s.Grid.Extent, s.Grid.Extent, s.Grid.CellSize)
	return s
}

func (s *Session) short() string {
	if len(s.ID) > 8 {
		return s.ID[:8]
	}
	return s.ID
}

func (s *Session) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}

// Drawing exposes the document for rendering. Callers must not mutate it.
func (s *Session) Drawing() *state.Drawing { return s.drawing }

// Tool returns the current tool.
func (s *Session) Tool() ToolState { return s.tool }

// SetColor switches to the pen with color c.
func (s *Session) SetColor(c string) {
	s.tool = ToolState{Color: c}
}

// SelectEraser switches to the eraser, which paints in the background color.
func (s *Session) SelectEraser() {
	s.tool = ToolState{Color: s.Config.Background, Eraser: true}
}

// StrokeColor is the color new segments get with the current tool.
func (s *Session) StrokeColor() string {
	if s.tool.Eraser {
		return s.Config.Background
	}
	return s.tool.Color
}

// PointerDown starts a gesture at p (canvas space).
func (s *Session) PointerDown(p state.Point) {
	s.drawing.BeginStroke()
	s.last = p
	s.down = true
}

// PointerMove extends the current gesture to p. Moves without a press are ignored.
func (s *Session) PointerMove(p state.Point) {
	if !s.down {
		return
	}
	if err := s.drawing.ExtendStroke(s.last, p, s.StrokeColor()); err != nil {
		log.Printf("[SESSION %s] Dropping move: %v", s.short(), err)
		return
	}
	s.last = p
	s.changed()
}

// PointerUp ends the gesture. A press without movement leaves no stroke.
func (s *Session) PointerUp() {
	if !s.down {
		return
	}
	s.down = false
	if st, ok := s.drawing.CommitStroke(); ok {
		log.Printf("[SESSION %s] Stroke %d committed with %d segments", s.short(), s.drawing.Len(), st.Len())
	}
	s.changed()
}

// Undo removes the last stroke, eraser strokes included.
func (s *Session) Undo() (state.Stroke, bool) {
	st, ok := s.drawing.UndoLast()
	if ok {
		log.Printf("[SESSION %s] Undid stroke, %d left", s.short(), s.drawing.Len())
		s.changed()
	}
	return st, ok
}

func (s *Session) idle() error {
	if s.down || s.drawing.InProgress() {
		return ErrGestureInProgress
	}
	return nil
}

// Save writes the drawing as JSON.
func (s *Session) Save(w io.Writer) error {
	if err := s.idle(); err != nil {
		return err
	}
	return codec.Encode(w, s.drawing.Snapshot())
}

// Load replaces the drawing with the document read from r. On any error the
// current drawing is left as it was.
func (s *Session) Load(r io.Reader) error {
	if err := s.idle(); err != nil {
		return err
	}
	strokes, err := codec.Decode(r)
	if err != nil {
		return err
	}
	s.drawing.Replace(strokes)
	log.Printf("[SESSION %s] Loaded %d strokes", s.short(), s.drawing.Len())
	s.changed()
	return nil
}

// Format is an export file format.
type Format int

const (
	FormatPNG Format = iota
	FormatPDF
)

// FormatFor picks the export format from a file name. Anything but .pdf is PNG.
func FormatFor(name string) Format {
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return FormatPDF
	}
	return FormatPNG
}

// Export renders the visible viewport in the given format.
func (s *Session) Export(w io.Writer, f Format) error {
	if err := s.idle(); err != nil {
		return err
	}
	strokes := s.drawing.Snapshot()
	st := export.StyleFor(s.Config)
	switch f {
	case FormatPDF:
		return export.WritePDF(w, s.Grid, strokes, s.view, st, "GridNotebook "+s.ID)
	default:
		return export.WritePNG(w, s.Grid, strokes, s.view, st)
	}
}

// SaveFile saves to path. The old file is replaced only once the new one is
// completely written.
func (s *Session) SaveFile(path string) error {
	if err := s.idle(); err != nil {
		return err
	}
	if err := replaceFile(path, s.Save); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// LoadFile loads the drawing stored at path.
func (s *Session) LoadFile(path string) error {
	if err := s.idle(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()
	return s.Load(f)
}

// ExportFile exports the viewport to path, as PDF for .pdf names and PNG otherwise.
func (s *Session) ExportFile(path string) error {
	if err := s.idle(); err != nil {
		return err
	}
	if _, _, err := s.viewSize(); err != nil {
		return err
	}
	err := replaceFile(path, func(w io.Writer) error {
		return s.Export(w, FormatFor(path))
	})
	if err != nil {
		if errors.Is(err, export.ErrExportWriteFailed) {
			return err
		}
		return fmt.Errorf("%w: %v", export.ErrExportWriteFailed, err)
	}
	log.Printf("[SESSION %s] Exported view to %s", s.short(), path)
	return nil
}

func (s *Session) viewSize() (int, int, error) {
	w, h := int(s.view.Width), int(s.view.Height)
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", export.ErrInvalidViewport, w, h)
	}
	return w, h, nil
}

// replaceFile writes through a temporary file next to path and renames it over
// path on success. On failure path is left untouched and the temporary file is removed.
func replaceFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if err = write(f); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
