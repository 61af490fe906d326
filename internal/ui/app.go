package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"GridNotebook/internal/notebook"
)

// RunApp opens the notebook window for s and blocks until it is closed.
func RunApp(s *notebook.Session) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Grid Notebook")

	board := NewBoardWidget(s)
	status := widget.NewLabel("Ready")
	cmds := NewCommands(myWindow, board, status)
	toolbar := NewToolbar(board, cmds, status)

	myWindow.SetContent(container.NewBorder(toolbar, status, nil, nil, board))
	bindKeys(myWindow, board, cmds)

	// Leave room for the toolbar and status line around the board.
	myWindow.Resize(fyne.NewSize(float32(s.Config.ViewportWidth), float32(s.Config.ViewportHeight)+120))
	myWindow.ShowAndRun()
}

// NewCommands wires undo, save, load and export to the session, using file
// dialogs on w. A cancelled dialog does nothing; failures are shown to the user
// and never change the drawing.
func NewCommands(w fyne.Window, board *BoardWidget, status *widget.Label) Commands {
	s := board.session
	fail := func(what string, err error) {
		log.Printf("[UI] %s failed: %v", what, err)
		status.SetText(what + " failed")
		dialog.ShowError(err, w)
	}

	return Commands{
		Undo: func() {
			if _, ok := s.Undo(); ok {
				status.SetText(fmt.Sprintf("Undone, %d strokes left", s.Drawing().Len()))
			}
		},
		Save: func() {
			d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
				if err != nil {
					fail("Save", err)
					return
				}
				if writer == nil {
					return
				}
				err = s.Save(writer)
				if cerr := writer.Close(); err == nil {
					err = cerr
				}
				if err != nil {
					fail("Save", err)
					return
				}
				status.SetText(fmt.Sprintf("Saved %d strokes to %s", s.Drawing().Len(), writer.URI().Name()))
			}, w)
			d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
			d.SetFileName("drawing.json")
			d.Show()
		},
		Load: func() {
			d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
				if err != nil {
					fail("Load", err)
					return
				}
				if reader == nil {
					return
				}
				defer reader.Close()
				if err := s.Load(reader); err != nil {
					fail("Load", fmt.Errorf("%s: %w", reader.URI().Name(), err))
					return
				}
				status.SetText(fmt.Sprintf("Loaded %d strokes", s.Drawing().Len()))
			}, w)
			d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
			d.Show()
		},
		Export: func() {
			d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
				if err != nil {
					fail("Export", err)
					return
				}
				if writer == nil {
					return
				}
				err = s.Export(writer, notebook.FormatFor(writer.URI().Name()))
				if cerr := writer.Close(); err == nil {
					err = cerr
				}
				if err != nil {
					fail("Export", err)
					return
				}
				status.SetText("Exported " + writer.URI().Name())
			}, w)
			d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".pdf"}))
			d.SetFileName("drawing.png")
			d.Show()
		},
	}
}

// bindKeys adds Ctrl/Cmd+Z for undo and arrow keys that scroll one grid cell.
func bindKeys(w fyne.Window, board *BoardWidget, cmds Commands) {
	s := board.session
	w.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyZ,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) { cmds.Undo() })

	step := float64(s.Grid.CellSize)
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyLeft:
			s.ScrollBy(-step, 0)
		case fyne.KeyRight:
			s.ScrollBy(step, 0)
		case fyne.KeyUp:
			s.ScrollBy(0, -step)
		case fyne.KeyDown:
			s.ScrollBy(0, step)
		}
	})
}
