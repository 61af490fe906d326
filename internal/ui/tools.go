package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"GridNotebook/internal/palette"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Name     string
	Color    color.Color
	OnTapped func(name string)
}

func newColorSwatch(name string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Name: name, Color: palette.MustParse(name), OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

// Commands are the toolbar actions that need a window (file dialogs) to run.
type Commands struct {
	Undo   func()
	Save   func()
	Load   func()
	Export func()
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget, cmds Commands, status *widget.Label) fyne.CanvasObject {
	s := board.session

	// The pen button goes back to the last color picked after using the eraser.
	lastColor := s.Tool().Color
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			s.SetColor(lastColor)
			status.SetText("Pen: " + lastColor)
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			s.SelectEraser()
			status.SetText("Eraser")
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), cmds.Undo),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), cmds.Save),
		widget.NewToolbarAction(theme.FolderOpenIcon(), cmds.Load),
		widget.NewToolbarAction(theme.FileImageIcon(), cmds.Export),
	)

	// --- Color Palette ---
	onColorTapped := func(name string) {
		lastColor = name
		s.SetColor(name)
		status.SetText("Pen: " + name)
	}
	colorBox := container.NewHBox()
	for _, name := range s.Config.Palette {
		colorBox.Add(newColorSwatch(name, onColorTapped))
	}

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		layout.NewSpacer(),
	)
}
