package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"FreehandBoard/internal/surface"
)

// --- Color swatch ---
type colorSwatch struct {
	widget.BaseWidget
	Value    string
	Color    color.Color
	Selected bool
	OnTapped func(string)
}

func newColorSwatch(value string, tapped func(string)) *colorSwatch {
	c, _ := surface.ParseColor(value)
	s := &colorSwatch{Value: value, Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))
	border := canvas.NewRectangle(color.Transparent)
	r := &swatchRenderer{swatch: s, border: border, inner: widget.NewSimpleRenderer(container.NewStack(rect, border))}
	r.Refresh()
	return r
}

type swatchRenderer struct {
	swatch *colorSwatch
	border *canvas.Rectangle
	inner  fyne.WidgetRenderer
}

func (r *swatchRenderer) Layout(size fyne.Size)        { r.inner.Layout(size) }
func (r *swatchRenderer) MinSize() fyne.Size           { return r.inner.MinSize() }
func (r *swatchRenderer) Objects() []fyne.CanvasObject { return r.inner.Objects() }
func (r *swatchRenderer) Destroy()                     {}

func (r *swatchRenderer) Refresh() {
	if r.swatch.Selected {
		r.border.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.border.StrokeWidth = 3
	} else {
		r.border.StrokeColor = color.Gray{Y: 150}
		r.border.StrokeWidth = 1
	}
	r.border.Refresh()
}

func (s *colorSwatch) Tapped(*fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Value)
	}
}

// Toolbar groups the width slider, color swatches and the clear button.
type Toolbar struct {
	Slider   *widget.Slider
	Swatches []*colorSwatch
	Clear    *widget.Button
	More     *widget.Button
	Status   *widget.Label

	widthLabel *widget.Label
	board      *DrawingBoard
	root       fyne.CanvasObject
}

// NewToolbar builds the controls for board. The window parents the color
// picker dialog and may be nil in tests.
func NewToolbar(board *DrawingBoard, win fyne.Window, minWidth, maxWidth int, palette []string) *Toolbar {
	t := &Toolbar{board: board, Status: widget.NewLabel("Ready")}

	// --- Stroke width ---
	t.widthLabel = widget.NewLabel(board.Width.Latest())
	t.Slider = widget.NewSlider(float64(minWidth), float64(maxWidth))
	t.Slider.Step = 1
	if v, err := strconv.ParseFloat(board.Width.Latest(), 64); err == nil {
		t.Slider.Value = v
	}
	t.Slider.OnChanged = func(v float64) {
		board.Width.Set(strconv.FormatFloat(v, 'f', -1, 64))
	}
	board.Width.OnChange(func(v string) { t.widthLabel.SetText(v) })
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), t.Slider)

	// --- Color palette ---
	for _, p := range palette {
		t.Swatches = append(t.Swatches, newColorSwatch(p, board.Color.Set))
	}
	t.markSelected(board.Color.Latest())
	board.Color.OnChange(t.markSelected)
	colorBox := container.NewHBox()
	for _, s := range t.Swatches {
		colorBox.Add(s)
	}
	t.More = widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		if win == nil {
			return
		}
		picker := dialog.NewColorPicker("Stroke color", "Pick the color for new strokes", func(c color.Color) {
			board.Color.Set(surface.FormatColor(c))
		}, win)
		picker.Advanced = true
		if c, ok := surface.ParseColor(board.Color.Latest()); ok {
			picker.SetColor(c)
		}
		picker.Show()
	})

	t.Clear = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		board.Clear()
		t.Status.SetText("Cleared")
	})

	t.root = container.NewHBox(
		widget.NewLabel("Size:"),
		sliderBox,
		t.widthLabel,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		t.More,
		widget.NewSeparator(),
		t.Clear,
		layout.NewSpacer(),
		t.Status,
	)
	return t
}

// Object returns the toolbar's canvas object for layout.
func (t *Toolbar) Object() fyne.CanvasObject { return t.root }

func (t *Toolbar) markSelected(value string) {
	for _, s := range t.Swatches {
		sel := s.Value == value
		if s.Selected != sel {
			s.Selected = sel
			s.Refresh()
		}
	}
}
