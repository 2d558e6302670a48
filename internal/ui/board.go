package ui

import (
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	applog "FreehandBoard/internal/log"
	"FreehandBoard/internal/state"
	"FreehandBoard/internal/surface"
)

// DrawingBoard is the drawing area. It translates Fyne pointer callbacks into
// StrokeCapture events and shows the raster surface the capture draws into.
type DrawingBoard struct {
	widget.BaseWidget

	Width   *state.StyleCell
	Color   *state.StyleCell
	capture *state.StrokeCapture

	host       fyne.Canvas
	background color.Color
	surface    *surface.Surface
	image      *canvas.Image
	shown      uint64
	mountErr   error

	// OnMountError is called once if the surface cannot be created. The board
	// stays inert afterwards.
	OnMountError func(error)

	log *slog.Logger
}

var _ fyne.Widget = (*DrawingBoard)(nil)
var _ fyne.Draggable = (*DrawingBoard)(nil)
var _ desktop.Mouseable = (*DrawingBoard)(nil)
var _ desktop.Hoverable = (*DrawingBoard)(nil)

// BoardOptions configures a new board.
type BoardOptions struct {
	InitialWidth string
	InitialColor string
	Background   color.Color
	Capture      state.Options
}

func NewDrawingBoard(opts BoardOptions) *DrawingBoard {
	width := state.NewStyleCell(opts.InitialWidth)
	col := state.NewStyleCell(opts.InitialColor)
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	b := &DrawingBoard{
		Width:      width,
		Color:      col,
		capture:    state.NewStrokeCapture(width, col, opts.Capture),
		background: bg,
	}
	b.log = applog.WithComponent("board").With(slog.String("capture", b.capture.ID()))
	b.ExtendBaseWidget(b)
	return b
}

// Bind tells the board which canvas hosts it. The pixel density is read from
// it when the board is first laid out.
func (b *DrawingBoard) Bind(c fyne.Canvas) { b.host = c }

// Capture exposes the stroke state machine, mainly for tests and status.
func (b *DrawingBoard) Capture() *state.StrokeCapture { return b.capture }

// Surface returns the raster surface, or nil before mount.
func (b *DrawingBoard) Surface() *surface.Surface { return b.surface }

// MountError returns the error that kept the board from mounting, if any.
func (b *DrawingBoard) MountError() error { return b.mountErr }

// mount creates the surface once, at the size of the first non-empty layout.
func (b *DrawingBoard) mount(size fyne.Size) {
	if b.surface != nil || b.mountErr != nil {
		return
	}
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	var (
		s     *surface.Surface
		scale float32
		err   error
	)
	if b.host == nil {
		err = fmt.Errorf("%w: board is not bound to a canvas", surface.ErrUnavailable)
	} else {
		scale = pixelScale(b.host)
		s, err = surface.New(size.Width, size.Height, scale)
	}
	if err != nil {
		b.mountErr = fmt.Errorf("mount drawing board: %w", err)
		b.log.Error("mount failed", slog.Any("err", b.mountErr))
		if b.OnMountError != nil {
			b.OnMountError(b.mountErr)
		}
		return
	}
	b.surface = s
	b.image.Image = s.Image()
	b.image.Resize(size)
	b.capture.Attach(s)
	b.log.Info("surface mounted",
		slog.Float64("width", float64(size.Width)),
		slog.Float64("height", float64(size.Height)),
		slog.Float64("scale", float64(scale)))
}

// scaleSpan is the logical distance measured to find the pixel density.
const scaleSpan = 1000

// pixelScale returns device pixels per logical unit on c, including the
// framebuffer multiplier HiDPI drivers add on top of Scale().
func pixelScale(c fyne.Canvas) float32 {
	px, _ := c.PixelCoordinateForPosition(fyne.NewPos(scaleSpan, 0))
	if px <= 0 {
		return c.Scale()
	}
	return float32(px) / scaleSpan
}

// sync pushes surface changes to the screen.
func (b *DrawingBoard) sync() {
	if b.surface == nil || b.surface.Revision() == b.shown {
		return
	}
	b.shown = b.surface.Revision()
	b.image.Refresh()
}

// Clear wipes the drawing. A stroke in progress continues.
func (b *DrawingBoard) Clear() {
	b.capture.Clear()
	b.sync()
}

func (b *DrawingBoard) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.capture.PointerDown(e.Position.X, e.Position.Y)
}

func (b *DrawingBoard) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.capture.PointerUp()
}

func (b *DrawingBoard) MouseIn(*desktop.MouseEvent) {}

func (b *DrawingBoard) MouseMoved(e *desktop.MouseEvent) {
	b.move(e.Position)
}

func (b *DrawingBoard) MouseOut() {
	b.capture.PointerLeave()
}

// Dragged arrives instead of MouseMoved while the button is held. Fyne keeps
// delivering it after the pointer leaves, so leaving is detected here too.
func (b *DrawingBoard) Dragged(e *fyne.DragEvent) {
	b.move(e.Position)
}

func (b *DrawingBoard) DragEnd() {
	b.capture.PointerUp()
}

func (b *DrawingBoard) move(pos fyne.Position) {
	size := b.Size()
	if pos.X < 0 || pos.Y < 0 || pos.X > size.Width || pos.Y > size.Height {
		b.capture.PointerLeave()
		return
	}
	b.capture.PointerMove(pos.X, pos.Y)
	b.sync()
}

func (b *DrawingBoard) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(b.background)
	b.image = canvas.NewImageFromImage(nil)
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScaleFastest
	return &boardRenderer{board: b, background: bg}
}

type boardRenderer struct {
	board      *DrawingBoard
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.image}
}

// Layout mounts the surface on the first real size. Later resizes only grow
// the background; the surface keeps its original extent.
func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.mount(size)
}

func (r *boardRenderer) MinSize() fyne.Size { return fyne.NewSize(300, 300) }

func (r *boardRenderer) Refresh() {
	r.background.FillColor = r.board.background
	r.background.Refresh()
	r.board.image.Refresh()
}

func (r *boardRenderer) Destroy() {}
