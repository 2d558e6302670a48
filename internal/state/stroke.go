package state

import (
	"log/slog"

	applog "FreehandBoard/internal/log"
)

// Renderer applies segments to a raster surface.
type Renderer interface {
	DrawSegment(Segment)
	Clear()
}

// Options tunes a StrokeCapture.
type Options struct {
	// AnchorAtDown makes the pointer-down position the first point of the
	// stroke. When false only move samples are paired.
	AnchorAtDown bool
	// LogSegments emits a debug record for every rendered segment.
	LogSegments bool
	Logger      *slog.Logger
}

// Stats counts what a capture has produced so far.
type Stats struct {
	Strokes  uint64
	Segments uint64
}

// StrokeCapture turns pointer events into segments. It is a two state
// machine: Idle until a pointer-down, Drawing until pointer-up or the pointer
// leaves the surface. The style of a stroke is read from the two cells at
// pointer-down and frozen for the rest of the stroke.
//
// All methods must be called from the UI goroutine.
type StrokeCapture struct {
	id       string
	width    *StyleCell
	color    *StyleCell
	renderer Renderer
	opts     Options
	log      *slog.Logger

	phase   Phase
	style   StyleState
	prev    Point
	hasPrev bool
	strokes strokeCounter
	emitted uint64
}

// NewStrokeCapture builds an idle capture reading style from width and color.
// It stays inert until a renderer is attached.
func NewStrokeCapture(width, color *StyleCell, opts Options) *StrokeCapture {
	id := newCaptureID()
	l := opts.Logger
	if l == nil {
		l = applog.WithComponent("capture")
	}
	return &StrokeCapture{
		id:    id,
		width: width,
		color: color,
		opts:  opts,
		log:   l.With(slog.String("capture", id)),
	}
}

// Attach sets the renderer. Until it is called every event is ignored.
func (s *StrokeCapture) Attach(r Renderer) {
	s.renderer = r
}

func (s *StrokeCapture) ID() string { return s.id }

func (s *StrokeCapture) State() Phase { return s.phase }

// Style returns the style of the stroke in progress, or the zero value when
// idle.
func (s *StrokeCapture) Style() StyleState {
	if s.phase != Drawing {
		return StyleState{}
	}
	return s.style
}

func (s *StrokeCapture) Stats() Stats {
	return Stats{Strokes: s.strokes.current(), Segments: s.emitted}
}

// PointerDown starts a stroke at (x, y). A down while already drawing
// restarts the stroke with freshly sampled style.
func (s *StrokeCapture) PointerDown(x, y float32) {
	if s.renderer == nil {
		s.log.Debug("pointer-down ignored, no surface")
		return
	}
	if s.phase == Drawing {
		s.log.Debug("pointer-down while drawing, restarting stroke")
	}
	s.phase = Drawing
	s.style = StyleState{LineWidth: s.width.Latest(), Color: s.color.Latest()}
	s.hasPrev = false
	n := s.strokes.next()
	if s.opts.AnchorAtDown {
		s.prev = Point{X: x, Y: y, Style: s.style}
		s.hasPrev = true
	}
	s.log.Debug("stroke start",
		slog.Uint64("stroke", n),
		slog.String("width", s.style.LineWidth),
		slog.String("color", s.style.Color))
}

// PointerMove samples the pointer. While drawing, every sample after the
// first is paired with its predecessor and rendered immediately.
func (s *StrokeCapture) PointerMove(x, y float32) {
	if s.phase != Drawing {
		return
	}
	p := Point{X: x, Y: y, Style: s.style}
	if !s.hasPrev {
		s.prev = p
		s.hasPrev = true
		return
	}
	seg := Segment{From: s.prev, To: p, Stroke: s.strokes.current()}
	s.prev = p
	s.emitted++
	if s.opts.LogSegments {
		s.log.Debug("segment",
			slog.Uint64("stroke", seg.Stroke),
			slog.Any("from", [2]float32{seg.From.X, seg.From.Y}),
			slog.Any("to", [2]float32{seg.To.X, seg.To.Y}))
	}
	s.renderer.DrawSegment(seg)
}

// PointerUp ends the stroke in progress.
func (s *StrokeCapture) PointerUp() { s.end("up") }

// PointerLeave ends the stroke in progress exactly like PointerUp.
func (s *StrokeCapture) PointerLeave() { s.end("leave") }

func (s *StrokeCapture) end(cause string) {
	if s.phase != Drawing {
		return
	}
	s.phase = Idle
	s.hasPrev = false
	s.prev = Point{}
	s.style = StyleState{}
	s.log.Debug("stroke end", slog.Uint64("stroke", s.strokes.current()), slog.String("cause", cause))
}

// Clear wipes the surface. The stroke state is left alone, so a stroke in
// progress keeps drawing onto the cleared surface.
func (s *StrokeCapture) Clear() {
	if s.renderer == nil {
		return
	}
	s.renderer.Clear()
	s.log.Debug("surface cleared", slog.String("phase", s.phase.String()))
}
