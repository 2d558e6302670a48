// Package surface is the raster backing store strokes are drawn into. It is
// sized in device pixels and maps logical coordinates through a fixed scale,
// so one logical unit covers one on-screen point at any pixel density.
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"FreehandBoard/internal/state"
)

// ErrUnavailable means the surface could not be created. It is a startup
// condition: the board must not become interactive.
var ErrUnavailable = errors.New("drawing surface unavailable")

// maxSide bounds the backing store so a bogus size cannot allocate gigabytes.
const maxSide = 16384

// Surface implements state.Renderer on an RGBA image.
type Surface struct {
	img      *image.RGBA
	width    float32
	height   float32
	scale    float32
	dasher   *rasterx.Dasher
	revision uint64
}

var _ state.Renderer = (*Surface)(nil)

// New allocates a transparent surface for a logical size of width x height
// shown at the given pixel density.
func New(width, height, scale float32) (*Surface, error) {
	if !positive(width) || !positive(height) {
		return nil, fmt.Errorf("%w: size %vx%v", ErrUnavailable, width, height)
	}
	if !positive(scale) {
		return nil, fmt.Errorf("%w: pixel scale %v", ErrUnavailable, scale)
	}
	pw := int(math.Ceil(float64(width * scale)))
	ph := int(math.Ceil(float64(height * scale)))
	if pw > maxSide || ph > maxSide {
		return nil, fmt.Errorf("%w: backing store %dx%d exceeds %d", ErrUnavailable, pw, ph, maxSide)
	}

	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	scanner := rasterx.NewScannerGV(pw, ph, img, img.Bounds())
	return &Surface{
		img:    img,
		width:  width,
		height: height,
		scale:  scale,
		dasher: rasterx.NewDasher(pw, ph, scanner),
	}, nil
}

func positive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 0)
}

// Image returns the backing store. Callers must not keep the pixels across
// a Clear if they need the old content.
func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Scale() float32 { return s.scale }

// Size returns the logical size the surface was created for.
func (s *Surface) Size() (width, height float32) { return s.width, s.height }

// Revision increases on every draw or clear.
func (s *Surface) Revision() uint64 { return s.revision }

// DrawSegment strokes a straight line between the segment's points with the
// segment's width and color.
func (s *Surface) DrawSegment(seg state.Segment) {
	st := seg.Style()
	w := ParseWidth(st.LineWidth) * s.scale
	c, _ := ParseColor(st.Color)

	s.dasher.SetStroke(fixed.Int26_6(float64(w)*64), 4*64, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	s.dasher.SetColor(c)
	s.dasher.Start(s.toDevice(seg.From))
	s.dasher.Line(s.toDevice(seg.To))
	s.dasher.Stop(false)
	s.dasher.Draw()
	s.dasher.Clear()
	s.revision++
}

// Clear wipes every pixel to transparent.
func (s *Surface) Clear() {
	clear(s.img.Pix)
	s.revision++
}

func (s *Surface) toDevice(p state.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X*s.scale), float64(p.Y*s.scale))
}

// PixelAt returns the device pixel under logical point (x, y).
func (s *Surface) PixelAt(x, y float32) color.RGBA {
	px := int(math.Floor(float64(x * s.scale)))
	py := int(math.Floor(float64(y * s.scale)))
	return s.img.RGBAAt(px, py)
}

// MaxLineWidth is the widest stroke, in logical units, that DrawSegment
// paints. Wider values are clamped to it.
const MaxLineWidth = 256

// ParseWidth reads a line width as produced by the width control. Anything
// unparsable or not positive draws as width 1, and anything above
// MaxLineWidth draws at MaxLineWidth.
func ParseWidth(v string) float32 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 1
	}
	if f <= 0 || math.IsNaN(f) {
		return 1
	}
	return float32(min(f, MaxLineWidth))
}
