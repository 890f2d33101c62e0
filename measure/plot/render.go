package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

const (
	minSize   = 16
	marginPct = 0.06
)

var (
	// ErrNoSeries means no series contains a finite point.
	ErrNoSeries = errors.New("plot: no finite points to draw")

	// ErrInvalidSize means the requested image is smaller than 16x16.
	ErrInvalidSize = errors.New("plot: image must be at least 16x16 pixels")

	// ErrLengthMismatch means a series has different X and Y lengths.
	ErrLengthMismatch = errors.New("plot: X and Y differ in length")
)

var (
	background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	axisColor  = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
)

// Series is one polyline. Points with a NaN or infinite coordinate break the
// line.
type Series struct {
	Name  string
	Color color.NRGBA
	X, Y  []float64
}

type bounds struct {
	xMin, xMax, yMin, yMax float64
}

// Render draws all series into one image with shared axes. A horizontal axis
// is drawn at y = 0 when it lies inside the data range.
func Render(series []Series, opts ...Option) (*image.NRGBA, error) {
	cfg := applyOptions(opts...)
	if cfg.Width < minSize || cfg.Height < minSize {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	for _, s := range series {
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("%w: series %q has %d and %d", ErrLengthMismatch, s.Name, len(s.X), len(s.Y))
		}
	}

	b, ok := dataBounds(series)
	if !ok {
		return nil, ErrNoSeries
	}

	ss := cfg.Supersample
	w, h := cfg.Width*ss, cfg.Height*ss
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	mx := int(float64(w) * marginPct)
	my := int(float64(h) * marginPct)
	px := func(x float64) float64 {
		return float64(mx) + (x-b.xMin)/(b.xMax-b.xMin)*float64(w-1-2*mx)
	}
	py := func(y float64) float64 {
		return float64(h-1-my) - (y-b.yMin)/(b.yMax-b.yMin)*float64(h-1-2*my)
	}

	// Frame.
	left, right := float64(mx), float64(w-1-mx)
	top, bottom := float64(my), float64(h-1-my)
	line(canvas, left, top, right, top, ss, axisColor)
	line(canvas, left, bottom, right, bottom, ss, axisColor)
	line(canvas, left, top, left, bottom, ss, axisColor)
	line(canvas, right, top, right, bottom, ss, axisColor)
	if b.yMin < 0 && b.yMax > 0 {
		line(canvas, left, py(0), right, py(0), ss, axisColor)
	}

	for _, s := range series {
		prevOK := false
		var x0, y0 float64
		for i := range s.X {
			if !finite(s.X[i]) || !finite(s.Y[i]) {
				prevOK = false
				continue
			}
			x1, y1 := px(s.X[i]), py(s.Y[i])
			if prevOK {
				line(canvas, x0, y0, x1, y1, ss, s.Color)
			} else {
				dot(canvas, x1, y1, ss, s.Color)
			}
			x0, y0, prevOK = x1, y1, true
		}
	}

	if ss == 1 {
		return canvas, nil
	}
	out := image.NewNRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return out, nil
}

func dataBounds(series []Series) (bounds, bool) {
	b := bounds{
		xMin: math.Inf(1), xMax: math.Inf(-1),
		yMin: math.Inf(1), yMax: math.Inf(-1),
	}
	found := false
	for _, s := range series {
		for i := range s.X {
			x, y := s.X[i], s.Y[i]
			if !finite(x) || !finite(y) {
				continue
			}
			found = true
			b.xMin, b.xMax = math.Min(b.xMin, x), math.Max(b.xMax, x)
			b.yMin, b.yMax = math.Min(b.yMin, y), math.Max(b.yMax, y)
		}
	}
	if !found {
		return b, false
	}

	// Degenerate ranges get a unit span so the mapping stays finite.
	if b.xMax == b.xMin {
		b.xMin, b.xMax = b.xMin-0.5, b.xMax+0.5
	}
	if b.yMax == b.yMin {
		pad := math.Max(math.Abs(b.yMin)*0.5, 0.5)
		b.yMin, b.yMax = b.yMin-pad, b.yMax+pad
	}
	return b, true
}

// line draws a segment of the given thickness by stepping one pixel at a
// time along its longer axis.
func line(img *image.NRGBA, x0, y0, x1, y1 float64, thickness int, c color.NRGBA) {
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		dot(img, x0, y0, thickness, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		dot(img, x0+(x1-x0)*t, y0+(y1-y0)*t, thickness, c)
	}
}

func dot(img *image.NRGBA, x, y float64, size int, c color.NRGBA) {
	cx, cy := int(math.Round(x)), int(math.Round(y))
	lo := -(size - 1) / 2
	r := img.Bounds()
	for dy := lo; dy < lo+size; dy++ {
		for dx := lo; dx < lo+size; dx++ {
			p := image.Pt(cx+dx, cy+dy)
			if p.In(r) {
				img.SetNRGBA(p.X, p.Y, c)
			}
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
