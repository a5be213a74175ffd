package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pickergrid"
)

// Style holds the colors the host draws with.
type Style struct {
	Background  pickergrid.Color
	HeaderText  pickergrid.Color
	ClearButton pickergrid.Color
	Placeholder pickergrid.Color
	Shimmer     pickergrid.Color
	Failed      pickergrid.Color
	Label       pickergrid.Color
	Selection   pickergrid.Color
	Badge       pickergrid.Color
	Accent      pickergrid.Color
	Primary     pickergrid.Color
}

// DefaultStyle returns a dark palette.
func DefaultStyle() Style {
	return Style{
		Background:  pickergrid.Color{R: 0.118, G: 0.118, B: 0.157, A: 1},
		HeaderText:  pickergrid.Color{R: 0.7, G: 0.7, B: 0.75, A: 1},
		ClearButton: pickergrid.Color{R: 0.35, G: 0.35, B: 0.4, A: 1},
		Placeholder: pickergrid.Color{R: 0.22, G: 0.22, B: 0.27, A: 1},
		Shimmer:     pickergrid.Color{R: 1, G: 1, B: 1, A: 0.18},
		Failed:      pickergrid.Color{R: 0.3, G: 0.18, B: 0.2, A: 1},
		Label:       pickergrid.Color{R: 0.28, G: 0.28, B: 0.34, A: 1},
		Selection:   pickergrid.Color{R: 0.31, G: 0.7, B: 1, A: 1},
		Badge:       pickergrid.Color{R: 1, G: 0.78, B: 0.2, A: 1},
		Accent:      pickergrid.Color{R: 0.31, G: 0.7, B: 1, A: 1},
		Primary:     pickergrid.Color{R: 0.92, G: 0.92, B: 0.95, A: 1},
	}
}

// tint returns the color multiplied into content drawn with mode.
func (s Style) tint(mode pickergrid.TintMode) pickergrid.Color {
	switch mode {
	case pickergrid.TintAccent:
		return s.Accent
	case pickergrid.TintPrimary, pickergrid.TintMonochrome:
		return s.Primary
	default:
		return pickergrid.ColorWhite
	}
}

// colorScale sets op's color scale to c with its alpha multiplied by alpha,
// premultiplied the way ebiten expects.
func colorScale(cs *ebiten.ColorScale, c pickergrid.Color, alpha float64) {
	a := float32(clamp01(c.A * alpha))
	cs.Reset()
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
}

// shimmerBand is the half-width of the shimmer highlight, as a fraction of
// the sweep width.
const shimmerBand = 0.15

// shimmerAlpha returns the highlight strength in [0, 1] at x for a sweep at
// phase across [0, width). The band enters from the left edge at phase 0 and
// leaves past the right edge at phase 1.
func shimmerAlpha(phase, x, width float64) float64 {
	if width <= 0 {
		return 0
	}
	band := shimmerBand * width
	center := -band + phase*(width+2*band)
	d := math.Abs(x - center)
	if d >= band {
		return 0
	}
	return 1 - d/band
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
