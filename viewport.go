package pickergrid

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultScrollDuration is the duration of an animated scroll, in seconds.
const DefaultScrollDuration float32 = 0.35

// scrollAnim holds an active scroll-to tween.
type scrollAnim struct {
	tween  *gween.Tween
	target float64
}

// Viewport is the host scroll surface: the vertical window into the grid's
// content. Offsets are in content coordinates.
type Viewport struct {
	// ScrollY is the content offset at the top of the viewport.
	ScrollY float64
	// Width and Height are the viewport size.
	Width, Height float64
	// ContentHeight bounds scrolling; ScrollY stays within
	// [0, max(0, ContentHeight-Height)].
	ContentHeight float64

	scrollTween *scrollAnim
}

// MaxScroll returns the largest valid ScrollY.
func (v *Viewport) MaxScroll() float64 {
	return math.Max(0, v.ContentHeight-v.Height)
}

// Clamp restricts y to the valid scroll range.
func (v *Viewport) Clamp(y float64) float64 {
	return math.Max(0, math.Min(y, v.MaxScroll()))
}

// SetScrollY jumps to y (clamped) and cancels any scroll animation.
func (v *Viewport) SetScrollY(y float64) {
	v.scrollTween = nil
	v.ScrollY = v.Clamp(y)
}

// ScrollTo animates ScrollY to y (clamped) over duration seconds.
func (v *Viewport) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	y = v.Clamp(y)
	if duration <= 0 || y == v.ScrollY {
		v.SetScrollY(y)
		return
	}
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	v.scrollTween = &scrollAnim{
		tween:  gween.New(float32(v.ScrollY), float32(y), duration, easeFn),
		target: y,
	}
}

// Scrolling reports whether a scroll animation is running.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// Target returns where the viewport is heading: the animation target while
// scrolling, ScrollY otherwise.
func (v *Viewport) Target() float64 {
	if v.scrollTween != nil {
		return v.scrollTween.target
	}
	return v.ScrollY
}

// Bounds returns the visible rect in content coordinates.
func (v *Viewport) Bounds() Rect {
	return Rect{X: 0, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// update advances the scroll animation. Reports whether ScrollY changed.
func (v *Viewport) update(dt float32) bool {
	if v.scrollTween == nil {
		return false
	}
	prev := v.ScrollY
	val, done := v.scrollTween.tween.Update(dt)
	if done {
		v.ScrollY = v.scrollTween.target
		v.scrollTween = nil
	} else {
		v.ScrollY = v.Clamp(float64(val))
	}
	return v.ScrollY != prev
}

// ContentToScreen converts a content-space Y to viewport space.
func (v *Viewport) ContentToScreen(y float64) float64 {
	return y - v.ScrollY
}

// ScreenToContent converts a viewport-space Y to content space.
func (v *Viewport) ScreenToContent(y float64) float64 {
	return y + v.ScrollY
}
