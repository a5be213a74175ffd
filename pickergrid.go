package pickergrid

import (
	"fmt"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// The core never resolves theme colors; Color only travels inside paint hints.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap with a non-zero area.
// Rectangles sharing only an edge do not intersect: a cell that ends exactly
// where the viewport begins is not visible.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Union returns the smallest rectangle containing both r and other.
// An empty rectangle is the identity element.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.MaxX(), other.MaxX())
	maxY := math.Max(r.MaxY(), other.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Insets are the safe-area-like margins supplied by the hosting container.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// ContentKind identifies what an item renders.
type ContentKind uint8

const (
	ContentMedia       ContentKind = iota // animated sticker / GIF / video
	ContentStaticGlyph                    // static emoji glyph
	ContentIcon                           // vector icon
)

// IconState is the badge drawn over an item.
type IconState uint8

const (
	IconNone    IconState = iota // no badge
	IconLocked                   // locked behind a purchase
	IconPremium                  // premium-only content
)

// TintMode selects how the host tints an item.
type TintMode uint8

const (
	TintNone       TintMode = iota // draw content as-is
	TintAccent                     // tint with the theme accent color
	TintPrimary                    // tint with the primary text color
	TintMonochrome                 // flatten to a single color
)

// LayoutMode selects the metrics set used by the layout engine.
type LayoutMode uint8

const (
	LayoutCompact  LayoutMode = iota // dense emoji grid
	LayoutDetailed                   // larger sticker / GIF cells
)

// String implements fmt.Stringer.
func (m LayoutMode) String() string {
	switch m {
	case LayoutCompact:
		return "compact"
	case LayoutDetailed:
		return "detailed"
	default:
		return "unknown"
	}
}

// ParseLayoutMode converts "compact" or "detailed" into a LayoutMode. The
// empty string is compact.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch s {
	case "", "compact":
		return LayoutCompact, nil
	case "detailed":
		return LayoutDetailed, nil
	}
	return LayoutCompact, fmt.Errorf("unknown layout mode %q, want compact or detailed", s)
}
