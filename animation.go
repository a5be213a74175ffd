package pickergrid

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default transition timings, in seconds.
const (
	DefaultAppearDuration    float32 = 0.2
	DefaultDisappearDuration float32 = 0.2
	DefaultMoveDuration      float32 = 0.25
	DefaultOffsetDuration    float32 = 0.3
	DefaultCrossfadeDuration float32 = 0.18
)

// appearScale is the scale nodes grow from and shrink to.
const appearScale = 0.01

// TweenGroup animates up to 4 float64 fields on a node simultaneously.
// Update writes the interpolated values each step. If the target node is
// disposed the group stops immediately without writing.
type TweenGroup struct {
	tweens   [4]*gween.Tween
	count    int
	fields   [4]*float64
	starts   [4]float64
	ends     [4]float64
	duration float32
	elapsed  float32
	easeFn   ease.TweenFunc
	target   *RealizedNode
	Done     bool
	// OnDone runs once, on the node's update after the group finishes.
	OnDone func()
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	g.elapsed += dt
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if finished {
			// gween works in float32; land exactly on the float64 target.
			*g.fields[i] = g.ends[i]
		} else {
			*g.fields[i] = float64(val)
			allDone = false
		}
	}
	g.Done = allDone
}

func newTweenGroup(node *RealizedNode, duration float32, fn ease.TweenFunc, pairs ...fieldTween) *TweenGroup {
	g := &TweenGroup{count: len(pairs), target: node, duration: duration, easeFn: fn}
	for i, p := range pairs {
		g.tweens[i] = gween.New(float32(p.from), float32(p.to), duration, fn)
		g.fields[i] = p.field
		g.starts[i] = p.from
		g.ends[i] = p.to
	}
	return g
}

// shiftStart moves the starting value of field's tween by d, keeping its end
// and progress, and writes the value at the current progress.
func (g *TweenGroup) shiftStart(field *float64, d float64) {
	if g.Done {
		return
	}
	for i := 0; i < g.count; i++ {
		if g.fields[i] != field {
			continue
		}
		g.starts[i] += d
		g.tweens[i] = gween.New(float32(g.starts[i]), float32(g.ends[i]), g.duration, g.easeFn)
		if val, finished := g.tweens[i].Set(g.elapsed); finished {
			*field = g.ends[i]
		} else {
			*field = float64(val)
		}
	}
}

type fieldTween struct {
	field    *float64
	from, to float64
}

// TweenPosition animates node.X and node.Y to the given coordinates.
func TweenPosition(node *RealizedNode, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn,
		fieldTween{&node.X, node.X, toX},
		fieldTween{&node.Y, node.Y, toY},
	)
}

// TweenOffset animates the additive anchor offset from (fromX, fromY) to zero.
func TweenOffset(node *RealizedNode, fromX, fromY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	node.OffsetX = fromX
	node.OffsetY = fromY
	return newTweenGroup(node, duration, fn,
		fieldTween{&node.OffsetX, fromX, 0},
		fieldTween{&node.OffsetY, fromY, 0},
	)
}

// TweenAppearance animates scale (both axes) and alpha together.
func TweenAppearance(node *RealizedNode, toScale, toAlpha float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn,
		fieldTween{&node.ScaleX, node.ScaleX, toScale},
		fieldTween{&node.ScaleY, node.ScaleY, toScale},
		fieldTween{&node.Alpha, node.Alpha, toAlpha},
	)
}

// TweenAlpha animates node.Alpha alone.
func TweenAlpha(node *RealizedNode, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, fieldTween{&node.Alpha, node.Alpha, to})
}

// TweenContentAlpha animates the placeholder-to-content crossfade.
func TweenContentAlpha(node *RealizedNode, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, fieldTween{&node.ContentAlpha, node.ContentAlpha, to})
}

// Timings groups the transition durations used by the reconciler.
type Timings struct {
	Appear    float32
	Disappear float32
	Move      float32
	Offset    float32
	Crossfade float32
	Ease      ease.TweenFunc
}

// DefaultTimings returns the stock transition timings.
func DefaultTimings() Timings {
	return Timings{
		Appear:    DefaultAppearDuration,
		Disappear: DefaultDisappearDuration,
		Move:      DefaultMoveDuration,
		Offset:    DefaultOffsetDuration,
		Crossfade: DefaultCrossfadeDuration,
		Ease:      ease.OutCubic,
	}
}

func (t Timings) easing() ease.TweenFunc {
	if t.Ease == nil {
		return ease.OutCubic
	}
	return t.Ease
}

// animateAppear starts the scale/alpha-in entrance.
func animateAppear(n *RealizedNode, t Timings) {
	n.ScaleX, n.ScaleY, n.Alpha = appearScale, appearScale, 0
	n.setTween(chanAppearance, TweenAppearance(n, 1, 1, t.Appear, t.easing()))
}

// animateMove tweens the node from its current position to its frame.
func animateMove(n *RealizedNode, frame Rect, t Timings) {
	n.Frame = frame
	if n.X == frame.X && n.Y == frame.Y {
		n.stopTween(chanMove)
		return
	}
	n.setTween(chanMove, TweenPosition(n, frame.X, frame.Y, t.Move, t.easing()))
}

// addOffset composes dy (and dx) onto whatever offset is still decaying and
// restarts the decay from the combined value.
func addOffset(n *RealizedNode, dx, dy float64, t Timings) {
	fromX := n.OffsetX + dx
	fromY := n.OffsetY + dy
	if fromX == 0 && fromY == 0 {
		n.stopTween(chanOffset)
		n.OffsetX, n.OffsetY = 0, 0
		return
	}
	n.setTween(chanOffset, TweenOffset(n, fromX, fromY, t.Offset, t.easing()))
}
