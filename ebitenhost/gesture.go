package ebitenhost

import "math"

const (
	defaultDragDeadZone   = 4.0 // pixels
	defaultLongPressTicks = 30  // half a second at 60 TPS
)

type gestureKind uint8

const (
	gestureNone gestureKind = iota
	gestureTap
	gestureLongPress
	gestureDrag
)

// gestureEvent is what one frame of pointer input resolved to. Tap and long
// press report the press position; drag reports the scroll delta.
type gestureEvent struct {
	kind gestureKind
	x, y float64
	dy   float64
}

// gesture recognizes tap, long press and vertical drag from a single pointer
// sampled once per tick.
type gesture struct {
	deadZone       float64
	longPressTicks int

	down     bool
	dragging bool
	startX   float64
	startY   float64
	lastY    float64
	ticks    int
}

// step feeds one tick of pointer state.
func (g *gesture) step(pressed bool, x, y float64) gestureEvent {
	switch {
	case pressed && !g.down:
		g.down = true
		g.dragging = false
		g.startX, g.startY = x, y
		g.lastY = y
		g.ticks = 0
	case pressed:
		g.ticks++
		if !g.dragging && math.Hypot(x-g.startX, y-g.startY) > g.deadZone {
			g.dragging = true
		}
		if g.dragging {
			dy := g.lastY - y
			g.lastY = y
			if dy != 0 {
				return gestureEvent{kind: gestureDrag, x: x, y: y, dy: dy}
			}
		}
	case g.down:
		g.down = false
		if g.dragging {
			return gestureEvent{}
		}
		kind := gestureTap
		if g.longPressTicks > 0 && g.ticks >= g.longPressTicks {
			kind = gestureLongPress
		}
		return gestureEvent{kind: kind, x: g.startX, y: g.startY}
	}
	return gestureEvent{}
}
