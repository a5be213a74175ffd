package pickergrid

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := newRealizedNode()
	node.X = 10
	node.Y = 20

	g := TweenPosition(node, 100, 200, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if node.X != 100 || node.Y != 200 {
		t.Errorf("(X, Y) = (%f, %f), want exactly (100, 200)", node.X, node.Y)
	}
}

func TestTweenLandsOnFloat64Target(t *testing.T) {
	node := newRealizedNode()
	target := 24.0 / 7.0 // not representable in float32

	g := TweenPosition(node, target, -target, 0.2, ease.OutCubic)
	g.Update(1)

	if node.X != target || node.Y != -target {
		t.Errorf("X = %v, want %v", node.X, target)
	}
}

func TestTweenAppearanceInterpolates(t *testing.T) {
	node := newRealizedNode()
	node.ScaleX, node.ScaleY, node.Alpha = 0, 0, 0

	g := TweenAppearance(node, 1, 1, 1.0, ease.Linear)
	g.Update(0.5)

	if math.Abs(node.Alpha-0.5) > 0.01 || math.Abs(node.ScaleX-0.5) > 0.01 {
		t.Errorf("midpoint alpha = %f scale = %f, want ~0.5", node.Alpha, node.ScaleX)
	}
	if g.Done {
		t.Error("should not be done at midpoint")
	}
}

func TestTweenOffsetDecaysToZero(t *testing.T) {
	node := newRealizedNode()
	g := TweenOffset(node, 0, -80, 0.5, ease.Linear)

	if node.OffsetY != -80 {
		t.Fatalf("OffsetY = %f, want -80 at start", node.OffsetY)
	}
	g.Update(0.25)
	if math.Abs(node.OffsetY+40) > 0.5 {
		t.Errorf("OffsetY = %f, want ~-40", node.OffsetY)
	}
	g.Update(0.25)
	if node.OffsetY != 0 || !g.Done {
		t.Errorf("OffsetY = %f Done = %v", node.OffsetY, g.Done)
	}
}

func TestTweenStopsOnDisposedNode(t *testing.T) {
	node := newRealizedNode()
	g := TweenPosition(node, 100, 100, 1.0, ease.Linear)
	node.dispose()

	g.Update(0.5)
	if !g.Done {
		t.Error("tween on a disposed node should finish immediately")
	}
	if node.X != 0 {
		t.Errorf("X = %f, disposed node must not be written", node.X)
	}
}

func TestAddOffsetComposes(t *testing.T) {
	node := newRealizedNode()
	timings := DefaultTimings()
	timings.Ease = ease.Linear

	addOffset(node, 0, -100, timings)
	node.update(timings.Offset / 2)
	mid := node.OffsetY

	addOffset(node, 0, 30, timings)
	if !approxEqual(node.OffsetY, mid+30, 1e-9) {
		t.Errorf("OffsetY = %f, want remaining %f plus 30", node.OffsetY, mid)
	}
	node.update(1)
	if node.OffsetY != 0 {
		t.Errorf("OffsetY = %f after decay, want 0", node.OffsetY)
	}

	addOffset(node, 0, 0, timings)
	if node.tweens[chanOffset] != nil {
		t.Error("zero offset should not start a tween")
	}
}

func TestAnimateMoveSkipsWhenInPlace(t *testing.T) {
	node := newRealizedNode()
	frame := Rect{X: 5, Y: 6, Width: 40, Height: 40}
	node.placeAt(frame)

	animateMove(node, frame, DefaultTimings())
	if node.tweens[chanMove] != nil {
		t.Error("no move tween expected for an unchanged frame")
	}

	animateMove(node, frame.Offset(0, 50), DefaultTimings())
	if node.tweens[chanMove] == nil {
		t.Fatal("expected a move tween")
	}
	node.update(1)
	if node.Y != 56 {
		t.Errorf("Y = %f, want 56", node.Y)
	}
}

func TestTimingsDefaultEase(t *testing.T) {
	var tm Timings
	if tm.easing() == nil {
		t.Error("zero Timings should fall back to a default ease")
	}
}
