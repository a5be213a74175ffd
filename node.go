package pickergrid

// nodeIDCounter is a plain counter (no atomic; the grid is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// ContentState is the load state of a realized node.
type ContentState uint8

const (
	ContentLoading ContentState = iota // placeholder shown, load in flight
	ContentLoaded                      // real content shown
	ContentFailed                      // load failed; placeholder kept, static
	ContentNone                        // pseudo-cell without content (collapse label)
)

// PaintHints are declarative rendering hints for the host. They replace any
// mirrored tint or vibrancy surfaces.
type PaintHints struct {
	Tint     TintMode
	Badge    IconState
	Selected bool
}

// animChannel indexes the independent tween slots of a node.
type animChannel uint8

const (
	chanMove       animChannel = iota // X, Y
	chanOffset                        // OffsetX, OffsetY
	chanAppearance                    // ScaleX, ScaleY, Alpha
	chanContent                       // ContentAlpha
	numChannels
)

// RealizedNode is a visual node bound to exactly one ItemKey at a time.
// Nodes are owned by the Reconciler; hosts read them and must not mutate them.
type RealizedNode struct {
	ID uint32

	key        ItemKey
	item       Item
	generation uint64

	// Frame is the node's target frame in content coordinates.
	Frame Rect

	// Presentation state, written by tweens.
	X, Y           float64
	ScaleX, ScaleY float64
	Alpha          float64
	// OffsetX and OffsetY are the additive translation used by anchored
	// transitions. They decay to zero.
	OffsetX, OffsetY float64
	// ContentAlpha crossfades from placeholder (0) to content (1).
	ContentAlpha float64

	State       ContentState
	Content     Content
	Placeholder *Placeholder
	Label       string // collapse label text, "" otherwise
	Hints       PaintHints

	load     LoadHandle
	tweens   [numChannels]*TweenGroup
	exiting  bool
	disposed bool
}

// nodeDefaults sets the presentation defaults shared by fresh and recycled
// nodes.
func nodeDefaults(n *RealizedNode) {
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.OffsetX = 0
	n.OffsetY = 0
	n.ContentAlpha = 0
	n.State = ContentLoading
	n.Content = Content{}
	n.Placeholder = nil
	n.Label = ""
	n.Hints = PaintHints{}
	n.load = LoadHandle{}
	n.tweens = [numChannels]*TweenGroup{}
	n.exiting = false
	n.disposed = false
}

func newRealizedNode() *RealizedNode {
	n := &RealizedNode{ID: nextNodeID()}
	nodeDefaults(n)
	return n
}

// Key returns the key the node is bound to.
func (n *RealizedNode) Key() ItemKey {
	return n.key
}

// Item returns the bound item. Pseudo-cells return the zero Item.
func (n *RealizedNode) Item() Item {
	return n.item
}

// Generation increments every time the node is bound to content. Load
// completions carrying an older generation are stale.
func (n *RealizedNode) Generation() uint64 {
	return n.generation
}

// Exiting reports whether the node is running its exit animation.
func (n *RealizedNode) Exiting() bool {
	return n.exiting
}

// IsDisposed returns true once the node has been released to the pool.
func (n *RealizedNode) IsDisposed() bool {
	return n.disposed
}

// RenderFrame is the frame the host draws this instant: the animated
// position plus the anchor offset, scaled about the frame center.
func (n *RealizedNode) RenderFrame() Rect {
	w := n.Frame.Width * n.ScaleX
	h := n.Frame.Height * n.ScaleY
	cx := n.X + n.OffsetX + n.Frame.Width/2
	cy := n.Y + n.OffsetY + n.Frame.Height/2
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// Animating reports whether any tween on the node is still running.
func (n *RealizedNode) Animating() bool {
	for _, tw := range n.tweens {
		if tw != nil && !tw.Done {
			return true
		}
	}
	return false
}

// setTween installs tw on a channel, replacing whatever ran there.
func (n *RealizedNode) setTween(ch animChannel, tw *TweenGroup) {
	n.tweens[ch] = tw
}

// stopTween drops a channel's tween, leaving fields where they are.
func (n *RealizedNode) stopTween(ch animChannel) {
	n.tweens[ch] = nil
}

// update advances every channel by dt seconds.
func (n *RealizedNode) update(dt float32) {
	for i, tw := range n.tweens {
		if n.disposed {
			return
		}
		if tw == nil {
			continue
		}
		tw.Update(dt)
		if tw.Done {
			n.tweens[i] = nil
			if tw.OnDone != nil {
				tw.OnDone()
			}
		}
	}
}

// placeAt snaps the presentation position to frame with no animation.
func (n *RealizedNode) placeAt(frame Rect) {
	n.Frame = frame
	n.X = frame.X
	n.Y = frame.Y
	n.stopTween(chanMove)
}

// cancelLoad disposes the in-flight load handle, if any.
func (n *RealizedNode) cancelLoad() {
	if n.load.Cancel != nil {
		n.load.Cancel()
	}
	n.load = LoadHandle{}
}

// dispose marks the node released. Tweens stop on their next update.
func (n *RealizedNode) dispose() {
	n.cancelLoad()
	n.disposed = true
	n.exiting = false
	n.tweens = [numChannels]*TweenGroup{}
	n.Content = Content{}
	n.Placeholder = nil
	n.item = Item{}
}
