package pickergrid

import (
	"math"
	"sort"
)

// Transition selects how a reconcile pass animates.
type Transition uint8

const (
	// TransitionNone creates and releases nodes immediately (plain
	// scrolling, initial load).
	TransitionNone Transition = iota
	// TransitionAnimated scales/fades nodes in and out and tweens kept nodes
	// to their new frames.
	TransitionAnimated
	// TransitionAnchored places nodes directly at their targets; the anchor
	// offset supplies the motion.
	TransitionAnchored
)

// PositionHints maps keys to a future or former position (content
// coordinates). Exiting nodes with a hint travel toward it while fading.
type PositionHints map[ItemKey]Vec2

// ReconcileResult lists what a pass did. Created and Kept are in document
// order.
type ReconcileResult struct {
	Created []ItemKey
	Kept    []ItemKey
	Removed []ItemKey
}

// validCell is one entry of the valid key set.
type validCell struct {
	key        ItemKey
	groupIndex int
	cellIndex  int
	frame      Rect
}

// generationCounter numbers node bindings. Never reused, so a recycled node
// can't accept a completion meant for its previous binding.
var generationCounter uint64

func nextGeneration() uint64 {
	generationCounter++
	return generationCounter
}

// Reconciler owns the realized nodes. It diffs the live node set against
// the keys implied by a visible set, binding new nodes to content and
// releasing old ones.
type Reconciler struct {
	nodes   map[ItemKey]*RealizedNode
	order   []ItemKey // live keys in document order
	exiting map[ItemKey]*RealizedNode

	pool         nodePool
	loader       ContentLoader
	completions  completionQueue
	placeholders *PlaceholderManager
	timings      Timings

	// PixelScale converts frame points to the pixel size requested from
	// the loader.
	PixelScale float64

	valid       []validCell
	validSet    map[ItemKey]struct{}
	resultBuf   []LoadResult
	staleLoads  int
	releasedCnt int
}

// NewReconciler creates a reconciler. loader may be nil, in which case item
// nodes keep a static placeholder.
func NewReconciler(loader ContentLoader, placeholders *PlaceholderManager, timings Timings) *Reconciler {
	if placeholders == nil {
		placeholders = NewPlaceholderManager(timings, DefaultShimmerPeriod)
	}
	return &Reconciler{
		nodes:        make(map[ItemKey]*RealizedNode),
		exiting:      make(map[ItemKey]*RealizedNode),
		loader:       loader,
		placeholders: placeholders,
		timings:      timings,
		PixelScale:   1,
		validSet:     make(map[ItemKey]struct{}),
	}
}

// Placeholders returns the placeholder manager.
func (r *Reconciler) Placeholders() *PlaceholderManager {
	return r.placeholders
}

// Node returns the live node bound to key.
func (r *Reconciler) Node(key ItemKey) (*RealizedNode, bool) {
	n, ok := r.nodes[key]
	return n, ok
}

// Len returns the number of live nodes.
func (r *Reconciler) Len() int {
	return len(r.nodes)
}

// Keys returns the live keys in document order. The returned slice MUST NOT
// be mutated.
func (r *Reconciler) Keys() []ItemKey {
	return r.order
}

// Nodes returns the live nodes in document order.
func (r *Reconciler) Nodes() []*RealizedNode {
	out := make([]*RealizedNode, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.nodes[k])
	}
	return out
}

// Exiting returns the nodes running exit animations, ordered by node ID.
func (r *Reconciler) Exiting() []*RealizedNode {
	out := make([]*RealizedNode, 0, len(r.exiting))
	for _, n := range r.exiting {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// StaleLoads returns how many completions were dropped because their
// binding no longer existed.
func (r *Reconciler) StaleLoads() int {
	return r.staleLoads
}

// Reconcile makes the live node set equal the valid keys implied by visible.
// On return Keys() holds exactly those keys, each bound to one node.
func (r *Reconciler) Reconcile(layout *ItemLayout, visible []VisibleGroup, hints PositionHints, tr Transition, selected func(ItemKey) bool) ReconcileResult {
	r.collectValid(layout, visible)

	var res ReconcileResult
	// Removals first so released nodes are back in the pool for this pass.
	for _, k := range r.order {
		if _, ok := r.validSet[k]; ok {
			continue
		}
		n, ok := r.nodes[k]
		if !ok {
			continue
		}
		delete(r.nodes, k)
		r.remove(n, hints, tr)
		res.Removed = append(res.Removed, k)
	}

	order := r.order[:0:0]
	for i := range r.valid {
		c := &r.valid[i]
		order = append(order, c.key)

		if n, ok := r.nodes[c.key]; ok {
			r.updateNode(n, layout, c, tr, selected)
			res.Kept = append(res.Kept, c.key)
			continue
		}
		if n, ok := r.exiting[c.key]; ok {
			r.resurrect(n, tr)
			r.nodes[c.key] = n
			r.updateNode(n, layout, c, tr, selected)
			res.Kept = append(res.Kept, c.key)
			continue
		}

		n := r.pool.Acquire()
		r.bind(n, layout, c, selected)
		n.placeAt(c.frame)
		if tr == TransitionAnimated {
			animateAppear(n, r.timings)
		}
		r.nodes[c.key] = n
		res.Created = append(res.Created, c.key)
	}

	r.order = order
	return res
}

// collectValid fills r.valid/r.validSet from the visible set. Duplicate keys
// (an item listed twice in a group) keep their first cell only.
func (r *Reconciler) collectValid(layout *ItemLayout, visible []VisibleGroup) {
	r.valid = r.valid[:0]
	clear(r.validSet)
	for _, vg := range visible {
		g := &layout.Groups[vg.GroupIndex]
		for ci := vg.Range.Start; ci < vg.Range.End; ci++ {
			key := layout.KeyAt(vg.GroupIndex, ci)
			if _, dup := r.validSet[key]; dup {
				continue
			}
			r.validSet[key] = struct{}{}
			r.valid = append(r.valid, validCell{
				key:        key,
				groupIndex: vg.GroupIndex,
				cellIndex:  ci,
				frame:      g.CellFrame(ci),
			})
		}
	}
}

// bind attaches a fresh node to a cell and starts its content load.
func (r *Reconciler) bind(n *RealizedNode, layout *ItemLayout, c *validCell, selected func(ItemKey) bool) {
	n.key = c.key
	n.generation = nextGeneration()
	n.Frame = c.frame

	switch c.key.Kind {
	case KeyCollapseLabel:
		n.State = ContentNone
		n.Label = layout.Groups[c.groupIndex].Collapse.Label
	case KeyPlaceholder:
		n.State = ContentLoading
		r.placeholders.Show(n, &Placeholder{Kind: PlaceholderCell, AspectRatio: 1})
	default:
		item, _ := layout.ItemAt(c.groupIndex, c.cellIndex)
		r.bindItem(n, item, c.frame)
	}
	n.Hints.Selected = selected != nil && selected(c.key)
}

// bindItem binds item content to n, cancelling any previous load.
func (r *Reconciler) bindItem(n *RealizedNode, item Item, frame Rect) {
	r.placeholders.Release(n.key)
	n.cancelLoad()
	n.item = item
	n.Hints.Tint = item.Tint
	n.Hints.Badge = item.Icon
	n.Content = Content{}
	n.ContentAlpha = 0
	n.stopTween(chanContent)

	if r.loader == nil {
		n.State = ContentFailed
		n.Placeholder = PlaceholderFor(item.Content)
		return
	}
	n.State = ContentLoading
	req := LoadRequest{
		Key:        n.key,
		Generation: n.generation,
		Descriptor: item.Content,
		PixelSize:  int(math.Ceil(frame.Width * r.PixelScale)),
	}
	n.load = r.loader.Load(req, r.completions.post)
	ph := n.load.Placeholder
	if ph == nil {
		ph = PlaceholderFor(item.Content)
	}
	r.placeholders.Show(n, ph)
}

// updateNode refreshes a node whose key stays valid.
func (r *Reconciler) updateNode(n *RealizedNode, layout *ItemLayout, c *validCell, tr Transition, selected func(ItemKey) bool) {
	switch c.key.Kind {
	case KeyItem:
		item, _ := layout.ItemAt(c.groupIndex, c.cellIndex)
		if !item.Content.Equal(n.item.Content) {
			n.generation = nextGeneration()
			r.bindItem(n, item, c.frame)
		} else {
			n.item = item
			n.Hints.Tint = item.Tint
			n.Hints.Badge = item.Icon
		}
	case KeyCollapseLabel:
		n.Label = layout.Groups[c.groupIndex].Collapse.Label
	}
	n.Hints.Selected = selected != nil && selected(c.key)

	switch {
	case tr == TransitionAnimated:
		animateMove(n, c.frame, r.timings)
	case tr == TransitionAnchored || n.Frame != c.frame:
		n.placeAt(c.frame)
	}
}

// resurrect cancels an exit animation for a key that became valid again.
func (r *Reconciler) resurrect(n *RealizedNode, tr Transition) {
	delete(r.exiting, n.key)
	n.exiting = false
	n.stopTween(chanMove)
	if tr == TransitionAnimated {
		n.setTween(chanAppearance, TweenAppearance(n, 1, 1, r.timings.Appear, r.timings.easing()))
	} else {
		n.stopTween(chanAppearance)
		n.ScaleX, n.ScaleY, n.Alpha = 1, 1, 1
		n.X, n.Y = n.Frame.X, n.Frame.Y
	}
	if n.State == ContentLoading && n.Placeholder != nil {
		r.placeholders.Show(n, n.Placeholder)
	}
}

// remove takes a node out of the live set and starts its exit.
func (r *Reconciler) remove(n *RealizedNode, hints PositionHints, tr Transition) {
	r.placeholders.Release(n.key)
	if tr == TransitionNone {
		r.release(n)
		return
	}

	n.exiting = true
	r.exiting[n.key] = n
	var exit *TweenGroup
	if pos, ok := hints[n.key]; ok {
		n.setTween(chanMove, TweenPosition(n, pos.X, pos.Y, r.timings.Disappear, r.timings.easing()))
		exit = TweenAlpha(n, 0, r.timings.Disappear, r.timings.easing())
	} else {
		n.stopTween(chanMove)
		exit = TweenAppearance(n, appearScale, 0, r.timings.Disappear, r.timings.easing())
	}
	exit.OnDone = func() {
		if n.exiting {
			r.release(n)
		}
	}
	n.setTween(chanAppearance, exit)
}

// release disposes n and returns it to the pool.
func (r *Reconciler) release(n *RealizedNode) {
	delete(r.exiting, n.key)
	n.dispose()
	r.pool.Release(n)
	r.releasedCnt++
}

// ApplyCompletions drains finished loads into their nodes. A completion is
// applied only when a live or exiting node is still bound to its key with the
// same generation; anything else is dropped silently. Exiting nodes keep
// their load so a node resurrected mid-exit does not stay loading.
func (r *Reconciler) ApplyCompletions() int {
	r.resultBuf = r.completions.drain(r.resultBuf[:0])
	applied := 0
	for _, res := range r.resultBuf {
		n, ok := r.nodes[res.Key]
		if !ok {
			n, ok = r.exiting[res.Key]
		}
		if !ok || n.generation != res.Generation || n.State != ContentLoading {
			r.staleLoads++
			continue
		}
		n.load = LoadHandle{}
		r.placeholders.Resolve(n, res)
		applied++
	}
	clear(r.resultBuf)
	return applied
}

// Update advances every node animation by dt seconds. Exit animations that
// finish release their nodes.
func (r *Reconciler) Update(dt float32) {
	for _, k := range r.order {
		r.nodes[k].update(dt)
	}
	for _, n := range r.exiting {
		n.update(dt)
	}
}

// ReleaseAll drops every node immediately, live and exiting.
func (r *Reconciler) ReleaseAll() {
	for _, k := range r.order {
		n := r.nodes[k]
		delete(r.nodes, k)
		r.placeholders.Release(k)
		r.release(n)
	}
	r.order = r.order[:0]
	for _, n := range r.exiting {
		r.release(n)
	}
}

// SetSelected updates the selection hint on a live node.
func (r *Reconciler) SetSelected(key ItemKey, selected bool) {
	if n, ok := r.nodes[key]; ok {
		n.Hints.Selected = selected
	}
}
