package pickergrid

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultShimmerPeriod is the duration of one shimmer sweep, in seconds.
const DefaultShimmerPeriod float32 = 1.2

// Shimmer is the shared sweep effect drawn over loading placeholders. It is
// owned by a PlaceholderManager and attached exactly while at least one
// placeholder is shimmering.
type Shimmer struct {
	attached bool
	period   float32
	sweep    *gween.Tween
	phase    float64
}

func newShimmer(period float32) *Shimmer {
	if period <= 0 {
		period = DefaultShimmerPeriod
	}
	return &Shimmer{period: period}
}

// Attach starts the effect from phase 0. No-op when already attached.
func (s *Shimmer) Attach() {
	if s.attached {
		return
	}
	s.attached = true
	s.phase = 0
	s.sweep = gween.New(0, 1, s.period, ease.Linear)
}

// Detach stops the effect.
func (s *Shimmer) Detach() {
	s.attached = false
	s.sweep = nil
	s.phase = 0
}

// Active reports whether the effect is attached.
func (s *Shimmer) Active() bool {
	return s.attached
}

// Phase is the sweep position in [0, 1).
func (s *Shimmer) Phase() float64 {
	return s.phase
}

// Update advances the sweep, wrapping at the end of each period.
func (s *Shimmer) Update(dt float32) {
	if !s.attached {
		return
	}
	val, done := s.sweep.Update(dt)
	s.phase = float64(val)
	if done {
		s.sweep.Reset()
		s.phase = 0
	}
}

// PlaceholderManager tracks which realized nodes show a loading placeholder
// and drives the shimmer from that count.
type PlaceholderManager struct {
	shimmer *Shimmer
	loading map[ItemKey]struct{}
	timings Timings
}

// NewPlaceholderManager creates a manager with its own Shimmer.
func NewPlaceholderManager(timings Timings, shimmerPeriod float32) *PlaceholderManager {
	return &PlaceholderManager{
		shimmer: newShimmer(shimmerPeriod),
		loading: make(map[ItemKey]struct{}),
		timings: timings,
	}
}

// Shimmer returns the managed shimmer effect.
func (m *PlaceholderManager) Shimmer() *Shimmer {
	return m.shimmer
}

// Count returns the number of shimmering placeholders.
func (m *PlaceholderManager) Count() int {
	return len(m.loading)
}

// Show puts a loading placeholder on n.
func (m *PlaceholderManager) Show(n *RealizedNode, p *Placeholder) {
	n.Placeholder = p
	n.ContentAlpha = 0
	m.loading[n.key] = struct{}{}
	m.sync()
}

// Resolve applies a load outcome. Success crossfades to content; failure
// keeps a static silhouette for as long as the node lives.
func (m *PlaceholderManager) Resolve(n *RealizedNode, r LoadResult) {
	delete(m.loading, n.key)
	if r.Err != nil {
		n.State = ContentFailed
		m.sync()
		return
	}
	n.State = ContentLoaded
	n.Content = r.Content
	tw := TweenContentAlpha(n, 1, m.timings.Crossfade, m.timings.easing())
	tw.OnDone = func() { n.Placeholder = nil }
	n.setTween(chanContent, tw)
	m.sync()
}

// Release forgets key. Called when its node leaves the live set or rebinds.
func (m *PlaceholderManager) Release(key ItemKey) {
	if _, ok := m.loading[key]; !ok {
		return
	}
	delete(m.loading, key)
	m.sync()
}

// sync attaches or detaches the shimmer so that it is active exactly when
// Count() > 0.
func (m *PlaceholderManager) sync() {
	switch {
	case len(m.loading) > 0 && !m.shimmer.Active():
		m.shimmer.Attach()
	case len(m.loading) == 0 && m.shimmer.Active():
		m.shimmer.Detach()
	}
}
