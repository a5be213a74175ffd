package pickergrid

// GroupSet is a set of group ids.
type GroupSet map[GroupID]struct{}

// Has reports membership. A nil set is empty.
func (s GroupSet) Has(id GroupID) bool {
	_, ok := s[id]
	return ok
}

// HintKind is the semantic cause of a layout-changing update.
type HintKind uint8

const (
	HintNone           HintKind = iota // no animation, no anchoring offset
	HintGeneric                        // generic content change
	HintGroupExpanded                  // a collapsed group was expanded
	HintGroupInstalled                 // a group was added
	HintGroupRemoved                   // a group was removed
)

// ContentAnimationHint tags one update cycle. It is consumed by the update
// and cleared.
type ContentAnimationHint struct {
	Kind    HintKind
	GroupID GroupID
	// ScrollToTarget snaps the scroll position to GroupID before anchoring.
	// Only meaningful for HintGroupInstalled and HintGroupRemoved.
	ScrollToTarget bool
}

// GenericHint tags a generic content change.
func GenericHint() ContentAnimationHint {
	return ContentAnimationHint{Kind: HintGeneric}
}

// GroupExpandedHint tags the expansion of id.
func GroupExpandedHint(id GroupID) ContentAnimationHint {
	return ContentAnimationHint{Kind: HintGroupExpanded, GroupID: id}
}

// GroupInstalledHint tags the installation of id.
func GroupInstalledHint(id GroupID, scrollToTarget bool) ContentAnimationHint {
	return ContentAnimationHint{Kind: HintGroupInstalled, GroupID: id, ScrollToTarget: scrollToTarget}
}

// GroupRemovedHint tags the removal of id.
func GroupRemovedHint(id GroupID, scrollToTarget bool) ContentAnimationHint {
	return ContentAnimationHint{Kind: HintGroupRemoved, GroupID: id, ScrollToTarget: scrollToTarget}
}

// tracksGroupSeparately reports whether the group's nodes are kept out of the
// anchor snapshot.
func (h ContentAnimationHint) tracksGroupSeparately() bool {
	return h.Kind == HintGroupInstalled || h.Kind == HintGroupRemoved
}

// transition maps the hint to the reconcile transition it implies.
func (h ContentAnimationHint) transition() Transition {
	switch h.Kind {
	case HintNone:
		return TransitionNone
	case HintGeneric:
		return TransitionAnimated
	default:
		return TransitionAnchored
	}
}

// GroupStateController owns the ephemeral UI state that parametrizes layout
// and reconciliation: expanded groups, the pending animation hint and the
// selection set.
type GroupStateController struct {
	expanded  GroupSet
	hint      ContentAnimationHint
	selection map[ItemKey]struct{}

	emit          func(Intent)
	requestUpdate func()
}

// NewGroupStateController creates a controller. emit receives intents;
// requestUpdate is called whenever a change needs a layout-changing update.
// Either may be nil.
func NewGroupStateController(emit func(Intent), requestUpdate func()) *GroupStateController {
	return &GroupStateController{
		expanded:      make(GroupSet),
		selection:     make(map[ItemKey]struct{}),
		emit:          emit,
		requestUpdate: requestUpdate,
	}
}

// Expanded returns the expanded group set. The returned map MUST NOT be
// mutated.
func (c *GroupStateController) Expanded() GroupSet {
	return c.expanded
}

// IsExpanded reports whether id is expanded.
func (c *GroupStateController) IsExpanded(id GroupID) bool {
	return c.expanded.Has(id)
}

// ExpandGroup expands id, records a GroupExpanded hint, emits
// GroupExpandRequested and requests an update. Expanding an expanded group
// is a no-op.
func (c *GroupStateController) ExpandGroup(id GroupID) {
	if c.expanded.Has(id) {
		return
	}
	c.expanded[id] = struct{}{}
	c.hint = GroupExpandedHint(id)
	if c.emit != nil {
		c.emit(Intent{Kind: IntentGroupExpandRequested, GroupID: id})
	}
	if c.requestUpdate != nil {
		c.requestUpdate()
	}
}

// CollapseGroup reverses ExpandGroup.
func (c *GroupStateController) CollapseGroup(id GroupID) {
	if !c.expanded.Has(id) {
		return
	}
	delete(c.expanded, id)
	c.hint = GenericHint()
	if c.requestUpdate != nil {
		c.requestUpdate()
	}
}

// SetHint records the hint for the next update cycle.
func (c *GroupStateController) SetHint(h ContentAnimationHint) {
	c.hint = h
}

// TakeHint returns the pending hint and clears it.
func (c *GroupStateController) TakeHint() ContentAnimationHint {
	h := c.hint
	c.hint = ContentAnimationHint{}
	return h
}

// PendingHint returns the pending hint without clearing it.
func (c *GroupStateController) PendingHint() ContentAnimationHint {
	return c.hint
}

// SetSelected adds or removes key from the selection. Selection never
// affects layout.
func (c *GroupStateController) SetSelected(key ItemKey, selected bool) {
	if selected {
		c.selection[key] = struct{}{}
	} else {
		delete(c.selection, key)
	}
}

// SetSelection replaces the whole selection.
func (c *GroupStateController) SetSelection(keys []ItemKey) {
	clear(c.selection)
	for _, k := range keys {
		c.selection[k] = struct{}{}
	}
}

// IsSelected reports whether key is selected.
func (c *GroupStateController) IsSelected(key ItemKey) bool {
	_, ok := c.selection[key]
	return ok
}
