package pickergrid

// IntentKind identifies a user intent emitted by the grid.
type IntentKind uint8

const (
	IntentItemActivated        IntentKind = iota // an item cell was activated
	IntentGroupCleared                           // a group's clear button was used
	IntentGroupExpandRequested                   // a collapsed group was expanded
)

// String implements fmt.Stringer.
func (k IntentKind) String() string {
	switch k {
	case IntentItemActivated:
		return "ItemActivated"
	case IntentGroupCleared:
		return "GroupCleared"
	case IntentGroupExpandRequested:
		return "GroupExpandRequested"
	default:
		return "Unknown"
	}
}

// Trigger is how an activation happened.
type Trigger uint8

const (
	TriggerTap       Trigger = iota // primary click / tap
	TriggerLongPress                // press and hold (preview)
	TriggerKeyboard                 // keyboard selection
)

func (t Trigger) String() string {
	switch t {
	case TriggerTap:
		return "tap"
	case TriggerLongPress:
		return "long-press"
	case TriggerKeyboard:
		return "keyboard"
	default:
		return "unknown"
	}
}

// Intent is a single typed event for the host. It replaces per-action
// callback fields.
type Intent struct {
	Kind    IntentKind
	Key     ItemKey // IntentItemActivated only
	GroupID GroupID
	Trigger Trigger // IntentItemActivated only
}

// IntentSink receives intents. Set one on a GridView with SetIntentSink.
type IntentSink interface {
	EmitIntent(Intent)
}

// IntentQueue is an IntentSink buffering intents until drained.
type IntentQueue struct {
	intents []Intent
}

// EmitIntent implements IntentSink.
func (q *IntentQueue) EmitIntent(i Intent) {
	q.intents = append(q.intents, i)
}

// Drain returns the buffered intents and empties the queue.
func (q *IntentQueue) Drain() []Intent {
	out := q.intents
	q.intents = nil
	return out
}
