package pickergrid

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-update timing and node counts.
// Only populated when GridView.debug is true.
type debugStats struct {
	layoutTime     time.Duration
	virtualizeTime time.Duration
	reconcileTime  time.Duration
	anchorTime     time.Duration
	live           int
	exiting        int
	created        int
	removed        int
	placeholders   int
	staleLoads     int
	offset         float64
}

// debugLog prints timing and node stats to stderr.
func (g *GridView) debugLog(stats debugStats) {
	if !g.debug {
		return
	}
	total := stats.layoutTime + stats.virtualizeTime + stats.reconcileTime + stats.anchorTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[pickergrid] layout: %v | virtualize: %v | reconcile: %v | anchor: %v | total: %v\n",
		stats.layoutTime, stats.virtualizeTime, stats.reconcileTime, stats.anchorTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[pickergrid] live: %d | exiting: %d | created: %d | removed: %d | placeholders: %d | offset: %.1f\n",
		stats.live, stats.exiting, stats.created, stats.removed, stats.placeholders, stats.offset)
	if stats.staleLoads > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "[pickergrid] dropped %d stale load completions\n", stats.staleLoads)
	}
}

// debugCheckNodes panics when the live node set breaks the one-node-per-key
// rule or a node is bound to a key other than its own. Only called in debug
// mode.
func debugCheckNodes(r *Reconciler) {
	if len(r.order) != len(r.nodes) {
		panic(fmt.Sprintf("pickergrid debug: %d ordered keys for %d live nodes", len(r.order), len(r.nodes)))
	}
	seen := make(map[uint32]ItemKey, len(r.nodes))
	for _, k := range r.order {
		n, ok := r.nodes[k]
		if !ok {
			panic(fmt.Sprintf("pickergrid debug: key %s has no node", k))
		}
		if n.key != k {
			panic(fmt.Sprintf("pickergrid debug: node %d bound to %s listed under %s", n.ID, n.key, k))
		}
		if n.disposed {
			panic(fmt.Sprintf("pickergrid debug: live key %s holds disposed node %d", k, n.ID))
		}
		if prev, dup := seen[n.ID]; dup {
			panic(fmt.Sprintf("pickergrid debug: node %d shared by %s and %s", n.ID, prev, k))
		}
		seen[n.ID] = k
	}
}
