package folio

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and bookkeeping counts.
// Only populated when Scene.debug is true.
type debugStats struct {
	stepTime     time.Duration
	traverseTime time.Duration
	sortTime     time.Duration
	submitTime   time.Duration
	commandCount int
	tickers      int
	observers    int
}

// debugLog prints timing and bookkeeping stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.traverseTime + stats.sortTime + stats.submitTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[folio] step: %v | traverse: %v | sort: %v | submit: %v | draw total: %v\n",
		stats.stepTime, stats.traverseTime, stats.sortTime, stats.submitTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[folio] commands: %d | tickers: %d | intersection observers: %d | scroll: %.0f\n",
		stats.commandCount, stats.tickers, stats.observers, s.camera.ScrollOffset())
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called when debug mode is on.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("folio debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[folio] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
