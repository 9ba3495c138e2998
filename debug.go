package rhythmui

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger for rhythmui and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: per-frame stats in debug mode, tracking start/stop
//   - [slog.LevelWarn]: oversized trees in debug mode
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages call this to share the
// same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// frameStats holds per-frame metrics. Only populated when Scene.debug is true.
type frameStats struct {
	frame     uint64
	nodes     int
	tweens    int
	updateDur time.Duration
}

// debugLog reports frame stats at debug level.
func (s *Scene) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	Logger().Debug("frame",
		slog.Uint64("frame", stats.frame),
		slog.Int("nodes", stats.nodes),
		slog.Int("tweens", stats.tweens),
		slog.Duration("update", stats.updateDur),
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("rhythmui debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold",
			slog.Int("depth", depth), slog.Int("threshold", debugMaxTreeDepth), slog.String("node", n.Name))
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		Logger().Warn("child count exceeds threshold",
			slog.Int("children", len(n.children)), slog.Int("threshold", debugMaxChildCount), slog.String("node", n.Name))
	}
}

func countNodes(n *Node) int {
	c := 1
	for _, child := range n.children {
		c += countNodes(child)
	}
	return c
}

func countTweens(n *Node) int {
	c := len(n.tweens)
	for _, child := range n.children {
		c += countTweens(child)
	}
	return c
}
