package rhythmui

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func debugScene(t *testing.T) *Scene {
	t.Helper()
	s := NewScene()
	s.SetDebugMode(true)
	t.Cleanup(func() { s.SetDebugMode(false) })
	return s
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestDebugDisposedPanics(t *testing.T) {
	s := debugScene(t)
	n := NewContainer("gone")
	n.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for disposed node in debug mode")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "disposed") {
			t.Errorf("panic = %v", r)
		}
	}()
	s.Root().AddChild(n)
}

func TestDisposedNodeAllowedOutsideDebug(t *testing.T) {
	globalDebug = false
	parent := NewContainer("parent")
	n := NewContainer("gone")
	n.Dispose()
	parent.AddChild(n)
	if parent.NumChildren() != 1 {
		t.Error("release mode should not check disposal")
	}
}

func TestDebugTreeDepthWarning(t *testing.T) {
	buf := captureLogs(t)
	s := debugScene(t)

	parent := s.Root()
	for i := 0; i < debugMaxTreeDepth; i++ {
		child := NewContainer("deep")
		parent.AddChild(child)
		parent = child
	}
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("log output = %q", buf.String())
	}
}

func TestDebugChildCountWarning(t *testing.T) {
	buf := captureLogs(t)
	s := debugScene(t)

	for i := 0; i <= debugMaxChildCount; i++ {
		s.Root().AddChild(NewContainer("leaf"))
	}
	if !strings.Contains(buf.String(), "child count exceeds threshold") {
		t.Errorf("log output = %q", buf.String())
	}
}

func TestDebugFrameStats(t *testing.T) {
	buf := captureLogs(t)
	s := debugScene(t)
	n := NewBox("n", 1, 1)
	s.Root().AddChild(n)
	n.FadeTo(0, 1, nil)
	s.Step(0.1)

	out := buf.String()
	if !strings.Contains(out, "msg=frame") || !strings.Contains(out, "nodes=2") || !strings.Contains(out, "tweens=1") {
		t.Errorf("log output = %q", out)
	}
}

func TestCountNodesAndTweens(t *testing.T) {
	root := NewContainer("root")
	a := NewBox("a", 1, 1)
	b := NewBox("b", 1, 1)
	root.AddChild(a)
	a.AddChild(b)
	b.FadeTo(0, 1, nil)
	b.ScaleTo(2, 1, nil)

	if got := countNodes(root); got != 3 {
		t.Errorf("countNodes = %d, want 3", got)
	}
	if got := countTweens(root); got != 2 {
		t.Errorf("countTweens = %d, want 2", got)
	}
}
