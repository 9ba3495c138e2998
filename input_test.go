package rhythmui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	actionA Action = 1
	actionB Action = 2
)

type recorder struct {
	events []string
}

func (r *recorder) handler(name string, consume bool) *Node {
	n := NewContainer(name)
	n.OnPressed = func(a Action) bool {
		r.events = append(r.events, name+" press")
		return consume
	}
	n.OnReleased = func(a Action) {
		r.events = append(r.events, name+" release")
	}
	return n
}

func assertEvents(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
}

func TestPressDispatchFrontToBack(t *testing.T) {
	var r recorder
	s := NewScene()
	s.Root().AddChildren(r.handler("back", false), r.handler("front", false))

	s.InjectPress(actionA)
	s.Step(0)
	assertEvents(t, r.events, "front press", "back press")
	if !s.IsHeld(actionA) {
		t.Error("action should be held")
	}

	r.events = nil
	s.InjectRelease(actionA)
	s.Step(0)
	assertEvents(t, r.events, "front release", "back release")
	if s.IsHeld(actionA) {
		t.Error("action should be released")
	}
}

func TestConsumedPressStopsPropagation(t *testing.T) {
	var r recorder
	s := NewScene()
	s.Root().AddChildren(r.handler("back", false), r.handler("front", true))

	s.InjectTap(actionA)
	s.Step(0)
	s.Step(0)
	assertEvents(t, r.events, "front press", "front release")
}

func TestHeldPressIgnored(t *testing.T) {
	var r recorder
	s := NewScene()
	s.Root().AddChild(r.handler("only", false))

	s.InjectPress(actionA)
	s.InjectPress(actionA)
	s.Step(0)
	s.Step(0)
	assertEvents(t, r.events, "only press")
}

func TestReleaseWithoutPressIgnored(t *testing.T) {
	var r recorder
	s := NewScene()
	s.Root().AddChild(r.handler("only", false))
	s.InjectRelease(actionB)
	s.Step(0)
	assertEvents(t, r.events)
}

func TestNotPresentNodesSkipped(t *testing.T) {
	var r recorder
	s := NewScene()
	hidden := r.handler("hidden", false)
	hidden.Visible = false
	faded := r.handler("faded", false)
	faded.Alpha = 0
	s.Root().AddChildren(hidden, faded, r.handler("shown", false))

	s.InjectPress(actionA)
	s.Step(0)
	assertEvents(t, r.events, "shown press")
}

func TestDisposedReceiverSkippedOnRelease(t *testing.T) {
	var r recorder
	s := NewScene()
	gone := r.handler("gone", false)
	s.Root().AddChildren(r.handler("kept", false), gone)

	s.InjectPress(actionA)
	s.Step(0)
	gone.Dispose()
	r.events = nil
	s.InjectRelease(actionA)
	s.Step(0)
	assertEvents(t, r.events, "kept release")
}

func TestOneInjectedEventPerFrame(t *testing.T) {
	s := NewScene()
	s.InjectTap(actionA)
	s.InjectTap(actionB)
	if s.PendingInjections() != 4 {
		t.Fatalf("pending = %d, want 4", s.PendingInjections())
	}
	s.Step(0)
	if s.PendingInjections() != 3 {
		t.Errorf("pending after one frame = %d, want 3", s.PendingInjections())
	}
}

func TestKeyBindings(t *testing.T) {
	s := NewScene()
	s.BindKey(ebiten.KeyD, actionA)
	s.BindKey(ebiten.KeyF, actionB)
	if got := s.KeyBindings(); len(got) != 2 || got[1].Key != ebiten.KeyF || got[1].Action != actionB {
		t.Errorf("bindings = %+v", got)
	}
	s.ClearKeyBindings()
	if len(s.KeyBindings()) != 0 {
		t.Error("bindings should be cleared")
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("Space")
	if err != nil || k != ebiten.KeySpace {
		t.Errorf("ParseKey(Space) = %v, %v", k, err)
	}
	if _, err := ParseKey("NotAKey"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestUnbindKey(t *testing.T) {
	s := NewScene()
	s.BindKey(ebiten.KeyD, actionA)
	s.BindKey(ebiten.KeyD, actionB)
	if !s.UnbindKey(ebiten.KeyD, actionA) {
		t.Fatal("UnbindKey should find the binding")
	}
	if got := s.KeyBindings(); len(got) != 1 || got[0].Action != actionB {
		t.Errorf("bindings = %+v", got)
	}
	if s.UnbindKey(ebiten.KeyF, actionA) {
		t.Error("UnbindKey should report a missing binding")
	}
}
