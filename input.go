package rhythmui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBinding maps a keyboard key to an Action.
type KeyBinding struct {
	Key    ebiten.Key
	Action Action
}

// ParseKey resolves an ebiten key name such as "D", "Space" or "ArrowLeft".
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("rhythmui: parse key %q: %w", name, err)
	}
	return k, nil
}

// BindKey maps key to action. A key may be bound to several actions.
func (s *Scene) BindKey(key ebiten.Key, action Action) {
	s.bindings = append(s.bindings, KeyBinding{Key: key, Action: action})
}

// UnbindKey removes the first binding of key to action. It reports whether
// one was found.
func (s *Scene) UnbindKey(key ebiten.Key, action Action) bool {
	for i, b := range s.bindings {
		if b.Key == key && b.Action == action {
			s.bindings = append(s.bindings[:i], s.bindings[i+1:]...)
			return true
		}
	}
	return false
}

// ClearKeyBindings removes every key binding. Actions currently held stay
// held until released by injection.
func (s *Scene) ClearKeyBindings() {
	s.bindings = s.bindings[:0]
}

// KeyBindings returns the binding list. The returned slice MUST NOT be mutated.
func (s *Scene) KeyBindings() []KeyBinding {
	return s.bindings
}

// IsHeld reports whether action is currently pressed.
func (s *Scene) IsHeld(action Action) bool {
	_, ok := s.held[action]
	return ok
}

// processInput consumes at most one injected event per frame and then polls
// real keyboard state for every binding.
func (s *Scene) processInput() {
	s.processInjectedInput()
	for _, b := range s.bindings {
		if inpututil.IsKeyJustPressed(b.Key) {
			s.press(b.Action)
		}
		if inpututil.IsKeyJustReleased(b.Key) {
			s.release(b.Action)
		}
	}
}

// press dispatches action to OnPressed handlers from the front-most node
// (last in draw order) backwards until one returns true. Every handler that
// was called is remembered and receives the matching release. Pressing an
// action that is already held is ignored.
func (s *Scene) press(action Action) {
	if s.IsHeld(action) {
		return
	}
	handlers := collectPressHandlers(s.root, nil)
	received := make([]*Node, 0, len(handlers))
	for i := len(handlers) - 1; i >= 0; i-- {
		n := handlers[i]
		received = append(received, n)
		if n.OnPressed(action) {
			break
		}
	}
	s.held[action] = received
}

// release sends action to exactly the handlers that saw its press.
func (s *Scene) release(action Action) {
	received, ok := s.held[action]
	if !ok {
		return
	}
	delete(s.held, action)
	for _, n := range received {
		if n.disposed || n.OnReleased == nil {
			continue
		}
		n.OnReleased(action)
	}
}

// collectPressHandlers returns present nodes with an OnPressed hook in
// depth-first draw order.
func collectPressHandlers(n *Node, out []*Node) []*Node {
	if !n.IsPresent() {
		return out
	}
	if n.OnPressed != nil {
		out = append(out, n)
	}
	for _, child := range n.children {
		out = collectPressHandlers(child, out)
	}
	return out
}
