package rhythmui

// syntheticKeyEvent represents a single injected action press or release.
type syntheticKeyEvent struct {
	action  Action
	pressed bool
}

// InjectPress queues a press of action. The event is consumed on the next
// frame's input pass, one event per frame, through the same dispatch as real
// keys.
func (s *Scene) InjectPress(action Action) {
	s.injectQueue = append(s.injectQueue, syntheticKeyEvent{action: action, pressed: true})
}

// InjectRelease queues a release of action.
func (s *Scene) InjectRelease(action Action) {
	s.injectQueue = append(s.injectQueue, syntheticKeyEvent{action: action})
}

// InjectTap is a convenience that queues a press followed by a release.
// Consumes two frames.
func (s *Scene) InjectTap(action Action) {
	s.InjectPress(action)
	s.InjectRelease(action)
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.pressed {
		s.press(evt.action)
	} else {
		s.release(evt.action)
	}
	return true
}
