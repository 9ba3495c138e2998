package rhythmui

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Input  Action `json:"input,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected action presses and releases across frames
// for automated testing. Attach to a Scene via SetTestRunner.
//
// Supported step actions: "press", "release", "tap" (use "input" to name the
// action number), "wait" (hold for "frames" frames) and "log" (emit "label"
// through the package logger).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

var errNoSteps = errors.New("no steps")

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", errNoSteps)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "release", "tap", "wait", "log":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Step before input processing each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Step.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		s.InjectPress(st.Input)
	case "release":
		s.InjectRelease(st.Input)
	case "tap":
		s.InjectTap(st.Input)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "log":
		Logger().Info("test script", slog.String("label", st.Label), slog.Float64("time", s.time))
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
