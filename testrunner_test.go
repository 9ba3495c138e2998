package rhythmui

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLoadTestScriptValid(t *testing.T) {
	script := `{"steps": [
		{"action": "press", "input": 1},
		{"action": "wait", "frames": 2},
		{"action": "release", "input": 1}
	]}`
	r, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.steps) != 3 || r.steps[1].Frames != 2 || r.steps[2].Input != 1 {
		t.Errorf("steps = %+v", r.steps)
	}
}

func TestLoadTestScriptInvalidJSON(t *testing.T) {
	if _, err := LoadTestScript([]byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScriptEmpty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if !errors.Is(err, errNoSteps) {
		t.Errorf("err = %v, want errNoSteps", err)
	}
}

func TestLoadTestScriptUnknownAction(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "click"}]}`))
	if err == nil || !strings.Contains(err.Error(), "click") {
		t.Errorf("err = %v, want unknown action error", err)
	}
}

func TestTestRunnerSequence(t *testing.T) {
	var r recorder
	s := NewScene()
	s.Root().AddChild(r.handler("target", false))

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "press", "input": 1},
		{"action": "wait", "frames": 2},
		{"action": "release", "input": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	// Frame 1 queues and dispatches the press.
	s.Step(0)
	assertEvents(t, r.events, "target press")
	// Frames 2 and 3 wait.
	s.Step(0)
	s.Step(0)
	assertEvents(t, r.events, "target press")
	// Frame 4 releases.
	s.Step(0)
	assertEvents(t, r.events, "target press", "target release")
	if runner.Done() {
		t.Error("runner should not be done while the release is being dispatched")
	}
	s.Step(0)
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestTestRunnerWaitsForInjectQueue(t *testing.T) {
	var r recorder
	s := NewScene()
	s.Root().AddChild(r.handler("target", false))

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "tap", "input": 2},
		{"action": "tap", "input": 2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	for i := 0; i < 4; i++ {
		s.Step(0)
	}
	assertEvents(t, r.events, "target press", "target release", "target press", "target release")
}

func TestTestRunnerLog(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "log", "label": "checkpoint"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene()
	s.SetTestRunner(runner)
	s.Step(0.5)

	if !strings.Contains(buf.String(), "label=checkpoint") {
		t.Errorf("log output = %q", buf.String())
	}
	if !runner.Done() {
		t.Error("runner should be done after its last step")
	}
}
