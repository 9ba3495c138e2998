package rhythmui

import (
	"fmt"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenProperty names the node state a Tween writes. Two tweens on the same
// property never run at once: the newer one takes over when it starts.
type tweenProperty uint8

const (
	propAlpha tweenProperty = iota
	propColour
	propScale
	propPosition
	propGlow
)

// Tween animates a group of float64 fields on a Node from their values at
// start time to fixed targets. Tweens are created through a TransformSequence
// and advanced by the Scene; a tween whose node is disposed stops immediately.
type Tween struct {
	prop     tweenProperty
	target   *Node
	fields   []*float64
	to       []float64
	fn       ease.TweenFunc
	delay    float32
	duration float32
	onStart  func()

	tweens  []*gween.Tween
	started bool
	Done    bool
}

// Update advances the tween by dt seconds. While the tween is delayed only
// the delay is consumed; any overshoot carries into the first step.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	if t.target != nil && t.target.IsDisposed() {
		t.Done = true
		return
	}
	if !t.started {
		t.delay -= dt
		if t.delay > 0 {
			return
		}
		dt = -t.delay
		t.start()
	}

	if t.duration <= 0 {
		for i, f := range t.fields {
			*f = t.to[i]
		}
		t.Done = true
		return
	}

	allDone := true
	for i, tw := range t.tweens {
		val, finished := tw.Update(dt)
		*t.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone
}

func (t *Tween) start() {
	t.started = true
	t.delay = 0
	if t.onStart != nil {
		t.onStart()
	}
	if t.target != nil {
		for _, other := range t.target.tweens {
			if other != t && other.prop == t.prop && other.started {
				other.Done = true
			}
		}
	}
	fn := t.fn
	if fn == nil {
		fn = ease.Linear
	}
	t.tweens = make([]*gween.Tween, len(t.fields))
	for i, f := range t.fields {
		t.tweens[i] = gween.New(float32(*f), float32(t.to[i]), t.duration, fn)
	}
}

// TransformSequence chains tweens on one node. Each call starts at the
// sequence's current offset; Then moves the offset to the end of everything
// queued so far.
type TransformSequence struct {
	node  *Node
	delay float32
	end   float32
}

// Sequence returns an empty sequence starting now.
func (n *Node) Sequence() *TransformSequence {
	return &TransformSequence{node: n}
}

// Then returns a sequence that starts once every tween queued so far has finished.
func (s *TransformSequence) Then() *TransformSequence {
	return &TransformSequence{node: s.node, delay: s.end, end: s.end}
}

// Delay returns a sequence offset by d seconds from this one.
func (s *TransformSequence) Delay(d float32) *TransformSequence {
	return &TransformSequence{node: s.node, delay: s.delay + d, end: max(s.end, s.delay+d)}
}

// FadeTo animates Alpha.
func (s *TransformSequence) FadeTo(alpha float64, duration float32, fn ease.TweenFunc) *TransformSequence {
	n := s.node
	return s.add(&Tween{prop: propAlpha, fields: []*float64{&n.Alpha}, to: []float64{alpha}}, duration, fn)
}

// FadeColour animates all four components of Colour.
func (s *TransformSequence) FadeColour(c Color, duration float32, fn ease.TweenFunc) *TransformSequence {
	n := s.node
	return s.add(&Tween{
		prop:   propColour,
		fields: []*float64{&n.Colour.R, &n.Colour.G, &n.Colour.B, &n.Colour.A},
		to:     []float64{c.R, c.G, c.B, c.A},
	}, duration, fn)
}

// ScaleTo animates ScaleX and ScaleY to the same value.
func (s *TransformSequence) ScaleTo(scale float64, duration float32, fn ease.TweenFunc) *TransformSequence {
	n := s.node
	return s.add(&Tween{
		prop:   propScale,
		fields: []*float64{&n.ScaleX, &n.ScaleY},
		to:     []float64{scale, scale},
	}, duration, fn)
}

// MoveTo animates X and Y.
func (s *TransformSequence) MoveTo(x, y float64, duration float32, fn ease.TweenFunc) *TransformSequence {
	n := s.node
	return s.add(&Tween{
		prop:   propPosition,
		fields: []*float64{&n.X, &n.Y},
		to:     []float64{x, y},
	}, duration, fn)
}

// GlowTo animates the edge effect's colour and radius. The effect type is
// switched when the tween starts.
func (s *TransformSequence) GlowTo(e EdgeEffect, duration float32, fn ease.TweenFunc) *TransformSequence {
	n := s.node
	return s.add(&Tween{
		prop: propGlow,
		fields: []*float64{
			&n.Glow.Colour.R, &n.Glow.Colour.G, &n.Glow.Colour.B, &n.Glow.Colour.A,
			&n.Glow.Radius,
		},
		to:      []float64{e.Colour.R, e.Colour.G, e.Colour.B, e.Colour.A, e.Radius},
		onStart: func() { n.Glow.Type = e.Type },
	}, duration, fn)
}

func (s *TransformSequence) add(t *Tween, duration float32, fn ease.TweenFunc) *TransformSequence {
	t.target = s.node
	t.delay = s.delay
	t.duration = duration
	t.fn = fn
	s.node.addTween(t)
	return &TransformSequence{node: s.node, delay: s.delay, end: max(s.end, s.delay+duration)}
}

// addTween queues t, dropping pending tweens on the same property that would
// start at or after it. An undelayed tween also stops running ones right away
// so the next frame picks up from the current value.
func (n *Node) addTween(t *Tween) {
	for _, other := range n.tweens {
		if other.prop != t.prop {
			continue
		}
		if !other.started && other.delay >= t.delay {
			other.Done = true
		}
		if other.started && t.delay <= 0 {
			other.Done = true
		}
	}
	n.tweens = append(n.tweens, t)
}

// FadeTo animates Alpha starting now.
func (n *Node) FadeTo(alpha float64, duration float32, fn ease.TweenFunc) *TransformSequence {
	return n.Sequence().FadeTo(alpha, duration, fn)
}

// FadeColour animates Colour starting now.
func (n *Node) FadeColour(c Color, duration float32, fn ease.TweenFunc) *TransformSequence {
	return n.Sequence().FadeColour(c, duration, fn)
}

// ScaleTo animates uniform scale starting now.
func (n *Node) ScaleTo(scale float64, duration float32, fn ease.TweenFunc) *TransformSequence {
	return n.Sequence().ScaleTo(scale, duration, fn)
}

// MoveTo animates position starting now.
func (n *Node) MoveTo(x, y float64, duration float32, fn ease.TweenFunc) *TransformSequence {
	return n.Sequence().MoveTo(x, y, duration, fn)
}

// GlowTo animates the edge effect starting now.
func (n *Node) GlowTo(e EdgeEffect, duration float32, fn ease.TweenFunc) *TransformSequence {
	return n.Sequence().GlowTo(e, duration, fn)
}

// HasTransforms reports whether any tween on the node is still pending or running.
func (n *Node) HasTransforms() bool {
	for _, t := range n.tweens {
		if !t.Done {
			return true
		}
	}
	return false
}

// ClearTransforms drops every tween on the node, leaving fields where they are.
func (n *Node) ClearTransforms() {
	n.tweens = n.tweens[:0]
}

// updateTweens advances every node's tweens by dt and drops finished ones.
func updateTweens(n *Node, dt float32) {
	if len(n.tweens) > 0 {
		for _, t := range n.tweens {
			t.Update(dt)
		}
		live := n.tweens[:0]
		for _, t := range n.tweens {
			if !t.Done {
				live = append(live, t)
			}
		}
		for i := len(live); i < len(n.tweens); i++ {
			n.tweens[i] = nil
		}
		n.tweens = live
	}
	for _, child := range n.children {
		updateTweens(child, dt)
	}
}

// ApplyEasing maps progress in [0, 1] through fn. A nil fn is linear.
func ApplyEasing(fn ease.TweenFunc, progress float64) float64 {
	if fn == nil {
		return progress
	}
	return float64(fn(float32(progress), 0, 1, 1))
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in_quad":      ease.InQuad,
	"out_quad":     ease.OutQuad,
	"in_out_quad":  ease.InOutQuad,
	"in_cubic":     ease.InCubic,
	"out_cubic":    ease.OutCubic,
	"in_out_cubic": ease.InOutCubic,
	"in_quart":     ease.InQuart,
	"out_quart":    ease.OutQuart,
	"in_quint":     ease.InQuint,
	"out_quint":    ease.OutQuint,
	"in_out_quint": ease.InOutQuint,
	"in_sine":      ease.InSine,
	"out_sine":     ease.OutSine,
	"in_out_sine":  ease.InOutSine,
	"in_expo":      ease.InExpo,
	"out_expo":     ease.OutExpo,
	"in_out_expo":  ease.InOutExpo,
	"out_back":     ease.OutBack,
	"out_elastic":  ease.OutElastic,
	"out_bounce":   ease.OutBounce,
}

// EasingByName resolves a snake_case easing name such as "out_quint".
// The empty string and "none" resolve to linear.
func EasingByName(name string) (ease.TweenFunc, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == "none" {
		return ease.Linear, nil
	}
	fn, ok := easings[key]
	if !ok {
		return nil, fmt.Errorf("rhythmui: unknown easing %q", name)
	}
	return fn, nil
}
