package rhythmui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultShapeCacheSize = 256

// Scene is the top-level object that owns the node tree, the frame clock,
// input state, and render buffers.
type Scene struct {
	root  *Node
	debug bool

	// Frame clock
	time  float64
	frame uint64

	// Screen size used as the root's layout area.
	width, height float64

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// Render state
	shapes    *lru.Cache[shapeKey, []Vec2]
	vertexBuf []ebiten.Vertex
	indexBuf  []uint16

	// Input state
	bindings    []KeyBinding
	held        map[Action][]*Node
	injectQueue []syntheticKeyEvent
	testRunner  *TestRunner

	updateFunc func() error
}

// NewScene creates a new scene with a pre-created root container filling the
// screen.
func NewScene() *Scene {
	root := NewContainer("root")
	root.SetRelativeSizeAxes(AxesBoth)
	shapes, _ := lru.New[shapeKey, []Vec2](defaultShapeCacheSize)
	return &Scene{
		root:   root,
		shapes: shapes,
		held:   make(map[Action][]*Node),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetSize sets the screen size used as the root's layout area.
func (s *Scene) SetSize(w, h float64) {
	s.width = w
	s.height = h
}

// Size returns the screen size used for layout.
func (s *Scene) Size() Vec2 {
	return Vec2{s.width, s.height}
}

// Time returns the scene clock in seconds.
func (s *Scene) Time() float64 {
	return s.time
}

// SetUpdateFunc registers a callback run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the scene by one tick at the current TPS.
func (s *Scene) Update() error {
	s.Step(1.0 / float64(ebiten.TPS()))
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Step advances the scene clock by dt seconds and runs one frame:
// test runner, input, tweens, pre-layout hooks, layout, per-node update
// hooks, then a second layout pass so that positions written by hooks are
// reflected in the world transforms used for drawing.
func (s *Scene) Step(dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.time += dt
	s.frame++

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()

	updateTweens(s.root, float32(dt))
	ft := FrameTime{Current: s.time, Elapsed: dt}
	runHooks(s.root, ft, preLayoutHook)
	s.layout()

	runHooks(s.root, ft, updateHook)
	s.layout()

	if s.debug {
		s.debugLog(frameStats{
			frame:     s.frame,
			nodes:     countNodes(s.root),
			tweens:    countTweens(s.root),
			updateDur: time.Since(t0),
		})
	}
}

func (s *Scene) layout() {
	area := Vec2{s.width, s.height}
	layoutNode(s.root, area)
	positionChild(s.root, area, Vec2{})
	updateWorldTransform(s.root, identityTransform, 1, ColorWhite)
}

func preLayoutHook(n *Node) func(FrameTime) { return n.OnPreLayout }
func updateHook(n *Node) func(FrameTime) { return n.OnUpdate }

// runHooks calls the hook selected by hook on the subtree, parents before
// children. A hook may dispose its own node; the traversal then skips its
// children and carries on with the sibling that took its place.
func runHooks(n *Node, ft FrameTime, hook func(*Node) func(FrameTime)) {
	if fn := hook(n); fn != nil {
		fn(ft)
		if n.disposed {
			return
		}
	}
	for i := 0; i < len(n.children); {
		child := n.children[i]
		runHooks(child, ft, hook)
		if i < len(n.children) && n.children[i] == child {
			i++
		}
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// per-frame stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
