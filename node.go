package rhythmui

// FrameTime is passed to per-frame hooks. Times are in seconds.
type FrameTime struct {
	Current float64 // scene time at the start of this frame
	Elapsed float64 // time since the previous frame
}

// nodeIDCounter is a plain counter (no atomic, rhythmui is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	// Layout. Width and Height are fractions of the parent's child area on
	// any axis named in RelativeSizeAxes; X and Y likewise for
	// RelativePositionAxes.
	Width, Height        float64
	Anchor               Anchor
	Origin               Anchor
	RelativePositionAxes Axes
	RelativeSizeAxes     Axes
	AutoSizeAxes         Axes
	Margin               MarginPadding
	Padding              MarginPadding
	Flow                 *FlowLayout

	// Computed during layout and world-transform passes.
	drawWidth, drawHeight float64
	layoutX, layoutY      float64
	flowX, flowY          float64
	worldTransform        [6]float64
	worldAlpha            float64
	worldColour           Color

	// Visibility
	Alpha         float64
	Visible       bool
	AlwaysPresent bool

	// Appearance
	Colour          Color
	Blend           BlendMode
	CornerRadius    float64
	Masking         bool
	BorderThickness float64
	BorderColour    Color
	Glow            EdgeEffect

	// Text fields (NodeTypeText)
	Text *TextBlock

	// Metadata
	UserData any

	// Per-node hooks (nil by default). OnPreLayout runs after tweens and
	// before the frame's first layout pass; OnUpdate runs after it.
	OnPreLayout func(FrameTime)
	OnUpdate    func(FrameTime)
	OnDispose   func()
	OnPressed   func(Action) bool
	OnReleased  func(Action)

	tweens   []*Tween
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Colour = ColorWhite
	n.BorderColour = ColorWhite
	n.Visible = true
	n.worldTransform = identityTransform
	n.worldAlpha = 1
	n.worldColour = ColorWhite
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewBox creates a filled rectangle of the given size.
func NewBox(name string, w, h float64) *Node {
	n := &Node{Name: name, Type: NodeTypeBox, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// NewCircle creates a shape whose corner radius always equals half of its
// shorter side, so a square renders as a circle and a long strip as a pill.
func NewCircle(name string, w, h float64) *Node {
	n := &Node{Name: name, Type: NodeTypeCircle, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// NewText creates a text node. A nil font uses the default face.
func NewText(name, content string, font *Font) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		Text: &TextBlock{Content: content, Font: font},
	}
	nodeDefaults(n)
	n.AutoSizeAxes = AxesBoth
	return n
}

// NewFlow creates a container that positions its children one after another
// along dir, separated by spacing.
func NewFlow(name string, dir FlowDirection, spacing Vec2) *Node {
	n := NewContainer(name)
	n.Flow = &FlowLayout{Direction: dir, Spacing: spacing}
	return n
}

// SetRelativeSizeAxes marks axes as relative to the parent's child area. A
// newly relative axis with a zero size is set to fill the parent.
func (n *Node) SetRelativeSizeAxes(a Axes) {
	if a.Has(AxesX) && !n.RelativeSizeAxes.Has(AxesX) && n.Width == 0 {
		n.Width = 1
	}
	if a.Has(AxesY) && !n.RelativeSizeAxes.Has(AxesY) && n.Height == 0 {
		n.Height = 1
	}
	n.RelativeSizeAxes = a
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("rhythmui: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("rhythmui: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildren appends each child in order.
func (n *Node) AddChildren(children ...*Node) {
	for _, c := range children {
		n.AddChild(c)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("rhythmui: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("rhythmui: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("rhythmui: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("rhythmui: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// IsPresent reports whether the node takes part in drawing and input: it is
// visible and either has non-zero alpha or is AlwaysPresent.
func (n *Node) IsPresent() bool {
	return n.Visible && (n.Alpha > 0 || n.AlwaysPresent)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. OnDispose hooks run children
// first, before any state is cleared.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	if n.OnDispose != nil {
		n.OnDispose()
	}
	n.disposed = true
	n.ID = 0
	n.children = nil
	n.Parent = nil
	n.tweens = nil
	n.Text = nil
	n.Flow = nil
	n.UserData = nil
	n.OnPreLayout = nil
	n.OnUpdate = nil
	n.OnDispose = nil
	n.OnPressed = nil
	n.OnReleased = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
