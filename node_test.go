package rhythmui

import "testing"

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
}

func TestNewBoxDefaults(t *testing.T) {
	n := NewBox("box", 30, 40)
	assertNodeDefaults(t, n, "box", NodeTypeBox)
	if n.Width != 30 || n.Height != 40 {
		t.Errorf("size = (%v, %v), want (30, 40)", n.Width, n.Height)
	}
}

func TestNewCircleDefaults(t *testing.T) {
	n := NewCircle("circle", 8, 8)
	assertNodeDefaults(t, n, "circle", NodeTypeCircle)
}

func TestNewTextDefaults(t *testing.T) {
	n := NewText("text", "hello", nil)
	assertNodeDefaults(t, n, "text", NodeTypeText)
	if n.AutoSizeAxes != AxesBoth {
		t.Errorf("AutoSizeAxes = %v, want both", n.AutoSizeAxes)
	}
	if n.Text == nil || n.Text.Content != "hello" {
		t.Errorf("Text = %+v, want content hello", n.Text)
	}
}

func TestNewFlowDefaults(t *testing.T) {
	n := NewFlow("flow", FlowVertical, Vec2{0, 4})
	assertNodeDefaults(t, n, "flow", NodeTypeContainer)
	if n.Flow == nil || n.Flow.Direction != FlowVertical || n.Flow.Spacing.Y != 4 {
		t.Errorf("Flow = %+v", n.Flow)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if n.Colour != ColorWhite {
		t.Errorf("Colour = %v, want white", n.Colour)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if n.worldTransform != identityTransform {
		t.Errorf("worldTransform = %v, want identity", n.worldTransform)
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewBox("c", 1, 1)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

func TestSetRelativeSizeAxes(t *testing.T) {
	n := NewContainer("n")
	n.Height = 30
	n.SetRelativeSizeAxes(AxesBoth)
	if n.Width != 1 {
		t.Errorf("Width = %v, want 1 for a newly relative zero axis", n.Width)
	}
	if n.Height != 30 {
		t.Errorf("Height = %v, want 30 to be kept", n.Height)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("child should belong to p2")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent)
}

func TestAddChildSelfPanic(t *testing.T) {
	n := NewContainer("self")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for self-add, got none")
		}
	}()
	n.AddChild(n)
}

func TestAddChildNilPanic(t *testing.T) {
	n := NewContainer("n")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	n.AddChild(nil)
}

func TestAddChildren(t *testing.T) {
	parent := NewContainer("parent")
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	parent.AddChildren(a, b, c)
	if parent.ChildAt(0) != a || parent.ChildAt(1) != b || parent.ChildAt(2) != c {
		t.Error("children order should be [a, b, c]")
	}
}

func TestAddChildAt(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(c)

	parent.AddChildAt(b, 1)

	if parent.NumChildren() != 3 {
		t.Fatalf("NumChildren = %d, want 3", parent.NumChildren())
	}
	if parent.ChildAt(0) != a || parent.ChildAt(1) != b || parent.ChildAt(2) != c {
		t.Error("children order should be [a, b, c]")
	}
}

func TestAddChildAtOutOfRangePanic(t *testing.T) {
	parent := NewContainer("parent")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out-of-range index, got none")
		}
	}()
	parent.AddChildAt(NewContainer("x"), 2)
}

// --- Remove ---

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
	if parent.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", parent.NumChildren())
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")
	p1.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewContainer("orphan")
	n.RemoveFromParent()
	if n.Parent != nil {
		t.Error("Parent should stay nil")
	}
}

func TestRemoveChildren(t *testing.T) {
	parent := NewContainer("parent")
	a, b := NewContainer("a"), NewContainer("b")
	parent.AddChildren(a, b)
	parent.RemoveChildren()

	if parent.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", parent.NumChildren())
	}
	if a.Parent != nil || b.Parent != nil {
		t.Error("children should be detached")
	}
	if a.IsDisposed() {
		t.Error("RemoveChildren must not dispose")
	}
}

// --- Presence ---

func TestIsPresent(t *testing.T) {
	n := NewBox("n", 1, 1)
	if !n.IsPresent() {
		t.Error("new node should be present")
	}
	n.Alpha = 0
	if n.IsPresent() {
		t.Error("zero alpha node should not be present")
	}
	n.AlwaysPresent = true
	if !n.IsPresent() {
		t.Error("AlwaysPresent node should be present at zero alpha")
	}
	n.Visible = false
	if n.IsPresent() {
		t.Error("invisible node should never be present")
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	var order []string
	child.OnDispose = func() { order = append(order, "child") }
	grandchild.OnDispose = func() { order = append(order, "grandchild") }

	child.Dispose()

	if parent.NumChildren() != 0 {
		t.Error("disposed node should be removed from its parent")
	}
	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if child.ID != 0 {
		t.Errorf("ID = %d, want 0 after dispose", child.ID)
	}
	if len(order) != 2 || order[0] != "grandchild" || order[1] != "child" {
		t.Errorf("OnDispose order = %v, want [grandchild child]", order)
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewContainer("n")
	calls := 0
	n.OnDispose = func() { calls++ }
	n.Dispose()
	n.Dispose()
	if calls != 1 {
		t.Errorf("OnDispose calls = %d, want 1", calls)
	}
}
