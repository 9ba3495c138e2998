package rhythmui

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewContainer("test")
	assertMatrix(t, "identity", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 0, 0})
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewContainer("test")
	n.layoutX, n.layoutY = 10, 20
	assertMatrix(t, "translation", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewContainer("test")
	n.ScaleX, n.ScaleY = 2, 3
	assertMatrix(t, "scale", computeLocalTransform(n), [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewContainer("test")
	n.Rotation = math.Pi / 2
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", computeLocalTransform(n), [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformOrigin(t *testing.T) {
	n := NewContainer("test")
	n.drawWidth, n.drawHeight = 40, 20
	n.Origin = AnchorCentre
	n.layoutX, n.layoutY = 100, 50
	n.ScaleX, n.ScaleY = 2, 2
	// The centre (20, 10) lands on the layout position.
	x, y := transformPoint(computeLocalTransform(n), 20, 10)
	assertNear(t, "x", x, 100)
	assertNear(t, "y", y, 50)
}

func TestLocalTransformFlipAroundBottom(t *testing.T) {
	n := NewContainer("test")
	n.drawWidth, n.drawHeight = 50, 110
	n.Origin = AnchorBottomLeft
	n.ScaleY = -1
	m := computeLocalTransform(n)
	_, bottom := transformPoint(m, 0, 110)
	_, top := transformPoint(m, 0, 0)
	assertNear(t, "bottom edge", bottom, 0)
	assertNear(t, "top edge", top, 110)
}

// --- Affine helpers ---

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 7}
	assertMatrix(t, "sum", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 27})
}

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0.5, -0.3, 1.5, 40, -12}
	assertMatrix(t, "m*inv", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	assertMatrix(t, "singular", invertAffine([6]float64{0, 0, 0, 0, 5, 5}), identityTransform)
}

// --- World transforms ---

func TestWorldTransformParentChild(t *testing.T) {
	s := NewScene()
	s.SetSize(200, 200)
	parent := NewContainer("parent")
	parent.SetSize(100, 100)
	parent.SetPosition(10, 20)
	parent.SetScale(2, 2)
	child := NewBox("child", 10, 10)
	child.SetPosition(5, 5)
	parent.AddChild(child)
	s.Root().AddChild(parent)
	s.Step(0)

	assertVec(t, "child origin", child.ToScreenSpace(0, 0), Vec2{20, 30})
	assertVec(t, "child far corner", child.ToScreenSpace(10, 10), Vec2{40, 50})
}

func TestWorldAlphaAndColourPropagate(t *testing.T) {
	s := NewScene()
	parent := NewContainer("parent")
	parent.Alpha = 0.5
	parent.Colour = Color{1, 0.5, 0, 1}
	child := NewBox("child", 1, 1)
	child.Alpha = 0.5
	child.Colour = Color{0.5, 1, 1, 1}
	parent.AddChild(child)
	s.Root().AddChild(parent)
	s.Step(0)

	assertNear(t, "world alpha", child.WorldAlpha(), 0.25)
	wc := child.WorldColour()
	assertNear(t, "world R", wc.R, 0.5)
	assertNear(t, "world G", wc.G, 0.5)
	assertNear(t, "world B", wc.B, 0)
}

func TestToLocalSpaceRoundtrip(t *testing.T) {
	s := NewScene()
	s.SetSize(300, 300)
	n := NewBox("n", 50, 30)
	n.SetPosition(70, 40)
	n.Rotation = 0.3
	n.SetScale(1.5, 0.75)
	n.Origin = AnchorCentre
	s.Root().AddChild(n)
	s.Step(0)

	local := Vec2{12, -7}
	screen := n.ToScreenSpace(local.X, local.Y)
	assertVec(t, "roundtrip", n.ToLocalSpace(screen.X, screen.Y), local)
}

func TestScreenSpaceCentre(t *testing.T) {
	s := NewScene()
	s.SetSize(300, 300)
	n := NewBox("n", 40, 20)
	n.SetPosition(100, 100)
	s.Root().AddChild(n)
	s.Step(0)
	assertVec(t, "centre", n.ScreenSpaceCentre(), Vec2{120, 110})
}

func TestRelativeToAbsoluteFactor(t *testing.T) {
	s := NewScene()
	s.SetSize(400, 200)
	n := NewContainer("n")
	n.SetRelativeSizeAxes(AxesBoth)
	n.Padding = MarginPadding{Left: 10, Right: 30}
	empty := NewContainer("empty")
	s.Root().AddChildren(n, empty)
	s.Step(0)

	assertVec(t, "factor", n.RelativeToAbsoluteFactor(), Vec2{360, 200})
	assertVec(t, "zero-size factor", empty.RelativeToAbsoluteFactor(), Vec2{1, 1})
}
