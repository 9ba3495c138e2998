package rhythmui

import "testing"

func TestRoundedRectPoints(t *testing.T) {
	pts := roundedRectPoints(100, 50, 10)
	if len(pts) != 4*(cornerSegments+1) {
		t.Fatalf("len = %d, want %d", len(pts), 4*(cornerSegments+1))
	}
	assertVec(t, "first", pts[0], Vec2{0, 10})
	assertVec(t, "end of first arc", pts[cornerSegments], Vec2{10, 0})
	assertVec(t, "start of second arc", pts[cornerSegments+1], Vec2{90, 0})
	for i, p := range pts {
		if p.X < -epsilon || p.X > 100+epsilon || p.Y < -epsilon || p.Y > 50+epsilon {
			t.Errorf("point %d = %v outside the rectangle", i, p)
		}
	}
}

func TestRoundedRectRadiusClamped(t *testing.T) {
	pts := roundedRectPoints(20, 10, 100)
	assertVec(t, "first", pts[0], Vec2{0, 5})
	// The point count never depends on the radius.
	if len(roundedRectPoints(20, 10, 0)) != len(pts) {
		t.Error("point count should not depend on the radius")
	}
}

func TestShapeRadius(t *testing.T) {
	c := NewCircle("c", 22, 14)
	b := NewBox("b", 22, 14)
	b.CornerRadius = 3.4
	layoutScene(100, 100, c, b)
	assertNear(t, "circle", shapeRadius(c), 7)
	assertNear(t, "box", shapeRadius(b), 3.4)
}

func TestOutlineCache(t *testing.T) {
	s := NewScene()
	a := s.outline(40, 20, 5)
	b := s.outline(40.1, 20, 5)
	if &a[0] != &b[0] {
		t.Error("sizes within a quarter pixel should share a cached outline")
	}
	c := s.outline(41, 20, 5)
	if &a[0] == &c[0] {
		t.Error("different sizes should not share an outline")
	}
	if s.shapes.Len() != 2 {
		t.Errorf("cache len = %d, want 2", s.shapes.Len())
	}
}

func TestEbitenBlend(t *testing.T) {
	if BlendAdd.EbitenBlend() == BlendNormal.EbitenBlend() {
		t.Error("additive and normal blends should differ")
	}
}
