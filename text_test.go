package rhythmui

import "testing"

func TestDefaultFontMeasure(t *testing.T) {
	f := DefaultFont(DefaultFontSize)
	w, h := f.MeasureString("hello")
	if w <= 0 || h <= 0 {
		t.Errorf("MeasureString = (%v, %v), want positive", w, h)
	}
	wide, _ := f.MeasureString("hello hello")
	if wide <= w {
		t.Errorf("longer text should be wider: %v <= %v", wide, w)
	}
	if f.LineHeight() <= 0 {
		t.Error("LineHeight should be positive")
	}
}

func TestLoadFontInvalid(t *testing.T) {
	if _, err := LoadFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestTextNodeAutoSizes(t *testing.T) {
	n := NewText("label", "1,234", nil)
	empty := NewText("empty", "", nil)
	layoutScene(200, 100, n, empty)

	w, h := DefaultFont(DefaultFontSize).MeasureString("1,234")
	assertVec(t, "size", n.DrawSize(), Vec2{w, h})
	assertNear(t, "empty width", empty.DrawSize().X, 0)
	assertNear(t, "empty height", empty.DrawSize().Y, DefaultFont(DefaultFontSize).LineHeight())
}

func TestSetText(t *testing.T) {
	n := NewText("label", "a", nil)
	n.SetText("b")
	if n.Text.Content != "b" {
		t.Errorf("Content = %q, want b", n.Text.Content)
	}
	box := NewBox("box", 1, 1)
	box.SetText("ignored")
	if box.Text != nil {
		t.Error("SetText on a non-text node should be a no-op")
	}
}
