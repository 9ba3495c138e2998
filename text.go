package rhythmui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the size used by text nodes created with a nil font.
const DefaultFontSize = 14

// Font wraps Ebitengine's text/v2 for TrueType font rendering.
type Font struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// defaultSource is parsed lazily from the bundled Go Regular font.
var defaultSource *text.GoTextFaceSource

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("rhythmui: failed to parse TTF data: %w", err)
	}
	return newFont(source, size), nil
}

// DefaultFont returns the bundled Go Regular face at the given size.
func DefaultFont(size float64) *Font {
	if defaultSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(fmt.Sprintf("rhythmui: bundled font: %v", err))
		}
		defaultSource = src
	}
	return newFont(defaultSource, size)
}

func newFont(source *text.GoTextFaceSource, size float64) *Font {
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// TextBlock holds the content and face of a text node.
type TextBlock struct {
	Content string
	Font    *Font
}

// SetText replaces the node's text content. No-op for non-text nodes.
func (n *Node) SetText(s string) {
	if n.Text != nil {
		n.Text.Content = s
	}
}

func (tb *TextBlock) font() *Font {
	if tb.Font == nil {
		tb.Font = DefaultFont(DefaultFontSize)
	}
	return tb.Font
}

func (tb *TextBlock) measure() (float64, float64) {
	if tb.Content == "" {
		return 0, tb.font().LineHeight()
	}
	return tb.font().MeasureString(tb.Content)
}
