package rhythmui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	cornerSegments = 8 // arc segments per rounded corner
	glowLayers     = 8 // concentric rings used to approximate a glow
)

// whitePixel is a 1x1 white image used as the source for all solid shapes.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// shapeKey identifies a cached rounded-rectangle outline. Dimensions are
// quantized to quarter pixels so that animated sizes still hit the cache.
type shapeKey struct {
	w, h, r float64
}

func quantize(v float64) float64 {
	return math.Round(v*4) / 4
}

// outline returns the rounded-rectangle outline for (w, h, r), building and
// caching it on first use.
func (s *Scene) outline(w, h, r float64) []Vec2 {
	key := shapeKey{quantize(w), quantize(h), quantize(r)}
	if pts, ok := s.shapes.Get(key); ok {
		return pts
	}
	pts := roundedRectPoints(key.w, key.h, key.r)
	s.shapes.Add(key, pts)
	return pts
}

// roundedRectPoints returns a clockwise outline of a w×h rectangle with
// corners of radius r, starting at the top-left arc. The point count depends
// only on cornerSegments, so outlines of different sizes can be stitched
// into rings.
func roundedRectPoints(w, h, r float64) []Vec2 {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	centres := [4]Vec2{{r, r}, {w - r, r}, {w - r, h - r}, {r, h - r}}
	pts := make([]Vec2, 0, 4*(cornerSegments+1))
	for c, ctr := range centres {
		start := math.Pi + float64(c)*math.Pi/2
		for i := 0; i <= cornerSegments; i++ {
			a := start + float64(i)/cornerSegments*math.Pi/2
			sin, cos := math.Sincos(a)
			pts = append(pts, Vec2{ctr.X + cos*r, ctr.Y + sin*r})
		}
	}
	return pts
}

// shapeRadius returns the effective corner radius for a shape node.
func shapeRadius(n *Node) float64 {
	if n.Type == NodeTypeCircle {
		return math.Min(n.drawWidth, n.drawHeight) / 2
	}
	return n.CornerRadius
}

// Draw renders the scene tree onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.drawNode(screen, s.root)
}

func (s *Scene) drawNode(dst *ebiten.Image, n *Node) {
	if !n.Visible || n.worldAlpha <= 0 {
		return
	}
	switch n.Type {
	case NodeTypeBox, NodeTypeCircle:
		s.drawShape(dst, n)
	case NodeTypeText:
		drawText(dst, n)
	}
	for _, child := range n.children {
		s.drawNode(dst, child)
	}
}

// drawShape draws, in order, the glow, the fill and the border of a shape node.
func (s *Scene) drawShape(dst *ebiten.Image, n *Node) {
	w, h := n.drawWidth, n.drawHeight
	if w <= 0 || h <= 0 {
		return
	}
	r := shapeRadius(n)

	if g := n.Glow; g.Type != EdgeEffectNone && g.Radius > 0 && g.Colour.A > 0 {
		blend := BlendAdd
		if g.Type == EdgeEffectShadow {
			blend = BlendNormal
		}
		prev, prevE := s.outline(w, h, r), 0.0
		for i := 1; i <= glowLayers; i++ {
			e := g.Radius * float64(i) / glowLayers
			falloff := 1 - float64(i-1)/glowLayers
			c := g.Colour
			c.A *= n.worldAlpha * falloff * falloff * 2 / glowLayers
			outer := s.outline(w+2*e, h+2*e, r+e)
			s.drawRing(dst, n.worldTransform, outer, Vec2{-e, -e}, prev, Vec2{-prevE, -prevE}, c, blend)
			prev, prevE = outer, e
		}
	}

	fill := n.worldColour
	fill.A *= n.worldAlpha
	s.drawFan(dst, n.worldTransform, s.outline(w, h, r), Vec2{}, fill, n.Blend)

	if t := n.BorderThickness; t > 0 && n.BorderColour.A > 0 {
		t = math.Min(t, math.Min(w, h)/2)
		border := n.BorderColour
		border.A *= n.worldAlpha
		inner := s.outline(w-2*t, h-2*t, math.Max(0, r-t))
		s.drawRing(dst, n.worldTransform, s.outline(w, h, r), Vec2{}, inner, Vec2{t, t}, border, n.Blend)
	}
}

// drawFan fills a convex outline using fan triangulation.
func (s *Scene) drawFan(dst *ebiten.Image, m [6]float64, pts []Vec2, off Vec2, c Color, blend BlendMode) {
	if len(pts) < 3 || c.A <= 0 {
		return
	}
	s.vertexBuf = s.vertexBuf[:0]
	s.indexBuf = s.indexBuf[:0]
	for _, p := range pts {
		s.vertexBuf = append(s.vertexBuf, makeVertex(m, p.X+off.X, p.Y+off.Y, c))
	}
	for i := 1; i < len(pts)-1; i++ {
		s.indexBuf = append(s.indexBuf, 0, uint16(i), uint16(i+1))
	}
	s.submit(dst, blend)
}

// drawRing fills the band between two outlines with the same point count.
func (s *Scene) drawRing(dst *ebiten.Image, m [6]float64, outer []Vec2, outerOff Vec2, inner []Vec2, innerOff Vec2, c Color, blend BlendMode) {
	if len(outer) != len(inner) || len(outer) < 3 || c.A <= 0 {
		return
	}
	s.vertexBuf = s.vertexBuf[:0]
	s.indexBuf = s.indexBuf[:0]
	for i := range outer {
		s.vertexBuf = append(s.vertexBuf,
			makeVertex(m, outer[i].X+outerOff.X, outer[i].Y+outerOff.Y, c),
			makeVertex(m, inner[i].X+innerOff.X, inner[i].Y+innerOff.Y, c),
		)
	}
	n := len(outer)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		o0, i0 := uint16(2*i), uint16(2*i+1)
		o1, i1 := uint16(2*j), uint16(2*j+1)
		s.indexBuf = append(s.indexBuf, o0, o1, i0, i0, o1, i1)
	}
	s.submit(dst, blend)
}

func (s *Scene) submit(dst *ebiten.Image, blend BlendMode) {
	op := &ebiten.DrawTrianglesOptions{Blend: blend.EbitenBlend()}
	dst.DrawTriangles(s.vertexBuf, s.indexBuf, ensureWhitePixel(), op)
}

func makeVertex(m [6]float64, x, y float64, c Color) ebiten.Vertex {
	wx, wy := transformPoint(m, x, y)
	return ebiten.Vertex{
		DstX:   float32(wx),
		DstY:   float32(wy),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R),
		ColorG: float32(c.G),
		ColorB: float32(c.B),
		ColorA: float32(c.A),
	}
}

// drawText renders a text node with its world transform.
func drawText(dst *ebiten.Image, n *Node) {
	tb := n.Text
	if tb == nil || tb.Content == "" {
		return
	}
	f := tb.font()
	m := n.worldTransform
	op := &text.DrawOptions{}
	op.GeoM.SetElement(0, 0, m[0])
	op.GeoM.SetElement(1, 0, m[1])
	op.GeoM.SetElement(0, 1, m[2])
	op.GeoM.SetElement(1, 1, m[3])
	op.GeoM.SetElement(0, 2, m[4])
	op.GeoM.SetElement(1, 2, m[5])
	c := n.worldColour
	a := float32(c.A * n.worldAlpha)
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	op.Blend = n.Blend.EbitenBlend()
	op.LineSpacing = f.lh
	text.Draw(dst, tb.Content, f.face, op)
}
