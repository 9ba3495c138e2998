package rhythmui

import "github.com/hajimehoshi/ebiten/v2"

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s on both axes.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// LerpVec2 linearly interpolates between a and b. t is not clamped.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Centre returns the midpoint of the rectangle.
func (r Rect) Centre() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeBox                       // filled rectangle, optionally rounded
	NodeTypeCircle                    // rectangle whose corner radius is half its shorter side
	NodeTypeText                      // single-line TTF text
)

// Axes is a bitmask selecting the X axis, the Y axis, or both.
type Axes uint8

const (
	AxesNone Axes = 0
	AxesX    Axes = 1
	AxesY    Axes = 2
	AxesBoth      = AxesX | AxesY
)

// Has reports whether every axis in o is set in a.
func (a Axes) Has(o Axes) bool { return a&o == o && o != 0 }

// Anchor names one of nine reference points on a rectangle. It is used both
// for a node's anchor (the point on the parent's child area it is attached to)
// and its origin (the point on itself that sits at the anchor).
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCentre
	AnchorTopRight
	AnchorCentreLeft
	AnchorCentre
	AnchorCentreRight
	AnchorBottomLeft
	AnchorBottomCentre
	AnchorBottomRight
)

// Fraction returns the anchor's position as a fraction of a rectangle's size.
func (a Anchor) Fraction() Vec2 {
	col := int(a) % 3
	row := int(a) / 3
	return Vec2{float64(col) / 2, float64(row) / 2}
}

// MarginPadding describes spacing on each edge of a node.
type MarginPadding struct {
	Top, Left, Bottom, Right float64
}

// Vertical returns spacing of v on the top and bottom edges.
func Vertical(v float64) MarginPadding { return MarginPadding{Top: v, Bottom: v} }

// Horizontal returns spacing of h on the left and right edges.
func Horizontal(h float64) MarginPadding { return MarginPadding{Left: h, Right: h} }

// TotalX returns Left + Right.
func (m MarginPadding) TotalX() float64 { return m.Left + m.Right }

// TotalY returns Top + Bottom.
func (m MarginPadding) TotalY() float64 { return m.Top + m.Bottom }

// EdgeEffectType selects how an edge effect is drawn around a shape.
type EdgeEffectType uint8

const (
	EdgeEffectNone EdgeEffectType = iota
	EdgeEffectGlow
	EdgeEffectShadow
)

// EdgeEffect is a soft halo drawn around a node's shape, beneath its fill.
type EdgeEffect struct {
	Type   EdgeEffectType
	Colour Color
	Radius float64
}

// Action identifies an abstract input action. Keys are bound to actions on
// the Scene; nodes react to actions rather than raw keys.
type Action int
