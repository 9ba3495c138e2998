package rhythmui

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties and its resolved layout. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-origin) -> Scale -> Rotate -> Translate(layout position)
//
// where origin is the node's Origin anchor applied to its draw size, and the
// layout position already includes the anchor point, margins, flow offset and
// the (possibly relative) X/Y.
func computeLocalTransform(n *Node) [6]float64 {
	sx := n.ScaleX
	sy := n.ScaleY

	of := n.Origin.Fraction()
	px := n.drawWidth * of.X
	py := n.drawHeight * of.Y

	sin, cos := math.Sincos(n.Rotation)

	// After Scale * Translate(-origin):
	//   a=sx, b=0, c=0, d=sy, tx=-px*sx, ty=-py*sy
	preTx := -px * sx
	preTy := -py * sy

	// After Rotate:
	ra := cos * sx
	rb := sin * sx
	rc := -sin * sy
	rd := cos * sy
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return [6]float64{ra, rb, rc, rd, rtx + n.layoutX, rty + n.layoutY}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes world transforms, alpha and tint for the
// subtree. A container's Colour tints everything beneath it.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentAlpha float64, parentColour Color) {
	n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
	n.worldAlpha = parentAlpha * n.Alpha
	n.worldColour = parentColour.multiply(n.Colour)
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, n.worldColour)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// Position returns the node's local X and Y.
func (n *Node) Position() Vec2 {
	return Vec2{n.X, n.Y}
}

// SetScale sets the node's ScaleX and ScaleY.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
}

// SetSize sets Width and Height. On relative axes these are fractions.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
}

// DrawSize returns the node's resolved size in its own coordinate space, as
// computed by the most recent layout pass.
func (n *Node) DrawSize() Vec2 {
	return Vec2{n.drawWidth, n.drawHeight}
}

// ChildSize returns the area available to children: the draw size minus padding.
func (n *Node) ChildSize() Vec2 {
	return Vec2{
		math.Max(0, n.drawWidth-n.Padding.TotalX()),
		math.Max(0, n.drawHeight-n.Padding.TotalY()),
	}
}

// RelativeToAbsoluteFactor returns the multiplier that converts a child's
// relative coordinates into this node's absolute child-space coordinates.
// Zero-sized axes report 1 so that callers can divide by the result.
func (n *Node) RelativeToAbsoluteFactor() Vec2 {
	f := n.ChildSize()
	if f.X == 0 {
		f.X = 1
	}
	if f.Y == 0 {
		f.Y = 1
	}
	return f
}

// WorldAlpha returns the product of this node's alpha and its ancestors'.
func (n *Node) WorldAlpha() float64 {
	return n.worldAlpha
}

// WorldColour returns this node's Colour tinted by every ancestor's Colour.
func (n *Node) WorldColour() Color {
	return n.worldColour
}

// --- Coordinate conversion ---

// ToLocalSpace converts a screen-space point to this node's local coordinate space.
func (n *Node) ToLocalSpace(sx, sy float64) Vec2 {
	inv := invertAffine(n.worldTransform)
	x, y := transformPoint(inv, sx, sy)
	return Vec2{x, y}
}

// ToScreenSpace converts a local-space point to screen space.
func (n *Node) ToScreenSpace(lx, ly float64) Vec2 {
	x, y := transformPoint(n.worldTransform, lx, ly)
	return Vec2{x, y}
}

// ScreenSpaceCentre returns the centre of the node's draw rectangle in screen space.
func (n *Node) ScreenSpaceCentre() Vec2 {
	return n.ToScreenSpace(n.drawWidth/2, n.drawHeight/2)
}
