package rhythmui

import "math"

// FlowDirection selects the axis a flow container lays its children along.
type FlowDirection uint8

const (
	FlowHorizontal FlowDirection = iota
	FlowVertical
)

// FlowLayout positions children sequentially. Set it on a node via NewFlow or
// by assigning Node.Flow directly.
type FlowLayout struct {
	Direction FlowDirection
	Spacing   Vec2
}

// layoutNode resolves draw sizes for n and its subtree, then positions n's
// children. area is the child area of n's parent.
//
// Sizes are resolved top-down for absolute and relative axes, and bottom-up
// for auto-sized axes. Children of an auto-sized axis that are themselves
// relative on that axis see the size from the previous frame.
func layoutNode(n *Node, area Vec2) {
	if !n.AutoSizeAxes.Has(AxesX) {
		n.drawWidth = n.Width
		if n.RelativeSizeAxes.Has(AxesX) {
			n.drawWidth *= area.X
		}
	}
	if !n.AutoSizeAxes.Has(AxesY) {
		n.drawHeight = n.Height
		if n.RelativeSizeAxes.Has(AxesY) {
			n.drawHeight *= area.Y
		}
	}

	if n.Type == NodeTypeText && n.Text != nil {
		w, h := n.Text.measure()
		if n.AutoSizeAxes.Has(AxesX) {
			n.drawWidth = w
		}
		if n.AutoSizeAxes.Has(AxesY) {
			n.drawHeight = h
		}
	}

	childArea := n.ChildSize()
	for _, child := range n.children {
		layoutNode(child, childArea)
	}

	if n.Flow != nil {
		arrangeFlow(n)
	}

	if n.Type != NodeTypeText && n.AutoSizeAxes != AxesNone {
		ext := childExtent(n)
		if n.AutoSizeAxes.Has(AxesX) {
			n.drawWidth = ext.X + n.Padding.TotalX()
		}
		if n.AutoSizeAxes.Has(AxesY) {
			n.drawHeight = ext.Y + n.Padding.TotalY()
		}
	}

	childArea = n.ChildSize()
	offset := Vec2{n.Padding.Left, n.Padding.Top}
	for _, child := range n.children {
		positionChild(child, childArea, offset)
	}
}

// positionChild computes the child's layout position inside its parent's
// child area, which begins at offset in the parent's local space.
func positionChild(n *Node, area, offset Vec2) {
	x, y := n.X, n.Y
	if n.RelativePositionAxes.Has(AxesX) {
		x *= area.X
	}
	if n.RelativePositionAxes.Has(AxesY) {
		y *= area.Y
	}

	af := n.Anchor.Fraction()
	mx := n.Margin.Left - af.X*n.Margin.TotalX()
	my := n.Margin.Top - af.Y*n.Margin.TotalY()

	n.layoutX = offset.X + area.X*af.X + mx + n.flowX + x
	n.layoutY = offset.Y + area.Y*af.Y + my + n.flowY + y
}

// arrangeFlow assigns flow offsets to visible children in order.
func arrangeFlow(n *Node) {
	cursor := 0.0
	for _, child := range n.children {
		child.flowX, child.flowY = 0, 0
		if !child.Visible {
			continue
		}
		switch n.Flow.Direction {
		case FlowHorizontal:
			child.flowX = cursor
			cursor += child.drawWidth*math.Abs(child.ScaleX) + child.Margin.TotalX() + n.Flow.Spacing.X
		case FlowVertical:
			child.flowY = cursor
			cursor += child.drawHeight*math.Abs(child.ScaleY) + child.Margin.TotalY() + n.Flow.Spacing.Y
		}
	}
}

// childExtent returns the size needed to contain every visible child that is
// not relatively sized on the measured axis.
func childExtent(n *Node) Vec2 {
	var ext Vec2
	for _, child := range n.children {
		if !child.Visible {
			continue
		}
		if !child.RelativeSizeAxes.Has(AxesX) {
			x := child.X
			if child.RelativePositionAxes.Has(AxesX) {
				x = 0
			}
			ext.X = math.Max(ext.X, math.Abs(x)+child.flowX+child.drawWidth*math.Abs(child.ScaleX)+child.Margin.TotalX())
		}
		if !child.RelativeSizeAxes.Has(AxesY) {
			y := child.Y
			if child.RelativePositionAxes.Has(AxesY) {
				y = 0
			}
			ext.Y = math.Max(ext.Y, math.Abs(y)+child.flowY+child.drawHeight*math.Abs(child.ScaleY)+child.Margin.TotalY())
		}
	}
	return ext
}
