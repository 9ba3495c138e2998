// Package mania provides the key area drawn at the bottom (or top) of each
// column of a vertically scrolling note highway, and a Stage that lays the
// columns out side by side.
package mania

import "github.com/phanxgames/rhythmui"

// ScrollingDirection is the direction notes travel along a column.
type ScrollingDirection uint8

const (
	// ScrollingUp moves notes towards the top of the screen. The hit target
	// sits at the top.
	ScrollingUp ScrollingDirection = iota
	// ScrollingDown moves notes towards the bottom of the screen. The hit
	// target sits at the bottom.
	ScrollingDown
)

func (d ScrollingDirection) String() string {
	if d == ScrollingUp {
		return "up"
	}
	return "down"
}

// ScrollingInfo is shared by every column of a stage.
type ScrollingInfo struct {
	Direction *rhythmui.Bindable[ScrollingDirection]
}

// NewScrollingInfo returns scrolling info starting in direction d.
func NewScrollingInfo(d ScrollingDirection) *ScrollingInfo {
	return &ScrollingInfo{Direction: rhythmui.NewBindable(d)}
}
