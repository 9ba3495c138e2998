package mania

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/rhythmui"
)

// DefaultColumnWidth is used when NewStage is given a non-positive width.
const DefaultColumnWidth = 60

// Stage lays out columns side by side, centred horizontally and filling the
// height of its parent. Every column shares the stage's ScrollingInfo.
type Stage struct {
	Scrolling *ScrollingInfo

	node     *rhythmui.Node
	columns  []*Column
	keyAreas []*KeyArea
}

// NewStage creates a stage with one column per accent colour.
func NewStage(accents []rhythmui.Color, columnWidth float64, direction ScrollingDirection) *Stage {
	if columnWidth <= 0 {
		columnWidth = DefaultColumnWidth
	}
	s := &Stage{Scrolling: NewScrollingInfo(direction)}

	s.node = rhythmui.NewFlow("stage", rhythmui.FlowHorizontal, rhythmui.Vec2{})
	s.node.AutoSizeAxes = rhythmui.AxesX
	s.node.SetRelativeSizeAxes(rhythmui.AxesY)
	s.node.Anchor = rhythmui.AnchorTopCentre
	s.node.Origin = rhythmui.AnchorTopCentre

	for i, accent := range accents {
		col := NewColumn(i, columnWidth, accent)
		s.columns = append(s.columns, col)
		s.keyAreas = append(s.keyAreas, NewKeyArea(col, s.Scrolling))
		s.node.AddChild(col.Node())
	}
	return s
}

// Node returns the stage's flow container.
func (s *Stage) Node() *rhythmui.Node { return s.node }

// Columns returns the stage's columns in order.
func (s *Stage) Columns() []*Column { return s.columns }

// KeyArea returns the key area of column i.
func (s *Stage) KeyArea(i int) *KeyArea { return s.keyAreas[i] }

// SetAccent changes the accent colour of column i.
func (s *Stage) SetAccent(i int, c rhythmui.Color) error {
	if i < 0 || i >= len(s.columns) {
		return fmt.Errorf("mania: column %d out of range [0, %d)", i, len(s.columns))
	}
	return s.columns[i].AccentColour.Set(c)
}

// SetDirection flips every column to scroll in direction d.
func (s *Stage) SetDirection(d ScrollingDirection) error {
	return s.Scrolling.Direction.Set(d)
}

// BindKeys binds keys[i] to column i's action on scene and keeps the binding
// in step when the column's Action changes. Existing bindings on the scene
// are left in place.
func (s *Stage) BindKeys(scene *rhythmui.Scene, keys []ebiten.Key) error {
	if len(keys) != len(s.columns) {
		return fmt.Errorf("mania: %d keys for %d columns", len(keys), len(s.columns))
	}
	for i, k := range keys {
		scene.BindKey(k, s.columns[i].Action.Value())
		s.columns[i].Action.BindValueChanged(func(e rhythmui.ValueChangedEvent[rhythmui.Action]) {
			scene.UnbindKey(k, e.OldValue)
			scene.BindKey(k, e.NewValue)
		}, false)
	}
	return nil
}
