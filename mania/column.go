package mania

import "github.com/phanxgames/rhythmui"

// ActionColumn returns the action that presses column i. Actions start at 1
// so that the zero Action never matches a column.
func ActionColumn(i int) rhythmui.Action {
	return rhythmui.Action(i + 1)
}

// Column is one lane of a stage. Its node fills the height of the stage and
// has a fixed width.
type Column struct {
	Index        int
	Action       *rhythmui.Bindable[rhythmui.Action]
	AccentColour *rhythmui.Bindable[rhythmui.Color]

	node *rhythmui.Node
}

// NewColumn creates column index with the given width and accent colour.
func NewColumn(index int, width float64, accent rhythmui.Color) *Column {
	n := rhythmui.NewContainer("column")
	n.Width = width
	n.SetRelativeSizeAxes(rhythmui.AxesY)
	return &Column{
		Index:        index,
		Action:       rhythmui.NewBindable(ActionColumn(index)),
		AccentColour: rhythmui.NewBindable(accent),
		node:         n,
	}
}

// Node returns the column's container.
func (c *Column) Node() *rhythmui.Node {
	return c.node
}
