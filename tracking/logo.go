// Package tracking moves a logo between layouts during screen transitions.
//
// A screen places a Facade wherever the logo should appear and hands the logo
// to its Container. Every frame the container steers the logo onto the
// facade's screen position, optionally easing in from where the logo was.
package tracking

import "github.com/phanxgames/rhythmui"

// Logo is the node that containers track. Its position is relative to its
// parent on both axes, so a position of (0.5, 0.5) centres it.
type Logo struct {
	// SizeForFlow is the space the logo occupies in a layout at scale 1.
	SizeForFlow float64

	node  *rhythmui.Node
	owner *Container
}

// NewLogo creates a circular logo of the given diameter, centred on its position.
func NewLogo(name string, size float64) *Logo {
	n := rhythmui.NewCircle(name, size, size)
	n.RelativePositionAxes = rhythmui.AxesBoth
	n.Origin = rhythmui.AnchorCentre
	return &Logo{SizeForFlow: size, node: n}
}

// Node returns the logo's node.
func (l *Logo) Node() *rhythmui.Node { return l.node }

// IsTracking reports whether a Container currently owns the logo.
func (l *Logo) IsTracking() bool { return l.owner != nil }

// Position returns the logo's relative position.
func (l *Logo) Position() rhythmui.Vec2 { return l.node.Position() }

// Facade marks where a tracked logo should sit. Its size is owned by the
// Container that created it and is overwritten every frame while tracking.
type Facade struct {
	node *rhythmui.Node
}

func newFacade() *Facade {
	return &Facade{node: rhythmui.NewContainer("logo facade")}
}

// Node returns the facade's node, for placing it in a layout. Width and
// Height belong to the Container: while it tracks a logo they are overwritten
// before every layout pass, so only position, anchoring and parenting are
// meaningful to set from outside.
func (f *Facade) Node() *rhythmui.Node { return f.node }

// Size returns the facade's current size.
func (f *Facade) Size() rhythmui.Vec2 {
	return rhythmui.Vec2{X: f.node.Width, Y: f.node.Height}
}

func (f *Facade) setSize(s float64) {
	f.node.SetSize(s, s)
}
