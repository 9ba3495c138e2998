package tracking

import (
	"errors"
	"log/slog"

	"github.com/phanxgames/rhythmui"
	"github.com/tanema/gween/ease"
)

var (
	// ErrNilLogo is returned by StartTracking when no logo is given.
	ErrNilLogo = errors.New("tracking: logo is nil")

	// ErrLogoAlreadyTracked is returned by StartTracking when another
	// container owns the logo, whether or not the caller is tracking.
	ErrLogoAlreadyTracked = errors.New("tracking: logo is already tracked by another container")
)

// followState is reset every time tracking starts. It is captured on the
// first frame the logo actually has to move.
type followState struct {
	origin    rhythmui.Vec2
	startTime float64
	captured  bool
}

// Container keeps a Logo on top of its Facade. The facade can live anywhere
// under the container; the logo can live anywhere in the scene.
type Container struct {
	node   *rhythmui.Node
	facade *Facade

	logo     *Logo
	duration float64
	easing   ease.TweenFunc
	tracking bool
	follow   followState
}

// NewContainer creates a tracking container filling its parent. Add the
// facade returned by Facade somewhere beneath Node.
func NewContainer(name string) *Container {
	c := &Container{facade: newFacade()}
	c.node = rhythmui.NewContainer(name)
	c.node.SetRelativeSizeAxes(rhythmui.AxesBoth)
	c.node.OnPreLayout = c.resizeFacade
	c.node.OnUpdate = c.update
	c.node.OnDispose = c.release
	return c
}

// Node returns the container's node.
func (c *Container) Node() *rhythmui.Node { return c.node }

// Facade returns the placeholder the logo is steered towards.
func (c *Container) Facade() *Facade { return c.facade }

// Logo returns the tracked logo, or nil.
func (c *Container) Logo() *Logo { return c.logo }

// IsTracking reports whether the container is moving its logo.
func (c *Container) IsTracking() bool { return c.tracking }

// StartTracking claims logo and moves it onto the facade over duration
// seconds using fn. A zero duration snaps the logo into place; a nil fn is
// linear. Calling StartTracking again with the same logo restarts the
// transition from wherever the logo is. A logo owned by another container is
// refused until that container stops tracking it.
func (c *Container) StartTracking(logo *Logo, duration float64, fn ease.TweenFunc) error {
	if logo == nil {
		return ErrNilLogo
	}
	if logo.owner != nil && logo.owner != c {
		return ErrLogoAlreadyTracked
	}
	if c.logo != nil && c.logo != logo {
		c.releaseLogo()
	}

	c.logo = logo
	c.logo.owner = c
	c.duration = duration
	c.easing = fn
	c.follow = followState{}
	c.tracking = true
	c.facade.setSize(logo.SizeForFlow * logo.node.ScaleX)

	rhythmui.Logger().Debug("logo tracking started",
		slog.String("container", c.node.Name),
		slog.String("logo", logo.node.Name),
		slog.Float64("duration", duration))
	return nil
}

// StopTracking releases the logo where it is. The logo stays assigned, so a
// later StartTracking with the same logo is allowed unless another container
// has claimed it in the meantime.
func (c *Container) StopTracking() {
	c.release()
	rhythmui.Logger().Debug("logo tracking stopped", slog.String("container", c.node.Name))
}

// Dispose releases the logo and disposes the container's node.
func (c *Container) Dispose() {
	c.node.Dispose()
}

func (c *Container) release() {
	c.releaseLogo()
	c.tracking = false
}

// releaseLogo clears the claim only if this container holds it.
func (c *Container) releaseLogo() {
	if c.logo != nil && c.logo.owner == c {
		c.logo.owner = nil
	}
}

// ComputeTrackingPosition returns the facade's centre in the logo's parent's
// relative space. The logo must have a parent.
func (c *Container) ComputeTrackingPosition() rhythmui.Vec2 {
	parent := c.logo.node.Parent
	centre := c.facade.node.ScreenSpaceCentre()
	abs := parent.ToLocalSpace(centre.X, centre.Y)
	abs.X -= parent.Padding.Left
	abs.Y -= parent.Padding.Top
	factor := parent.RelativeToAbsoluteFactor()
	return rhythmui.Vec2{X: abs.X / factor.X, Y: abs.Y / factor.Y}
}

// resizeFacade runs before layout so the target is read from a facade that
// already matches the logo's scale for this frame.
func (c *Container) resizeFacade(rhythmui.FrameTime) {
	if c.logo == nil || !c.tracking {
		return
	}
	c.facade.setSize(c.logo.SizeForFlow * c.logo.node.ScaleX)
}

func (c *Container) update(ft rhythmui.FrameTime) {
	if c.logo == nil || !c.tracking {
		return
	}
	logo := c.logo.node
	if logo.Parent == nil {
		return
	}

	target := c.ComputeTrackingPosition()
	if c.facade.node.Parent == nil || logo.Position() == target || logo.RelativePositionAxes != rhythmui.AxesBoth {
		return
	}

	if !c.follow.captured {
		c.follow = followState{origin: logo.Position(), startTime: ft.Current, captured: true}
	}

	if c.duration == 0 {
		logo.SetPosition(target.X, target.Y)
		return
	}
	elapsed := ft.Current - c.follow.startTime
	amount := rhythmui.ApplyEasing(c.easing, min(elapsed/c.duration, 1))
	p := rhythmui.LerpVec2(c.follow.origin, target, amount)
	logo.SetPosition(p.X, p.Y)
}
