package mania

import (
	"github.com/phanxgames/rhythmui"
	"github.com/tanema/gween/ease"
)

const (
	// HitTargetPosition is the distance from the stage edge to the hit target.
	HitTargetPosition = 110

	// CornerRadius rounds the key background and sets the hit line thickness.
	CornerRadius = 3.4

	iconCircleSize    = 8
	iconSpacing       = 7
	iconVerticalShift = 30

	topIconWidth  = 22
	topIconHeight = 14
	topIconBorder = 4

	lightingFadeIn  = 0.05
	lightingFadeOut = 0.3
)

var hitLineIdle = rhythmui.Gray(196.0 / 255)

// KeyArea lights up when its column's action is pressed. Nothing is drawn
// between presses except the hit line and the two icons.
type KeyArea struct {
	column    *Column
	accent    *rhythmui.Bindable[rhythmui.Color]
	direction *rhythmui.Bindable[ScrollingDirection]

	node         *rhythmui.Node
	directionBox *rhythmui.Node
	background   *rhythmui.Node
	hitLine      *rhythmui.Node
	bottomIcon   *rhythmui.Node
	topIcon      *rhythmui.Node
}

// NewKeyArea builds the key area for column and adds it to the column's node.
func NewKeyArea(column *Column, scrolling *ScrollingInfo) *KeyArea {
	k := &KeyArea{
		column:    column,
		accent:    column.AccentColour.GetBoundCopy(),
		direction: scrolling.Direction.GetBoundCopy(),
	}

	k.node = rhythmui.NewContainer("key area")
	k.node.SetRelativeSizeAxes(rhythmui.AxesBoth)
	k.node.OnPressed = k.onPressed
	k.node.OnReleased = k.onReleased
	k.node.OnDispose = func() {
		k.accent.UnbindAll()
		k.direction.UnbindAll()
	}

	k.directionBox = rhythmui.NewContainer("direction")
	k.directionBox.SetRelativeSizeAxes(rhythmui.AxesX)
	k.directionBox.Height = HitTargetPosition

	gradient := rhythmui.NewContainer("key gradient")
	gradient.SetRelativeSizeAxes(rhythmui.AxesBoth)
	gradient.Masking = true
	gradient.CornerRadius = CornerRadius

	k.background = rhythmui.NewBox("key background", 0, 0)
	k.background.SetRelativeSizeAxes(rhythmui.AxesBoth)
	k.background.CornerRadius = CornerRadius
	k.background.Blend = rhythmui.BlendAdd
	k.background.Alpha = 0
	gradient.AddChild(k.background)

	k.hitLine = rhythmui.NewCircle("hit target line", 0, CornerRadius*2)
	k.hitLine.SetRelativeSizeAxes(rhythmui.AxesX)
	k.hitLine.Anchor = rhythmui.AnchorTopCentre
	k.hitLine.Origin = rhythmui.AnchorBottomCentre
	k.hitLine.Colour = hitLineIdle

	icons := rhythmui.NewContainer("icons")
	icons.SetRelativeSizeAxes(rhythmui.AxesBoth)
	icons.Anchor = rhythmui.AnchorTopCentre
	icons.Origin = rhythmui.AnchorTopCentre

	k.bottomIcon = rhythmui.NewContainer("bottom icon")
	k.bottomIcon.AutoSizeAxes = rhythmui.AxesBoth
	k.bottomIcon.Anchor = rhythmui.AnchorBottomCentre
	k.bottomIcon.Origin = rhythmui.AnchorCentre
	k.bottomIcon.Y = -iconVerticalShift
	for _, p := range []rhythmui.Vec2{{X: 0, Y: 0}, {X: -iconSpacing, Y: iconSpacing * 1.2}, {X: iconSpacing, Y: iconSpacing * 1.2}} {
		c := rhythmui.NewCircle("icon circle", iconCircleSize, iconCircleSize)
		c.Anchor = rhythmui.AnchorBottomCentre
		c.Origin = rhythmui.AnchorCentre
		c.Blend = rhythmui.BlendAdd
		c.SetPosition(p.X, p.Y)
		k.bottomIcon.AddChild(c)
	}

	// The top icon is an outline only.
	k.topIcon = rhythmui.NewCircle("top icon", topIconWidth, topIconHeight)
	k.topIcon.Anchor = rhythmui.AnchorTopCentre
	k.topIcon.Origin = rhythmui.AnchorCentre
	k.topIcon.Y = iconVerticalShift
	k.topIcon.Colour = rhythmui.ColorTransparent
	k.topIcon.BorderThickness = topIconBorder
	k.topIcon.BorderColour = rhythmui.ColorWhite
	k.topIcon.Blend = rhythmui.BlendAdd

	icons.AddChildren(k.bottomIcon, k.topIcon)
	k.directionBox.AddChildren(gradient, k.hitLine, icons)
	k.node.AddChild(k.directionBox)
	column.Node().AddChild(k.node)

	k.direction.BindValueChanged(func(e rhythmui.ValueChangedEvent[ScrollingDirection]) {
		k.applyDirection(e.NewValue)
	}, true)
	k.accent.BindValueChanged(func(e rhythmui.ValueChangedEvent[rhythmui.Color]) {
		k.background.Colour = e.NewValue.Darken(1)
		k.bottomIcon.Colour = e.NewValue
	}, true)

	return k
}

func (k *KeyArea) applyDirection(d ScrollingDirection) {
	b := k.directionBox
	switch d {
	case ScrollingUp:
		b.SetScale(1, -1)
		b.Anchor = rhythmui.AnchorTopLeft
		b.Origin = rhythmui.AnchorBottomLeft
	case ScrollingDown:
		b.SetScale(1, 1)
		b.Anchor = rhythmui.AnchorBottomLeft
		b.Origin = rhythmui.AnchorBottomLeft
	}
}

func (k *KeyArea) onPressed(action rhythmui.Action) bool {
	if action != k.column.Action.Value() {
		return false
	}
	lighting := k.accent.Value().Lighten(0.9)

	k.background.FadeTo(1, 0.04, nil).Then().FadeTo(0.8, 0.15, ease.OutQuint)

	k.hitLine.FadeColour(rhythmui.ColorWhite, lightingFadeIn, ease.OutQuint)
	k.hitLine.GlowTo(glow(lighting.Opacity(0.7), 20), lightingFadeIn, ease.OutQuint)

	k.topIcon.ScaleTo(0.9, lightingFadeIn, ease.OutQuint)
	k.topIcon.GlowTo(glow(lighting.Opacity(0.1), 20), lightingFadeIn, ease.OutQuint)

	k.bottomIcon.FadeColour(rhythmui.ColorWhite, lightingFadeIn, ease.OutQuint)
	for _, c := range k.bottomIcon.Children() {
		c.GlowTo(glow(lighting.Opacity(0.3), 60), lightingFadeIn, ease.OutQuint)
	}
	return false
}

func (k *KeyArea) onReleased(action rhythmui.Action) {
	if action != k.column.Action.Value() {
		return
	}
	lighting := k.accent.Value().Lighten(0.9).Opacity(0)

	k.background.FadeTo(0, lightingFadeOut, ease.OutQuint)

	k.topIcon.ScaleTo(1, 0.2, ease.OutQuint)
	k.topIcon.GlowTo(glow(lighting, 20), lightingFadeOut, ease.OutQuint)

	k.hitLine.FadeColour(hitLineIdle, lightingFadeOut, ease.OutQuint)
	k.hitLine.GlowTo(glow(lighting, 25), lightingFadeOut, ease.OutQuint)

	k.bottomIcon.FadeColour(k.accent.Value(), lightingFadeOut, ease.OutQuint)
	for _, c := range k.bottomIcon.Children() {
		c.GlowTo(glow(lighting, 30), lightingFadeOut, ease.OutQuint)
	}
}

func glow(c rhythmui.Color, radius float64) rhythmui.EdgeEffect {
	return rhythmui.EdgeEffect{Type: rhythmui.EdgeEffectGlow, Colour: c, Radius: radius}
}

// Node returns the key area's root node.
func (k *KeyArea) Node() *rhythmui.Node { return k.node }

// DirectionContainer returns the node that flips with the scrolling direction.
func (k *KeyArea) DirectionContainer() *rhythmui.Node { return k.directionBox }

// Background returns the additive key gradient.
func (k *KeyArea) Background() *rhythmui.Node { return k.background }

// HitTargetLine returns the line notes are judged against.
func (k *KeyArea) HitTargetLine() *rhythmui.Node { return k.hitLine }

// BottomIcon returns the three-circle icon group.
func (k *KeyArea) BottomIcon() *rhythmui.Node { return k.bottomIcon }

// TopIcon returns the outlined pill icon.
func (k *KeyArea) TopIcon() *rhythmui.Node { return k.topIcon }
