// Package rhythmui is a small retained-mode scene graph for [Ebitengine] with
// the rhythm-game widgets that run on it.
//
// The root package provides the host: nodes, anchor/origin layout, eased
// transform chains, bindable values, action dispatch and drawing. Widgets
// live in sub-packages:
//
//   - mania: the per-column key area of a vertically scrolling note highway
//   - tracking: a container that steers a logo onto a placeholder facade
//   - profile: the centre strip of a user profile header
//   - config: viper-backed settings for the demo
//
// # Quick start
//
//	scene := rhythmui.NewScene()
//	box := rhythmui.NewBox("panel", 200, 60)
//	box.Anchor, box.Origin = rhythmui.AnchorCentre, rhythmui.AnchorCentre
//	scene.Root().AddChild(box)
//	box.FadeTo(0, 0.3, ease.OutQuint)
//	rhythmui.Run(scene, rhythmui.RunConfig{Title: "demo", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly. Tests drive a scene with
// [Scene.Step], which advances the clock by an exact amount.
//
// # Frame order
//
// Each [Scene.Step] runs the test runner, input dispatch, tweens, layout,
// every node's OnUpdate hook (parents first), and a second layout pass.
//
// # Layout
//
// A node's Anchor picks a point on its parent's child area and its Origin
// picks the point on itself placed there. Width, Height, X and Y may be
// relative to the parent on selected axes; AutoSizeAxes sizes a node to its
// children. Nodes with a Flow lay their children out in a row or column.
//
// # Logging
//
// Nothing is logged until [SetLogger] is called with a *slog.Logger.
//
// [Ebitengine]: https://ebitengine.org
package rhythmui
