package commands

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/rhythmui"
	"github.com/phanxgames/rhythmui/tracking"
)

// actionNext is bound to Space by the logo and profile demos.
const actionNext rhythmui.Action = 1

func logoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logo",
		Short: "Move a logo between two placeholders on Space",
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := cfg.Easing()
			if err != nil {
				return err
			}
			scene, err := buildLogoScene(cfg.Logo.Size, cfg.Logo.Duration, fn)
			if err != nil {
				return err
			}
			return run(scene, "logo tracking")
		},
	}
}

// newPlaceholderScreen returns a tracking container whose facade sits at the
// given anchor, outlined so the target is visible.
func newPlaceholderScreen(name string, anchor rhythmui.Anchor, size float64) *tracking.Container {
	c := tracking.NewContainer(name)
	c.Node().Padding = rhythmui.MarginPadding{Top: 40, Left: 40, Bottom: 40, Right: 40}

	slot := rhythmui.NewCircle(name+" slot", size, size)
	slot.Anchor, slot.Origin = anchor, anchor
	slot.Colour = rhythmui.ColorTransparent
	slot.BorderThickness = 2
	slot.BorderColour = rhythmui.Gray(0.4)

	f := c.Facade().Node()
	f.Anchor, f.Origin = rhythmui.AnchorCentre, rhythmui.AnchorCentre
	slot.AddChild(f)
	c.Node().AddChild(slot)
	return c
}

func buildLogoScene(size, duration float64, fn ease.TweenFunc) (*rhythmui.Scene, error) {
	scene := rhythmui.NewScene()
	scene.ClearColor = rhythmui.Gray(0.08)

	scales := []float64{1, 0.6}
	screens := []*tracking.Container{
		newPlaceholderScreen("menu", rhythmui.AnchorCentreLeft, size*scales[0]),
		newPlaceholderScreen("song select", rhythmui.AnchorBottomRight, size*scales[1]),
	}

	logo := tracking.NewLogo("logo", size)
	logo.Node().Colour = rhythmui.ColorFromHSL(333, 0.8, 0.6)
	logo.Node().Glow = rhythmui.EdgeEffect{Type: rhythmui.EdgeEffectGlow, Colour: rhythmui.ColorWhite.Opacity(0.2), Radius: 12}
	logo.Node().SetPosition(0.5, 0.5)

	layer := rhythmui.NewContainer("logo layer")
	layer.SetRelativeSizeAxes(rhythmui.AxesBoth)
	layer.AddChild(logo.Node())

	current := 0
	if err := screens[current].StartTracking(logo, duration, fn); err != nil {
		return nil, err
	}

	input := rhythmui.NewContainer("input")
	input.AlwaysPresent = true
	input.OnPressed = func(a rhythmui.Action) bool {
		if a != actionNext {
			return false
		}
		screens[current].StopTracking()
		current = (current + 1) % len(screens)
		next := screens[current]
		if err := next.StartTracking(logo, duration, fn); err != nil {
			rhythmui.Logger().Error("start tracking", "err", err)
		}
		logo.Node().ScaleTo(scales[current], float32(duration), fn)
		return true
	}

	for _, s := range screens {
		scene.Root().AddChild(s.Node())
	}
	scene.Root().AddChildren(layer, input)
	scene.BindKey(ebiten.KeySpace, actionNext)
	return scene, nil
}
