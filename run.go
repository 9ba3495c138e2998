package rhythmui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds optional window settings for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// game adapts a Scene to the ebiten.Game interface.
type game struct {
	scene *Scene
}

func (g *game) Update() error {
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.SetSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and drives scene until the window is closed or the
// scene's update function returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	scene.SetSize(float64(cfg.Width), float64(cfg.Height))
	return ebiten.RunGame(&game{scene: scene})
}
