package commands

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/rhythmui"
	"github.com/phanxgames/rhythmui/mania"
)

func keyAreaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keyarea",
		Short: "Show a mania stage that reacts to the configured keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := buildKeyAreaScene()
			if err != nil {
				return err
			}
			return run(scene, "key area")
		},
	}
}

func buildKeyAreaScene() (*rhythmui.Scene, error) {
	accents, err := cfg.Accents()
	if err != nil {
		return nil, err
	}
	dir, err := cfg.Direction()
	if err != nil {
		return nil, err
	}
	keys, err := cfg.KeyBindings()
	if err != nil {
		return nil, err
	}

	scene := rhythmui.NewScene()
	scene.ClearColor = rhythmui.Gray(0.05)
	stage := mania.NewStage(accents, cfg.Mania.ColumnWidth, dir)
	scene.Root().AddChild(stage.Node())
	if err := stage.BindKeys(scene, keys); err != nil {
		return nil, err
	}
	return scene, nil
}
