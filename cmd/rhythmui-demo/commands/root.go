package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/rhythmui"
	"github.com/phanxgames/rhythmui/config"
)

var (
	configPath string
	scriptPath string
	debug      bool

	cfg config.Config
)

// Execute runs the root command.
func Execute() error {
	root := &cobra.Command{
		Use:           "rhythmui-demo",
		Short:         "Interactive demos of the rhythmui widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}
			cfg = c

			level := slog.LevelInfo
			if debug || cfg.Debug {
				level = slog.LevelDebug
			}
			rhythmui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $RHYTHMUI_CONFIG or ~/.config/rhythmui/config.toml)")
	root.PersistentFlags().StringVar(&scriptPath, "script", "", "JSON test script to drive the demo")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log per-frame stats and tracking events")

	root.AddCommand(keyAreaCmd(), logoCmd(), profileCmd(), configCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rhythmui-demo:", err)
		return err
	}
	return nil
}

// run attaches the optional test script and opens the window.
func run(scene *rhythmui.Scene, title string) error {
	scene.SetDebugMode(debug || cfg.Debug)
	if scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := rhythmui.LoadTestScript(data)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
	}
	return rhythmui.Run(scene, rhythmui.RunConfig{
		Title:  cfg.Window.Title + " - " + title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
}
