package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/rhythmui/config"
)

func configCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = config.DefaultPath()
			}
			if err := config.Save(cfg, out); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "destination file (default ~/.config/rhythmui/config.toml)")
	return cmd
}
