package main

import (
	"os"

	"github.com/phanxgames/rhythmui/cmd/rhythmui-demo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
