package main

import (
	"os"

	"wallpaper-aligner/cmd/wallpaper-aligner/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
