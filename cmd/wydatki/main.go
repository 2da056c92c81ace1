package main

import (
	"os"

	"github.com/wydatki-dev/wydatki/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
