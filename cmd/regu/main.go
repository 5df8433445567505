package main

import (
	"os"

	"github.com/regu-ai/regu/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
