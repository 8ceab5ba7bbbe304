package main

import (
	"os"

	"github.com/walletplus-dev/walletplus/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
