package main

import (
	"os"

	"romancalc/cmd/romancalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
