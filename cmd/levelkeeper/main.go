package main

import (
	"os"

	"levelkeeper/cmd/levelkeeper/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
