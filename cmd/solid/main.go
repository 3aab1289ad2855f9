package main

import (
	"os"

	"gosolid/cmd/solid/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.ExitCode(err))
	}
}
