package main

import (
	"os"

	"metercli/cmd/metercli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
