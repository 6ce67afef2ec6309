package main

import (
	"os"

	"github.com/avrillon/teamsplit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
