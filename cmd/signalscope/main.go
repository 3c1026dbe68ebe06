package main

import (
	"os"

	"github.com/rustyeddy/signalscope/cmd/signalscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
