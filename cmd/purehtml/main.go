package main

import (
	"os"

	"github.com/purehtml/purehtml/cmd/purehtml/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
