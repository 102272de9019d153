package main

import (
	"os"

	"github.com/msto63/cmdkit/cmd/cmdsh/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
