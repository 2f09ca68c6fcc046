package main

import (
	"os"

	"github.com/textseams/seams/cmd/seams/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
