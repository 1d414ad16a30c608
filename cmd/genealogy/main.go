package main

import (
	"os"

	"github.com/outofforest/genealogy/cmd/genealogy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
