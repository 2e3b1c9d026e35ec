package main

import (
	"os"

	"github.com/go-facet/facet/cmd/facet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
