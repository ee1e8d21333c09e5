// Package main is the entry point for the biztime service.
package main

import (
	"os"

	"github.com/deppfellow/biztime/cmd/biztime/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
