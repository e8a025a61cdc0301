// Package main is the entry point for the fhirsearch CLI tool.
package main

import (
	"os"

	"github.com/lrhache/fhirsearch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
