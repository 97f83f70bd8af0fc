// Swatch - colour palette curation from images
//
// Swatch quantises image pixels into a small, ranked palette and keeps
// pinned colours stable across regenerations.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
