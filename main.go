// Package main is the entry point for the nadestacked CLI tool, which samples
// player positions from CS2 demo files at fixed moments within each round and
// renders positional heatmaps plus a structured JSON summary.
package main

import "github.com/Jearnest94/NadeStacked/cmd"

func main() {
	cmd.Execute()
}
