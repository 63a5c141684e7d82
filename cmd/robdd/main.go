// Copyright (c) 2026 ROBDD contributors
//
// MIT License

// Command robdd is a thin driver around the robdd engine: it loads a
// DIMACS CNF file, builds the corresponding diagram, optionally runs a
// static or dynamic reordering pass, and reports sat_count and node-table
// statistics. The engine itself has no CLI dependency; this binary exists
// so the package can be exercised from the shell instead of only from Go.
package main

import "github.com/OBDDimal/OBDDimal-sub000/cmd/robdd/cmd"

func main() {
	cmd.Execute()
}
