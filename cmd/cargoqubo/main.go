// Command cargoqubo builds a container assignment instance, writes its QUBO
// matrix and optionally decodes a solver sample back into transport modes.
//
// Usage:
//
//	cargoqubo --instance worked.yaml --format sparse
//	cargoqubo -n 20 -m 8 -c 5 --seed 42 -o q.tsv --sample best.tsv
//
// Every flag can also be set in a YAML/TOML/JSON file passed with --config, or
// through a CARGOQUBO_<FLAG> environment variable (dashes become underscores).
// Precedence: flag > environment > config file > default.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "cargoqubo:", err)
		os.Exit(1)
	}
}
