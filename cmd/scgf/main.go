// SPDX-License-Identifier: MIT

// Command scgf computes the scaled cumulants of chord currents of Markov jump
// models read from YAML model files or taken from the built-in presets.
//
//	scgf check model.yaml
//	scgf chords --preset kinesin6
//	scgf cumulants model.yaml --eval k=2 --eval w=1 --metrics
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
