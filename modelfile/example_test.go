// SPDX-License-Identifier: MIT

package modelfile_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-scgf/modelfile"
)

func ExampleParse() {
	f, err := modelfile.Parse([]byte(`
name: pair-ring
rates:
  - {from: 0, to: 1, rate: a}
  - {from: 1, to: 0, rate: b}
  - {from: 1, to: 2, rate: c}
  - {from: 2, to: 1, rate: d}
  - {from: 2, to: 0, rate: e}
  - {from: 0, to: 2, rate: f}
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	m, _ := f.Model()
	chords, _ := f.ResolveChords(m)
	fmt.Println(m.StateCount(), chords)
	// Output: 3 [1→2]
}
