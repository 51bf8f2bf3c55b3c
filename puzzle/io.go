package puzzle

import (
	"fmt"
)

/*

Pretty-printed boards in strings, for debugging.

*/

// String gives a pretty-printed view of a board: one line per
// row with a glyph per cell (asterisk for Marked, dot for
// Unmarked, underscore for Unknown), followed by the region
// groups, since those aren't visible from the grid alone.
func (b *Board) String() (result string) {
	if b == nil {
		return
	}
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			result += b.cells[r*b.width+c].String()
		}
		result += "\n"
	}
	for _, g := range b.regions {
		result += fmt.Sprintf("%v: quota %d, cells %v\n", g.id, g.quota, []int(g.cells))
	}
	return
}
