package patterns

import (
	"fmt"

	"github.com/kristofer84/star-battle-patterns/puzzle"
)

/*

Region layout heuristics

The nominal board's true region map is unknown, so the pipeline
probes each window under a few plausible synthetic layouts.
Layouts are expressed in absolute coordinates, the same form the
window builder accepts from real callers.

*/

// rowLayout makes each window row its own region.
func rowLayout(win Window) RegionLayout {
	layout := make(RegionLayout, win.Height)
	for r := 0; r < win.Height; r++ {
		cells := make([]puzzle.Coord, win.Width)
		for c := 0; c < win.Width; c++ {
			cells[c] = puzzle.Coord{Row: win.Row + r, Col: win.Col + c}
		}
		layout[fmt.Sprintf("row-%d", r)] = cells
	}
	return layout
}

// blockLayout tiles the window with 2x2-aligned blocks, clipped
// at the right and bottom edges.
func blockLayout(win Window) RegionLayout {
	layout := make(RegionLayout)
	for br := 0; br < win.Height; br += 2 {
		for bc := 0; bc < win.Width; bc += 2 {
			var cells []puzzle.Coord
			for dr := 0; dr < 2 && br+dr < win.Height; dr++ {
				for dc := 0; dc < 2 && bc+dc < win.Width; dc++ {
					cells = append(cells, puzzle.Coord{
						Row: win.Row + br + dr,
						Col: win.Col + bc + dc,
					})
				}
			}
			layout[fmt.Sprintf("block-%d-%d", br, bc)] = cells
		}
	}
	return layout
}

// bandLayouts builds, for each candidate anchor row, a layout
// with one region fully inside the leftmost two columns and one
// region straddling their right edge: the structure the
// band-region family's precondition looks for.  Both regions are
// row-shaped on purpose.  The region-quota heuristic charges a
// full unit per spanned row, and a fragment this small can't pay
// for taller regions; single-row regions keep the probe alive.
// The anchor row starts at 2 so the straddling region's top-row
// candidates are never adjacent to the anchored region.  The
// remaining window cells belong to no region, which the model
// allows.
func bandLayouts(win Window) []RegionLayout {
	if win.Width < 3 || win.Height < 3 {
		return nil
	}
	span := win.Width - 1
	if span > 3 {
		span = 3
	}
	var out []RegionLayout
	for fr := 2; fr < win.Height; fr++ {
		full := []puzzle.Coord{
			{Row: win.Row + fr, Col: win.Col},
			{Row: win.Row + fr, Col: win.Col + 1},
		}
		partial := make([]puzzle.Coord, span)
		for i := 0; i < span; i++ {
			partial[i] = puzzle.Coord{Row: win.Row, Col: win.Col + 1 + i}
		}
		out = append(out, RegionLayout{
			fmt.Sprintf("band-full-%d", fr):    full,
			fmt.Sprintf("band-partial-%d", fr): partial,
		})
	}
	return out
}

// layoutsFor picks the layouts a family's windows are probed
// under.  The band-region family needs the straddling structure;
// everything else gets the generic row and block layouts.
func layoutsFor(f Family, win Window) []RegionLayout {
	if f.ID() == BandRegionFamily {
		return bandLayouts(win)
	}
	return []RegionLayout{rowLayout(win), blockLayout(win)}
}
