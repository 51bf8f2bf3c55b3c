package patterns

import (
	"sort"

	"github.com/kristofer84/star-battle-patterns/puzzle"
)

/*

Windows and the window builder

A window is a rectangular slice of a conceptually larger board.
The builder projects it into a standalone constraint board: rows
and columns come straight from the window dimensions, while
regions arrive as absolute-coordinate cell lists and are
translated into the window, dropping whatever falls outside.

The region quota is unknowable from a fragment, so it is
approximated (see regionQuota).  Some synthesized windows are
therefore over- or under-constrained relative to any real puzzle
instance; the search pipeline treats the resulting unsolvable
boards as a normal, frequent outcome.

*/

// A Window identifies a rectangular sub-region of a boardSize x
// boardSize board by its dimensions and origin.
type Window struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Row    int `json:"row"`
	Col    int `json:"col"`
}

// CellCount returns the number of cells in the window.
func (w Window) CellCount() int { return w.Width * w.Height }

// Contains reports whether an absolute coordinate falls inside
// the window.
func (w Window) Contains(c puzzle.Coord) bool {
	return c.Row >= w.Row && c.Row < w.Row+w.Height &&
		c.Col >= w.Col && c.Col < w.Col+w.Width
}

// Relative translates an absolute coordinate to a window-relative
// flat cell index.  Only valid for contained coordinates.
func (w Window) Relative(c puzzle.Coord) int {
	return (c.Row-w.Row)*w.Width + (c.Col - w.Col)
}

// Placements enumerates every placement of a width x height
// window over a boardSize x boardSize board, sliding across all
// valid origins in reading order.
func Placements(boardSize, width, height int) []Window {
	if width > boardSize || height > boardSize || width < 1 || height < 1 {
		return nil
	}
	out := make([]Window, 0, (boardSize-height+1)*(boardSize-width+1))
	for r := 0; r+height <= boardSize; r++ {
		for c := 0; c+width <= boardSize; c++ {
			out = append(out, Window{Width: width, Height: height, Row: r, Col: c})
		}
	}
	return out
}

// A RegionLayout maps region identifiers to their member cells
// in absolute (full-board) coordinates.
type RegionLayout map[string][]puzzle.Coord

// regionQuota approximates the quota of a region fragment with
// the given window-relative cells.  The true puzzle quota is
// unknowable from a fragment, so: a region covering the whole
// window gets height*perUnit, one spanning k>1 distinct rows
// gets k*perUnit, and anything else gets perUnit.  Downstream
// families are tuned against exactly this behavior, so changing
// it changes what they find.
func regionQuota(win Window, rel []int, perUnit int) int {
	if len(rel) == win.CellCount() {
		return win.Height * perUnit
	}
	rows := make(map[int]bool)
	for _, i := range rel {
		rows[i/win.Width] = true
	}
	if k := len(rows); k > 1 {
		return k * perUnit
	}
	return perUnit
}

// BuildBoard projects a window of the nominal board into a
// standalone constraint board.  Rows and columns get quota
// perUnit.  Each region in the layout is translated into the
// window; cells outside the window are silently dropped (the
// documented approximation, tolerated only at this boundary) and
// regions with nothing left inside are discarded entirely.
// Regions are added in sorted identifier order so identical
// inputs always yield identical boards.
func BuildBoard(win Window, boardSize, perUnit int, layout RegionLayout) (*puzzle.Board, error) {
	b, err := puzzle.NewBoard(win.Width, win.Height, perUnit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(layout))
	for id := range layout {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		var rel []int
		for _, abs := range layout[id] {
			if !win.Contains(abs) {
				continue
			}
			rel = append(rel, win.Relative(abs))
		}
		if len(rel) == 0 {
			continue
		}
		if err := b.AddRegion(rel, regionQuota(win, rel, perUnit)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ApplyFixedClues returns a new board with the given cells
// forced Marked and Unmarked respectively, leaving all others
// unchanged.  With empty clue sets the result is value-equal to
// the input.  Out-of-range clue indices are argument Errors; the
// builder's drop-silently tolerance does not apply here.
func ApplyFixedClues(b *puzzle.Board, marked, unmarked []int) (*puzzle.Board, error) {
	out := b.Copy()
	for _, i := range marked {
		if err := out.SetCell(i, puzzle.Marked); err != nil {
			return nil, err
		}
	}
	for _, i := range unmarked {
		if err := out.SetCell(i, puzzle.Unmarked); err != nil {
			return nil, err
		}
	}
	return out, nil
}
