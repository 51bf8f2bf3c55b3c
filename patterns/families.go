package patterns

import (
	"github.com/kristofer84/star-battle-patterns/puzzle"
)

/*

Built-in schema families

*/

// Canonical family identifiers.
const (
	LineExhaustionFamily = "line-exhaustion"
	BandRegionFamily     = "band-region"
)

func init() {
	if err := RegisterFamily(&FamilyDescriptor{
		Names:  []string{LineExhaustionFamily},
		Family: lineExhaustion{},
	}); err != nil {
		panic(err)
	}
	if err := RegisterFamily(&FamilyDescriptor{
		Names:  []string{BandRegionFamily},
		Family: bandRegion{},
	}); err != nil {
		panic(err)
	}
}

// combinations enumerates k-subsets of [0, n) in lexicographic
// order, stopping after limit subsets.  The generators use it to
// keep candidate clue placements bounded per line.
func combinations(n, k, limit int) [][]int {
	if k < 0 || k > n || limit < 1 {
		return nil
	}
	var out [][]int
	pick := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(out) >= limit {
			return
		}
		if len(pick) == k {
			// subsets are never nil, even the empty k=0 subset
			out = append(out, append([]int{}, pick...))
			return
		}
		// not enough cells left to finish the subset
		if n-start < k-len(pick) {
			return
		}
		for i := start; i < n; i++ {
			pick = append(pick, i)
			rec(i + 1)
			pick = pick[:len(pick)-1]
			if len(out) >= limit {
				return
			}
		}
	}
	rec(0)
	return out
}

/*

line-exhaustion

Targets lines (rows or columns) whose remaining Unknown cells
exactly equal their remaining quota: every one of those cells
must then be Marked.  On a bare window board no line is in that
state, so the family is constructive: its generator synthesizes
the state by proposing Unmarked clues that leave exactly quota
candidate cells in a line, and the solver then discovers which of
the surviving cells are actually forced.

*/

type lineExhaustion struct{}

// cap on candidate clue placements generated per line
const maxLineConfigs = 12

func (lineExhaustion) ID() string         { return LineExhaustionFamily }
func (lineExhaustion) Constructive() bool { return true }

// Precondition reports the lines whose Unknown count equals
// their remaining quota (and is nonzero).  On perturbed boards
// this is the state the generator aims for; on bare windows it
// almost never holds, which is why the family is constructive.
func (lineExhaustion) Precondition(b *puzzle.Board, win Window) (bool, *Aux) {
	var lines []*puzzle.Group
	for _, g := range append(b.Rows(), b.Columns()...) {
		marked, unknown := lineCounts(b, g)
		if unknown > 0 && unknown == g.Quota()-marked {
			lines = append(lines, g)
		}
	}
	if len(lines) == 0 {
		return false, nil
	}
	return true, &Aux{Groups: lines}
}

// Configurations proposes, for each line, clue placements that
// force all but quota of its cells Unmarked.  Proposals that
// leave mutually adjacent survivors are unsolvable and die at
// the probe stage; that is the pipeline's job, not ours.
func (lineExhaustion) Configurations(b *puzzle.Board, win Window, aux *Aux) []ClueSet {
	var out []ClueSet
	for _, g := range append(b.Rows(), b.Columns()...) {
		cells := g.Cells()
		q := g.Quota()
		if q < 1 || q >= len(cells) {
			continue
		}
		for _, keep := range combinations(len(cells), q, maxLineConfigs) {
			kept := make(map[int]bool, len(keep))
			for _, k := range keep {
				kept[k] = true
			}
			var clues []int
			for i, cell := range cells {
				if !kept[i] {
					clues = append(clues, cell)
				}
			}
			out = append(out, ClueSet{
				Unmarked: clues,
				Note: map[string]interface{}{
					"line":           g.ID().String(),
					"unmarked_clues": clues,
				},
			})
		}
	}
	return out
}

// lineCounts tallies a group's cells by value on the board.
func lineCounts(b *puzzle.Board, g *puzzle.Group) (marked, unknown int) {
	for _, i := range g.Cells() {
		v, err := b.Cell(i)
		if err != nil {
			continue // group members are validated at AddRegion time
		}
		switch v {
		case puzzle.Marked:
			marked++
		case puzzle.Unknown:
			unknown++
		}
	}
	return
}

/*

band-region

Targets a contiguous column band that holds at least one region
entirely and another only partially.  The band's columns can hold
exactly bandWidth*perUnit stars; the fully contained regions
claim their share of that capacity, and whatever is left must
come from the in-band cells of the partial regions.  The
generator realizes the squeeze concretely by excluding the band
cells that belong to no region of interest, and the solver then
reports what that forces (typically the partial region's cells
outside the band, or the candidates themselves).

*/

type bandRegion struct{}

func (bandRegion) ID() string         { return BandRegionFamily }
func (bandRegion) Constructive() bool { return false }

// Precondition scans contiguous column bands (narrowest first,
// then left origins first) for one with at least one region
// fully inside, at least one region only partially inside, and
// candidate cells of a partial region within the band.  The
// first qualifying band is reported.
func (bandRegion) Precondition(b *puzzle.Board, win Window) (bool, *Aux) {
	for w := 1; w < b.Width(); w++ {
		for s := 0; s+w <= b.Width(); s++ {
			full, partial := splitRegionsByBand(b, s, w)
			if len(full) == 0 || len(partial) == 0 {
				continue
			}
			cands := bandCells(b, partial[0], s, w)
			if len(cands) == 0 {
				continue
			}
			aux := &Aux{
				Groups:     append(append([]*puzzle.Group(nil), full...), partial[0]),
				BandStart:  s,
				BandWidth:  w,
				Candidates: cands,
			}
			return true, aux
		}
	}
	return false, nil
}

// Configurations proposes one clue placement for the qualifying
// band: force Unmarked every band cell that is in neither a full
// region nor the candidate set, leaving the full regions and the
// partial region's candidates to fight over the band's capacity.
func (bandRegion) Configurations(b *puzzle.Board, win Window, aux *Aux) []ClueSet {
	if aux == nil || len(aux.Groups) < 2 {
		return nil
	}
	full := aux.Groups[:len(aux.Groups)-1]
	partial := aux.Groups[len(aux.Groups)-1]
	inFull := make(map[int]bool)
	var fullIDs []string
	for _, g := range full {
		fullIDs = append(fullIDs, g.ID().String())
		for _, i := range g.Cells() {
			inFull[i] = true
		}
	}
	isCand := make(map[int]bool, len(aux.Candidates))
	for _, i := range aux.Candidates {
		isCand[i] = true
	}
	var clues []int
	for r := 0; r < b.Height(); r++ {
		for c := aux.BandStart; c < aux.BandStart+aux.BandWidth; c++ {
			i := r*b.Width() + c
			if !inFull[i] && !isCand[i] {
				clues = append(clues, i)
			}
		}
	}
	if len(clues) == 0 {
		return nil
	}
	return []ClueSet{{
		Unmarked: clues,
		Note: map[string]interface{}{
			"band_start_col": aux.BandStart,
			"band_width":     aux.BandWidth,
			"full_regions":   fullIDs,
			"partial_region": partial.ID().String(),
			"unmarked_clues": clues,
		},
	}}
}

// splitRegionsByBand partitions the board's regions into those
// fully inside the column band [start, start+width) and those
// only partially inside.  Regions entirely outside appear in
// neither.
func splitRegionsByBand(b *puzzle.Board, start, width int) (full, partial []*puzzle.Group) {
	for _, g := range b.Regions() {
		in, out := 0, 0
		for _, i := range g.Cells() {
			c := i % b.Width()
			if c >= start && c < start+width {
				in++
			} else {
				out++
			}
		}
		switch {
		case in > 0 && out == 0:
			full = append(full, g)
		case in > 0 && out > 0:
			partial = append(partial, g)
		}
	}
	return
}

// bandCells returns the group's cells that lie within the column
// band, in increasing index order.
func bandCells(b *puzzle.Board, g *puzzle.Group, start, width int) []int {
	var out []int
	for _, i := range g.Cells() {
		c := i % b.Width()
		if c >= start && c < start+width {
			out = append(out, i)
		}
	}
	return out
}
