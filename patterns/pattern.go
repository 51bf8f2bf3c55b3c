// Package patterns discovers local star-battle board
// configurations that logically force specific cells, by
// brute-force enumeration over bounded sub-boards (windows)
// rather than symbolic deduction.  Verified configurations are
// published as JSON pattern libraries for a separate interactive
// solver.
package patterns

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

/*

Patterns and pattern libraries

The JSON field names below are a compatibility contract with the
downstream consumer; don't rename them.

*/

// A DeductionType says what a deduction forces cells to.
type DeductionType string

// The two deduction types.
const (
	ForceStar  DeductionType = "forceStar"  // cells must be Marked
	ForceEmpty DeductionType = "forceEmpty" // cells must be Unmarked
)

// A Deduction is one forced conclusion of a pattern: a kind and
// the window-relative indices of the cells it applies to.
type Deduction struct {
	Type            DeductionType `json:"type"`
	RelativeCellIDs []int         `json:"relative_cell_ids"`
}

// A Pattern is an immutable record of a discovered forcing
// configuration.  Data is family-specific and opaque to the
// core; the consumer matches on it.
type Pattern struct {
	ID           string                 `json:"id"`
	WindowWidth  int                    `json:"window_width"`
	WindowHeight int                    `json:"window_height"`
	Data         map[string]interface{} `json:"data"`
	Deductions   []Deduction            `json:"deductions"`
}

// A Library is the output artifact for one schema family.
type Library struct {
	BoardSize      int       `json:"board_size"`
	StarsPerRow    int       `json:"stars_per_row"`
	StarsPerColumn int       `json:"stars_per_column"`
	FamilyID       string    `json:"family_id"`
	Patterns       []Pattern `json:"patterns"`
}

// newPattern builds a verified pattern with a fresh id.
func newPattern(win Window, data map[string]interface{}, deds []Deduction) Pattern {
	return Pattern{
		ID:           uuid.New().String(),
		WindowWidth:  win.Width,
		WindowHeight: win.Height,
		Data:         data,
		Deductions:   deds,
	}
}

/*

Deduplication

Two patterns are duplicates when they share window dimensions,
family id, and the same set of deductions, regardless of the
order of the deduction list or of each deduction's cell-id list.
The canonical key below normalizes exactly those degrees of
freedom and nothing more: there is no rotation or mirror folding,
so geometrically identical patterns at different orientations
survive as distinct entries.

*/

// Key returns the canonical deduplication key of a pattern
// within the given family.
func (p Pattern) Key(familyID string) string {
	parts := make([]string, len(p.Deductions))
	for i, d := range p.Deductions {
		ids := append([]int(nil), d.RelativeCellIDs...)
		sort.Ints(ids)
		parts[i] = fmt.Sprintf("%s%v", d.Type, ids)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%dx%d|%s|%s", p.WindowWidth, p.WindowHeight, familyID, strings.Join(parts, ";"))
}

// dedupe drops patterns whose canonical key was already seen,
// keeping first occurrences in order.
func dedupe(familyID string, ps []Pattern) []Pattern {
	seen := make(map[string]bool, len(ps))
	out := ps[:0:0]
	for _, p := range ps {
		k := p.Key(familyID)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}
