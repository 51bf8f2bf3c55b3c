package puzzle

/*

Constraint board representation

*/

import (
	"fmt"
)

// A CellValue is the content of one board cell.  Cells start
// Unknown and are only ever changed through explicit board
// operations; nothing in this package infers a value implicitly.
type CellValue int

// The three cell values.
const (
	Unknown CellValue = iota
	Marked
	Unmarked
)

// String renders a cell value as its grid glyph.
func (v CellValue) String() string {
	switch v {
	case Unknown:
		return "_"
	case Marked:
		return "*"
	case Unmarked:
		return "."
	}
	return "?"
}

// validCellValue reports whether v is one of the three known
// cell values.
func validCellValue(v CellValue) bool {
	return v == Unknown || v == Marked || v == Unmarked
}

/*

Groups

*/

// A GroupID names a row, column, or region of a board.  Rows and
// columns are numbered 0-based from the top/left; regions are
// numbered in the order they were added.
type GroupID struct {
	Gtype string `json:"gtype"`
	Index int    `json:"index"`
}

// Group IDs implement Stringer
func (gid GroupID) String() string {
	if gid.Gtype == "" {
		return fmt.Sprintf("<group> %d", gid.Index)
	}
	return fmt.Sprintf("%s %d", gid.Gtype, gid.Index)
}

// Gtype (group type) constants.
const (
	GtypeRow    = "row"
	GtypeColumn = "column"
	GtypeRegion = "region"
)

// A Group is a set of cells that together must contain an exact
// quota of Marked cells.  Rows and columns always partition the
// board; regions are supplied externally and may overlap or
// leave cells uncovered.  The model deliberately does not
// enforce partition invariants on regions, because the puzzle's
// real rules don't guarantee them for board fragments.
type Group struct {
	id    GroupID
	cells intset
	quota int
}

// ID returns the group's identifier.
func (g *Group) ID() GroupID { return g.id }

// Quota returns the required count of Marked cells in the group.
func (g *Group) Quota() int { return g.quota }

// Cells returns the member cell indices in increasing order.
// The returned slice doesn't share storage with the group.
func (g *Group) Cells() []int { return newIntsetCopy(g.cells) }

// Size returns the number of member cells.
func (g *Group) Size() int { return len(g.cells) }

// counts tallies the group's cells by value from the given cell
// slice.  Internal; the slice is the board's or a search branch's.
func (g *Group) counts(cells []CellValue) (marked, unknown int) {
	for _, i := range g.cells {
		switch cells[i] {
		case Marked:
			marked++
		case Unknown:
			unknown++
		}
	}
	return
}

/*

Boards

*/

// A Board is a rectangular grid of cells with three independent
// group collections: one row group per grid row, one column
// group per grid column, and any number of externally supplied
// region groups.  A complete valid assignment has every group's
// Marked count equal to its quota and no two Marked cells
// touching, diagonals included.
type Board struct {
	width   int
	height  int
	size    int // width*height; the one bound used by index checks
	cells   []CellValue
	rows    []*Group
	cols    []*Group
	regions []*Group
}

// Bounds on board construction.  Windows under study are small;
// the cap just keeps nonsense arguments from allocating wildly.
const (
	minSide = 1
	maxSide = 50
)

// NewBoard creates a board of the given dimensions with all
// cells Unknown.  Row and column groups are synthesized with
// quota perUnit; the board starts with no regions.
//
// Single-cell lines are not synthesized.  A board this package
// sees is usually a fragment of a larger grid, and a one-cell
// column is a sliver of a column whose quota lives mostly
// outside the fragment; giving it the full per-unit quota would
// force a star into every such cell.  So a 1-high board gets row
// groups only, and a 1-wide board column groups only.
func NewBoard(width, height, perUnit int) (*Board, error) {
	if width < minSide || width > maxSide {
		return nil, rangeError(WidthAttribute, width, minSide, maxSide)
	}
	if height < minSide || height > maxSide {
		return nil, rangeError(HeightAttribute, height, minSide, maxSide)
	}
	if perUnit < 0 {
		return nil, rangeError(QuotaAttribute, perUnit, 0, width*height)
	}
	b := &Board{
		width:  width,
		height: height,
		size:   width * height,
		cells:  make([]CellValue, width*height),
	}
	if width >= 2 {
		b.rows = make([]*Group, height)
		for r := 0; r < height; r++ {
			cells := make(intset, width)
			for c := 0; c < width; c++ {
				cells[c] = r*width + c
			}
			b.rows[r] = &Group{GroupID{GtypeRow, r}, cells, perUnit}
		}
	}
	if height >= 2 {
		b.cols = make([]*Group, width)
		for c := 0; c < width; c++ {
			cells := make(intset, height)
			for r := 0; r < height; r++ {
				cells[r] = r*width + c
			}
			b.cols[c] = &Group{GroupID{GtypeColumn, c}, cells, perUnit}
		}
	}
	return b, nil
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// Size returns the total cell count.
func (b *Board) Size() int { return b.size }

// Cell returns the value of the cell at the given index.  Any
// index outside [0, width*height) is an argument Error.
func (b *Board) Cell(index int) (CellValue, error) {
	if index < 0 || index >= b.size {
		return Unknown, rangeError(IndexAttribute, index, 0, b.size-1)
	}
	return b.cells[index], nil
}

// SetCell writes the value of the cell at the given index.  Any
// index outside [0, width*height) is an argument Error, as is a
// value that isn't one of the three cell values.  Nothing else
// about the board changes.
func (b *Board) SetCell(index int, v CellValue) error {
	if index < 0 || index >= b.size {
		return rangeError(IndexAttribute, index, 0, b.size-1)
	}
	if !validCellValue(v) {
		return Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: ValueAttribute,
			Condition: UnknownValueCondition,
			Values:    ErrorData{int(v)},
		}
	}
	b.cells[index] = v
	return nil
}

// AddRegion appends a region group with the given member cells
// and quota.  Member indices must all be in range; duplicates
// collapse.  Regions may overlap other regions and need not
// cover the board.
func (b *Board) AddRegion(cells []int, quota int) error {
	if len(cells) == 0 {
		return Error{
			Scope:     ArgumentScope,
			Structure: AttributeStructure,
			Attribute: CellsAttribute,
			Condition: EmptyGroupCondition,
		}
	}
	if quota < 0 {
		return rangeError(QuotaAttribute, quota, 0, b.size)
	}
	var members intset
	for _, i := range cells {
		if i < 0 || i >= b.size {
			return rangeError(IndexAttribute, i, 0, b.size-1)
		}
		members.insert(i)
	}
	id := GroupID{GtypeRegion, len(b.regions)}
	b.regions = append(b.regions, &Group{id, members, quota})
	return nil
}

// Rows returns the row groups, top to bottom.
func (b *Board) Rows() []*Group { return append([]*Group(nil), b.rows...) }

// Columns returns the column groups, left to right.
func (b *Board) Columns() []*Group { return append([]*Group(nil), b.cols...) }

// Regions returns the region groups in addition order.
func (b *Board) Regions() []*Group { return append([]*Group(nil), b.regions...) }

// Groups returns all groups: rows, then columns, then regions.
func (b *Board) Groups() []*Group {
	out := make([]*Group, 0, len(b.rows)+len(b.cols)+len(b.regions))
	out = append(out, b.rows...)
	out = append(out, b.cols...)
	out = append(out, b.regions...)
	return out
}

// Copy returns a deep copy of the board.  Group structure is
// immutable after construction, so groups are shared; the cell
// values are not.
func (b *Board) Copy() *Board {
	c := *b
	c.cells = make([]CellValue, len(b.cells))
	copy(c.cells, b.cells)
	return &c
}

/*

Validity

The two predicates below are the single definition of what a
legal assignment is; the solver runs them against its own branch
cell slices, the public wrappers run them against the board's.

*/

// partialValidCells checks the search-time pruning contract
// against the given cell slice: every group can still reach but
// has not exceeded its quota, and no two Marked cells are
// 8-adjacent.  The adjacency check scans the whole slice, since
// marks are added incrementally and never retracted within a
// branch.
func (b *Board) partialValidCells(cells []CellValue) bool {
	for _, g := range b.Groups() {
		marked, unknown := g.counts(cells)
		if marked > g.quota {
			return false
		}
		if marked+unknown < g.quota {
			return false
		}
	}
	return b.marksSeparated(cells)
}

// completeValidCells checks the complete-assignment invariants
// against the given cell slice: no Unknowns, every quota met
// exactly, no two Marked cells 8-adjacent.
func (b *Board) completeValidCells(cells []CellValue) bool {
	for _, v := range cells {
		if v == Unknown {
			return false
		}
	}
	for _, g := range b.Groups() {
		marked, _ := g.counts(cells)
		if marked != g.quota {
			return false
		}
	}
	return b.marksSeparated(cells)
}

// marksSeparated reports whether no two Marked cells in the
// slice are 8-adjacent.
func (b *Board) marksSeparated(cells []CellValue) bool {
	for i, v := range cells {
		if v != Marked {
			continue
		}
		// only look rightward/downward; the mirror pair was
		// checked from the other end
		for j := i + 1; j < len(cells); j++ {
			if cells[j] == Marked && b.adjacent(i, j) {
				return false
			}
		}
	}
	return true
}

// PartialValid reports whether the board's current (possibly
// incomplete) assignment satisfies the pruning contract.
func (b *Board) PartialValid() bool {
	return b.partialValidCells(b.cells)
}

// CompleteValid reports whether the board's current assignment
// is a complete valid solution.
func (b *Board) CompleteValid() bool {
	return b.completeValidCells(b.cells)
}

// Equal reports whether two boards have the same dimensions,
// cell values, and groups (ids, members, quotas).
func (b *Board) Equal(o *Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	bg, og := b.Groups(), o.Groups()
	if len(bg) != len(og) {
		return false
	}
	for i := range bg {
		if bg[i].id != og[i].id || bg[i].quota != og[i].quota {
			return false
		}
		if len(bg[i].cells) != len(og[i].cells) {
			return false
		}
		for j := range bg[i].cells {
			if bg[i].cells[j] != og[i].cells[j] {
				return false
			}
		}
	}
	return true
}
