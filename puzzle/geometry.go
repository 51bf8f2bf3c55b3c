package puzzle

/*

Board geometry

Cells are designated by indices that start at 0 and increase
left-to-right, top-to-bottom (English reading order).  All
adjacency math goes through the board's dimensions; there is no
second copy of the geometry anywhere else in the package.

*/

// A Coord identifies a cell by row and column.  Coords are used
// at package boundaries (region layouts arrive as absolute
// coordinates); internally everything works on flat indices.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Index returns the flat index of a coordinate on a grid of the
// given width.
func (c Coord) Index(width int) int {
	return c.Row*width + c.Col
}

// CoordOf returns the coordinate of a flat index on a grid of
// the given width.
func CoordOf(index, width int) Coord {
	return Coord{Row: index / width, Col: index % width}
}

// Neighbors returns the indices of the 8-neighborhood (Moore
// neighborhood) of a cell, clipped at the board edges, self
// excluded, in increasing index order.  Any index outside
// [0, width*height) is an argument Error.
func (b *Board) Neighbors(index int) ([]int, error) {
	if index < 0 || index >= b.size {
		return nil, rangeError(IndexAttribute, index, 0, b.size-1)
	}
	c := CoordOf(index, b.width)
	out := make([]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := c.Row+dr, c.Col+dc
			if nr < 0 || nr >= b.height || nc < 0 || nc >= b.width {
				continue
			}
			out = append(out, nr*b.width+nc)
		}
	}
	return out, nil
}

// adjacent reports whether two in-range indices are mutual
// 8-neighbors.  Internal helper; callers guarantee the range.
func (b *Board) adjacent(i, j int) bool {
	ci, cj := CoordOf(i, b.width), CoordOf(j, b.width)
	dr, dc := ci.Row-cj.Row, ci.Col-cj.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr <= 1 && dc <= 1 && !(dr == 0 && dc == 0)
}

/*

Integer sets

*/

// An intset is a set of integers, represented as a sorted slice.
// We use intsets for group member cell indices.
type intset []int

// newIntsetCopy: Make a copy of an intset.
func newIntsetCopy(in intset) intset {
	if in == nil {
		return nil
	}
	out := make(intset, len(in))
	copy(out, in)
	return out
}

// Find value v, returning where it should be in the intset and
// whether it was found there.
func (ps *intset) find(v int) (int, bool) {
	end := len(*ps)
	where := end
	for i := 0; i < end; i++ {
		if (*ps)[i] == v {
			return i, true
		}
		if (*ps)[i] > v {
			where = i
			break
		}
	}
	return where, false
}

// Insert value v, returning whether it was there already.
func (ps *intset) insert(v int) bool {
	end := len(*ps)
	where, found := ps.find(v)
	if found {
		return true
	}
	// insert by lengthening, shifting, inserting
	// see https://github.com/golang/go/wiki/SliceTricks
	*ps = append(*ps, v)
	if where < end {
		copy((*ps)[where+1:], (*ps)[where:])
		(*ps)[where] = v
	}
	return false
}

// contains reports whether v is in the intset.
func (ps *intset) contains(v int) bool {
	_, found := ps.find(v)
	return found
}
