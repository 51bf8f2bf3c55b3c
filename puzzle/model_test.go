package puzzle

import (
	"reflect"
	"testing"
)

func TestNewBoardBadArguments(t *testing.T) {
	for i, tc := range []struct{ width, height, perUnit int }{
		{0, 4, 1},
		{4, 0, 1},
		{maxSide + 1, 4, 1},
		{4, maxSide + 1, 1},
		{4, 4, -1},
	} {
		if _, err := NewBoard(tc.width, tc.height, tc.perUnit); err == nil {
			t.Errorf("case %d: no error for %dx%d per %d", i, tc.width, tc.height, tc.perUnit)
		}
	}
}

func TestNewBoardGroups(t *testing.T) {
	b, err := NewBoard(3, 2, 2)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	rows, cols := b.Rows(), b.Columns()
	if len(rows) != 2 || len(cols) != 3 {
		t.Fatalf("got %d rows and %d columns, expected 2 and 3", len(rows), len(cols))
	}
	if !reflect.DeepEqual(rows[1].Cells(), []int{3, 4, 5}) {
		t.Errorf("row 1 cells are %v", rows[1].Cells())
	}
	if !reflect.DeepEqual(cols[2].Cells(), []int{2, 5}) {
		t.Errorf("column 2 cells are %v", cols[2].Cells())
	}
	for _, g := range b.Groups() {
		if g.Quota() != 2 {
			t.Errorf("%v quota is %d, expected 2", g.ID(), g.Quota())
		}
	}
	if len(b.Regions()) != 0 {
		t.Errorf("fresh board has %d regions", len(b.Regions()))
	}
}

// single-cell lines are not synthesized: a 1-high board gets no
// column groups and a 1-wide board no row groups
func TestNewBoardDegenerateLines(t *testing.T) {
	flat, _ := NewBoard(4, 1, 1)
	if len(flat.Rows()) != 1 || len(flat.Columns()) != 0 {
		t.Errorf("4x1 board has %d rows and %d columns, expected 1 and 0",
			len(flat.Rows()), len(flat.Columns()))
	}
	tall, _ := NewBoard(1, 4, 1)
	if len(tall.Rows()) != 0 || len(tall.Columns()) != 1 {
		t.Errorf("1x4 board has %d rows and %d columns, expected 0 and 1",
			len(tall.Rows()), len(tall.Columns()))
	}
}

func TestCellAccess(t *testing.T) {
	b, _ := NewBoard(3, 3, 1)
	if v, err := b.Cell(4); err != nil || v != Unknown {
		t.Errorf("fresh cell 4 is (%v, %v)", v, err)
	}
	if err := b.SetCell(4, Marked); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if v, _ := b.Cell(4); v != Marked {
		t.Errorf("cell 4 is %v after SetCell(Marked)", v)
	}
	for _, index := range []int{-1, 9} {
		if _, err := b.Cell(index); err == nil {
			t.Errorf("Cell(%d): no error", index)
		}
		if err := b.SetCell(index, Marked); err == nil {
			t.Errorf("SetCell(%d): no error", index)
		}
	}
	if err := b.SetCell(0, CellValue(7)); err == nil {
		t.Errorf("no error for a bogus cell value")
	}
}

func TestAddRegion(t *testing.T) {
	b, _ := NewBoard(3, 3, 1)
	if err := b.AddRegion(nil, 1); err == nil {
		t.Errorf("no error for an empty region")
	}
	if err := b.AddRegion([]int{0, 9}, 1); err == nil {
		t.Errorf("no error for an out-of-range member")
	}
	if err := b.AddRegion([]int{0, -1}, 1); err == nil {
		t.Errorf("no error for a negative member")
	}
	if err := b.AddRegion([]int{0, 1}, -1); err == nil {
		t.Errorf("no error for a negative quota")
	}
	if err := b.AddRegion([]int{5, 2, 2, 8}, 1); err != nil {
		t.Fatalf("AddRegion failed: %v", err)
	}
	regions := b.Regions()
	if len(regions) != 1 {
		t.Fatalf("got %d regions, expected 1", len(regions))
	}
	if !reflect.DeepEqual(regions[0].Cells(), []int{2, 5, 8}) {
		t.Errorf("region cells are %v, expected [2 5 8]", regions[0].Cells())
	}
	if regions[0].ID() != (GroupID{GtypeRegion, 0}) {
		t.Errorf("region id is %v", regions[0].ID())
	}
}

// set the named cells, leaving the rest Unknown
func setCells(t *testing.T, b *Board, v CellValue, indices ...int) {
	t.Helper()
	for _, i := range indices {
		if err := b.SetCell(i, v); err != nil {
			t.Fatalf("SetCell(%d, %v) failed: %v", i, v, err)
		}
	}
}

func TestPartialValid(t *testing.T) {
	b, _ := NewBoard(4, 1, 1)
	if !b.PartialValid() {
		t.Errorf("fresh board not partially valid")
	}

	// over quota
	over, _ := NewBoard(4, 1, 1)
	setCells(t, over, Marked, 0, 3)
	if over.PartialValid() {
		t.Errorf("board over quota reported valid")
	}

	// quota out of reach
	starved, _ := NewBoard(4, 1, 1)
	setCells(t, starved, Unmarked, 0, 1, 2, 3)
	if starved.PartialValid() {
		t.Errorf("board with unreachable quota reported valid")
	}

	// adjacent marks, diagonal
	touching, _ := NewBoard(3, 3, 2)
	setCells(t, touching, Marked, 0, 4)
	if touching.PartialValid() {
		t.Errorf("board with diagonal marks reported valid")
	}
}

func TestCompleteValid(t *testing.T) {
	b, _ := NewBoard(4, 1, 1)
	b.AddRegion([]int{0, 1, 2, 3}, 1)
	setCells(t, b, Unmarked, 0, 1, 2)
	if b.CompleteValid() {
		t.Errorf("board with an Unknown cell reported complete")
	}
	setCells(t, b, Marked, 3)
	if !b.CompleteValid() {
		t.Errorf("solved board not reported complete")
	}
	setCells(t, b, Unmarked, 3)
	if b.CompleteValid() {
		t.Errorf("board missing its quota reported complete")
	}
}

func TestCopyAndEqual(t *testing.T) {
	b, _ := NewBoard(3, 3, 1)
	b.AddRegion([]int{0, 1, 2}, 1)
	setCells(t, b, Marked, 4)

	c := b.Copy()
	if !b.Equal(c) || !c.Equal(b) {
		t.Fatalf("copy not equal to original")
	}
	setCells(t, c, Unmarked, 0)
	if b.Equal(c) {
		t.Errorf("boards equal after diverging")
	}
	if v, _ := b.Cell(0); v != Unknown {
		t.Errorf("writing the copy changed the original")
	}

	other, _ := NewBoard(3, 3, 1)
	if b.Equal(other) {
		t.Errorf("boards with different regions reported equal")
	}
}
