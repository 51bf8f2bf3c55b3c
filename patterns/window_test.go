package patterns

import (
	"reflect"
	"testing"

	"github.com/kristofer84/star-battle-patterns/puzzle"
)

func TestPlacements(t *testing.T) {
	wins := Placements(4, 2, 3)
	if len(wins) != 6 {
		t.Fatalf("got %d placements, expected 6", len(wins))
	}
	if wins[0] != (Window{Width: 2, Height: 3, Row: 0, Col: 0}) {
		t.Errorf("first placement is %+v", wins[0])
	}
	if wins[5] != (Window{Width: 2, Height: 3, Row: 1, Col: 2}) {
		t.Errorf("last placement is %+v", wins[5])
	}
	if Placements(4, 5, 1) != nil {
		t.Errorf("oversized window produced placements")
	}
	if Placements(4, 0, 1) != nil {
		t.Errorf("degenerate window produced placements")
	}
}

func TestWindowGeometry(t *testing.T) {
	win := Window{Width: 3, Height: 2, Row: 1, Col: 2}
	if win.CellCount() != 6 {
		t.Errorf("cell count is %d", win.CellCount())
	}
	inside := puzzle.Coord{Row: 2, Col: 4}
	if !win.Contains(inside) {
		t.Errorf("%+v not contained", inside)
	}
	if got := win.Relative(inside); got != 5 {
		t.Errorf("relative index of %+v is %d, expected 5", inside, got)
	}
	for _, c := range []puzzle.Coord{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 3, Col: 2}, {Row: 1, Col: 5}} {
		if win.Contains(c) {
			t.Errorf("%+v wrongly contained", c)
		}
	}
}

var regionQuotaTests = []struct {
	name     string
	win      Window
	rel      []int
	perUnit  int
	expected int
}{
	{"full coverage", Window{Width: 3, Height: 2}, []int{0, 1, 2, 3, 4, 5}, 2, 4},
	{"two rows", Window{Width: 3, Height: 3}, []int{0, 4}, 1, 2},
	{"three rows", Window{Width: 3, Height: 3}, []int{0, 3, 6}, 2, 6},
	{"one row", Window{Width: 4, Height: 3}, []int{4, 5, 6}, 2, 2},
	{"one cell", Window{Width: 4, Height: 3}, []int{7}, 1, 1},
}

func TestRegionQuota(t *testing.T) {
	for _, tc := range regionQuotaTests {
		if got := regionQuota(tc.win, tc.rel, tc.perUnit); got != tc.expected {
			t.Errorf("%s: quota %d, expected %d", tc.name, got, tc.expected)
		}
	}
}

func TestBuildBoard(t *testing.T) {
	win := Window{Width: 3, Height: 2, Row: 1, Col: 1}
	layout := RegionLayout{
		// partly outside the window; the outside cells drop
		"b-straddler": {{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
		// entirely outside; the region disappears
		"c-elsewhere": {{Row: 0, Col: 0}, {Row: 0, Col: 1}},
		// entirely inside
		"a-inside": {{Row: 2, Col: 1}, {Row: 2, Col: 2}},
	}
	b, err := BuildBoard(win, 5, 1, layout)
	if err != nil {
		t.Fatalf("BuildBoard failed: %v", err)
	}
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("board is %dx%d", b.Width(), b.Height())
	}
	regions := b.Regions()
	if len(regions) != 2 {
		t.Fatalf("got %d regions, expected 2", len(regions))
	}
	// identifier order: a-inside first, then b-straddler
	if !reflect.DeepEqual(regions[0].Cells(), []int{3, 4}) {
		t.Errorf("first region cells are %v, expected [3 4]", regions[0].Cells())
	}
	if !reflect.DeepEqual(regions[1].Cells(), []int{0, 1}) {
		t.Errorf("second region cells are %v, expected [0 1]", regions[1].Cells())
	}
	for _, g := range regions {
		if g.Quota() != 1 {
			t.Errorf("%v quota is %d, expected 1", g.ID(), g.Quota())
		}
	}
}

func TestBuildBoardFullCoverageQuota(t *testing.T) {
	win := Window{Width: 2, Height: 3, Row: 0, Col: 0}
	layout := RegionLayout{"all": {
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
		{Row: 2, Col: 0}, {Row: 2, Col: 1},
	}}
	b, err := BuildBoard(win, 6, 2, layout)
	if err != nil {
		t.Fatalf("BuildBoard failed: %v", err)
	}
	if got := b.Regions()[0].Quota(); got != 6 {
		t.Errorf("full-coverage quota is %d, expected height*perUnit = 6", got)
	}
}

func TestApplyFixedCluesEmptyIsIdentity(t *testing.T) {
	b, _ := puzzle.NewBoard(3, 3, 1)
	b.AddRegion([]int{0, 1, 2}, 1)
	out, err := ApplyFixedClues(b, nil, nil)
	if err != nil {
		t.Fatalf("ApplyFixedClues failed: %v", err)
	}
	if !out.Equal(b) {
		t.Errorf("empty clue application changed the board")
	}
}

func TestApplyFixedClues(t *testing.T) {
	b, _ := puzzle.NewBoard(3, 3, 1)
	out, err := ApplyFixedClues(b, []int{4}, []int{0, 8})
	if err != nil {
		t.Fatalf("ApplyFixedClues failed: %v", err)
	}
	for i, expected := range map[int]puzzle.CellValue{4: puzzle.Marked, 0: puzzle.Unmarked, 8: puzzle.Unmarked, 1: puzzle.Unknown} {
		if v, _ := out.Cell(i); v != expected {
			t.Errorf("cell %d is %v, expected %v", i, v, expected)
		}
	}
	// the input board is untouched
	if v, _ := b.Cell(4); v != puzzle.Unknown {
		t.Errorf("clue application modified its input")
	}
	if _, err := ApplyFixedClues(b, []int{9}, nil); err == nil {
		t.Errorf("no error for an out-of-range clue")
	}
	if _, err := ApplyFixedClues(b, nil, []int{-1}); err == nil {
		t.Errorf("no error for a negative clue")
	}
}
