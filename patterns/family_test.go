package patterns

import (
	"reflect"
	"testing"

	"github.com/kristofer84/star-battle-patterns/puzzle"
)

func TestRegistry(t *testing.T) {
	ids := KnownFamilyIDs()
	if !reflect.DeepEqual(ids, []string{LineExhaustionFamily, BandRegionFamily}) {
		t.Errorf("known families are %v", ids)
	}
	for _, id := range ids {
		if got := LookupFamily(id).ID(); got != id {
			t.Errorf("lookup of %q returned family %q", id, got)
		}
	}
	if err := RegisterFamily(nil); err == nil {
		t.Errorf("registered a nil descriptor")
	}
	if err := RegisterFamily(&FamilyDescriptor{Names: []string{""}, Family: fallbackFamily{}}); err == nil {
		t.Errorf("registered an unnamed family")
	}
	if err := RegisterFamily(&FamilyDescriptor{
		Names:  []string{LineExhaustionFamily},
		Family: fallbackFamily{},
	}); err == nil {
		t.Errorf("registered a name collision")
	}
}

func TestFallbackFamily(t *testing.T) {
	f := LookupFamily("no-such-family")
	if f.ID() != "no-such-family" {
		t.Errorf("fallback id is %q", f.ID())
	}
	if f.Constructive() {
		t.Errorf("fallback family claims to be constructive")
	}
	bare, _ := puzzle.NewBoard(3, 3, 1)
	if ok, _ := f.Precondition(bare, Window{Width: 3, Height: 3}); ok {
		t.Errorf("fallback precondition holds with no regions")
	}
	bare.AddRegion([]int{0, 1}, 1)
	ok, aux := f.Precondition(bare, Window{Width: 3, Height: 3})
	if !ok {
		t.Fatalf("fallback precondition fails with a region")
	}
	if got := f.Configurations(bare, Window{Width: 3, Height: 3}, aux); got != nil {
		t.Errorf("fallback family generated %d configurations", len(got))
	}
}

var combinationTests = []struct {
	n, k, limit int
	expected    [][]int
}{
	{4, 1, 10, [][]int{{0}, {1}, {2}, {3}}},
	{3, 2, 10, [][]int{{0, 1}, {0, 2}, {1, 2}}},
	{4, 2, 3, [][]int{{0, 1}, {0, 2}, {0, 3}}},
	{2, 3, 10, nil},
	{3, 0, 10, [][]int{{}}},
	{3, 1, 0, nil},
}

func TestCombinations(t *testing.T) {
	for i, tc := range combinationTests {
		got := combinations(tc.n, tc.k, tc.limit)
		if len(got) == 0 && len(tc.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("case %d: combinations(%d, %d, %d) = %v, expected %v",
				i, tc.n, tc.k, tc.limit, got, tc.expected)
		}
	}
}

func TestLineExhaustionPrecondition(t *testing.T) {
	f := LookupFamily(LineExhaustionFamily)
	if !f.Constructive() {
		t.Fatalf("line exhaustion not constructive")
	}
	win := Window{Width: 4, Height: 1}
	b, _ := puzzle.NewBoard(4, 1, 1)
	if ok, _ := f.Precondition(b, win); ok {
		t.Errorf("precondition holds on a bare board")
	}
	for _, i := range []int{0, 1, 2} {
		b.SetCell(i, puzzle.Unmarked)
	}
	ok, aux := f.Precondition(b, win)
	if !ok {
		t.Fatalf("precondition fails on an exhausted line")
	}
	if len(aux.Groups) != 1 || aux.Groups[0].ID() != (puzzle.GroupID{Gtype: puzzle.GtypeRow, Index: 0}) {
		t.Errorf("qualifying groups are %v", aux.Groups)
	}
}

func TestLineExhaustionConfigurations(t *testing.T) {
	f := LookupFamily(LineExhaustionFamily)
	win := Window{Width: 4, Height: 1}
	b, _ := puzzle.NewBoard(4, 1, 1)
	configs := f.Configurations(b, win, nil)
	if len(configs) != 4 {
		t.Fatalf("got %d configurations, expected one per kept cell", len(configs))
	}
	seen := make(map[int]bool)
	for _, cs := range configs {
		if len(cs.Marked) != 0 || len(cs.Unmarked) != 3 {
			t.Fatalf("configuration clues are %v / %v", cs.Marked, cs.Unmarked)
		}
		excluded := make(map[int]bool)
		for _, i := range cs.Unmarked {
			excluded[i] = true
		}
		for i := 0; i < 4; i++ {
			if !excluded[i] {
				seen[i] = true
			}
		}
		if cs.Note["line"] != "row 0" {
			t.Errorf("note names line %v", cs.Note["line"])
		}
	}
	if len(seen) != 4 {
		t.Errorf("kept cells cover %d of 4 positions", len(seen))
	}
}

// the column-band structure the band-region family wants: a
// 4x4 window whose layout anchors one region in the leftmost two
// columns and lets another straddle their right edge
func bandBoard(t *testing.T, win Window) *puzzle.Board {
	t.Helper()
	layouts := bandLayouts(win)
	if len(layouts) == 0 {
		t.Fatalf("no band layouts for %+v", win)
	}
	b, err := BuildBoard(win, 4, 1, layouts[0])
	if err != nil {
		t.Fatalf("BuildBoard failed: %v", err)
	}
	return b
}

func TestBandRegionPrecondition(t *testing.T) {
	f := LookupFamily(BandRegionFamily)
	if f.Constructive() {
		t.Fatalf("band region claims to be constructive")
	}
	win := Window{Width: 4, Height: 4}
	b := bandBoard(t, win)
	ok, aux := f.Precondition(b, win)
	if !ok {
		t.Fatalf("precondition fails on a banded board")
	}
	if aux.BandStart != 0 || aux.BandWidth != 2 {
		t.Errorf("band is [%d, %d), expected [0, 2)", aux.BandStart, aux.BandStart+aux.BandWidth)
	}
	if !reflect.DeepEqual(aux.Candidates, []int{1}) {
		t.Errorf("candidates are %v, expected [1]", aux.Candidates)
	}
	if len(aux.Groups) != 2 {
		t.Fatalf("got %d qualifying groups, expected 2", len(aux.Groups))
	}

	// no regions at all: nothing qualifies
	bare, _ := puzzle.NewBoard(4, 4, 1)
	if ok, _ := f.Precondition(bare, win); ok {
		t.Errorf("precondition holds with no regions")
	}
}

func TestBandRegionConfigurations(t *testing.T) {
	f := LookupFamily(BandRegionFamily)
	win := Window{Width: 4, Height: 4}
	b := bandBoard(t, win)
	ok, aux := f.Precondition(b, win)
	if !ok {
		t.Fatalf("precondition fails on a banded board")
	}
	configs := f.Configurations(b, win, aux)
	if len(configs) != 1 {
		t.Fatalf("got %d configurations, expected 1", len(configs))
	}
	cs := configs[0]
	if len(cs.Marked) != 0 {
		t.Errorf("band region proposed marked clues %v", cs.Marked)
	}
	// every in-band cell outside the anchored region and the
	// candidate set gets excluded
	if !reflect.DeepEqual(cs.Unmarked, []int{0, 4, 5, 12, 13}) {
		t.Errorf("unmarked clues are %v, expected [0 4 5 12 13]", cs.Unmarked)
	}
	if cs.Note["band_start_col"] != 0 || cs.Note["band_width"] != 2 {
		t.Errorf("note band is %v / %v", cs.Note["band_start_col"], cs.Note["band_width"])
	}
	if f.Configurations(b, win, nil) != nil {
		t.Errorf("configurations without aux should be empty")
	}
}
