package puzzle

import (
	"time"
)

/*

Exact completion enumerator

The solver explores every valid completion of a (possibly
partially filled) board by depth-first backtracking: find the
lowest-index Unknown cell, try Marked then Unmarked, and recurse
into each branch only if the partial-validity contract still
holds.  A branch with no Unknown cells left is a leaf; if it
passes the complete-assignment check it is recorded as a
completion.

Each branch operates on its own copy of the cell-value slice, so
sibling branches cannot interfere.  That is a deliberate
simplicity/ownership trade-off: at window sizes of at most a few
dozen cells the per-node allocation is cheap, and it keeps the
observable results trivially independent of exploration order.

The search stops early when the completion cap or the wall-clock
deadline is reached.  Results already recorded are kept.  The
classification returned is therefore only guaranteed with
respect to the completions actually recorded: a truncated search
can report alwaysMarked/alwaysUnmarked for a cell that some
unexplored completion would contradict.  Callers that need
certainty must run with a cap well above the expected completion
count and a deadline long enough to exhaust the space, and check
Completions against the cap they asked for.

*/

// A Classification is the solver's verdict on one cell across
// every recorded completion.
type Classification int

// The three per-cell classifications.
const (
	Variable Classification = iota
	AlwaysMarked
	AlwaysUnmarked
)

// String renders a classification for debug output.
func (c Classification) String() string {
	switch c {
	case Variable:
		return "variable"
	case AlwaysMarked:
		return "alwaysMarked"
	case AlwaysUnmarked:
		return "alwaysUnmarked"
	}
	return "unknown"
}

// A Result reports what the enumerator found: how many
// completions were recorded (capped at the requested maximum)
// and the per-cell classification over those completions.
//
// Completions == 0 means the probed board is unsatisfiable or
// the search was cut off before any completion was found.  By
// convention every cell is then Variable; that convention
// signals "inconclusive", not "unconstrained", and callers must
// branch on the zero count before trusting any classification.
type Result struct {
	Completions int
	Cells       []Classification
}

// Truncated reports whether the search may have stopped before
// exhausting the space: the recorded count reached the cap
// requested of Solve.  (A deadline hit with fewer recorded
// completions is not detectable from the result alone; callers
// that care pass deadlines with headroom.)
func (r Result) Truncated(maxCompletions int) bool {
	return r.Completions >= maxCompletions
}

// A searchContext owns all mutable search state, threaded
// explicitly through the recursion.  Nothing is captured in
// closures and nothing is process-wide, so concurrent solves of
// different boards don't share anything.
type searchContext struct {
	board        *Board
	max          int
	deadline     time.Time
	hasDeadline  bool
	completions  int
	everMarked   []bool
	everUnmarked []bool
}

// Solve enumerates valid completions of the board, recording at
// most maxCompletions of them, giving up at the timeout if one
// is positive.  The board itself is never modified.
func Solve(b *Board, maxCompletions int, timeout time.Duration) Result {
	ctx := &searchContext{
		board:        b,
		max:          maxCompletions,
		everMarked:   make([]bool, b.size),
		everUnmarked: make([]bool, b.size),
	}
	if timeout > 0 {
		ctx.deadline = time.Now().Add(timeout)
		ctx.hasDeadline = true
	}
	if maxCompletions > 0 {
		start := make([]CellValue, b.size)
		copy(start, b.cells)
		if b.partialValidCells(start) {
			ctx.search(start)
		}
	}
	return ctx.result()
}

// cutoff reports whether the search must stop: cap reached or
// deadline passed.  Checked at the start of every recursive
// call; there is no preemption mid-branch.
func (ctx *searchContext) cutoff() bool {
	if ctx.completions >= ctx.max {
		return true
	}
	if ctx.hasDeadline && !time.Now().Before(ctx.deadline) {
		return true
	}
	return false
}

// search recurses on the branch owning the given cell slice.
func (ctx *searchContext) search(cells []CellValue) {
	if ctx.cutoff() {
		return
	}
	next := -1
	for i, v := range cells {
		if v == Unknown {
			next = i
			break
		}
	}
	if next < 0 {
		// leaf: a full assignment
		if ctx.board.completeValidCells(cells) {
			ctx.record(cells)
		}
		return
	}
	for _, v := range []CellValue{Marked, Unmarked} {
		branch := make([]CellValue, len(cells))
		copy(branch, cells)
		branch[next] = v
		if ctx.board.partialValidCells(branch) {
			ctx.search(branch)
		}
	}
}

// record notes one completion's cell values and bumps the count.
func (ctx *searchContext) record(cells []CellValue) {
	ctx.completions++
	for i, v := range cells {
		if v == Marked {
			ctx.everMarked[i] = true
		} else {
			ctx.everUnmarked[i] = true
		}
	}
}

// result classifies each cell over the recorded completions.
func (ctx *searchContext) result() Result {
	r := Result{
		Completions: ctx.completions,
		Cells:       make([]Classification, ctx.board.size),
	}
	if ctx.completions == 0 {
		return r // all Variable by convention
	}
	for i := range r.Cells {
		switch {
		case ctx.everMarked[i] && !ctx.everUnmarked[i]:
			r.Cells[i] = AlwaysMarked
		case ctx.everUnmarked[i] && !ctx.everMarked[i]:
			r.Cells[i] = AlwaysUnmarked
		}
	}
	return r
}
