package patterns

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kristofer84/star-battle-patterns/puzzle"
)

/*

The search / verify / dedup pipeline

A flat sequential loop over families, window sizes, placements,
layouts, and candidate clue placements.  Nothing is shared
across iterations except the accumulated result collections
owned by the loop, so there is no locking anywhere.

*/

// A WindowSize is one requested window shape.
type WindowSize struct {
	Width  int
	Height int
}

// Options configures a pattern search.
type Options struct {
	BoardSize     int           // nominal full-board side length
	StarsPerUnit  int           // quota per row/column/region unit
	Families      []string      // family ids to search; unknown ids search nothing
	WindowSizes   []WindowSize  // window shapes to slide over the board
	MaxPerWindow  int           // accepted-pattern cap per family per window placement
	ProbeCap      int           // completion cap for the solvability probe
	ProbeTimeout  time.Duration // timeout for the solvability probe
	VerifyCap     int           // completion cap for exhaustive verification
	VerifyTimeout time.Duration // timeout for exhaustive verification
	Log           *logrus.Logger
}

// Search defaults.
const (
	DefaultMaxPerWindow  = 3
	DefaultProbeCap      = 1
	DefaultProbeTimeout  = 250 * time.Millisecond
	DefaultVerifyCap     = 1000
	DefaultVerifyTimeout = 5 * time.Second
)

// withDefaults fills in the zero-valued knobs.
func (o Options) withDefaults() Options {
	if o.MaxPerWindow == 0 {
		o.MaxPerWindow = DefaultMaxPerWindow
	}
	if o.ProbeCap == 0 {
		o.ProbeCap = DefaultProbeCap
	}
	if o.ProbeTimeout == 0 {
		o.ProbeTimeout = DefaultProbeTimeout
	}
	if o.VerifyCap == 0 {
		o.VerifyCap = DefaultVerifyCap
	}
	if o.VerifyTimeout == 0 {
		o.VerifyTimeout = DefaultVerifyTimeout
	}
	if o.Log == nil {
		o.Log = logrus.New()
		o.Log.SetLevel(logrus.WarnLevel)
	}
	return o
}

// Search runs the full pipeline and returns one deduplicated
// library per requested family, in request order.
func Search(opts Options) ([]Library, error) {
	opts = opts.withDefaults()
	if opts.BoardSize < 1 {
		return nil, puzzle.Error{
			Scope:     puzzle.ArgumentScope,
			Structure: puzzle.AttributeValueStructure,
			Attribute: puzzle.WidthAttribute,
			Condition: puzzle.TooSmallCondition,
			Values:    puzzle.ErrorData{opts.BoardSize, 1},
		}
	}
	var libs []Library
	for _, id := range opts.Families {
		fam := LookupFamily(id)
		lib := Library{
			BoardSize:      opts.BoardSize,
			StarsPerRow:    opts.StarsPerUnit,
			StarsPerColumn: opts.StarsPerUnit,
			FamilyID:       fam.ID(),
		}
		start := time.Now()
		for _, ws := range opts.WindowSizes {
			found := 0
			for _, win := range Placements(opts.BoardSize, ws.Width, ws.Height) {
				ps := searchWindow(fam, win, opts)
				found += len(ps)
				lib.Patterns = append(lib.Patterns, ps...)
			}
			opts.Log.WithFields(logrus.Fields{
				"family": fam.ID(),
				"window": ws,
				"found":  found,
			}).Debug("window size searched")
		}
		before := len(lib.Patterns)
		lib.Patterns = dedupe(fam.ID(), lib.Patterns)
		opts.Log.WithFields(logrus.Fields{
			"family":     fam.ID(),
			"discovered": before,
			"kept":       len(lib.Patterns),
			"elapsed":    time.Since(start).Round(time.Millisecond),
		}).Info("family search complete")
		libs = append(libs, lib)
	}
	return libs, nil
}

// searchWindow probes one window placement for one family,
// returning the accepted patterns (capped per placement).
func searchWindow(fam Family, win Window, opts Options) []Pattern {
	var accepted []Pattern
	for _, layout := range layoutsFor(fam, win) {
		board, err := BuildBoard(win, opts.BoardSize, opts.StarsPerUnit, layout)
		if err != nil {
			// builder errors mean the layout itself is broken for
			// this window; move on
			opts.Log.WithFields(logrus.Fields{
				"window": win,
				"error":  err,
			}).Debug("layout rejected")
			continue
		}
		var aux *Aux
		if !fam.Constructive() {
			ok, found := fam.Precondition(board, win)
			if !ok {
				continue
			}
			aux = found
		}
		for _, clues := range fam.Configurations(board, win, aux) {
			p, ok := verifyCandidate(board, win, clues, opts)
			if !ok {
				continue
			}
			accepted = append(accepted, p)
			if len(accepted) >= opts.MaxPerWindow {
				return accepted
			}
		}
	}
	return accepted
}

// verifyCandidate applies one clue placement, filters out
// unsolvable boards with a cheap probe, solves the survivors
// exhaustively, and turns any forced cells into a pattern.
func verifyCandidate(board *puzzle.Board, win Window, clues ClueSet, opts Options) (Pattern, bool) {
	applied, err := ApplyFixedClues(board, clues.Marked, clues.Unmarked)
	if err != nil {
		// generators must not emit out-of-window cells; an error
		// here is a family bug, not a search outcome
		opts.Log.WithFields(logrus.Fields{
			"window": win,
			"error":  err,
		}).Warn("clue placement rejected")
		return Pattern{}, false
	}
	probe := puzzle.Solve(applied, opts.ProbeCap, opts.ProbeTimeout)
	if probe.Completions == 0 {
		// unsatisfiable window: a normal, frequent outcome of the
		// region-quota approximation
		return Pattern{}, false
	}
	verified := puzzle.Solve(applied, opts.VerifyCap, opts.VerifyTimeout)
	if verified.Completions == 0 {
		return Pattern{}, false
	}
	deds := extractDeductions(verified, win, clues)
	if len(deds) == 0 {
		return Pattern{}, false
	}
	data := map[string]interface{}{
		"window_row":  win.Row,
		"window_col":  win.Col,
		"completions": verified.Completions,
	}
	for k, v := range clues.Note {
		data[k] = v
	}
	return newPattern(win, data, deds), true
}

// extractDeductions collects the cells the verified solve proved
// forced, excluding the clue cells themselves (they are inputs,
// not conclusions) and anything outside the window's bounds.
func extractDeductions(r puzzle.Result, win Window, clues ClueSet) []Deduction {
	given := make(map[int]bool, len(clues.Marked)+len(clues.Unmarked))
	for _, i := range clues.Marked {
		given[i] = true
	}
	for _, i := range clues.Unmarked {
		given[i] = true
	}
	var stars, empties []int
	for i, c := range r.Cells {
		if given[i] || i >= win.CellCount() {
			continue
		}
		switch c {
		case puzzle.AlwaysMarked:
			stars = append(stars, i)
		case puzzle.AlwaysUnmarked:
			empties = append(empties, i)
		}
	}
	var out []Deduction
	if len(stars) > 0 {
		sort.Ints(stars)
		out = append(out, Deduction{Type: ForceStar, RelativeCellIDs: stars})
	}
	if len(empties) > 0 {
		sort.Ints(empties)
		out = append(out, Deduction{Type: ForceEmpty, RelativeCellIDs: empties})
	}
	return out
}
