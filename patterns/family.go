package patterns

import (
	"fmt"

	"github.com/kristofer84/star-battle-patterns/puzzle"
)

/*

Schema families

A schema family is a named strategy: a precondition test that
inspects a board/window for the structural conditions the family
targets, and a configuration generator that proposes candidate
clue placements intended to realize the family's forcing
scenario.  Generators never assume their proposals keep the
board solvable; that is re-checked downstream by the pipeline.

Families are independent and registered by identifier.  The
registry resolves each identifier to its strategy once, at
lookup; there is no per-call string matching.

*/

// A ClueSet is one candidate clue placement: cells to force
// Marked, cells to force Unmarked, and a family-specific note
// describing the placement (it becomes part of the accepted
// pattern's data payload).
type ClueSet struct {
	Marked   []int
	Unmarked []int
	Note     map[string]interface{}
}

// Aux carries the qualifying structure found by a family's
// precondition test to its configuration generator.  Which
// fields are populated is family-specific.
type Aux struct {
	Groups     []*puzzle.Group // qualifying lines or regions
	BandStart  int             // first column of a qualifying band
	BandWidth  int             // column count of a qualifying band
	Candidates []int           // candidate cell indices in the band
}

// A Family is one schema family's behavior.  Constructive
// families don't require their precondition to hold on the bare
// window board; they synthesize it with the clues they generate,
// and the precondition is only meaningful on perturbed boards.
type Family interface {
	ID() string
	Constructive() bool
	Precondition(b *puzzle.Board, win Window) (bool, *Aux)
	Configurations(b *puzzle.Board, win Window, aux *Aux) []ClueSet
}

/*

The family registry

*/

// A FamilyDescriptor registers a family under one or more names.
// The first name is canonical.
type FamilyDescriptor struct {
	Names  []string
	Family Family
}

// The registry of known families.  A linear list is fine: there
// are a handful of families and registration happens at
// initialization time.
var knownFamilies []*FamilyDescriptor

// RegisterFamily tells the package about a new family.
func RegisterFamily(fd *FamilyDescriptor) error {
	if fd == nil || fd.Family == nil {
		return fmt.Errorf("can't register a nil family")
	}
	if len(fd.Names) == 0 || len(fd.Names[0]) == 0 {
		return fmt.Errorf("can't register a family with no name")
	}
	for _, n := range fd.Names {
		if prior, ok := lookupDescriptor(n); ok {
			return fmt.Errorf("family %q is already using name %q", prior.Names[0], n)
		}
	}
	knownFamilies = append(knownFamilies, fd)
	return nil
}

// lookupDescriptor finds a registered descriptor by exact name.
func lookupDescriptor(name string) (*FamilyDescriptor, bool) {
	for _, fd := range knownFamilies {
		for _, n := range fd.Names {
			if n == name {
				return fd, true
			}
		}
	}
	return nil, false
}

// LookupFamily resolves a family identifier.  Unregistered
// identifiers fall back to a permissive do-nothing family whose
// precondition is "any region exists" and whose generator
// produces no configurations.  That default is deliberate: an
// unknown id in a request should search nothing, not crash.
func LookupFamily(id string) Family {
	if fd, ok := lookupDescriptor(id); ok {
		return fd.Family
	}
	return fallbackFamily{id: id}
}

// KnownFamilyIDs returns the canonical names of all registered
// families, in registration order.
func KnownFamilyIDs() []string {
	out := make([]string, len(knownFamilies))
	for i, fd := range knownFamilies {
		out[i] = fd.Names[0]
	}
	return out
}

/*

The fallback family

*/

type fallbackFamily struct {
	id string
}

func (f fallbackFamily) ID() string         { return f.id }
func (f fallbackFamily) Constructive() bool { return false }

func (f fallbackFamily) Precondition(b *puzzle.Board, win Window) (bool, *Aux) {
	regions := b.Regions()
	if len(regions) == 0 {
		return false, nil
	}
	return true, &Aux{Groups: regions}
}

func (f fallbackFamily) Configurations(b *puzzle.Board, win Window, aux *Aux) []ClueSet {
	return nil
}
