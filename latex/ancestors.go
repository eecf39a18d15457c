package latex

import (
	"fmt"

	"doctex/doctree"
)

// ancestors counts currently open nodes of every kind. Reentrant kinds (table
// in the caption of another table) simply have count above one.
type ancestors struct {
	open map[doctree.Kind]int
}

func newAncestors() ancestors {
	return ancestors{open: make(map[doctree.Kind]int)}
}

func (a *ancestors) enter(kind doctree.Kind) {
	a.open[kind]++
}

func (a *ancestors) exit(kind doctree.Kind) error {
	if a.open[kind] <= 0 {
		return fmt.Errorf("%w: %s", ErrAncestorUnderflow, kind)
	}
	a.open[kind]--
	return nil
}

// under reports whether we are at or under node of the kind.
func (a *ancestors) under(kind doctree.Kind) bool {
	return a.open[kind] > 0
}

func (a *ancestors) underAny(kinds ...doctree.Kind) bool {
	for _, k := range kinds {
		if a.open[k] > 0 {
			return true
		}
	}
	return false
}

// depth returns number of currently open nodes of the kind.
func (a *ancestors) depth(kind doctree.Kind) int {
	return a.open[kind]
}

// unbalanced returns kinds which are still open.
func (a *ancestors) unbalanced() []doctree.Kind {
	var kinds []doctree.Kind
	for k, v := range a.open {
		if v != 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
