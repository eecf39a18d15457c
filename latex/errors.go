package latex

import (
	"errors"
	"fmt"
	"strings"

	"doctex/doctree"
)

var (
	// ErrUnhandledKind means node has no handler and no mapping, we never
	// silently drop content.
	ErrUnhandledKind     = errors.New("unhandled node kind")
	ErrAncestorUnderflow = errors.New("ancestor context underflow")
	ErrSectionDepth      = errors.New("section nesting is deeper than configured section names")
	ErrAsset             = errors.New("unable to process image asset")
	ErrMalformedDocument = errors.New("malformed document")
)

// Error describes translation failure and the node it happened on.
type Error struct {
	Event string // "enter" or "exit"
	Kind  doctree.Kind
	Tag   string
	Path  string
	Line  int
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Event, e.Tag)
	if len(e.Path) > 0 {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}
