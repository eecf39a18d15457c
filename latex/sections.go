package latex

import (
	"fmt"

	"doctex/doctree"
)

// Section command is emitted on enter, opening brace comes from title.
func (r *run) enterSection(_ *doctree.Node) error {
	i := r.opts.SectionBase + r.level
	if i >= len(r.opts.Sections) {
		return fmt.Errorf("%w: level %d requires %d names, have %d", ErrSectionDepth, r.level, i+1, len(r.opts.Sections))
	}
	r.emit(`\` + r.opts.Sections[i])
	r.level++
	return nil
}

func (r *run) exitSection(_ *doctree.Node) error {
	r.level--
	return nil
}

// First title outside of any section belongs to the front matter and is
// not emitted unless every title is wrapped into \title.
func (r *run) enterTitle(_ *doctree.Node) error {
	inTable := r.ctx.under(doctree.KindTable)
	if r.opts.AddTitle && !inTable {
		r.emit(`\title{`)
	}
	switch {
	case r.ctx.under(doctree.KindAdmonition):
		r.emit("{")
	case inTable:
		// text goes to caption
	case !r.sawTitle && !r.ctx.under(doctree.KindSection):
		r.docTitle = true
	case r.level > 0:
		r.emit("{")
	}
	return nil
}

func (r *run) exitTitle(_ *doctree.Node) error {
	inTable := r.ctx.under(doctree.KindTable)
	if r.opts.AddTitle && !inTable {
		r.emit("}")
	}
	switch {
	case r.ctx.under(doctree.KindAdmonition):
		r.emit("}")
	case inTable:
	case r.docTitle:
		r.docTitle = false
	case r.level > 0:
		r.emit("}\n")
	}
	r.sawTitle = true
	return nil
}
