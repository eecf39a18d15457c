package latex

import (
	"slices"
	"strings"

	"doctex/doctree"
)

func (r *run) enterLabel(_ *doctree.Node) error {
	r.emit("[")
	return nil
}

// Inside of the footnote label opens its body.
func (r *run) exitLabel(_ *doctree.Node) error {
	if r.ctx.under(doctree.KindFootnote) {
		r.emit("]{")
	} else {
		r.emit("]")
	}
	return nil
}

// Source grammar requires space before footnote reference, it is dropped.
func (r *run) enterFootnoteReference(_ *doctree.Node) error {
	r.trimSpace()
	r.emit(`\footnotemark[`)
	return nil
}

func (r *run) exitFootnoteReference(_ *doctree.Node) error {
	r.emit("]")
	return nil
}

// Index with entries registers them and its content is not translated.
// Without entries registration is driven by enclosed paragraphs.
func (r *run) enterIndex(n *doctree.Node) error {
	if len(n.Entries) == 0 {
		return nil
	}
	for _, e := range n.Entries {
		if e.Type != doctree.IndexEntryTypePair {
			r.addIndex(e.Value)
			continue
		}
		parts := strings.Split(e.Value, ";")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		r.addIndex(strings.Join(parts, ", "))
		slices.Reverse(parts)
		r.addIndex(strings.Join(parts, ", "))
	}
	return errSkipChildren
}

func (r *run) addIndex(value string) {
	r.emit(`\index{` + IndexEscape(value) + `}`)
}

// Paragraph inside of index becomes index entry, its text is sort key.
func (r *run) enterParagraph(n *doctree.Node) error {
	if r.ctx.under(doctree.KindIndex) {
		r.emit(`\index{` + IndexEscape(n.AsText()) + "@")
	}
	return nil
}

func (r *run) exitParagraph(_ *doctree.Node) error {
	if !r.ctx.underAny(doctree.KindEntry, doctree.KindIndex) {
		r.emit("\n\n")
	}
	if r.ctx.under(doctree.KindIndex) {
		r.emit("}")
	}
	return nil
}
