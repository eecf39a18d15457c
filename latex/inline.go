package latex

import (
	"slices"
	"strings"

	"doctex/doctree"
)

const latexClass = "latex"

var uriEscaper = strings.NewReplacer(`%`, `\%`, `#`, `\#`)

// text is the single place where character data gets into output.
func (r *run) text(n *doctree.Node) error {
	switch {
	case r.ctx.underAny(doctree.KindRaw, doctree.KindUnsupported):
		// raw content is emitted by its node or dropped
	case r.ctx.under(doctree.KindIndex):
		r.emit(IndexEscape(n.Text))
	case r.ctx.under(doctree.KindComment):
		r.comment(n.Text)
	case r.ctx.underAny(doctree.KindLiteralBlock, doctree.KindDoctestBlock):
		r.emit(AccentEscape(n.Text))
	case r.docTitle && !r.opts.AddTitle:
	case r.ctx.under(doctree.KindLatexSpan):
		r.emit(strings.ReplaceAll(n.Text, "Φ(x)", `\phi(x)`))
	default:
		r.emitText(n.Text)
	}
	return nil
}

func (r *run) enterInline(n *doctree.Node) error {
	for _, c := range n.Classes() {
		if p, ok := r.opts.Mapping.Classes[c]; ok {
			r.emit(p.Open)
		}
		if c == latexClass {
			r.ctx.enter(doctree.KindLatexSpan)
		}
	}
	return nil
}

func (r *run) exitInline(n *doctree.Node) error {
	classes := n.Classes()
	slices.Reverse(classes)
	for _, c := range classes {
		if c == latexClass {
			if err := r.ctx.exit(doctree.KindLatexSpan); err != nil {
				return err
			}
		}
		if p, ok := r.opts.Mapping.Classes[c]; ok {
			r.emit(p.Close)
		}
	}
	return nil
}

// rawTarget returns where raw node content goes: body, preamble or
// nowhere.
func (r *run) rawTarget(n *doctree.Node) (body, preamble bool) {
	formats := strings.Fields(n.AttrValue("format", ""))
	if slices.Contains(formats, r.opts.RawFormat) {
		return true, false
	}
	return false, slices.Contains(formats, r.opts.RawPreambleFormat)
}

func (r *run) enterRaw(n *doctree.Node) error {
	switch body, preamble := r.rawTarget(n); {
	case body:
		r.emit(n.AsText())
		r.emit("\n\n")
	case preamble:
		r.doc.Preamble(n.AsText())
		r.doc.Preamble("\n\n")
	default:
		r.ctx.enter(doctree.KindUnsupported)
	}
	return nil
}

func (r *run) exitRaw(n *doctree.Node) error {
	if body, preamble := r.rawTarget(n); !body && !preamble {
		return r.ctx.exit(doctree.KindUnsupported)
	}
	return nil
}

// Only external references are wrapped, internal ones keep just text.
func (r *run) enterReference(n *doctree.Node) error {
	if uri, ok := n.Attr("refuri"); ok {
		r.emit(`\href{` + uriEscaper.Replace(uri) + `}{`)
	}
	return nil
}

func (r *run) exitReference(n *doctree.Node) error {
	if _, ok := n.Attr("refuri"); ok {
		r.emit("}")
	}
	return nil
}
