package latex

import (
	"path"
	"strings"
)

// Fragment is a piece of emitted text.
type Fragment struct {
	Text   string
	Escape bool // text must be escaped when document is serialized
}

func (f Fragment) String() string {
	if f.Escape {
		return Escape(f.Text)
	}
	return f.Text
}

// Asset is an external file referenced by the document.
type Asset struct {
	Ref         string // reference as it appears in the document
	Source      string // resolved against source document location
	Destination string // resolved against output document location
	Copied      bool
	Converted   string // PNG rendition written instead of the copy
}

// Target returns reference to be used in the output.
func (a *Asset) Target() string {
	if len(a.Converted) == 0 {
		return a.Ref
	}
	return strings.TrimSuffix(a.Ref, path.Ext(a.Ref)) + ".png"
}

// Document accumulates output of a single translation run.
type Document struct {
	body     []Fragment
	preamble []Fragment
	assets   []Asset
	seen     map[string]int // asset source -> index in assets
}

func newDocument() *Document {
	return &Document{seen: make(map[string]int)}
}

// Raw appends verbatim text to the body.
func (d *Document) Raw(text string) {
	if len(text) == 0 {
		return
	}
	d.body = append(d.body, Fragment{Text: text})
}

// Text appends text which will be escaped.
func (d *Document) Text(text string) {
	if len(text) == 0 {
		return
	}
	d.body = append(d.body, Fragment{Text: text, Escape: true})
}

// Preamble appends verbatim text to the preamble.
func (d *Document) Preamble(text string) {
	if len(text) == 0 {
		return
	}
	d.preamble = append(d.preamble, Fragment{Text: text})
}

// TrimSpace removes single trailing space from already emitted body, if
// there is one.
func (d *Document) TrimSpace() bool {
	for i := len(d.body) - 1; i >= 0; i-- {
		if len(d.body[i].Text) == 0 {
			continue
		}
		t, ok := strings.CutSuffix(d.body[i].Text, " ")
		if !ok {
			return false
		}
		d.body[i].Text = t
		return true
	}
	return false
}

// AddAsset registers asset, returns false when asset with the same
// source was already registered.
func (d *Document) AddAsset(a Asset) bool {
	if _, ok := d.seen[a.Source]; ok {
		return false
	}
	d.seen[a.Source] = len(d.assets)
	d.assets = append(d.assets, a)
	return true
}

func (d *Document) asset(source string) *Asset {
	if i, ok := d.seen[source]; ok {
		return &d.assets[i]
	}
	return nil
}

// Assets returns registered assets in the order they were first seen.
func (d *Document) Assets() []Asset {
	return append([]Asset(nil), d.assets...)
}

// Body returns serialized body without preamble and closing fragment.
func (d *Document) Body() string {
	return join(d.body)
}

// String serializes the whole document.
func (d *Document) String() string {
	var b strings.Builder
	if len(d.preamble) > 0 {
		b.WriteString(join(d.preamble))
		b.WriteString(`\begin{document}` + "\n")
	}
	b.WriteString(join(d.body))
	b.WriteString("\n" + `\end{document}` + "\n")
	return b.String()
}

func join(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.String())
	}
	return b.String()
}
