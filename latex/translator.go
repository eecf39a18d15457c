// Package latex translates document tree into LaTeX markup.
package latex

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"doctex/config"
	"doctex/doctree"
)

// Options for translation, build them once and share between runs.
type Options struct {
	Mapping           Mapping
	Sections          []string // structural commands by nesting level
	SectionBase       int      // index of the top level section in Sections
	AddTitle          bool
	LongTableMarker   string
	RawFormat         string
	RawPreambleFormat string
	CopyImages        bool
	ConvertImages     bool    // copy PNG renditions of images pdflatex cannot include
	SVGWidth          int     // pixels, 0 keeps intrinsic size
	DefaultWidth      float64 // fraction of \textwidth
}

// NewOptions builds translator options from configuration.
func NewOptions(cfg *config.TranslatorConfig) Options {
	base := 1
	if cfg.NoChapters {
		base = 2
	}
	return Options{
		Mapping:           MappingFor(cfg.Mapping, cfg.HeaderRule),
		Sections:          slices.Clone(cfg.SectionNames),
		SectionBase:       base,
		AddTitle:          cfg.AddTitle,
		LongTableMarker:   cfg.LongTableMarker,
		RawFormat:         cfg.RawFormat,
		RawPreambleFormat: cfg.RawPreambleFormat,
		CopyImages:        cfg.Images.Copy,
		ConvertImages:     cfg.Images.Convert,
		SVGWidth:          cfg.Images.SVGWidth,
		DefaultWidth:      cfg.Images.DefaultWidth,
	}
}

// Translator converts document trees. It keeps no state between
// translations and could be used concurrently.
type Translator struct {
	opts Options
	log  *zap.Logger
}

// New validates options and returns translator.
func New(opts Options, log *zap.Logger) (*Translator, error) {
	if opts.SectionBase < 0 || opts.SectionBase >= len(opts.Sections) {
		return nil, fmt.Errorf("top section level %d is out of range of %d section names", opts.SectionBase, len(opts.Sections))
	}
	for i, name := range opts.Sections {
		if len(name) == 0 {
			return nil, fmt.Errorf("section name at level %d is empty", i)
		}
	}
	for name, p := range map[string]Pair{"table": opts.Mapping.Table, "long table": opts.Mapping.LongTable} {
		if strings.Count(p.Close, "%s") != 1 {
			return nil, fmt.Errorf("%s closing fragment must have single caption placeholder: %q", name, p.Close)
		}
	}
	if opts.Mapping.Tags == nil {
		return nil, errors.New("mapping has no tags")
	}
	if opts.DefaultWidth <= 0 || opts.DefaultWidth > 1 {
		return nil, fmt.Errorf("default image width %v is not a fraction of text width", opts.DefaultWidth)
	}
	if opts.SVGWidth < 0 {
		return nil, fmt.Errorf("svg width %d is negative", opts.SVGWidth)
	}
	if len(opts.LongTableMarker) == 0 {
		return nil, errors.New("long table marker is empty")
	}
	opts.Mapping = opts.Mapping.Clone()
	opts.Sections = slices.Clone(opts.Sections)
	return &Translator{opts: opts, log: log}, nil
}

// Result of a single translation.
type Result struct {
	Text   string // complete document
	Body   string // body only, without preamble and closing fragment
	Assets []Asset
}

// Translate walks the tree once. Source and destination are paths of the
// source and output documents, relative image references are resolved
// against their directories.
func (t *Translator) Translate(root *doctree.Node, src, dst string) (*Result, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: empty tree", ErrMalformedDocument)
	}
	r := &run{
		opts: &t.opts,
		log:  t.log,
		doc:  newDocument(),
		ctx:  newAncestors(),
		src:  src,
		dst:  dst,
	}
	if err := r.walk(root, root.Name()); err != nil {
		return nil, err
	}
	if open := r.ctx.unbalanced(); len(open) > 0 {
		return nil, fmt.Errorf("%w: %v still open", ErrAncestorUnderflow, open)
	}
	return &Result{Text: r.doc.String(), Body: r.doc.Body(), Assets: r.doc.Assets()}, nil
}

// run is the state of a single traversal.
type run struct {
	opts *Options
	log  *zap.Logger
	doc  *Document
	ctx  ancestors

	src, dst string

	level    int  // current section depth
	sawTitle bool // first title was seen
	docTitle bool // inside of the document title

	tables  []*tableState
	pending *tableOverride // installed by comment, consumed by next table

	warned map[string]bool
}

type handler struct {
	enter, exit func(*run, *doctree.Node) error
}

// errSkipChildren is returned by enter handlers which consumed node
// content, exit is still called.
var errSkipChildren = errors.New("skip children")

var handlers = map[doctree.Kind]handler{
	doctree.KindText:              {enter: (*run).text},
	doctree.KindSection:           {(*run).enterSection, (*run).exitSection},
	doctree.KindTitle:             {(*run).enterTitle, (*run).exitTitle},
	doctree.KindTable:             {(*run).enterTable, (*run).exitTable},
	doctree.KindTgroup:            {enter: (*run).enterTgroup},
	doctree.KindRow:               {(*run).enterRow, (*run).exitRow},
	doctree.KindEntry:             {(*run).enterEntry, (*run).exitEntry},
	doctree.KindLabel:             {(*run).enterLabel, (*run).exitLabel},
	doctree.KindFootnoteReference: {(*run).enterFootnoteReference, (*run).exitFootnoteReference},
	doctree.KindIndex:             {enter: (*run).enterIndex},
	doctree.KindParagraph:         {(*run).enterParagraph, (*run).exitParagraph},
	doctree.KindInline:            {(*run).enterInline, (*run).exitInline},
	doctree.KindRaw:               {(*run).enterRaw, (*run).exitRaw},
	doctree.KindReference:         {(*run).enterReference, (*run).exitReference},
	doctree.KindImage:             {(*run).enterImage, (*run).exitImage},
}

// passthrough kinds emit nothing themselves, their content is translated
// as usual.
var passthrough = map[doctree.Kind]bool{
	doctree.KindRole:           true,
	doctree.KindTitleReference: true,
	doctree.KindSeealso:        true,
}

func (r *run) walk(n *doctree.Node, path string) error {
	err := r.visit(n)
	if err != nil && !errors.Is(err, errSkipChildren) {
		return r.fail("enter", n, path, err)
	}
	if err == nil {
		seen := make(map[string]int)
		for _, c := range n.Children {
			name := c.Name()
			p := path + "/" + name + "[" + strconv.Itoa(seen[name]) + "]"
			seen[name]++
			if err := r.walk(c, p); err != nil {
				return err
			}
		}
	}
	if err := r.depart(n); err != nil {
		return r.fail("exit", n, path, err)
	}
	return nil
}

func (r *run) visit(n *doctree.Node) error {
	r.ctx.enter(n.Kind)
	if h, ok := handlers[n.Kind]; ok {
		if h.enter == nil {
			return nil
		}
		return h.enter(r, n)
	}
	if p, ok := r.opts.Mapping.Tags[n.Kind]; ok {
		r.mapped(p.Open)
		return nil
	}
	if passthrough[n.Kind] {
		return nil
	}
	return ErrUnhandledKind
}

func (r *run) depart(n *doctree.Node) error {
	if err := r.ctx.exit(n.Kind); err != nil {
		return err
	}
	if h, ok := handlers[n.Kind]; ok {
		if h.exit == nil {
			return nil
		}
		return h.exit(r, n)
	}
	if p, ok := r.opts.Mapping.Tags[n.Kind]; ok {
		r.mapped(p.Close)
		return nil
	}
	if passthrough[n.Kind] {
		return nil
	}
	return ErrUnhandledKind
}

// mapped emits fragment from mapping table.
func (r *run) mapped(text string) {
	r.emit(text)
}

// captionOf returns table collecting output as its caption: the innermost
// table whose own title is open.
func (r *run) captionOf() *tableState {
	depth := r.ctx.depth(doctree.KindTitle)
	for i := len(r.tables) - 1; i >= 0; i-- {
		if depth > r.tables[i].titleDepth {
			return r.tables[i]
		}
	}
	return nil
}

// emit is the only way handlers put markup into the body, inside of table
// title it goes into the caption.
func (r *run) emit(text string) {
	if len(text) == 0 {
		return
	}
	if ts := r.captionOf(); ts != nil {
		ts.caption.WriteString(text)
		return
	}
	r.doc.Raw(text)
}

// emitText is emit for ordinary text which has to be escaped.
func (r *run) emitText(text string) {
	if ts := r.captionOf(); ts != nil {
		ts.caption.WriteString(Escape(text))
		return
	}
	r.doc.Text(text)
}

// trimSpace drops single trailing space of the current output stream.
func (r *run) trimSpace() {
	ts := r.captionOf()
	if ts == nil {
		r.doc.TrimSpace()
		return
	}
	if s := ts.caption.String(); strings.HasSuffix(s, " ") {
		ts.caption.Reset()
		ts.caption.WriteString(s[:len(s)-1])
	}
}

func (r *run) fail(event string, n *doctree.Node, path string, err error) error {
	var te *Error
	if errors.As(err, &te) {
		return err
	}
	return &Error{Event: event, Kind: n.Kind, Tag: n.Name(), Path: path, Line: n.Line, Err: err}
}

// warn logs degradation once per message.
func (r *run) warn(msg string, fields ...zap.Field) {
	if r.warned == nil {
		r.warned = make(map[string]bool)
	}
	if r.warned[msg] {
		r.log.Debug(msg, fields...)
		return
	}
	r.warned[msg] = true
	r.log.Warn(msg, fields...)
}
