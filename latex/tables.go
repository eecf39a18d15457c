package latex

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"doctex/doctree"
)

type tableState struct {
	caption    strings.Builder
	titleDepth int // open titles when table was entered
	pair       Pair
	long       bool
	format     string // column specification override
	cols       int    // -1 when unknown
	col        int
}

// tableOverride switches next table to long table environment.
type tableOverride struct {
	format string
}

func (r *run) table() *tableState {
	if len(r.tables) == 0 {
		return nil
	}
	return r.tables[len(r.tables)-1]
}

// comment may carry long table marker with optional "format:" tail.
func (r *run) comment(text string) {
	rest, ok := strings.CutPrefix(text, r.opts.LongTableMarker)
	if !ok {
		return
	}
	o := &tableOverride{}
	if i := strings.LastIndex(rest, "format:"); i >= 0 {
		o.format = strings.TrimSpace(rest[i+len("format:"):])
	}
	r.pending = o
	r.log.Debug("Next table is long table", zap.String("format", o.format))
}

func (r *run) enterTable(_ *doctree.Node) error {
	ts := &tableState{pair: r.opts.Mapping.Table, cols: -1, titleDepth: r.ctx.depth(doctree.KindTitle)}
	if r.pending != nil {
		ts.pair, ts.long, ts.format = r.opts.Mapping.LongTable, true, r.pending.format
		r.pending = nil
	}
	// opening belongs to the enclosing stream
	r.emit(ts.pair.Open)
	r.tables = append(r.tables, ts)
	return nil
}

func (r *run) exitTable(_ *doctree.Node) error {
	ts := r.table()
	if ts == nil {
		return fmt.Errorf("%w: table was not opened", ErrMalformedDocument)
	}
	r.tables = r.tables[:len(r.tables)-1]

	var caption string
	if ts.caption.Len() > 0 {
		caption = `\caption{` + ts.caption.String() + `}`
	}
	r.emit(strings.Replace(ts.pair.Close, "%s", caption, 1))
	return nil
}

func (r *run) enterTgroup(n *doctree.Node) error {
	ts := r.table()
	if ts == nil {
		return fmt.Errorf("%w: column group outside of table", ErrMalformedDocument)
	}
	cols, err := strconv.Atoi(strings.TrimSpace(n.AttrValue("cols", "")))
	if err != nil || cols <= 0 {
		cols = 0
		for _, c := range n.Children {
			if c.Kind == doctree.KindColspec {
				cols++
			}
		}
		r.warn("Column group has no valid column count, counting column specifications",
			zap.String("cols", n.AttrValue("cols", "")), zap.Int("counted", cols))
		if cols == 0 {
			cols = -1
		}
	}
	ts.cols = cols

	switch {
	case len(ts.format) > 0:
		r.emit(ts.format + "\n")
		ts.format = ""
	case ts.long && cols < 2:
		r.emit(`{ p{.4\textwidth} }` + "\n")
	case ts.long:
		r.emit(`{ r` + strings.Repeat(" l", cols-2) + ` p{.4\textwidth} }` + "\n")
	default:
		r.emit(`{ R` + strings.Repeat(" L", max(cols-1, 0)) + ` }` + "\n")
	}
	return nil
}

func (r *run) enterRow(_ *doctree.Node) error {
	ts := r.table()
	if ts == nil {
		return fmt.Errorf("%w: row outside of table", ErrMalformedDocument)
	}
	ts.col = 0
	return nil
}

func (r *run) exitRow(_ *doctree.Node) error {
	r.emit(` \\` + "\n")
	return nil
}

func (r *run) enterEntry(_ *doctree.Node) error {
	if r.table() == nil {
		return fmt.Errorf("%w: cell outside of table", ErrMalformedDocument)
	}
	if r.ctx.under(doctree.KindThead) {
		r.emit(`\emph{`)
	}
	return nil
}

func (r *run) exitEntry(_ *doctree.Node) error {
	ts := r.table()
	if r.ctx.under(doctree.KindThead) {
		r.emit("}")
	}
	switch {
	case ts.cols < 0:
		r.warn("Table cell before column count is known, column separator skipped")
	case ts.col < ts.cols-1:
		r.emit(" & ")
	}
	ts.col++
	return nil
}
