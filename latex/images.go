package latex

import (
	"fmt"
	"strconv"
	"strings"

	"doctex/doctree"
)

const keepAspect = `,height=0.9\textheight,keepaspectratio]`

func (r *run) enterImage(n *doctree.Node) error {
	ref, ok := n.Attr("uri")
	if !ok || len(strings.TrimSpace(ref)) == 0 {
		return fmt.Errorf("%w: image without uri", ErrMalformedDocument)
	}
	sizing, err := r.sizing(n)
	if err != nil {
		return err
	}
	target, err := r.registerAsset(ref)
	if err != nil {
		return err
	}
	r.emit(`\noindent\makebox[\textwidth]{%` + "\n")
	r.emit(`\includegraphics` + sizing + "{" + target + "}")
	return nil
}

// Paragraphs following the image must not start inline.
func (r *run) exitImage(_ *doctree.Node) error {
	r.emit("}\n\n")
	return nil
}

// sizing returns optional argument of \includegraphics. Scale wins over
// width.
func (r *run) sizing(n *doctree.Node) (string, error) {
	if s, ok := n.Attr("scale"); ok {
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
		if err != nil || v <= 0 {
			return "", fmt.Errorf("%w: bad image scale %q", ErrMalformedDocument, s)
		}
		return "[scale=" + formatFactor(v/100) + "]", nil
	}

	width := strconv.FormatFloat(r.opts.DefaultWidth, 'f', -1, 64)
	if w, ok := n.Attr("width"); ok {
		w = strings.TrimSpace(w)
		if p, percent := strings.CutSuffix(w, "%"); percent {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return "", fmt.Errorf("%w: bad image width %q", ErrMalformedDocument, w)
			}
			width = strconv.FormatFloat(v/100, 'g', 2, 64)
		} else if v, err := strconv.ParseFloat(w, 64); err == nil {
			width = strconv.FormatFloat(v, 'f', -1, 64)
		} else {
			// absolute length, passed as is
			return "[width=" + w + keepAspect, nil
		}
	}
	return "[width=" + width + `\textwidth` + keepAspect, nil
}

// formatFactor always keeps decimal point: 0.5, 1.0, 2.5.
func formatFactor(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
