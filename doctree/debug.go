package doctree

import (
	"doctex/utils/debug"
)

// String returns readable dump of the tree. It exists solely for manual
// inspection and debug reports.
func (n *Node) String() string {
	if n == nil {
		return "<nil Node>"
	}
	tw := debug.NewTreeWriter()
	n.dump(tw, 0)
	return tw.String()
}

func (n *Node) dump(tw *debug.TreeWriter, depth int) {
	if n.Kind == KindText {
		tw.TextBlock(depth, "#text", n.Text)
		return
	}
	if n.Tag != n.Kind.String() {
		tw.Line(depth, "%s (%s)", n.Kind, n.Tag)
	} else {
		tw.Line(depth, "%s", n.Kind)
	}
	tw.Attrs(depth+1, n.Attrs)
	for _, e := range n.Entries {
		tw.Line(depth+1, "entry type=%s value=%q target=%q main=%t", e.Type, e.Value, e.Target, e.Main)
	}
	for _, c := range n.Children {
		c.dump(tw, depth+1)
	}
}
