// Package doctree defines hierarchical document model consumed by the
// translators and reads it from docutils XML.
package doctree

import (
	"strings"
)

// Node is a single element of the document tree. Text nodes have Kind
// KindText, no children and carry character data in Text.
type Node struct {
	Kind     Kind
	Tag      string // original tag name, differs from Kind.String() for roles and unknown tags
	Attrs    map[string]string
	Text     string
	Children []*Node
	Entries  []IndexEntry // only for KindIndex
	Line     int          // 0 when unknown
}

// NewElement creates element node of the specified kind.
func NewElement(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Tag: kind.String(), Children: children}
}

// NewText creates text node.
func NewText(text string) *Node {
	return &Node{Kind: KindText, Tag: "#text", Text: text}
}

// WithAttr sets attribute and returns the node to allow chaining when
// building trees by hand.
func (n *Node) WithAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Append adds children to the node.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Attr returns attribute value and whether it was present.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

// AttrValue returns attribute value or def when attribute is absent.
func (n *Node) AttrValue(key, def string) string {
	if v, ok := n.Attrs[key]; ok {
		return v
	}
	return def
}

// Classes returns values of docutils "classes" attribute.
func (n *Node) Classes() []string {
	return strings.Fields(n.Attrs["classes"])
}

// HasClass reports whether node has a class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// AsText returns concatenated text of the node and all its descendants.
func (n *Node) AsText() string {
	if n.Kind == KindText {
		return n.Text
	}
	var b strings.Builder
	n.collectText(&b)
	return b.String()
}

func (n *Node) collectText(b *strings.Builder) {
	for _, c := range n.Children {
		if c.Kind == KindText {
			b.WriteString(c.Text)
			continue
		}
		c.collectText(b)
	}
}

// Name returns tag to use in diagnostics.
func (n *Node) Name() string {
	if len(n.Tag) > 0 {
		return n.Tag
	}
	return n.Kind.String()
}
