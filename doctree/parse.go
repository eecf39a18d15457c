package doctree

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// Reading docutils XML (as produced by rst2xml or "--writer=xml"). The reader
// does not interpret the document, it only maps elements to kinds and keeps
// everything else as is: deciding what to do with the node is translator
// business.

// Read parses docutils XML from r. Tags listed in roles (inline roles of
// cross-referencing extensions) become KindRole nodes.
func Read(r io.Reader, roles []string, log *zap.Logger) (*Node, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read XML: %w", err)
	}
	return Parse(doc, roles, log)
}

// ReadFile parses docutils XML file.
func ReadFile(path string, roles []string, log *zap.Logger) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := Read(f, roles, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Parse walks etree DOM and constructs document tree.
func Parse(doc *etree.Document, roles []string, log *zap.Logger) (*Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	if root.Tag != KindDocument.String() {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	p := &parser{roles: make(map[string]bool, len(roles)), log: log}
	for _, r := range roles {
		p.roles[r] = true
	}
	return p.element(root)
}

type parser struct {
	roles map[string]bool
	log   *zap.Logger
}

func (p *parser) kindOf(tag string) Kind {
	k, err := ParseKind(tag)
	if err == nil && k != KindUnknown && k != KindText && k != KindRole && !k.IsSynthetic() {
		return k
	}
	if p.roles[tag] {
		return KindRole
	}
	return KindUnknown
}

func (p *parser) element(el *etree.Element) (*Node, error) {
	tag := el.FullTag()
	n := &Node{Kind: p.kindOf(tag), Tag: tag}

	if n.Kind == KindUnknown {
		p.log.Debug("Unknown tag in document", zap.String("tag", tag))
	}

	if len(el.Attr) > 0 {
		n.Attrs = make(map[string]string, len(el.Attr))
		for _, a := range el.Attr {
			n.Attrs[a.FullKey()] = a.Value
		}
	}
	if v, ok := n.Attrs["line"]; ok {
		if line, err := strconv.Atoi(v); err == nil {
			n.Line = line
		}
	}

	if n.Kind == KindIndex {
		entries, err := ParseIndexEntries(n.Attrs["entries"], n.Attrs["target"])
		if err != nil {
			return nil, fmt.Errorf("index: %w", err)
		}
		n.Entries = entries
	}

	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			child, err := p.element(t)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", tag, err)
			}
			n.Children = append(n.Children, child)
		case *etree.CharData:
			if !n.Kind.IsTextual() && len(strings.TrimSpace(t.Data)) == 0 {
				// formatting whitespace between block elements
				continue
			}
			n.Children = append(n.Children, NewText(t.Data))
		}
	}
	return n, nil
}
