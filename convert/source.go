package convert

import (
	"path/filepath"
	"strings"

	"doctex/config"
	"doctex/doctree"
)

// Source is a parsed document ready for translation.
type Source struct {
	Tree    *doctree.Node
	SrcName string // path relative to the processed source, including file name
	Path    string // absolute path of the source file
	Variant config.MappingVariant
}

// Title returns text of the document title, empty when document has none.
func (s *Source) Title() string {
	if s.Tree == nil {
		return ""
	}
	for _, c := range s.Tree.Children {
		if c.Kind == doctree.KindTitle {
			return strings.TrimSpace(c.AsText())
		}
	}
	return ""
}

// isDocumentFile reports whether file looks like docutils XML by its name.
func isDocumentFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xml")
}

func isArchiveFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zip")
}
