package doctree

// Kind of the document node, names follow docutils node tag names. Anything
// reader does not know becomes unknown. Last two are never produced by the
// reader, translators use them to mark scopes.
// ENUM(unknown, document, section, title, paragraph, text, comment, raw, literal, strong, emphasis, subscript, superscript, note, tip, hint, warning, admonition, sidebar, topic, literal_block, doctest_block, block_quote, attribution, table, tgroup, colspec, thead, tbody, row, entry, footnote, footnote_reference, label, target, field_list, field, field_name, field_body, bullet_list, enumerated_list, list_item, definition_list, definition_list_item, term, definition, figure, caption, legend, image, line_block, line, reference, title_reference, inline, index, role, seealso, latex_span, unsupported)
type Kind int

// Type of the index entry as produced by index directive.
// ENUM(single, pair, double, triple, see, seealso)
type IndexEntryType int

// textual kinds may directly hold character data, whitespace in them is
// significant.
var textual = map[Kind]bool{
	KindTitle:             true,
	KindParagraph:         true,
	KindComment:           true,
	KindRaw:               true,
	KindLiteral:           true,
	KindStrong:            true,
	KindEmphasis:          true,
	KindSubscript:         true,
	KindSuperscript:       true,
	KindLiteralBlock:      true,
	KindDoctestBlock:      true,
	KindAttribution:       true,
	KindFootnoteReference: true,
	KindLabel:             true,
	KindFieldName:         true,
	KindTerm:              true,
	KindCaption:           true,
	KindLine:              true,
	KindReference:         true,
	KindTitleReference:    true,
	KindInline:            true,
	KindRole:              true,
}

// IsTextual reports whether nodes of this kind keep whitespace-only
// character data.
func (x Kind) IsTextual() bool {
	return textual[x]
}

// IsSynthetic reports whether kind only exists to mark translator scopes.
func (x Kind) IsSynthetic() bool {
	return x == KindLatexSpan || x == KindUnsupported
}
