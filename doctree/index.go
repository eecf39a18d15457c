package doctree

import (
	"fmt"
	"regexp"
	"strings"
)

// IndexEntry is a single structured index registration.
type IndexEntry struct {
	Type   IndexEntryType
	Value  string
	Target string
	Main   bool
}

// Prefixes which are shorthands for pair entries, "module: os" is the same as
// "pair: module; os".
var pairIndexTypes = map[string]string{
	"module":    "module",
	"keyword":   "keyword",
	"operator":  "operator",
	"object":    "object",
	"exception": "exception",
	"statement": "statement",
	"builtin":   "built-in function",
}

// map iteration order is random, prefixes are checked in this order
var pairIndexOrder = []string{"module", "keyword", "operator", "object", "exception", "statement", "builtin"}

// ProcessIndexEntry converts single line of index directive argument into
// structured entries.
func ProcessIndexEntry(entry, target string) []IndexEntry {
	entry = strings.TrimSpace(entry)
	original := entry

	main := false
	if strings.HasPrefix(entry, "!") {
		main = true
		entry = strings.TrimLeft(entry[1:], " \t")
	}

	for _, prefix := range pairIndexOrder {
		if value, ok := strings.CutPrefix(entry, prefix+":"); ok {
			return []IndexEntry{{
				Type:   IndexEntryTypePair,
				Value:  pairIndexTypes[prefix] + "; " + strings.TrimSpace(value),
				Target: target,
				Main:   main,
			}}
		}
	}

	for _, name := range IndexEntryTypeNames() {
		if value, ok := strings.CutPrefix(entry, name+":"); ok {
			typ, _ := ParseIndexEntryType(name)
			if typ == IndexEntryTypeDouble {
				typ = IndexEntryTypePair
			}
			return []IndexEntry{{Type: typ, Value: strings.TrimSpace(value), Target: target, Main: main}}
		}
	}

	// shorthand notation for single entries
	var entries []IndexEntry
	for _, value := range strings.Split(original, ",") {
		value = strings.TrimSpace(value)
		main := false
		if strings.HasPrefix(value, "!") {
			main = true
			value = strings.TrimLeft(value[1:], " \t")
		}
		if len(value) == 0 {
			continue
		}
		entries = append(entries, IndexEntry{Type: IndexEntryTypeSingle, Value: value, Target: target, Main: main})
	}
	return entries
}

const quoted = `(?:'((?:[^'\\]|\\.)*)'|"((?:[^"\\]|\\.)*)")`

var reprTuple = regexp.MustCompile(`\(\s*` + quoted + `\s*,\s*` + quoted + `\s*,\s*` + quoted + `\s*,\s*` + quoted)

var reprUnescape = strings.NewReplacer(`\'`, `'`, `\"`, `"`, `\\`, `\`)

// ParseIndexEntries understands two forms of "entries" attribute value: Sphinx
// style python list of tuples as written by docutils XML writer and raw index
// directive arguments, one per line. Target is used for directive form only.
func ParseIndexEntries(value, target string) ([]IndexEntry, error) {
	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return nil, nil
	}

	if !strings.HasPrefix(value, "[") {
		var entries []IndexEntry
		for _, line := range strings.Split(value, "\n") {
			entries = append(entries, ProcessIndexEntry(line, target)...)
		}
		return entries, nil
	}

	if value == "[]" {
		return nil, nil
	}

	matches := reprTuple.FindAllStringSubmatch(value, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("unable to parse index entries %q", value)
	}

	entries := make([]IndexEntry, 0, len(matches))
	for _, m := range matches {
		// every quoted group has two alternatives
		field := func(i int) string {
			return reprUnescape.Replace(m[1+i*2] + m[2+i*2])
		}
		typ, err := ParseIndexEntryType(field(0))
		if err != nil {
			return nil, fmt.Errorf("bad index entry: %w", err)
		}
		if typ == IndexEntryTypeDouble {
			typ = IndexEntryTypePair
		}
		entries = append(entries, IndexEntry{
			Type:   typ,
			Value:  field(1),
			Target: field(2),
			Main:   field(3) == "main",
		})
	}
	return entries, nil
}
