package latex

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Replacer is single pass so output of one replacement is never looked at
// again.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`%`, `\%`,
	`&`, `\&`,
	`_`, `\_`,
	`#`, `\#`,
	`$`, `\$`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape makes ordinary text safe to be placed into LaTeX source.
func Escape(text string) string {
	return escaper.Replace(text)
}

// makeindex uses '"' as a quote character, '@' separates sort key from the
// entry and '!' separates levels. Earlier pairs win, so "^ " must precede "^".
var indexEscaper = strings.NewReplacer(
	`"`, `""`,
	`!`, `"!`,
	`@`, `"@`,
	`#`, `"\#`,
	`\`, `\textbackslash{}`,
	`%`, `\%`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`&`, `\&`,
	`^ `, `\textasciicircum{}\enspace `,
	`^`, `\textasciicircum{}`,
	`~`, `\textasciitilde{}`,
)

// IndexEscape prepares text to be used inside of \index{} argument.
func IndexEscape(text string) string {
	return indexEscaper.Replace(text)
}

var glyphs = map[rune]string{
	'ß':      `{\ss}`,
	'æ':      `{\ae}`,
	'Æ':      `{\AE}`,
	'œ':      `{\oe}`,
	'Œ':      `{\OE}`,
	'ø':      `{\o}`,
	'Ø':      `{\O}`,
	'ł':      `{\l}`,
	'Ł':      `{\L}`,
	'‘':      "`",
	'’':      "'",
	'“':      "``",
	'”':      "''",
	'–':      "--",
	'—':      "---",
	'…':      "...",
	'\u00a0': " ",
}

// combining marks produced by NFD
var accents = map[rune]string{
	'\u0300': "`",
	'\u0301': "'",
	'\u0302': "^",
	'\u0303': "~",
	'\u0304': "=",
	'\u0306': "u",
	'\u0307': ".",
	'\u0308': `"`,
	'\u030a': "r",
	'\u030b': "H",
	'\u030c': "v",
	'\u0327': "c",
	'\u0328': "k",
}

// AccentEscape converts non ASCII glyphs of code text into LaTeX sequences.
// No other escaping is done, code must stay visually verbatim.
func AccentEscape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		if g, ok := glyphs[r]; ok {
			b.WriteString(g)
			continue
		}
		if s, ok := decompose(r); ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// decompose turns accented latin letter into \'{e} form, nesting when there
// are several marks.
func decompose(r rune) (string, bool) {
	d := []rune(norm.NFD.String(string(r)))
	if len(d) < 2 || d[0] >= utf8.RuneSelf {
		return "", false
	}
	out := string(d[0])
	for _, m := range d[1:] {
		cmd, ok := accents[m]
		if !ok {
			return "", false
		}
		out = `\` + cmd + "{" + out + "}"
	}
	return out, true
}
