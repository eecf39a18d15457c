package latex

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"doctex/config"
	"doctex/doctree"
)

func testConfig() *config.TranslatorConfig {
	return &config.TranslatorConfig{
		Mapping:           config.MappingVariantMemoir,
		HeaderRule:        config.HeaderRuleHeadClose,
		SectionNames:      []string{"part", "chapter", "section", "subsection", "subsubsection", "paragraph", "subparagraph"},
		IgnoredRoles:      []string{"ref"},
		LongTableMarker:   "longtable:",
		RawFormat:         "latex",
		RawPreambleFormat: "latexpreamble",
		Images:            config.ImagesConfig{Copy: true, DefaultWidth: 0.95},
	}
}

func newTestTranslator(t *testing.T, tweak func(*config.TranslatorConfig)) *Translator {
	t.Helper()
	cfg := testConfig()
	if tweak != nil {
		tweak(cfg)
	}
	tr, err := New(NewOptions(cfg), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return tr
}

func el(kind doctree.Kind, children ...*doctree.Node) *doctree.Node {
	return doctree.NewElement(kind, children...)
}

func txt(s string) *doctree.Node {
	return doctree.NewText(s)
}

func para(s string) *doctree.Node {
	return el(doctree.KindParagraph, txt(s))
}

func title(s string) *doctree.Node {
	return el(doctree.KindTitle, txt(s))
}

func doc(children ...*doctree.Node) *doctree.Node {
	return el(doctree.KindDocument, children...)
}

func translate(t *testing.T, tr *Translator, root *doctree.Node) *Result {
	t.Helper()
	res, err := tr.Translate(root, "", "")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	return res
}

func TestSectionWithParagraph(t *testing.T) {
	tr := newTestTranslator(t, func(c *config.TranslatorConfig) { c.NoChapters = true })
	res := translate(t, tr, doc(el(doctree.KindSection, title("Intro"), para("Hello"))))

	want := `\section{Intro}` + "\nHello\n\n"
	if diff := cmp.Diff(want, res.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want+"\n"+`\end{document}`+"\n", res.Text); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestTitles(t *testing.T) {
	tree := func() *doctree.Node {
		return doc(
			title("Book"),
			el(doctree.KindSection, title("One"), para("x"),
				el(doctree.KindSection, title("Two"))),
		)
	}
	cases := []struct {
		name  string
		tweak func(*config.TranslatorConfig)
		want  string
	}{
		{
			name: "chapters",
			want: `\chapter{One}` + "\nx\n\n" + `\section{Two}` + "\n",
		},
		{
			name:  "no chapters",
			tweak: func(c *config.TranslatorConfig) { c.NoChapters = true },
			want:  `\section{One}` + "\nx\n\n" + `\subsection{Two}` + "\n",
		},
		{
			name:  "add title",
			tweak: func(c *config.TranslatorConfig) { c.AddTitle = true },
			want:  `\title{Book}\chapter\title{{One}}` + "\nx\n\n" + `\section\title{{Two}}` + "\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := translate(t, newTestTranslator(t, tc.tweak), tree())
			if diff := cmp.Diff(tc.want, res.Body); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdmonitionTitle(t *testing.T) {
	tr := newTestTranslator(t, nil)
	res := translate(t, tr, doc(el(doctree.KindAdmonition, title("Careful"), para("x"))))

	want := `\begin{framewithtitle}{Careful}x` + "\n\n" + `\end{framewithtitle}` + "\n"
	if diff := cmp.Diff(want, res.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionDepth(t *testing.T) {
	tr := newTestTranslator(t, func(c *config.TranslatorConfig) {
		c.NoChapters = true
		c.SectionNames = []string{"part", "chapter", "section"}
	})
	root := doc(el(doctree.KindSection, title("A"), el(doctree.KindSection, title("B"))))

	_, err := tr.Translate(root, "", "")
	if !errors.Is(err, ErrSectionDepth) {
		t.Fatalf("Translate() error = %v, want %v", err, ErrSectionDepth)
	}
	var te *Error
	if !errors.As(err, &te) {
		t.Fatalf("error %T is not *Error", err)
	}
	if te.Kind != doctree.KindSection || te.Event != "enter" || te.Path != "document/section[0]/section[0]" {
		t.Errorf("error = %+v", te)
	}
}

func TestUnhandledKind(t *testing.T) {
	tr := newTestTranslator(t, nil)
	unknown := &doctree.Node{Kind: doctree.KindUnknown, Tag: "mystery", Line: 7}
	root := doc(para("before"), el(doctree.KindBlockQuote, unknown))

	res, err := tr.Translate(root, "", "")
	if res != nil {
		t.Errorf("Translate() returned partial result")
	}
	if !errors.Is(err, ErrUnhandledKind) {
		t.Fatalf("Translate() error = %v, want %v", err, ErrUnhandledKind)
	}
	var te *Error
	if !errors.As(err, &te) {
		t.Fatalf("error %T is not *Error", err)
	}
	if te.Tag != "mystery" || te.Line != 7 || te.Path != "document/block_quote[0]/mystery[0]" {
		t.Errorf("error = %+v", te)
	}
	if !strings.Contains(err.Error(), "line 7") {
		t.Errorf("error message %q has no line", err.Error())
	}
}

func TestPassthroughKinds(t *testing.T) {
	tr := newTestTranslator(t, nil)
	role := &doctree.Node{Kind: doctree.KindRole, Tag: "ref", Children: []*doctree.Node{txt("a_b")}}
	root := doc(el(doctree.KindParagraph, role, txt(" "), el(doctree.KindTitleReference, txt("T"))))

	res := translate(t, tr, root)
	if diff := cmp.Diff(`a\_b T`+"\n\n", res.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestTextHandling(t *testing.T) {
	cases := []struct {
		name string
		node *doctree.Node
		want string
	}{
		{
			name: "escaped",
			node: para("50% & $5 {x}"),
			want: `50\% \& \$5 \{x\}` + "\n\n",
		},
		{
			name: "inline markup",
			node: el(doctree.KindParagraph, el(doctree.KindStrong, txt("b")), txt(" "), el(doctree.KindLiteral, txt("c_d"))),
			want: `\textbf{b} \texttt{c\_d}` + "\n\n",
		},
		{
			name: "literal block",
			node: el(doctree.KindLiteralBlock, txt("x = {é}")),
			want: `\needspace{1\baselineskip} % reserve at least 1 lines, if there is not enough` + "\n\n" +
				`\begin{lstlisting}[xleftmargin=0em]` + "\nx = {\\'{e}}\n" + `\end{lstlisting}` + "\n\n",
		},
		{
			name: "doctest block",
			node: el(doctree.KindDoctestBlock, txt(">>> a_b")),
			want: `\begin{lstlisting}[frame=none]` + "\n>>> a_b\n" + `\end{lstlisting}` + "\n\n",
		},
		{
			name: "comment",
			node: el(doctree.KindComment, txt("hidden")),
			want: "%\n",
		},
		{
			name: "tiny",
			node: el(doctree.KindInline, txt("small")).WithAttr("classes", "tiny"),
			want: `\tiny{small}\normalsize`,
		},
		{
			name: "latex span",
			node: el(doctree.KindInline, txt("$Φ(x)_1$")).WithAttr("classes", "latex"),
			want: `$\phi(x)_1$`,
		},
		{
			name: "external reference",
			node: el(doctree.KindReference, txt("link")).WithAttr("refuri", "http://x/a%20b#c"),
			want: `\href{http://x/a\%20b\#c}{link}`,
		},
		{
			name: "internal reference",
			node: el(doctree.KindReference, txt("here")).WithAttr("refid", "id1"),
			want: "here",
		},
		{
			name: "line block",
			node: el(doctree.KindLineBlock, el(doctree.KindLine, txt("a")), el(doctree.KindLine, txt("b"))),
			want: "a\\\\\nb\\\\\n",
		},
		{
			name: "label outside of footnote",
			node: el(doctree.KindLabel, txt("1")),
			want: "[1]",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := translate(t, newTestTranslator(t, nil), doc(tc.node))
			if diff := cmp.Diff(tc.want, res.Body); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNostarchMapping(t *testing.T) {
	tr := newTestTranslator(t, func(c *config.TranslatorConfig) { c.Mapping = config.MappingVariantNostarch })
	root := doc(el(doctree.KindParagraph, el(doctree.KindLiteral, txt("x"))), el(doctree.KindNote, para("n")))

	res := translate(t, tr, root)
	want := `\lstinline{x}` + "\n\n" + `\begin{note}n` + "\n\n\n" + `\end{note}` + "\n"
	if diff := cmp.Diff(want, res.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestFootnotes(t *testing.T) {
	tr := newTestTranslator(t, nil)
	root := doc(
		el(doctree.KindParagraph, txt("Text "), el(doctree.KindFootnoteReference, txt("1"))),
		el(doctree.KindFootnote, el(doctree.KindLabel, txt("1")), para("Note.")),
	)
	res := translate(t, tr, root)

	want := `Text\footnotemark[1]` + "\n\n" + `\footnotetext[1]{Note.` + "\n\n}"
	if diff := cmp.Diff(want, res.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestIndexEntries(t *testing.T) {
	tr := newTestTranslator(t, nil)
	index := el(doctree.KindIndex, para("ignored"))
	index.Entries = []doctree.IndexEntry{
		{Type: doctree.IndexEntryTypeSingle, Value: "foo!", Target: "index-0"},
		{Type: doctree.IndexEntryTypePair, Value: "alpha ; beta", Target: "index-0"},
		{Type: doctree.IndexEntryTypeSee, Value: "x@y", Target: "index-0"},
	}
	res := translate(t, tr, doc(index))

	want := `\index{foo"!}\index{alpha, beta}\index{beta, alpha}\index{x"@y}`
	if diff := cmp.Diff(want, res.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	if n := strings.Count(res.Body, `\index{`); n != 4 {
		t.Errorf("got %d registrations, want 4", n)
	}
}

func TestIndexParagraph(t *testing.T) {
	tr := newTestTranslator(t, nil)
	res := translate(t, tr, doc(el(doctree.KindIndex, para("key_1"))))

	want := `\index{key\_1@key\_1}`
	if diff := cmp.Diff(want, res.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestRaw(t *testing.T) {
	tr := newTestTranslator(t, nil)
	root := doc(
		el(doctree.KindRaw, txt(`\newpage`)).WithAttr("format", "latex"),
		el(doctree.KindRaw, txt(`\usepackage{x}`)).WithAttr("format", "latexpreamble"),
		el(doctree.KindRaw, txt("<hr/>")).WithAttr("format", "html"),
		para("after"),
	)
	res := translate(t, tr, root)

	wantBody := `\newpage` + "\n\nafter\n\n"
	if diff := cmp.Diff(wantBody, res.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	wantText := `\usepackage{x}` + "\n\n" + `\begin{document}` + "\n" + wantBody + "\n" + `\end{document}` + "\n"
	if diff := cmp.Diff(wantText, res.Text); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestUnsupportedRawSuppressesDescendants(t *testing.T) {
	tr := newTestTranslator(t, nil)
	raw := el(doctree.KindRaw, txt("a"), el(doctree.KindInline, txt("b"))).WithAttr("format", "html")
	res := translate(t, tr, doc(raw))
	if res.Body != "" {
		t.Errorf("body = %q, want empty", res.Body)
	}
}

func TestFragmentBalance(t *testing.T) {
	tr := newTestTranslator(t, nil)
	root := doc(
		title("Doc"),
		el(doctree.KindSection, title("S"),
			el(doctree.KindBulletList,
				el(doctree.KindListItem, para("one")),
				el(doctree.KindListItem, el(doctree.KindParagraph, el(doctree.KindEmphasis, txt("two"))))),
			el(doctree.KindEnumeratedList, el(doctree.KindListItem, para("1"))),
			el(doctree.KindBlockQuote, para("q"), el(doctree.KindAttribution, txt("me"))),
			el(doctree.KindDefinitionList,
				el(doctree.KindDefinitionListItem, el(doctree.KindTerm, txt("t")), el(doctree.KindDefinition, para("d")))),
			el(doctree.KindFieldList, el(doctree.KindField,
				el(doctree.KindFieldName, txt("n")), el(doctree.KindFieldBody, para("v")))),
			el(doctree.KindFigure, el(doctree.KindCaption, txt("c")), el(doctree.KindLegend, para("l"))),
			el(doctree.KindTarget),
		),
	)
	res := translate(t, tr, root)

	for _, env := range []string{"itemize", "enumerate", "quote", "description", "figure"} {
		open, closed := strings.Count(res.Body, `\begin{`+env+`}`), strings.Count(res.Body, `\end{`+env+`}`)
		if open != 1 || closed != 1 {
			t.Errorf("%s: %d opened, %d closed", env, open, closed)
		}
	}
	if strings.Count(res.Body, "{") != strings.Count(res.Body, "}") {
		t.Errorf("unbalanced braces in %q", res.Body)
	}
}

func TestNewValidatesOptions(t *testing.T) {
	cases := []struct {
		name  string
		tweak func(*Options)
	}{
		{"no sections", func(o *Options) { o.Sections = nil }},
		{"base out of range", func(o *Options) { o.SectionBase = 7 }},
		{"empty section name", func(o *Options) { o.Sections[3] = "" }},
		{"caption placeholder", func(o *Options) { o.Mapping.Table.Close = `\end{tabulary}` }},
		{"width", func(o *Options) { o.DefaultWidth = 1.5 }},
		{"svg width", func(o *Options) { o.SVGWidth = -1 }},
		{"marker", func(o *Options) { o.LongTableMarker = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := NewOptions(testConfig())
			tc.tweak(&opts)
			if _, err := New(opts, zaptest.NewLogger(t)); err == nil {
				t.Errorf("New() succeeded, want error")
			}
		})
	}
}

func TestTranslatorIsReusable(t *testing.T) {
	tr := newTestTranslator(t, nil)
	root := doc(title("Doc"), el(doctree.KindSection, title("A"), para("x")))

	first := translate(t, tr, root)
	second := translate(t, tr, root)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ (-first +second):\n%s", diff)
	}
}
