package latex

import (
	"maps"

	"doctex/config"
	"doctex/doctree"
)

// Pair holds markup emitted when node is entered and exited. Empty side
// emits nothing.
type Pair struct {
	Open  string
	Close string
}

// Mapping is a set of fragments for nodes without stateful handling, plus
// table environments. Table closing templates carry single %s for the
// caption.
type Mapping struct {
	Tags      map[doctree.Kind]Pair
	Table     Pair
	LongTable Pair
	Classes   map[string]Pair // inline classes
}

func mdframed(title string) Pair {
	return Pair{
		Open:  `\begin{mdframed}[needspace=6.5em,frametitle={` + title + `},backgroundcolor=litegreen,linewidth=0pt]` + "\n",
		Close: "\n" + `\end{mdframed}` + "\n",
	}
}

func framed(title string) Pair {
	return Pair{
		Open:  `\begin{framewithtitle}{` + title + `}\noindent` + "\n",
		Close: "\n" + `\end{framewithtitle}` + "\n",
	}
}

func memoir() Mapping {
	return Mapping{
		Tags: map[doctree.Kind]Pair{
			doctree.KindDocument:   {},
			doctree.KindLiteral:    {`\texttt{`, `}`},
			doctree.KindStrong:     {`\textbf{`, `}`},
			doctree.KindEmphasis:   {`\emph{`, `}`},
			doctree.KindComment:    {`%`, "\n"},
			doctree.KindNote:       mdframed("Note"),
			doctree.KindTip:        mdframed("Tip"),
			doctree.KindWarning:    mdframed("Warning"),
			doctree.KindHint:       mdframed("Hint"),
			doctree.KindSidebar:    framed("Sidebar"),
			doctree.KindTopic:      framed("Topic"),
			doctree.KindAdmonition: {`\begin{framewithtitle}`, `\end{framewithtitle}` + "\n"},
			doctree.KindLiteralBlock: {
				`\needspace{1\baselineskip} % reserve at least 1 lines, if there is not enough` + "\n\n" + `\begin{lstlisting}[xleftmargin=0em]` + "\n",
				"\n" + `\end{lstlisting}` + "\n\n",
			},
			doctree.KindDoctestBlock:       {`\begin{lstlisting}[frame=none]` + "\n", "\n" + `\end{lstlisting}` + "\n\n"},
			doctree.KindColspec:            {},
			doctree.KindTbody:              {"", `\hline` + "\n"},
			doctree.KindThead:              {"", "\n" + `\hline` + "\n"},
			doctree.KindBlockQuote:         {`\begin{quote}` + "\n", "\n" + `\end{quote}` + "\n\n"},
			doctree.KindAttribution:        {`\sourceatright{`, `}`},
			doctree.KindFootnote:           {`\footnotetext`, `}`},
			doctree.KindTarget:             {},
			doctree.KindFieldList:          {},
			doctree.KindField:              {},
			doctree.KindFieldName:          {},
			doctree.KindFieldBody:          {},
			doctree.KindListItem:           {`  \item `, "\n"},
			doctree.KindEnumeratedList:     {`\begin{enumerate}` + "\n", `\end{enumerate}` + "\n\n"},
			doctree.KindBulletList:         {`\begin{itemize}` + "\n", `\end{itemize}` + "\n"},
			doctree.KindDefinitionList:     {`\begin{description}`, `\end{description}` + "\n"},
			doctree.KindDefinitionListItem: {},
			doctree.KindDefinition:         {},
			doctree.KindTerm:               {`\item[`, `] `},
			doctree.KindFigure:             {`\begin{figure}` + "\n", "\n" + `\end{figure}` + "\n\n"},
			doctree.KindCaption:            {`\caption{`, `}`},
			doctree.KindLegend:             {`\legend{`, `}`},
			doctree.KindSubscript:          {`\textsubscript{`, `}`},
			doctree.KindSuperscript:        {`\textsuperscript{`, `}`},
			doctree.KindLineBlock:          {},
			doctree.KindLine:               {"", `\\` + "\n"},
		},
		// H pins figure "here"
		Table: Pair{
			Open:  `\begin{figure}[H]\centering \tiny \begin{tabulary}{\textwidth}`,
			Close: `\end{tabulary}%s\end{figure}` + "\n",
		},
		// caption must be placed before end of longtable
		LongTable: Pair{
			Open:  `\begingroup \small \begin{longtable}`,
			Close: `%s\end{longtable}\endgroup` + "\n",
		},
		Classes: map[string]Pair{
			"tiny": {`\tiny{`, `}\normalsize`},
		},
	}
}

func nostarch() Mapping {
	m := memoir()
	note := Pair{`\begin{note}`, "\n" + `\end{note}` + "\n"}
	m.Tags[doctree.KindLiteral] = Pair{`\lstinline{`, `}`}
	m.Tags[doctree.KindNote] = note
	m.Tags[doctree.KindTip] = note
	m.Tags[doctree.KindHint] = note
	m.Tags[doctree.KindDoctestBlock] = Pair{`\begin{Code}` + "\n", "\n" + `\end{Code}` + "\n\n"}
	// no lines above and below code
	m.Tags[doctree.KindLiteralBlock] = Pair{`\begin{Code}[frame=none,framerule=0.25pt]` + "\n", "\n" + `\end{Code}` + "\n\n"}
	m.Table = Pair{
		Open:  `\begin{table}` + "\n" + `\tbfont` + "\n" + `\begin{tabulary}{\textwidth}`,
		Close: `\end{tabulary}%s\end{table}` + "\n",
	}
	return m
}

// MappingFor returns fresh copy of fragment set for the variant, callers are
// free to modify it.
func MappingFor(variant config.MappingVariant, rule config.HeaderRule) Mapping {
	var m Mapping
	switch variant {
	case config.MappingVariantNostarch:
		m = nostarch()
	default:
		m = memoir()
	}
	if rule == config.HeaderRuleBodyOpen {
		m.Tags[doctree.KindThead] = Pair{}
		m.Tags[doctree.KindTbody] = Pair{`\hline` + "\n", `\hline` + "\n"}
	}
	return m
}

// Clone returns deep copy of the mapping.
func (m Mapping) Clone() Mapping {
	m.Tags = maps.Clone(m.Tags)
	m.Classes = maps.Clone(m.Classes)
	return m
}
