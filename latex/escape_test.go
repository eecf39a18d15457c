package latex

import "testing"

func TestEscape(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{`\`, `\textbackslash{}`},
		{"{}%&_#$", `\{\}\%\&\_\#\$`},
		{"~^", `\textasciitilde{}\textasciicircum{}`},
		{`\{`, `\textbackslash{}\{`},
		{"snake_case 100%", `snake\_case 100\%`},
	}
	for _, tc := range cases {
		if got := Escape(tc.in); got != tc.want {
			t.Errorf("Escape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIndexEscape(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`say "hi"`, `say ""hi""`},
		{"a!b@c", `a"!b"@c`},
		{"#1", `"\#1`},
		{"^ x^y", `\textasciicircum{}\enspace x\textasciicircum{}y`},
		{"50%_{}&~", `50\%\_\{\}\&\textasciitilde{}`},
	}
	for _, tc := range cases {
		if got := IndexEscape(tc.in); got != tc.want {
			t.Errorf("IndexEscape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAccentEscape(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"if a < b { return }", "if a < b { return }"},
		{"café", `caf\'{e}`},
		{"ōç", `\={o}\c{c}`},
		{"Straße", `Stra{\ss}e`},
		{"“q” – a — b…", "``q'' -- a --- b..."},
		{"ǘ", `\'{\"{u}}`},
		{"日本", "日本"},
	}
	for _, tc := range cases {
		if got := AccentEscape(tc.in); got != tc.want {
			t.Errorf("AccentEscape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
