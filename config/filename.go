package config

import "strings"

// texSpecials make file name unusable in \input and \includegraphics.
const texSpecials = `%#&{}~$^\`

// CleanFileName makes file name acceptable for the file system and for
// LaTeX references. Characters reserved by the platform are removed, TeX
// special characters become underscores, leading dots are dropped.
func CleanFileName(in string) string {
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		switch {
		case sym == 0 || strings.ContainsRune(reservedChars, sym):
			return -1
		case strings.ContainsRune(texSpecials, sym):
			return '_'
		}
		return sym
	}, in), ".")
	if len(out) == 0 {
		out = "_bad_file_name_"
	}
	return out
}
