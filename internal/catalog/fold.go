package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks and recomposes, so
// "café" folds to "cafe".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldText(s string, opts SearchOptions) string {
	if !opts.KeepAccents {
		if folded, _, err := transform.String(stripMarks, s); err == nil {
			s = folded
		}
	}
	if !opts.MatchCase {
		s = strings.ToLower(s)
	}
	return s
}
