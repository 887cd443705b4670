// Package stages implements the text-rewriting passes a Processor runs in
// fixed order before the final sentence-boundary regex: list-item marking,
// abbreviation masking, between-punctuation masking, and exclamation-word
// masking.
package stages

import "strings"

// punctSubs is the literal old->new table every masked-punctuation match
// goes through, grounded on original_source/pysbd/punctuation_replacer.py's
// _PUNCT_SUBS. A plain string.Replace pass is used instead of a regex
// substitution because the matched text itself may contain regex
// metacharacters.
var punctSubs = [][2]string{
	{".", "⨯"},
	{"。", "&ᓰ&"},
	{"．", "&ᓱ&"},
	{"！", "&ᓳ&"},
	{"!", "&ᓴ&"},
	{"?", "&ᓷ&"},
	{"？", "&ᓸ&"},
}

var escapePairs = [][2]string{
	{"(", `\(`},
	{")", `\)`},
	{"[", `\[`},
	{"]", `\]`},
	{"-", `\-`},
}

func needsEscape(text string) bool {
	for _, pair := range escapePairs {
		if strings.Contains(text, pair[0]) {
			return true
		}
	}
	return false
}

// replacePunctuation masks every terminal-punctuation character found in
// match with its sentinel form, grounded on punctuation_replacer.py's
// replace_punctuation. keepApostrophe is true for the "single quote" match
// type, where an interior apostrophe is part of the protected span's own
// delimiter and must not be masked.
func replacePunctuation(match string, keepApostrophe bool) string {
	text := match
	escape := needsEscape(text)
	if escape {
		for _, pair := range escapePairs {
			text = strings.ReplaceAll(text, pair[0], pair[1])
		}
	}
	for _, pair := range punctSubs {
		text = strings.ReplaceAll(text, pair[0], pair[1])
	}
	if !keepApostrophe {
		text = strings.ReplaceAll(text, "'", "&⎋&")
	}
	if escape {
		for _, pair := range escapePairs {
			text = strings.ReplaceAll(text, pair[1], pair[0])
		}
	}
	return text
}
