package stages

import (
	"regexp"

	"github.com/dlclark/regexp2"

	"github.com/opensbd/sentencesplit/core"
	"github.com/opensbd/sentencesplit/lang"
)

// BetweenPunctuation masks terminal punctuation that sits inside a quoted
// or bracketed span so that it isn't mistaken for a sentence boundary.
// Ported from original_source/pysbd/between_punctuation.py.
//
// Most patterns here are plain bracket-matching regexes with no lookaround
// across the matched span itself, so Go's stdlib regexp is used for those.
// The single-quote patterns carry a `(?<=\s)` lookbehind in the source (a
// quote must be preceded by whitespace to be treated as a quotation rather
// than a contraction apostrophe), which RE2 cannot express, so those use
// regexp2 instead.
type BetweenPunctuation struct {
	text    string
	profile *lang.Profile
}

func NewBetweenPunctuation(text string, profile *lang.Profile) *BetweenPunctuation {
	return &BetweenPunctuation{text: text, profile: profile}
}

var (
	betweenSingleQuotesRe       = regexp2.MustCompile(`(?<=\s)'(?:[^']|'[a-zA-Z])*'`, regexp2.None)
	betweenSingleQuoteSlantedRe = regexp2.MustCompile(`(?<=\s)\x{2018}(?:[^\x{2019}]|\x{2019}[a-zA-Z])*\x{2019}`, regexp2.None)
	betweenDoubleQuotesRe       = regexp.MustCompile(`"[^"\\]*"`)
	betweenQuoteArrowRe         = regexp.MustCompile(`\x{00ab}[^\x{00bb}\\]*\x{00bb}`)
	betweenQuoteSlantedRe       = regexp.MustCompile(`\x{201c}[^\x{201d}\\]*\x{201d}`)
	betweenSquareBracketsRe     = regexp.MustCompile(`\[[^\]\\]*\]`)
	betweenParensRe             = regexp.MustCompile(`\([^()\\]*\)`)
	wordWithLeadingApostropheRe = regexp2.MustCompile(`(?<=\s)'(?:[^']|'[a-zA-Z])*'\S`, regexp2.None)
	betweenEmDashesRe           = regexp.MustCompile(`--[^-]*--`)
	quoteSpaceRe                = regexp.MustCompile(`'\s`)
)

// Replace runs every quote/bracket masking pass in order, grounded on
// BetweenPunctuation.sub_punctuation_between_quotes_and_parens.
func (b *BetweenPunctuation) Replace() string {
	b.text = b.subBetweenSingleQuotes(b.text)
	b.text = b.subBetweenSingleQuoteSlanted(b.text)
	b.text = betweenDoubleQuotesRe.ReplaceAllStringFunc(b.text, func(m string) string { return replacePunctuation(m, false) })
	b.text = betweenSquareBracketsRe.ReplaceAllStringFunc(b.text, func(m string) string { return replacePunctuation(m, false) })
	b.text = betweenParensRe.ReplaceAllStringFunc(b.text, func(m string) string { return replacePunctuation(m, false) })
	b.text = betweenQuoteArrowRe.ReplaceAllStringFunc(b.text, func(m string) string { return replacePunctuation(m, false) })
	b.text = betweenEmDashesRe.ReplaceAllStringFunc(b.text, func(m string) string { return replacePunctuation(m, false) })
	b.text = betweenQuoteSlantedRe.ReplaceAllStringFunc(b.text, func(m string) string { return replacePunctuation(m, false) })
	for _, pair := range b.profile.BetweenPunctuationQuotes {
		b.text = b.subBetweenPair(b.text, pair.Left, pair.Right)
	}
	return b.text
}

func (b *BetweenPunctuation) subBetweenSingleQuotes(txt string) string {
	matched, _ := wordWithLeadingApostropheRe.MatchString(txt)
	if matched && !quoteSpaceRe.MatchString(txt) {
		return txt
	}
	return core.ReplaceMatchFunc(betweenSingleQuotesRe, txt, func(m string) string { return replacePunctuation(m, true) })
}

func (b *BetweenPunctuation) subBetweenSingleQuoteSlanted(txt string) string {
	return core.ReplaceMatchFunc(betweenSingleQuoteSlantedRe, txt, func(m string) string { return replacePunctuation(m, false) })
}

// subBetweenPair masks punctuation between a CJK quote pair (《》「」『』
// etc.), grounded on Chinese/Japanese's profile-specific quote handling —
// the retrieved source didn't carry a generic version of this, so the
// bracket-balancing shape mirrors betweenParensRe above.
func (b *BetweenPunctuation) subBetweenPair(txt, left, right string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(left) + `[^` + regexp.QuoteMeta(left) + regexp.QuoteMeta(right) + `]*` + regexp.QuoteMeta(right))
	return re.ReplaceAllStringFunc(txt, func(m string) string { return replacePunctuation(m, false) })
}
