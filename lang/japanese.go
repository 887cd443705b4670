package lang

import "github.com/opensbd/sentencesplit/core"

// Japanese, grounded on original_source/sentencesplit/lang/japanese.py:
// the same CJK boundary treatment as Chinese, its own quote-pair set
// (（）「」『』), a wider CJK abbreviation-period lookahead including
// hiragana/katakana, and a Cleaner override that rejoins a newline
// inserted mid-word between two CJK characters.
func newJapanese() *Profile {
	p := newLatinProfile("ja")
	p.Punctuations = []string{"。", "．", "！", "!", "？", "?"}
	p.Regexes = NewCommonRegexesWithQuotation(CJKSentenceBoundaryPattern, CJKQuotationAtEndOfSentencePattern, CJKSplitSpaceQuotationAtEndOfSentencePattern)
	rules := BuildCjkAbbreviationRules(japaneseCjkRange)
	p.CjkAbbreviationRules = &rules
	p.AbbreviationPeriodFollowSet = japaneseCjkRange
	p.SentenceStarters = nil
	p.BetweenPunctuationQuotes = []QuotePair{
		{Left: "（", Right: "）"},
		{Left: "「", Right: "」"},
		{Left: "『", Right: "』"},
	}
	rejoinRule := core.MustRule(
		`(?<=[\x{3041}-\x{3096}\x{30a1}-\x{30fa}\x{30fc}\x{4e00}-\x{9fcf}\x{3005}\x{3006}\x{3024}])\n(?=[\x{3041}-\x{3096}\x{30a1}-\x{30fa}\x{30fc}\x{4e00}-\x{9fcf}\x{3005}\x{3006}\x{3024}])`,
		"",
	)
	p.CleanOverride = rejoinRule.Apply
	return p
}
