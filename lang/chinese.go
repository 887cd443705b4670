package lang

// Chinese, grounded on original_source/sentencesplit/lang/chinese.py: no
// Latin sentence starters (CJK has no case), a CJK-aware boundary regex
// that doesn't require a following capital, an abbreviation-period
// lookahead extended to include Chinese ideographs, and quote pairs
// (《》「」『』（）) whose interior punctuation must be masked.
func newChinese() *Profile {
	p := newLatinProfile("zh")
	p.Punctuations = []string{"。", "．", "！", "!", "？", "?"}
	p.Regexes = NewCommonRegexesWithQuotation(CJKSentenceBoundaryPattern, CJKQuotationAtEndOfSentencePattern, CJKSplitSpaceQuotationAtEndOfSentencePattern)
	rules := BuildCjkAbbreviationRules(chineseCjkRange)
	p.CjkAbbreviationRules = &rules
	p.AbbreviationPeriodFollowSet = chineseCjkRange
	p.SentenceStarters = nil
	p.BetweenPunctuationQuotes = []QuotePair{
		{Left: "《", Right: "》"},
		{Left: "「", Right: "」"},
		{Left: "『", Right: "』"},
		{Left: "（", Right: "）"},
	}
	return p
}
