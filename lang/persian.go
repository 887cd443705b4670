package lang

// Persian, grounded on original_source/sentencesplit/lang/persian.py:
// same shape as Arabic (own boundary regex, colon/comma guards,
// unconditional abbreviation-period masking) minus the Arabic comma
// (؟ rather than the combined ؟/، set, and no retained abbreviation list
// in the source pack).
func newPersian() *Profile {
	p := newMinimalProfile("fa", `.*?[:\.!\?؟]|.*?\z|.*?$`, []string{"?", "!", ":", ".", "؟"})
	p.ColonBetweenNumbersRule = colonBetweenNumbersRule()
	p.NonBoundaryCommaRule = nonBoundaryCommaRule("،")
	p.AbbreviationAlwaysMask = true
	return p
}
