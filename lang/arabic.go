package lang

// Arabic, grounded on original_source/sentencesplit/lang/arabic.py: its
// own Punctuations/boundary regex, a colon-between-numbers guard and a
// non-boundary Arabic-comma guard, a small closed abbreviation list, and
// an AbbreviationReplacer override that unconditionally masks the period
// after any matched abbreviation (no capitalization/prepositive check).
func newArabic() *Profile {
	p := newMinimalProfile("ar", `.*?[:\.!\?؟،]|.*?\z|.*?$`, []string{"?", "!", ":", ".", "؟", "،"})
	p.ColonBetweenNumbersRule = colonBetweenNumbersRule()
	p.NonBoundaryCommaRule = nonBoundaryCommaRule("،")
	p.AbbreviationAlwaysMask = true
	p.Abbreviation = Abbreviation{
		All: []string{
			"ا", "ا. د", "ا.د", "ا.ش.ا", "إلخ", "ت.ب", "ج.ب", "جم", "ج.م.ع",
			"س.ت", "سم", "ص.ب.", "ص.ب", "كج.", "كلم.", "م", "م.ب", "ه",
		},
	}
	return p
}
