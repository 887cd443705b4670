package lang

import "github.com/opensbd/sentencesplit/core"

// newLatinProfile builds a profile sharing the Common boundary regex and
// Standard rule defaults (every profile descending from Common+Standard in
// original_source/ with no special-cased boundary regex: English, Spanish,
// Chinese's Latin fallback, and the 11 standard-profile languages in
// default_latin.go).
func newLatinProfile(code string) *Profile {
	return &Profile{
		Code:                            code,
		Punctuations:                    []string{".", "!", "?"},
		Regexes:                         NewCommonRegexes(CommonSentenceBoundaryPattern),
		SingleLetterAbbreviationRules:   SingleLetterAbbreviationRules,
		AmPmRules:                       BuildAmPmRules(),
		Numbers:                         NumbersRules,
		PossessiveAbbreviationRule:      PossessiveAbbreviationRule,
		KommanditgesellschaftRule:       KommanditgesellschaftRule,
		Abbreviation:                    StandardAbbreviations(),
		GeoLocationRule:                 GeoLocationRule,
		FileFormatRule:                  FileFormatRule,
		DotNetRule:                      DotNetRule,
		WithMultiplePeriodsAndEmailRule: WithMultiplePeriodsAndEmailRule,
		DoublePunctuationRules:          DoublePunctuationRules.RuleGroup,
		DoublePunctuationMatcher:        DoublePunctuationRules.DoublePunctuation,
		ExclamationPointRules:           ExclamationPointRules,
		QuestionMarkInQuotationRule:     QuestionMarkInQuotationRule,
		SingleNewLineRule:               SingleNewLineRule,
		EllipsisRules:                   EllipsisRules,
		ReinsertEllipsisRules:           ReinsertEllipsisRules,
		SubSingleQuoteRule:              SubSingleQuoteRule,
		SubSymbolsTable:                 DefaultSubSymbolsTable(),
	}
}

// newMinimalProfile builds a profile for a language whose original_source/
// definition supplies only a custom Punctuations set and boundary regex
// (no abbreviation list, no sentence starters): Hindi, Marathi, Urdu,
// Armenian, Burmese, Greek, and, with colon/comma hooks layered on top,
// Arabic and Persian.
func newMinimalProfile(code, boundaryPattern string, punctuations []string) *Profile {
	p := newLatinProfile(code)
	p.Code = code
	p.Punctuations = punctuations
	p.Regexes = NewCommonRegexes(boundaryPattern)
	return p
}

func colonBetweenNumbersRule() *core.Rule {
	r := core.MustRule(`(?<=\d):(?=\d)`, "♭")
	return &r
}

func nonBoundaryCommaRule(comma string) *core.Rule {
	r := core.MustRule(comma+`(?=\s\S+`+comma+`)`, "♬")
	return &r
}
