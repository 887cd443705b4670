package lang

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/opensbd/sentencesplit/core"
)

// This file ports sentencesplit.lang.common.Common (original_source/
// sentencesplit/lang/common/common.py) into a set of shared, package-level
// rule groups every Latin-script-oriented profile in this package composes.

const sentenceEndPunctClass = `[。．.！!?？ȸȹ☉☈☇☄]`

var sentenceBoundaryParts = []string{
	`（(?:[^）])*）(?=\s?[A-Z])`,
	`「(?:[^」])*」(?=\s[A-Z])`,
	`\((?:[^\)]){2,}\)(?=\s[A-Z])`,
	`\'(?:[^\'])*[^,]\'(?=\s[A-Z])`,
	`\"(?:[^\"])*[^,]\"(?=\s[A-Z])`,
	`“(?:[^”])*[^,]”(?=\s[A-Z])`,
	`[。．.！!?？ ]{2,}`,
	`\S[^\n。．.！!?？ȸȹ☉☈☇☄]*` + sentenceEndPunctClass,
	`[。．.！!?？]`,
}

// CommonSentenceBoundaryPattern is the alternation used by every Latin
// profile that doesn't define its own SENTENCE_BOUNDARY_REGEX.
var CommonSentenceBoundaryPattern = strings.Join(sentenceBoundaryParts, "|")

const (
	quotationAtEndOfSentencePattern            = `[!?\.-]["'“”]\s{1}[A-Z]`
	parensBetweenDoubleQuotesPattern           = `["”]\s\(.*\)\s["“]`
	splitSpaceQuotationAtEndOfSentencePattern  = `(?<=[!?\.-]["'“”])\s{1}(?=[A-Z])`
	continuousPunctuationPattern               = `(?<=\S)(!|\?){3,}(?=(\s|\z|$))`
	numberedReferencePattern                   = `(?<=[^\d\s])(\.|` + core.SentinelPeriod + `)((\[(\d{1,3},?\s?-?\s?)?\b\d{1,3}\])+|((\d{1,3}\s?){0,3}\d{1,3}))(\s)(?=[A-Z])`
	multiPeriodAbbreviationPattern             = `\b[a-z](?:\.[a-z])+[.]`
	multiPeriodAbbreviationBoundaryRestorePtn  = `(?<=[a-zA-Z]` + core.SentinelPeriod + `[a-zA-Z]` + core.SentinelPeriod + `[a-zA-Z])` + core.SentinelPeriod + `(?=\s[A-Z])`
)

func compile(pattern string, opts regexp2.RegexOptions) *regexp2.Regexp {
	re := regexp2.MustCompile(pattern, opts)
	re.MatchTimeout = 0
	return re
}

// CommonRegexes groups the shared, precompiled, non-rule regexes every
// Latin profile needs (distinct from core.Rule because these are matched
// against, not substituted with a fixed replacement).
type CommonRegexes struct {
	SentenceBoundary                   *regexp2.Regexp
	QuotationAtEndOfSentence           *regexp2.Regexp
	ParensBetweenDoubleQuotes          *regexp2.Regexp
	SplitSpaceQuotationAtEndOfSentence *regexp2.Regexp
	ContinuousPunctuation              *regexp2.Regexp
	NumberedReference                  *regexp2.Regexp
	MultiPeriodAbbreviation            *regexp2.Regexp
	MultiPeriodAbbreviationBoundary    *regexp2.Regexp
}

// NewCommonRegexes builds the Common regex set against a custom boundary
// pattern (callers pass CommonSentenceBoundaryPattern for Latin scripts or
// a language-specific override for everything else), using the Latin-style
// quotation-at-end-of-sentence patterns (trailing capital required).
func NewCommonRegexes(boundaryPattern string) CommonRegexes {
	return NewCommonRegexesWithQuotation(boundaryPattern, quotationAtEndOfSentencePattern, splitSpaceQuotationAtEndOfSentencePattern)
}

// NewCommonRegexesWithQuotation builds the Common regex set against a
// custom boundary pattern and custom quotation-at-end-of-sentence patterns,
// for scripts (CJK) whose closing-quote re-split has no Latin-capital
// requirement. See CJKQuotationAtEndOfSentencePattern.
func NewCommonRegexesWithQuotation(boundaryPattern, quotationPattern, splitSpacePattern string) CommonRegexes {
	return CommonRegexes{
		SentenceBoundary:                   compile(boundaryPattern, regexp2.None),
		QuotationAtEndOfSentence:           compile(quotationPattern, regexp2.None),
		ParensBetweenDoubleQuotes:          compile(parensBetweenDoubleQuotesPattern, regexp2.None),
		SplitSpaceQuotationAtEndOfSentence: compile(splitSpacePattern, regexp2.None),
		ContinuousPunctuation:              compile(continuousPunctuationPattern, regexp2.None),
		NumberedReference:                  compile(numberedReferencePattern, regexp2.None),
		MultiPeriodAbbreviation:            compile(multiPeriodAbbreviationPattern, regexp2.None),
		MultiPeriodAbbreviationBoundary:    compile(multiPeriodAbbreviationBoundaryRestorePtn, regexp2.None),
	}
}

// PossessiveAbbreviationRule masks the period of a trailing possessive
// ("Apple's." -> "Apple's∯"), grounded on Common.PossessiveAbbreviationRule.
var PossessiveAbbreviationRule = core.MustRule(`\.(?='s\s)|\.(?='s$)|\.(?='s\z)`, core.SentinelPeriod)

// KommanditgesellschaftRule masks "Co." immediately before "KG" (German
// company-form abbreviation), grounded on Common.KommanditgesellschaftRule.
var KommanditgesellschaftRule = core.MustRule(`(?<=Co)\.(?=\sKG)`, core.SentinelPeriod)

// SingleLetterAbbreviationRules masks the period after a lone capital
// letter used as an initial, grounded on Common.SingleLetterAbbreviationRules.
var SingleLetterAbbreviationRules = core.RuleGroup{
	Name: "SingleLetterAbbreviationRules",
	All: []core.Rule{
		core.MustRule(`(?<=^[A-Z])\.(?=\s)`, core.SentinelPeriod),
		core.MustRule(`(?<=\s[A-Z])\.(?=,?\s)`, core.SentinelPeriod),
	},
}

// amPmTimezoneGuard is the alternation of timezone abbreviations that must
// not be mistaken for a sentence-starting proper noun following a.m./p.m.
const amPmTimezoneGuard = `(?:[ECMP][SD]T|GMT|UTC|CET|CEST|WET|WEST|EET|EEST|BST|MSK|IST|JST|KST|HKT|SGT|(?:AE|NZ)[SD]T|AST|AKST|HST|NST)[\s.]`

// BuildAmPmRules returns the base a.m./p.m. rule group, grounded on
// Common.AmPmRules.
func BuildAmPmRules() core.RuleGroup {
	p := core.SentinelPeriod
	return core.RuleGroup{
		Name: "AmPmRules",
		All: []core.Rule{
			core.MustRule(`(?<= P`+p+`M)`+p+`(?=\s(?!`+amPmTimezoneGuard+`)[A-Z])`, "."),
			core.MustRule(`(?<=A`+p+`M)`+p+`(?=\s(?!`+amPmTimezoneGuard+`)[A-Z])`, "."),
			core.MustRule(`(?<=p`+p+`m)`+p+`(?=\s(?!`+amPmTimezoneGuard+`)[A-Z])`, "."),
			core.MustRule(`(?<=a`+p+`m)`+p+`(?=\s(?!`+amPmTimezoneGuard+`)[A-Z])`, "."),
		},
	}
}

// BuildSpanishAmPmRules adds the Spanish-only spaced "a. m." / "p. m."
// variant ahead of (and restoration after) the base rules, grounded on
// pysbd.lang.spanish.Spanish.AmPmRules.
func BuildSpanishAmPmRules() core.RuleGroup {
	p := core.SentinelPeriod
	base := BuildAmPmRules()
	rules := []core.Rule{
		core.MustRule(`(?<=\d )(a)\. (m)\.`, "$1"+p+" $2"+p),
		core.MustRule(`(?<=\d )(p)\. (m)\.`, "$1"+p+" $2"+p),
		core.MustRule(`(?<=\d )(A)\. (M)\.`, "$1"+p+" $2"+p),
		core.MustRule(`(?<=\d )(P)\. (M)\.`, "$1"+p+" $2"+p),
	}
	rules = append(rules, base.All...)
	rules = append(rules,
		core.MustRule(`(?<=a`+p+` m)`+p+`(?=\s(?!`+amPmTimezoneGuard+`)[A-Z])`, "."),
		core.MustRule(`(?<=p`+p+` m)`+p+`(?=\s(?!`+amPmTimezoneGuard+`)[A-Z])`, "."),
		core.MustRule(`(?<=A`+p+` M)`+p+`(?=\s(?!`+amPmTimezoneGuard+`)[A-Z])`, "."),
		core.MustRule(`(?<=P`+p+` M)`+p+`(?=\s(?!`+amPmTimezoneGuard+`)[A-Z])`, "."),
	)
	return core.RuleGroup{Name: "AmPmRules(es)", All: rules}
}

// NumbersRules guards periods adjacent to digits from the boundary regex,
// grounded on Common.Numbers.
var NumbersRules = core.RuleGroup{
	Name: "Numbers",
	All: []core.Rule{
		core.MustRule(`\.(?=\d)`, core.SentinelPeriod),
		core.MustRule(`(?<=\d)\.(?=\S)`, core.SentinelPeriod),
		core.MustRule(`(?<=\r\d)\.(?=(\s\S)|\))`, core.SentinelPeriod),
		core.MustRule(`(?<=^\d)\.(?=(\s\S)|\))`, core.SentinelPeriod),
		core.MustRule(`(?<=^\d\d)\.(?=(\s\S)|\))`, core.SentinelPeriod),
		core.MustRule(`(?<=\d )in\.(?=\s[a-z])`, "in"+core.SentinelPeriod),
	},
}
