package lang

import "github.com/opensbd/sentencesplit/core"

// The defining module for these rules, sentencesplit/lang/common/standard.py,
// was not part of the retrieved source pack (see DESIGN.md). The rules below
// reproduce the documented behavior of the Standard base class referenced by
// every language profile in original_source/ (masking file-extension,
// .NET-product, email/domain, and geo-coordinate periods; normalizing
// doubled terminal punctuation; restoring sentinels) and of the
// pragmatic_segmenter/pysbd family this codebase descends from.

// GeoLocationRule masks a period inside a decimal geographic coordinate,
// e.g. "37.7749 N" should not split at the decimal point.
var GeoLocationRule = core.MustRule(`(?<=[0-9])\.(?=[0-9]+\s*[NSEW]\b)`, core.SentinelPeriod)

// FileFormatRule masks a period before a common filename extension.
var FileFormatRule = core.MustRule(
	`\.(?=(?i:txt|doc|docx|pdf|ppt|pptx|xls|xlsx|csv|json|xml|yaml|yml|go|py|js|ts|java|rb|rs|c|cpp|h|png|jpg|jpeg|gif|svg|mp3|mp4|zip|tar|gz)\b)`,
	core.SentinelPeriod,
)

// DotNetRule masks the period in the ".NET" product name.
var DotNetRule = core.MustRule(`(?<=\s|^)\.(?=NET\b)`, core.SentinelPeriod)

// WithMultiplePeriodsAndEmailRule masks periods inside an email address or
// a bare multi-label domain name (e.g. "jane.doe@example.com", "go.dev").
var WithMultiplePeriodsAndEmailRule = core.MustRule(
	`\.(?=[A-Za-z0-9_%+-]*@|[A-Za-z0-9-]+\.(?i:com|org|net|io|dev|gov|edu)\b)|(?<=[A-Za-z0-9-])\.(?=(?i:com|org|net|io|dev|gov|edu)\b)`,
	core.SentinelPeriod,
)

// DoublePunctuationRules normalizes runs of mixed terminal punctuation
// ("?!", "!?", "!!", "??") to a single representative mark before the
// boundary regex runs.
var DoublePunctuationRules = struct {
	core.RuleGroup
	DoublePunctuation core.Rule
}{
	RuleGroup: core.RuleGroup{
		Name: "DoublePunctuationRules",
		All: []core.Rule{
			core.MustRule(`\?!+`, "?"),
			core.MustRule(`!\?+`, "!"),
			core.MustRule(`!{2,}`, "!"),
			core.MustRule(`\?{2,}`, "?"),
		},
	},
	// DoublePunctuation matches text that is nothing but punctuation, used
	// by processor.processText as a short-circuit guard so an
	// all-punctuation fragment isn't run back through the rules above.
	DoublePunctuation: core.MustRule(`^[!?]+$`, "$0"),
}

// ExclamationPointRules protects a '!' immediately followed by a closing
// quote mark (straight or curly, single or double), the same quote set
// QuestionMarkInQuotationRule below looks for.
var ExclamationPointRules = core.RuleGroup{
	Name: "ExclamationPointRules",
	All: []core.Rule{
		core.MustRule(`!(?=["'”’])`, core.SentinelExclamation),
	},
}

// QuestionMarkInQuotationRule masks a '?' that sits just before a closing
// quote that does not itself end the sentence (e.g. `she asked, "Really?"
// and left.`).
var QuestionMarkInQuotationRule = core.MustRule(`\?(?=["'”’]\s+[a-z])`, core.SentinelQuestion)

// SingleNewLineRule folds a remaining '\n' (one that survived list-item and
// paragraph handling) to a plain space before ellipsis normalization.
var SingleNewLineRule = core.MustRule(`\n`, " ")

// EllipsisRules normalizes the various ellipsis spellings pragmatic
// segmentation has to deal with, temporarily escaping the dots that must
// survive the boundary regex untouched.
var EllipsisRules = core.RuleGroup{
	Name: "EllipsisRules",
	All: []core.Rule{
		core.MustRule(`\.\.\.(?=\s+[A-Z])`, core.SentinelEllipsisOne+core.SentinelEllipsisOne+core.SentinelEllipsisOne),
		core.MustRule(`\.\.\.(?=\s*\z)`, core.SentinelEllipsisTwo+core.SentinelEllipsisTwo+core.SentinelEllipsisTwo),
		core.MustRule(`\. \. \.`, "..."),
		core.MustRule(`…`, "..."),
	},
}

// ReinsertEllipsisRules restores the escaped ellipsis dots once the segment
// has already survived the boundary split, grounded on Processor's
// ReinsertEllipsisRules.All usage in post_process_segments.
var ReinsertEllipsisRules = core.RuleGroup{
	Name: "ReinsertEllipsisRules",
	All: []core.Rule{
		core.MustRule(core.SentinelEllipsisOne+core.SentinelEllipsisOne+core.SentinelEllipsisOne, "..."),
		core.MustRule(core.SentinelEllipsisTwo+core.SentinelEllipsisTwo+core.SentinelEllipsisTwo, "..."),
	},
}

// SubSingleQuoteRule restores a masked apostrophe in the final sentence
// text.
var SubSingleQuoteRule = core.MustRule(core.SentinelApostrophe, "'")

// SubPair is one literal old->new replacement in a profile's restoration
// table, applied with strings.Replace rather than a regex substitution
// (_sub_symbols_fast in processor.py — the matched spans can themselves
// contain regex metacharacters, so a literal pass is required here).
type SubPair struct {
	Old string
	New string
}

// DefaultSubSymbolsTable restores every sentinel this package installs
// back to its real character. Every profile's SubSymbolsTable starts from
// this and may append CJK-specific entries.
func DefaultSubSymbolsTable() []SubPair {
	return []SubPair{
		{core.SentinelPeriod, "."},
		{core.SentinelListLetterPeriod, "."},
		{core.SentinelExclamation, "!"},
		{core.SentinelQuestion, "?"},
		{core.SentinelExclamationCJK, "！"},
		{core.SentinelQuestionCJK, "？"},
		{core.SentinelIdeographicFullStop, "。"},
		{core.SentinelFullwidthPeriod, "．"},
		{"♭", ":"},
		{"♬", "،"},
		{core.SentinelRomanGuardLeft, "("},
		{core.SentinelRomanGuardRight, ")"},
		{core.SentinelEllipsisOne + core.SentinelEllipsisOne + core.SentinelEllipsisOne, "..."},
		{core.SentinelEllipsisTwo + core.SentinelEllipsisTwo + core.SentinelEllipsisTwo, "..."},
		// A lone SentinelEllipsisOne is the end marker processText appends
		// to a segment with no terminal punctuation; it has no original.
		{core.SentinelEllipsisOne, ""},
	}
}

// StandardAbbreviations seeds the default Latin abbreviation set applied
// to every profile that doesn't supply a richer language-specific list
// (titles, common Latin abbreviations, months, weekdays), normalized to
// the lowercase, period-stripped schema every Abbreviation list here uses.
func StandardAbbreviations() Abbreviation {
	return Abbreviation{
		All: []string{
			"dr", "mr", "mrs", "ms", "prof", "st", "ave", "blvd", "etc",
			"e.g", "i.e", "vs", "no", "inc", "ltd", "co", "corp",
			"u.s", "u.k",
			"jan", "feb", "mar", "apr", "aug", "sept", "oct", "nov", "dec",
			"mon", "tue", "wed", "thu", "fri", "sat", "sun",
		},
		Prepositive: []string{"dr", "prof", "mr", "mrs", "ms"},
		NumberAbbr:  []string{"no"},
	}
}
