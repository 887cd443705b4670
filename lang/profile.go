package lang

import (
	"sort"
	"sync"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/opensbd/sentencesplit/core"
)

// Abbreviation is the per-language abbreviation schema
// (ABBREVIATIONS / PREPOSITIVE_ABBREVIATIONS / NUMBER_ABBREVIATIONS),
// grounded on original_source/pysbd/lang/spanish.py's Abbreviation class
// and original_source/sentencesplit/lang/arabic.py's.
type Abbreviation struct {
	// All lists every abbreviation form, lowercase, with its trailing
	// period stripped (multi-part forms like "e.g" or "u.s" keep their
	// internal periods).
	All []string
	// Prepositive abbreviations (titles: "dr", "prof", ...) are masked
	// whenever they're followed by a capitalized word, regardless of
	// case, because a title is never itself a sentence boundary.
	Prepositive []string
	// NumberAbbr abbreviations ("no", "p", "pp", ...) are masked when
	// followed by a digit or an opening parenthesis.
	NumberAbbr []string
}

// abbreviationEntry is one precomputed, case-preserved candidate.
type abbreviationEntry struct {
	stripped      string
	strippedLower string
	matchRegex    *regexp2.Regexp
	nextWordRegex *regexp2.Regexp
}

// Stripped returns the abbreviation text with surrounding whitespace
// removed, preserving original case.
func (e abbreviationEntry) Stripped() string { return e.stripped }

// MatchRegex finds every occurrence of this abbreviation at a word
// boundary, case-insensitively.
func (e abbreviationEntry) MatchRegex() *regexp2.Regexp { return e.matchRegex }

// NextWordRegex captures the single character immediately following each
// "<abbreviation> " occurrence, used to test whether the next word starts
// with a capital letter.
func (e abbreviationEntry) NextWordRegex() *regexp2.Regexp { return e.nextWordRegex }

// AbbreviationData is the per-language precomputed cache described in
// spec.md §5 ("the per-language precomputed data table ... created lazily
// on first use"), grounded on abbreviation_replacer.py's _AbbreviationData.
// It holds the Aho-Corasick automaton used to find abbreviation candidates
// in O(len(text)) instead of scanning every abbreviation's regex against
// every line.
type AbbreviationData struct {
	entries        []abbreviationEntry
	prepositiveSet map[string]bool
	numberAbbrSet  map[string]bool
	automaton      *ahoCorasick
}

func buildAbbreviationData(a Abbreviation) *AbbreviationData {
	sorted := append([]string(nil), a.All...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	d := &AbbreviationData{
		prepositiveSet: toSet(a.Prepositive),
		numberAbbrSet:  toSet(a.NumberAbbr),
		automaton:      newAhoCorasick(),
	}
	for idx, abbr := range sorted {
		lower := stringsToLower(abbr)
		escaped := regexp2.Escape(abbr)
		matchRE := regexp2.MustCompile(`(?:^|\s|\r|\n)(?i:`+escaped+`)`, regexp2.None)
		nextWordRE := regexp2.MustCompile(`(?<=`+escaped+` ).{1}`, regexp2.None)
		matchRE.MatchTimeout = 0
		nextWordRE.MatchTimeout = 0
		d.entries = append(d.entries, abbreviationEntry{
			stripped:      abbr,
			strippedLower: lower,
			matchRegex:    matchRE,
			nextWordRegex: nextWordRE,
		})
		d.automaton.addPattern(lower, idx)
	}
	d.automaton.build()
	return d
}

func toSet(items []string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, s := range items {
		out[stringsToLower(s)] = true
	}
	return out
}

var lowerCaser = cases.Lower(language.Und)

func stringsToLower(s string) string { return lowerCaser.String(s) }

// Profile is the immutable, once-built per-language record every stage
// consults, the Go-native equivalent of the "Language profile" record
// schema in spec.md §3. Each profile is built by its constructor the first
// time GetProfile asks for its code (under the registry mutex) and cached;
// its exported fields are not mutated afterward, and its abbreviation
// search structures are built once, on first use, through a sync.Once.
type Profile struct {
	Code string

	Punctuations []string
	Regexes      CommonRegexes

	SingleLetterAbbreviationRules core.RuleGroup
	AmPmRules                     core.RuleGroup
	Numbers                       core.RuleGroup
	PossessiveAbbreviationRule    core.Rule
	KommanditgesellschaftRule     core.Rule

	SentenceStarters             []string
	SentenceBoundaryAbbreviation string // e.g. "U.S|U.K|E.U|..." fragment
	Abbreviation                 Abbreviation
	// AbbreviationAlwaysMask replaces AbbreviationReplacer's default
	// scan_for_replacements decision for languages (Arabic, Persian) that
	// unconditionally mask the abbreviation's trailing period.
	AbbreviationAlwaysMask bool
	// AbbreviationPeriodFollowSet extends the default lookahead character
	// class replace_period_of_abbr uses to decide a period is internal to
	// an abbreviation (Chinese/Japanese append their CJK ranges here).
	AbbreviationPeriodFollowSet string

	GeoLocationRule                 core.Rule
	FileFormatRule                  core.Rule
	DotNetRule                      core.Rule
	WithMultiplePeriodsAndEmailRule core.Rule
	DoublePunctuationRules          core.RuleGroup
	DoublePunctuationMatcher        core.Rule
	ExclamationPointRules           core.RuleGroup
	QuestionMarkInQuotationRule     core.Rule
	SingleNewLineRule               core.Rule
	EllipsisRules                   core.RuleGroup
	ReinsertEllipsisRules           core.RuleGroup
	SubSingleQuoteRule              core.Rule
	SubSymbolsTable                 []SubPair

	// ColonBetweenNumbersRule and NonBoundaryCommaRule are optional
	// per-profile hooks (Arabic/Persian); nil when not applicable.
	ColonBetweenNumbersRule *core.Rule
	NonBoundaryCommaRule    *core.Rule

	// CjkAbbreviationRules and BetweenPunctuationQuotes are optional
	// CJK-specific hooks (Chinese/Japanese); nil when not applicable.
	CjkAbbreviationRules     *core.RuleGroup
	BetweenPunctuationQuotes []QuotePair
	CleanOverride            func(string) string

	abbrevOnce sync.Once
	abbrevData *AbbreviationData
}

// AbbreviationData returns (and lazily builds, exactly once) this
// profile's precomputed abbreviation search structures.
func (p *Profile) AbbreviationData() *AbbreviationData {
	p.abbrevOnce.Do(func() {
		p.abbrevData = buildAbbreviationData(p.Abbreviation)
	})
	return p.abbrevData
}

// Search runs the Aho-Corasick automaton over lowered text and returns the
// indices of every matched abbreviation entry, in ascending order (matching
// Python's `sorted(found_indices)` iteration in
// AbbreviationReplacer.search_for_abbreviations_in_string).
func (d *AbbreviationData) Search(lowered string) []int {
	found := d.automaton.search(lowered)
	out := make([]int, 0, len(found))
	for idx := range found {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Entries exposes the precomputed abbreviation candidates in automaton-ID
// order.
func (d *AbbreviationData) Entries() []abbreviationEntry { return d.entries }

// IsPrepositive reports whether a lowercased abbreviation is in the
// language's prepositive (title) set.
func (d *AbbreviationData) IsPrepositive(lower string) bool { return d.prepositiveSet[lower] }

// IsNumberAbbr reports whether a lowercased abbreviation is in the
// language's number-abbreviation set.
func (d *AbbreviationData) IsNumberAbbr(lower string) bool { return d.numberAbbrSet[lower] }

// QuotePair is a (left, right) bracket/quote delimiter pair whose interior
// punctuation should be masked, e.g. Chinese's 《...》 or Japanese's 「...」.
type QuotePair struct {
	Left, Right string
}
