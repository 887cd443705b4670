// Package processor runs the ordered rewrite-and-split pipeline that turns
// cleaned text into a list of sentence strings: list-item marking,
// abbreviation and number masking, continuous-punctuation and numeric
// reference normalization, segment splitting, and final orphan-fragment
// merging. Ported from original_source/sentencesplit/processor.py.
package processor

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"

	"github.com/opensbd/sentencesplit/core"
	"github.com/opensbd/sentencesplit/lang"
	"github.com/opensbd/sentencesplit/stages"
)

type Processor struct {
	text    string
	profile *lang.Profile
}

func New(text string, profile *lang.Profile) *Processor {
	return &Processor{text: text, profile: profile}
}

// Process runs the full pipeline and returns the list of sentence strings.
// The rewrite steps run as a fixed, non-reorderable sequence of core.Stage
// values: later stages depend on exactly which sentinels earlier stages
// already installed, so this is never safe to parallelize or reorder.
func (p *Processor) Process() []string {
	if p.text == "" {
		return nil
	}
	p.text = core.RunStages(p.text,
		core.StageFunc{StageName: "normalize-newlines", Fn: func(t string) string {
			return strings.ReplaceAll(t, "\n", "\r")
		}},
		core.StageFunc{StageName: "mark-list-items", Fn: func(t string) string {
			return stages.NewListItemReplacer(t).AddLineBreak()
		}},
		core.StageFunc{StageName: "mask-abbreviations", Fn: func(t string) string {
			return stages.NewAbbreviationReplacer(t, p.profile).Replace()
		}},
		core.StageFunc{StageName: "mask-numbers", Fn: p.profile.Numbers.Apply},
		core.StageFunc{StageName: "mask-continuous-punctuation", Fn: p.replaceContinuousPunctuation},
		core.StageFunc{StageName: "mask-numeric-references", Fn: p.replacePeriodsBeforeNumericReferences},
		core.StageFunc{StageName: "mask-domain-and-format-periods", Fn: func(t string) string {
			return core.ApplyRules(t,
				p.profile.WithMultiplePeriodsAndEmailRule,
				p.profile.GeoLocationRule,
				p.profile.FileFormatRule,
				p.profile.DotNetRule,
			)
		}},
	)
	return p.splitIntoSegments()
}

func (p *Processor) replaceContinuousPunctuation(text string) string {
	return core.ReplaceMatchFunc(p.profile.Regexes.ContinuousPunctuation, text, func(match string) string {
		match = strings.ReplaceAll(match, "!", core.SentinelExclamation)
		match = strings.ReplaceAll(match, "?", core.SentinelQuestion)
		return match
	})
}

// replacePeriodsBeforeNumericReferences masks a period immediately
// followed by a bracketed or bare numeric footnote/citation reference and
// a capital letter, so the reference doesn't get mistaken for a sentence
// boundary. See https://github.com/diasks2/pragmatic_segmenter/commit/d9ec1a352aff92b91e2e572c30bb9561eb42c703
func (p *Processor) replacePeriodsBeforeNumericReferences(text string) string {
	out, err := p.profile.Regexes.NumberedReference.Replace(text, core.SentinelPeriod+"$2\r$7", -1, -1)
	if err != nil {
		return text
	}
	return out
}

var (
	alphaOnlyRe     = regexp.MustCompile(`^[a-zA-Z]*$`)
	ellipsisOnlyRe  = regexp.MustCompile(`^\.{3,}$`)
	trailingExclRe  = regexp.MustCompile(core.SentinelExclamation + `$`)
	parenSpaceAfter = regexp2.MustCompile(`(?<=\))\s`, regexp2.None)
	parenSpaceBefore = regexp2.MustCompile(`\s(?=\()`, regexp2.None)
	resplitAfterParenRe = regexp2.MustCompile(`(?<=[a-zA-Z]{2}\.\))\s+(?=[A-Z])`, regexp2.None)
	orphanSingleChars = map[rune]bool{'\'': true, '"': true, '’': true, '”': true}
)

func (p *Processor) splitIntoSegments() []string {
	p.checkForParensBetweenQuotes()
	sents := strings.Split(p.text, "\r")
	sents = rmEmpty(sents)

	for i, s := range sents {
		s = p.profile.SingleNewLineRule.Apply(s)
		s = p.profile.EllipsisRules.Apply(s)
		sents[i] = s
	}

	var checked []string
	for _, s := range sents {
		checked = append(checked, p.checkForPunctuation(s)...)
	}
	checked = rmEmpty(checked)

	var postprocessed []string
	for _, sent := range checked {
		sent = p.subSymbolsFast(sent)
		for _, pps := range p.postProcessSegments(sent) {
			if pps != "" {
				postprocessed = append(postprocessed, pps)
			}
		}
	}
	for i, ns := range postprocessed {
		postprocessed[i] = p.profile.SubSingleQuoteRule.Apply(ns)
	}

	var resplit []string
	for _, pps := range postprocessed {
		for _, part := range core.SplitRegexp(resplitAfterParenRe, pps) {
			if part != "" {
				resplit = append(resplit, part)
			}
		}
	}
	postprocessed = resplit

	return mergeOrphans(postprocessed)
}

func mergeOrphans(sents []string) []string {
	var merged []string
	for _, sent := range sents {
		stripped := strings.TrimSpace(sent)
		isOrphan := false
		if stripped != "" && len(merged) > 0 {
			switch {
			case ellipsisOnlyRe.MatchString(stripped):
				isOrphan = true
			case len([]rune(stripped)) == 1 && orphanSingleChars[[]rune(stripped)[0]]:
				isOrphan = true
			case len(stripped) <= 10 && strings.HasSuffix(stripped, ".") && !startsUpper(stripped) && hasAlnum(stripped):
				isOrphan = true
			}
		}
		if isOrphan {
			merged[len(merged)-1] = merged[len(merged)-1] + " " + sent
		} else {
			merged = append(merged, sent)
		}
	}
	return merged
}

func startsUpper(s string) bool {
	r := []rune(s)
	return len(r) > 0 && unicode.IsUpper(r[0])
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func rmEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (p *Processor) postProcessSegments(txt string) []string {
	if len(txt) > 2 && alphaOnlyRe.MatchString(txt) {
		return []string{txt}
	}
	txt = p.profile.ReinsertEllipsisRules.Apply(txt)
	if ok, _ := p.profile.Regexes.QuotationAtEndOfSentence.MatchString(txt); ok {
		parts := core.SplitRegexp(p.profile.Regexes.SplitSpaceQuotationAtEndOfSentence, txt)
		return rmEmpty(parts)
	}
	txt = strings.ReplaceAll(txt, "\n", "")
	txt = strings.TrimSpace(txt)
	if txt == "" {
		return nil
	}
	return []string{txt}
}

func (p *Processor) checkForParensBetweenQuotes() {
	p.text = core.ReplaceMatchFunc(p.profile.Regexes.ParensBetweenDoubleQuotes, p.text, func(match string) string {
		sub1, err := parenSpaceBefore.Replace(match, "\r", -1, -1)
		if err != nil {
			sub1 = match
		}
		sub2, err := parenSpaceAfter.Replace(sub1, "\r", -1, -1)
		if err != nil {
			return sub1
		}
		return sub2
	})
}

func (p *Processor) checkForPunctuation(txt string) []string {
	for _, punct := range p.profile.Punctuations {
		if strings.Contains(txt, punct) {
			return p.processText(txt)
		}
	}
	return []string{txt}
}

func (p *Processor) processText(txt string) []string {
	if txt == "" || !lastCharIn(txt, p.profile.Punctuations) {
		txt += core.SentinelEllipsisOne
	}
	txt = stages.ApplyExclamationWordRules(txt)
	txt = stages.NewBetweenPunctuation(txt, p.profile).Replace()
	if !p.profile.DoublePunctuationMatcher.MatchString(txt) {
		txt = p.profile.DoublePunctuationRules.Apply(txt)
	}
	txt = core.ApplyRules(txt, p.profile.QuestionMarkInQuotationRule)
	txt = p.profile.ExclamationPointRules.Apply(txt)
	txt = stages.ReplaceParens(txt)
	return p.sentenceBoundaryPunctuation(txt)
}

func lastCharIn(txt string, punctuations []string) bool {
	r := []rune(txt)
	last := string(r[len(r)-1])
	for _, p := range punctuations {
		if p == last {
			return true
		}
	}
	return false
}

func (p *Processor) sentenceBoundaryPunctuation(txt string) []string {
	if p.profile.ColonBetweenNumbersRule != nil {
		txt = p.profile.ColonBetweenNumbersRule.Apply(txt)
	}
	if p.profile.NonBoundaryCommaRule != nil {
		txt = p.profile.NonBoundaryCommaRule.Apply(txt)
	}
	txt = trailingExclRe.ReplaceAllString(txt, "!")
	return core.FindAllStrings(p.profile.Regexes.SentenceBoundary, txt)
}

// subSymbolsFast restores every masked sentinel to its real character with
// a literal string-replace pass (never a regex substitution: matched spans
// may themselves contain regex metacharacters), grounded on
// processor.py's _sub_symbols_fast.
func (p *Processor) subSymbolsFast(text string) string {
	for _, pair := range p.profile.SubSymbolsTable {
		text = strings.ReplaceAll(text, pair.Old, pair.New)
	}
	return text
}
