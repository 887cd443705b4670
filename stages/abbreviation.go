package stages

import (
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"

	"github.com/opensbd/sentencesplit/core"
	"github.com/opensbd/sentencesplit/lang"
)

// AbbreviationReplacer masks the period of every abbreviation its
// language profile recognizes so that period never trips the final
// sentence-boundary regex. Ported from original_source/sentencesplit/
// abbreviation_replacer.py's AbbreviationReplacer.
type AbbreviationReplacer struct {
	text    string
	profile *lang.Profile
	data    *lang.AbbreviationData
}

func NewAbbreviationReplacer(text string, profile *lang.Profile) *AbbreviationReplacer {
	return &AbbreviationReplacer{text: text, profile: profile, data: profile.AbbreviationData()}
}

// multiPeriodSentStartersPrefix matches the masked period after a country
// abbreviation, "I" or "i.v"; replaceAbbreviationAsSentenceBoundary adds a
// lookahead over the profile's sentence starters.
const multiPeriodSentStartersPrefix = `(U` + core.SentinelPeriod + `S|U\.S|U` + core.SentinelPeriod + `K|E` + core.SentinelPeriod + `U|E\.U|U` + core.SentinelPeriod + `S` + core.SentinelPeriod + `A|U\.S\.A|I|i\.v|I\.V)` + core.SentinelPeriod

// Replace runs the full abbreviation-masking pipeline and returns the
// rewritten text, grounded on AbbreviationReplacer.replace.
func (a *AbbreviationReplacer) Replace() string {
	a.text = core.ApplyRules(a.text,
		a.profile.PossessiveAbbreviationRule,
		a.profile.KommanditgesellschaftRule,
	)
	a.text = a.profile.SingleLetterAbbreviationRules.Apply(a.text)
	if a.profile.CjkAbbreviationRules != nil {
		a.text = a.profile.CjkAbbreviationRules.Apply(a.text)
	}

	var lines []string
	for _, line := range splitKeepEnds(a.text) {
		lines = append(lines, a.searchForAbbreviationsInString(line))
	}
	a.text = strings.Join(lines, "")

	a.replaceMultiPeriodAbbreviations()
	if out, err := a.profile.Regexes.MultiPeriodAbbreviationBoundary.Replace(a.text, ".", -1, -1); err == nil {
		a.text = out
	}
	a.text = a.profile.AmPmRules.Apply(a.text)
	a.text = a.replaceAbbreviationAsSentenceBoundary()
	return a.text
}

func splitKeepEnds(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if r == '\n' {
			out = append(out, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

func (a *AbbreviationReplacer) replaceAbbreviationAsSentenceBoundary() string {
	if len(a.profile.SentenceStarters) == 0 {
		return a.text
	}
	starters := make([]string, len(a.profile.SentenceStarters))
	for i, w := range a.profile.SentenceStarters {
		starters[i] = regexp2.Escape(w)
	}
	re := regexp2.MustCompile(multiPeriodSentStartersPrefix+`(?=\s(?:`+strings.Join(starters, "|")+`)\s)`, regexp2.None)
	out, err := re.Replace(a.text, "$1.", -1, -1)
	if err != nil {
		return a.text
	}
	return out
}

func (a *AbbreviationReplacer) replaceMultiPeriodAbbreviations() {
	a.text = core.ReplaceMatchFunc(a.profile.Regexes.MultiPeriodAbbreviation, a.text, func(match string) string {
		return strings.ReplaceAll(match, ".", core.SentinelPeriod)
	})
}

func (a *AbbreviationReplacer) searchForAbbreviationsInString(text string) string {
	lowered := strings.ToLower(text)
	found := a.data.Search(lowered)
	entries := a.data.Entries()
	for _, idx := range found {
		entry := entries[idx]
		matches := findAllMatches(entry.MatchRegex(), text)
		if len(matches) == 0 {
			continue
		}
		charArray := findAllMatches(entry.NextWordRegex(), text)
		for i, m := range matches {
			text = a.scanForReplacements(text, m, i, charArray, entry.Stripped())
		}
	}
	return text
}

func findAllMatches(re *regexp2.Regexp, text string) []string {
	var out []string
	m, _ := re.FindStringMatch(text)
	for m != nil {
		out = append(out, m.String())
		m, _ = re.FindNextMatch(m)
	}
	return out
}

func (a *AbbreviationReplacer) scanForReplacements(txt, am string, ind int, charArray []string, stripped string) string {
	var char string
	if ind < len(charArray) {
		char = charArray[ind]
	}
	upper := char != "" && unicode.IsUpper([]rune(char)[0])
	amLower := strings.ToLower(strings.TrimSpace(am))

	if !upper || a.data.IsPrepositive(amLower) || a.profile.AbbreviationAlwaysMask {
		escaped := regexp2.Escape(strings.TrimSpace(am))
		switch {
		case a.profile.AbbreviationAlwaysMask:
			return replaceWithEscape(txt, escaped, `\.`, core.SentinelPeriod)
		case a.data.IsPrepositive(amLower):
			return replaceWithEscape(txt, escaped, `\.(?=(\s|:\d+))`, core.SentinelPeriod)
		case a.data.IsNumberAbbr(amLower):
			return replaceWithEscape(txt, escaped, `\.(?=(\s\d|\s+\())`, core.SentinelPeriod)
		default:
			return a.replacePeriodOfAbbr(txt, am, escaped)
		}
	}
	return txt
}

func replaceWithEscape(txt, escaped, suffixPattern, replacement string) string {
	txt = " " + txt
	re := regexp2.MustCompile(`(?<=\s`+escaped+`)`+suffixPattern, regexp2.None)
	out, err := re.Replace(txt, replacement, -1, -1)
	if err != nil {
		return txt[1:]
	}
	return out[1:]
}

func (a *AbbreviationReplacer) replacePeriodOfAbbr(txt, abbr, escaped string) string {
	txt = " " + txt
	followSet := a.profile.AbbreviationPeriodFollowSet
	pattern := `(?<=\s` + escaped + `)\.(?=((\.|\:|-|\?|,)|(\s([a-z]|I\s|I'm|I'll|\d|\())` + followOr(followSet) + `))`
	re := regexp2.MustCompile(pattern, regexp2.None)
	out, err := re.Replace(txt, core.SentinelPeriod, -1, -1)
	if err != nil {
		return txt[1:]
	}
	return out[1:]
}

func followOr(extra string) string {
	if extra == "" {
		return ""
	}
	return `|(?=` + extra + `)`
}
