// Package core holds the primitives shared by every stage of the sentence
// boundary pipeline: the compiled regex rule, the sentinel code-point table,
// and the character-span type returned by span-aware segmentation.
package core

import "github.com/dlclark/regexp2"

// Rule is a single compiled regular expression substitution, the smallest
// unit of text rewriting in the pipeline. Every replacer in this module is
// built out of an ordered slice of Rules applied with ApplyRules.
type Rule struct {
	Pattern     string
	Replacement string
	regex       *regexp2.Regexp
}

// NewRule compiles pattern with the given regexp2 options and pairs it with
// replacement. It panics on an invalid pattern, the package-init-time
// regexp.MustCompile convention: rule patterns are compile-time constants,
// so a bad pattern is a programming error.
func NewRule(pattern, replacement string, opts regexp2.RegexOptions) Rule {
	re := regexp2.MustCompile(pattern, opts)
	re.MatchTimeout = 0
	return Rule{Pattern: pattern, Replacement: replacement, regex: re}
}

// MustRule compiles pattern with no special options (the common case).
func MustRule(pattern, replacement string) Rule {
	return NewRule(pattern, replacement, regexp2.None)
}

// Apply runs the rule's substitution over text once.
func (r Rule) Apply(text string) string {
	out, err := r.regex.Replace(text, r.Replacement, -1, -1)
	if err != nil {
		// regexp2 only errors on timeout or catastrophic backtracking guard;
		// neither applies with MatchTimeout disabled, so surface the input
		// unchanged rather than panic mid-pipeline.
		return text
	}
	return out
}

// MatchString reports whether the rule's pattern matches anywhere in text.
func (r Rule) MatchString(text string) bool {
	ok, _ := r.regex.MatchString(text)
	return ok
}

// Regexp exposes the compiled pattern for callers that need FindStringMatch
// semantics beyond a plain substitution (e.g. span recovery).
func (r Rule) Regexp() *regexp2.Regexp {
	return r.regex
}

// ApplyRules folds a sequence of rules over text in order, mirroring
// sentencesplit.utils.apply_rules. Implementations must never reorder this
// sequence: rule order encodes sentinel precedence.
func ApplyRules(text string, rules ...Rule) string {
	for _, r := range rules {
		text = r.Apply(text)
	}
	return text
}

// RuleGroup is a named, ordered collection of rules, matching the Python
// convention of a class exposing an `All` list alongside named members.
type RuleGroup struct {
	Name string
	All  []Rule
}

// Apply runs every rule in the group over text, in order.
func (g RuleGroup) Apply(text string) string {
	return ApplyRules(text, g.All...)
}

// FindAllStrings returns every match of re in text, in order, the regexp2
// equivalent of stdlib's FindAllString.
func FindAllStrings(re *regexp2.Regexp, text string) []string {
	var out []string
	m, _ := re.FindStringMatch(text)
	for m != nil {
		out = append(out, m.String())
		m, _ = re.FindNextMatch(m)
	}
	return out
}

// SplitRegexp splits text at every match of re, the regexp2 equivalent of
// stdlib's regexp.Split(text, -1). Used where the delimiter itself needs a
// lookaround regexp2 can express but RE2 cannot.
func SplitRegexp(re *regexp2.Regexp, text string) []string {
	runes := []rune(text)
	var out []string
	last := 0
	m, _ := re.FindStringMatch(text)
	for m != nil {
		out = append(out, string(runes[last:m.Index]))
		last = m.Index + m.Length
		m, _ = re.FindNextMatch(m)
	}
	out = append(out, string(runes[last:]))
	return out
}

// ReplaceMatchFunc replaces every match of re in text with the result of
// calling f on the matched substring, the Go equivalent of Python's
// re.sub(pattern, callback, text). Positions from regexp2's Match are rune
// offsets, so the scan walks a []rune view of text and reassembles the
// result in a []rune slice.
func ReplaceMatchFunc(re *regexp2.Regexp, text string, f func(match string) string) string {
	runes := []rune(text)
	var sb []rune
	last := 0
	m, _ := re.FindStringMatch(text)
	for m != nil {
		start := m.Index
		length := m.Length
		sb = append(sb, runes[last:start]...)
		sb = append(sb, []rune(f(m.String()))...)
		last = start + length
		m, _ = re.FindNextMatch(m)
	}
	sb = append(sb, runes[last:]...)
	return string(sb)
}
