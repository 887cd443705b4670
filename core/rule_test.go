package core

import (
	"strings"
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRuleApply(t *testing.T) {
	tests := []struct {
		name     string
		rule     Rule
		input    string
		expected string
	}{
		{
			name:     "simple literal substitution",
			rule:     MustRule(`cat`, "dog"),
			input:    "the cat sat",
			expected: "the dog sat",
		},
		{
			name:     "capture group backreference",
			rule:     MustRule(`(\w+)@(\w+)`, "$1 at $2"),
			input:    "user@host",
			expected: "user at host",
		},
		{
			name:     "no match leaves text unchanged",
			rule:     MustRule(`xyz`, "abc"),
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "lookahead requires regexp2",
			rule:     NewRule(`\.(?=\d)`, SentinelPeriod, regexp2.None),
			input:    "3.14 is pi",
			expected: "3" + SentinelPeriod + "14 is pi",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rule.Apply(tt.input))
		})
	}
}

func TestApplyRulesOrderMatters(t *testing.T) {
	// Swapping the order of these two rules changes the result: the second
	// rule only fires on a sentinel the first one installs, so rule order
	// encodes sentinel precedence and must never be reassociated.
	maskPeriod := MustRule(`\.`, SentinelPeriod)
	maskExclaim := MustRule(`(?<=`+SentinelPeriod+`b)!`, SentinelExclamation)

	forward := ApplyRules("a.b!c", maskPeriod, maskExclaim)
	assert.Equal(t, "a"+SentinelPeriod+"b"+SentinelExclamation+"c", forward)

	reversed := ApplyRules("a.b!c", maskExclaim, maskPeriod)
	assert.Equal(t, "a"+SentinelPeriod+"b!c", reversed)
}

func TestRuleGroupApply(t *testing.T) {
	g := RuleGroup{
		Name: "mask-punct",
		All: []Rule{
			MustRule(`\.`, SentinelPeriod),
			MustRule(`!`, SentinelExclamation),
		},
	}
	assert.Equal(t, "a"+SentinelPeriod+"b"+SentinelExclamation, g.Apply("a.b!"))
}

func TestFindAllStrings(t *testing.T) {
	re := regexp2.MustCompile(`\d+`, regexp2.None)
	got := FindAllStrings(re, "a1 b22 c333")
	assert.Equal(t, []string{"1", "22", "333"}, got)
}

func TestFindAllStringsNoMatches(t *testing.T) {
	re := regexp2.MustCompile(`\d+`, regexp2.None)
	assert.Nil(t, FindAllStrings(re, "no digits here"))
}

func TestSplitRegexp(t *testing.T) {
	// Lookahead-based split: only RE2 can't express this, which is the
	// whole reason SplitRegexp exists on top of regexp2.
	re := regexp2.MustCompile(`,(?=\s)`, regexp2.None)
	got := SplitRegexp(re, "a, b, c")
	assert.Equal(t, []string{"a", " b", " c"}, got)
}

func TestReplaceMatchFunc(t *testing.T) {
	re := regexp2.MustCompile(`[a-z]+`, regexp2.None)
	got := ReplaceMatchFunc(re, "Hello World foo", func(m string) string {
		return "[" + m + "]"
	})
	assert.Equal(t, "H[ello] W[orld] [foo]", got)
}

func TestReplaceMatchFuncPreservesRuneOffsets(t *testing.T) {
	// Multi-byte runes before a match must not shift the replacement
	// position: ReplaceMatchFunc walks a []rune view specifically so
	// this holds for every script the engine supports.
	re := regexp2.MustCompile(`X`, regexp2.None)
	got := ReplaceMatchFunc(re, "日本語X語", func(m string) string { return "Y" })
	assert.Equal(t, "日本語Y語", got)
}

// Property: ApplyRules with a rule whose pattern never matches the input
// alphabet is always a no-op, regardless of input.
func TestPropertyApplyRulesNoopWhenPatternAbsent(t *testing.T) {
	noopRule := MustRule(`ZZZQQQ`, "replaced")
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.StringN(0, 15, 40).
			Filter(func(s string) bool { return !strings.Contains(s, "ZZZQQQ") }).
			Draw(rt, "s")
		assert.Equal(rt, s, ApplyRules(s, noopRule))
	})
}
