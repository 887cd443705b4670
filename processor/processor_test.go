package processor

import (
	"testing"

	"github.com/opensbd/sentencesplit/core"
	"github.com/opensbd/sentencesplit/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func englishProfile(t *testing.T) *lang.Profile {
	t.Helper()
	p, err := lang.GetProfile("en")
	require.NoError(t, err)
	return p
}

func TestProcessSplitsTwoPlainSentences(t *testing.T) {
	p := New("Hello world. How are you?", englishProfile(t))
	got := p.Process()
	assert.Equal(t, []string{"Hello world.", "How are you?"}, got)
}

func TestProcessReturnsNilForEmptyInput(t *testing.T) {
	p := New("", englishProfile(t))
	assert.Nil(t, p.Process())
}

func TestProcessDoesNotSplitOnMaskedAbbreviation(t *testing.T) {
	p := New("Dr. Smith arrived. He was late.", englishProfile(t))
	got := p.Process()
	require.Len(t, got, 2)
	assert.Equal(t, "Dr. Smith arrived.", got[0])
	assert.Equal(t, "He was late.", got[1])
}

func TestMergeOrphansAppendsShortTrailingFragmentToPreviousSentence(t *testing.T) {
	got := mergeOrphans([]string{"Hello world.", "etc."})
	require.Len(t, got, 1)
	assert.Equal(t, "Hello world. etc.", got[0])
}

func TestMergeOrphansKeepsOrdinarySentencesSeparate(t *testing.T) {
	got := mergeOrphans([]string{"Hello world.", "How are you?"})
	assert.Equal(t, []string{"Hello world.", "How are you?"}, got)
}

func TestMergeOrphansMergesLoneClosingQuote(t *testing.T) {
	// Both the lone quote and the short lowercase-starting tail are orphans,
	// so everything folds back into the first real sentence.
	got := mergeOrphans([]string{`She said "hi`, `"`, "and left."})
	require.Len(t, got, 1)
	assert.Equal(t, `She said "hi " and left.`, got[0])
}

func TestMergeOrphansNeverMergesTheFirstSentence(t *testing.T) {
	got := mergeOrphans([]string{"."})
	assert.Equal(t, []string{"."}, got)
}

func TestPostProcessSegmentsReturnsPureAlphaSegmentUnchanged(t *testing.T) {
	p := New("", englishProfile(t))
	got := p.postProcessSegments("abc")
	assert.Equal(t, []string{"abc"}, got)
}

func TestPostProcessSegmentsTrimsWhitespace(t *testing.T) {
	p := New("", englishProfile(t))
	got := p.postProcessSegments("  Hello world.  ")
	assert.Equal(t, []string{"Hello world."}, got)
}

func TestPostProcessSegmentsDropsEmptyResult(t *testing.T) {
	p := New("", englishProfile(t))
	got := p.postProcessSegments("   ")
	assert.Nil(t, got)
}

func TestCheckForPunctuationPassesThroughSegmentWithoutTerminalPunctuation(t *testing.T) {
	p := New("", englishProfile(t))
	got := p.checkForPunctuation("no terminal punctuation here")
	assert.Equal(t, []string{"no terminal punctuation here"}, got)
}

func TestSentenceBoundaryPunctuationSplitsOnTerminalPunctuation(t *testing.T) {
	p := New("", englishProfile(t))
	got := p.sentenceBoundaryPunctuation("Hello world. How are you?")
	assert.Equal(t, []string{"Hello world.", "How are you?"}, got)
}

func TestSubSymbolsFastRestoresMaskedPeriod(t *testing.T) {
	p := New("", englishProfile(t))
	got := p.subSymbolsFast("e" + core.SentinelPeriod + "g" + core.SentinelPeriod)
	assert.Equal(t, "e.g.", got)
}

func TestLastCharInDetectsTerminalPunctuation(t *testing.T) {
	assert.True(t, lastCharIn("Hello?", englishProfile(t).Punctuations))
	assert.False(t, lastCharIn("Hello", englishProfile(t).Punctuations))
}

func TestStartsUpperAndHasAlnum(t *testing.T) {
	assert.True(t, startsUpper("Hello"))
	assert.False(t, startsUpper("hello"))
	assert.False(t, startsUpper(""))
	assert.True(t, hasAlnum("a1"))
	assert.False(t, hasAlnum("..."))
}

func TestRmEmptyDropsOnlyEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, rmEmpty([]string{"a", "", "b", ""}))
}
