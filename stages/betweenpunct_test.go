package stages

import (
	"testing"

	"github.com/opensbd/sentencesplit/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetweenPunctuationMasksPeriodInsideParens(t *testing.T) {
	profile, err := lang.GetProfile("en")
	require.NoError(t, err)

	got := NewBetweenPunctuation("see (e.g. the appendix) for details.", profile).Replace()
	assert.Equal(t, "see (e⨯g⨯ the appendix) for details.", got)
}

func TestBetweenPunctuationMasksPeriodInsideDoubleQuotes(t *testing.T) {
	profile, err := lang.GetProfile("en")
	require.NoError(t, err)

	got := NewBetweenPunctuation(`she said "stop. now" and left.`, profile).Replace()
	assert.Equal(t, `she said "stop⨯ now" and left.`, got)
}

func TestBetweenPunctuationLeavesUnquotedPeriodAlone(t *testing.T) {
	profile, err := lang.GetProfile("en")
	require.NoError(t, err)

	got := NewBetweenPunctuation("plain sentence with no quotes.", profile).Replace()
	assert.Equal(t, "plain sentence with no quotes.", got)
}

func TestBetweenPunctuationIgnoresMidWordContractionApostrophe(t *testing.T) {
	profile, err := lang.GetProfile("en")
	require.NoError(t, err)

	// Without the whitespace lookbehind on the single-quote patterns, the
	// contraction apostrophe in "don't" is wrongly treated as an opening
	// quote reaching all the way to the real quote around "really",
	// masking the sentence-ending period after "know" along the way.
	got := NewBetweenPunctuation("I don't know. 'really' exists.", profile).Replace()
	assert.Equal(t, "I don't know. 'really' exists.", got)
}

func TestSubBetweenPairMasksCJKQuotePunctuation(t *testing.T) {
	profile, err := lang.GetProfile("zh")
	require.NoError(t, err)
	bp := NewBetweenPunctuation("", profile)

	got := bp.subBetweenPair("他说《你好。世界》完了", "《", "》")
	assert.NotContains(t, got, "《你好。世界》", "the period between the CJK quote pair must be masked")
}
