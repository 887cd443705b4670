package stages

import (
	"testing"

	"github.com/opensbd/sentencesplit/core"
	"github.com/opensbd/sentencesplit/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripHTMLTagsInsertsBreaksForBlockTags(t *testing.T) {
	got := stripHTMLTags("<p>Hello</p> <b>world</b>.")
	assert.Equal(t, "\nHello\n world.", got)
}

func TestStripHTMLTagsSkipsWorkWhenNoAngleBracket(t *testing.T) {
	got := stripHTMLTags("plain text, no markup at all.")
	assert.Equal(t, "plain text, no markup at all.", got)
}

func TestReplacePunctuationInBracketsMasksQuestionMark(t *testing.T) {
	profile, err := lang.GetProfile("en")
	require.NoError(t, err)
	c := &Cleaner{text: "what [is this?] really", profile: profile}
	c.replacePunctuationInBrackets()
	assert.Equal(t, "what [is this"+core.SentinelQuestion+"] really", c.text)
}

func TestCheckForNoSpaceInBetweenSentencesInsertsMissingSpace(t *testing.T) {
	profile, err := lang.GetProfile("en")
	require.NoError(t, err)
	c := &Cleaner{text: "He said wrong.Next to me.", profile: profile}
	c.checkForNoSpaceInBetweenSentences()
	assert.Equal(t, "He said wrong. Next to me.", c.text)
}

func TestCheckForNoSpaceInBetweenSentencesSkipsURLs(t *testing.T) {
	profile, err := lang.GetProfile("en")
	require.NoError(t, err)
	input := "Visit http://example.com/page.Details for more."
	c := &Cleaner{text: input, profile: profile}
	c.checkForNoSpaceInBetweenSentences()
	assert.Equal(t, input, c.text, "a URL-looking word must not be split even though it matches the no-space pattern")
}

func TestCleanQuotationsNormalizesBackticksAndCurlyQuotes(t *testing.T) {
	profile, err := lang.GetProfile("en")
	require.NoError(t, err)
	c := &Cleaner{text: "`hello` and ‘world’ and “again”", profile: profile}
	c.cleanQuotations()
	assert.Equal(t, `'hello' and 'world' and "again"`, c.text)
}

func TestCleanHandlesEmptyInput(t *testing.T) {
	profile, err := lang.GetProfile("en")
	require.NoError(t, err)
	c := NewCleaner("", profile, "")
	assert.Equal(t, "", c.Clean())
}
