package sentencesplit

import (
	"testing"

	"github.com/opensbd/sentencesplit/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSegmenterRejectsUnknownLanguage(t *testing.T) {
	_, err := NewSegmenter("xx")
	require.Error(t, err)
	var cfgErr ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestNewSegmenterRejectsCleanAndCharSpanTogether(t *testing.T) {
	_, err := NewSegmenter("en", WithClean(true), WithCharSpan(true))
	require.Error(t, err)
	var cfgErr ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestNewSegmenterRejectsPdfWithoutClean(t *testing.T) {
	_, err := NewSegmenter("en", WithDocType("pdf"))
	require.Error(t, err)
	var cfgErr ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestNewSegmenterAcceptsPdfWithClean(t *testing.T) {
	_, err := NewSegmenter("en", WithDocType("pdf"), WithClean(true))
	require.NoError(t, err)
}

func TestSegmentEmptyTextReturnsNil(t *testing.T) {
	s, err := NewSegmenter("en")
	require.NoError(t, err)
	got, err := s.Segment("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSegmentSplitsTwoPlainSentences(t *testing.T) {
	s, err := NewSegmenter("en")
	require.NoError(t, err)

	got, err := s.Segment("Hello world. How are you?")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello world. ", "How are you?"}, got)
}

func TestSegmentCleanSplitsTwoPlainSentencesWithoutTrailingSpace(t *testing.T) {
	s, err := NewSegmenter("en", WithClean(true))
	require.NoError(t, err)

	got, err := s.Segment("Hello world. How are you?")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello world.", "How are you?"}, got)
}

func TestSegmentSpansCoverOriginalTextContiguously(t *testing.T) {
	s, err := NewSegmenter("en")
	require.NoError(t, err)

	text := "Hello world. How are you?"
	spans, err := s.SegmentSpans(text)
	require.NoError(t, err)
	require.Len(t, spans, 2)

	runes := []rune(text)
	assert.Equal(t, 0, spans[0].Start)
	for i := 1; i < len(spans); i++ {
		assert.Equal(t, spans[i-1].End, spans[i].Start, "consecutive spans must tile with no gap or overlap")
	}
	assert.Equal(t, len(runes), spans[len(spans)-1].End, "the last span must reach the end of the original text")

	for _, sp := range spans {
		assert.Equal(t, string(runes[sp.Start:sp.End]), sp.Sent, "span text must match the original text slice exactly")
	}
}

func TestSegmentSpansRejectedWhenSegmenterBuiltWithClean(t *testing.T) {
	s, err := NewSegmenter("en", WithClean(true))
	require.NoError(t, err)

	_, err = s.SegmentSpans("Hello world. How are you?")
	require.Error(t, err)
	var cfgErr ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestSegmentCleanReturnsSameResultRegardlessOfSegmenterCleanSetting(t *testing.T) {
	raw, err := NewSegmenter("en")
	require.NoError(t, err)
	clean, err := NewSegmenter("en", WithClean(true))
	require.NoError(t, err)

	text := "Hello world. How are you?"
	fromRaw, err := raw.SegmentClean(text)
	require.NoError(t, err)
	fromClean, err := clean.SegmentClean(text)
	require.NoError(t, err)
	assert.Equal(t, fromClean, fromRaw)
}

func TestSegmentSupportsEveryRegisteredLanguageWithoutError(t *testing.T) {
	for _, code := range lang.SupportedLanguages() {
		t.Run(code, func(t *testing.T) {
			s, err := NewSegmenter(code)
			require.NoError(t, err)
			_, err = s.Segment("This is a short test sentence.")
			require.NoError(t, err)
		})
	}
}
