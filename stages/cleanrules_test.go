package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLineInMiddleOfWordRuleRejoinsHyphenWrap(t *testing.T) {
	assert.Equal(t, "example", NewLineInMiddleOfWordRule.Apply("exam-\nple"))
}

func TestDoubleNewLineRuleCollapsesParagraphBreak(t *testing.T) {
	assert.Equal(t, "a\rb", DoubleNewLineRule.Apply("a\n\n\nb"))
}

func TestDoubleNewLineWithSpaceRuleCollapsesBlankLine(t *testing.T) {
	assert.Equal(t, "a\rb", DoubleNewLineWithSpaceRule.Apply("a\n   \nb"))
}

func TestPDFNewLineInMiddleOfSentenceRuleJoinsWrappedLine(t *testing.T) {
	assert.Equal(t, "hello, world", PDFNewLineInMiddleOfSentenceRule.Apply("hello,\nworld"))
}

func TestEscapedNewLineRuleNormalizesLiteralBackslashN(t *testing.T) {
	assert.Equal(t, "a\rb", EscapedNewLineRule.Apply(`a\nb`))
}

func TestInlineFormattingRuleStripsMarkdownEmphasis(t *testing.T) {
	assert.Equal(t, "This is bold text.", InlineFormattingRule.Apply("This is **bold** text."))
}

func TestQuotationsRulesNormalizeCurlyQuotes(t *testing.T) {
	got := QuotationsFirstRule.Apply("it’s")
	assert.Equal(t, "it's", got)

	got2 := QuotationsSecondRule.Apply("“hello”")
	assert.Equal(t, `"hello"`, got2)
}

func TestTableOfContentsRuleCollapsesDotLeaders(t *testing.T) {
	got := TableOfContentsRule.Apply("Chapter 1 .......... 12")
	assert.Equal(t, "Chapter 1   12", got)
}

func TestConsecutivePeriodsRuleNormalizesToEllipsis(t *testing.T) {
	assert.Equal(t, "wait...", ConsecutivePeriodsRule.Apply("wait....."))
}

func TestConsecutiveForwardSlashRuleCollapsesSlashes(t *testing.T) {
	assert.Equal(t, "a/b", ConsecutiveForwardSlashRule.Apply("a////b"))
}

func TestNoSpaceBetweenSentencesRegexDetectsMissingSpace(t *testing.T) {
	assert.True(t, NoSpaceBetweenSentencesRegex.MatchString("wrong.Next"))
	assert.False(t, NoSpaceBetweenSentencesRegex.MatchString("wrong. Next"))
}

func TestNoSpaceBetweenSentencesDigitRegexDetectsMissingSpace(t *testing.T) {
	assert.True(t, NoSpaceBetweenSentencesDigitRegex.MatchString("page12The"))
	assert.False(t, NoSpaceBetweenSentencesDigitRegex.MatchString("page 12 The"))
}
