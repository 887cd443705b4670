package stages

import (
	"regexp"

	"github.com/opensbd/sentencesplit/core"
)

// The rule set below reproduces sentencesplit/clean/rules.py, which cleaner.go
// imports but which was not part of the retrieved source pack (see
// DESIGN.md). Authored from the documented behavior of Cleaner's call
// sequence and the pragmatic_segmenter/pysbd family this codebase descends
// from: strip decorative newlines, normalize escaped newline sequences,
// unify quote characters, and collapse runs of table-of-contents dot
// leaders, all ahead of the Processor's sentence-boundary pass.

// NewLineInMiddleOfWordRule rejoins a newline that falls inside a
// hyphenated word wrap ("exam-\nple" -> "example").
var NewLineInMiddleOfWordRule = core.MustRule(`(?<=\w)-\n(?=\w)`, "")

// DoubleNewLineWithSpaceRule and DoubleNewLineRule normalize a paragraph
// break (two or more newlines, optionally separated by blank space) to a
// single carriage return paragraph marker.
var (
	DoubleNewLineWithSpaceRule = core.MustRule(`\n[ \t]*\n+`, "\r")
	DoubleNewLineRule          = core.MustRule(`\n{2,}`, "\r")
)

// NewLineFollowedByBulletRule keeps a newline ahead of a bullet/dash list
// marker from being folded away by the generic newline-to-space rule.
var NewLineFollowedByBulletRule = core.MustRule(`\n(?=\s*[•\-\*⁃]\s)`, "\r")

// pdfNewLineInMiddleOfSentence and its no-space variant rejoin a line break
// PDF text extraction inserted mid-sentence: a lowercase-to-lowercase or
// lowercase-to-uppercase wrap with no terminal punctuation before it.
var (
	PDFNewLineInMiddleOfSentenceRule         = core.MustRule(`(?<=[a-z,;])\n(?=\s*[a-zA-Z])`, " ")
	PDFNewLineInMiddleOfSentenceNoSpacesRule = core.MustRule(`(?<=[a-z])\n(?=[a-z])`, "")
)

// NewLineFollowedByPeriodRule keeps a newline immediately before a period
// from merging into the following sentence.
var NewLineFollowedByPeriodRule = core.MustRule(`\n(?=\s*\.)`, " ")

// ReplaceNewlineWithCarriageReturnRule folds any remaining single newline
// (already handled: paragraph breaks, word wraps, bullets) to a carriage
// return paragraph marker for non-PDF documents.
var ReplaceNewlineWithCarriageReturnRule = core.MustRule(`\n`, "\r")

// Escaped-newline normalization: text that arrived with literal backslash
// escape sequences instead of real control characters.
var (
	EscapedNewLineRule          = core.MustRule(`\\n`, "\r")
	EscapedCarriageReturnRule   = core.MustRule(`\\r`, "\r")
	TypoEscapedNewLineRule      = core.MustRule(`\\\\n`, "\r")
	TypoEscapedCarriageReturnRule = core.MustRule(`\\\\r`, "\r")
)

// InlineFormattingRule strips the lightweight Markdown-style emphasis
// markers (*bold*, _italic_) that a plain-text extraction sometimes
// retains, since they're invisible to sentence structure.
var InlineFormattingRule = core.MustRule(`[*_]{1,2}(\S[^*_]*?\S)[*_]{1,2}`, "$1")

// QuotationsFirstRule and QuotationsSecondRule normalize curly/angled
// quotation marks to their straight-quote sentinel-friendly forms before
// the rest of the pipeline runs.
var (
	QuotationsFirstRule  = core.MustRule(`[\x{2018}\x{2019}]`, "'")
	QuotationsSecondRule = core.MustRule(`[\x{201c}\x{201d}]`, `"`)
)

// TableOfContentsRule collapses a run of dot/dash leaders ("Chapter 1 ....
// 12") down to a single space, since those periods are typographic
// alignment filler, not sentence punctuation.
var TableOfContentsRule = core.MustRule(`[\.\-]{4,}`, " ")

// ConsecutivePeriodsRule and ConsecutiveForwardSlashRule collapse repeated
// literal runs left over after table-of-contents and path-like text
// cleanup.
var (
	ConsecutivePeriodsRule      = core.MustRule(`\.{2,}`, "...")
	ConsecutiveForwardSlashRule = core.MustRule(`/{2,}`, "/")
)

// NoSpaceBetweenSentencesRegex detects a lowercase-period-uppercase run
// with no space ("wrong.Next"), the no-space-between-sentences case
// Cleaner.check_for_no_space_in_between_sentences guards against, applied
// word-by-word and skipped for URL/email-looking words.
var NoSpaceBetweenSentencesRegex = regexp.MustCompile(`[a-z]\.[A-Z]`)
var NoSpaceBetweenSentencesRule = core.MustRule(`(?<=[a-z])\.(?=[A-Z])`, ". ")

// NoSpaceBetweenSentencesDigitRegex/Rule handle the same no-space case
// where the sentence starts with a capital letter followed directly by a
// lowercase run and the join point is a digit-letter boundary instead
// ("page12The").
var NoSpaceBetweenSentencesDigitRegex = regexp.MustCompile(`\d[A-Z][a-z]`)
var NoSpaceBetweenSentencesDigitRule = core.MustRule(`(?<=\d)(?=[A-Z][a-z])`, " ")

// urlEmailKeywords lists substrings that, found in a word being checked for
// a missing sentence space, mean the word is a URL/email/path and must be
// left alone.
var urlEmailKeywords = []string{"http", "https", "www.", "@", "ftp://", "ssh://"}

// newlineInMiddleOfSentenceRegex matches a bare newline that continues a
// sentence rather than starting a new paragraph: followed by optional
// whitespace and a lowercase letter, with nothing upstream marking it as a
// deliberate paragraph break.
var newlineInMiddleOfSentenceRegex = regexp.MustCompile(`\n(?=\s*[a-z])`)
