package stages

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/opensbd/sentencesplit/core"
	"github.com/opensbd/sentencesplit/lang"
)

// Cleaner prepares raw, possibly markup- or OCR-sourced text for
// segmentation: stripping HTML tags, normalizing line breaks, and unifying
// quotation marks. Ported from original_source/sentencesplit/cleaner.py.
// clean/rules.py, which that file imports its rule table from, was not
// part of the retrieved source pack — the concrete rules live in
// cleanrules.go, authored from the documented pysbd/pragmatic_segmenter
// Cleaner behavior (see DESIGN.md).
type Cleaner struct {
	text    string
	profile *lang.Profile
	docType string
}

// NewCleaner builds a Cleaner for text in the given language profile.
// docType is "pdf" for OCR-sourced text, "" otherwise.
func NewCleaner(text string, profile *lang.Profile, docType string) *Cleaner {
	return &Cleaner{text: text, profile: profile, docType: docType}
}

// Clean runs the full cleaning pipeline and returns the rewritten text.
func (c *Cleaner) Clean() string {
	if c.text == "" {
		return c.text
	}
	c.removeAllNewlines()
	c.replaceDoubleNewlines()
	c.replaceNewlines()
	c.replaceEscapedNewlines()
	c.text = stripHTMLTags(c.text)
	c.replacePunctuationInBrackets()
	c.text = InlineFormattingRule.Apply(c.text)
	c.cleanQuotations()
	c.cleanTableOfContents()
	c.checkForNoSpaceInBetweenSentences()
	c.cleanConsecutiveCharacters()
	if c.profile.CleanOverride != nil {
		c.text = c.profile.CleanOverride(c.text)
	}
	return c.text
}

func (c *Cleaner) removeAllNewlines() {
	c.removeNewlineInMiddleOfSentence()
	c.text = NewLineInMiddleOfWordRule.Apply(c.text)
}

func (c *Cleaner) removeNewlineInMiddleOfSentence() {
	c.text = noPeriodRunRegex.ReplaceAllStringFunc(c.text, func(match string) string {
		return newlineInMiddleOfSentenceRegex.ReplaceAllString(match, "")
	})
}

func (c *Cleaner) replaceDoubleNewlines() {
	c.text = core.ApplyRules(c.text, DoubleNewLineWithSpaceRule, DoubleNewLineRule)
}

func (c *Cleaner) removePDFLineBreaks() {
	c.text = core.ApplyRules(c.text,
		NewLineFollowedByBulletRule,
		PDFNewLineInMiddleOfSentenceRule,
		PDFNewLineInMiddleOfSentenceNoSpacesRule,
	)
}

func (c *Cleaner) replaceNewlines() {
	if c.docType == "pdf" {
		c.removePDFLineBreaks()
	} else {
		c.text = core.ApplyRules(c.text, NewLineFollowedByPeriodRule, ReplaceNewlineWithCarriageReturnRule)
	}
}

func (c *Cleaner) replaceEscapedNewlines() {
	c.text = core.ApplyRules(c.text,
		EscapedNewLineRule,
		EscapedCarriageReturnRule,
		TypoEscapedNewLineRule,
		TypoEscapedCarriageReturnRule,
	)
}

var bracketedRegex = regexp.MustCompile(`\[[^\]]*\]`)

func (c *Cleaner) replacePunctuationInBrackets() {
	c.text = bracketedRegex.ReplaceAllStringFunc(c.text, func(match string) string {
		if strings.Contains(match, "?") {
			return strings.ReplaceAll(match, "?", core.SentinelQuestion)
		}
		return match
	})
}

var backtickRegex = regexp.MustCompile("`")

func (c *Cleaner) cleanQuotations() {
	c.text = backtickRegex.ReplaceAllString(c.text, "'")
	c.text = core.ApplyRules(c.text, QuotationsFirstRule, QuotationsSecondRule)
}

func (c *Cleaner) cleanTableOfContents() {
	c.text = core.ApplyRules(c.text, TableOfContentsRule, ConsecutivePeriodsRule, ConsecutiveForwardSlashRule)
}

func (c *Cleaner) searchForConnectedSentences(word string, regex *regexp.Regexp, rule core.Rule) string {
	if !regex.MatchString(word) {
		return word
	}
	for _, k := range urlEmailKeywords {
		if strings.Contains(word, k) {
			return word
		}
	}
	return rule.Apply(word)
}

func (c *Cleaner) checkForNoSpaceInBetweenSentences() {
	words := strings.Split(c.text, " ")
	for i, word := range words {
		word = c.searchForConnectedSentences(word, NoSpaceBetweenSentencesRegex, NoSpaceBetweenSentencesRule)
		word = c.searchForConnectedSentences(word, NoSpaceBetweenSentencesDigitRegex, NoSpaceBetweenSentencesDigitRule)
		words[i] = word
	}
	c.text = strings.Join(words, " ")
}

func (c *Cleaner) cleanConsecutiveCharacters() {
	c.text = core.ApplyRules(c.text, ConsecutivePeriodsRule, ConsecutiveForwardSlashRule)
}

// noPeriodRunRegex matches a maximal run of characters containing no
// period, the partition Cleaner.remove_newline_in_middle_of_sentence scans
// one chunk at a time.
var noPeriodRunRegex = regexp.MustCompile(`[^.]*`)

// stripHTMLTags removes markup while preserving text content and inserting
// paragraph breaks for block-level tags, using golang.org/x/net/html's
// tokenizer rather than a regex strip (malformed/nested markup is common
// in scraped input and a regex tag-stripper mishandles it silently).
func stripHTMLTags(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	z := html.NewTokenizer(strings.NewReader(text))
	var sb strings.Builder
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "br", "p", "div", "li", "tr":
				sb.WriteString("\n")
			}
		}
	}
}
