// Package sentencesplit segments text into sentences: a deterministic,
// rule-based, model-free engine for ~25 languages. Ported from
// original_source/pysbd/segmenter.py.
package sentencesplit

import (
	"unicode"

	"github.com/opensbd/sentencesplit/core"
	"github.com/opensbd/sentencesplit/lang"
	"github.com/opensbd/sentencesplit/processor"
	"github.com/opensbd/sentencesplit/stages"
)

// Segmenter segments text into sentences according to its language profile
// and configuration. Build one with NewSegmenter and reuse it: a Segmenter
// holds no per-call mutable state and is safe for concurrent use once
// constructed, since its language profile is built once and never mutated.
type Segmenter struct {
	language string
	profile  *lang.Profile

	clean    bool
	docType  string
	charSpan bool
}

// NewSegmenter builds a Segmenter for the given ISO 639-1 language code.
// Returns a ConfigurationError for an unknown code or an incompatible
// combination of options, grounded on Segmenter.__init__'s validation.
func NewSegmenter(language string, opts ...Option) (*Segmenter, error) {
	s := &Segmenter{language: language}
	for _, opt := range opts {
		opt(s)
	}

	profile, err := lang.GetProfile(language)
	if err != nil {
		return nil, ConfigurationError{Message: "unsupported language", Details: err.Error()}
	}
	s.profile = profile

	if s.clean && s.charSpan {
		return nil, ConfigurationError{
			Message: "char_span must be false if clean is true",
			Details: "clean=true rewrites the original text, so character offsets can no longer refer back to it",
		}
	}
	if s.docType == "pdf" && !s.clean {
		return nil, ConfigurationError{
			Message: "doc_type=\"pdf\" requires clean=true",
			Details: "char_span is also unavailable with doc_type=\"pdf\" since the original text is rewritten",
		}
	}
	return s, nil
}

func (s *Segmenter) cleanText(text string) string {
	return stages.NewCleaner(text, s.profile, s.docType).Clean()
}

func (s *Segmenter) process(text string) []string {
	return processor.New(text, s.profile).Process()
}

// Segment splits text into sentences. With WithClean(true), the returned
// sentences are the rewritten, destructive form. Otherwise each sentence is
// recovered verbatim (including trailing whitespace) from the original
// text.
func (s *Segmenter) Segment(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	original := text
	if s.clean || s.docType == "pdf" {
		text = s.cleanText(text)
	}
	sents := s.process(text)

	if s.clean {
		return sents, nil
	}
	spans := matchSpans(sents, original)
	out := make([]string, len(spans))
	for i, sp := range spans {
		out[i] = sp.Sent
	}
	return out, nil
}

// SegmentSpans returns each sentence together with its start/end character
// offset in text, regardless of this Segmenter's own WithCharSpan setting
// (mirroring segment_spans() forcing char_span=True internally). Returns a
// ConfigurationError if this Segmenter was built with WithClean(true).
func (s *Segmenter) SegmentSpans(text string) ([]core.TextSpan, error) {
	if s.clean {
		return nil, ConfigurationError{
			Message: "SegmentSpans requires a Segmenter built without WithClean(true)",
			Details: "cleaning rewrites the text that character offsets would refer to",
		}
	}
	if text == "" {
		return nil, nil
	}
	sents := s.process(text)
	return matchSpans(sents, text), nil
}

// SegmentClean returns cleaned, destructive sentences regardless of this
// Segmenter's own WithClean setting, mirroring segment_clean().
func (s *Segmenter) SegmentClean(text string) ([]string, error) {
	cleanSeg, err := NewSegmenter(s.language, WithClean(true), WithDocType(s.docType))
	if err != nil {
		return nil, err
	}
	return cleanSeg.Segment(text)
}

// matchSpans recovers each processed sentence's character span in the
// original text, absorbing any trailing whitespace the boundary regex
// didn't capture so segmentation stays non-destructive. Grounded on
// Segmenter._match_spans. Offsets are counted in runes, not bytes, so they
// stay meaningful for every script this engine supports.
func matchSpans(sentences []string, original string) []core.TextSpan {
	runes := []rune(original)
	var spans []core.TextSpan
	priorEnd := 0
	for _, sent := range sentences {
		if sent == "" {
			continue
		}
		sentRunes := []rune(sent)
		idx := runeIndexFrom(runes, sentRunes, priorEnd)
		if idx == -1 {
			idx = runeIndexFrom(runes, sentRunes, 0)
			if idx == -1 || idx < priorEnd {
				continue
			}
		}
		end := idx + len(sentRunes)
		for end < len(runes) && unicode.IsSpace(runes[end]) {
			end++
		}
		spans = append(spans, core.TextSpan{Sent: string(runes[idx:end]), Start: idx, End: end})
		priorEnd = end
	}
	return spans
}

func runeIndexFrom(haystack, needle []rune, from int) int {
	n := len(needle)
	if n == 0 {
		return from
	}
	if from < 0 {
		from = 0
	}
	for i := from; i+n <= len(haystack); i++ {
		match := true
		for j := 0; j < n; j++ {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
