package sentencesplit

// Option configures a Segmenter at construction time, the idiomatic Go
// rendering of segmenter.py's keyword constructor arguments
// (clean, doc_type, char_span).
type Option func(*Segmenter)

// WithClean enables cleaning (HTML/markup/newline normalization) of the
// input text before segmentation. The returned sentences are destructive:
// they no longer match spans in the original text verbatim.
func WithClean(clean bool) Option {
	return func(s *Segmenter) { s.clean = clean }
}

// WithDocType marks the input as OCR/PDF-extracted text, which forces a
// more aggressive line-break cleanup pass. Set to "pdf"; any other value
// (including the empty default) is treated as plain text.
func WithDocType(docType string) Option {
	return func(s *Segmenter) { s.docType = docType }
}

// WithCharSpan requests that Segment return non-destructive spans tracking
// each sentence's offset in the original text. Incompatible with
// WithClean(true), since cleaning modifies the text the offsets refer to.
func WithCharSpan(charSpan bool) Option {
	return func(s *Segmenter) { s.charSpan = charSpan }
}
