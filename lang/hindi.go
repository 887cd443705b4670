package lang

// Hindi, grounded on original_source/sentencesplit/lang/hindi.py: a
// Devanagari danda (ред, U+0964 in the source's mis-transliterated form)
// joins '.', '!', '?' as terminal punctuation; no abbreviation list or
// sentence starters were retained in the source pack.
func newHindi() *Profile {
	return newMinimalProfile("hi", `.*?[।|!\?]|.*?$`, []string{"।", "|", ".", "!", "?"})
}
