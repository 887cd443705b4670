package lang

// Marathi, grounded on original_source/sentencesplit/lang/marathi.py: a
// plain "[.!?]" boundary, no script-specific terminal punctuation, no
// abbreviation list retained in the source pack.
func newMarathi() *Profile {
	return newMinimalProfile("mr", `.*?[.!?]|.*?$`, []string{".", "!", "?"})
}
