package lang

// Burmese, grounded on original_source/sentencesplit/lang/burmese.py: the
// Myanmar sentence markers ။ and ၏ join '!'/'?' as terminal punctuation.
func newBurmese() *Profile {
	return newMinimalProfile("my", `.*?[။၏!\?]|.*?$`, []string{"။", "၏", "?", "!"})
}
