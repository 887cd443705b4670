package lang

// Armenian, grounded on original_source/sentencesplit/lang/armenian.py:
// the Armenian full stop ։ (U+0589) and exclamation ՜ join ':' as terminal
// punctuation.
func newArmenian() *Profile {
	return newMinimalProfile("hy", `.*?[։՜:]|.*?$`, []string{"։", "՜", ":"})
}
