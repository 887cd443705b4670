package lang

// Urdu, grounded on original_source/sentencesplit/lang/urdu.py: the Urdu
// full stop ۔ (U+06D4) and question mark ؟ join '!'/'?' as terminal
// punctuation.
func newUrdu() *Profile {
	return newMinimalProfile("ur", `.*?[۔؟!\?]|.*?$`, []string{"?", "!", "۔", "؟"})
}
