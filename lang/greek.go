package lang

// Greek, grounded on original_source/sentencesplit/lang/greek.py: the
// Greek question mark is a semicolon (;), which joins '.'/'!'/'?' as
// terminal punctuation.
func newGreek() *Profile {
	return newMinimalProfile("el", `.*?[\.;!\?]|.*?$`, []string{".", "!", ";", "?"})
}
