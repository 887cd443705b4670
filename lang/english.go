package lang

// English, grounded on original_source/sentencesplit/lang/english.py: the
// Common+Standard defaults plus a fixed sentence-starter list used by
// AbbreviationReplacer.replace_abbreviation_as_sentence_boundary.
func newEnglish() *Profile {
	p := newLatinProfile("en")
	p.SentenceStarters = []string{
		"A", "Being", "Did", "For", "He", "How", "However", "I", "In", "It",
		"Millions", "More", "She", "That", "The", "There", "They", "We",
		"What", "When", "Where", "Who", "Why",
	}
	return p
}
