package stages

import "regexp"

// exclamationWords lists proper nouns whose exclamation point is part of
// the name, not terminal punctuation, grounded on original_source/
// sentencesplit/exclamation_words.py.
var exclamationWords = []string{
	"!Xũ", "!Kung", "ǃʼOǃKung", "!Xuun", "!Kung-Ekoka", "ǃHu", "ǃKhung",
	"ǃKu", "ǃung", "ǃXo", "ǃXû", "ǃXung", "ǃXũ", "!Xun", "Yahoo!", "Y!J", "Yum!",
}

var exclamationWordsRe = compileAlternation(exclamationWords)

func compileAlternation(words []string) *regexp.Regexp {
	pattern := ""
	for i, w := range words {
		if i > 0 {
			pattern += "|"
		}
		pattern += regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(pattern)
}

// ApplyExclamationWordRules masks the exclamation point inside any of the
// known exclamation-bearing proper nouns found in text.
func ApplyExclamationWordRules(text string) string {
	return exclamationWordsRe.ReplaceAllStringFunc(text, func(m string) string { return replacePunctuation(m, false) })
}
