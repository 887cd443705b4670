package lang

import (
	"fmt"
	"sync"
)

// UnknownLanguageError reports a language code with no registered profile.
// Defined locally (rather than reusing the root package's ConfigurationError)
// to avoid an import cycle: the root sentencesplit package imports lang, not
// the other way around. Segmenter construction wraps this into a
// ConfigurationError at the package boundary.
type UnknownLanguageError struct {
	Code string
}

func (e UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language code %q", e.Code)
}

// constructors mirrors original_source/sentencesplit/languages.py's
// LANGUAGE_CODES table, mapping each ISO code to its profile builder.
// Profiles are built once per code and cached, the same "build at most
// once, never rebuild" guarantee the Python LanguageCodeMapper gives via
// its lazy instance cache.
var constructors = map[string]func() *Profile{
	"en": newEnglish,
	"es": newSpanish,
	"zh": newChinese,
	"ja": newJapanese,
	"ar": newArabic,
	"fa": newPersian,
	"hi": newHindi,
	"mr": newMarathi,
	"ur": newUrdu,
	"hy": newArmenian,
	"my": newBurmese,
	"el": newGreek,
	"am": newAmharic,
	"bg": newBulgarian,
	"ru": newRussian,
	"pl": newPolish,
	"nl": newDutch,
	"da": newDanish,
	"fr": newFrench,
	"it": newItalian,
	"de": newGerman,
	"kk": newKazakh,
	"sk": newSlovak,
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*Profile{}
)

// GetProfile returns the profile for an ISO 639-1 language code, building
// and caching it on first request. Unknown codes return UnknownLanguageError.
func GetProfile(code string) (*Profile, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if p, ok := cache[code]; ok {
		return p, nil
	}
	build, ok := constructors[code]
	if !ok {
		return nil, UnknownLanguageError{Code: code}
	}
	p := build()
	cache[code] = p
	return p, nil
}

// SupportedLanguages lists every registered ISO 639-1 code.
func SupportedLanguages() []string {
	codes := make([]string, 0, len(constructors))
	for code := range constructors {
		codes = append(codes, code)
	}
	return codes
}
