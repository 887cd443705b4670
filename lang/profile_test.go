package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbbreviationDataBuildsOnce(t *testing.T) {
	p, err := GetProfile("en")
	require.NoError(t, err)

	d1 := p.AbbreviationData()
	d2 := p.AbbreviationData()
	assert.Same(t, d1, d2, "AbbreviationData must be built exactly once per profile")
}

func TestAbbreviationDataSearchFindsSeededAbbreviation(t *testing.T) {
	p, err := GetProfile("en")
	require.NoError(t, err)

	data := p.AbbreviationData()
	require.NotEmpty(t, data.Entries(), "english profile must seed at least one abbreviation")

	entry := data.Entries()[0]
	lowered := stringsToLower("the " + entry.Stripped() + " said hello")
	indices := data.Search(lowered)
	assert.NotEmpty(t, indices, "searching text containing a known abbreviation must return at least one match")
}

func TestAbbreviationDataPrepositiveLookup(t *testing.T) {
	p, err := GetProfile("en")
	require.NoError(t, err)

	data := p.AbbreviationData()
	for _, prep := range p.Abbreviation.Prepositive {
		assert.True(t, data.IsPrepositive(stringsToLower(prep)), "expected %q to be registered as prepositive", prep)
	}
}

func TestEveryProfileHasNonEmptyCore(t *testing.T) {
	for _, code := range SupportedLanguages() {
		p, err := GetProfile(code)
		require.NoError(t, err)
		assert.NotEmpty(t, p.Punctuations, "profile %q must declare sentence punctuation", code)
		assert.NotNil(t, p.Regexes.SentenceBoundary, "profile %q must have a compiled sentence boundary regex", code)
	}
}
