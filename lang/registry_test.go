package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileKnownLanguages(t *testing.T) {
	for _, code := range SupportedLanguages() {
		t.Run(code, func(t *testing.T) {
			p, err := GetProfile(code)
			require.NoError(t, err)
			require.NotNil(t, p)
			assert.Equal(t, code, p.Code)
		})
	}
}

func TestGetProfileUnknownLanguage(t *testing.T) {
	_, err := GetProfile("xx")
	require.Error(t, err)
	var unknown UnknownLanguageError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "xx", unknown.Code)
}

func TestGetProfileReturnsSameInstance(t *testing.T) {
	// Profiles are built at most once and cached: a second lookup must
	// return the identical pointer, not a freshly rebuilt profile.
	p1, err := GetProfile("en")
	require.NoError(t, err)
	p2, err := GetProfile("en")
	require.NoError(t, err)
	assert.Same(t, p1, p2)
}

func TestSupportedLanguagesCoversTwentyThree(t *testing.T) {
	assert.Len(t, SupportedLanguages(), 23)
}
