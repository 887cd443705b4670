package stages

import (
	"testing"

	"github.com/opensbd/sentencesplit/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbbreviationReplacerMasksPrepositiveTitle(t *testing.T) {
	profile, err := lang.GetProfile("en")
	require.NoError(t, err)

	got := NewAbbreviationReplacer("Dr. Smith arrived.", profile).Replace()
	assert.Equal(t, "Dr⨯ Smith arrived.", got)
}

func TestAbbreviationReplacerMasksNumberAbbreviation(t *testing.T) {
	profile, err := lang.GetProfile("en")
	require.NoError(t, err)

	got := NewAbbreviationReplacer("See no. 5 on the list.", profile).Replace()
	assert.Equal(t, "See no⨯ 5 on the list.", got)
}

func TestAbbreviationReplacerLeavesOrdinarySentenceAlone(t *testing.T) {
	profile, err := lang.GetProfile("en")
	require.NoError(t, err)

	input := "This sentence has no abbreviation at all."
	got := NewAbbreviationReplacer(input, profile).Replace()
	assert.Equal(t, input, got)
}
