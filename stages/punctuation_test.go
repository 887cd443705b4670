package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplacePunctuationMasksAllForms(t *testing.T) {
	got := replacePunctuation("a.b!c?d。e．f！g？", false)
	assert.Equal(t, "a⨯b&ᓴ&c&ᓷ&d&ᓰ&e&ᓱ&f&ᓳ&g&ᓸ&", got)
}

func TestReplacePunctuationMasksApostropheByDefault(t *testing.T) {
	got := replacePunctuation("it's.", false)
	assert.Equal(t, "it&⎋&s⨯", got)
}

func TestReplacePunctuationKeepsApostropheWhenRequested(t *testing.T) {
	got := replacePunctuation("it's.", true)
	assert.Equal(t, "it's⨯", got)
}

func TestReplacePunctuationEscapesParensAroundMetacharacters(t *testing.T) {
	// Parens/brackets/hyphens in the matched text must round-trip
	// unchanged even though replacePunctuation escapes and unescapes them
	// internally to protect the literal-replace pass.
	got := replacePunctuation("(see fig. 1-2)!", false)
	assert.Equal(t, "(see fig⨯ 1-2)&ᓴ&", got)
}

func TestNeedsEscapeDetectsOnlyListedCharacters(t *testing.T) {
	assert.True(t, needsEscape("(x)"))
	assert.True(t, needsEscape("[x]"))
	assert.True(t, needsEscape("a-b"))
	assert.False(t, needsEscape("plain text."))
}
