package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAhoCorasickFindsAllPatterns(t *testing.T) {
	a := newAhoCorasick()
	a.addPattern("dr", 0)
	a.addPattern("mr", 1)
	a.addPattern("mrs", 2)
	a.build()

	found := a.search("the mrs and dr were here")
	assert.True(t, found[0], "expected \"dr\" to match")
	assert.True(t, found[1], "expected \"mr\" to match as a substring of \"mrs\"")
	assert.True(t, found[2], "expected \"mrs\" to match")
}

func TestAhoCorasickNoMatches(t *testing.T) {
	a := newAhoCorasick()
	a.addPattern("xyz", 0)
	a.build()

	found := a.search("nothing relevant here")
	assert.Empty(t, found)
}

func TestAhoCorasickOverlappingPatterns(t *testing.T) {
	a := newAhoCorasick()
	a.addPattern("a", 0)
	a.addPattern("ab", 1)
	a.addPattern("bc", 2)
	a.addPattern("abc", 3)
	a.build()

	found := a.search("xabcx")
	for _, id := range []int{0, 1, 2, 3} {
		assert.True(t, found[id], "expected pattern id %d to be found in \"abc\"", id)
	}
}

func TestAhoCorasickEmptyText(t *testing.T) {
	a := newAhoCorasick()
	a.addPattern("foo", 0)
	a.build()

	assert.Empty(t, a.search(""))
}
