package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextSpanString(t *testing.T) {
	s := TextSpan{Sent: "Hello.", Start: 0, End: 6}
	assert.Equal(t, `TextSpan(sent="Hello.", start=0, end=6)`, s.String())
}
