package core

import "fmt"

// TextSpan is a sentence together with its start and end character offsets
// in the original, pre-segmentation text.
type TextSpan struct {
	Sent  string
	Start int
	End   int
}

func (s TextSpan) String() string {
	return fmt.Sprintf("TextSpan(sent=%q, start=%d, end=%d)", s.Sent, s.Start, s.End)
}
