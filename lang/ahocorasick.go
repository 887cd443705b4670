package lang

// ahoCorasick is a from-scratch Aho-Corasick automaton for multi-pattern
// substring search, ported line-for-line from original_source/
// sentencesplit/abbreviation_replacer.py's AhoCorasickAutomaton. No
// Aho-Corasick library appears anywhere in the retrieval pack (see
// DESIGN.md for the stdlib-only justification), so this hand-implements
// the same goto/fail/output construction the Python version uses to find
// every abbreviation candidate in a single O(len(text)) scan instead of
// testing each abbreviation's regex against every line.
type ahoCorasick struct {
	goTo   []map[rune]int
	fail   []int
	output [][]int
}

func newAhoCorasick() *ahoCorasick {
	return &ahoCorasick{
		goTo:   []map[rune]int{{}},
		fail:   []int{0},
		output: [][]int{nil},
	}
}

func (a *ahoCorasick) addPattern(pattern string, id int) {
	state := 0
	for _, ch := range pattern {
		next, ok := a.goTo[state][ch]
		if !ok {
			next = len(a.goTo)
			a.goTo = append(a.goTo, map[rune]int{})
			a.fail = append(a.fail, 0)
			a.output = append(a.output, nil)
			a.goTo[state][ch] = next
		}
		state = next
	}
	a.output[state] = append(a.output[state], id)
}

func (a *ahoCorasick) build() {
	queue := make([]int, 0, len(a.goTo))
	for _, s := range a.goTo[0] {
		a.fail[s] = 0
		queue = append(queue, s)
	}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for ch, s := range a.goTo[r] {
			queue = append(queue, s)
			state := a.fail[r]
			for state != 0 {
				if _, ok := a.goTo[state][ch]; ok {
					break
				}
				state = a.fail[state]
			}
			next, ok := a.goTo[state][ch]
			if !ok {
				next = 0
			}
			a.fail[s] = next
			if a.fail[s] == s {
				a.fail[s] = 0
			}
			if len(a.output[a.fail[s]]) > 0 {
				a.output[s] = append(append([]int(nil), a.output[s]...), a.output[a.fail[s]]...)
			}
		}
	}
}

// search scans text once and returns the set of matched pattern IDs.
func (a *ahoCorasick) search(text string) map[int]bool {
	state := 0
	found := make(map[int]bool)
	for _, ch := range text {
		for state != 0 {
			if _, ok := a.goTo[state][ch]; ok {
				break
			}
			state = a.fail[state]
		}
		if next, ok := a.goTo[state][ch]; ok {
			state = next
		} else {
			state = 0
		}
		for _, id := range a.output[state] {
			found[id] = true
		}
	}
	return found
}
