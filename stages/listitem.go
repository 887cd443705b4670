package stages

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/opensbd/sentencesplit/core"
)

// ListItemReplacer finds numbered, lettered, and Roman-numeral list markers
// and rewrites the line breaks between them to carriage returns so the
// boundary regex treats each item as its own segment. Ported from
// original_source/sentencesplit/lists_item_replacer.py.
//
// The scanning itself (finding digit/letter runs, deciding whether
// consecutive matches form a genuine list) uses Go's stdlib regexp: every
// pattern here is a plain lookaround-free alternation that RE2 handles
// natively, so regexp2 buys nothing on this path.
type ListItemReplacer struct {
	text string
}

func NewListItemReplacer(text string) *ListItemReplacer {
	return &ListItemReplacer{text: text}
}

var romanNumerals = strings.Split("i ii iii iv v vi vii viii ix x xi xii xiii xiv xv xvi xvii xviii xix xx", " ")
var latinNumerals = strings.Split("a b c d e f g h i j k l m n o p q r s t u v w x y z", " ")

const (
	alphaWithPeriodsPattern = `(?:^|\A|\s)[a-z](?=\.)`
	alphaWithParensPattern  = `(?:\(|^|\A|\s)[a-z]+(?=\))`
)

var (
	numberedListRe1       = regexp.MustCompile(`(?:\s|^)\d{1,2}(?=\.\s)|(?:\s|^)\d{1,2}(?=\.\))|(?:\s\-|^\-)\d{1,2}(?=\.\s)|(?:\s⁃|^⁃)\d{1,2}(?=\.\s)|(?:s\-|^\-)\d{1,2}(?=\.\))|(?:\s⁃|^⁃)\d{1,2}(?=\.\))`)
	numberedListRe2       = regexp.MustCompile(`(?:\s|^)\d{1,2}\.(?=\s)|(?:\s|^)\d{1,2}\.(?=\))|(?:\s\-|^\-)\d{1,2}\.(?=\s)|(?:\s⁃|^⁃)\d{1,2}\.(?=\s)|(?:\s\-|^\-)\d{1,2}\.(?=\))|(?:\s⁃|^⁃)\d{1,2}\.(?=\))`)
	numberedListParensRe  = regexp.MustCompile(`\d{1,2}(?=\)\s)`)
	extractAlphaParensRe  = regexp.MustCompile(`\([a-z]+(?=\))|(?:^|\A|\s)[a-z]+(?=\))`)
	alphaLettersPeriodsRe = regexp.MustCompile(`(?:^|\A|\s)[a-z]\.`)
	romanInParensRe       = regexp.MustCompile(`\(((?i:m*(?:c[md]|d?c*)(?:x[cl]|l?x*)(?:i[xv]|v?i*)))\)(?=\s[A-Z])`)

	substituteListPeriodRule = core.MustRule(core.SentinelListItemPeriod, core.SentinelPeriod)
	listMarkerRule           = core.MustRule(core.SentinelListItemParen, "")
	spaceBetweenListFirst    = regexp.MustCompile(`\S\S\s(?=\S\s*\d+` + core.SentinelListItemPeriod + `)`)
	spaceBetweenListSecond   = regexp.MustCompile(`\S\S\s(?=\d{1,2}` + core.SentinelListItemPeriod + `)`)
	spaceBetweenListThird    = regexp.MustCompile(`\S\S\s(?=\d{1,2}` + core.SentinelListItemParen + `)`)
)

// AddLineBreak runs every list-detection pass and returns the rewritten
// text, grounded on ListItemReplacer.add_line_break.
func (l *ListItemReplacer) AddLineBreak() string {
	l.formatAlphabeticalLists()
	l.formatRomanNumeralLists()
	l.formatNumberedListWithPeriods()
	l.formatNumberedListWithParens()
	return l.text
}

// ReplaceParens brackets a confirmed Roman-numeral list marker in sentinel
// guards so later quote-detection passes don't mistake the parens for a
// quotation span, grounded on ListItemReplacer.replace_parens.
func ReplaceParens(text string) string {
	return romanInParensRe.ReplaceAllString(text, core.SentinelRomanGuardLeft+"$1"+core.SentinelRomanGuardRight)
}

func (l *ListItemReplacer) formatAlphabeticalLists() {
	l.text = l.iterateAlphabetArray(alphaWithPeriodsPattern, false, false)
	l.text = l.iterateAlphabetArray(alphaWithParensPattern, true, false)
}

func (l *ListItemReplacer) formatRomanNumeralLists() {
	l.text = l.iterateAlphabetArray(alphaWithPeriodsPattern, false, true)
	l.text = l.iterateAlphabetArray(alphaWithParensPattern, true, true)
}

func (l *ListItemReplacer) formatNumberedListWithPeriods() {
	l.scanLists(numberedListRe1, numberedListRe2, core.SentinelListItemPeriod, true)
	l.addLineBreaksForNumberedListWithPeriods()
	l.text = substituteListPeriodRule.Apply(l.text)
}

func (l *ListItemReplacer) formatNumberedListWithParens() {
	l.scanLists(numberedListParensRe, numberedListParensRe, core.SentinelListItemParen, false)
	l.addLineBreaksForNumberedListWithParens()
	l.text = listMarkerRule.Apply(l.text)
}

func (l *ListItemReplacer) addLineBreaksForNumberedListWithPeriods() {
	marker := core.SentinelListItemPeriod
	if strings.Contains(l.text, marker) &&
		!regexp.MustCompile(marker+`.+[\n\r].+`+marker).MatchString(l.text) &&
		!regexp.MustCompile(`for\s\d{1,2}`+marker+`\s[a-z]`).MatchString(l.text) {
		l.text = spaceBetweenListFirst.ReplaceAllString(l.text, "\r")
		l.text = spaceBetweenListSecond.ReplaceAllString(l.text, "\r")
	}
}

func (l *ListItemReplacer) addLineBreaksForNumberedListWithParens() {
	marker := core.SentinelListItemParen
	if strings.Contains(l.text, marker) &&
		!regexp.MustCompile(marker+`.+[\n\r].+`+marker).MatchString(l.text) {
		l.text = spaceBetweenListThird.ReplaceAllString(l.text, "\r")
	}
}

// scanLists finds number runs with regex1, decides whether consecutive
// matches form a genuine ascending list (next item within 200 characters),
// and marks confirmed items via regex2, grounded on
// ListItemReplacer.scan_lists / substitute_found_list_items.
func (l *ListItemReplacer) scanLists(regex1, regex2 *regexp.Regexp, replacement string, strip bool) {
	type hit struct {
		item int
		pos  int
	}
	matches := regex1.FindAllStringIndex(l.text, -1)
	hits := make([]hit, 0, len(matches))
	for _, m := range matches {
		raw := strings.TrimSpace(l.text[m[0]:m[1]])
		raw = strings.Trim(raw, ".)")
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		hits = append(hits, hit{item: n, pos: m[0]})
	}
	for i, h := range hits {
		foundForward := false
		if i < len(hits)-1 {
			next := hits[i+1]
			if h.item+1 == next.item && next.pos-h.pos < 200 {
				l.substituteFoundListItems(regex2, h.item, strip, replacement)
				foundForward = true
			}
		}
		if !foundForward && i > 0 {
			prev := hits[i-1]
			if h.pos-prev.pos < 200 && ((h.item-1 == prev.item) || (h.item == 0 && prev.item == 9) || (h.item == 9 && prev.item == 0)) {
				l.substituteFoundListItems(regex2, h.item, strip, replacement)
			}
		}
	}
}

func (l *ListItemReplacer) substituteFoundListItems(regex *regexp.Regexp, each int, strip bool, replacement string) {
	target := strconv.Itoa(each)
	l.text = regex.ReplaceAllStringFunc(l.text, func(match string) string {
		m := match
		if strip {
			m = strings.TrimSpace(m)
		}
		chomped := m
		if len(m) != 1 {
			chomped = strings.Trim(m, ".])")
		}
		if chomped == target {
			return target + replacement
		}
		return match
	})
}

func (l *ListItemReplacer) iterateAlphabetArray(pattern string, parens, roman bool) string {
	re := regexp.MustCompile(`(?i)` + pattern)
	alphabet := latinNumerals
	if roman {
		alphabet = romanNumerals
	}
	index := make(map[string]int, len(alphabet))
	for i, v := range alphabet {
		index[v] = i
	}
	raw := re.FindAllString(l.text, -1)
	list := make([]string, 0, len(raw))
	for _, v := range raw {
		lv := strings.ToLower(v)
		if _, ok := index[lv]; ok {
			list = append(list, lv)
		}
	}
	for i, each := range list {
		if i == len(list)-1 {
			l.text = l.lastItemReplacement(each, i, alphabet, index, list, parens)
		} else {
			l.text = l.otherItemsReplacement(each, i, alphabet, index, list, parens)
		}
	}
	return l.text
}

func (l *ListItemReplacer) lastItemReplacement(a string, i int, alphabet []string, index map[string]int, list []string, parens bool) string {
	if len(list) == 0 || i == 0 {
		return l.text
	}
	if _, ok := index[list[i-1]]; !ok {
		return l.text
	}
	if _, ok := index[a]; !ok {
		return l.text
	}
	if abs(index[list[i-1]]-index[a]) != 1 {
		return l.text
	}
	return l.replaceCorrectAlphabetList(a, parens)
}

func (l *ListItemReplacer) otherItemsReplacement(a string, i int, alphabet []string, index map[string]int, list []string, parens bool) string {
	if i == 0 || i == len(list)-1 {
		return l.text
	}
	if _, ok := index[list[i-1]]; !ok {
		return l.text
	}
	if _, ok := index[a]; !ok {
		return l.text
	}
	if _, ok := index[list[i+1]]; !ok {
		return l.text
	}
	if index[list[i+1]]-index[a] != 1 && abs(index[list[i-1]]-index[a]) != 1 {
		return l.text
	}
	return l.replaceCorrectAlphabetList(a, parens)
}

func (l *ListItemReplacer) replaceCorrectAlphabetList(a string, parens bool) string {
	if parens {
		return l.replaceAlphabetListParens(a)
	}
	return l.replaceAlphabetList(a)
}

// replaceAlphabetList turns "a. ffegnog b. fgegkl c." into
// "\ra⨯ ffegnog \rb⨯ fgegkl \rc⨯".
func (l *ListItemReplacer) replaceAlphabetList(a string) string {
	return alphaLettersPeriodsRe.ReplaceAllStringFunc(l.text, func(match string) string {
		woPeriod := strings.TrimSuffix(match, ".")
		if strings.ToLower(strings.TrimSpace(woPeriod)) == a {
			return "\r" + strings.TrimSpace(woPeriod) + core.SentinelPeriod
		}
		return match
	})
}

// replaceAlphabetListParens turns "a) ffegnog (b) fgegkl c)" into
// "\ra) ffegnog \r&✂&b) fgegkl \rc)".
func (l *ListItemReplacer) replaceAlphabetListParens(a string) string {
	return extractAlphaParensRe.ReplaceAllStringFunc(l.text, func(match string) string {
		if strings.Contains(match, "(") {
			woParen := strings.TrimPrefix(match, "(")
			if strings.ToLower(woParen) == a {
				return "\r" + core.SentinelRomanGuardLeft + woParen
			}
			return match
		}
		if strings.ToLower(match) == a {
			return "\r" + match
		}
		return match
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
