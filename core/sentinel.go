package core

// Sentinel code points stand in for real punctuation while a rule pass
// decides whether that punctuation marks a sentence boundary. Most
// sentinels are restored by a profile's SubSymbolsTable (see lang.Profile),
// which the Processor applies to each candidate sentence after the boundary
// regex has run. SentinelApostrophe is restored afterwards by
// SubSingleQuoteRule; the list-item markers are folded to SentinelPeriod or
// removed inside the ListItemReplacer.
const (
	// SentinelPeriod replaces a period judged not to end a sentence
	// (abbreviations, decimals, initials, ...). U+2A2F.
	SentinelPeriod = "⨯"

	// SentinelEllipsisOne and SentinelEllipsisTwo temporarily escape the
	// dots of a three-dot-plus-space ellipsis variant during EllipsisRules.
	SentinelEllipsisOne = "ȸ"
	SentinelEllipsisTwo = "ȹ"

	// SentinelExclamation and SentinelQuestion mask a '!' or '?' that
	// occurs inside a protected span (quotes, parens, a known
	// exclamation word) so it is not mistaken for terminal punctuation.
	SentinelExclamation = "&ᓴ&"
	SentinelQuestion    = "&ᓷ&"

	// SentinelExclamationCJK and SentinelQuestionCJK mask the CJK
	// fullwidth forms of '!' and '?'. SentinelExclamationCJK also stands
	// in for the fullwidth '！' per the canonical table.
	SentinelExclamationCJK = "&ᓳ&"
	SentinelQuestionCJK    = "&ᓸ&"

	// SentinelIdeographicFullStop and SentinelFullwidthPeriod mask the
	// CJK ideographic full stop '。' and fullwidth period '．'.
	SentinelIdeographicFullStop = "&ᓰ&"
	SentinelFullwidthPeriod     = "&ᓱ&"

	// SentinelApostrophe masks a '\'' inside a protected quoted span.
	SentinelApostrophe = "&⎋&"

	// SentinelListItemPeriod marks the period following a confirmed list
	// marker before it is folded back to SentinelPeriod.
	SentinelListItemPeriod = "♨"

	// SentinelListItemParen marks a confirmed parenthetical list marker
	// for later removal.
	SentinelListItemParen = "☝"

	// SentinelListLetterPeriod is reserved for alphabetical list letter
	// periods per the canonical table.
	SentinelListLetterPeriod = "☄"

	// SentinelRomanGuardLeft and SentinelRomanGuardRight bracket a
	// confirmed Roman-numeral list marker inside parentheses so later
	// passes do not mistake the parens for a protected quotation span.
	SentinelRomanGuardLeft  = "&✂&"
	SentinelRomanGuardRight = "&⌬&"
)
