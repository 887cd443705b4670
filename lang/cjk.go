package lang

import "github.com/opensbd/sentencesplit/core"

// CJK boundary defaults for scripts with no Latin-style uppercase sentence
// starters, grounded on original_source/sentencesplit/lang/common/cjk.py's
// CJKBoundaryProfile.
const (
	cjkSentenceEnd = `[。．.！!?？]`
	cjkClosers     = `["'“”’」』》〉】）〕〗〙〛]`
)

// CJKSentenceBoundaryPattern is shared by the Chinese and Japanese
// profiles, which both fall back to a closer-aware boundary match instead
// of requiring a following Latin capital.
var CJKSentenceBoundaryPattern = `\S[^\n。．.！!?？]*` + cjkSentenceEnd + cjkClosers + `*|.+$`

// CJKQuotationAtEndOfSentencePattern and CJKSplitSpaceQuotationAtEndOfSentencePattern
// replace the Latin-capital-requiring defaults for zh/ja, passed to
// NewCommonRegexesWithQuotation so the closing-quote re-split in
// postProcessSegments fires without needing a following Latin capital.
var CJKQuotationAtEndOfSentencePattern = cjkSentenceEnd + cjkClosers + `\s+[^\s]`

var CJKSplitSpaceQuotationAtEndOfSentencePattern = `(?<=` + cjkSentenceEnd + cjkClosers + `)\s+(?=[^\s])`

// BuildCjkAbbreviationRules masks a period between two Latin letters that
// form part of a Latin-script initialism embedded in CJK text, grounded on
// Chinese.CjkAbbreviationRules / Japanese.CjkAbbreviationRules. cjkRange is
// the language-specific Unicode range that follows the initialism (Chinese
// ideographs only for zh; hiragana/katakana/kanji for ja).
func BuildCjkAbbreviationRules(cjkRange string) core.RuleGroup {
	return core.RuleGroup{
		Name: "CjkAbbreviationRules",
		All: []core.Rule{
			core.MustRule(`(?<=[A-Za-z])\.(?=[A-Za-z]\.)`, core.SentinelPeriod),
			core.MustRule(`(?<=[A-Za-z]`+core.SentinelPeriod+`[A-Za-z])\.(?=`+cjkRange+`)`, core.SentinelPeriod),
		},
	}
}

const (
	chineseCjkRange  = `[\x{4e00}-\x{9fff}]`
	japaneseCjkRange = `[\x{3040}-\x{30ff}\x{4e00}-\x{9fff}]`
)
