package lexer

import "sort"

// phrase is one entry in the multi-word keyword table: the surface
// spelling to match (case-insensitively) and the token kind it emits.
type phrase struct {
	text string
	kind Kind
}

// keywordPhrases holds every multi-word (and single-word-but-special,
// e.g. terminator-suffixed) keyword surface form. Order does not
// matter here — orderedKeywordPhrases sorts a copy by descending
// length once, at lexer construction, and matchKeywordPhrase walks that
// copy to implement the longest-match rule.
var keywordPhrases = []phrase{
	{"action!", ACTION},
	{"Chal bhai suru kar", ACTION},
	{"paisa vasool", PROGRAM_END},
	{"bas khatam karo", PROGRAM_END},
	{"maan lo", VAR_DECL},
	{"agar kismat rahi", IF},
	{"nahi to", ELSEIF},
	{"jab tak hai jaan", WHILE},
	{"me bahar ja raha hu", BREAK},
	{"dialogue wapas do", RETURN},
	{"ek baat bataun:", PRINT},
}

// orderedKeywordPhrases returns keywordPhrases sorted by descending
// text length, so the greedy scan in matchKeywordPhrase always tries
// the longest candidate first and therefore prefers it whenever a
// shorter keyword is a prefix of a longer one.
func orderedKeywordPhrases() []phrase {
	ordered := make([]phrase, len(keywordPhrases))
	copy(ordered, keywordPhrases)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].text) > len(ordered[j].text)
	})
	return ordered
}

// hasTerminator reports whether a keyword phrase ends in one of the
// special terminator characters ('!' or ':') that make the
// word-boundary check unnecessary: the phrase swallows its own
// terminator, so there is no risk of it being a prefix of a longer
// identifier.
func hasTerminator(text string) bool {
	if text == "" {
		return false
	}
	last := text[len(text)-1]
	return last == '!' || last == ':'
}
