package words

import (
	"strings"
	"unicode/utf8"
)

// Reason identifies why a submission was rejected. The zero value means
// the word was accepted.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonTooShort           Reason = "TooShort"
	ReasonAlreadyUsed        Reason = "AlreadyUsed"
	ReasonMissingCombination Reason = "MissingCombination"
	ReasonNotInDictionary    Reason = "NotInDictionary"
)

// Rules configures validation. MinWordLength counts runes; zero disables
// the length check.
type Rules struct {
	MinWordLength int
}

// Validate decides acceptance of word under the active combination and the
// set of words already played this game. Checks run in a fixed order so
// the reported reason is deterministic; acceptance requires all of them.
func Validate(word, combination string, used map[string]struct{}, lex Lexicon, rules Rules) Reason {
	if rules.MinWordLength > 0 && utf8.RuneCountInString(word) < rules.MinWordLength {
		return ReasonTooShort
	}
	if _, ok := used[word]; ok {
		return ReasonAlreadyUsed
	}
	if !strings.Contains(word, combination) {
		return ReasonMissingCombination
	}
	if !lex.Contains(word) {
		return ReasonNotInDictionary
	}
	return ReasonNone
}
