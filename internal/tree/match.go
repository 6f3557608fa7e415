package tree

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
)

// FuzzyPrefix switches a search query from substring to fuzzy matching
const FuzzyPrefix = "~"

// Matcher decides whether an item name satisfies a search query
type Matcher struct {
	term  string
	fuzzy bool
}

// NewMatcher parses a search query.
// "~term" matches names containing the letters of term in order;
// anything else is a case-insensitive substring match.
func NewMatcher(query string) Matcher {
	if strings.HasPrefix(query, FuzzyPrefix) {
		return Matcher{term: fold(strings.TrimPrefix(query, FuzzyPrefix)), fuzzy: true}
	}
	return Matcher{term: fold(query)}
}

// Empty reports whether the query selects browse mode
func (m Matcher) Empty() bool {
	return m.term == ""
}

// Match reports whether name satisfies the query
func (m Matcher) Match(name string) bool {
	if m.term == "" {
		return true
	}
	if m.fuzzy {
		return fuzzy.MatchFold(m.term, name)
	}
	return strings.Contains(fold(name), m.term)
}

// fold applies full Unicode case folding; a Caser is stateful so one is made per call
func fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Fold().String(s)
}
