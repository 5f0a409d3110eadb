package eval

import (
	"strings"
)

// Separator delimits the segments of an API reference, and is where a
// candidate is truncated when testing for a partial match.
const Separator = "."

// Relevance grades awarded to a candidate against an answer list.
const (
	// NotRelevant indicates the candidate matches no answer.
	NotRelevant = 0
	// PartialMatch indicates the candidate truncated at its final separator
	// occurs as a substring of at least one answer.
	PartialMatch = 1
	// ExactMatch indicates the candidate is a member of the answer list.
	ExactMatch = 2
)

// Relevance grades each candidate in a ranked list against an answer list,
// preserving rank order. A candidate which is an exact member of the answers
// is graded ExactMatch. Otherwise the candidate is truncated at its final
// separator (a candidate with no separator is left whole) and, if the
// truncation is a non-empty substring of any answer, graded PartialMatch.
// Note that the partial test is deliberately substring containment and not a
// structural prefix comparison: "b.c" partially matches the answer "a.b.c.d".
func Relevance(candidates, answers []string) []int {
	rel := make([]int, len(candidates))
	for i, candidate := range candidates {
		rel[i] = grade(candidate, answers)
	}
	return rel
}

func grade(candidate string, answers []string) int {
	for _, answer := range answers {
		if candidate == answer {
			return ExactMatch
		}
	}
	prefix := candidate
	if j := strings.LastIndex(candidate, Separator); j >= 0 {
		prefix = candidate[:j]
	}
	if len(prefix) > 0 {
		for _, answer := range answers {
			if strings.Contains(answer, prefix) {
				return PartialMatch
			}
		}
	}
	return NotRelevant
}
