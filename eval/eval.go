// Package eval provides evaluation measures for ranked API recommendation
// output, in the style of trec_eval: rank-sensitive measures (MRR, MAP,
// Success, Precision, Recall, nDCG) computed over graded relevance, plus a
// smoothed sentence-level BLEU for generation-style comparison.
package eval

import (
	"github.com/pkg/errors"
	"github.com/xtgo/set"
	"gonum.org/v1/gonum/stat"
	"sort"
)

// Set is an evaluation set: the ranked candidate lists of a system paired with
// the ground-truth answer lists for the same topics. A Set is immutable once
// constructed, so it is safe to read from multiple goroutines. The relevance
// of every candidate, along with MAP and Success@1, is computed once at
// construction.
type Set struct {
	candidates [][]string
	answers    [][]string
	relevance  [][]int

	mapAvg     float64
	successAvg float64
}

// New creates an evaluation set from parallel candidate and answer lists.
// The lists must be the same length, and no per-topic list may contain
// duplicate entries.
func New(candidates, answers [][]string) (*Set, error) {
	if len(candidates) != len(answers) {
		return nil, errors.Errorf("evaluation set has %d candidate lists but %d answer lists", len(candidates), len(answers))
	}
	for i := range candidates {
		if hasDuplicates(candidates[i]) {
			return nil, errors.Errorf("candidate list for topic %d contains duplicate entries", i)
		}
		if hasDuplicates(answers[i]) {
			return nil, errors.Errorf("answer list for topic %d contains duplicate entries", i)
		}
	}

	s := &Set{
		candidates: candidates,
		answers:    answers,
		relevance:  make([][]int, len(candidates)),
	}
	for i := range candidates {
		s.relevance[i] = Relevance(candidates[i], answers[i])
	}
	s.mapAvg = s.mean(func(i int) float64 {
		return averagePrecision(s.relevance[i], len(s.answers[i]))
	})
	s.successAvg = s.mean(func(i int) float64 {
		if len(s.relevance[i]) > 0 && s.relevance[i][0] == ExactMatch {
			return 1
		}
		return 0
	})
	return s, nil
}

// Len returns the number of topics in the set.
func (s *Set) Len() int {
	return len(s.candidates)
}

// RelevanceGrades returns the per-topic relevance grades of every candidate.
// The returned slices are internal to the set and must not be modified.
func (s *Set) RelevanceGrades() [][]int {
	return s.relevance
}

// MRR computes the mean reciprocal rank of the first exact match over all
// topics.
func (s *Set) MRR() float64 {
	return s.mean(func(i int) float64 {
		return reciprocalRank(s.relevance[i])
	})
}

// MAP returns the mean average precision over all topics. The value is
// computed at construction, so repeated calls are free and identical.
func (s *Set) MAP() float64 {
	return s.mapAvg
}

// SuccessAt1 returns the proportion of topics whose top-ranked candidate is
// an exact match. The value is computed at construction, so repeated calls
// are free and identical.
func (s *Set) SuccessAt1() float64 {
	return s.successAvg
}

// mean averages a per-topic value over every topic in the set. An empty set
// has a mean of 0 for every measure.
func (s *Set) mean(f func(i int) float64) float64 {
	if len(s.relevance) == 0 {
		return 0
	}
	values := make([]float64, len(s.relevance))
	for i := range s.relevance {
		values[i] = f(i)
	}
	return stat.Mean(values, nil)
}

func reciprocalRank(rel []int) float64 {
	for i, r := range rel {
		if r == ExactMatch {
			return 1.0 / float64(i+1)
		}
	}
	return 0
}

func averagePrecision(rel []int, numAnswers int) float64 {
	if numAnswers == 0 {
		return 0
	}
	var sum float64
	var relevant int
	for i, r := range rel {
		if r == ExactMatch {
			relevant++
			sum += float64(relevant) / float64(i+1)
		}
	}
	return sum / float64(numAnswers)
}

func hasDuplicates(list []string) bool {
	s := sort.StringSlice(append([]string{}, list...))
	sort.Sort(s)
	return set.Uniq(s) != len(list)
}
