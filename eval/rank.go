package eval

import (
	"math"
	"sort"
)

// SuccessAtK computes the proportion of topics with at least one exact match
// in the top k candidates. A non-positive k scores 0.
func (s *Set) SuccessAtK(k int) float64 {
	return s.mean(func(i int) float64 {
		rel := s.relevance[i]
		for j := 0; j < k && j < len(rel); j++ {
			if rel[j] == ExactMatch {
				return 1
			}
		}
		return 0
	})
}

// PrecisionAtK computes the mean proportion of the top k candidates which are
// exact matches. A non-positive k scores 0; a k beyond the end of a candidate
// list counts only the candidates present.
func (s *Set) PrecisionAtK(k int) float64 {
	if k <= 0 {
		return 0
	}
	return s.mean(func(i int) float64 {
		return float64(exactIn(s.relevance[i], k)) / float64(k)
	})
}

// RecallAtK computes the mean proportion of each topic's answers found as
// exact matches in the top k candidates. A topic with no answers scores 0.
func (s *Set) RecallAtK(k int) float64 {
	return s.mean(func(i int) float64 {
		if len(s.answers[i]) == 0 {
			return 0
		}
		return float64(exactIn(s.relevance[i], k)) / float64(len(s.answers[i]))
	})
}

// NDCGAtK computes mean normalised discounted cumulative gain at k. Only
// exact matches contribute gain; a partial match is discounted entirely. A
// topic whose ideal ordering carries no gain in the top k scores 0.
func (s *Set) NDCGAtK(k int) float64 {
	return s.mean(func(i int) float64 {
		return ndcg(s.relevance[i], k)
	})
}

// Evaluate computes every measure over a list of cutoffs in one call. MRR,
// BLEU and MAP do not vary with the cutoff and are returned as single-element
// lists; the @k measures are parallel to ks and preserve caller order,
// including duplicate or unsorted cutoffs. Every entry is identical to the
// value returned by the corresponding single-measure method.
func (s *Set) Evaluate(ks []int) map[string][]float64 {
	results := map[string][]float64{
		"MRR":            {s.MRR()},
		"BLEU":           {s.BLEU()},
		"MAP":            {s.MAP()},
		"SuccessRate@ks": make([]float64, 0, len(ks)),
		"Precision@ks":   make([]float64, 0, len(ks)),
		"Recall@ks":      make([]float64, 0, len(ks)),
		"NDCG@ks":        make([]float64, 0, len(ks)),
	}
	for _, k := range ks {
		results["SuccessRate@ks"] = append(results["SuccessRate@ks"], s.SuccessAtK(k))
		results["Precision@ks"] = append(results["Precision@ks"], s.PrecisionAtK(k))
		results["Recall@ks"] = append(results["Recall@ks"], s.RecallAtK(k))
		results["NDCG@ks"] = append(results["NDCG@ks"], s.NDCGAtK(k))
	}
	return results
}

// exactIn counts the exact matches in the first k grades.
func exactIn(rel []int, k int) int {
	var n int
	for j := 0; j < k && j < len(rel); j++ {
		if rel[j] == ExactMatch {
			n++
		}
	}
	return n
}

func ndcg(rel []int, k int) float64 {
	ideal := append([]int{}, rel...)
	sort.Sort(sort.Reverse(sort.IntSlice(ideal)))
	idcg := dcg(ideal, k)
	if idcg == 0 {
		return 0
	}
	return dcg(rel, k) / idcg
}

func dcg(rel []int, k int) float64 {
	var score float64
	for i := 0; i < k && i < len(rel); i++ {
		if rel[i] == ExactMatch {
			score += 1.0 / math.Log2(float64(i)+2)
		}
	}
	return score
}
