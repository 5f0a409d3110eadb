package eval

import (
	"math"
	"strings"
)

// bleuOrder is the maximum n-gram order scored by BLEU.
const bleuOrder = 4

// BLEU computes the mean smoothed sentence-level BLEU over all topics,
// treating each answer list as the single reference and each candidate list
// as the hypothesis. Identifiers are whole tokens. Higher-order n-gram
// precisions are smoothed additively (one is added to both the numerator and
// denominator, the same policy as nltk's method2 smoothing), so a missing
// bigram overlap does not zero the whole score. A topic with an empty
// candidate list, or with no unigram overlap at all, scores 0.
func (s *Set) BLEU() float64 {
	return s.mean(func(i int) float64 {
		return sentenceBLEU(s.candidates[i], s.answers[i])
	})
}

func sentenceBLEU(hypothesis, reference []string) float64 {
	if len(hypothesis) == 0 {
		return 0
	}
	weight := 1.0 / float64(bleuOrder)
	var logSum float64
	for n := 1; n <= bleuOrder; n++ {
		matches, total := modifiedPrecision(hypothesis, reference, n)
		if n == 1 {
			if matches == 0 {
				return 0
			}
		} else {
			matches++
			total++
		}
		logSum += weight * math.Log(float64(matches)/float64(total))
	}
	return brevityPenalty(len(reference), len(hypothesis)) * math.Exp(logSum)
}

// modifiedPrecision counts clipped n-gram matches between the hypothesis and
// the reference. The total is floored at one so higher-order precisions stay
// defined for hypotheses shorter than n.
func modifiedPrecision(hypothesis, reference []string, n int) (matches, total int) {
	total = len(hypothesis) - n + 1
	if total < 1 {
		total = 1
	}
	ref := ngrams(reference, n)
	for gram, count := range ngrams(hypothesis, n) {
		if clip, ok := ref[gram]; ok {
			if count < clip {
				matches += count
			} else {
				matches += clip
			}
		}
	}
	return
}

func ngrams(tokens []string, n int) map[string]int {
	grams := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		grams[strings.Join(tokens[i:i+n], " ")]++
	}
	return grams
}

func brevityPenalty(refLen, hypLen int) float64 {
	if hypLen >= refLen {
		return 1
	}
	return math.Exp(1 - float64(refLen)/float64(hypLen))
}
