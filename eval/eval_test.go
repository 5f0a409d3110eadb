package eval_test

import (
	"github.com/hscells/apirec/eval"
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestRelevance(t *testing.T) {
	cases := []struct {
		candidates []string
		answers    []string
		expected   []int
	}{
		// Exact membership.
		{[]string{"a.b.c"}, []string{"a.b.c"}, []int{eval.ExactMatch}},
		// No overlap at all.
		{[]string{"a.b.c"}, []string{"x.y.z"}, []int{eval.NotRelevant}},
		// Truncation "a.b" is a substring of the answer.
		{[]string{"a.b.zzz"}, []string{"a.b.c"}, []int{eval.PartialMatch}},
		// Substring containment, not structural prefix: "b.c" occurs inside
		// the answer "a.b.c.d".
		{[]string{"b.c.x"}, []string{"a.b.c.d"}, []int{eval.PartialMatch}},
		// No separator: the whole candidate is used as the prefix.
		{[]string{"awt"}, []string{"java.awt.List"}, []int{eval.PartialMatch}},
		{[]string{"awt"}, []string{"java.io.File"}, []int{eval.NotRelevant}},
		// Order preserved.
		{[]string{"x.b", "y.c"}, []string{"y.c"}, []int{eval.NotRelevant, eval.ExactMatch}},
	}

	for i, c := range cases {
		rel := eval.Relevance(c.candidates, c.answers)
		if len(rel) != len(c.expected) {
			t.Fatalf("case %d: got %d grades, want %d", i, len(rel), len(c.expected))
		}
		for j := range rel {
			if rel[j] != c.expected[j] {
				t.Errorf("case %d: grade %d = %d, want %d", i, j, rel[j], c.expected[j])
			}
			if rel[j] < eval.NotRelevant || rel[j] > eval.ExactMatch {
				t.Errorf("case %d: grade %d = %d outside the grade range", i, j, rel[j])
			}
		}
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := eval.New([][]string{{"a"}}, [][]string{}); err == nil {
		t.Error("expected an error for mismatched list lengths")
	}
	if _, err := eval.New([][]string{{"a", "a"}}, [][]string{{"b"}}); err == nil {
		t.Error("expected an error for duplicate candidates")
	}
	if _, err := eval.New([][]string{{"a"}}, [][]string{{"b", "b"}}); err == nil {
		t.Error("expected an error for duplicate answers")
	}
	if _, err := eval.New([][]string{{"a"}}, [][]string{{"b"}}); err != nil {
		t.Errorf("unexpected error for a valid set: %v", err)
	}
}

func TestSingleExactMatch(t *testing.T) {
	s, err := eval.New([][]string{{"a.b.c"}}, [][]string{{"a.b.c"}})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(s.MRR(), 1.0) {
		t.Errorf("MRR = %v, want 1.0", s.MRR())
	}
	if !almostEqual(s.SuccessAt1(), 1.0) {
		t.Errorf("Success@1 = %v, want 1.0", s.SuccessAt1())
	}
	if !almostEqual(s.MAP(), 1.0) {
		t.Errorf("MAP = %v, want 1.0", s.MAP())
	}
}

func TestSingleMiss(t *testing.T) {
	s, err := eval.New([][]string{{"a.b.c"}}, [][]string{{"x.y.z"}})
	if err != nil {
		t.Fatal(err)
	}
	if s.MRR() != 0 {
		t.Errorf("MRR = %v, want 0", s.MRR())
	}
	if s.MAP() != 0 {
		t.Errorf("MAP = %v, want 0", s.MAP())
	}
	if s.SuccessAt1() != 0 {
		t.Errorf("Success@1 = %v, want 0", s.SuccessAt1())
	}
}

func TestMatchAtSecondRank(t *testing.T) {
	s, err := eval.New([][]string{{"x.b", "y.c"}}, [][]string{{"y.c"}})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(s.MRR(), 0.5) {
		t.Errorf("MRR = %v, want 0.5", s.MRR())
	}
	if !almostEqual(s.PrecisionAtK(2), 0.5) {
		t.Errorf("Precision@2 = %v, want 0.5", s.PrecisionAtK(2))
	}
	if s.RecallAtK(1) != 0 {
		t.Errorf("Recall@1 = %v, want 0", s.RecallAtK(1))
	}
	if !almostEqual(s.RecallAtK(2), 1.0) {
		t.Errorf("Recall@2 = %v, want 1.0", s.RecallAtK(2))
	}
}

func TestMeanOverTopics(t *testing.T) {
	// One topic fully correct at rank one, one fully wrong.
	s, err := eval.New(
		[][]string{{"a.b.c"}, {"q.r.s"}},
		[][]string{{"a.b.c"}, {"x.y.z"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(s.MRR(), 0.5) {
		t.Errorf("MRR = %v, want 0.5", s.MRR())
	}
	if !almostEqual(s.SuccessAt1(), 0.5) {
		t.Errorf("Success@1 = %v, want 0.5", s.SuccessAt1())
	}
}

func TestEmptySet(t *testing.T) {
	s, err := eval.New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	for name, v := range map[string]float64{
		"MRR":         s.MRR(),
		"MAP":         s.MAP(),
		"Success@1":   s.SuccessAt1(),
		"BLEU":        s.BLEU(),
		"Precision@5": s.PrecisionAtK(5),
		"Recall@5":    s.RecallAtK(5),
		"NDCG@5":      s.NDCGAtK(5),
		"Success@5":   s.SuccessAtK(5),
	} {
		if v != 0 {
			t.Errorf("%s = %v on an empty set, want 0", name, v)
		}
	}
}

func TestCachedMeasuresAreIdentical(t *testing.T) {
	s, err := eval.New(
		[][]string{{"a.b", "c.d", "e.f"}, {"g.h"}},
		[][]string{{"c.d", "e.f"}, {"g.h"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if s.MAP() != s.MAP() {
		t.Error("repeated MAP calls differ")
	}
	if s.SuccessAt1() != s.SuccessAt1() {
		t.Error("repeated Success@1 calls differ")
	}
}

func TestMeasuresAreBounded(t *testing.T) {
	s, err := eval.New(
		[][]string{
			{"java.util.List.add", "java.util.Map.put", "java.io.File.exists"},
			{"org.example.Thing.do"},
			{},
		},
		[][]string{
			{"java.util.Map.put"},
			{"java.util.List.add", "java.util.List.remove"},
			{"java.io.File.exists"},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	values := []float64{s.MRR(), s.MAP(), s.SuccessAt1(), s.BLEU()}
	for k := 0; k <= 5; k++ {
		values = append(values, s.PrecisionAtK(k), s.RecallAtK(k), s.NDCGAtK(k), s.SuccessAtK(k))
	}
	for i, v := range values {
		if v < 0 || v > 1 {
			t.Errorf("measure %d = %v outside [0,1]", i, v)
		}
	}
}
