// Package output provides different formats of output for evaluation results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
)

// EvaluationFormatter is used in an apirec pipeline to output evaluation
// results. The input is the measure name to values mapping produced by
// eval.Set.Evaluate.
type EvaluationFormatter func(results map[string][]float64) (string, error)

// JsonEvaluationFormatter outputs results in a JSON format.
func JsonEvaluationFormatter(results map[string][]float64) (string, error) {
	v, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CsvEvaluationFormatter outputs results in CSV format, one row per measure
// value: measure, position, value. For the @k measures the position is the
// index into the cutoffs the pipeline was run with.
func CsvEvaluationFormatter(results map[string][]float64) (string, error) {
	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	if err := w.Write([]string{"measure", "position", "value"}); err != nil {
		return "", err
	}
	for _, measure := range measureOrder(results) {
		for i, v := range results[measure] {
			record := []string{measure, strconv.Itoa(i), strconv.FormatFloat(v, 'f', -1, 64)}
			if err := w.Write(record); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

// measureOrder fixes the row order of the known measures so output is stable;
// anything unknown sorts after them in map order.
func measureOrder(results map[string][]float64) []string {
	known := []string{"MRR", "BLEU", "MAP", "SuccessRate@ks", "Precision@ks", "Recall@ks", "NDCG@ks"}
	var order []string
	seen := make(map[string]bool)
	for _, m := range known {
		if _, ok := results[m]; ok {
			order = append(order, m)
			seen[m] = true
		}
	}
	for m := range results {
		if !seen[m] {
			order = append(order, m)
		}
	}
	return order
}
