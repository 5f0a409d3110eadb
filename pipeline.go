// Package apirec provides a framework for reproducible evaluation of API
// recommendation runs against benchmark datasets.
package apirec

import (
	"github.com/hscells/apirec/dataset"
	"github.com/hscells/apirec/eval"
	"github.com/hscells/apirec/output"
	"github.com/pkg/errors"
	"log"
	"os"
)

// Pipeline contains all the information for executing an evaluation: the
// dataset supplying ground-truth answers, a ranked candidate list per topic
// in dataset order, the cutoffs to compute the @k measures at, and how the
// results should be formatted.
type Pipeline struct {
	Dataset              *dataset.Dataset
	Candidates           [][]string
	Cutoffs              []int
	EvaluationFormatters []output.EvaluationFormatter

	// QrelsPath, when set, is where exact-match qrels for the dataset are
	// written so the same run can be scored with trec_eval.
	QrelsPath string
}

// Result is the output of an apirec pipeline.
type Result struct {
	// Measures is the raw measure name to values mapping.
	Measures map[string][]float64
	// Evaluations holds one formatted rendering of Measures per formatter.
	Evaluations []string
}

// Execute runs the pipeline.
func (p Pipeline) Execute() (*Result, error) {
	if p.Dataset == nil {
		return nil, errors.New("pipeline has no dataset")
	}
	if len(p.Candidates) != p.Dataset.Len() {
		return nil, errors.Errorf("pipeline has candidates for %d topics but dataset %s has %d", len(p.Candidates), p.Dataset.Name, p.Dataset.Len())
	}

	log.Printf("evaluating %d topics against %s", len(p.Candidates), p.Dataset.Name)
	set, err := eval.New(p.Candidates, p.Dataset.Answers())
	if err != nil {
		return nil, errors.Wrap(err, "could not construct the evaluation set")
	}

	result := &Result{
		Measures: set.Evaluate(p.Cutoffs),
	}
	for _, formatter := range p.EvaluationFormatters {
		formatted, err := formatter(result.Measures)
		if err != nil {
			return nil, errors.Wrap(err, "could not format evaluation results")
		}
		result.Evaluations = append(result.Evaluations, formatted)
	}

	if len(p.QrelsPath) > 0 {
		f, err := os.Create(p.QrelsPath)
		if err != nil {
			return nil, errors.Wrapf(err, "could not create qrels file %s", p.QrelsPath)
		}
		defer f.Close()
		if err := output.WriteQrels(f, output.Qrels(p.Dataset)); err != nil {
			return nil, errors.Wrapf(err, "could not write qrels file %s", p.QrelsPath)
		}
		log.Printf("wrote qrels for %s to %s", p.Dataset.Name, p.QrelsPath)
	}

	return result, nil
}
