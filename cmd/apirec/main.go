package main

import (
	"fmt"
	"github.com/alexflint/go-arg"
	"github.com/hscells/apirec"
	"github.com/hscells/apirec/dataset"
	"github.com/hscells/apirec/output"
	"github.com/hscells/trecresults"
	"log"
	"os"
)

var (
	name    = "apirec"
	version = "11.Jan.2021"
	author  = "Harry Scells"
)

type args struct {
	Dataset string `help:"path to the dataset csv containing ground-truth answers" arg:"required,positional"`
	Run     string `help:"path to the trec run file containing ranked candidates" arg:"required,positional"`
	Cutoffs []int  `help:"cutoff to compute the @k measures at (may be specified multiple times)" arg:"-k,separate"`
	Format  string `help:"output format (json or csv)" arg:"-f"`
	Qrels   string `help:"path to write exact-match qrels to" arg:"-q"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
@ %s
# %s`, name, author, version)
}

func main() {
	var args args
	args.Format = "json"
	arg.MustParse(&args)

	if len(args.Cutoffs) == 0 {
		args.Cutoffs = []int{1, 3, 5, 10}
	}

	var formatter output.EvaluationFormatter
	switch args.Format {
	case "json":
		formatter = output.JsonEvaluationFormatter
	case "csv":
		formatter = output.CsvEvaluationFormatter
	default:
		log.Fatalf("unknown output format %s", args.Format)
	}

	d, err := dataset.FromFile(args.Dataset)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(args.Run)
	if err != nil {
		log.Fatal(err)
	}
	run, err := trecresults.ResultsFromReader(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	p := apirec.Pipeline{
		Dataset:              d,
		Candidates:           output.CandidatesFromRun(d, run),
		Cutoffs:              args.Cutoffs,
		EvaluationFormatters: []output.EvaluationFormatter{formatter},
		QrelsPath:            args.Qrels,
	}

	result, err := p.Execute()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result.Evaluations[0])
}
