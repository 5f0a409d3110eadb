package dataset

import (
	"encoding/csv"
	"github.com/hscells/apirec/api"
	"github.com/pkg/errors"
	"os"
	"strings"
)

// Normalise re-parses the answer column of a dataset file and writes the file
// back with each answer list rendered in normalised comma-separated form. It
// returns the number of records containing at least one reference from
// outside the Java standard library.
func Normalise(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "could not open dataset %s", path)
	}
	rows, err := csv.NewReader(f).ReadAll()
	f.Close()
	if err != nil {
		return 0, errors.Wrapf(err, "could not read dataset %s", path)
	}
	if len(rows) == 0 {
		return 0, errors.Errorf("dataset %s is empty", path)
	}

	answer := -1
	for i, h := range rows[0] {
		if strings.TrimSpace(h) == "answer" {
			answer = i
		}
	}
	if answer < 0 {
		return 0, errors.Errorf("dataset %s has no answer column", path)
	}

	nonStandard := 0
	for _, row := range rows[1:] {
		refs := api.ParseList(row[answer])
		for _, ref := range refs {
			if !ref.Standard() {
				nonStandard++
				break
			}
		}
		row[answer] = api.Join(refs)
	}

	out, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrapf(err, "could not rewrite dataset %s", path)
	}
	defer out.Close()

	if err := csv.NewWriter(out).WriteAll(rows); err != nil {
		return 0, errors.Wrapf(err, "could not rewrite dataset %s", path)
	}
	return nonStandard, nil
}
