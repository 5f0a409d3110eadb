// Package dataset loads the delimited API recommendation benchmarks (BIKER and
// APIBENCH-Q) into memory for evaluation. A dataset file has a header row with
// at least a "title" column (the query) and an "answer" column (a
// comma-separated list of ground-truth API references); an optional "idx"
// column carries the topic identifier.
package dataset

import (
	"encoding/csv"
	"github.com/cheggaaa/pb/v3"
	"github.com/hscells/apirec/api"
	"github.com/pkg/errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Record is one question of a dataset.
type Record struct {
	Topic   string
	Title   string
	Answers []api.Reference
}

// Dataset is a fully materialised benchmark dataset.
type Dataset struct {
	Name    string
	Records []Record
}

// FromReader reads a dataset in the benchmark CSV layout.
func FromReader(name string, r io.Reader) (*Dataset, error) {
	c := csv.NewReader(r)
	header, err := c.Read()
	if err == io.EOF {
		return nil, errors.Errorf("dataset %s is empty", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not read the header of dataset %s", name)
	}

	idx, title, answer := -1, -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "idx":
			idx = i
		case "title":
			title = i
		case "answer":
			answer = i
		}
	}
	if title < 0 {
		return nil, errors.Errorf("dataset %s has no title column", name)
	}
	if answer < 0 {
		return nil, errors.Errorf("dataset %s has no answer column", name)
	}

	d := &Dataset{Name: name}
	for i := 0; ; i++ {
		row, err := c.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "could not read record %d of dataset %s", i, name)
		}
		topic := strconv.Itoa(i)
		if idx >= 0 {
			topic = strings.TrimSpace(row[idx])
		}
		d.Records = append(d.Records, Record{
			Topic:   topic,
			Title:   row[title],
			Answers: api.ParseList(row[answer]),
		})
	}
	return d, nil
}

// FromFile reads a dataset file, showing progress for the large training
// splits. The dataset is named after the file.
func FromFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open dataset %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "could not stat dataset %s", path)
	}

	bar := pb.Full.Start64(info.Size())
	defer bar.Finish()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return FromReader(name, bar.NewProxyReader(f))
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Topics returns the topic identifier of every record, in dataset order.
func (d *Dataset) Topics() []string {
	topics := make([]string, len(d.Records))
	for i, r := range d.Records {
		topics[i] = r.Topic
	}
	return topics
}

// Titles returns the question of every record, in dataset order.
func (d *Dataset) Titles() []string {
	titles := make([]string, len(d.Records))
	for i, r := range d.Records {
		titles[i] = r.Title
	}
	return titles
}

// Answers returns the normalised ground-truth references of every record, in
// dataset order, in the plain string form the eval package consumes.
func (d *Dataset) Answers() [][]string {
	answers := make([][]string, len(d.Records))
	for i, r := range d.Records {
		answers[i] = api.Strings(r.Answers)
	}
	return answers
}

// Paths of the benchmark splits relative to a data directory. The files
// themselves are distributed with the benchmarks, not with this tool.
func BIKERTrain(dir string) string {
	return filepath.Join(dir, "BIKER", "BIKER_train.csv")
}

func BIKERTest(dir string) string {
	return filepath.Join(dir, "BIKER", "BIKER_test.csv")
}

// BIKERTestFiltered is the manually filtered BIKER test split.
func BIKERTestFiltered(dir string) string {
	return filepath.Join(dir, "BIKER", "BIKER_test_filtered.csv")
}

func APIBenchQTrain(dir string) string {
	return filepath.Join(dir, "APIBENCH", "Q_train.csv")
}

func APIBenchQTest(dir string) string {
	return filepath.Join(dir, "APIBENCH", "Q_test.csv")
}
