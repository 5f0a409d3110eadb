package output

import (
	"fmt"
	"github.com/hscells/apirec/dataset"
	"github.com/hscells/trecresults"
	"io"
	"sort"
)

// Qrels converts the ground-truth answers of a dataset into trec-style
// relevance judgments, so runs over the dataset can also be scored with
// tools like trec_eval. Every answer is judged at the exact-match grade.
func Qrels(d *dataset.Dataset) trecresults.QrelsFile {
	qrels := trecresults.QrelsFile{Qrels: make(map[string]trecresults.Qrels)}
	for _, record := range d.Records {
		q := make(trecresults.Qrels)
		for _, answer := range record.Answers {
			q[answer.String()] = &trecresults.Qrel{
				Topic:     record.Topic,
				Iteration: "0",
				DocId:     answer.String(),
				Score:     2,
			}
		}
		qrels.Qrels[record.Topic] = q
	}
	return qrels
}

// WriteQrels writes a qrels file in the standard four-column format, topics
// in lexicographic order.
func WriteQrels(w io.Writer, qrels trecresults.QrelsFile) error {
	topics := make([]string, 0, len(qrels.Qrels))
	for topic := range qrels.Qrels {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	for _, topic := range topics {
		docs := make([]string, 0, len(qrels.Qrels[topic]))
		for doc := range qrels.Qrels[topic] {
			docs = append(docs, doc)
		}
		sort.Strings(docs)
		for _, doc := range docs {
			q := qrels.Qrels[topic][doc]
			if _, err := fmt.Fprintf(w, "%s %s %s %d\n", q.Topic, q.Iteration, q.DocId, q.Score); err != nil {
				return err
			}
		}
	}
	return nil
}

// CandidatesFromRun extracts per-topic ranked candidate lists from a trec run
// file, aligned with the topic order of a dataset. Results within a topic are
// ordered by their rank. A topic absent from the run contributes an empty
// candidate list.
func CandidatesFromRun(d *dataset.Dataset, run trecresults.ResultFile) [][]string {
	candidates := make([][]string, d.Len())
	for i, record := range d.Records {
		results := append(trecresults.ResultList{}, run.Results[record.Topic]...)
		sort.SliceStable(results, func(a, b int) bool {
			return results[a].Rank < results[b].Rank
		})
		list := make([]string, len(results))
		for j, r := range results {
			list[j] = r.DocId
		}
		candidates[i] = list
	}
	return candidates
}
