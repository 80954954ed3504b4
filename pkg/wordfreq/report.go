package wordfreq

import (
	"time"

	"github.com/crimson-sun/wordfreq/internal/model"
)

// WordCount is a word and the number of times it occurred.
type WordCount struct {
	Word  string `json:"word"` // upper-cased, at most 19 characters
	Count int    `json:"count"`
}

// Report is the result of counting one text.
// This is the stable public type; internal representations may change
// without breaking consumers.
type Report struct {
	Source         string        `json:"source,omitempty"`
	TopK           int           `json:"top_k"`
	Distinct       int           `json:"distinct"`            // number of different words
	Tokens         int           `json:"tokens"`              // total words read
	Truncated      int           `json:"truncated,omitempty"` // words cut to 19 characters
	EstimatedWords int           `json:"estimated_words"`     // size-based guess used to size the table
	Words          []WordCount   `json:"words"`               // most frequent first
	Elapsed        time.Duration `json:"elapsed_ns,omitempty"`
}

func reportFromModel(r model.Report) Report {
	words := make([]WordCount, len(r.Words))
	for i, wc := range r.Words {
		words[i] = WordCount{Word: wc.Word, Count: wc.Count}
	}
	return Report{
		Source:         r.Source,
		TopK:           r.TopK,
		Distinct:       r.Distinct,
		Tokens:         r.Tokens,
		Truncated:      r.Truncated,
		EstimatedWords: r.EstimatedWords,
		Words:          words,
		Elapsed:        r.Elapsed,
	}
}
