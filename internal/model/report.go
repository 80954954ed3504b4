package model

import "time"

// WordCount is one line of the frequency report.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Report is wordfreq's output type: the most frequent words of one input.
type Report struct {
	Source         string        `json:"source,omitempty"` // file name, empty for anonymous readers
	TopK           int           `json:"top_k"`
	Distinct       int           `json:"distinct"`
	Tokens         int           `json:"tokens"`
	Truncated      int           `json:"truncated,omitempty"` // tokens longer than the word buffer
	EstimatedWords int           `json:"estimated_words"`
	Capacity       int           `json:"capacity"`
	Words          []WordCount   `json:"words"` // most frequent first
	Elapsed        time.Duration `json:"elapsed_ns,omitempty"`
}
