package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a text with the frequency report it must produce.
//
// Counts is the exact count sequence of the top-K list. Leaders are the words
// that must be in the list no matter how ties at the cut-off are broken.
type CorpusEntry struct {
	Name      string   `json:"name"`
	Text      string   `json:"text"`
	TopK      int      `json:"top_k"`
	Tokens    int      `json:"tokens"`
	Truncated int      `json:"truncated"`
	Distinct  int      `json:"distinct"`
	Counts    []int    `json:"counts"`
	Leaders   []string `json:"leaders"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
