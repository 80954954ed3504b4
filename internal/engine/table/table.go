// Package table is a fixed-capacity open-addressing hash table that counts
// word occurrences. Collisions are resolved by linear probing. The table never
// grows and never deletes.
package table

import (
	"errors"
	"fmt"

	"github.com/crimson-sun/wordfreq/internal/engine/tokenizer"
)

var (
	// ErrTableExhausted is returned when a new word finds no free slot after
	// probing the whole table.
	ErrTableExhausted = errors.New("table: exhausted")
	// ErrInvalidCapacity is returned by New for a capacity below one.
	ErrInvalidCapacity = errors.New("table: capacity must be positive")
)

// Row is one slot. Count == 0 marks the slot as unused.
type Row struct {
	Word  [tokenizer.WordSize]byte
	Count int
}

// Empty reports whether the slot has never been claimed.
func (r Row) Empty() bool { return r.Count == 0 }

// Text returns the stored word without its padding.
func (r Row) Text() string { return tokenizer.Text(r.Word) }

// Stats describes how crowded the table is.
type Stats struct {
	Capacity   int
	Occupied   int
	Inserts    int
	Collisions int // total extra slots visited across all inserts
	MaxProbe   int // longest probe run seen by a single insert
}

// LoadFactor returns Occupied/Capacity.
func (s Stats) LoadFactor() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Occupied) / float64(s.Capacity)
}

// Table maps normalized words to occurrence counts.
type Table struct {
	rows  []Row
	stats Stats
}

// New allocates a table with exactly capacity slots.
func New(capacity int) (*Table, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Table{
		rows:  make([]Row, capacity),
		stats: Stats{Capacity: capacity},
	}, nil
}

// Hash treats the word as a base-256 number, least significant byte first,
// reduced modulo capacity after every term.
func Hash(w tokenizer.Word, capacity int) int {
	hash := 0
	pow := 1 % capacity
	for i := 0; i < w.Len(); i++ {
		hash = (hash + int(w.At(i))*pow) % capacity
		pow = pow * 256 % capacity
	}
	return hash
}

// Insert adds one occurrence of w. A new word claims the first free slot at or
// after its hash, wrapping around the end of the table.
func (t *Table) Insert(w tokenizer.Word) error {
	n := len(t.rows)
	key := Hash(w, n)
	for probe := 0; probe < n; probe++ {
		row := &t.rows[key]
		if row.Empty() {
			row.Word = w.Buffer()
			row.Count = 1
			t.stats.Occupied++
			t.record(probe)
			return nil
		}
		if matches(row, w) {
			row.Count++
			t.record(probe)
			return nil
		}
		key++
		if key == n {
			key = 0
		}
	}
	return fmt.Errorf("%w: no free slot among %d for %q", ErrTableExhausted, n, w.String())
}

// matches compares one position past the word length. That position holds
// EmptySpace in the shorter of two words sharing a prefix, so WASP and WASPS
// never match.
func matches(row *Row, w tokenizer.Word) bool {
	for i := 0; i <= w.Len(); i++ {
		if row.Word[i] != w.At(i) {
			return false
		}
	}
	return true
}

func (t *Table) record(probe int) {
	t.stats.Inserts++
	t.stats.Collisions += probe
	if probe > t.stats.MaxProbe {
		t.stats.MaxProbe = probe
	}
}

// lookup returns the slot and count of w, or ok == false when w was never
// inserted.
func (t *Table) lookup(w tokenizer.Word) (slot, count int, ok bool) {
	n := len(t.rows)
	key := Hash(w, n)
	for probe := 0; probe < n; probe++ {
		row := &t.rows[key]
		if row.Empty() {
			return 0, 0, false
		}
		if matches(row, w) {
			return key, row.Count, true
		}
		key++
		if key == n {
			key = 0
		}
	}
	return 0, 0, false
}

// Cap returns the number of slots.
func (t *Table) Cap() int { return len(t.rows) }

// Row returns slot i.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Occupied returns the number of distinct words stored.
func (t *Table) Occupied() int { return t.stats.Occupied }

// Stats returns a snapshot of the probe statistics.
func (t *Table) Stats() Stats { return t.stats }
