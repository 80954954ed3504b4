// Package topk selects the most frequent words from a table with a bounded
// min-heap, scanning the table twice and holding only k entries.
package topk

import "github.com/crimson-sun/wordfreq/internal/engine/table"

// DefaultK is the number of words reported.
const DefaultK = 100

// Absent is the Slot of an entry that was never filled.
const Absent = -1

// Entry borrows a table slot by index. It is only meaningful while the table
// it came from is alive.
type Entry struct {
	Count int
	Slot  int
}

// Present reports whether the entry refers to a table slot.
func (e Entry) Present() bool { return e.Slot != Absent }

// Result holds the selected entries, largest count first, and the number of
// distinct words seen in the table. Entries has exactly k elements; when the
// table holds fewer than k words the tail is Absent.
type Result struct {
	Entries  []Entry
	Distinct int
}

// Select returns the k highest-count slots of t. Among equal counts at the
// cut-off, the slot met first in index order wins: a later slot replaces the
// heap minimum only when its count is strictly greater.
func Select(t *table.Table, k int) Result {
	if k < 1 {
		return Result{Distinct: t.Occupied()}
	}

	h := make([]Entry, k+1)
	for i := range h {
		h[i] = Entry{Slot: Absent}
	}

	n := t.Cap()
	i, filled := 0, 0
	for ; i < n && filled < k; i++ {
		row := t.Row(i)
		if row.Empty() {
			continue
		}
		filled++
		h[filled] = Entry{Count: row.Count, Slot: i}
	}

	buildMinHeap(h, k)

	distinct := filled
	for ; i < n; i++ {
		row := t.Row(i)
		if row.Empty() {
			continue
		}
		distinct++
		if row.Count > h[1].Count {
			replaceRoot(h, k, Entry{Count: row.Count, Slot: i})
		}
	}

	sortDescending(h, k)
	return Result{Entries: h[1:], Distinct: distinct}
}

// Present returns only the entries that refer to a table slot.
func (r Result) Present() []Entry {
	out := make([]Entry, 0, len(r.Entries))
	for _, e := range r.Entries {
		if e.Present() {
			out = append(out, e)
		}
	}
	return out
}
