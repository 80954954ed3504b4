package table

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/wordfreq/internal/engine/tokenizer"
)

func newTable(t *testing.T, capacity int) *Table {
	t.Helper()
	tbl, err := New(capacity)
	require.NoError(t, err)
	return tbl
}

func word(s string) tokenizer.Word { return tokenizer.NewWord(s) }

func occupiedSlots(tbl *Table) []int {
	var slots []int
	for i := 0; i < tbl.Cap(); i++ {
		if !tbl.Row(i).Empty() {
			slots = append(slots, i)
		}
	}
	return slots
}

func TestNewInvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		_, err := New(c)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	}
}

func TestHash(t *testing.T) {
	assert.Equal(t, 65, Hash(word("A"), 1000))
	assert.Equal(t, (65+66*256)%1000, Hash(word("AB"), 1000))
	assert.Equal(t, 0, Hash(word(""), 1000))
	assert.Equal(t, 0, Hash(word("ANYTHING"), 1))
}

func TestHashMatchesExactPolynomial(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	letters := "ABCDEFGHIJKLMNOPQRSTUVWXYZ'"
	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(tokenizer.MaxWordLen)
		var sb strings.Builder
		for j := 0; j < n; j++ {
			sb.WriteByte(letters[rng.Intn(len(letters))])
		}
		w := word(sb.String())
		capacity := 1 + rng.Intn(100000)

		sum := new(big.Int)
		for j := 0; j < w.Len(); j++ {
			term := new(big.Int).Exp(big.NewInt(256), big.NewInt(int64(j)), nil)
			term.Mul(term, big.NewInt(int64(w.At(j))))
			sum.Add(sum, term)
		}
		want := sum.Mod(sum, big.NewInt(int64(capacity))).Int64()

		assert.Equal(t, int(want), Hash(w, capacity), "word %s capacity %d", w, capacity)
	}
}

func TestInsertSameWordCounts(t *testing.T) {
	tbl := newTable(t, 10000)
	for i := 0; i < 42; i++ {
		require.NoError(t, tbl.Insert(word("THE")))
	}

	slots := occupiedSlots(tbl)
	require.Len(t, slots, 1)
	row := tbl.Row(slots[0])
	assert.Equal(t, 42, row.Count)
	assert.Equal(t, "THE", row.Text())
	assert.Equal(t, 1, tbl.Occupied())
}

func TestInsertPrefixDistinct(t *testing.T) {
	tbl := newTable(t, 10000)
	require.NoError(t, tbl.Insert(word("WASP")))
	require.NoError(t, tbl.Insert(word("WASPS")))

	slots := occupiedSlots(tbl)
	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.Equal(t, 1, tbl.Row(s).Count)
	}

	_, n, ok := tbl.lookup(word("WASP"))
	require.True(t, ok)
	assert.Equal(t, 1, n)
	_, n, ok = tbl.lookup(word("WASPS"))
	require.True(t, ok)
	assert.Equal(t, 1, n)
}

func TestInsertPrefixDistinctInTinyTable(t *testing.T) {
	// Both words hash to slot 1 of 2, so the second goes through the comparison.
	tbl := newTable(t, 2)
	require.NoError(t, tbl.Insert(word("WASPS")))
	require.NoError(t, tbl.Insert(word("WASP")))
	require.NoError(t, tbl.Insert(word("WASP")))

	_, n, ok := tbl.lookup(word("WASPS"))
	require.True(t, ok)
	assert.Equal(t, 1, n)
	_, n, ok = tbl.lookup(word("WASP"))
	require.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestLinearProbingWrapsAround(t *testing.T) {
	// "A", "D", "G" and "J" all hash to slot 2 of 3.
	tbl := newTable(t, 3)
	for _, w := range []string{"A", "D", "G", "J"} {
		require.Equal(t, 2, Hash(word(w), 3), w)
	}

	require.NoError(t, tbl.Insert(word("A")))
	require.NoError(t, tbl.Insert(word("D")))
	require.NoError(t, tbl.Insert(word("G")))

	for w, want := range map[string]int{"A": 2, "D": 0, "G": 1} {
		slot, _, ok := tbl.lookup(word(w))
		require.True(t, ok, w)
		assert.Equal(t, want, slot, w)
	}

	st := tbl.Stats()
	assert.Equal(t, 3, st.Occupied)
	assert.Equal(t, 3, st.Collisions) // D probed once, G twice
	assert.Equal(t, 2, st.MaxProbe)
	assert.InDelta(t, 1.0, st.LoadFactor(), 1e-9)
}

func TestInsertExhausted(t *testing.T) {
	tbl := newTable(t, 3)
	for _, w := range []string{"A", "D", "G"} {
		require.NoError(t, tbl.Insert(word(w)))
	}

	err := tbl.Insert(word("J"))
	require.ErrorIs(t, err, ErrTableExhausted)
	assert.Contains(t, err.Error(), `"J"`)

	// Words already present still count when the table is full.
	require.NoError(t, tbl.Insert(word("G")))
	_, n, _ := tbl.lookup(word("G"))
	assert.Equal(t, 2, n)
}

func TestLookupMissing(t *testing.T) {
	tbl := newTable(t, 10)
	_, _, ok := tbl.lookup(word("GHOST"))
	assert.False(t, ok)

	require.NoError(t, tbl.Insert(word("HOST")))
	_, _, ok = tbl.lookup(word("GHOST"))
	assert.False(t, ok)
}

func TestRowTextMaxLength(t *testing.T) {
	tbl := newTable(t, 100)
	long := strings.Repeat("Q", tokenizer.MaxWordLen)
	require.NoError(t, tbl.Insert(word(long)))

	slot, _, ok := tbl.lookup(word(long))
	require.True(t, ok)
	assert.Equal(t, long, tbl.Row(slot).Text())
}

func TestCountsMatchMap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	vocab := []string{"RED", "GREEN", "BLUE", "REDS", "GREENER", "B", "BL", "BLU", "IT'S", "ITS"}
	want := make(map[string]int)
	tbl := newTable(t, 7)
	for i := 0; i < 1000; i++ {
		w := vocab[rng.Intn(len(vocab))]
		want[w]++
		if err := tbl.Insert(word(w)); err != nil {
			require.ErrorIs(t, err, ErrTableExhausted)
			want[w]--
			if want[w] == 0 {
				delete(want, w)
			}
		}
	}

	got := make(map[string]int)
	for i := 0; i < tbl.Cap(); i++ {
		if r := tbl.Row(i); !r.Empty() {
			got[r.Text()] = r.Count
		}
	}
	assert.Equal(t, want, got)
}
