// Package sizing picks the hash table capacity for an input before any word
// is read. The table is never resized, so this is the only chance to size it.
package sizing

// BytesPerWord is the average length of a word plus one separator, measured
// on English prose.
const BytesPerWord = 6.1

// MinCapacity is the capacity used for every input estimated below 10,000 words.
const MinCapacity = 10000

// EstimateWords approximates the number of words in an input of n bytes.
func EstimateWords(n int64) int {
	if n <= 0 {
		return 0
	}
	return int(float64(n) / BytesPerWord)
}

// CapacityFor compresses a word estimate into a table capacity. Larger inputs
// get proportionally smaller tables and live with more collisions.
func CapacityFor(estimate int) int {
	switch {
	case estimate < 10000:
		return MinCapacity
	case estimate < 50000:
		return estimate / 5
	case estimate < 100000:
		return estimate / 10
	case estimate < 500000:
		return estimate / 15
	default:
		return estimate / 20
	}
}
