package tokenizer

const (
	// WordSize is the fixed buffer size of a stored word, sentinel included.
	WordSize = 20
	// MaxWordLen is the longest token kept. Longer tokens are truncated.
	MaxWordLen = WordSize - 1
	// EmptySpace pads the unused tail of a word buffer. It can never be a
	// word byte, so it terminates the word when the buffer is read back.
	EmptySpace byte = 0xFF
)

// Word is a normalized token: up to MaxWordLen uppercase bytes followed by
// EmptySpace padding.
type Word struct {
	buf [WordSize]byte
	n   int
}

func emptyWord() Word {
	var w Word
	for i := range w.buf {
		w.buf[i] = EmptySpace
	}
	return w
}

// NewWord builds a Word from s, uppercasing ASCII letters and truncating to
// MaxWordLen bytes. Bytes are not filtered; use a Tokenizer for that.
func NewWord(s string) Word {
	w := emptyWord()
	for i := 0; i < len(s) && w.n < MaxWordLen; i++ {
		w.buf[w.n] = Upper(s[i])
		w.n++
	}
	return w
}

// Len returns the number of bytes in the word.
func (w Word) Len() int { return w.n }

// At returns the byte at position i of the padded buffer. Positions at or
// past Len hold EmptySpace.
func (w Word) At(i int) byte { return w.buf[i] }

// Buffer returns a copy of the padded buffer.
func (w Word) Buffer() [WordSize]byte { return w.buf }


func (w Word) String() string { return string(w.buf[:w.n]) }

// Text reads a padded buffer back into a string, stopping at the first
// EmptySpace.
func Text(buf [WordSize]byte) string {
	for i, b := range buf {
		if b == EmptySpace {
			return string(buf[:i])
		}
	}
	return string(buf[:])
}
