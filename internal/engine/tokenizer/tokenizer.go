package tokenizer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const defaultBufSize = 64 * 1024 // 64KB

// ErrNotSeekable is returned by Rewind when the source cannot seek.
var ErrNotSeekable = errors.New("tokenizer: source is not seekable")

// Tokenizer splits a byte stream into uppercase words. A word is a run of
// ASCII letters and apostrophes; every other byte separates words.
type Tokenizer struct {
	src       io.Reader
	r         *bufio.Reader
	tokens    int
	truncated int
}

// New creates a Tokenizer reading from r.
func New(r io.Reader) *Tokenizer {
	return &Tokenizer{
		src: r,
		r:   bufio.NewReaderSize(r, defaultBufSize),
	}
}

// Next returns the next word in the stream. At end of stream it returns
// io.EOF, which is the normal way a scan ends.
//
// Bytes past MaxWordLen are dropped and the word keeps its first MaxWordLen
// bytes.
func (t *Tokenizer) Next() (Word, error) {
	var c byte
	for {
		b, err := t.r.ReadByte()
		if err == io.EOF {
			return Word{}, io.EOF
		}
		if err != nil {
			return Word{}, fmt.Errorf("tokenizer: read: %w", err)
		}
		if IsWordByte(b) {
			c = b
			break
		}
	}

	w := emptyWord()
	cut := false
	for {
		if w.n < MaxWordLen {
			w.buf[w.n] = Upper(c)
			w.n++
		} else {
			cut = true
		}

		b, err := t.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Word{}, fmt.Errorf("tokenizer: read: %w", err)
		}
		if !IsWordByte(b) {
			break
		}
		c = b
	}

	t.tokens++
	if cut {
		t.truncated++
	}
	return w, nil
}

// Rewind moves the underlying source back to its first byte and discards
// anything buffered.
func (t *Tokenizer) Rewind() error {
	s, ok := t.src.(io.Seeker)
	if !ok {
		return ErrNotSeekable
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("tokenizer: rewind: %w", err)
	}
	t.r.Reset(t.src)
	return nil
}

// Tokens returns how many words Next has produced.
func (t *Tokenizer) Tokens() int { return t.tokens }

// Truncated returns how many of those words were longer than MaxWordLen.
func (t *Tokenizer) Truncated() int { return t.truncated }

// IsWordByte reports whether b can appear in a word.
func IsWordByte(b byte) bool {
	return b == '\'' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// Upper maps a lowercase ASCII letter to uppercase and leaves other bytes alone.
func Upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 32
	}
	return b
}
