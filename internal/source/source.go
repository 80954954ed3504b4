// Package source opens the file to be counted. It rejects inputs that look
// binary and can report read progress on a terminal.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/h2non/filetype"
)

// sniffLen is the header size filetype needs to recognize every type it knows.
const sniffLen = 262

// ErrBinaryInput is returned by Open when the file matches a known binary type.
var ErrBinaryInput = errors.New("source: input is not a text file")

// Option configures Open.
type Option func(*options)

type options struct {
	progress io.Writer
}

// WithProgress draws a progress bar on w while the file is read.
func WithProgress(w io.Writer) Option {
	return func(o *options) { o.progress = w }
}

// Source is an open, rewindable input with a known size.
type Source struct {
	name string
	size int64
	f    *os.File
	r    io.ReadSeeker
	bar  *pb.ProgressBar
}

// Open opens path for counting. The returned Source is positioned at the
// first byte.
func Open(path string, opts ...Option) (*Source, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: could not open %q: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("source: stat %q: %w", path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("source: %q is a directory", path)
	}
	if err := sniff(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	s := &Source{name: path, size: info.Size(), f: f, r: f}
	if o.progress != nil {
		s.bar = pb.New64(info.Size()).SetWriter(o.progress).Set(pb.Bytes, true)
		s.bar.Start()
		s.r = &progressReader{r: f, bar: s.bar}
	}
	return s, nil
}

// Name returns the path the source was opened from.
func (s *Source) Name() string { return s.name }

// Size returns the file size in bytes at open time.
func (s *Source) Size() int64 { return s.size }

// Reader returns the input stream.
func (s *Source) Reader() io.ReadSeeker { return s.r }

// Close stops the progress bar and closes the file.
func (s *Source) Close() error {
	if s.bar != nil {
		s.bar.Finish()
	}
	return s.f.Close()
}

// sniff checks the file header against known binary signatures and rewinds.
func sniff(r io.ReadSeeker) error {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("source: read header: %w", err)
	}
	if n > 0 {
		if kind, _ := filetype.Match(head[:n]); kind != filetype.Unknown {
			return fmt.Errorf("%w (%s)", ErrBinaryInput, kind.MIME.Value)
		}
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("source: rewind: %w", err)
	}
	return nil
}

// progressReader advances a progress bar as bytes are read and follows seeks.
type progressReader struct {
	r   io.ReadSeeker
	bar *pb.ProgressBar
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.bar.Add(n)
	return n, err
}

func (p *progressReader) Seek(offset int64, whence int) (int64, error) {
	pos, err := p.r.Seek(offset, whence)
	if err == nil {
		p.bar.SetCurrent(pos)
	}
	return pos, err
}
