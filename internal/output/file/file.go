package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/wordfreq/internal/model"
	"github.com/crimson-sun/wordfreq/internal/output"
)

const defaultBufSize = 64 * 1024 // 64KB

// Option configures a file Output.
type Option func(*Output)

// WithAppend keeps existing file content and appends reports after it.
// By default the file is truncated when opened.
func WithAppend() Option {
	return func(o *Output) { o.flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND }
}

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// Output writes reports to a file with buffered I/O.
type Output struct {
	w       *bufio.Writer
	f       *os.File
	mu      sync.Mutex
	path    string
	opts    output.Options
	flags   int
	bufSize int
}

// New creates a file output that renders reports into the given path.
func New(path string, opts output.Options, fopts ...Option) (*Output, error) {
	o := &Output{
		path:    path,
		opts:    opts,
		flags:   os.O_CREATE | os.O_WRONLY | os.O_TRUNC,
		bufSize: defaultBufSize,
	}
	for _, opt := range fopts {
		opt(o)
	}
	f, err := os.OpenFile(o.path, o.flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", o.path, err)
	}
	o.f = f
	o.w = bufio.NewWriterSize(f, o.bufSize)
	return o, nil
}

// Write renders the report into the buffer.
func (o *Output) Write(_ context.Context, rep model.Report) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := output.Render(o.w, rep, o.opts); err != nil {
		return fmt.Errorf("file output: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.f.Close()
}
