package wordfreq

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/crimson-sun/wordfreq/internal/engine"
	"github.com/crimson-sun/wordfreq/internal/source"
)

// Counter counts words and selects the most frequent ones.
type Counter struct {
	engine *engine.Engine
}

// New creates a Counter.
func New(opts ...Option) *Counter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Counter{engine: engine.New(o.topK, o.logger)}
}

// Count reads r from its start and reports its most frequent words. The
// reader is read twice: once to measure it and once to count.
func (c *Counter) Count(r io.ReadSeeker) (Report, error) {
	start := time.Now()
	rep, err := c.engine.Count(r, -1)
	if err != nil {
		return Report{}, fmt.Errorf("wordfreq: %w", err)
	}
	rep.Elapsed = time.Since(start)
	return reportFromModel(rep), nil
}

// CountString reports the most frequent words of s.
func (c *Counter) CountString(s string) (Report, error) {
	return c.Count(strings.NewReader(s))
}

// CountFile reports the most frequent words of the file at path. Files that
// look like a known binary format are rejected.
func (c *Counter) CountFile(path string) (Report, error) {
	src, err := source.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("wordfreq: %w", err)
	}
	defer src.Close()

	start := time.Now()
	rep, err := c.engine.Count(src.Reader(), src.Size())
	if err != nil {
		return Report{}, fmt.Errorf("wordfreq: %w", err)
	}
	rep.Source = src.Name()
	rep.Elapsed = time.Since(start)
	return reportFromModel(rep), nil
}
