package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/crimson-sun/wordfreq/internal/model"
	"github.com/crimson-sun/wordfreq/internal/output"
)

// Input is a rewindable byte stream with a known size.
type Input interface {
	Name() string
	Size() int64
	Reader() io.ReadSeeker
	Close() error
}

// Counter turns an input stream into a report.
type Counter interface {
	Count(r io.ReadSeeker, size int64) (model.Report, error)
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger for run summaries. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// Pipeline connects an input, a counter, and an output.
type Pipeline struct {
	input   Input
	counter Counter
	output  output.Output
	logger  *slog.Logger
}

// New creates a Pipeline from the given components.
func New(in Input, c Counter, out output.Output, opts ...Option) *Pipeline {
	p := &Pipeline{
		input:   in,
		counter: c,
		output:  out,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Run counts the input once and writes the report. Counting itself is not
// interruptible; ctx is checked before it starts and passed to the output.
func (p *Pipeline) Run(ctx context.Context) (model.Report, error) {
	if err := ctx.Err(); err != nil {
		return model.Report{}, err
	}

	start := time.Now()
	rep, err := p.counter.Count(p.input.Reader(), p.input.Size())
	if err != nil {
		return model.Report{}, fmt.Errorf("pipeline count: %w", err)
	}
	rep.Source = p.input.Name()
	rep.Elapsed = time.Since(start)

	p.logger.Info("counted words",
		"source", rep.Source,
		"tokens", rep.Tokens,
		"distinct", rep.Distinct,
		"elapsed", rep.Elapsed,
	)

	if err := p.output.Write(ctx, rep); err != nil {
		return rep, fmt.Errorf("pipeline output: %w", err)
	}
	return rep, nil
}

// Close closes the input and the output.
func (p *Pipeline) Close() error {
	return errors.Join(p.input.Close(), p.output.Close())
}
