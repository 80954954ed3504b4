package stdout

import (
	"context"
	"fmt"
	"os"

	"github.com/crimson-sun/wordfreq/internal/model"
	"github.com/crimson-sun/wordfreq/internal/output"
)

// Output writes reports to stdout.
type Output struct {
	f    *os.File
	opts output.Options
}

// New creates a stdout Output rendering with opts.
func New(opts output.Options) *Output {
	return &Output{f: os.Stdout, opts: opts}
}

func (o *Output) Write(_ context.Context, rep model.Report) error {
	if err := output.Render(o.f, rep, o.opts); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
