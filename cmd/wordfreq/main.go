package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/crimson-sun/wordfreq/internal/config"
	"github.com/crimson-sun/wordfreq/internal/engine"
	"github.com/crimson-sun/wordfreq/internal/engine/topk"
	"github.com/crimson-sun/wordfreq/internal/logging"
	"github.com/crimson-sun/wordfreq/internal/output"
	"github.com/crimson-sun/wordfreq/internal/output/file"
	"github.com/crimson-sun/wordfreq/internal/output/multi"
	"github.com/crimson-sun/wordfreq/internal/output/stdout"
	"github.com/crimson-sun/wordfreq/internal/output/webhook"
	"github.com/crimson-sun/wordfreq/internal/pipeline"
	"github.com/crimson-sun/wordfreq/internal/source"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := pflag.NewFlagSet("wordfreq", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.BindFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: wordfreq [flags] FILE\n\nPrints the %d most common words of FILE.\n\nFlags:\n", topk.DefaultK)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(stderr, "wordfreq: %v\n", err)
		return exitError
	}
	cfg.Input = fs.Arg(0)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "wordfreq: invalid configuration: %v\n", err)
		return exitUsage
	}

	logger := logging.Init(stderr, cfg.Log.Format, logging.ParseLevel(cfg.Log.Level))

	var srcOpts []source.Option
	if cfg.Progress {
		srcOpts = append(srcOpts, source.WithProgress(stderr))
	}
	src, err := source.Open(cfg.Input, srcOpts...)
	if err != nil {
		logger.Error("failed to open input", "error", err)
		return exitError
	}

	out, err := newOutput(cfg.Output)
	if err != nil {
		src.Close()
		logger.Error("failed to create output", "error", err)
		return exitError
	}

	p := pipeline.New(src, engine.New(topk.DefaultK, logger), out, pipeline.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, runErr := p.Run(ctx)
	closeErr := p.Close()
	if err := errors.Join(runErr, closeErr); err != nil {
		logger.Error("wordfreq failed", "error", err)
		return exitError
	}
	return exitOK
}

// newOutput picks the report destinations: stdout unless a file path is set
// (or tee is on), the file, and the webhook.
func newOutput(cfg config.OutputConfig) (output.Output, error) {
	opts := output.Options{
		Format: cfg.Format,
		Pretty: cfg.Pretty,
		Locale: cfg.Locale,
	}

	var outs []output.Output
	if cfg.Path == "" || cfg.Tee {
		outs = append(outs, stdout.New(opts))
	}
	if cfg.Path != "" {
		f, err := file.New(cfg.Path, opts)
		if err != nil {
			return nil, err
		}
		outs = append(outs, f)
	}
	if cfg.Webhook != "" {
		outs = append(outs, webhook.New(cfg.Webhook, opts))
	}

	if len(outs) == 1 {
		return outs[0], nil
	}
	return multi.New(outs...), nil
}
