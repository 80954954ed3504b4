package wordfreq

import (
	"log/slog"

	"github.com/crimson-sun/wordfreq/internal/engine/topk"
)

type options struct {
	topK   int
	logger *slog.Logger
}

// Option configures a Counter.
type Option func(*options)

// WithTopK sets how many of the most frequent words a report lists.
// Values below 1 report only the number of distinct words. Default: 100.
func WithTopK(k int) Option {
	return func(o *options) {
		o.topK = k
	}
}

// WithLogger sets the logger that receives table statistics at debug level.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		topK: topk.DefaultK,
	}
}
