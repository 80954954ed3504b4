package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/crimson-sun/wordfreq/internal/engine/sizing"
	"github.com/crimson-sun/wordfreq/internal/engine/table"
	"github.com/crimson-sun/wordfreq/internal/engine/tokenizer"
	"github.com/crimson-sun/wordfreq/internal/engine/topk"
	"github.com/crimson-sun/wordfreq/internal/model"
)

// Engine orchestrates the size → count → select pipeline.
type Engine struct {
	k      int
	logger *slog.Logger
}

// New creates an Engine reporting the k most frequent words. A nil logger
// falls back to slog.Default().
func New(k int, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{k: k, logger: logger}
}

// Count reads r from its first byte to the end and returns the report. size
// is the byte length of r; pass a negative size to have Count measure it by
// seeking to the end.
func (e *Engine) Count(r io.ReadSeeker, size int64) (model.Report, error) {
	if size < 0 {
		end, err := r.Seek(0, io.SeekEnd)
		if err != nil {
			return model.Report{}, fmt.Errorf("engine: measure input: %w", err)
		}
		size = end
	}

	estimate := sizing.EstimateWords(size)
	capacity := sizing.CapacityFor(estimate)
	e.logger.Debug("sized table", "bytes", size, "estimated_words", estimate, "capacity", capacity)

	tbl, err := table.New(capacity)
	if err != nil {
		return model.Report{}, fmt.Errorf("engine: %w", err)
	}

	tok := tokenizer.New(r)
	if err := tok.Rewind(); err != nil {
		return model.Report{}, fmt.Errorf("engine: %w", err)
	}
	if err := fill(tok, tbl); err != nil {
		return model.Report{}, fmt.Errorf("engine: %w", err)
	}

	st := tbl.Stats()
	e.logger.Debug("filled table",
		"tokens", tok.Tokens(),
		"truncated", tok.Truncated(),
		"occupied", st.Occupied,
		"load_factor", st.LoadFactor(),
		"collisions", st.Collisions,
		"max_probe", st.MaxProbe,
	)
	if tok.Truncated() > 0 {
		e.logger.Debug("truncated long words", "count", tok.Truncated(), "max_len", tokenizer.MaxWordLen)
	}

	res := topk.Select(tbl, e.k)

	return model.Report{
		TopK:           e.k,
		Distinct:       res.Distinct,
		Tokens:         tok.Tokens(),
		Truncated:      tok.Truncated(),
		EstimatedWords: estimate,
		Capacity:       capacity,
		Words:          wordCounts(tbl, res),
	}, nil
}

// fill feeds every word of the stream into the table.
func fill(tok *tokenizer.Tokenizer, tbl *table.Table) error {
	for {
		w, err := tok.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tbl.Insert(w); err != nil {
			return err
		}
	}
}

// wordCounts resolves the borrowed slots into words, skipping absent entries.
func wordCounts(tbl *table.Table, res topk.Result) []model.WordCount {
	present := res.Present()
	out := make([]model.WordCount, 0, len(present))
	for _, e := range present {
		out = append(out, model.WordCount{
			Word:  tbl.Row(e.Slot).Text(),
			Count: e.Count,
		})
	}
	return out
}
