package output

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/crimson-sun/wordfreq/internal/model"
)

// Options selects how a report is rendered.
type Options struct {
	Format string // "text" (default) or "json"
	Pretty bool   // indent JSON
	Locale string // BCP 47 tag for digit grouping in text; empty prints plain digits
}

// Render writes rep to w in the configured format.
func Render(w io.Writer, rep model.Report, opts Options) error {
	switch opts.Format {
	case "", "text":
		return RenderText(w, rep, opts.Locale)
	case "json":
		return RenderJSON(w, rep, opts.Pretty)
	default:
		return fmt.Errorf("output: unknown format %q", opts.Format)
	}
}

type printer interface {
	Fprintf(w io.Writer, format string, a ...any) (int, error)
}

type plainPrinter struct{}

func (plainPrinter) Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return fmt.Fprintf(w, format, a...)
}

// localePrinter groups digits the way its locale does.
type localePrinter struct {
	p *message.Printer
}

func (l localePrinter) Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return l.p.Fprintf(w, format, a...)
}

func newPrinter(locale string) (printer, error) {
	if locale == "" {
		return plainPrinter{}, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("output: locale %q: %w", locale, err)
	}
	return localePrinter{p: message.NewPrinter(tag)}, nil
}

// RenderText writes the report in the classic layout: a summary header, then
// one "WORD count" line per word, most frequent first.
func RenderText(w io.Writer, rep model.Report, locale string) error {
	p, err := newPrinter(locale)
	if err != nil {
		return err
	}

	lines := []struct {
		format string
		args   []any
	}{
		{"Words in file: %d (approx)\n", []any{rep.EstimatedWords}},
		{"Number of different words: %d\n", []any{rep.Distinct}},
		{"The %d most common words:\n", []any{rep.TopK}},
	}
	for _, l := range lines {
		if _, err := p.Fprintf(w, l.format, l.args...); err != nil {
			return fmt.Errorf("output: write text: %w", err)
		}
	}
	for _, wc := range rep.Words {
		if _, err := p.Fprintf(w, "%s %d\n", wc.Word, wc.Count); err != nil {
			return fmt.Errorf("output: write text: %w", err)
		}
	}
	return nil
}

// RenderJSON writes the report as a single JSON document.
func RenderJSON(w io.Writer, rep model.Report, pretty bool) error {
	if rep.Words == nil {
		rep.Words = []model.WordCount{}
	}
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("output: write json: %w", err)
	}
	return nil
}
