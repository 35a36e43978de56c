package restore

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Options configures a Restorer.
type Options struct {
	// Contractions replaces the built-in table when non-nil.
	Contractions *Contractions
	// Logger receives per-token anomalies. Nil discards them.
	Logger *slog.Logger
	// OnFallback is called when a word could not be processed and was
	// returned unchanged.
	OnFallback func(token string, err error)
}

// Restorer restores reversed text with a fixed contraction table.
type Restorer struct {
	table      Contractions
	logger     *slog.Logger
	onFallback func(string, error)
}

var defaultRestorer = New(Options{})

// New builds a Restorer. The returned value is immutable.
func New(opts Options) *Restorer {
	table := DefaultContractions()
	if opts.Contractions != nil {
		table = *opts.Contractions
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Restorer{
		table:      table,
		logger:     logger,
		onFallback: opts.OnFallback,
	}
}

// Text restores s using the built-in contraction table.
func Text(s string) string {
	return defaultRestorer.Text(s)
}

// Word restores a single word using the built-in contraction table.
func Word(w string) string {
	return defaultRestorer.Word(w)
}

// Classify reports how Word would treat w.
func Classify(w string) Kind {
	return defaultRestorer.Classify(w)
}

// Text restores every line of s. Empty input yields empty output.
func (r *Restorer) Text(s string) string {
	if s == "" {
		return ""
	}
	lines := splitLines(s)
	for i, line := range lines {
		words := splitWords(line)
		if len(words) == 0 {
			lines[i] = ""
			continue
		}
		for j, w := range words {
			words[j] = r.Word(w)
		}
		lines[i] = strings.Join(words, " ")
	}
	return strings.Join(lines, "\n")
}

// Word restores a single word. A word that cannot be processed is returned
// unchanged.
func (r *Restorer) Word(w string) (out string) {
	if w == "" {
		return ""
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.fallback(w, fmt.Errorf("panic: %v", rec))
			out = w
		}
	}()
	res, err := normalizeWord(w, r.table)
	if err != nil {
		r.fallback(w, err)
		return w
	}
	return res
}

func (r *Restorer) Classify(w string) Kind {
	return classifyWord(w, r.table)
}

// Contractions returns the table r looks words up in.
func (r *Restorer) Contractions() Contractions {
	return r.table
}

func (r *Restorer) fallback(token string, err error) {
	r.logger.Warn("restore_token_fallback", "token", token, "error", err.Error())
	if r.onFallback != nil {
		r.onFallback(token, err)
	}
}
