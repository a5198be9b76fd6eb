package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sentimeter/sentimeter/internal/sentiment"
)

// Writer persists flat JSON reports for downstream consumers (dashboards,
// chart renderers). It owns no state beyond the output directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

type fullReport struct {
	GeneratedAt string `json:"generated_at"`
	Results     any    `json:"results"`
}

type wordCountReport struct {
	GeneratedAt string         `json:"generated_at"`
	Keywords    map[string]int `json:"keywords"`
}

// WriteFullReport saves the complete analysis under <dir>/<name>.json with
// the {generated_at, results} envelope existing consumers expect.
func (w *Writer) WriteFullReport(name string, results any) (string, error) {
	return w.write(name, fullReport{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Results:     results,
	})
}

// WriteWordCounts saves keyword frequencies as a word->count object.
func (w *Writer) WriteWordCounts(keywords []sentiment.KeywordCount) (string, error) {
	counts := make(map[string]int, len(keywords))
	for _, kw := range keywords {
		counts[kw.Word] = kw.Count
	}
	return w.write("word_counts", wordCountReport{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Keywords:    counts,
	})
}

func (w *Writer) write(name string, payload any) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("[Report] failed to create report dir: %w", err)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("[Report] failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(w.dir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("[Report] failed to write %s: %w", path, err)
	}

	slog.Info("[Report] JSON report saved", slog.String("path", path))
	return path, nil
}
