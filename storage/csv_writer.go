package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"property-formatter/models"
	"property-formatter/services"
)

// ExportFileName returns the conventional download name for an export made
// at t, e.g. "Property_Details_18/10/26,14:05.csv".
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("Property_Details_%02d/%02d/%02d,%02d:%02d.csv",
		t.Day(), int(t.Month()), t.Year()%100, t.Hour(), t.Minute())
}

// SafeFileName replaces the characters of the conventional name that are
// path separators or illegal on common filesystems.
func SafeFileName(name string) string {
	return strings.NewReplacer("/", "-", ":", "-", `\`, "-").Replace(name)
}

// ExportPath joins dir with the filesystem-safe export name for t.
func ExportPath(dir string, t time.Time) string {
	return filepath.Join(dir, SafeFileName(ExportFileName(t)))
}

// CSVWriter writes formatted property records as CSV.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	rows   int
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	c, err := newCSVWriter(f, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return c, nil
}

// NewCSVStreamWriter writes CSV to an arbitrary writer, such as stdout.
func NewCSVStreamWriter(w io.Writer) (*CSVWriter, error) {
	return newCSVWriter(w, nil)
}

func newCSVWriter(w io.Writer, closer io.Closer) (*CSVWriter, error) {
	if _, err := io.WriteString(w, services.RenderCSV(nil)); err != nil {
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	return &CSVWriter{w: w, closer: closer}, nil
}

// Write appends one row per output.
func (c *CSVWriter) Write(outputs []models.FormattedOutput) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, o := range outputs {
		if _, err := io.WriteString(c.w, "\n"+services.CSVRow(o.Data)); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
		c.rows++
	}
	return nil
}

// Rows returns how many data rows have been written.
func (c *CSVWriter) Rows() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows
}

// Close closes the underlying file, if the writer owns one.
func (c *CSVWriter) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}
