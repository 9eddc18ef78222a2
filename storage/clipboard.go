package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"property-formatter/utils"
)

// ErrNothingToCopy is returned when asked to copy blank text.
var ErrNothingToCopy = errors.New("clipboard: nothing to copy")

// ClipboardWriter copies rendered output to the system clipboard, retrying
// transient failures.
type ClipboardWriter struct {
	retry *utils.RetryConfig
	write func(string) error
}

// NewClipboardWriter creates a ClipboardWriter making up to attempts tries.
func NewClipboardWriter(logger *utils.Logger, attempts int) *ClipboardWriter {
	return &ClipboardWriter{
		retry: &utils.RetryConfig{
			MaxAttempts: attempts,
			BaseDelay:   200 * time.Millisecond,
			Logger:      logger,
		},
		write: clipboard.WriteAll,
	}
}

// Available reports whether a clipboard utility exists on this system.
func (c *ClipboardWriter) Available() bool {
	return !clipboard.Unsupported
}

// WriteText copies text to the clipboard. Only success or failure is
// reported; the text itself is never modified.
func (c *ClipboardWriter) WriteText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrNothingToCopy
	}
	if err := c.retry.Do("clipboard write", func() error { return c.write(text) }); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
