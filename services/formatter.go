package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"property-formatter/models"
	"property-formatter/utils"
	"property-formatter/vocab"
)

// Formatter runs the full pipeline over one raw chat export: area pre-split,
// message splitting, masked-contact filtering, timestamp normalization,
// field extraction and rendering.
//
// A Formatter is safe for concurrent use; each Format call is independent.
type Formatter struct {
	logger          *utils.Logger
	voc             *vocab.Vocabulary
	extractor       *Extractor
	normalizeExport bool
}

// FormatterOptions configures a Formatter.
type FormatterOptions struct {
	// Vocabulary defaults to vocab.Default().
	Vocabulary *vocab.Vocabulary
	// NormalizeExportTimestamps rewrites "[H:MM am, D/M/YYYY]" export
	// timestamps into message markers before splitting. Without it a raw
	// export has no markers and is read as a single message.
	NormalizeExportTimestamps bool
}

// NewFormatter creates a Formatter over the embedded vocabulary.
func NewFormatter(logger *utils.Logger) *Formatter {
	return NewFormatterWithOptions(logger, FormatterOptions{})
}

// NewFormatterWithOptions creates a Formatter from opts.
func NewFormatterWithOptions(logger *utils.Logger, opts FormatterOptions) *Formatter {
	voc := opts.Vocabulary
	if voc == nil {
		voc = vocab.Default()
	}
	return &Formatter{
		logger:          logger,
		voc:             voc,
		extractor:       NewExtractor(voc),
		normalizeExport: opts.NormalizeExportTimestamps,
	}
}

// Format extracts one record per surviving message, in input order.
//
// Blank input yields ErrEmptyInput. Any unexpected fault is reported as
// ErrFormatFailed and no partial results are returned.
func (f *Formatter) Format(ctx context.Context, raw string) (outputs []models.FormattedOutput, err error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInput
	}

	runID := RunIDFromContext(ctx)
	if runID == "" {
		runID = uuid.NewString()
	}
	log := f.logger.With("run_id", runID)

	defer func() {
		if r := recover(); r != nil {
			log.Error("[formatter] Processing failed: %v", r)
			outputs = nil
			err = ErrFormatFailed
		}
	}()

	text := normaliseSpaces(raw)
	if f.normalizeExport {
		text = NormalizeTimestamps(text)
	}
	text = PreSplitAreas(text, f.voc)
	messages := SplitMessages(text)
	kept, dropped := DropMaskedContacts(messages)
	if dropped > 0 {
		log.Debug("[formatter] Skipped %d message(s) with masked contact numbers", dropped)
	}

	outputs = make([]models.FormattedOutput, 0, len(kept))
	for _, msg := range kept {
		outputs = append(outputs, f.formatMessage(msg))
	}

	log.Info("[formatter] Processed %d property entries from %d message(s)", len(outputs), len(messages))
	return outputs, nil
}

// FormatText runs Format and joins the rendered blocks for display.
func (f *Formatter) FormatText(ctx context.Context, raw string) (string, error) {
	outputs, err := f.Format(ctx, raw)
	if err != nil {
		return "", err
	}
	return RenderAll(outputs), nil
}

func (f *Formatter) formatMessage(msg models.Message) models.FormattedOutput {
	body, bodyStamp := NormalizeMessageTimestamps(strings.Join(msg.Lines, "\n"))

	stamp := NormalizeHeader(msg.Header)
	if stamp == "" {
		stamp = bodyStamp
	}

	record := f.extractor.Extract(splitLines(body))
	return models.FormattedOutput{
		Text: RenderRecord(stamp, record),
		Data: record,
	}
}
