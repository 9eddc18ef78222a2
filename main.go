package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"property-formatter/config"
	"property-formatter/models"
	"property-formatter/services"
	"property-formatter/storage"
	"property-formatter/utils"
)

const stdinName = "-"

type runResult struct {
	outputs []models.FormattedOutput
	err     error
}

func main() {
	cfg := config.Load()
	logger := utils.NewLoggerWithOptions(utils.LoggerOptions{
		Level:    cfg.LogLevel,
		UseColor: cfg.LogColor,
	})

	inputs := os.Args[1:]
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}

	if cfg.Mode == config.ModeTimestamp {
		runTimestampMode(cfg, logger, inputs)
		return
	}

	formatter := services.NewFormatterWithOptions(logger, services.FormatterOptions{
		NormalizeExportTimestamps: cfg.NormalizeExportTimestamps,
	})
	outputs, err := formatAll(context.Background(), formatter, logger, inputs, cfg.MaxConcurrency)
	if err != nil {
		exitOnError(logger, err)
	}

	if err := writeOutput(os.Stdout, cfg.OutputFormat, outputs); err != nil {
		logger.Error("Failed to write output: %v", err)
		os.Exit(1)
	}

	if cfg.CSVOutputDir != "" {
		exportCSV(logger, cfg.CSVOutputDir, outputs)
	}

	if cfg.CopyToClipboard {
		copyToClipboard(cfg, logger, clipboardText(cfg.OutputFormat, outputs))
	}

	if cfg.ShowInsights {
		insightSvc := services.NewInsightService(logger)
		insightSvc.Print(os.Stderr, insightSvc.Generate(outputs))
	}
}

// runTimestampMode only rewrites export timestamps, so the result can be
// pasted back into the formatter later.
func runTimestampMode(cfg *config.Config, logger *utils.Logger, inputs []string) {
	text, err := normalizeInputs(logger, inputs)
	if err != nil {
		exitOnError(logger, err)
	}
	if _, err := fmt.Fprintln(os.Stdout, text); err != nil {
		logger.Error("Failed to write output: %v", err)
		os.Exit(1)
	}
	if cfg.CopyToClipboard {
		copyToClipboard(cfg, logger, text)
	}
}

func exitOnError(logger *utils.Logger, err error) {
	if errors.Is(err, services.ErrEmptyInput) {
		logger.Error("Input required: paste your messages before formatting")
	} else {
		logger.Error("Processing failed: %v", err)
	}
	os.Exit(1)
}

// normalizeInputs rewrites the timestamps of every unique input and joins
// the results in argument order.
func normalizeInputs(logger *utils.Logger, inputs []string) (string, error) {
	seen := utils.NewPathSet()
	var parts []string
	for _, input := range inputs {
		if !seen.Add(input) {
			logger.Warn("Skipping duplicate input %s", input)
			continue
		}
		raw, err := readInput(input)
		if err != nil {
			return "", fmt.Errorf("%s: %w", input, err)
		}
		if strings.TrimSpace(raw) == "" {
			return "", fmt.Errorf("%s: %w", input, services.ErrEmptyInput)
		}
		parts = append(parts, services.NormalizeTimestamps(raw))
	}
	logger.Info("Normalized timestamps in %d input(s)", seen.Size())
	return strings.Join(parts, "\n"), nil
}

func copyToClipboard(cfg *config.Config, logger *utils.Logger, text string) {
	clip := storage.NewClipboardWriter(logger, cfg.ClipboardRetries)
	if !clip.Available() {
		logger.Warn("Copy skipped: no clipboard utility found on this system")
		return
	}
	if err := clip.WriteText(text); err != nil {
		logger.Error("Copy failed: %v", err)
		return
	}
	logger.Info("Output copied to clipboard")
}

// clipboardText is what gets copied: the CSV document for csv output, the
// display text otherwise.
func clipboardText(format string, outputs []models.FormattedOutput) string {
	if format == config.FormatCSV {
		return services.RenderCSV(outputs)
	}
	return services.RenderAll(outputs)
}

// formatAll runs one independent formatting run per unique input on the
// worker pool and concatenates the results in argument order. Any failed run
// fails the whole invocation.
func formatAll(ctx context.Context, f *services.Formatter, logger *utils.Logger, inputs []string, concurrency int) ([]models.FormattedOutput, error) {
	seen := utils.NewPathSet()
	pool := utils.NewWorkerPool(concurrency)
	results := make([]*runResult, len(inputs))

	for i, input := range inputs {
		if !seen.Add(input) {
			logger.Warn("Skipping duplicate input %s", input)
			continue
		}
		i, input := i, input
		results[i] = &runResult{}
		pool.Submit(func() {
			raw, err := readInput(input)
			if err != nil {
				results[i].err = err
				return
			}
			results[i].outputs, results[i].err = f.Format(ctx, raw)
			if results[i].err == nil {
				logger.With("file", input).Debug("Extracted %d entries", len(results[i].outputs))
			}
		})
	}
	pool.Wait()
	logger.Debug("Formatted %d unique input(s)", seen.Size())

	var all []models.FormattedOutput
	for i, r := range results {
		if r == nil {
			continue
		}
		if r.err != nil {
			return nil, fmt.Errorf("%s: %w", inputs[i], r.err)
		}
		all = append(all, r.outputs...)
	}
	return all, nil
}

func readInput(name string) (string, error) {
	if name == stdinName {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

func writeOutput(w io.Writer, format string, outputs []models.FormattedOutput) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(outputs)
	case config.FormatCSV:
		csvWriter, err := storage.NewCSVStreamWriter(w)
		if err != nil {
			return err
		}
		if err := csvWriter.Write(outputs); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w)
		return err
	default:
		_, err := fmt.Fprintln(w, services.RenderAll(outputs))
		return err
	}
}

func exportCSV(logger *utils.Logger, dir string, outputs []models.FormattedOutput) {
	if len(outputs) == 0 {
		logger.Warn("No data to export: no property entries were extracted")
		return
	}

	now := time.Now()
	path := storage.ExportPath(dir, now)
	csvWriter, err := storage.NewCSVWriter(path)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		return
	}
	defer csvWriter.Close()

	if err := csvWriter.Write(outputs); err != nil {
		logger.Error("CSV write failed: %v", err)
		return
	}
	logger.Info("Exported %d property entries as %q to %s",
		csvWriter.Rows(), storage.ExportFileName(now), path)
}
