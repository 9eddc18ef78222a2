package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats for the formatted records.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Modes select what the CLI does with its input.
const (
	// ModeFormat extracts property records.
	ModeFormat = "format"
	// ModeTimestamp only rewrites "[H:MM am, D/M/YYYY]" export timestamps.
	ModeTimestamp = "timestamp"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Mode string

	// NormalizeExportTimestamps rewrites raw export timestamps into message
	// markers before splitting, so a raw chat export can be formatted directly.
	NormalizeExportTimestamps bool

	OutputFormat string
	CSVOutputDir string

	CopyToClipboard  bool
	ClipboardRetries int

	MaxConcurrency int
	ShowInsights   bool

	LogLevel string
	LogColor bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		Mode:                      normaliseMode(getEnv("MODE", ModeFormat)),
		NormalizeExportTimestamps: getEnvBool("NORMALIZE_EXPORT_TIMESTAMPS", true),

		OutputFormat: normaliseFormat(getEnv("OUTPUT_FORMAT", FormatText)),
		CSVOutputDir: getEnv("CSV_OUTPUT_DIR", ""),

		CopyToClipboard:  getEnvBool("COPY_TO_CLIPBOARD", false),
		ClipboardRetries: getEnvInt("CLIPBOARD_RETRIES", 3),

		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 4),
		ShowInsights:   getEnvBool("SHOW_INSIGHTS", false),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogColor: getEnvBool("LOG_COLOR", true),
	}
}

func normaliseMode(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), ModeTimestamp) {
		return ModeTimestamp
	}
	return ModeFormat
}

func normaliseFormat(s string) string {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatJSON, FormatCSV:
		return f
	default:
		return FormatText
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
