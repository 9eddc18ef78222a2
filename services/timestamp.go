package services

import (
	"regexp"
	"strconv"
	"strings"

	"property-formatter/models"
)

var (
	// exportTimestampRegexp matches the strict chat-export form "[2:15 PM, 25/03/2024]".
	exportTimestampRegexp = regexp.MustCompile(`(?i)\[(\d{1,2}):(\d{2})\s*(am|pm),\s*(\d{1,2})/(\d{1,2})/\d{4}\]`)
	// messageTimestampRegexp is the looser variant seen inside pasted listings:
	// padding around every part and a 2 to 4 digit year.
	messageTimestampRegexp = regexp.MustCompile(`(?i)\[\s*(\d{1,2}):(\d{2})\s*(am|pm)\s*,\s*(\d{1,2})/(\d{1,2})/\d{2,4}\s*\]`)
	// markerRegexp matches the normalized "[25/3, 2:15 pm]" form that
	// delimits messages.
	markerRegexp = regexp.MustCompile(`(?i)\[\s*(\d{1,2})/(\d{1,2})\s*,\s*(\d{1,2}):(\d{2})\s*(am|pm)\s*\]`)
)

// foldHour brings a leaked 0 or 13-23 hour into 12-hour range. It does not
// touch the meridiem.
func foldHour(h int) int {
	switch {
	case h == 0:
		return 12
	case h > 12:
		return h - 12
	}
	return h
}

func buildTimestamp(day, month, hour, minute, meridiem string) models.Timestamp {
	// every part comes from a \d group, so Atoi cannot fail
	d, _ := strconv.Atoi(day)
	mo, _ := strconv.Atoi(month)
	h, _ := strconv.Atoi(hour)
	mi, _ := strconv.Atoi(minute)
	return models.Timestamp{
		Day:      d,
		Month:    mo,
		Hour12:   foldHour(h),
		Minute:   mi,
		Meridiem: models.Meridiem(strings.ToLower(meridiem)),
	}
}

// ParseTimestamp reads the first timestamp in s, accepting both the export
// form "[2:15 PM, 25/03/2024]" and the normalized form "[25/3, 2:15 pm]".
func ParseTimestamp(s string) (models.Timestamp, bool) {
	if m := messageTimestampRegexp.FindStringSubmatch(s); m != nil {
		return buildTimestamp(m[4], m[5], m[1], m[2], m[3]), true
	}
	if m := markerRegexp.FindStringSubmatch(s); m != nil {
		return buildTimestamp(m[1], m[2], m[3], m[4], m[5]), true
	}
	return models.Timestamp{}, false
}

// NormalizeTimestamps rewrites every "[H:MM am, D/M/YYYY]" timestamp in text
// as "[D/M, h:mm am]". Everything else passes through untouched, so the
// function is idempotent.
func NormalizeTimestamps(text string) string {
	return exportTimestampRegexp.ReplaceAllStringFunc(text, func(match string) string {
		m := exportTimestampRegexp.FindStringSubmatch(match)
		return buildTimestamp(m[4], m[5], m[1], m[2], m[3]).String()
	})
}

// NormalizeMessageTimestamps is the tolerant variant used on message bodies.
// It returns the rewritten text and the last timestamp it produced, or
// models.NotAvailable when there was none.
func NormalizeMessageTimestamps(text string) (string, string) {
	last := models.NotAvailable
	out := messageTimestampRegexp.ReplaceAllStringFunc(text, func(match string) string {
		m := messageTimestampRegexp.FindStringSubmatch(match)
		last = buildTimestamp(m[4], m[5], m[1], m[2], m[3]).String()
		return last
	})
	return out, last
}

// NormalizeHeader re-derives a message header in canonical form, stripping
// padding and leading zeros. It returns "" when header holds no timestamp.
func NormalizeHeader(header string) string {
	ts, ok := ParseTimestamp(header)
	if !ok {
		return ""
	}
	return ts.String()
}
