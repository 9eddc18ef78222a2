package services

import (
	"regexp"
	"strings"
	"unicode"

	"property-formatter/models"
)

// maskedContactRegexp flags partially redacted numbers such as "98765*****".
// Messages carrying one are forwards of someone else's listing, not listings.
var maskedContactRegexp = regexp.MustCompile(`\d+\*+`)

// SplitMessages cuts raw text into messages at every "[D/M, h:mm am]" marker.
// Text before the first marker becomes a message with an empty header;
// markers followed only by whitespace produce nothing.
func SplitMessages(raw string) []models.Message {
	var messages []models.Message

	appendSegment := func(header, segment string) {
		lines := splitLines(segment)
		if len(lines) == 0 {
			return
		}
		messages = append(messages, models.Message{Header: header, Lines: lines})
	}

	header := ""
	prev := 0
	for _, loc := range markerRegexp.FindAllStringIndex(raw, -1) {
		appendSegment(header, raw[prev:loc[0]])
		header = raw[loc[0]:loc[1]]
		prev = loc[1]
	}
	appendSegment(header, raw[prev:])

	return messages
}

// HasMaskedContact reports whether the message contains a masked number.
func HasMaskedContact(msg models.Message) bool {
	if maskedContactRegexp.MatchString(msg.Header) {
		return true
	}
	for _, line := range msg.Lines {
		if maskedContactRegexp.MatchString(line) {
			return true
		}
	}
	return false
}

// DropMaskedContacts filters out messages with masked numbers, keeping order.
// It also returns how many were dropped.
func DropMaskedContacts(messages []models.Message) ([]models.Message, int) {
	kept := make([]models.Message, 0, len(messages))
	for _, msg := range messages {
		if HasMaskedContact(msg) {
			continue
		}
		kept = append(kept, msg)
	}
	return kept, len(messages) - len(kept)
}

// splitLines returns the trimmed, non-empty lines of s.
func splitLines(s string) []string {
	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// normaliseSpaces replaces non-ASCII space characters (no-break and narrow
// no-break spaces are common in chat exports) with a plain space so the
// ASCII-only \s classes in the patterns see them.
func normaliseSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII && unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}
