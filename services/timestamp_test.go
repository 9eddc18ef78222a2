package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-formatter/models"
)

func TestNormalizeTimestamps(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[2:15 PM, 25/03/2024]", "[25/3, 2:15 pm]"},
		{"[14:15 pm, 25/3/2024]", "[25/3, 2:15 pm]"},
		{"[13:00 PM, 2/2/2024]", "[2/2, 1:00 pm]"},
		{"[0:05 am, 01/01/2024]", "[1/1, 12:05 am]"},
		{"[12:30 AM, 9/11/2023] hello", "[9/11, 12:30 am] hello"},
		// day and month are not range checked
		{"[1:00 am, 32/13/2024]", "[32/13, 1:00 am]"},
		// the strict form needs a four digit year and no padding
		{"[2:15 PM, 25/03/24]", "[2:15 PM, 25/03/24]"},
		{"no timestamp here", "no timestamp here"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTimestamps(tt.in), "NormalizeTimestamps(%q)", tt.in)
	}
}

func TestNormalizeTimestampsIdempotent(t *testing.T) {
	inputs := []string{
		"[2:15 PM, 25/03/2024]\nRental\n[11:59 am, 1/12/2024]",
		"[25/3, 2:15 pm]",
		"plain text",
	}
	for _, in := range inputs {
		once := NormalizeTimestamps(in)
		assert.Equal(t, once, NormalizeTimestamps(once))
	}
}

func TestNormalizeMessageTimestamps(t *testing.T) {
	out, last := NormalizeMessageTimestamps("[ 2:15 PM ,\t25/03/24 ]\nRental\n[9:01 am, 26/3/2024]")
	assert.Equal(t, "[25/3, 2:15 pm]\nRental\n[26/3, 9:01 am]", out)
	assert.Equal(t, "[26/3, 9:01 am]", last)

	out, last = NormalizeMessageTimestamps("Rental\nKharadi")
	assert.Equal(t, "Rental\nKharadi", out)
	assert.Equal(t, models.NotAvailable, last)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "[5/3, 9:07 pm]", NormalizeHeader("[05/03 , 09:07 PM]"))
	assert.Equal(t, "[25/3, 2:15 pm]", NormalizeHeader("[25/3, 2:15 pm]"))
	assert.Equal(t, "[1/4, 12:00 am]", NormalizeHeader("[1/4, 0:00 am]"))
	assert.Equal(t, "", NormalizeHeader(""))
	assert.Equal(t, "[25/3, 2:15 pm]", NormalizeHeader("[2:15 PM, 25/03/2024]"))
	assert.Equal(t, "", NormalizeHeader("Forwarded"))
}

func TestParseTimestamp(t *testing.T) {
	ts, ok := ParseTimestamp("[14:15 pm, 25/3/2024]")
	require.True(t, ok)
	assert.Equal(t, models.Timestamp{Day: 25, Month: 3, Hour12: 2, Minute: 15, Meridiem: models.PM}, ts)

	ts, ok = ParseTimestamp("[7/8, 6:05 AM]")
	require.True(t, ok)
	assert.Equal(t, "[7/8, 6:05 am]", ts.String())

	_, ok = ParseTimestamp("25 March")
	assert.False(t, ok)
}
