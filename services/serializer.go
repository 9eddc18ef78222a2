package services

import (
	"encoding/csv"
	"fmt"
	"strings"

	"property-formatter/models"
)

// OutputSeparator divides record blocks in the display text.
const OutputSeparator = "\n\n---\n\n"

// CSVHeader is the export column order. The four reserved columns are filled
// by downstream systems and are always written empty.
var CSVHeader = []string{
	"property_id",
	"property_type",
	"special_note",
	"owner_name",
	"owner_contact",
	"area",
	"address",
	"sub_property_type",
	"size",
	"furnishing_status",
	"availability",
	"floor",
	"tenant_preference",
	"additional_details",
	"age",
	"rent_or_sell_price",
	"deposit",
	"date_stamp",
	"rent_sold_out",
}

// RenderRecord produces the numbered text block for one record, headed by
// its normalized timestamp.
func RenderRecord(timestamp string, r *models.PropertyRecord) string {
	var b strings.Builder
	b.WriteString(timestamp)
	b.WriteString("\n")
	for i, f := range r.Fields() {
		fmt.Fprintf(&b, "\n%d) %s - %s", i+1, f.Name, f.Value)
	}
	return b.String()
}

// RenderAll joins the text blocks of a run for display.
func RenderAll(outputs []models.FormattedOutput) string {
	texts := make([]string, len(outputs))
	for i, o := range outputs {
		texts[i] = o.Text
	}
	return strings.Join(texts, OutputSeparator)
}

// EscapeCSV quotes a value when it contains a comma, a double quote or a
// newline, doubling any embedded quotes.
func EscapeCSV(value string) string {
	if value == "" {
		return ""
	}
	return csvLine([]string{value})
}

// CSVRow renders one record against CSVHeader, without a line terminator.
func CSVRow(r *models.PropertyRecord) string {
	cells := make([]string, len(CSVHeader))
	for i, column := range CSVHeader {
		if v, ok := r.Get(column); ok {
			cells[i] = v
		}
	}
	return csvLine(cells)
}

// RenderCSV renders the header and one row per output, newline separated.
func RenderCSV(outputs []models.FormattedOutput) string {
	rows := make([]string, 0, len(outputs)+1)
	rows = append(rows, csvLine(CSVHeader))
	for _, o := range outputs {
		rows = append(rows, CSVRow(o.Data))
	}
	return strings.Join(rows, "\n")
}

// csvLine encodes one CSV record and drops the trailing newline. Extracted
// values are trimmed, so csv.Writer only quotes on commas, quotes and line
// breaks here.
func csvLine(cells []string) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	// a strings.Builder never fails, so Write can only error on a bad Comma
	_ = w.Write(cells)
	w.Flush()
	return strings.TrimSuffix(b.String(), "\n")
}
