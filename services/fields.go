package services

import (
	"regexp"
	"strconv"
	"strings"

	"property-formatter/models"
	"property-formatter/vocab"
)

var (
	propertyTypeRegexp = regexp.MustCompile(`(?i)(Resale|Rental)`)
	// ownerRegexp takes everything after "Owner" up to the first 10-digit run.
	ownerRegexp   = regexp.MustCompile(`(?is)Owner\s*(.*?)\s*\d{10}`)
	contactRegexp = regexp.MustCompile(`\d{10}`)

	subPropertyRegexp  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:[-_\s]+)?\s*(BHK|RK)`)
	sizeRegexp         = regexp.MustCompile(`(?i)(?:Carpet area|Built up area|Super Built-up area|\d+\s*(?:sq\.ft|sqft)\s*Built Up area)\s*:?\s*(\d+(?:\.\d+)?)\s*(?:sqft\.?|sq\.ft)?`)
	furnishingRegexp   = regexp.MustCompile(`(?i)(Furnished|Unfurnished|Semi-?Furnished|Semi\s+Furnished)`)
	floorRegexp        = regexp.MustCompile(`(?i)\(?\s*(\d+(?:st|nd|rd|th)?)\s*(?:of|out\s+of)\s*(\d+(?:st|nd|rd|th)?)\s*(?:floor|floors)?\s*\)?`)
	additionalRegexp   = regexp.MustCompile(`(?i)(East|West|North|South)\s*facing|(\d+\s*(?:Covered|Open)?\s*Parking|No\s*Parking)`)
	ageRegexp          = regexp.MustCompile(`(?i)(\d+\s*(?:to\s*\d+\s*)?years?\s*(?:old|\+)?)`)
	availabilityRegexp = regexp.MustCompile(`(?i)(Ready to move|Immediate|Immediately|Available now|Available)`)
	tenantRegexp       = regexp.MustCompile(`(?i)(Bachelors\s*\(Women Only\)|Bachelors\s*\(Men Only\)|Bachelors\s*\(Men/Women\)|All|Both|Family(?:\s*Only)?)`)

	priceRegexp        = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(K|Lac|Lacs|L|Cr|C\s*r|Rs)`)
	depositMonthRegexp = regexp.MustCompile(`(?i)(\d+\s*Month)`)

	propertyCodeRegexp = regexp.MustCompile(`(?i)Property Code`)
)

// Whole-message policies. Each looks at the full message (or the part before
// the Property Code marker) and returns NotAvailable when nothing matches.

func propertyTypeOf(text string) string {
	m := propertyTypeRegexp.FindStringSubmatch(text)
	if m == nil {
		return models.NotAvailable
	}
	if strings.EqualFold(m[1], "resale") {
		return models.TypeResale
	}
	return models.TypeRental
}

func ownerNameOf(text string) string {
	m := ownerRegexp.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return models.NotAvailable
	}
	return strings.TrimSpace(m[1])
}

// listingPrefix returns the text before the first "Property Code" marker.
// When the marker opens the message the whole text is used instead.
func listingPrefix(text string) string {
	if prefix := propertyCodeRegexp.Split(text, 2)[0]; prefix != "" {
		return prefix
	}
	return text
}

func availabilityOf(prefix string, voc *vocab.Vocabulary) string {
	m := availabilityRegexp.FindStringSubmatch(prefix)
	if m == nil {
		return models.NotAvailable
	}
	if canonical, ok := voc.LookupAvailability(m[1]); ok {
		return canonical
	}
	return models.NotAvailable
}

func tenantPreferenceOf(prefix string, voc *vocab.Vocabulary) string {
	m := tenantRegexp.FindStringSubmatch(prefix)
	if m == nil {
		return models.NotAvailable
	}
	value := strings.TrimSpace(m[1])
	if vocab.Fold(value) == "family" {
		value = "Family Only"
	}
	if canonical, ok := voc.LookupTenant(value); ok {
		return canonical
	}
	return models.NotAvailable
}

// furnishingOf is used both per line and as the whole-message fallback.
// Unknown spellings keep the matched text.
func furnishingOf(text string, voc *vocab.Vocabulary) (string, bool) {
	m := furnishingRegexp.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	raw := strings.TrimSpace(m[1])
	if canonical, ok := voc.LookupFurnishing(raw); ok {
		return canonical, true
	}
	return raw, true
}

// Per-line policies. The scan overwrites the field on every hit, so the last
// matching line wins.

func contactOf(line string) (string, bool) {
	c := contactRegexp.FindString(line)
	return c, c != ""
}

func subPropertyTypeOf(line string, voc *vocab.Vocabulary) (string, bool) {
	m := subPropertyRegexp.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	normalized := strings.Join(strings.Fields(m[1]+" "+strings.ToUpper(m[2])), " ")
	if canonical, ok := voc.LookupSubType(normalized); ok {
		return canonical, true
	}
	return normalized, true
}

func isSubPropertyLine(line string) bool {
	return subPropertyRegexp.MatchString(line)
}

func sizeOf(line string) (string, bool) {
	m := sizeRegexp.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1] + " sq.ft", true
}

func floorOf(line string) (string, bool) {
	m := floorRegexp.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1] + " of " + m[2] + " floors", true
}

func additionalDetailsOf(line string) (string, bool) {
	m := additionalRegexp.FindString(line)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(m), true
}

func ageOf(line string) (string, bool) {
	m := ageRegexp.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// Price helpers.

var priceMultipliers = map[string]float64{
	"k":    1000,
	"lac":  100000,
	"lacs": 100000,
	"l":    100000,
	"cr":   10000000,
	"rs":   1,
}

// priceOf converts "25 K", "1.2 Cr", "45000 Rs" and similar into rupees.
func priceOf(line string) (float64, bool) {
	m := priceRegexp.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	unit := strings.ToLower(strings.Join(strings.Fields(m[2]), ""))
	return value * priceMultipliers[unit], true
}

// formatPrice renders a converted price in its shortest exact form.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func depositMonthsOf(line string) (string, bool) {
	m := depositMonthRegexp.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
