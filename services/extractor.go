package services

import (
	"strings"

	"property-formatter/models"
	"property-formatter/vocab"
)

// Extractor turns the lines of one message into a PropertyRecord. It holds
// only immutable lookup data; every call to Extract uses fresh scan state.
type Extractor struct {
	voc   *vocab.Vocabulary
	areas *AreaMatcher
}

// NewExtractor creates an Extractor over the given vocabulary.
func NewExtractor(voc *vocab.Vocabulary) *Extractor {
	return &Extractor{voc: voc, areas: NewAreaMatcher(voc)}
}

// scan is the per-message state of one extraction.
type scan struct {
	*Extractor
	record *models.PropertyRecord
	lines  []string

	contactFound        bool
	areaFound           bool
	furnishingFound     bool
	depositFound        bool
	priceNotListedFound bool
	prices              []float64
}

// Extract scans lines once, left to right, and returns the populated record.
//
// Most per-line fields are overwritten on every hit. The exceptions are the
// contact (first hit), the area (first hit, which also swallows the
// following address lines) and the price/deposit pair, which is ordinal:
// first price is the rent or sale price, the second is the deposit for
// rentals, and a deposit locks both.
func (e *Extractor) Extract(lines []string) *models.PropertyRecord {
	s := &scan{
		Extractor: e,
		record:    models.NewPropertyRecord(),
		lines:     lines,
	}
	s.wholeMessage(strings.Join(lines, "\n"))

	for i := 0; i < len(s.lines); i++ {
		line := s.lines[i]
		s.contact(line)

		if !s.areaFound {
			if next, ok := s.area(i); ok {
				i = next - 1
				continue
			}
		}

		s.lineFields(line)
		i = s.price(i)
	}

	if !s.furnishingFound {
		if v, ok := furnishingOf(strings.Join(lines, "\n"), s.voc); ok {
			s.record.FurnishingStatus = v
		}
	}
	return s.record
}

func (s *scan) wholeMessage(text string) {
	prefix := listingPrefix(text)

	s.record.PropertyType = propertyTypeOf(text)
	s.record.OwnerName = ownerNameOf(text)
	s.record.Availability = availabilityOf(prefix, s.voc)
	s.record.TenantPreference = tenantPreferenceOf(prefix, s.voc)
}

func (s *scan) contact(line string) {
	if s.contactFound {
		return
	}
	if c, ok := contactOf(line); ok {
		s.record.OwnerContact = c
		s.contactFound = true
	}
}

// area tries to classify line i as a locality. On a hit the lines after it,
// up to the first sub-property-type line, become the address. It returns the
// index of the first line not consumed.
func (s *scan) area(i int) (int, bool) {
	name, ok := s.areas.Match(s.lines[i])
	if !ok {
		return i, false
	}
	s.record.Area = name
	s.areaFound = true

	j := i + 1
	var address []string
	for ; j < len(s.lines); j++ {
		if isSubPropertyLine(s.lines[j]) {
			break
		}
		address = append(address, s.lines[j])
	}
	if len(address) > 0 {
		s.record.Address = strings.TrimSpace(strings.Join(address, ", "))
	}
	return j, true
}

func (s *scan) lineFields(line string) {
	r := s.record
	if v, ok := subPropertyTypeOf(line, s.voc); ok {
		r.SubPropertyType = v
	}
	if v, ok := sizeOf(line); ok {
		r.Size = v
	}
	if v, ok := furnishingOf(line, s.voc); ok {
		r.FurnishingStatus = v
		s.furnishingFound = true
	}
	if v, ok := floorOf(line); ok {
		r.Floor = v
	}
	if v, ok := additionalDetailsOf(line); ok {
		r.AdditionalDetails = v
	}
	if v, ok := ageOf(line); ok {
		r.Age = v
	}
}

// price runs the ordinal price/deposit rules for line i and returns the
// index the scan should continue from, which moves past a deposit line that
// was read ahead.
func (s *scan) price(i int) int {
	line := s.lines[i]
	r := s.record

	if value, ok := priceOf(line); ok {
		s.prices = append(s.prices, value)
		if !s.depositFound {
			switch len(s.prices) {
			case 1:
				r.RentOrSellPrice = formatPrice(value)
			case 2:
				if r.IsRental() {
					r.Deposit = formatPrice(value)
					s.depositFound = true
				}
			}
		}
	}

	if len(s.prices) == 0 && !s.priceNotListedFound {
		if m := s.voc.PriceNotListedPattern().FindStringSubmatch(line); m != nil {
			r.RentOrSellPrice = strings.TrimSpace(m[1])
			s.priceNotListedFound = true
			if r.IsRental() && !s.depositFound && i+1 < len(s.lines) {
				if months, ok := depositMonthsOf(s.lines[i+1]); ok {
					r.Deposit = months
					s.depositFound = true
					i++
				}
			}
		}
	}

	if len(s.prices) == 1 && !s.depositFound && r.IsRental() {
		if months, ok := depositMonthsOf(line); ok {
			r.Deposit = months
			s.depositFound = true
		}
	}
	return i
}
