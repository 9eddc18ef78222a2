// Package vocab holds the closed enumerations the extractor normalizes
// against: the locality gazetteer and the sub-type, furnishing, tenant,
// availability and price-not-listed phrase sets.
//
// The data ships embedded as YAML and is parsed once per process. A
// Vocabulary is read-only after construction and safe for concurrent use.
package vocab

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var embedded []byte

var (
	defaultOnce sync.Once
	defaultVoc  *Vocabulary
)

// Default returns the embedded vocabulary. It panics if the embedded
// document is invalid, which can only happen through a bad build.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		v, err := Parse(embedded)
		if err != nil {
			panic(err)
		}
		defaultVoc = v
	})
	return defaultVoc
}

type document struct {
	Areas               []string `yaml:"areas"`
	SubPropertyTypes    []string `yaml:"sub_property_types"`
	FurnishingStatuses  []string `yaml:"furnishing_statuses"`
	TenantPreferences   []string `yaml:"tenant_preferences"`
	AvailabilityOptions []string `yaml:"availability_options"`
	PriceNotListed      []string `yaml:"price_not_listed"`
}

// Vocabulary is an immutable set of ordered lists plus case-folded lookup
// tables derived from them.
type Vocabulary struct {
	areas          []string
	priceNotListed []string

	areaIndex         map[string]string
	subTypeIndex      map[string]string
	furnishingIndex   map[string]string
	tenantIndex       map[string]string
	availabilityIndex map[string]string

	areaSplitRe      *regexp.Regexp
	priceNotListedRe *regexp.Regexp
}

// Parse builds a Vocabulary from a YAML document.
func Parse(data []byte) (*Vocabulary, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("vocab: decode: %w", err)
	}
	if len(doc.Areas) == 0 {
		return nil, fmt.Errorf("vocab: gazetteer is empty")
	}
	if len(doc.PriceNotListed) == 0 {
		return nil, fmt.Errorf("vocab: price_not_listed is empty")
	}

	v := &Vocabulary{
		areas:             dedupe(doc.Areas),
		priceNotListed:    dedupe(doc.PriceNotListed),
		subTypeIndex:      index(doc.SubPropertyTypes, Fold),
		furnishingIndex:   index(doc.FurnishingStatuses, FoldCompact),
		tenantIndex:       index(doc.TenantPreferences, Fold),
		availabilityIndex: index(doc.AvailabilityOptions, Fold),
	}
	v.areaIndex = index(v.areas, Fold)
	v.areaSplitRe = regexp.MustCompile(`(?i)^(` + alternation(byLengthDesc(v.areas)) + `)[ \t]+(\S.*)$`)
	v.priceNotListedRe = regexp.MustCompile(`(?i)(` + alternation(v.priceNotListed) + `)`)
	return v, nil
}

// Fold returns the case-folded, trimmed form of s used as a lookup key.
// A new Caser is created per call because Casers keep internal state.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// FoldCompact folds s and drops hyphens, pipes, plus signs and whitespace so
// that "Semi Furnished", "semi-furnished" and "SemiFurnished" share a key.
func FoldCompact(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '|', '+', ' ', '\t', '\n', '\r', '\v', '\f':
			return -1
		}
		return r
	}, Fold(s))
}

// Areas returns a copy of the gazetteer in canonical order.
func (v *Vocabulary) Areas() []string {
	out := make([]string, len(v.areas))
	copy(out, v.areas)
	return out
}

// LookupArea returns the canonical spelling of an exact, case-insensitive
// gazetteer match.
func (v *Vocabulary) LookupArea(s string) (string, bool) {
	c, ok := v.areaIndex[Fold(s)]
	return c, ok
}

func (v *Vocabulary) LookupSubType(s string) (string, bool) {
	c, ok := v.subTypeIndex[Fold(s)]
	return c, ok
}

// LookupFurnishing compares ignoring case, hyphens and whitespace.
func (v *Vocabulary) LookupFurnishing(s string) (string, bool) {
	c, ok := v.furnishingIndex[FoldCompact(s)]
	return c, ok
}

func (v *Vocabulary) LookupTenant(s string) (string, bool) {
	c, ok := v.tenantIndex[Fold(s)]
	return c, ok
}

func (v *Vocabulary) LookupAvailability(s string) (string, bool) {
	c, ok := v.availabilityIndex[Fold(s)]
	return c, ok
}

// AreaSplitPattern matches a single line that starts with a gazetteer name
// followed on the same line by more text. Group 1 is the name as written,
// group 2 the remainder. Longer names are tried first.
func (v *Vocabulary) AreaSplitPattern() *regexp.Regexp {
	return v.areaSplitRe
}

// PriceNotListedPattern matches any "price on call" style phrase; group 1 is
// the phrase as written.
func (v *Vocabulary) PriceNotListedPattern() *regexp.Regexp {
	return v.priceNotListedRe
}

func index(values []string, key func(string) string) map[string]string {
	m := make(map[string]string, len(values))
	for _, val := range values {
		k := key(val)
		if _, exists := m[k]; !exists {
			m[k] = val
		}
	}
	return m
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, val := range values {
		val = strings.TrimSpace(val)
		k := Fold(val)
		if val == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, val)
	}
	return out
}

func byLengthDesc(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

func alternation(values []string) string {
	quoted := make([]string, len(values))
	for i, val := range values {
		quoted[i] = regexp.QuoteMeta(val)
	}
	return strings.Join(quoted, "|")
}
