package services

import (
	"strings"

	"golang.org/x/text/cases"

	"property-formatter/vocab"
)

// fuzzyAreaThreshold is the Jaccard score a line must beat to be taken as a
// misspelt locality.
const fuzzyAreaThreshold = 0.8

// PreSplitAreas rewrites each line that starts with a known locality glued to
// more text ("Kharadi Near EON IT Park") into two lines, locality first. A
// line that is exactly a locality name is left alone.
func PreSplitAreas(text string, voc *vocab.Vocabulary) string {
	re := voc.AreaSplitPattern()
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if _, exact := voc.LookupArea(line); exact {
			continue
		}
		if m := re.FindStringSubmatch(line); m != nil {
			lines[i] = m[1] + "\n" + m[2]
		}
	}
	return strings.Join(lines, "\n")
}

type charSet map[rune]struct{}

func newCharSet(s string) charSet {
	set := make(charSet)
	for _, r := range cases.Fold().String(s) {
		set[r] = struct{}{}
	}
	return set
}

func (a charSet) jaccard(b charSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for r := range a {
		if _, ok := b[r]; ok {
			inter++
		}
	}
	return float64(inter) / float64(len(a)+len(b)-inter)
}

// Jaccard is the intersection-over-union of the case-folded character sets of
// a and b. Order and repetition of characters are ignored.
func Jaccard(a, b string) float64 {
	return newCharSet(a).jaccard(newCharSet(b))
}

// AreaMatcher resolves a line to a gazetteer locality. Character sets of the
// gazetteer are computed once; the matcher is safe for concurrent use.
type AreaMatcher struct {
	voc   *vocab.Vocabulary
	names []string
	sets  []charSet
}

// NewAreaMatcher prepares a matcher over the vocabulary's gazetteer.
func NewAreaMatcher(voc *vocab.Vocabulary) *AreaMatcher {
	names := voc.Areas()
	sets := make([]charSet, len(names))
	for i, name := range names {
		sets[i] = newCharSet(name)
	}
	return &AreaMatcher{voc: voc, names: names, sets: sets}
}

// Match returns the canonical locality for line. An exact case-insensitive
// hit wins; otherwise the best Jaccard score above the threshold is taken,
// the earliest gazetteer entry winning ties.
func (m *AreaMatcher) Match(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if canonical, ok := m.voc.LookupArea(line); ok {
		return canonical, true
	}

	lineSet := newCharSet(line)
	best := ""
	bestScore := 0.0
	for i, set := range m.sets {
		score := lineSet.jaccard(set)
		if score > fuzzyAreaThreshold && score > bestScore {
			best = m.names[i]
			bestScore = score
		}
	}
	return best, best != ""
}
