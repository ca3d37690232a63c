package food

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Resolution is the outcome of resolving one free-text food phrase.
type Resolution struct {
	Raw  string `json:"raw"`
	Name string `json:"name"`
	Kcal int    `json:"kcal"`
}

// fuzzyCutoff is the minimum sequence-similarity ratio for a catalog key to
// count as a match.
const fuzzyCutoff = 0.7

const estimatorBaseline = 150

var (
	digitRun  = regexp.MustCompile(`\d+`)
	spaceRun  = regexp.MustCompile(`\s+`)
	unitToken = regexp.MustCompile(`\b(cup|bowl|plate|slice|piece|pcs|glass)\b`)

	quantityWordPatterns []*regexp.Regexp
)

func init() {
	quantityWordPatterns = make([]*regexp.Regexp, len(quantityWords))
	for i, q := range quantityWords {
		quantityWordPatterns[i] = regexp.MustCompile(`\b` + q.word + `\b`)
	}
}

// Resolve turns one free-text food phrase into a canonical label and a
// calorie estimate. It never fails: a phrase with no catalog, synonym or
// fuzzy match falls through to the generic estimator.
func Resolve(phrase string) Resolution {
	qty := extractQuantity(phrase)
	name := resolveName(normalizeName(phrase))

	if kcal, ok := catalog[name]; ok {
		return Resolution{
			Raw:  strings.TrimSpace(phrase),
			Name: name,
			Kcal: kcal * qty,
		}
	}

	return Resolution{
		Raw:  strings.TrimSpace(phrase),
		Name: strings.TrimSpace(phrase) + " (estimated)",
		Kcal: estimateCalories(phrase) * qty,
	}
}

// extractQuantity finds the serving multiplier in a phrase. An explicit digit
// run wins over spelled-out number words; a bare unit token implies one
// serving.
func extractQuantity(phrase string) int {
	if m := digitRun.FindString(phrase); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			if n < 1 {
				return 1
			}
			return n
		}
	}

	lower := strings.ToLower(phrase)
	for i, q := range quantityWords {
		if quantityWordPatterns[i].MatchString(lower) {
			return q.value
		}
	}

	if unitToken.MatchString(lower) {
		return 1
	}
	return 1
}

func normalizeName(phrase string) string {
	n := strings.ToLower(strings.TrimSpace(phrase))
	return spaceRun.ReplaceAllString(n, " ")
}

// resolveName maps a normalized phrase to a catalog key: synonyms first,
// then an exact key, then the closest fuzzy match. Falls back to the phrase
// itself so the estimator can take over.
func resolveName(normalized string) string {
	for _, s := range synonyms {
		if strings.Contains(normalized, s.fragment) {
			return s.canonical
		}
	}

	if _, ok := catalog[normalized]; ok {
		return normalized
	}

	if match, ok := closestCatalogKey(normalized); ok {
		return match
	}
	return normalized
}

// closestCatalogKey scans catalog keys in insertion order and keeps the
// strictly best similarity ratio, so the earliest key wins ties.
func closestCatalogKey(normalized string) (string, bool) {
	target := strings.Split(normalized, "")

	best := ""
	bestRatio := 0.0
	for _, key := range catalogOrder {
		m := difflib.NewMatcher(target, strings.Split(key, ""))
		if r := m.Ratio(); r > bestRatio {
			best, bestRatio = key, r
		}
	}

	if bestRatio >= fuzzyCutoff {
		return best, true
	}
	return "", false
}

// estimateCalories is the fallback for phrases with no catalog match. It
// works on the original phrase, not the resolved name: each keyword group
// adjusts the baseline at most once, and the result never drops below 50.
func estimateCalories(phrase string) int {
	base := estimatorBaseline
	text := strings.ToLower(phrase)

	if containsAny(text, "fried", "deep fry", "pakora", "bhaji") {
		base += 200
	}
	if containsAny(text, "butter", "cream", "cheese", "paneer", "ghee") {
		base += 150
	}
	if containsAny(text, "sweet", "dessert", "sugar", "syrup", "jamun", "jalebi", "halwa", "kheer") {
		base += 180
	}
	if containsAny(text, "grilled", "boiled", "steamed", "salad", "soup") {
		base -= 50
	}

	if base < 50 {
		base = 50
	}
	return base
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
