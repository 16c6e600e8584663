package services

import (
	"networth/src/models"
	"networth/src/utils"
	"strings"
)

// ClassificationRules are the patterns that decide whether a raw holding is
// a face-value instrument. They are plain data so operators can extend them
// from a CSV file and tests can exercise them in isolation.
type ClassificationRules struct {
	// BondAssetClasses match the row's declared asset class, case-insensitively.
	BondAssetClasses []string
	// DescriptionMarkers are substrings matched against the lowercased
	// description and instrument code.
	DescriptionMarkers []string
	// SentinelCodes are exact instrument codes known to be government paper.
	SentinelCodes []string
	// CodePrefixes match the start of the instrument code.
	CodePrefixes []string
}

// DefaultClassificationRules covers the broker variants seen in production
// exports. "TF Float A" and the TF prefix are how one broker labels its
// treasury floaters; others embed t-bill markers in the code or description.
func DefaultClassificationRules() ClassificationRules {
	return ClassificationRules{
		BondAssetClasses:   []string{"bond", "government", "govbond", "treasury"},
		DescriptionMarkers: []string{"treasury", "t-bill", "tbill", "government bond", "gov bond"},
		SentinelCodes:      []string{"TF Float A"},
		CodePrefixes:       []string{"TF "},
	}
}

// LoadClassificationRules extends the defaults with an operator-maintained
// CSV of (pattern, kind) rows, kind being one of assetClass, marker,
// sentinel or prefix. An empty path returns the defaults unchanged.
func LoadClassificationRules(path string) (ClassificationRules, error) {
	rules := DefaultClassificationRules()
	if path == "" {
		return rules, nil
	}

	patterns, err := utils.CSVToMap(path)
	if err != nil {
		return rules, err
	}
	for pattern, kind := range patterns {
		switch kind {
		case "assetClass":
			rules.BondAssetClasses = append(rules.BondAssetClasses, pattern)
		case "marker":
			rules.DescriptionMarkers = append(rules.DescriptionMarkers, pattern)
		case "sentinel":
			rules.SentinelCodes = append(rules.SentinelCodes, pattern)
		case "prefix":
			rules.CodePrefixes = append(rules.CodePrefixes, pattern)
		}
	}
	return rules, nil
}

// NormalizedHolding is a raw holding annotated with its canonical identity.
type NormalizedHolding struct {
	models.RawHolding
	Canonical models.CanonicalInstrument
}

type Normalizer struct {
	rules ClassificationRules
}

func NewNormalizer(rules ClassificationRules) *Normalizer {
	return &Normalizer{rules: rules}
}

// Classify maps one raw holding to its canonical instrument. Classification
// is evaluated per row: the same ticker string may be government paper at
// one broker and not carry any marker at another, and both rows must still
// merge into the single face-value identity when either matches.
func (n *Normalizer) Classify(h models.RawHolding) models.CanonicalInstrument {
	if n.isFaceValue(h) {
		return models.CanonicalInstrument{
			CanonicalID: models.FaceValueCanonicalID,
			DisplayName: models.FaceValueDisplayName,
			Policy:      models.TreatmentFaceValue,
		}
	}

	displayName := h.Description
	if displayName == "" {
		displayName = h.InstrumentCode
	}
	return models.CanonicalInstrument{
		CanonicalID: CanonicalizeCode(h.InstrumentCode),
		DisplayName: displayName,
		Policy:      models.TreatmentStandard,
	}
}

// Normalize annotates every valid row with its canonical identity and
// returns the number of rows skipped by validation. Rows without an
// instrument code or with a non-positive quantity carry no aggregatable
// position and are dropped, not treated as errors.
func (n *Normalizer) Normalize(rows []models.RawHolding) ([]NormalizedHolding, int) {
	normalized := make([]NormalizedHolding, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if strings.TrimSpace(row.InstrumentCode) == "" || row.Quantity <= 0 {
			skipped++
			continue
		}
		normalized = append(normalized, NormalizedHolding{
			RawHolding: row,
			Canonical:  n.Classify(row),
		})
	}
	return normalized, skipped
}

func (n *Normalizer) isFaceValue(h models.RawHolding) bool {
	assetClass := strings.ToLower(strings.TrimSpace(h.AssetClass))
	for _, class := range n.rules.BondAssetClasses {
		if assetClass == strings.ToLower(class) {
			return true
		}
	}

	text := strings.ToLower(h.Description) + " " + strings.ToLower(h.InstrumentCode)
	for _, marker := range n.rules.DescriptionMarkers {
		if strings.Contains(text, strings.ToLower(marker)) {
			return true
		}
	}

	for _, sentinel := range n.rules.SentinelCodes {
		if h.InstrumentCode == sentinel {
			return true
		}
	}
	for _, prefix := range n.rules.CodePrefixes {
		if strings.HasPrefix(h.InstrumentCode, prefix) {
			return true
		}
	}
	return false
}

// CanonicalizeCode normalizes a broker instrument code into a canonical id:
// uppercased, punctuation and whitespace stripped, so "brk.b" and "BRK B"
// land on the same identity.
func CanonicalizeCode(code string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
