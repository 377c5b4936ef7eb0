// Package element turns names into sequences of chemical elements.
//
// Matching is greedy and left to right: at every position a two-letter symbol
// is tried before a one-letter symbol, and characters that match neither are
// dropped. There is no backtracking.
package element

import "strings"

// Analysis is the full result of a scan. Matched is what Parse returns;
// Skipped lists every normalised letter that matched no symbol, in order.
type Analysis struct {
	Input      string   `json:"input" yaml:"input"`
	Normalized string   `json:"normalized" yaml:"normalized"`
	Matched    []Record `json:"matched" yaml:"matched"`
	Skipped    []string `json:"skipped" yaml:"skipped"`
}

// Parse converts any string into its element sequence. It never fails; the
// result is empty (not nil) when nothing matches.
func Parse(input string) []Record {
	return Analyze(input).Matched
}

// Analyze runs the same scan as Parse and also reports dropped letters.
func Analyze(input string) Analysis {
	normalized := Normalize(input)
	result := Analysis{
		Input:      input,
		Normalized: normalized,
		Matched:    make([]Record, 0, len(normalized)),
		Skipped:    make([]string, 0),
	}

	for i := 0; i < len(normalized); {
		if i+1 < len(normalized) {
			candidate := normalized[i:i+1] + strings.ToLower(normalized[i+1:i+2])
			if r, ok := table[candidate]; ok {
				result.Matched = append(result.Matched, r)
				i += 2
				continue
			}
		}

		if r, ok := table[normalized[i:i+1]]; ok {
			result.Matched = append(result.Matched, r)
		} else {
			result.Skipped = append(result.Skipped, normalized[i:i+1])
		}
		i++
	}

	return result
}

// Normalize uppercases input and keeps only A-Z. Accented and non-Latin
// letters are dropped rather than transliterated.
func Normalize(input string) string {
	upper := strings.ToUpper(input)

	var builder strings.Builder
	builder.Grow(len(upper))
	for i := 0; i < len(upper); i++ {
		if c := upper[i]; c >= 'A' && c <= 'Z' {
			builder.WriteByte(c)
		}
	}
	return builder.String()
}

// Symbols extracts the symbols from records, preserving order.
func Symbols(records []Record) []string {
	symbols := make([]string, len(records))
	for i, r := range records {
		symbols[i] = r.Symbol
	}
	return symbols
}
