package reading

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kapu/namevibes-bot/internal/constants"
	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/element"
	"github.com/kapu/namevibes-bot/internal/numerology"
	"github.com/kapu/namevibes-bot/internal/util"
	"github.com/kapu/namevibes-bot/internal/zodiac"
	"github.com/kapu/namevibes-bot/pkg/errors"
)

// Compute derives a reading from name without touching any storage. ID,
// Source and CreatedAt are left for the caller.
func Compute(name string) (*domain.Reading, error) {
	name, err := ValidateName(name)
	if err != nil {
		return nil, err
	}

	analysis := element.Analyze(name)
	r := &domain.Reading{
		Name:        name,
		Normalized:  analysis.Normalized,
		Elements:    make([]domain.ElementView, len(analysis.Matched)),
		Skipped:     analysis.Skipped,
		Pythagorean: numberView(numerology.Calculate(name, numerology.Pythagorean)),
		Chaldean:    numberView(numerology.Calculate(name, numerology.Chaldean)),
	}

	for i, rec := range analysis.Matched {
		r.Elements[i] = domain.ElementView{
			Symbol:       rec.Symbol,
			Name:         rec.Name,
			AtomicNumber: rec.AtomicNumber,
			Color:        rec.ColorHex,
			Meaning:      rec.Meaning,
		}
	}

	// The nakshatra follows the normalized name so cached readings match fresh ones.
	if m, ok := zodiac.NakshatraForName(strings.ToLower(analysis.Normalized)); ok {
		r.Nakshatra = &domain.NakshatraView{
			Number:   m.Number,
			Name:     m.Nakshatra,
			Pada:     m.Pada,
			Syllable: m.Syllable,
			Rashi:    m.Rashi,
			Sign:     m.Sign,
		}
	}

	return r, nil
}

// ValidateName cleans name and rejects blank or oversized input.
func ValidateName(name string) (string, error) {
	name = util.CleanInput(name)
	if name == "" {
		return "", errors.NewValidationError("name is required", "name", name)
	}
	if utf8.RuneCountInString(name) > constants.Limits.MaxNameLength {
		return "", errors.NewValidationError(
			fmt.Sprintf("name must be at most %d characters", constants.Limits.MaxNameLength),
			"name", util.TruncateString(name, 16))
	}
	return name, nil
}

func numberView(res numerology.Result) domain.NumberView {
	return domain.NumberView{
		Compound: res.Compound,
		Reduced:  res.Reduced,
		Master:   res.Master,
		Meaning:  numerology.Meaning(res.Reduced),
	}
}

func cacheKey(prefix, normalized string) string {
	return prefix + strings.ToLower(normalized)
}
