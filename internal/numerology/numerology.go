// Package numerology computes Chaldean and Pythagorean name numbers.
package numerology

import (
	"fmt"
	"strings"
	"time"

	"github.com/kapu/namevibes-bot/internal/element"
	"github.com/kapu/namevibes-bot/pkg/errors"
)

type System string

const (
	Pythagorean System = "pythagorean"
	Chaldean    System = "chaldean"
)

func (s System) String() string {
	return string(s)
}

// ParseSystem accepts a system name in any case.
func ParseSystem(s string) (System, error) {
	switch System(strings.ToLower(strings.TrimSpace(s))) {
	case Pythagorean, "pyth", "":
		return Pythagorean, nil
	case Chaldean, "chal":
		return Chaldean, nil
	default:
		return "", errors.NewValidationError(fmt.Sprintf("unknown numerology system %q", s), "system", s)
	}
}

// Result is a single reduced number.
type Result struct {
	System     System `json:"system,omitempty" yaml:"system,omitempty"`
	Normalized string `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	Compound   int    `json:"compound" yaml:"compound"`
	Reduced    int    `json:"reduced" yaml:"reduced"`
	Master     bool   `json:"master" yaml:"master"`
}

// Profile groups the three classic name numbers.
type Profile struct {
	System      System `json:"system" yaml:"system"`
	Normalized  string `json:"normalized" yaml:"normalized"`
	Expression  Result `json:"expression" yaml:"expression"`
	SoulUrge    Result `json:"soul_urge" yaml:"soul_urge"`
	Personality Result `json:"personality" yaml:"personality"`
}

// Calculate sums every letter of name and reduces the total.
func Calculate(name string, sys System) Result {
	normalized := element.Normalize(name)
	res := reduce(sumLetters(normalized, sys, func(byte) bool { return true }))
	res.System = sys
	res.Normalized = normalized
	return res
}

// CalculateProfile computes expression, soul urge (vowels) and personality
// (consonants). Y always counts as a consonant.
func CalculateProfile(name string, sys System) Profile {
	normalized := element.Normalize(name)
	return Profile{
		System:      sys,
		Normalized:  normalized,
		Expression:  reduce(sumLetters(normalized, sys, func(byte) bool { return true })),
		SoulUrge:    reduce(sumLetters(normalized, sys, isVowel)),
		Personality: reduce(sumLetters(normalized, sys, func(c byte) bool { return !isVowel(c) })),
	}
}

// LifePath reduces year, month and day separately before the final sum.
func LifePath(birth time.Time) Result {
	year := reduce(digitSum(birth.Year())).Reduced
	month := reduce(int(birth.Month())).Reduced
	day := reduce(birth.Day()).Reduced

	total := year + month + day
	return reduce(total)
}

func sumLetters(normalized string, sys System, include func(byte) bool) int {
	values := pythagoreanValues
	if sys == Chaldean {
		values = chaldeanValues
	}

	sum := 0
	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		if c < 'A' || c > 'Z' || !include(c) {
			continue
		}
		sum += values[c-'A']
	}
	return sum
}

func reduce(n int) Result {
	res := Result{Compound: n, Reduced: n}
	for res.Reduced > 9 {
		if isMaster(res.Reduced) {
			res.Master = true
			return res
		}
		res.Reduced = digitSum(res.Reduced)
	}
	return res
}

func digitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

func isMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}
