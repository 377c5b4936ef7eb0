// Package zodiac holds the western sun-sign calendar and the Vedic
// name-syllable (nakshatra) table.
package zodiac

import (
	"fmt"
	"time"

	"github.com/kapu/namevibes-bot/pkg/errors"
)

type Element string

const (
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Air   Element = "Air"
	Water Element = "Water"
)

type Sign struct {
	Name    string  `json:"name" yaml:"name"`
	Symbol  string  `json:"symbol" yaml:"symbol"`
	Element Element `json:"element" yaml:"element"`
	Rashi   string  `json:"rashi" yaml:"rashi"`
}

var signs = []Sign{
	{"Aries", "♈", Fire, "Mesha"},
	{"Taurus", "♉", Earth, "Vrishabha"},
	{"Gemini", "♊", Air, "Mithuna"},
	{"Cancer", "♋", Water, "Karka"},
	{"Leo", "♌", Fire, "Simha"},
	{"Virgo", "♍", Earth, "Kanya"},
	{"Libra", "♎", Air, "Tula"},
	{"Scorpio", "♏", Water, "Vrishchika"},
	{"Sagittarius", "♐", Fire, "Dhanu"},
	{"Capricorn", "♑", Earth, "Makara"},
	{"Aquarius", "♒", Air, "Kumbha"},
	{"Pisces", "♓", Water, "Meena"},
}

// signStarts[i] is the first day (month, day) of signs[i].
var signStarts = [12][2]int{
	{3, 21}, {4, 20}, {5, 21}, {6, 21}, {7, 23}, {8, 23},
	{9, 23}, {10, 23}, {11, 22}, {12, 22}, {1, 20}, {2, 19},
}

var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// SunSign returns the tropical sign for a birthday. February 29 is accepted.
func SunSign(month time.Month, day int) (Sign, error) {
	if month < time.January || month > time.December {
		return Sign{}, errors.NewValidationError(fmt.Sprintf("invalid month %d", month), "month", int(month))
	}
	if day < 1 || day > daysInMonth[month] {
		return Sign{}, errors.NewValidationError(fmt.Sprintf("invalid day %d for %s", day, month), "day", day)
	}

	key := int(month)*100 + day
	// Capricorn is the default because it also owns early January.
	best := 9
	bestKey := -1
	for i, start := range signStarts {
		startKey := start[0]*100 + start[1]
		if startKey <= key && startKey > bestKey {
			best = i
			bestKey = startKey
		}
	}
	return signs[best], nil
}

// SignForRashi maps a Vedic rashi name to its western counterpart.
func SignForRashi(rashi string) (Sign, bool) {
	for _, s := range signs {
		if s.Rashi == rashi {
			return s, true
		}
	}
	return Sign{}, false
}

// Signs returns all twelve signs starting with Aries.
func Signs() []Sign {
	out := make([]Sign, len(signs))
	copy(out, signs)
	return out
}
