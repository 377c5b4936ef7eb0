package zodiac

import "strings"

// Pada is one quarter of a nakshatra with its starting syllable.
type Pada struct {
	Syllable string
	Rashi    string
}

type Nakshatra struct {
	Number int
	Name   string
	Padas  [4]Pada
}

// Match is the nakshatra chosen for a name.
type Match struct {
	Nakshatra string `json:"nakshatra" yaml:"nakshatra"`
	Number    int    `json:"number" yaml:"number"`
	Pada      int    `json:"pada" yaml:"pada"`
	Syllable  string `json:"syllable" yaml:"syllable"`
	Rashi     string `json:"rashi" yaml:"rashi"`
	Sign      string `json:"sign" yaml:"sign"`
}

var nakshatras = []Nakshatra{
	{1, "Ashwini", [4]Pada{{"chu", "Mesha"}, {"che", "Mesha"}, {"cho", "Mesha"}, {"la", "Mesha"}}},
	{2, "Bharani", [4]Pada{{"li", "Mesha"}, {"lu", "Mesha"}, {"le", "Mesha"}, {"lo", "Mesha"}}},
	{3, "Krittika", [4]Pada{{"a", "Mesha"}, {"i", "Vrishabha"}, {"u", "Vrishabha"}, {"e", "Vrishabha"}}},
	{4, "Rohini", [4]Pada{{"o", "Vrishabha"}, {"va", "Vrishabha"}, {"vi", "Vrishabha"}, {"vu", "Vrishabha"}}},
	{5, "Mrigashira", [4]Pada{{"ve", "Vrishabha"}, {"vo", "Vrishabha"}, {"ka", "Mithuna"}, {"ki", "Mithuna"}}},
	{6, "Ardra", [4]Pada{{"ku", "Mithuna"}, {"gha", "Mithuna"}, {"ng", "Mithuna"}, {"chha", "Mithuna"}}},
	{7, "Punarvasu", [4]Pada{{"ke", "Mithuna"}, {"ko", "Mithuna"}, {"ha", "Mithuna"}, {"hi", "Karka"}}},
	{8, "Pushya", [4]Pada{{"hu", "Karka"}, {"he", "Karka"}, {"ho", "Karka"}, {"da", "Karka"}}},
	{9, "Ashlesha", [4]Pada{{"di", "Karka"}, {"du", "Karka"}, {"de", "Karka"}, {"do", "Karka"}}},
	{10, "Magha", [4]Pada{{"ma", "Simha"}, {"mi", "Simha"}, {"mu", "Simha"}, {"me", "Simha"}}},
	{11, "Purva Phalguni", [4]Pada{{"mo", "Simha"}, {"ta", "Simha"}, {"ti", "Simha"}, {"tu", "Simha"}}},
	{12, "Uttara Phalguni", [4]Pada{{"te", "Simha"}, {"to", "Kanya"}, {"pa", "Kanya"}, {"pi", "Kanya"}}},
	{13, "Hasta", [4]Pada{{"pu", "Kanya"}, {"sha", "Kanya"}, {"na", "Kanya"}, {"tha", "Kanya"}}},
	{14, "Chitra", [4]Pada{{"pe", "Kanya"}, {"po", "Kanya"}, {"ra", "Tula"}, {"ri", "Tula"}}},
	{15, "Swati", [4]Pada{{"ru", "Tula"}, {"re", "Tula"}, {"ro", "Tula"}, {"taa", "Tula"}}},
	{16, "Vishakha", [4]Pada{{"tee", "Tula"}, {"too", "Tula"}, {"tey", "Tula"}, {"toh", "Vrishchika"}}},
	{17, "Anuradha", [4]Pada{{"naa", "Vrishchika"}, {"ni", "Vrishchika"}, {"nu", "Vrishchika"}, {"ne", "Vrishchika"}}},
	{18, "Jyeshtha", [4]Pada{{"no", "Vrishchika"}, {"ya", "Vrishchika"}, {"yi", "Vrishchika"}, {"yu", "Vrishchika"}}},
	{19, "Mula", [4]Pada{{"ye", "Dhanu"}, {"yo", "Dhanu"}, {"bha", "Dhanu"}, {"bhi", "Dhanu"}}},
	{20, "Purva Ashadha", [4]Pada{{"bhu", "Dhanu"}, {"dha", "Dhanu"}, {"pha", "Dhanu"}, {"dhaa", "Dhanu"}}},
	{21, "Uttara Ashadha", [4]Pada{{"bhe", "Dhanu"}, {"bho", "Makara"}, {"ja", "Makara"}, {"ji", "Makara"}}},
	{22, "Shravana", [4]Pada{{"ju", "Makara"}, {"je", "Makara"}, {"jo", "Makara"}, {"khi", "Makara"}}},
	{23, "Dhanishta", [4]Pada{{"ga", "Makara"}, {"gi", "Makara"}, {"gu", "Kumbha"}, {"ge", "Kumbha"}}},
	{24, "Shatabhisha", [4]Pada{{"go", "Kumbha"}, {"sa", "Kumbha"}, {"si", "Kumbha"}, {"su", "Kumbha"}}},
	{25, "Purva Bhadrapada", [4]Pada{{"se", "Kumbha"}, {"so", "Kumbha"}, {"daa", "Kumbha"}, {"dee", "Meena"}}},
	{26, "Uttara Bhadrapada", [4]Pada{{"doo", "Meena"}, {"tham", "Meena"}, {"jha", "Meena"}, {"gya", "Meena"}}},
	{27, "Revati", [4]Pada{{"dey", "Meena"}, {"doh", "Meena"}, {"cha", "Meena"}, {"chi", "Meena"}}},
}

// NakshatraForName picks the longest pada syllable that prefixes the name.
// Equal-length candidates resolve to the earliest nakshatra in the table.
// Names whose first letters match nothing (for example "x...") report false.
func NakshatraForName(name string) (Match, bool) {
	key := lettersOnly(name)
	if key == "" {
		return Match{}, false
	}

	var (
		best    Match
		bestLen int
	)
	for _, n := range nakshatras {
		for i, p := range n.Padas {
			if len(p.Syllable) <= bestLen || !strings.HasPrefix(key, p.Syllable) {
				continue
			}
			best = Match{
				Nakshatra: n.Name,
				Number:    n.Number,
				Pada:      i + 1,
				Syllable:  p.Syllable,
				Rashi:     p.Rashi,
			}
			bestLen = len(p.Syllable)
		}
	}
	if bestLen == 0 {
		return Match{}, false
	}

	if s, ok := SignForRashi(best.Rashi); ok {
		best.Sign = s.Name
	}
	return best, true
}

// Nakshatras returns a copy of the syllable table.
func Nakshatras() []Nakshatra {
	out := make([]Nakshatra, len(nakshatras))
	copy(out, nakshatras)
	return out
}

func lettersOnly(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
