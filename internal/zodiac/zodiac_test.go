package zodiac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSunSign(t *testing.T) {
	tests := []struct {
		month time.Month
		day   int
		want  string
	}{
		{time.January, 1, "Capricorn"},
		{time.January, 19, "Capricorn"},
		{time.January, 20, "Aquarius"},
		{time.February, 29, "Pisces"},
		{time.March, 20, "Pisces"},
		{time.March, 21, "Aries"},
		{time.July, 15, "Cancer"},
		{time.July, 23, "Leo"},
		{time.November, 30, "Sagittarius"},
		{time.December, 22, "Capricorn"},
		{time.December, 31, "Capricorn"},
	}

	for _, tt := range tests {
		got, err := SunSign(tt.month, tt.day)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Name, "%s %d", tt.month, tt.day)
	}
}

func TestSunSignRejectsInvalidDates(t *testing.T) {
	_, err := SunSign(time.February, 30)
	assert.Error(t, err)

	_, err = SunSign(time.Month(13), 1)
	assert.Error(t, err)

	_, err = SunSign(time.April, 0)
	assert.Error(t, err)
}

func TestNakshatraForName(t *testing.T) {
	tests := []struct {
		name      string
		nakshatra string
		pada      int
		sign      string
	}{
		{"Lakshmi", "Ashwini", 4, "Aries"},
		{"Chhavi", "Ardra", 4, "Gemini"},
		{"Anna", "Krittika", 1, "Aries"},
		{"Isha", "Krittika", 2, "Taurus"},
		{"Tanya", "Purva Phalguni", 2, "Leo"},
		{"mo-han", "Purva Phalguni", 1, "Leo"},
		{"Revathi", "Swati", 2, "Libra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NakshatraForName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.nakshatra, got.Nakshatra)
			assert.Equal(t, tt.pada, got.Pada)
			assert.Equal(t, tt.sign, got.Sign)
		})
	}
}

func TestNakshatraForNameWithoutMatch(t *testing.T) {
	for _, name := range []string{"", "123", "Xavier", "Wendy"} {
		_, ok := NakshatraForName(name)
		assert.False(t, ok, name)
	}
}

func TestEveryRashiMapsToASign(t *testing.T) {
	for _, n := range Nakshatras() {
		for _, p := range n.Padas {
			_, ok := SignForRashi(p.Rashi)
			assert.True(t, ok, "%s/%s", n.Name, p.Rashi)
		}
	}
	assert.Len(t, Nakshatras(), 27)
	assert.Len(t, Signs(), 12)
}
