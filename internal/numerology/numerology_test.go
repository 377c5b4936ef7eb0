package numerology

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/kapu/namevibes-bot/pkg/errors"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sys      System
		compound int
		reduced  int
		master   bool
	}{
		{"pythagorean john", "John", Pythagorean, 20, 2, false},
		{"chaldean john", "John", Chaldean, 18, 9, false},
		{"noise ignored", "j-o h!n 42", Pythagorean, 20, 2, false},
		{"master eleven", "Bi", Pythagorean, 11, 11, true},
		{"empty", "", Chaldean, 0, 0, false},
		{"digits only", "2024", Pythagorean, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.input, tt.sys)
			assert.Equal(t, tt.sys, got.System)
			assert.Equal(t, tt.compound, got.Compound)
			assert.Equal(t, tt.reduced, got.Reduced)
			assert.Equal(t, tt.master, got.Master)
		})
	}
}

func TestReduceStopsAtMasterNumbers(t *testing.T) {
	res := reduce(29)
	assert.Equal(t, 29, res.Compound)
	assert.Equal(t, 11, res.Reduced)
	assert.True(t, res.Master)

	res = reduce(44)
	assert.Equal(t, 8, res.Reduced)
	assert.False(t, res.Master)

	res = reduce(7)
	assert.Equal(t, 7, res.Reduced)
}

func TestCalculateProfile(t *testing.T) {
	p := CalculateProfile("John", Pythagorean)
	assert.Equal(t, "JOHN", p.Normalized)
	assert.Equal(t, 2, p.Expression.Reduced)
	assert.Equal(t, 6, p.SoulUrge.Reduced)
	assert.Equal(t, 5, p.Personality.Reduced)
	assert.Equal(t, p.Expression.Compound, p.SoulUrge.Compound+p.Personality.Compound)
}

func TestLifePath(t *testing.T) {
	res := LifePath(time.Date(1990, time.July, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 5, res.Reduced)

	res = LifePath(time.Date(1985, time.November, 29, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 27, res.Compound)
	assert.Equal(t, 9, res.Reduced)
}

func TestParseSystem(t *testing.T) {
	sys, err := ParseSystem(" Chaldean ")
	require.NoError(t, err)
	assert.Equal(t, Chaldean, sys)

	sys, err = ParseSystem("")
	require.NoError(t, err)
	assert.Equal(t, Pythagorean, sys)

	_, err = ParseSystem("kabbalah")
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "system", vErr.Field)
}

func TestMeaning(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 22, 33} {
		assert.NotEmpty(t, Meaning(n), "meaning for %d", n)
	}
	assert.Empty(t, Meaning(0))
	assert.Empty(t, Meaning(10))
}

func TestChaldeanNeverUsesNine(t *testing.T) {
	for i, v := range chaldeanValues {
		assert.NotEqual(t, 9, v, "letter %c", 'A'+i)
		assert.Positive(t, v)
	}
}
