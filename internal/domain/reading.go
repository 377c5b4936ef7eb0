package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reading is everything NameVibes derives from one name.
type Reading struct {
	ID          uuid.UUID      `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Normalized  string         `json:"normalized" yaml:"normalized"`
	Elements    []ElementView  `json:"elements" yaml:"elements"`
	Skipped     []string       `json:"skipped" yaml:"skipped"`
	Pythagorean NumberView     `json:"pythagorean" yaml:"pythagorean"`
	Chaldean    NumberView     `json:"chaldean" yaml:"chaldean"`
	Nakshatra   *NakshatraView `json:"nakshatra,omitempty" yaml:"nakshatra,omitempty"`
	Narrative   string         `json:"narrative,omitempty" yaml:"narrative,omitempty"`
	Source      string         `json:"source,omitempty" yaml:"source,omitempty"`
	CreatedAt   time.Time      `json:"created_at" yaml:"created_at"`
}

type ElementView struct {
	Symbol       string `json:"symbol" yaml:"symbol"`
	Name         string `json:"name" yaml:"name"`
	AtomicNumber int    `json:"atomic_number" yaml:"atomic_number"`
	Color        string `json:"color" yaml:"color"`
	Meaning      string `json:"meaning" yaml:"meaning"`
}

type NumberView struct {
	Compound int    `json:"compound" yaml:"compound"`
	Reduced  int    `json:"reduced" yaml:"reduced"`
	Master   bool   `json:"master" yaml:"master"`
	Meaning  string `json:"meaning" yaml:"meaning"`
}

type NakshatraView struct {
	Number   int    `json:"number" yaml:"number"`
	Name     string `json:"name" yaml:"name"`
	Pada     int    `json:"pada" yaml:"pada"`
	Syllable string `json:"syllable" yaml:"syllable"`
	Rashi    string `json:"rashi" yaml:"rashi"`
	Sign     string `json:"sign" yaml:"sign"`
}

func (r *Reading) ElementCount() int {
	return len(r.Elements)
}

// Symbols returns the element symbols in order.
func (r *Reading) Symbols() []string {
	out := make([]string, len(r.Elements))
	for i, e := range r.Elements {
		out[i] = e.Symbol
	}
	return out
}

// RankEntry is one row of the popularity ranking.
type RankEntry struct {
	Normalized string `json:"normalized"`
	Count      int64  `json:"count"`
}

// ReadingSummary is the persisted projection of a Reading.
type ReadingSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Normalized   string    `json:"normalized"`
	ElementCount int       `json:"element_count"`
	Symbols      []string  `json:"symbols"`
	Pythagorean  int       `json:"pythagorean"`
	Chaldean     int       `json:"chaldean"`
	Nakshatra    string    `json:"nakshatra,omitempty"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"created_at"`
}

// Summary projects r to its persisted form.
func (r *Reading) Summary() ReadingSummary {
	s := ReadingSummary{
		ID:           r.ID,
		Name:         r.Name,
		Normalized:   r.Normalized,
		ElementCount: r.ElementCount(),
		Symbols:      r.Symbols(),
		Pythagorean:  r.Pythagorean.Reduced,
		Chaldean:     r.Chaldean.Reduced,
		Source:       r.Source,
		CreatedAt:    r.CreatedAt,
	}
	if r.Nakshatra != nil {
		s.Nakshatra = r.Nakshatra.Name
	}
	return s
}
