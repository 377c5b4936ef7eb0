package adapter

import (
	"strings"
	"testing"

	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/element"
	"github.com/kapu/namevibes-bot/internal/numerology"
	"github.com/kapu/namevibes-bot/internal/zodiac"
)

func johnReading() *domain.Reading {
	return &domain.Reading{
		Name:       "John",
		Normalized: "JOHN",
		Elements: []domain.ElementView{
			{Symbol: "O", Name: "Oxygen", AtomicNumber: 8, Meaning: "air"},
			{Symbol: "H", Name: "Hydrogen", AtomicNumber: 1, Meaning: "spark"},
			{Symbol: "N", Name: "Nitrogen", AtomicNumber: 7, Meaning: "calm"},
		},
		Skipped:     []string{"J"},
		Pythagorean: domain.NumberView{Compound: 20, Reduced: 2},
		Chaldean:    domain.NumberView{Compound: 18, Reduced: 9},
		Nakshatra:   &domain.NakshatraView{Name: "Jyeshtha", Pada: 4, Rashi: "Vrishchika", Sign: "Scorpio"},
	}
}

func TestFormatElements(t *testing.T) {
	f := NewResponseFormatter("!")
	got := f.FormatElements(johnReading())

	want := "🧪 John → O · H · N\n\nO Oxygen (8) - air\nH Hydrogen (1) - spark\nN Nitrogen (7) - calm\n\n⚪ 원소가 되지 못한 글자: J"
	if got != want {
		t.Fatalf("FormatElements mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatElementsWithoutMatches(t *testing.T) {
	f := NewResponseFormatter("!")
	got := f.FormatElements(&domain.Reading{Name: "김민수"})

	if got != "🧪 김민수\n원소 기호로 만들 수 있는 글자가 없습니다." {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFormatVibe(t *testing.T) {
	f := NewResponseFormatter("!")
	r := johnReading()
	r.Narrative = "산소처럼 상쾌한 이름!"

	got := f.FormatVibe(r)
	for _, want := range []string{
		"✨ John의 바이브",
		"🧪 원소: O · H · N (3개)",
		"🔢 피타고라스 2 / 칼데아 9",
		"🌙 낙샤트라: Jyeshtha 4파다 (Vrishchika · Scorpio)",
		"\n\n산소처럼 상쾌한 이름!",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("FormatVibe missing %q in:\n%s", want, got)
		}
	}

	r.Narrative = ""
	r.Nakshatra = nil
	if got := f.FormatVibe(r); strings.Contains(got, "낙샤트라") || strings.HasSuffix(got, "\n") {
		t.Fatalf("optional sections should be omitted:\n%q", got)
	}
}

func TestFormatHelpUsesPrefix(t *testing.T) {
	got := NewResponseFormatter("/").FormatHelp()
	if !strings.Contains(got, "/원소 [이름]") || strings.Contains(got, "!원소") {
		t.Fatalf("help should use configured prefix:\n%s", got)
	}
}

func TestFormatTopicHelp(t *testing.T) {
	f := NewResponseFormatter("!")
	got := f.FormatTopicHelp(domain.CommandZodiac)

	for _, want := range []string{"📖 !별자리", "사용법: !별자리 [이름] [YYYY-MM-DD]", "별칭: 별자리, zodiac, rashi", "예: !별자리 Nadia 1990-07-30"} {
		if !strings.Contains(got, want) {
			t.Fatalf("FormatTopicHelp missing %q in:\n%s", want, got)
		}
	}

	if got := f.FormatTopicHelp(domain.CommandHelp); got != f.FormatHelp() {
		t.Fatalf("unknown topic should fall back to general help")
	}
}

func TestFormatNumerology(t *testing.T) {
	f := NewResponseFormatter("!")
	got := f.FormatNumerology("John", numerology.CalculateProfile("John", numerology.Pythagorean))

	for _, want := range []string{"🔢 John 수비학 (피타고라스)", "표현수: 2 (합계 20)", "영혼수: 6", "성격수: 5", numerology.Meaning(2)} {
		if !strings.Contains(got, want) {
			t.Fatalf("FormatNumerology missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatZodiac(t *testing.T) {
	f := NewResponseFormatter("!")
	match, ok := zodiac.NakshatraForName("Lakshmi")
	if !ok {
		t.Fatalf("expected nakshatra match")
	}
	sun, err := zodiac.SunSign(7, 15)
	if err != nil {
		t.Fatalf("SunSign: %v", err)
	}

	got := f.FormatZodiac("Lakshmi", &match, &sun)
	for _, want := range []string{"낙샤트라: Ashwini (1번) 4파다", "첫 음절: la → Mesha (Aries)", "☀️ 태양 별자리: ♋ Cancer (물)"} {
		if !strings.Contains(got, want) {
			t.Fatalf("FormatZodiac missing %q in:\n%s", want, got)
		}
	}

	if got := f.FormatZodiac("Xavier", nil, nil); !strings.Contains(got, "낙샤트라가 없습니다") {
		t.Fatalf("expected no-match text, got %s", got)
	}
}

func TestFormatRanking(t *testing.T) {
	f := NewResponseFormatter("!")

	if got := f.FormatRanking(nil); !strings.Contains(got, "아직") {
		t.Fatalf("empty ranking text = %q", got)
	}

	got := f.FormatRanking([]domain.RankEntry{{Normalized: "JOHN", Count: 3}, {Normalized: "XQ", Count: 1}})
	if !strings.Contains(got, "1. JOHN (3회) O·H·N") || !strings.Contains(got, "2. XQ (1회)") {
		t.Fatalf("unexpected ranking:\n%s", got)
	}
}

func TestFormatElementRecord(t *testing.T) {
	rec, _ := element.Lookup("Fe")
	got := NewResponseFormatter("!").FormatElementRecord(rec)
	if !strings.HasPrefix(got, "⚛️ Iron (Fe)\n원자번호: 26\n색상: #") {
		t.Fatalf("unexpected record text %q", got)
	}
}
