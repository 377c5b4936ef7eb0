package element

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func symbolsOf(input string) []string {
	return Symbols(Parse(input))
}

func TestParseScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single hydrogen", input: "H", want: []string{"H"}},
		{name: "empty", input: "", want: []string{}},
		{name: "iron is not split", input: "Fe", want: []string{"Fe"}},
		{name: "unmatched letters and digits", input: "xyz123", want: []string{"Y"}},
		{name: "brand name", input: "NameVibes", want: []string{"Na", "V", "I", "Be", "S"}},
		{name: "sodium beats nitrogen", input: "NA", want: []string{"Na"}},
		{name: "multi word", input: "Jo Hn", want: []string{"O", "H", "N"}},
		{name: "only punctuation", input: "!?-- ..", want: []string{}},
		{name: "repeated element", input: "coco", want: []string{"Co", "Co"}},
		{name: "falls back to one letter", input: "CB", want: []string{"C", "B"}},
		{name: "j and q never match", input: "jqjq", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := symbolsOf(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseFirstRecordFields(t *testing.T) {
	got := Parse("H")
	if len(got) != 1 {
		t.Fatalf("expected one record, got %d", len(got))
	}
	if got[0].Name != "Hydrogen" || got[0].AtomicNumber != 1 {
		t.Fatalf("unexpected record: %+v", got[0])
	}

	iron := Parse("Fe")
	if len(iron) != 1 || iron[0].Name != "Iron" || iron[0].AtomicNumber != 26 {
		t.Fatalf("unexpected iron parse: %+v", iron)
	}
}

func TestParseNeverReturnsNil(t *testing.T) {
	inputs := []string{"", "123", "   ", "日本語", "😀😀", "\x00\xff", strings.Repeat("q", 50)}
	for _, in := range inputs {
		if got := Parse(in); got == nil {
			t.Fatalf("Parse(%q) returned nil", in)
		}
	}
}

func TestParseIgnoresCase(t *testing.T) {
	inputs := []string{"john", "NameVibes", "Bacon", "Chris", "Seo Yeon", "abcdefghijklmnopqrstuvwxyz"}
	for _, in := range inputs {
		base := symbolsOf(in)
		if diff := cmp.Diff(base, symbolsOf(strings.ToUpper(in))); diff != "" {
			t.Fatalf("upper case changed result for %q:\n%s", in, diff)
		}
		if diff := cmp.Diff(base, symbolsOf(strings.ToLower(in))); diff != "" {
			t.Fatalf("lower case changed result for %q:\n%s", in, diff)
		}
	}
}

func TestParseStripsNonAlphabetic(t *testing.T) {
	if diff := cmp.Diff(symbolsOf("JOHN"), symbolsOf("J-O!H  N2")); diff != "" {
		t.Fatalf("noise changed result:\n%s", diff)
	}
	if diff := cmp.Diff(symbolsOf("Bacon"), symbolsOf("B.a,c;o:n 42")); diff != "" {
		t.Fatalf("noise changed result:\n%s", diff)
	}
}

func TestParseIsDeterministicAcrossGoroutines(t *testing.T) {
	want := symbolsOf("NameVibes")

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if diff := cmp.Diff(want, symbolsOf("NameVibes")); diff != "" {
				errs <- diff
			}
		}()
	}
	wg.Wait()
	close(errs)

	for diff := range errs {
		t.Fatalf("concurrent parse diverged:\n%s", diff)
	}
}

func TestAnalyzeReportsSkippedLetters(t *testing.T) {
	got := Analyze("Jo-hn Qx")
	if got.Normalized != "JOHNQX" {
		t.Fatalf("unexpected normalized form %q", got.Normalized)
	}
	if diff := cmp.Diff([]string{"O", "H", "N"}, Symbols(got.Matched)); diff != "" {
		t.Fatalf("matched mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"J", "Q", "X"}, got.Skipped); diff != "" {
		t.Fatalf("skipped mismatch:\n%s", diff)
	}
}

func TestAnalyzeAccountsForEveryLetter(t *testing.T) {
	inputs := []string{"NameVibes", "xyz", "Quincy Jones", "Bartholomew", "", "Zzz"}
	for _, in := range inputs {
		a := Analyze(in)
		consumed := len(a.Skipped)
		for _, r := range a.Matched {
			consumed += len(r.Symbol)
		}
		if consumed != len(a.Normalized) {
			t.Fatalf("%q: consumed %d of %d letters", in, consumed, len(a.Normalized))
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"Jo Hn":       "JOHN",
		"o'Brien-99":  "OBRIEN",
		"Zoë":         "ZO",
		"straße":      "STRAE",
		"김민수 Kim":     "KIM",
		"\tTAB\nLINE": "TABLINE",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
