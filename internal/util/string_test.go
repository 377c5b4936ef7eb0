package util

import "testing"

func TestTruncateString(t *testing.T) {
	if got := TruncateString("가나다라", 2); got != "가나..." {
		t.Fatalf("TruncateString = %q", got)
	}
	if got := TruncateString("abc", 5); got != "abc" {
		t.Fatalf("TruncateString = %q", got)
	}
}

func TestCleanInput(t *testing.T) {
	if got := CleanInput("  Na\tme \x00 Vibes \n"); got != "Na me Vibes" {
		t.Fatalf("CleanInput = %q", got)
	}
}

func TestContains(t *testing.T) {
	aliases := []string{"원소", "element"}
	if !Contains(aliases, "element") || Contains(aliases, "Element") {
		t.Fatalf("Contains should match exact items only")
	}
}
