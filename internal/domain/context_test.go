package domain

import "testing"

func TestDefaultName(t *testing.T) {
	tests := []struct {
		sender string
		want   string
	}{
		{"민수", "민수"},
		{"민수/27/서울", "민수"},
		{" Luna /f", "Luna"},
		{"", ""},
	}
	for _, tt := range tests {
		ctx := NewCommandContext("room", "room", tt.sender, "", false)
		if got := ctx.DefaultName(); got != tt.want {
			t.Errorf("DefaultName(%q) = %q, want %q", tt.sender, got, tt.want)
		}
	}

	var nilCtx *CommandContext
	if nilCtx.DefaultName() != "" {
		t.Errorf("nil context should have no default name")
	}
}
