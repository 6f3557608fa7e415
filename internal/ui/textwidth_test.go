package ui

import (
	"testing"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		name     string
		r        rune
		expected int
	}{
		{"ASCII letter", 'A', 1},
		{"ASCII space", ' ', 1},
		{"Emoji", '😀', 2},
		{"Chinese character", '中', 2},
		{"Combining acute", '\u0301', 0},
		{"Zero width joiner", '\u200d', 0},
		{"Tab", '\t', 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RuneWidth(tt.r)
			if got != tt.expected {
				t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.expected)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "Reports", 10, "Reports"},
		{"cut", "Reports", 3, "Rep"},
		{"zero", "Reports", 0, ""},
		{"does not split wide rune", "中国", 3, "中"},
		{"emoji", "😀 AI", 2, "😀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateToWidth(tt.input, tt.width)
			if got != tt.expected {
				t.Errorf("TruncateToWidth(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "Sales", 5, "Sales"},
		{"cut", "Sales pipeline", 6, "Sales…"},
		{"one column", "Sales", 1, "S"},
		{"wide runes", "中国中国", 5, "中国…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateWithEllipsis(tt.input, tt.width)
			if got != tt.expected {
				t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
			if w := StringWidth(got); w > tt.width {
				t.Errorf("result %q is %d columns, limit %d", got, w, tt.width)
			}
		})
	}
}

func TestPadToWidth(t *testing.T) {
	if got := PadToWidth("中", 4); got != "中  " {
		t.Errorf("PadToWidth = %q", got)
	}
	if got := PadToWidth("long", 2); got != "long" {
		t.Errorf("PadToWidth must not cut, got %q", got)
	}
}

func TestColumnOfRune(t *testing.T) {
	s := "a中b"
	want := []int{0, 1, 3, 4}
	for i, w := range want {
		if got := ColumnOfRune(s, i); got != w {
			t.Errorf("ColumnOfRune(%q, %d) = %d, want %d", s, i, got, w)
		}
	}
	if got := ColumnOfRune(s, 10); got != 4 {
		t.Errorf("ColumnOfRune past end = %d, want 4", got)
	}
}
