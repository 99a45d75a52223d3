package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"0", "123", "199701012025011001"}
	invalid := []string{"", "12a", " 12", "12 ", "-1", "1.5"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-07-01"); !ok {
		t.Error("IsValidDate(2025-07-01) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "01-07-2025", "2025/07/01", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	cases := []struct {
		month int
		want  bool
	}{
		{1, true},
		{12, true},
		{0, false},
		{13, false},
		{-1, false},
	}
	for _, c := range cases {
		if got := IsValidMonth(c.month); got != c.want {
			t.Errorf("IsValidMonth(%d) = %v, want %v", c.month, got, c.want)
		}
	}
}
