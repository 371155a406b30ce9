package view

import "testing"

func TestMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5.5, "$5.50"},
		{25.5, "$25.50"},
		{999.99, "$999.99"},
		{19.999, "$20.00"},
	}
	for _, tc := range cases {
		if got := Money(tc.in); got != tc.want {
			t.Errorf("Money(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLineTotal(t *testing.T) {
	if got := LineTotal(10, 2); got != "$20.00" {
		t.Errorf("LineTotal(10, 2) = %q, want $20.00", got)
	}
	if got := LineTotal(5.5, 3); got != "$16.50" {
		t.Errorf("LineTotal(5.5, 3) = %q, want $16.50", got)
	}
}

func TestImageOr(t *testing.T) {
	if got := ImageOr("", PlaceholderThumb); got != PlaceholderThumb {
		t.Errorf("empty image should fall back to placeholder, got %q", got)
	}
	if got := ImageOr("/uploads/x.png", PlaceholderThumb); got != "/uploads/x.png" {
		t.Errorf("non-empty image should win, got %q", got)
	}
}
