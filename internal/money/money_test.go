package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"10", true},
		{"10.5", true},
		{"10.55", true},
		{"-3.21", true},
		{"10.555", false},
		{"0.001", false},
	}
	for _, tc := range cases {
		d := decimal.RequireFromString(tc.in)
		if got := Valid(d); got != tc.want {
			t.Errorf("Valid(%s) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCentsRoundTrip(t *testing.T) {
	for _, s := range []string{"0.01", "1", "19.99", "12345.67", "-4.50"} {
		d := decimal.RequireFromString(s)
		if got := FromCents(Cents(d)); !got.Equal(d) {
			t.Errorf("FromCents(Cents(%s)) = %s", s, got)
		}
	}
}

func TestRound2(t *testing.T) {
	got := Round2(decimal.RequireFromString("3.335"))
	if !got.Equal(decimal.RequireFromString("3.34")) {
		t.Errorf("Round2(3.335) = %s, want 3.34", got)
	}
}
