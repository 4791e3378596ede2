package utils

import "testing"

func TestRoundMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{10.004, 10.0},
		{10.016, 10.02},
		{-2.346, -2.35},
		{0, 0},
		{19.999, 20.0},
		{4 * 7.5, 30.0},
	}
	for _, c := range cases {
		if got := RoundMoney(c.in); got != c.want {
			t.Fatalf("RoundMoney(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
