package utils

import "testing"

func TestIsDNI(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"12345678", true},
		{"1234567", false},
		{"123456789", false},
		{"1234567a", false}, // 8 characters is not enough, all must be digits
		{"ABCDEFGH", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsDNI(c.in); got != c.want {
			t.Fatalf("IsDNI(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
