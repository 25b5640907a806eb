package xtoa

import "testing"

func TestItoa(t *testing.T) {
	cases := map[int64]string{
		0:                    "0",
		7:                    "7",
		-7:                   "-7",
		1024:                 "1024",
		-1024:                "-1024",
		9223372036854775807:  "9223372036854775807",
		-9223372036854775807: "-9223372036854775807",
	}
	for in, want := range cases {
		if got := Itoa(in); got != want {
			t.Errorf("Itoa(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFixedString(t *testing.T) {
	cases := []struct {
		value     float64
		precision uint
		want      string
	}{
		{1.5, 2, "1.50"},
		{0, 2, "0.00"},
		{-2.25, 2, "-2.25"},
		{3, 0, "3"},
	}
	for _, c := range cases {
		if got := FixedString(c.value, c.precision); got != c.want {
			t.Errorf("FixedString(%v, %d) = %q, want %q", c.value, c.precision, got, c.want)
		}
	}
}

func TestHumanSize(t *testing.T) {
	cases := map[int64]string{
		0:       "0B",
		512:     "512B",
		1024:    "1.00KB",
		1536:    "1.50KB",
		1 << 20: "1.00MB",
		1 << 30: "1.00GB",
	}
	for in, want := range cases {
		if got := HumanSize(in); got != want {
			t.Errorf("HumanSize(%d) = %q, want %q", in, got, want)
		}
	}
}
