package main

import (
	"bytes"
	"testing"

	"fctfmt/src/engine"
	"fctfmt/src/printf"
)

func TestGuessArg(t *testing.T) {
	cases := []struct {
		in     string
		format string
		want   string
	}{
		{"42", "%d", "42"},
		{"-3.5", "%.1f", "-3.5"},
		{"hello", "%s", "hello"},
	}
	for _, c := range cases {
		got := printf.Sprintf(c.format, guessArg(c.in))
		if got != c.want {
			t.Errorf("guessArg(%q) rendered %q via %q, want %q", c.in, got, c.format, c.want)
		}
	}
}

func TestCustomSpecifiersRoundTrip(t *testing.T) {
	installCustomSpecifiers()

	if got := printf.Sprintf("%Q", engine.Int(1536)); got != "1.50KB" {
		t.Errorf("%%Q rendered %q", got)
	}

	if got := printf.Sprintf("%J", engine.Str("ok")); got != "[ok]" {
		t.Errorf("%%J rendered %q", got)
	}
}

func TestFprintfWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	n, err := printf.Fprintf(&buf, "%s=%d\n", engine.Str("count"), engine.Int(3))
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "count=3\n" {
		t.Errorf("got %q", buf.String())
	}
	if n != 8 {
		t.Errorf("got count %d, want 8", n)
	}
}
