package printf

import (
	"bytes"
	"testing"

	"fctfmt/src/engine"
)

func TestSprintf(t *testing.T) {
	if got := Sprintf("%s is %d", engine.Str("x"), engine.Int(1)); got != "x is 1" {
		t.Errorf("got %q", got)
	}
}

func TestSnprintfTruncates(t *testing.T) {
	buf := make([]byte, 3)
	n := Snprintf(buf, "%s", engine.Str("hello"))
	if n != 5 {
		t.Errorf("Snprintf reported %d, want 5", n)
	}
	if string(buf) != "hel" {
		t.Errorf("buf = %q, want %q", buf, "hel")
	}
}

func TestFprintf(t *testing.T) {
	var buf bytes.Buffer
	n, err := Fprintf(&buf, "%05d", engine.Int(42))
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "00042" {
		t.Errorf("got %q", buf.String())
	}
	if n != 5 {
		t.Errorf("got count %d, want 5", n)
	}
}

func TestFctprintf(t *testing.T) {
	var out []byte
	n := Fctprintf(func(c byte) { out = append(out, c) }, "%x", engine.Uint(255))
	if string(out) != "ff" || n != 2 {
		t.Errorf("got %q/%d", out, n)
	}
}
