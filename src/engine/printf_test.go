// Tests the formatting engine end to end through FctPrintf, covering
// the directive grammar, integer and float conversion, padding, and
// the diagnostic paths a handler or the parser itself can take.

package engine

import (
	"strings"
	"testing"
)

// render is the test helper every case below funnels through: it
// collects FctPrintf's output into a string and also checks the
// returned character count matches the collected length, since the
// engine must report that count even when a caller discards output.
func render(t *testing.T, format string, args ...Arg) string {
	t.Helper()
	var sb strings.Builder
	n := FctPrintf(func(c byte) { sb.WriteByte(c) }, format, args...)
	if uint(sb.Len()) != n {
		t.Fatalf("FctPrintf(%q) returned count %d, collected %d bytes", format, n, sb.Len())
	}
	return sb.String()
}

func TestLiteralText(t *testing.T) {
	if got := render(t, "no directives here"); got != "no directives here" {
		t.Errorf("got %q", got)
	}
	if got := render(t, "100%% done"); got != "100% done" {
		t.Errorf("got %q", got)
	}
}

func TestIntegerConversions(t *testing.T) {
	cases := []struct {
		format string
		args   []Arg
		want   string
	}{
		{"%d", []Arg{Int(42)}, "42"},
		{"%d", []Arg{Int(-42)}, "-42"},
		{"%5d", []Arg{Int(42)}, "   42"},
		{"%-5d|", []Arg{Int(42)}, "42   |"},
		{"%05d", []Arg{Int(42)}, "00042"},
		{"%+d", []Arg{Int(42)}, "+42"},
		{"% d", []Arg{Int(42)}, " 42"},
		{"%x", []Arg{Uint(255)}, "ff"},
		{"%X", []Arg{Uint(255)}, "FF"},
		{"%#x", []Arg{Uint(255)}, "0xff"},
		{"%#o", []Arg{Uint(8)}, "010"},
		{"%#b", []Arg{Uint(5)}, "0b101"},
		{"%u", []Arg{Uint(0)}, "0"},
		{"%.4d", []Arg{Int(7)}, "0007"},
		{"%hhd", []Arg{Int(-1)}, "-1"},
	}
	for _, c := range cases {
		if got := render(t, c.format, c.args...); got != c.want {
			t.Errorf("render(%q) = %q, want %q", c.format, got, c.want)
		}
	}
}

func TestFloatFixed(t *testing.T) {
	cases := []struct {
		format string
		value  float64
		want   string
	}{
		{"%.0f", 1.5, "2"},
		{"%.0f", 2.5, "2"},
		{"%.0f", 3.5, "4"},
		{"%.0f", 0.5, "0"},
		{"%.2f", 3.14159, "3.14"},
		{"%f", 1.0, "1.000000"},
		{"%+.1f", 2.0, "+2.0"},
	}
	for _, c := range cases {
		if got := render(t, c.format, Float(c.value)); got != c.want {
			t.Errorf("render(%q, %v) = %q, want %q", c.format, c.value, got, c.want)
		}
	}
}

func TestAdaptiveExponential(t *testing.T) {
	got := render(t, "%g %g %g", Float(0.0001), Float(1.0), Float(1e7))
	want := "0.0001 1 1e+07"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStringAndChar(t *testing.T) {
	cases := []struct {
		format string
		args   []Arg
		want   string
	}{
		{"%s", []Arg{Str("hi")}, "hi"},
		{"%5s|", []Arg{Str("hi")}, "   hi|"},
		{"%-5s|", []Arg{Str("hi")}, "hi   |"},
		{"%.1s", []Arg{Str("hi")}, "h"},
		{"%c", []Arg{Byte('x')}, "x"},
		{"%3c|", []Arg{Byte('x')}, "  x|"},
	}
	for _, c := range cases {
		if got := render(t, c.format, c.args...); got != c.want {
			t.Errorf("render(%q) = %q, want %q", c.format, got, c.want)
		}
	}
}

func TestPointer(t *testing.T) {
	got := render(t, "%p", Ptr(0xDEAD))
	want := "000000000000DEAD"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnknownSpecifierDiagnostic(t *testing.T) {
	got := render(t, "%q")
	want := "%!(unknown specifier='q')"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnknownSpecifierHexEscapesProperDigits(t *testing.T) {
	// \x01 is not printable, so the diagnostic must escape it as the two
	// ASCII hex digits "01", not the raw nibble bytes 0x0 and 0x1.
	got := render(t, "%\x01")
	want := "%!(unknown specifier='\\x01')"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMaxFloatExceeded(t *testing.T) {
	got := render(t, "%f", Float(1e10))
	if got != diagMaxFloatExceeded {
		t.Errorf("got %q, want %q", got, diagMaxFloatExceeded)
	}
}

func TestStarWidthAndPrecision(t *testing.T) {
	got := render(t, "%*d", Int(6), Int(42))
	want := "    42"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = render(t, "%.*f", Int(1), Float(3.14159))
	want = "3.1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInstallCustomSpecifier(t *testing.T) {
	Install('Q', func(st *State) {
		st.PutStr("<custom>")
	})
	got := render(t, "%Q")
	if got != "<custom>" {
		t.Errorf("got %q", got)
	}
}

func TestInstallRejectsDigit(t *testing.T) {
	Install('5', func(st *State) {
		st.PutStr("SHOULD-NOT-DISPATCH")
	})
	got := render(t, "%5d", Int(42))
	want := "   42"
	if got != want {
		t.Errorf("got %q, want %q — digit '5' must stay a width digit, not dispatch to an installed handler", got, want)
	}
}

func TestAnyArgCustomSpecifier(t *testing.T) {
	type point struct{ x, y int }
	Install('P', func(st *State) {
		p := st.Args.PopAny().(point)
		st.Printf("(%d,%d)", Int(int64(p.x)), Int(int64(p.y)))
	})
	got := render(t, "%P", Any(point{3, 4}))
	want := "(3,4)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReentrantPrintf(t *testing.T) {
	Install('R', func(st *State) {
		st.Printf("[%d]", Int(st.Args.PopInt64()))
	})
	got := render(t, "a%Rb", Int(7))
	want := "a[7]b"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLengthReturnedEvenWhenDiscarded(t *testing.T) {
	n := FctPrintf(nil, "%5d", Int(1))
	if n != 5 {
		t.Errorf("got %d, want 5", n)
	}
}
