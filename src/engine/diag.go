package engine

// Diagnostic substrings the engine streams through the sink in place
// of a directive it cannot render. These are bit-exact with the
// paland/pico_fmt original, for compatibility with anything that
// greps engine output for them.
const (
	diagUnknownSpecifierPrefix = "%!(unknown specifier="
	diagFTOAExceeded           = "%!(exceeded PICO_PRINTF_FTOA_BUFFER_SIZE)"
	diagMaxFloatExceeded       = "%!(exceeded PICO_PRINTF_MAX_FLOAT)"
)

const hexDigitsUpper = "0123456789ABCDEF"

// putQuotedByte writes a Go-flavored single-quoted char literal for
// an arbitrary byte: printable ASCII literally (escaping ' and \),
// otherwise \xHH with proper ASCII hex digits.
//
// The original pico_fmt source emits the raw nibble values instead of
// their ASCII hex-digit representation here, which garbles the
// diagnostic for any non-printable specifier byte; this is fixed.
func putQuotedByte(st *State, c byte) {
	st.PutChar('\'')
	if c >= ' ' && c <= '~' {
		if c == '\'' || c == '\\' {
			st.PutChar('\\')
		}
		st.PutChar(c)
	} else {
		st.PutChar('\\')
		st.PutChar('x')
		st.PutChar(hexDigitsUpper[(c>>4)&0xF])
		st.PutChar(hexDigitsUpper[c&0xF])
	}
	st.PutChar('\'')
}
