package engine

// isUpperSpecifier reports whether the directive's specifier byte is
// an uppercase letter, which selects 'A'..'F' hex digits and 'E'/'G'
// exponent markers over their lowercase counterparts.
func isUpperSpecifier(specifier byte) bool {
	return specifier >= 'A' && specifier <= 'Z'
}

// signOf returns -1/0/+1 the way the integer converter's framing
// logic wants it: 0 exactly when the magnitude is zero, regardless of
// the negative flag (there is no negative zero for an unsigned
// magnitude).
func signOf(absval uint64, negative bool) int {
	if absval == 0 {
		return 0
	}
	if negative {
		return -1
	}
	return 1
}

// ntoa renders an unsigned magnitude in the given base, with sign and
// alternate-form framing determined by negative, state.Flags and
// state.Specifier. It is the one generic converter backing all three
// integer widths the original C source generates by macro: handlers
// decide how much of their popped argument to keep (see convSint/
// convUint), and always call through to this on a uint64.
func ntoa(st *State, absval uint64, negative bool, base uint) {
	start := st.Len()

	var ndigits uint
	var div uint64
	if absval != 0 {
		ndigits = 1
		div = 1
		for absval/div >= uint64(base) {
			div *= uint64(base)
			ndigits++
		}
	}

	ntoaIntro(st, base, ndigits, signOf(absval, negative))

	for i := uint(0); i < ndigits; i++ {
		digit := byte(absval / div)
		absval %= div
		div /= uint64(base)
		var c byte
		if digit < 10 {
			c = '0' + digit
		} else if isUpperSpecifier(st.Specifier) {
			c = 'A' + digit - 10
		} else {
			c = 'a' + digit - 10
		}
		st.PutChar(c)
	}

	ntoaOutro(st, start)
}

// ntoaIntro emits the leading space padding (when not zero-padding),
// the sign or base prefix, and any leading zero padding, in that
// order, accounting for how much room the prefix/sign reserves.
func ntoaIntro(st *State, base uint, ndigits uint, sign int) {
	var extra uint
	switch base {
	case 2:
		if st.Flags&FlagHash != 0 && sign != 0 {
			extra = 2 // "0b"
		}
	case 8:
		if st.Flags&FlagHash != 0 && sign != 0 {
			extra = 1 // "0"
		}
	case 10:
		if st.Flags&(FlagPlus|FlagSpace) != 0 {
			extra = 1 // "+" or " "
		} else if sign < 0 {
			extra = 1 // "-"
		}
	case 16:
		if st.Flags&FlagHash != 0 && sign != 0 {
			extra = 2 // "0x"
		}
	}

	if st.Flags&FlagPrecisionSet != 0 {
		// precision wins over the '0' flag
		st.Flags &^= FlagZero
	}

	if st.Width != 0 && st.Flags&FlagLeft == 0 && st.Flags&FlagZero == 0 {
		for i := max(st.Precision, ndigits) + extra; i < st.Width; i++ {
			st.PutChar(' ')
		}
	}

	switch base {
	case 2:
		if st.Flags&FlagHash != 0 && sign != 0 {
			st.PutChar('0')
			st.PutChar('b')
		}
	case 8:
		if st.Flags&FlagHash != 0 && sign != 0 {
			st.PutChar('0')
		}
	case 10:
		if sign < 0 {
			st.PutChar('-')
		} else if st.Flags&FlagPlus != 0 {
			st.PutChar('+')
		} else if st.Flags&FlagSpace != 0 {
			st.PutChar(' ')
		}
	case 16:
		if st.Flags&FlagHash != 0 && sign != 0 {
			st.PutChar('0')
			st.PutChar(st.Specifier)
		}
	}

	switch {
	case st.Flags&FlagPrecisionSet != 0:
		for i := ndigits; i < st.Precision; i++ {
			st.PutChar('0')
		}
	case st.Width != 0 && st.Flags&FlagLeft == 0 && st.Flags&FlagZero != 0:
		for i := ndigits + extra; i < st.Width; i++ {
			st.PutChar('0')
		}
	case sign == 0:
		// always at least one '0' digit, unless precision said otherwise
		st.PutChar('0')
	}
}

// ntoaOutro pads with trailing spaces for left-aligned directives.
func ntoaOutro(st *State, start uint) {
	for l := st.Len() - start; l < st.Width; l++ {
		st.PutChar(' ')
	}
}
