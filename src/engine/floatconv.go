package engine

import "math"

// reverseInto appends s's bytes to buf in reverse order, matching the
// least-significant-first convention the digit builders use, so that
// a fixed literal like "nan" can go through emitReversed unchanged.
func reverseInto(s string) []byte {
	buf := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		buf[i] = s[len(s)-1-i]
	}
	return buf
}

// floatSpecial handles NaN and the two infinities, which bypass the
// digit builder entirely. It reports whether value was special.
func floatSpecial(st *State, value float64) bool {
	switch {
	case math.IsNaN(value):
		emitReversed(st, reverseInto("nan"))
	case value < -math.MaxFloat64:
		emitReversed(st, reverseInto("-inf"))
	case value > math.MaxFloat64:
		if st.Flags&FlagPlus != 0 {
			emitReversed(st, reverseInto("+inf"))
		} else {
			emitReversed(st, reverseInto("inf"))
		}
	default:
		return false
	}
	return true
}

func ftoaExceeded(st *State) {
	st.PutStr(diagFTOAExceeded)
}

var pow10Table = [10]float64{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

// ftoa is the fixed-notation float converter (%f/%F), and also the
// inner converter etoa delegates to once it has rescaled the mantissa
// into [1,10). At an exact half, an odd last digit rounds up to even
// and an even non-zero one is kept; a fraction that is still zero is
// rounded up to 1.
func ftoa(st *State, value float64) {
	if floatSpecial(st, value) {
		return
	}

	var buf []byte
	negative := false
	if value < 0 {
		negative = true
		value = -value
	}

	if st.Flags&FlagPrecisionSet == 0 {
		st.Precision = DefaultFloatPrecision
	}
	for st.Precision >= uint(len(pow10Table)) {
		if uint(len(buf)) == FTOABufferSize {
			ftoaExceeded(st)
			return
		}
		buf = append(buf, '0')
		st.Precision--
	}

	whole := int64(value)
	tmp := (value - float64(whole)) * pow10Table[st.Precision]
	frac := uint64(tmp)
	diff := tmp - float64(frac)

	switch {
	case diff > 0.5:
		frac++
		if frac >= uint64(pow10Table[st.Precision]) {
			frac = 0
			whole++
		}
	case diff < 0.5:
		// exact, no rounding
	case frac == 0 || frac&1 != 0:
		// round to even: halfway and currently odd (or zero) rounds up
		frac++
	}

	if st.Precision == 0 {
		diff = value - float64(whole)
		if !(diff < 0.5 || diff > 0.5) && whole&1 != 0 {
			whole++
		}
	} else {
		count := st.Precision
		for {
			count--
			if uint(len(buf)) == FTOABufferSize {
				ftoaExceeded(st)
				return
			}
			buf = append(buf, byte('0'+frac%10))
			frac /= 10
			if frac == 0 {
				break
			}
		}
		for count > 0 {
			count--
			if uint(len(buf)) == FTOABufferSize {
				ftoaExceeded(st)
				return
			}
			buf = append(buf, '0')
		}
		if uint(len(buf)) == FTOABufferSize {
			ftoaExceeded(st)
			return
		}
		buf = append(buf, '.')
	}

	for {
		if uint(len(buf)) == FTOABufferSize {
			ftoaExceeded(st)
			return
		}
		buf = append(buf, byte('0'+whole%10))
		whole /= 10
		if whole == 0 {
			break
		}
	}

	if st.Flags&FlagLeft == 0 && st.Flags&FlagZero != 0 {
		width := st.Width
		if width > 0 && (negative || st.Flags&(FlagPlus|FlagSpace) != 0) {
			width--
		}
		for uint(len(buf)) < width {
			if uint(len(buf)) == FTOABufferSize {
				ftoaExceeded(st)
				return
			}
			buf = append(buf, '0')
		}
	}

	switch {
	case negative:
		if uint(len(buf)) == FTOABufferSize {
			ftoaExceeded(st)
			return
		}
		buf = append(buf, '-')
	case st.Flags&FlagPlus != 0:
		buf = append(buf, '+')
	case st.Flags&FlagSpace != 0:
		buf = append(buf, ' ')
	}

	emitReversed(st, buf)
}
