package engine

import "math"

// etoa is the exponential/adaptive float converter backing %e/%E
// (adaptExp false) and %g/%G (adaptExp true). The exponent estimate
// uses a log10 approximation on the IEEE binary exponent and mantissa
// rather than repeated division, then refines it with a continued-
// fraction expansion of exp(z); both are ported from the pico_fmt
// original rather than reached for via math.Log10/math.Pow, to keep
// the rounding behavior bit-compatible with the %f path it shares a
// digit builder with.
func etoa(st *State, value float64, adaptExp bool) {
	if floatSpecial(st, value) {
		return
	}

	negative := value < 0
	if negative {
		value = -value
	}

	if st.Flags&FlagPrecisionSet == 0 {
		st.Precision = DefaultFloatPrecision
	}

	bits := math.Float64bits(value)
	var expval int
	var conv float64
	if bits != 0 {
		exp2 := int((bits>>52)&0x7FF) - 1023
		mantissa := math.Float64frombits((bits &^ (uint64(0x7FF) << 52)) | (1023 << 52))
		expval = int(0.1760912590558 + float64(exp2)*0.301029995663981 + (mantissa-1.5)*0.289529654602168)

		tenExp := int(float64(expval)*3.321928094887362 + 0.5)
		z := float64(expval)*2.302585092994046 - float64(tenExp)*0.6931471805599453
		z2 := z * z
		conv = math.Float64frombits(uint64(tenExp+1023) << 52)
		conv *= 1 + 2*z/(2-z+(z2/(6+(z2/(10+z2/14)))))
		if value < conv {
			expval--
			conv /= 10
		}
	}

	var minwidth uint
	if expval < 100 && expval > -100 {
		minwidth = 4
	} else {
		minwidth = 5
	}

	if adaptExp {
		if bits == 0 || (value >= 1e-4 && value < 1e6) {
			if int(st.Precision) > expval {
				st.Precision = uint(int(st.Precision) - expval - 1)
			} else {
				st.Precision = 0
			}
			minwidth = 0
			expval = 0
		} else if st.Precision > 0 {
			st.Precision--
		}
		st.Flags |= FlagPrecisionSet
	}

	fwidth := st.Width
	if fwidth > minwidth {
		fwidth -= minwidth
	} else {
		fwidth = 0
	}
	if st.Flags&FlagLeft != 0 && minwidth != 0 {
		fwidth = 0
	}

	if expval != 0 {
		value /= conv
	}

	// %g/%G drop trailing zeros from the fraction unless '#' is set.
	if adaptExp && st.Flags&FlagHash == 0 {
		scaled := math.Round(value * math.Pow10(int(st.Precision)))
		for st.Precision > 0 && math.Mod(scaled, 10) == 0 {
			scaled /= 10
			st.Precision--
		}
	}

	start := st.Len()
	sub := &State{
		Flags:     st.Flags,
		Width:     fwidth,
		Precision: st.Precision,
		Specifier: 'f',
		Args:      st.Args,
		sink:      st.sink,
	}
	if negative {
		ftoa(sub, -value)
	} else {
		ftoa(sub, value)
	}

	if minwidth == 0 {
		return
	}

	if isUpperSpecifier(st.Specifier) {
		st.PutChar('E')
	} else {
		st.PutChar('e')
	}

	negExp := expval < 0
	eabs := expval
	if negExp {
		eabs = -expval
	}
	expSub := &State{
		Flags:     FlagZero | FlagPlus,
		Width:     minwidth - 1,
		Specifier: 'd',
		sink:      st.sink,
	}
	ntoa(expSub, uint64(eabs), negExp, 10)

	if st.Flags&FlagLeft != 0 {
		for st.Len()-start < st.Width {
			st.PutChar(' ')
		}
	}
}
