package engine

import "math"

// convSint handles %d/%i. The size modifier decides how much of the
// popped 64-bit value is meaningful, truncating through the matching
// signed width before widening back out, so that e.g. %hhd on -1
// prints -1 rather than the full 64-bit two's complement pattern.
func convSint(st *State) {
	raw := st.Args.PopInt64()
	var value int64
	switch st.Size {
	case SizeLongLong, SizeLong:
		value = raw
	case SizeShort:
		value = int64(int16(raw))
	case SizeChar:
		value = int64(int8(raw))
	default:
		value = int64(int32(raw))
	}

	var absval uint64
	negative := value < 0
	if negative {
		absval = uint64(-value)
	} else {
		absval = uint64(value)
	}
	ntoa(st, absval, negative, 10)
}

// convUint handles %u/%x/%X/%o/%b.
func convUint(st *State) {
	var base uint
	switch st.Specifier {
	case 'x', 'X':
		base = 16
	case 'o':
		base = 8
	case 'b':
		base = 2
	default: // 'u'
		base = 10
		st.Flags &^= FlagPlus | FlagSpace
	}

	raw := st.Args.PopUint64()
	var value uint64
	switch st.Size {
	case SizeLongLong, SizeLong:
		value = raw
	case SizeShort:
		value = uint64(uint16(raw))
	case SizeChar:
		value = uint64(uint8(raw))
	default:
		value = uint64(uint32(raw))
	}
	ntoa(st, value, false, base)
}

// convDouble handles %f/%F/%e/%E/%g/%G. Each is gated individually by
// its feature knob so a format string can freely mix enabled and
// disabled specifiers; a disabled one still pops its float64 and
// prints the "??" stub rather than derailing the argument cursor.
func convDouble(st *State) {
	value := st.Args.PopFloat64()
	switch st.Specifier {
	case 'f', 'F':
		if !SupportFloat {
			st.PutChar('?')
			st.PutChar('?')
			return
		}
		if (value > MaxFloat && value < math.MaxFloat64) || (value < -MaxFloat && value > -math.MaxFloat64) {
			st.PutStr(diagMaxFloatExceeded)
			return
		}
		ftoa(st, value)
	case 'e', 'E':
		if !SupportFloat || !SupportExponential {
			st.PutChar('?')
			st.PutChar('?')
			return
		}
		etoa(st, value, false)
	case 'g', 'G':
		if !SupportFloat || !SupportExponential {
			st.PutChar('?')
			st.PutChar('?')
			return
		}
		etoa(st, value, true)
	}
}

// convChar handles %c.
func convChar(st *State) {
	width := st.Width
	if st.Flags&FlagLeft == 0 {
		for l := uint(1); l < width; l++ {
			st.PutChar(' ')
		}
	}
	st.PutChar(byte(st.Args.PopInt64()))
	if st.Flags&FlagLeft != 0 {
		for l := uint(1); l < width; l++ {
			st.PutChar(' ')
		}
	}
}

// convStr handles %s. Precision caps the number of bytes copied, not
// just the padding width.
func convStr(st *State) {
	s := st.Args.PopString()
	length := uint(len(s))
	if st.Flags&FlagPrecisionSet != 0 && length > st.Precision {
		length = st.Precision
	}
	if st.Flags&FlagLeft == 0 {
		for l := length; l < st.Width; l++ {
			st.PutChar(' ')
		}
	}
	for i := uint(0); i < length; i++ {
		st.PutChar(s[i])
	}
	if st.Flags&FlagLeft != 0 {
		for l := length; l < st.Width; l++ {
			st.PutChar(' ')
		}
	}
}

// convPtr handles %p: zero-padded uppercase hex at a fixed width,
// simulating a 64-bit pointer regardless of the popped value's size.
func convPtr(st *State) {
	st.Width = PointerHexWidth
	st.Flags |= FlagZero
	st.Specifier = 'X'
	ptr := st.Args.PopUintptr()
	ntoa(st, uint64(ptr), false, 16)
}

// convPct handles the literal %% escape; it consumes no argument.
func convPct(st *State) {
	st.PutChar('%')
}
