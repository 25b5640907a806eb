package engine

// emitReversed streams buf through the state's sink back-to-front,
// honoring width and padding. The fixed-notation float converter
// builds its digits (and any sign, appended last) into buf in
// least-significant-first order, and floatSpecial hands over its
// literals pre-reversed, so reversing it here is what puts everything
// back in human reading order. The integer converter does not use
// this; it emits its digits in reading order itself.
func emitReversed(st *State, buf []byte) {
	start := st.Len()

	if st.Flags&(FlagLeft|FlagZero) == 0 {
		for i := uint(len(buf)); i < st.Width; i++ {
			st.PutChar(' ')
		}
	}

	for i := len(buf) - 1; i >= 0; i-- {
		st.PutChar(buf[i])
	}

	if st.Flags&FlagLeft != 0 {
		for st.Len()-start < st.Width {
			st.PutChar(' ')
		}
	}
}
