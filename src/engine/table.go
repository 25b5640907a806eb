package engine

import "sync"

// Handler renders one directive once the parser has filled in its
// State (flags, width, precision, size, specifier byte) and advanced
// past it. A handler pops exactly as many arguments off st.Args as its
// specifier is documented to consume and writes through st.PutChar/
// st.PutStr; it must not retain st past its own return.
type Handler func(st *State)

const tableSize = 0x80

var (
	tableMu sync.RWMutex
	table   [tableSize]Handler
)

func init() {
	table['d'] = convSint
	table['i'] = convSint
	table['u'] = convUint
	table['x'] = convUint
	table['X'] = convUint
	table['o'] = convUint
	table['b'] = convUint
	table['f'] = convDouble
	table['F'] = convDouble
	table['e'] = convDouble
	table['E'] = convDouble
	table['g'] = convDouble
	table['G'] = convDouble
	table['c'] = convChar
	table['s'] = convStr
	table['p'] = convPtr
	table['%'] = convPct
}

// Install registers fn as the handler for character, replacing
// whatever was there before (including a built-in). character must be
// a printable, non-digit ASCII byte; anything else is a silent no-op,
// matching the original's refusal to let a directive's digits be
// mistaken for a specifier.
//
// Install is safe to call concurrently with in-flight format calls:
// the table is guarded by a RWMutex, so a lookup either sees the old
// handler or the new one, never a partial write.
func Install(character byte, fn Handler) {
	if character <= ' ' || character > '~' {
		return
	}
	if character >= '0' && character <= '9' {
		return
	}
	tableMu.Lock()
	defer tableMu.Unlock()
	table[character] = fn
}

func lookup(character byte) Handler {
	if character >= tableSize {
		return nil
	}
	tableMu.RLock()
	defer tableMu.RUnlock()
	return table[character]
}
