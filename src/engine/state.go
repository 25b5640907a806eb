package engine

// Flags is the bit set of directive flags: %[flags][width][.precision][size]specifier
type Flags uint8

const (
	FlagZero         Flags = 1 << iota // '0'
	FlagLeft                           // '-'
	FlagPlus                           // '+'
	FlagSpace                          // ' '
	FlagHash                           // '#'
	FlagPrecisionSet                   // a '.' was parsed
)

// Size is the length modifier of a directive: hh, h, (none), l, ll.
type Size int

const (
	SizeChar    Size = iota // "hh"
	SizeShort               // "h"
	SizeDefault             // ""
	SizeLong                // "l"
	SizeLongLong            // "ll"
)

// State bundles the parsed fields of one directive plus the sink and
// argument cursor it is rendering against. Its lifetime is a single
// conversion call: a handler must not retain it past its own return,
// since the driver reuses it for the next directive.
type State struct {
	Flags     Flags
	Width     uint
	Precision uint
	Size      Size
	Specifier byte

	Args *ArgCursor

	sink *Sink
}

// PutChar submits one character to the underlying sink.
func (st *State) PutChar(c byte) {
	st.sink.Put(c)
}

// PutStr submits every byte of s to the underlying sink.
func (st *State) PutStr(s string) {
	for i := 0; i < len(s); i++ {
		st.PutChar(s[i])
	}
}

// Len returns how many characters have been submitted so far on this
// state's sink. When called from within a reentrant Printf, the
// count is from the beginning of the outermost call.
func (st *State) Len() uint {
	return st.sink.Len()
}

// Printf recurses into the engine on the same sink (so Len keeps
// counting from the outermost call) but with a fresh State and its
// own argument list, independent of the caller's Args. This is the
// hook a custom specifier handler uses to render a sub-format.
func (st *State) Printf(format string, args ...Arg) uint {
	return vfctprintfOnSink(st.sink, format, NewArgCursor(args))
}
