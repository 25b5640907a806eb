package engine

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func atoi(s string, i int) (uint, int) {
	var v uint
	for i < len(s) && isDigit(s[i]) {
		v = v*10 + uint(s[i]-'0')
		i++
	}
	return v, i
}

// VFctPrintf drives format against cursor, calling fn once per
// emitted character (fn may be nil to just count). It returns the
// number of characters the directive sequence would produce.
func VFctPrintf(fn func(byte), format string, cursor *ArgCursor) uint {
	return vfctprintfOnSink(NewSink(fn), format, cursor)
}

// FctPrintf is VFctPrintf's variadic convenience sibling, building the
// cursor from args directly.
func FctPrintf(fn func(byte), format string, args ...Arg) uint {
	return VFctPrintf(fn, format, NewArgCursor(args))
}

// vfctprintfOnSink is the actual directive-scanning loop, factored out
// so that a reentrant sub-format (State.Printf) can share the
// outermost call's sink and character count instead of starting a
// fresh one.
func vfctprintfOnSink(sink *Sink, format string, cursor *ArgCursor) uint {
	st := &State{Args: cursor, sink: sink}
	i, n := 0, len(format)

	for i < n {
		if format[i] != '%' {
			st.PutChar(format[i])
			i++
			continue
		}
		i++ // consume '%'

		st.Flags = 0
	flagsLoop:
		for i < n {
			switch format[i] {
			case '0':
				st.Flags |= FlagZero
			case '-':
				st.Flags |= FlagLeft
			case '+':
				st.Flags |= FlagPlus
			case ' ':
				st.Flags |= FlagSpace
			case '#':
				st.Flags |= FlagHash
			default:
				break flagsLoop
			}
			i++
		}

		st.Width = 0
		switch {
		case i < n && isDigit(format[i]):
			st.Width, i = atoi(format, i)
		case i < n && format[i] == '*':
			w := int(st.Args.PopInt64())
			if w < 0 {
				st.Flags |= FlagLeft
				st.Width = uint(-w)
			} else {
				st.Width = uint(w)
			}
			i++
		}

		st.Precision = 0
		if i < n && format[i] == '.' {
			st.Flags |= FlagPrecisionSet
			i++
			switch {
			case i < n && isDigit(format[i]):
				st.Precision, i = atoi(format, i)
			case i < n && format[i] == '*':
				p := int(st.Args.PopInt64())
				if p > 0 {
					st.Precision = uint(p)
				}
				i++
			}
		}

		st.Size = SizeDefault
		if i < n {
			switch format[i] {
			case 'l':
				st.Size = SizeLong
				i++
				if i < n && format[i] == 'l' {
					if SupportLongLong {
						st.Size = SizeLongLong
					}
					i++
				}
			case 'h':
				st.Size = SizeShort
				i++
				if i < n && format[i] == 'h' {
					st.Size = SizeChar
					i++
				}
			case 't':
				if SupportPtrdiffT {
					st.Size = SizeLongLong
					i++
				}
			case 'j', 'z':
				// simulated 64-bit platform: same width as "ll"
				st.Size = SizeLongLong
				i++
			}
		}

		var specChar byte
		if i < n {
			specChar = format[i]
			i++
		}
		st.Specifier = specChar

		if h := lookup(specChar); h != nil {
			h(st)
		} else {
			st.PutStr(diagUnknownSpecifierPrefix)
			putQuotedByte(st, specChar)
			st.PutChar(')')
		}
	}

	return st.Len()
}
