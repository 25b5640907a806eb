// Package xtoa converts integers and scaled quantities into decimal
// strings by writing digits into a fixed buffer back-to-front, the
// same technique the original constant-folding xtoa used, rather than
// going through strconv. It backs the custom %Q quantity specifier
// the command-line demo installs into the formatting engine.
package xtoa

// Itoa converts a signed 64-bit integer into its decimal string
// representation.
func Itoa(i int64) string {
	var res [20]byte // 2^63-1 is 19 digits, plus one byte for a sign.
	sign := i < 0
	u := uint64(i)
	if sign {
		u = -u // magnitude as unsigned, so the minimum int64 does not overflow
	}

	idx := len(res)
	if u == 0 {
		idx--
		res[idx] = '0'
	}
	for u != 0 {
		idx--
		res[idx] = byte(u%10) + '0'
		u /= 10
	}
	if sign {
		idx--
		res[idx] = '-'
	}
	return string(res[idx:])
}

// FixedString renders value with precision fractional digits, built
// with the same back-to-front digit approach as Itoa. The fractional
// part is truncated, not rounded.
func FixedString(value float64, precision uint) string {
	negative := value < 0
	if negative {
		value = -value
	}

	whole := int64(value)
	scale := 1.0
	for i := uint(0); i < precision; i++ {
		scale *= 10
	}
	frac := int64((value - float64(whole)) * scale)

	out := Itoa(whole)
	if precision == 0 {
		if negative {
			return "-" + out
		}
		return out
	}

	fracStr := Itoa(frac)
	for uint(len(fracStr)) < precision {
		fracStr = "0" + fracStr
	}

	result := out + "." + fracStr
	if negative {
		result = "-" + result
	}
	return result
}

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}

// HumanSize scales a byte count into the largest unit under which the
// magnitude stays below 1024, formatted to two fractional digits.
// Counts below 1024 are shown as whole bytes ("512B"), and counts of
// 1024PB and more stay in PB.
func HumanSize(bytes int64) string {
	if bytes < 0 {
		return "-" + HumanSize(-bytes)
	}
	if bytes < 1024 {
		return Itoa(bytes) + sizeUnits[0]
	}

	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return FixedString(value, 2) + sizeUnits[unit]
}
