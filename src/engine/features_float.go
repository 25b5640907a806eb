//go:build !fctfmt_nofloat

package engine

// SupportFloat enables %f/%F (and, transitively, %e/%E/%g/%G which
// are built on top of the fixed converter). Build with the
// fctfmt_nofloat tag to disable: float specifiers then still consume
// a float64 argument but print "??".
const SupportFloat = true
