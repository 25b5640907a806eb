//go:build !fctfmt_noptrdiff

package engine

// SupportPtrdiffT enables the "t" length modifier. Build with the
// fctfmt_noptrdiff tag to disable: "t" is then not consumed as a
// size modifier at all, so it falls through to become the specifier
// byte itself (and, lacking a handler, renders as an unknown
// specifier diagnostic).
const SupportPtrdiffT = true
