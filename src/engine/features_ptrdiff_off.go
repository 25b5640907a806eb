//go:build fctfmt_noptrdiff

package engine

const SupportPtrdiffT = false
