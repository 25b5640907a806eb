//go:build fctfmt_nofloat

package engine

const SupportFloat = false
