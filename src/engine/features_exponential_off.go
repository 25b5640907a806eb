//go:build fctfmt_noexp

package engine

const SupportExponential = false
