//go:build !fctfmt_noexp

package engine

// SupportExponential enables %e/%E/%g/%G. Build with the
// fctfmt_noexp tag to disable: those specifiers then behave like
// %f/%F does with SupportFloat off.
const SupportExponential = true
