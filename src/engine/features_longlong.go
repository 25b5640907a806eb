//go:build !fctfmt_nolonglong

package engine

// SupportLongLong enables the "ll" length modifier (%lld, %llu). Build
// with the fctfmt_nolonglong tag to disable: "ll" then collapses to
// "l", which is also 64 bits wide on the simulated platform; %p does
// not depend on this knob.
const SupportLongLong = true
