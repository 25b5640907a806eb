//go:build fctfmt_nolonglong

package engine

const SupportLongLong = false
