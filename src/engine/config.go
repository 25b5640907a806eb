// config.go holds the numeric compile-time knobs of the formatting
// engine. The boolean feature knobs live in the features_*.go files,
// selected by build tag rather than by constant here, so that the
// disabled path is actually eliminated rather than merely branched
// around.

package engine

// DefaultFloatPrecision is the precision used by %f and %e (fractional
// digits) and by %g (significant figures) when no precision is given
// in the directive.
const DefaultFloatPrecision = 6

// MaxFloat is the magnitude ceiling above which %f/%F refuse to
// render rather than emitting an unbounded run of whole-number
// digits. %e/%E/%g/%G are not subject to this ceiling.
const MaxFloat = 1e9

// FTOABufferSize bounds the stack-sized digit buffer used while
// building a fixed-notation float. It must be large enough to hold
// one converted number including any padded zeros.
const FTOABufferSize = 32

// PointerHexWidth is the number of hex digits %p zero-pads to. It
// assumes a 64-bit pointer, which is the simulated target platform
// for this engine's size-modifier rules (see the 'j'/'z' handling in
// vfctprintfOnSink).
const PointerHexWidth = 16
