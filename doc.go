// Package softfloat implements IEEE 754-2008 binary32 and binary64
// floating-point arithmetic entirely in integer operations.
//
// The host floating-point unit is never consulted for arithmetic,
// comparison, or rounding, so every operation produces the same bit
// pattern, the same exception flags, and the same rounding decisions on
// every platform.
//
// # Values
//
// Float32 and Float64 are bit patterns, not host floats. Construct them
// with FromBits32/FromBits64 or the conversion functions, and inspect
// them with Bits. A value is never implicitly converted to a host float
// by this package; callers that want human-readable output can
// reinterpret the bits themselves.
//
// # Contexts
//
// Every arithmetic operation takes a *Context carrying the rounding
// mode, the tininess detection mode, a counter of operations that had
// to round, and two append-only logs: the exception flag sets raised so
// far and the top-level operations performed. Operations never fail and
// never trap; IEEE exceptional conditions are recorded in the Context
// and a well-defined default value (quiet NaN, signed infinity, or
// signed zero) is returned.
//
// A Context is owned by a single caller at a time. Two Contexts are
// fully independent; there is no global state.
//
// # Error tracking
//
// Real32 pairs every value with a conservative upper bound on its
// accumulated absolute error, propagated through +, -, *, / and square
// root. Constants enter with a zero bound; addition and subtraction
// never shrink it.
package softfloat
