package softfloat

import (
	"math"

	"github.com/x448/float16"
)

// canonicalNaN is a precision-independent carrier for NaN sign and
// payload during cross-precision conversion.
type canonicalNaN struct {
	sign uint32
	hi   uint64
	lo   uint64
}

func float32ToCanonicalNaN(ctx *Context, a Float32) canonicalNaN {
	if a.IsSignalingNaN() {
		ctx.Raise(ExceptionInvalid)
	}
	return canonicalNaN{sign: a.sign(), hi: uint64(a.Bits()) << 41}
}

func canonicalNaNToFloat32(n canonicalNaN) Float32 {
	return Float32(n.sign<<31 | 0x7FC00000 | uint32(n.hi>>41))
}

func float64ToCanonicalNaN(ctx *Context, a Float64) canonicalNaN {
	if a.IsSignalingNaN() {
		ctx.Raise(ExceptionInvalid)
	}
	return canonicalNaN{sign: a.sign(), hi: a.Bits() << 12}
}

func canonicalNaNToFloat64(n canonicalNaN) Float64 {
	return Float64(uint64(n.sign)<<63 | 0x7FF8000000000000 | n.hi>>12)
}

// Float32ToFloat64 widens a to double precision. The conversion is
// exact except for the NaN payload, which travels through the canonical
// NaN channel; signaling NaNs raise invalid and come out quiet.
func Float32ToFloat64(ctx *Context, a Float32) Float64 {
	sign := a.sign()
	exp := a.exponent()
	sig := a.fraction()
	if exp == ExponentMax32 {
		if sig != 0 {
			return canonicalNaNToFloat64(float32ToCanonicalNaN(ctx, a))
		}
		return pack64(sign, ExponentMax64, 0)
	}
	if exp == 0 {
		if sig == 0 {
			return pack64(sign, 0, 0)
		}
		sig, exp = normalizeSubnormal32(sig)
		exp--
	}
	return pack64(sign, exp+0x380, uint64(sig)<<29)
}

// Float64ToFloat32 narrows a to single precision, rounding in the
// context's mode. NaN payloads travel through the canonical NaN
// channel.
func Float64ToFloat32(ctx *Context, a Float64) Float32 {
	sign := a.sign()
	exp := a.exponent()
	sig := a.fraction()
	if exp == ExponentMax64 {
		if sig != 0 {
			return canonicalNaNToFloat32(float64ToCanonicalNaN(ctx, a))
		}
		return pack32(sign, ExponentMax32, 0)
	}
	sig = rshr64(sig, 22)
	sig32 := uint32(sig)
	if exp != 0 || sig32 != 0 {
		sig32 |= 0x40000000
		exp -= 0x381
	}
	return roundAndPack32(ctx, sign, exp, sig32)
}

// Binary16 returns the IEEE 754 binary16 interchange encoding of a,
// rounded to nearest even. Binary16 is an interchange-only format here:
// no flags are reported and no context is consulted. The host float
// is used purely as a bit-pattern carrier.
func (a Float32) Binary16() uint16 {
	return float16.Fromfloat32(math.Float32frombits(a.Bits())).Bits()
}

// Float32FromBinary16 widens a binary16 interchange encoding to a
// Float32. The conversion is exact for every binary16 value.
func Float32FromBinary16(bits uint16) Float32 {
	return FromBits32(math.Float32bits(float16.Frombits(bits).Float32()))
}
