package softfloat

// huge32 is 0x1p120. Adding it to a finite value is evaluated purely
// for the inexact side effect the addition records in the context.
const huge32 = Float32(0x7B800000)

// Floor32 returns the largest integral value not greater than x.
func Floor32(ctx *Context, x Float32) Float32 {
	e := x.exponent() - ExponentBias32
	if e >= 23 {
		return x
	}
	bits := x.Bits()
	if e >= 0 {
		m := uint32(FractionMask32) >> uint32(e)
		if bits&m == 0 {
			return x
		}
		Add32(ctx, x, huge32)
		if bits>>31 != 0 {
			bits += m
		}
		bits &^= m
	} else {
		Add32(ctx, x, huge32)
		if bits>>31 == 0 {
			bits = 0
		} else if bits<<1 != 0 {
			bits = MinusOne32.Bits()
		}
	}
	return FromBits32(bits)
}

// Ceil32 returns the smallest integral value not less than x.
func Ceil32(ctx *Context, x Float32) Float32 {
	e := x.exponent() - ExponentBias32
	if e >= 23 {
		return x
	}
	bits := x.Bits()
	if e >= 0 {
		m := uint32(FractionMask32) >> uint32(e)
		if bits&m == 0 {
			return x
		}
		Add32(ctx, x, huge32)
		if bits>>31 == 0 {
			bits += m
		}
		bits &^= m
	} else {
		Add32(ctx, x, huge32)
		if bits>>31 != 0 {
			bits = NegZero32.Bits()
		} else if bits<<1 != 0 {
			bits = One32.Bits()
		}
	}
	return FromBits32(bits)
}

// Trunc32 returns x with its fractional part discarded.
func Trunc32(ctx *Context, x Float32) Float32 {
	e := x.exponent() - ExponentBias32 + 9
	if e >= 23+9 {
		return x
	}
	if e < 9 {
		e = 1
	}
	m := ^uint32(0) >> uint32(e)
	bits := x.Bits()
	if bits&m == 0 {
		return x
	}
	Add32(ctx, x, huge32)
	bits &^= m
	return FromBits32(bits)
}

// mul32 is a 32x32 multiply keeping the high half.
func mul32(a, b uint32) uint32 {
	return uint32(uint64(a) * uint64(b) >> 32)
}

// invalid32 computes (x-x)/(x-x), raising invalid and yielding the
// exceptional NaN for the given x.
func invalid32(ctx *Context, x Float32) Float32 {
	sub := Sub32(ctx, x, x)
	return Div32(ctx, sub, sub)
}

// rsqrtSeeds estimates 1/sqrt(x) to about 8 bits.
//
// For x in [1,2), index with (int)(64*x); for x in [2,4), with
// (int)(32*x-64). seed*2^-16 then satisfies
// |seed*0x1p-16*sqrt(x) - 1| < 0x1.fdp-9.
var rsqrtSeeds = [128]uint16{
	0xb451, 0xb2f0, 0xb196, 0xb044, 0xaef9, 0xadb6, 0xac79, 0xab43,
	0xaa14, 0xa8eb, 0xa7c8, 0xa6aa, 0xa592, 0xa480, 0xa373, 0xa26b,
	0xa168, 0xa06a, 0x9f70, 0x9e7b, 0x9d8a, 0x9c9d, 0x9bb5, 0x9ad1,
	0x99f0, 0x9913, 0x983a, 0x9765, 0x9693, 0x95c4, 0x94f8, 0x9430,
	0x936b, 0x92a9, 0x91ea, 0x912e, 0x9075, 0x8fbe, 0x8f0a, 0x8e59,
	0x8daa, 0x8cfe, 0x8c54, 0x8bac, 0x8b07, 0x8a64, 0x89c4, 0x8925,
	0x8889, 0x87ee, 0x8756, 0x86c0, 0x862b, 0x8599, 0x8508, 0x8479,
	0x83ec, 0x8361, 0x82d8, 0x8250, 0x81c9, 0x8145, 0x80c2, 0x8040,
	0xff02, 0xfd0e, 0xfb25, 0xf947, 0xf773, 0xf5aa, 0xf3ea, 0xf234,
	0xf087, 0xeee3, 0xed47, 0xebb3, 0xea27, 0xe8a3, 0xe727, 0xe5b2,
	0xe443, 0xe2dc, 0xe17a, 0xe020, 0xdecb, 0xdd7d, 0xdc34, 0xdaf1,
	0xd9b3, 0xd87b, 0xd748, 0xd61a, 0xd4f1, 0xd3cd, 0xd2ad, 0xd192,
	0xd07b, 0xcf69, 0xce5b, 0xcd51, 0xcc4a, 0xcb48, 0xca4a, 0xc94f,
	0xc858, 0xc764, 0xc674, 0xc587, 0xc49d, 0xc3b7, 0xc2d4, 0xc1f4,
	0xc116, 0xc03c, 0xbf65, 0xbe90, 0xbdbe, 0xbcef, 0xbc23, 0xbb59,
	0xba91, 0xb9cc, 0xb90a, 0xb84a, 0xb78c, 0xb6d0, 0xb617, 0xb560,
}

// Sqrt32 returns the square root of x, correctly rounded in the
// context's mode. Negative inputs raise invalid and yield NaN.
func Sqrt32(ctx *Context, x Float32) Float32 {
	ix := x.Bits()

	if ix-MinNormal32.Bits() >= Inf32.Bits()-MinNormal32.Bits() {
		// x < 0x1p-126, inf, or nan.
		if ix*2 == 0 {
			return x
		}
		if ix == Inf32.Bits() {
			return x
		}
		if ix > Inf32.Bits() {
			return invalid32(ctx, x)
		}
		// Subnormal: scale by 0x1p23 and rebias.
		n := Mul32(ctx, x, FromBits32(0x4B000000))
		ix = n.Bits()
		ix -= 23 << 23
	}

	// x = 4^e m with m in [1, 4).
	even := ix & 0x00800000
	m1 := ix<<8 | 0x80000000
	m0 := ix << 7 & 0x7FFFFFFF
	m := m1
	if even != 0 {
		m = m0
	}

	// 2^e is the exponent half of the result.
	ey := ix >> 1
	ey += 0x3F800000 >> 1
	ey &= 0x7F800000

	// r ~ 1/sqrt(m), s ~ sqrt(m), two Newton iterations each.
	const three = uint32(0xC0000000)
	i := (ix >> 17) % 128
	r := uint32(rsqrtSeeds[i]) << 16
	// |r*sqrt(m) - 1| < 0x1p-8
	s := mul32(m, r)
	// |s/sqrt(m) - 1| < 0x1p-8
	d := mul32(s, r)
	u := three - d
	r = mul32(r, u) << 1
	// |r*sqrt(m) - 1| < 0x1.7bp-16
	s = mul32(s, u) << 1
	// |s/sqrt(m) - 1| < 0x1.7bp-16
	d = mul32(s, r)
	u = three - d
	s = mul32(s, u)
	// -0x1.03p-28 < s/sqrt(m) - 1 < 0x1.fp-31
	s = (s - 1) >> 6
	// s < sqrt(m) < s + 0x1.08p-23

	// Nearest rounded result from the exact residual.
	d0 := m<<16 - s*s
	d1 := s - d0
	d2 := d1 + s + 1
	s += d1 >> 31
	s &= FractionMask32
	s |= ey

	y := FromBits32(s)

	// The tail add rounds in the context's mode and raises inexact when
	// the root is not exact.
	t := uint32(0)
	if d2 != 0 {
		t = 0x01000000
	}
	t |= (d1 ^ d2) & 0x80000000

	return Add32(ctx, y, FromBits32(t))
}

// Abs32 returns x with the sign bit cleared.
func Abs32(_ *Context, x Float32) Float32 {
	return x &^ SignMask32
}

// Copysign32 returns x with y's sign bit.
func Copysign32(_ *Context, x, y Float32) Float32 {
	return x&^SignMask32 | y&SignMask32
}

// Max32 returns the larger of x and y. A NaN operand loses to the
// other operand; signed zeros order -0 < +0.
func Max32(ctx *Context, x, y Float32) Float32 {
	if x.IsNaN() {
		return y
	}
	if y.IsNaN() {
		return x
	}
	xSign := x.sign()
	ySign := y.sign()
	if xSign != ySign {
		if xSign != 0 {
			return y
		}
		return x
	}
	// IEEE defines both min and max through the lt relation.
	if Lt32(ctx, x, y) {
		return y
	}
	return x
}

// Min32 returns the smaller of x and y, with the same NaN and signed
// zero handling as Max32.
func Min32(ctx *Context, x, y Float32) Float32 {
	if x.IsNaN() {
		return y
	}
	if y.IsNaN() {
		return x
	}
	xSign := x.sign()
	ySign := y.sign()
	if xSign != ySign {
		if xSign != 0 {
			return x
		}
		return y
	}
	if Lt32(ctx, x, y) {
		return x
	}
	return y
}

// Cosd approximates cos over a reduced range with an even polynomial of
// degree 8 at double precision, narrowing the result to single.
// It is a testing hook for the double-precision pipeline.
func Cosd(ctx *Context, x Float64) Float32 {
	const (
		c0 = Float64(0xBFDFFFFFFD0C5E81)
		c1 = Float64(0x3FA55553E1053A42)
		c2 = Float64(0xBF56C087E80F1E27)
		c3 = Float64(0x3EF99342E0EE5069)
	)

	z := Mul64(ctx, x, x)
	w := Mul64(ctx, z, z)
	r := Add64(ctx, c2, Mul64(ctx, z, c3))

	// ((1.0+(z*c0)) + (w*c1)) + ((w*z)*r)
	return Float64ToFloat32(
		ctx,
		Add64(ctx,
			Add64(ctx,
				Add64(ctx,
					One64,
					Mul64(ctx, z, c0)),
				Mul64(ctx, w, c1)),
			Mul64(ctx, Mul64(ctx, w, z), r)))
}
