package softfloat

// Real32 pairs a value with a conservative upper bound on the absolute
// error accumulated by the arithmetic that produced it.
//
// Each elementary operation contributes an error close to, and not
// exceeding, |result| * Epsilon32; the bounds below add that
// contribution to the propagated input bounds. Addition and subtraction
// never shrink the bound; multiplication, division and square root scale
// it with the operands and can make it smaller. It can reach +Inf on
// overflow, and NaN for a square root whose operand is provably
// negative. Floor, Ceil, Trunc, Abs, Copysign, Min, Max and the
// relations return a zero bound.
type Real32 struct {
	Value Float32
	Eps   Float32
}

// NewReal32 wraps a constant, which carries no error.
func NewReal32(value Float32) Real32 {
	return Real32{Value: value}
}

var (
	real32Zero = Real32{Value: Zero32}
	real32One  = Real32{Value: One32}
)

// inaccurateDivisor is 0.01; a divisor whose bound exceeds this
// fraction of its magnitude gets the quadratic correction in Div.
const inaccurateDivisor = Float32(0x3C23D70A)

// Add returns a+b with the propagated error bound. Error-bound
// arithmetic runs on a branch of ctx so it cannot pollute the
// caller-visible logs.
func (a Real32) Add(ctx *Context, b Real32) Real32 {
	ec := ctx.Branch()
	var r Real32
	r.Value = Add32(ctx, a.Value, b.Value)
	r.Eps = Add32(ec,
		// err(a) + err(b)
		Add32(ec, a.Eps, b.Eps),
		// EPSILON * abs(value)
		Mul32(ec, Epsilon32, Abs32(ec, r.Value)))
	return r
}

// Sub returns a-b with the propagated error bound.
func (a Real32) Sub(ctx *Context, b Real32) Real32 {
	ec := ctx.Branch()
	var r Real32
	r.Value = Sub32(ctx, a.Value, b.Value)
	r.Eps = Add32(ec,
		Add32(ec, a.Eps, b.Eps),
		Mul32(ec, Epsilon32, Abs32(ec, r.Value)))
	return r
}

// Mul returns a*b with the propagated error bound.
func (a Real32) Mul(ctx *Context, b Real32) Real32 {
	ec := ctx.Branch()
	var r Real32
	r.Value = Mul32(ctx, a.Value, b.Value)
	r.Eps = Add32(ec,
		Add32(ec,
			Add32(ec,
				// err(a) * abs(b)
				Mul32(ec, a.Eps, Abs32(ec, b.Value)),
				// err(b) * abs(a)
				Mul32(ec, b.Eps, Abs32(ec, a.Value))),
			// err(a) * err(b)
			Mul32(ec, a.Eps, b.Eps)),
		Mul32(ec, Epsilon32, Abs32(ec, r.Value)))
	return r
}

// Div returns a/b with the propagated error bound. A divisor that is
// itself inaccurate gets a quadratic correction recovering the
// first-order terms of 1/(b±err(b)).
func (a Real32) Div(ctx *Context, b Real32) Real32 {
	ec := ctx.Branch()
	var r Real32
	r.Value = Div32(ctx, a.Value, b.Value)

	absB := Abs32(ec, b.Value)
	absR := Abs32(ec, r.Value)
	e := Div32(ec,
		Add32(ec,
			a.Eps,
			// abs(r) * err(b)
			Mul32(ec, absR, b.Eps)),
		absB)

	if Gt32(ec, b.Eps, Mul32(ec, inaccurateDivisor, absB)) {
		rr := Div32(ec, b.Eps, b.Value)
		// e = e * (1 + (1 + rr) * rr)
		e = Mul32(ec, e,
			Add32(ec,
				Int32ToFloat32(ec, 1),
				Mul32(ec,
					Add32(ec, Int32ToFloat32(ec, 1), rr),
					rr)))
	}

	r.Eps = Add32(ec, e, Mul32(ec, Epsilon32, Abs32(ec, r.Value)))
	return r
}

// Sqrt returns the square root of x with the propagated error bound.
// The bound tightens as the operand dominates its own error: the
// first-order term err/(2*sqrt(x)) when x > 10*err, the exact interval
// width when x > err, and an interval straddling zero otherwise. An
// operand provably negative yields NaN for both value and bound.
func (x Real32) Sqrt(ctx *Context) Real32 {
	ec := ctx.Branch()

	var d Float32
	if Gte32(ec, x.Value, Zero32) {
		r := Sqrt32(ec, x.Value)
		err := Mul32(ec, Int32ToFloat32(ec, 10), x.Eps)
		if Gt32(ec, x.Value, err) {
			// 0.5 * (err(x) / r)
			d = Mul32(ec, Half32, Div32(ec, x.Eps, r))
		} else if Gt32(ec, x.Value, x.Eps) {
			// r - sqrt(x - err(x))
			d = Sub32(ec, r, Sqrt32(ec, Sub32(ec, x.Value, x.Eps)))
		} else {
			// max(r, sqrt(x + err(x)) - r)
			d = Max32(ec, r, Sub32(ec, Sqrt32(ec, Add32(ec, x.Value, x.Eps)), r))
		}
		// d += EPSILON * abs(r)
		d = Add32(ec, d, Mul32(ec, Epsilon32, Abs32(ec, r)))
	} else if Lt32(ec, x.Value, Mul32(ec, x.Eps, MinusOne32)) {
		d = NaN32
	} else {
		// Within the error bound of zero.
		d = Sqrt32(ec, x.Eps)
	}

	return Real32{Value: Sqrt32(ctx, x.Value), Eps: d}
}

// Operations that cannot introduce error of their own.

// Floor returns the floor of a with a zero bound.
func (a Real32) Floor(ctx *Context) Real32 {
	return Real32{Value: Floor32(ctx, a.Value)}
}

// Ceil returns the ceiling of a with a zero bound.
func (a Real32) Ceil(ctx *Context) Real32 {
	return Real32{Value: Ceil32(ctx, a.Value)}
}

// Trunc returns the truncation of a with a zero bound.
func (a Real32) Trunc(ctx *Context) Real32 {
	return Real32{Value: Trunc32(ctx, a.Value)}
}

// Abs returns the magnitude of a with a zero bound.
func (a Real32) Abs(ctx *Context) Real32 {
	return Real32{Value: Abs32(ctx, a.Value)}
}

// Copysign returns a carrying b's sign with a zero bound.
func (a Real32) Copysign(ctx *Context, b Real32) Real32 {
	return Real32{Value: Copysign32(ctx, a.Value, b.Value)}
}

// Min returns the smaller value with a zero bound.
func (a Real32) Min(ctx *Context, b Real32) Real32 {
	return Real32{Value: Min32(ctx, a.Value, b.Value)}
}

// Max returns the larger value with a zero bound.
func (a Real32) Max(ctx *Context, b Real32) Real32 {
	return Real32{Value: Max32(ctx, a.Value, b.Value)}
}

// Relations evaluate to exact 1.0 or 0.0.

// Eq returns 1.0 if a == b, else 0.0.
func (a Real32) Eq(ctx *Context, b Real32) Real32 {
	if Eq32(ctx, a.Value, b.Value) {
		return real32One
	}
	return real32Zero
}

// Lte returns 1.0 if a <= b, else 0.0.
func (a Real32) Lte(ctx *Context, b Real32) Real32 {
	if Lte32(ctx, a.Value, b.Value) {
		return real32One
	}
	return real32Zero
}

// Lt returns 1.0 if a < b, else 0.0.
func (a Real32) Lt(ctx *Context, b Real32) Real32 {
	if Lt32(ctx, a.Value, b.Value) {
		return real32One
	}
	return real32Zero
}

// Ne returns 1.0 if a != b, else 0.0.
func (a Real32) Ne(ctx *Context, b Real32) Real32 {
	if Ne32(ctx, a.Value, b.Value) {
		return real32One
	}
	return real32Zero
}

// Gte returns 1.0 if a >= b, else 0.0.
func (a Real32) Gte(ctx *Context, b Real32) Real32 {
	if Gte32(ctx, a.Value, b.Value) {
		return real32One
	}
	return real32Zero
}

// Gt returns 1.0 if a > b, else 0.0.
func (a Real32) Gt(ctx *Context, b Real32) Real32 {
	if Gt32(ctx, a.Value, b.Value) {
		return real32One
	}
	return real32Zero
}
