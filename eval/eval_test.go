package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerfoo/softfloat"
)

func newCtx() *softfloat.Context {
	return softfloat.NewContext(softfloat.RoundNearestEven, softfloat.TininessBeforeRounding)
}

func evalBits(t *testing.T, input string) uint32 {
	t.Helper()
	e, err := Parse(input)
	require.NoError(t, err, "parse %q", input)
	return Eval(newCtx(), e).Value.Bits()
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		input  string
		expect uint32
	}{
		{"1", 0x3F800000},
		{"-1", 0xBF800000},
		{"1.5", 0x3FC00000},
		{"0.5", 0x3F000000},
		{"1+2", 0x40400000},
		{"1+2*3", 0x40E00000},
		{"(1+2)*3", 0x41100000},
		{"1/2", 0x3F000000},
		{"2-3", 0xBF800000},
		{"1 + 2 * 3 - 4", 0x40400000},
		{"8/2/2", 0x40000000},
		{"-(1+2)", 0xC0400000},
		{"1e2", 0x42C80000},
		{"2.5e-1", 0x3E800000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expect, evalBits(t, tt.input), "value bits")
		})
	}
}

func TestEvalConstants(t *testing.T) {
	tests := []struct {
		input  string
		expect uint32
	}{
		{"e", 0x402DF854},
		{"pi", 0x40490FDB},
		{"phi", 0x3FCF1BBD},
		{"fmin", 0x00800000},
		{"fmax", 0x7F7FFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expect, evalBits(t, tt.input))
		})
	}
}

func TestEvalFunctions(t *testing.T) {
	tests := []struct {
		input  string
		expect uint32
	}{
		{"sqrt(4)", 0x40000000},
		{"sqrt(2)", 0x3FB504F3},
		{"abs(-3)", 0x40400000},
		{"floor(1.5)", 0x3F800000},
		{"ceil(1.5)", 0x40000000},
		{"trunc(-1.5)", 0xBF800000},
		{"min(1, 2)", 0x3F800000},
		{"max(1, 2)", 0x40000000},
		{"copysign(2, -1)", 0xC0000000},
		{"cosd(0)", 0x3F800000},
		{"sqrt(min(4, 9))", 0x40000000},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expect, evalBits(t, tt.input))
		})
	}
}

func TestEvalRelations(t *testing.T) {
	tests := []struct {
		input  string
		expect uint32
	}{
		{"1 < 2", 0x3F800000},
		{"2 < 1", 0x00000000},
		{"1 <= 1", 0x3F800000},
		{"1 == 1", 0x3F800000},
		{"1 != 1", 0x00000000},
		{"2 >= 3", 0x00000000},
		{"3 > 2", 0x3F800000},
		{"1+1 == 2", 0x3F800000},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expect, evalBits(t, tt.input))
		})
	}
}

func TestEvalSequence(t *testing.T) {
	assert.Equal(t, uint32(0x40000000), evalBits(t, "1+1; 4/2"))
}

func TestEvalErrorBound(t *testing.T) {
	e, err := Parse("1/3")
	require.NoError(t, err)
	ctx := newCtx()
	r := Eval(ctx, e)
	assert.Equal(t, uint32(0x3EAAAAAB), r.Value.Bits())
	ec := ctx.Branch()
	assert.True(t, softfloat.Gt32(ec, r.Eps, softfloat.Zero32),
		"inexact evaluation must carry a bound")

	e, err = Parse("2")
	require.NoError(t, err)
	r = Eval(newCtx(), e)
	assert.Equal(t, softfloat.Zero32, r.Eps, "a literal carries no error")
}

func TestEvalTrace(t *testing.T) {
	e, err := Parse("1+2*3")
	require.NoError(t, err)
	ctx := newCtx()
	Eval(ctx, e)
	assert.Equal(t, []softfloat.Operation{softfloat.OpMul, softfloat.OpAdd}, ctx.Operations)
	assert.Empty(t, ctx.Exceptions)
}

func TestEvalExceptions(t *testing.T) {
	e, err := Parse("1/0")
	require.NoError(t, err)
	ctx := newCtx()
	r := Eval(ctx, e)
	assert.Equal(t, uint32(0x7F800000), r.Value.Bits())
	require.NotEmpty(t, ctx.Exceptions)
	assert.Equal(t, softfloat.ExceptionDivideByZero, ctx.Exceptions[0])
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"1+",
		"(1",
		"foo(1)",
		"bar",
		"min(1)",
		"sqrt(1, 2)",
		"1 @ 2",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)
		})
	}
}

func TestExprString(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"1+2*3", "(1 + (2 * 3))"},
		{"min(1,2)", "min(1, 2)"},
		{"sqrt(4)", "sqrt(4)"},
		{"pi*2", "(pi * 2)"},
		{"1;2", "1; 2"},
		{"1<=2", "(1 <= 2)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, e.String())
		})
	}
}
