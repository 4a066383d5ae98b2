// Package eval parses and evaluates arithmetic expressions against the
// softfloat core. Every operation goes through Real32, so a result
// carries both its value and the accumulated error bound, and the
// Context records the exception log and operation trace for the whole
// walk.
package eval

import (
	"fmt"
	"strings"

	"github.com/zerfoo/softfloat"
)

// Kind discriminates expression tree nodes.
type Kind int

const (
	KindLiteral Kind = iota
	KindConstant
	KindFunc1
	KindFunc2
	KindEq
	KindLte
	KindLt
	KindNe
	KindGte
	KindGt
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindSequence
)

// Func identifies a kernel function callable from an expression.
type Func int

const (
	FuncFloor Func = iota
	FuncCeil
	FuncTrunc
	FuncSqrt
	FuncAbs
	FuncCosd

	FuncMin
	FuncMax
	FuncCopysign
)

// Expr is one node of a parsed expression tree.
type Expr struct {
	Kind  Kind
	Value softfloat.Float32 // KindLiteral
	Const int               // KindConstant, index into Constants
	Func  Func              // KindFunc1, KindFunc2

	Left  *Expr
	Right *Expr
}

// Constants is the table of named constants an expression may refer to.
var Constants = []struct {
	Name  string
	Value softfloat.Float32
}{
	{"e", softfloat.FromBits32(0x402DF854)},
	{"pi", softfloat.FromBits32(0x40490FDB)},
	{"phi", softfloat.FromBits32(0x3FCF1BBD)},
	{"fmin", softfloat.FromBits32(0x00800000)},
	{"fmax", softfloat.FromBits32(0x7F7FFFFF)},
}

var func1Names = []struct {
	name string
	fn   Func
}{
	{"floor", FuncFloor},
	{"ceil", FuncCeil},
	{"trunc", FuncTrunc},
	{"sqrt", FuncSqrt},
	{"abs", FuncAbs},
	{"cosd", FuncCosd},
}

var func2Names = []struct {
	name string
	fn   Func
}{
	{"min", FuncMin},
	{"max", FuncMax},
	{"copysign", FuncCopysign},
}

func funcName(fn Func) string {
	for _, f := range func1Names {
		if f.fn == fn {
			return f.name
		}
	}
	for _, f := range func2Names {
		if f.fn == fn {
			return f.name
		}
	}
	return "?"
}

var cmpOps = map[Kind]string{
	KindEq:  "==",
	KindLte: "<=",
	KindLt:  "<",
	KindNe:  "!=",
	KindGte: ">=",
	KindGt:  ">",
}

// String renders the tree back to a normalized expression.
func (e *Expr) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Expr) write(sb *strings.Builder) {
	if e == nil {
		return
	}
	switch e.Kind {
	case KindLiteral:
		fmt.Fprintf(sb, "%g", hostFloat(e.Value))
	case KindConstant:
		sb.WriteString(Constants[e.Const].Name)
	case KindFunc1:
		sb.WriteString(funcName(e.Func))
		sb.WriteByte('(')
		e.Left.write(sb)
		sb.WriteByte(')')
	case KindFunc2:
		sb.WriteString(funcName(e.Func))
		sb.WriteByte('(')
		e.Left.write(sb)
		sb.WriteString(", ")
		e.Right.write(sb)
		sb.WriteByte(')')
	case KindAdd:
		e.writeBinary(sb, "+")
	case KindSub:
		e.writeBinary(sb, "-")
	case KindMul:
		e.writeBinary(sb, "*")
	case KindDiv:
		e.writeBinary(sb, "/")
	case KindSequence:
		e.Left.write(sb)
		sb.WriteString("; ")
		e.Right.write(sb)
	default:
		if op, ok := cmpOps[e.Kind]; ok {
			e.writeBinary(sb, op)
		}
	}
}

func (e *Expr) writeBinary(sb *strings.Builder, op string) {
	sb.WriteByte('(')
	e.Left.write(sb)
	sb.WriteByte(' ')
	sb.WriteString(op)
	sb.WriteString(" ")
	e.Right.write(sb)
	sb.WriteByte(')')
}

// Eval walks the tree, computing every arithmetic node through the
// softfloat core with error tracking. A nil node evaluates to zero.
func Eval(ctx *softfloat.Context, e *Expr) softfloat.Real32 {
	if e == nil {
		return softfloat.Real32{}
	}

	switch e.Kind {
	case KindLiteral:
		return softfloat.NewReal32(e.Value)
	case KindConstant:
		return softfloat.NewReal32(Constants[e.Const].Value)
	case KindFunc1:
		return evalFunc1(ctx, e.Func, Eval(ctx, e.Left))
	case KindFunc2:
		return evalFunc2(ctx, e.Func, Eval(ctx, e.Left), Eval(ctx, e.Right))
	case KindSequence:
		Eval(ctx, e.Left)
		return Eval(ctx, e.Right)
	}

	a := Eval(ctx, e.Left)
	b := Eval(ctx, e.Right)
	switch e.Kind {
	case KindEq:
		return a.Eq(ctx, b)
	case KindLte:
		return a.Lte(ctx, b)
	case KindLt:
		return a.Lt(ctx, b)
	case KindNe:
		return a.Ne(ctx, b)
	case KindGte:
		return a.Gte(ctx, b)
	case KindGt:
		return a.Gt(ctx, b)
	case KindAdd:
		return a.Add(ctx, b)
	case KindSub:
		return a.Sub(ctx, b)
	case KindMul:
		return a.Mul(ctx, b)
	case KindDiv:
		return a.Div(ctx, b)
	}
	return softfloat.Real32{}
}

func evalFunc1(ctx *softfloat.Context, fn Func, a softfloat.Real32) softfloat.Real32 {
	switch fn {
	case FuncFloor:
		return a.Floor(ctx)
	case FuncCeil:
		return a.Ceil(ctx)
	case FuncTrunc:
		return a.Trunc(ctx)
	case FuncSqrt:
		return a.Sqrt(ctx)
	case FuncAbs:
		return a.Abs(ctx)
	case FuncCosd:
		wide := softfloat.Float32ToFloat64(ctx, a.Value)
		return softfloat.NewReal32(softfloat.Cosd(ctx, wide))
	}
	return softfloat.Real32{}
}

func evalFunc2(ctx *softfloat.Context, fn Func, a, b softfloat.Real32) softfloat.Real32 {
	switch fn {
	case FuncMin:
		return a.Min(ctx, b)
	case FuncMax:
		return a.Max(ctx, b)
	case FuncCopysign:
		return a.Copysign(ctx, b)
	}
	return softfloat.Real32{}
}
