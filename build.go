// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlgen

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Const returns a width bits constant. It fails if value is negative or does not
// fit in width bits.
//
func Const(width int, value int64) (Constant, error) {
	if width < 1 {
		return Constant{}, errors.Wrapf(ErrInvalidWidth, "constant width %d", width)
	}
	if value < 0 {
		return Constant{}, errors.Wrapf(ErrNegativeConstant, "%d", value)
	}
	if bits.Len64(uint64(value)) > width {
		return Constant{}, errors.Wrapf(ErrConstantOverflow, "%d does not fit in %d bits", value, width)
	}
	return Constant{Value: uint64(value), Bits: width}, nil
}

// MustConst is like Const but panics on error.
//
func MustConst(width int, value int64) Constant {
	c, err := Const(width, value)
	if err != nil {
		panic(err)
	}
	return c
}

// LiteralWidth returns the minimum number of bits needed to represent l.
//
func LiteralWidth(l Literal) int {
	if l == 0 {
		return 1
	}
	return bits.Len64(uint64(l))
}

// width returns the width of o, 0 if o is nil.
func width(o Operand) int {
	switch o := o.(type) {
	case nil:
		return 0
	case Literal:
		return LiteralWidth(o)
	case SignalLike:
		return o.Width()
	}
	return 0
}

// Cat concatenates signals. The first signal holds the most significant bits.
//
func Cat(signals ...SignalLike) Concat {
	return Concat{Signals: signals}
}

// Inv returns the bitwise negation of a.
//
func Inv(a SignalLike) Unary {
	return Unary{Op: Not, A: a, Bits: width(a)}
}

// LNot returns the logical negation of a.
//
func LNot(a SignalLike) Unary {
	return Unary{Op: LogicalNot, A: a, Bits: 1}
}

func compare(op ComparisonOp, a SignalLike, b Operand) Comparison {
	return Comparison{A: a, B: b, Op: op}
}

// Eq returns a == b.
func Eq(a SignalLike, b Operand) Comparison { return compare(Equal, a, b) }

// Ne returns a != b.
func Ne(a SignalLike, b Operand) Comparison { return compare(NotEqual, a, b) }

// Lt returns a < b.
func Lt(a SignalLike, b Operand) Comparison { return compare(LessThan, a, b) }

// Gt returns a > b.
func Gt(a SignalLike, b Operand) Comparison { return compare(GreaterThan, a, b) }

// Le returns a <= b.
func Le(a SignalLike, b Operand) Comparison { return compare(LessThanOrEqualTo, a, b) }

// Ge returns a >= b.
func Ge(a SignalLike, b Operand) Comparison { return compare(GreaterThanOrEqualTo, a, b) }

// Bool returns a Boolean node for op. The result width is 1 for logical
// operations, the width of a for shifts and the widest operand otherwise.
//
func Bool(op BooleanOp, a SignalLike, b Operand) Boolean {
	var w int
	switch {
	case op.Logical():
		w = 1
	case op.Shift():
		w = width(a)
	default:
		w = max(width(a), width(b))
	}
	return Boolean{A: a, B: b, Op: op, Bits: w}
}

// BitAnd returns a & b.
func BitAnd(a SignalLike, b Operand) Boolean { return Bool(And, a, b) }

// BitOr returns a | b.
func BitOr(a SignalLike, b Operand) Boolean { return Bool(Or, a, b) }

// BitXor returns a ^ b.
func BitXor(a SignalLike, b Operand) Boolean { return Bool(Xor, a, b) }

// LAnd returns a && b.
func LAnd(a SignalLike, b Operand) Boolean { return Bool(LogicalAnd, a, b) }

// LOr returns a || b.
func LOr(a SignalLike, b Operand) Boolean { return Bool(LogicalOr, a, b) }

// Shl returns a << b.
func Shl(a SignalLike, b Operand) Boolean { return Bool(LeftShift, a, b) }

// Shr returns a >> b.
func Shr(a SignalLike, b Operand) Boolean { return Bool(RightShift, a, b) }

// Ashl returns a <<< b.
func Ashl(a SignalLike, b Operand) Boolean { return Bool(LeftArithmeticShift, a, b) }

// Ashr returns a >>> b.
func Ashr(a SignalLike, b Operand) Boolean { return Bool(RightArithmeticShift, a, b) }

// Add returns a + b. The result has the width of the widest operand; carries
// are not preserved.
//
func Add(a SignalLike, b Operand) Arith {
	return Arith{A: a, B: b, Op: Plus, Bits: max(width(a), width(b))}
}

// Sub returns a - b.
//
func Sub(a SignalLike, b Operand) Arith {
	return Arith{A: a, B: b, Op: Minus, Bits: max(width(a), width(b))}
}

// Mux returns cond ? a : b.
//
func Mux(cond Comparison, a, b Operand) Ternary {
	return Ternary{Cond: cond, A: a, B: b, Bits: max(width(a), width(b))}
}

// Range returns bits from down to to of a. It panics if the bounds do not
// satisfy a.Width() > from >= to >= 0.
//
func Range(a SignalLike, from, to int) Slice {
	if err := checkSlice(width(a), from, to); err != nil {
		panic(err)
	}
	return Slice{A: a, From: from, To: to}
}

// Index returns bit i of a.
//
func Index(a SignalLike, i int) Slice {
	return Range(a, i, i)
}

func checkSlice(w, from, to int) error {
	if to < 0 || from < to || from >= w {
		return errors.Wrapf(ErrInvalidSlice, "[%d:%d] of %d bits value", from, to, w)
	}
	return nil
}
