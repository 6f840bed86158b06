// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlgen

import (
	"strconv"

	"github.com/pkg/errors"
)

// Operation enumerates arithmetic and unary operations.
//
type Operation int

// Operations. Plus and Minus are valid in Arith nodes, Not and LogicalNot
// in Unary nodes. Bit is reserved for bit selection and has no glyph.
//
const (
	Plus Operation = iota
	Minus
	Not
	LogicalNot
	Bit
)

var operationNames = [...]string{
	Plus:       "Plus",
	Minus:      "Minus",
	Not:        "Not",
	LogicalNot: "LogicalNot",
	Bit:        "Bit",
}

func (op Operation) String() string {
	if op < 0 || int(op) >= len(operationNames) {
		return "Operation(" + strconv.Itoa(int(op)) + ")"
	}
	return operationNames[op]
}

// unaryGlyph returns the prefix operator for a Unary node.
func unaryGlyph(op Operation) (string, error) {
	switch op {
	case Not:
		return "~", nil
	case LogicalNot:
		return "!", nil
	}
	return "", errors.Wrapf(ErrUnknownOperator, "unary operation %v", op)
}

// arithGlyph returns the infix operator for an Arith node.
func arithGlyph(op Operation) (string, error) {
	switch op {
	case Plus:
		return "+", nil
	case Minus:
		return "-", nil
	}
	return "", errors.Wrapf(ErrUnknownOperator, "binary operation %v", op)
}

// BooleanOp enumerates bitwise, logical and shift operations.
//
type BooleanOp int

// Boolean operations.
//
const (
	And BooleanOp = iota
	Or
	Xor
	LogicalAnd
	LogicalOr
	LeftShift
	RightShift
	LeftArithmeticShift
	RightArithmeticShift
)

var booleanOps = [...]struct{ name, glyph string }{
	And:                  {"And", "&"},
	Or:                   {"Or", "|"},
	Xor:                  {"Xor", "^"},
	LogicalAnd:           {"LogicalAnd", "&&"},
	LogicalOr:            {"LogicalOr", "||"},
	LeftShift:            {"LeftShift", "<<"},
	RightShift:           {"RightShift", ">>"},
	LeftArithmeticShift:  {"LeftArithmeticShift", "<<<"},
	RightArithmeticShift: {"RightArithmeticShift", ">>>"},
}

func (op BooleanOp) valid() bool { return op >= 0 && int(op) < len(booleanOps) }

func (op BooleanOp) String() string {
	if !op.valid() {
		return "BooleanOp(" + strconv.Itoa(int(op)) + ")"
	}
	return booleanOps[op].name
}

// Glyph returns the infix operator text for op.
//
func (op BooleanOp) Glyph() (string, error) {
	if !op.valid() {
		return "", errors.Wrapf(ErrUnknownOperator, "boolean operation %v", op)
	}
	return booleanOps[op].glyph, nil
}

// Logical returns true for operations yielding a 1 bit result.
//
func (op BooleanOp) Logical() bool { return op == LogicalAnd || op == LogicalOr }

// Shift returns true for shift operations.
//
func (op BooleanOp) Shift() bool { return op >= LeftShift && op <= RightArithmeticShift }

// ComparisonOp enumerates comparison operations.
//
type ComparisonOp int

// Comparison operations.
//
const (
	Equal ComparisonOp = iota
	NotEqual
	LessThan
	GreaterThan
	LessThanOrEqualTo
	GreaterThanOrEqualTo
)

var comparisonOps = [...]struct{ name, glyph string }{
	Equal:                {"Equal", "=="},
	NotEqual:             {"NotEqual", "!="},
	LessThan:             {"LessThan", "<"},
	GreaterThan:          {"GreaterThan", ">"},
	LessThanOrEqualTo:    {"LessThanOrEqualTo", "<="},
	GreaterThanOrEqualTo: {"GreaterThanOrEqualTo", ">="},
}

func (op ComparisonOp) valid() bool { return op >= 0 && int(op) < len(comparisonOps) }

func (op ComparisonOp) String() string {
	if !op.valid() {
		return "ComparisonOp(" + strconv.Itoa(int(op)) + ")"
	}
	return comparisonOps[op].name
}

// Glyph returns the infix operator text for op.
//
func (op ComparisonOp) Glyph() (string, error) {
	if !op.valid() {
		return "", errors.Wrapf(ErrUnknownOperator, "comparison operation %v", op)
	}
	return comparisonOps[op].glyph, nil
}
