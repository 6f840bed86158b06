// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlgen

import (
	"math/bits"
	"strconv"

	"github.com/pkg/errors"
)

// Check verifies the structural well-formedness of an expression tree: known
// node types and operators, positive widths, constants fitting their width,
// 1 bit logical operations and valid slice bounds.
//
// Errors are wrapped with the path of the offending node from the root, like
// "a.b.cond.a" or "signals[2]"; use errors.Cause to retrieve the sentinel.
//
func Check(n SignalLike) error {
	return check(n, "")
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func at(path string) string {
	if path == "" {
		return "root"
	}
	return path
}

func checkWidth(w int, path string) error {
	if w < 1 {
		return errors.Wrapf(ErrInvalidWidth, "%s: width %d", at(path), w)
	}
	return nil
}

func checkLogical(w int, path string) error {
	if w != 1 {
		return errors.Wrapf(ErrInvalidWidth, "%s: logical operation of width %d", at(path), w)
	}
	return nil
}

func check(o Operand, path string) error {
	switch v := o.(type) {
	case Literal:
		return nil
	case *Signal:
		if v == nil {
			break
		}
		return checkWidth(v.Bits, path)
	case *Wire:
		if v == nil {
			break
		}
		return checkWidth(v.Bits, path)
	case Constant:
		if err := checkWidth(v.Bits, path); err != nil {
			return err
		}
		if bits.Len64(v.Value) > v.Bits {
			return errors.Wrapf(ErrConstantOverflow, "%s: %d does not fit in %d bits", at(path), v.Value, v.Bits)
		}
		return nil
	case Concat:
		if len(v.Signals) == 0 {
			return errors.Wrapf(ErrInvalidWidth, "%s: empty concatenation", at(path))
		}
		for i, s := range v.Signals {
			if err := check(s, join(path, "signals["+strconv.Itoa(i)+"]")); err != nil {
				return err
			}
		}
		return nil
	case Unary:
		if _, err := unaryGlyph(v.Op); err != nil {
			return errors.Wrap(err, at(path))
		}
		if v.Op == LogicalNot {
			if err := checkLogical(v.Bits, path); err != nil {
				return err
			}
		} else if err := checkWidth(v.Bits, path); err != nil {
			return err
		}
		return check(v.A, join(path, "a"))
	case Comparison:
		return checkComparison(v, path)
	case Boolean:
		if _, err := v.Op.Glyph(); err != nil {
			return errors.Wrap(err, at(path))
		}
		if v.Op.Logical() {
			if err := checkLogical(v.Bits, path); err != nil {
				return err
			}
		} else if err := checkWidth(v.Bits, path); err != nil {
			return err
		}
		return checkOperands(v.A, v.B, path)
	case Arith:
		if _, err := arithGlyph(v.Op); err != nil {
			return errors.Wrap(err, at(path))
		}
		if err := checkWidth(v.Bits, path); err != nil {
			return err
		}
		return checkOperands(v.A, v.B, path)
	case Ternary:
		if err := checkWidth(v.Bits, path); err != nil {
			return err
		}
		if err := checkComparison(v.Cond, join(path, "cond")); err != nil {
			return err
		}
		if err := check(v.A, join(path, "a")); err != nil {
			return err
		}
		return check(v.B, join(path, "b"))
	case Slice:
		if err := check(v.A, join(path, "a")); err != nil {
			return err
		}
		if err := checkSlice(v.A.Width(), v.From, v.To); err != nil {
			return errors.Wrap(err, at(path))
		}
		return nil
	}
	return errors.Wrapf(ErrUnknownNode, "%s: %T", at(path), o)
}

func checkComparison(c Comparison, path string) error {
	if _, err := c.Op.Glyph(); err != nil {
		return errors.Wrap(err, at(path))
	}
	return checkOperands(c.A, c.B, path)
}

func checkOperands(a SignalLike, b Operand, path string) error {
	if err := check(a, join(path, "a")); err != nil {
		return err
	}
	return check(b, join(path, "b"))
}
