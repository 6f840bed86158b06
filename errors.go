// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlgen

import "github.com/pkg/errors"

// Errors returned by this package. They are always wrapped with context; use
// errors.Cause to compare against them.
//
var (
	// ErrUnknownNode reports an expression node outside of the closed set of
	// signal-like values (typically a nil operand).
	ErrUnknownNode = errors.New("unrecognised expression type")
	// ErrUnknownOperator reports an operator value outside of its enumeration.
	ErrUnknownOperator = errors.New("unrecognised operation")
	// ErrNegativeConstant is returned when building a constant from a negative value.
	ErrNegativeConstant = errors.New("negative constant value")
	// ErrConstantOverflow is returned when a constant value does not fit its width.
	ErrConstantOverflow = errors.New("constant value overflows width")
	// ErrInvalidWidth reports a zero or negative bit width.
	ErrInvalidWidth = errors.New("invalid width")
	// ErrInvalidSlice reports slice bounds that do not satisfy width > from >= to >= 0.
	ErrInvalidSlice = errors.New("invalid slice bounds")
	// ErrUnknownPort is returned by the default resolver for ports not declared
	// in the working module.
	ErrUnknownPort = errors.New("port not declared in module")
	// ErrDuplicateName is returned when declaring two ports with the same name.
	ErrDuplicateName = errors.New("duplicate signal name")
)
