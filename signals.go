// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlgen

// An Operand is any value usable as an operand in an expression: a SignalLike
// node or a bare Literal.
//
// The set of implementations is closed; every consumer of the algebra (the
// Evaluator, Check) switches over it exhaustively.
//
type Operand interface {
	operand()
}

// SignalLike is a node of an expression tree representing a computable hardware
// value of a declared bit width.
//
// Nodes are immutable values. Widths are supplied when the node is built (see the
// constructor functions) and are never inferred by the Evaluator.
//
type SignalLike interface {
	Operand
	// Width returns the declared width in bits.
	Width() int
	signalLike()
}

// A Port is a named leaf of an expression tree: a *Signal or a *Wire.
// Ports are identity handles; their name is provided by a Resolver.
//
type Port interface {
	SignalLike
	port()
}

// Literal is a bare, unsized, non-negative numeric literal. It is rendered as
// plain decimal text and can only be used as an operand, not as a node.
//
type Literal uint64

// Signedness of a signal.
//
type Signedness int

// Signedness values.
//
const (
	Unsigned Signedness = iota
	Signed
)

// Signal is a declared register or port. Each *Signal is a distinct identity.
//
type Signal struct {
	Bits       int
	Signedness Signedness
}

// Wire is a declared net. Each *Wire is a distinct identity.
//
type Wire struct {
	Bits int
}

// Constant is a fixed width literal. Value must fit in Bits bits.
//
type Constant struct {
	Value uint64
	Bits  int
}

// Concat is a bit concatenation. Signals[0] holds the most significant bits.
//
type Concat struct {
	Signals []SignalLike
}

// Unary is a bitwise (Not) or logical (LogicalNot) negation.
//
type Unary struct {
	Op   Operation
	A    SignalLike
	Bits int
}

// Comparison is an equality or ordering test. Its width is always 1.
//
type Comparison struct {
	A  SignalLike
	B  Operand
	Op ComparisonOp
}

// Boolean is a binary bitwise, logical or shift operation.
//
type Boolean struct {
	A    SignalLike
	B    Operand
	Op   BooleanOp
	Bits int
}

// Arith is a binary arithmetic operation (Plus or Minus).
//
type Arith struct {
	A    SignalLike
	B    Operand
	Op   Operation
	Bits int
}

// Ternary selects A when Cond holds, B otherwise.
//
type Ternary struct {
	Cond Comparison
	A    Operand
	B    Operand
	Bits int
}

// Slice extracts bits From down to To (inclusive) of A. From == To selects a
// single bit.
//
type Slice struct {
	A    SignalLike
	From int
	To   int
}

func (Literal) operand()       {}
func (*Signal) operand()       {}
func (*Wire) operand()         {}
func (Constant) operand()      {}
func (Concat) operand()        {}
func (Unary) operand()         {}
func (Comparison) operand()    {}
func (Boolean) operand()       {}
func (Arith) operand()         {}
func (Ternary) operand()       {}
func (Slice) operand()         {}
func (*Signal) signalLike()    {}
func (*Wire) signalLike()      {}
func (Constant) signalLike()   {}
func (Concat) signalLike()     {}
func (Unary) signalLike()      {}
func (Comparison) signalLike() {}
func (Boolean) signalLike()    {}
func (Arith) signalLike()      {}
func (Ternary) signalLike()    {}
func (Slice) signalLike()      {}
func (*Signal) port()          {}
func (*Wire) port()            {}

// Width implements SignalLike.
func (s *Signal) Width() int { return s.Bits }

// Width implements SignalLike.
func (w *Wire) Width() int { return w.Bits }

// Width implements SignalLike.
func (c Constant) Width() int { return c.Bits }

// Width returns the sum of the widths of all concatenated values.
func (c Concat) Width() int {
	n := 0
	for _, s := range c.Signals {
		if s != nil {
			n += s.Width()
		}
	}
	return n
}

// Width implements SignalLike.
func (u Unary) Width() int { return u.Bits }

// Width always returns 1.
func (Comparison) Width() int { return 1 }

// Width implements SignalLike.
func (b Boolean) Width() int { return b.Bits }

// Width implements SignalLike.
func (a Arith) Width() int { return a.Bits }

// Width implements SignalLike.
func (t Ternary) Width() int { return t.Bits }

// Width returns From-To+1.
func (s Slice) Width() int { return s.From - s.To + 1 }

// isPort returns true if o is a bare Signal or Wire leaf.
func isPort(o Operand) bool {
	_, ok := o.(Port)
	return ok
}
