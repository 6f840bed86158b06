// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlgen

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Resolver returns the declared name of a signal or wire in the current scope.
//
type Resolver func(p Port) (string, error)

// Evaluator renders expression trees as RTL source text.
//
// By default, port names are looked up in the working module (see SetModule).
// An Evaluator is not safe for concurrent reconfiguration: the working module
// and resolver bindings are shared by all calls to Evaluate.
//
type Evaluator struct {
	m        *Module
	resolver Resolver
}

// EvaluatorOption configures an Evaluator.
//
type EvaluatorOption func(e *Evaluator)

// WithResolver replaces the default module lookup with r. This is used to
// render expressions within another naming scope, like a submodule's port
// mapping.
//
func WithResolver(r Resolver) EvaluatorOption {
	return func(e *Evaluator) {
		e.resolver = r
	}
}

// NewEvaluator returns a new Evaluator working on module m.
//
func NewEvaluator(m *Module, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{m: m}
	for _, o := range opts {
		o(e)
	}
	return e
}

// SetModule sets the working module used by the default resolver.
//
func (e *Evaluator) SetModule(m *Module) {
	e.m = m
}

// Module returns the working module.
//
func (e *Evaluator) Module() *Module {
	return e.m
}

// SetResolver replaces the current resolver. A nil r restores the default
// module lookup.
//
func (e *Evaluator) SetResolver(r Resolver) {
	e.resolver = r
}

func (e *Evaluator) resolve(p Port) (string, error) {
	if e.resolver != nil {
		return e.resolver(p)
	}
	if e.m == nil {
		return "", errors.Wrap(ErrUnknownPort, "no working module")
	}
	d, err := e.m.Descriptor(p)
	if err != nil {
		return "", err
	}
	return d.Name, nil
}

// Evaluate renders v. It either returns the complete text of the expression or
// an error: unknown node types (ErrUnknownNode), unknown operators
// (ErrUnknownOperator) and resolver failures are never recovered.
//
func (e *Evaluator) Evaluate(v Operand) (string, error) {
	return renderer(e.resolve).eval(v)
}

// EvaluateWith renders v using r to resolve port names. It does not read or
// change the Evaluator bindings and is safe to call concurrently.
//
func (e *Evaluator) EvaluateWith(r Resolver, v Operand) (string, error) {
	if r == nil {
		return "", errors.New("nil resolver")
	}
	return renderer(r).eval(v)
}

// MustEvaluate is like Evaluate but panics on error.
//
func (e *Evaluator) MustEvaluate(v Operand) string {
	s, err := e.Evaluate(v)
	if err != nil {
		panic(err)
	}
	return s
}

type renderer Resolver

func (r renderer) eval(v Operand) (string, error) {
	switch v := v.(type) {
	case Literal:
		return strconv.FormatUint(uint64(v), 10), nil
	case *Signal:
		return r.port(v)
	case *Wire:
		return r.port(v)
	case Constant:
		return constant(v), nil
	case Concat:
		return r.concat(v)
	case Unary:
		return r.unary(v)
	case Comparison:
		return r.comparison(v)
	case Ternary:
		return r.ternary(v)
	case Boolean:
		return r.boolean(v)
	case Arith:
		return r.arith(v)
	case Slice:
		return r.slice(v)
	}
	return "", errors.Wrapf(ErrUnknownNode, "%T", v)
}

func (r renderer) port(p Port) (string, error) {
	n, err := r(p)
	if err != nil {
		return "", errors.Wrapf(err, "resolve %T", p)
	}
	return n, nil
}

// wrap renders s in parentheses unless s is a Signal or Wire.
func (r renderer) wrap(s SignalLike) (string, error) {
	t, err := r.eval(s)
	if err != nil {
		return "", err
	}
	if isPort(s) {
		return t, nil
	}
	return "(" + t + ")", nil
}

func constant(c Constant) string {
	bits := strconv.FormatUint(c.Value, 2)
	if n := c.Bits - len(bits); n > 0 {
		bits = strings.Repeat("0", n) + bits
	}
	return strconv.Itoa(c.Bits) + "'b" + bits
}

func (r renderer) concat(c Concat) (string, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range c.Signals {
		t, err := r.eval(s)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t)
	}
	b.WriteByte('}')
	return b.String(), nil
}

func (r renderer) unary(u Unary) (string, error) {
	op, err := unaryGlyph(u.Op)
	if err != nil {
		return "", err
	}
	a, err := r.wrap(u.A)
	if err != nil {
		return "", err
	}
	return op + a, nil
}

// binary renders "a op b" where only a is subject to wrapping.
func (r renderer) binary(a SignalLike, op string, b Operand) (string, error) {
	lhs, err := r.wrap(a)
	if err != nil {
		return "", err
	}
	rhs, err := r.eval(b)
	if err != nil {
		return "", err
	}
	return lhs + " " + op + " " + rhs, nil
}

func (r renderer) comparison(c Comparison) (string, error) {
	op, err := c.Op.Glyph()
	if err != nil {
		return "", err
	}
	return r.binary(c.A, op, c.B)
}

func (r renderer) boolean(b Boolean) (string, error) {
	op, err := b.Op.Glyph()
	if err != nil {
		return "", err
	}
	return r.binary(b.A, op, b.B)
}

func (r renderer) arith(a Arith) (string, error) {
	op, err := arithGlyph(a.Op)
	if err != nil {
		return "", err
	}
	return r.binary(a.A, op, a.B)
}

func (r renderer) ternary(t Ternary) (string, error) {
	cond, err := r.comparison(t.Cond)
	if err != nil {
		return "", err
	}
	a, err := r.eval(t.A)
	if err != nil {
		return "", err
	}
	b, err := r.eval(t.B)
	if err != nil {
		return "", err
	}
	return cond + " ? " + a + " : " + b, nil
}

func (r renderer) slice(s Slice) (string, error) {
	a, err := r.wrap(s.A)
	if err != nil {
		return "", err
	}
	if s.From == s.To {
		return a + "[" + strconv.Itoa(s.From) + "]", nil
	}
	return a + "[" + strconv.Itoa(s.From) + ":" + strconv.Itoa(s.To) + "]", nil
}
