// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package rtlgen provides the expression core of a hardware generator: an algebra
of signal-like values (signals, wires, constants, concatenations, operators,
ternaries and bit slices) and an Evaluator that renders any expression tree
as register-transfer-level source text (Verilog syntax).

Expressions are built with the constructor functions (Add, Eq, Slice, Mux, etc.)
which supply the declared width of every node:

	m := rtlgen.NewModule("counter")
	count, _ := m.Internal("count", 8)
	load, _ := m.Input("load", 1)
	ev := rtlgen.NewEvaluator(m)
	one := rtlgen.Literal(1)
	s, err := ev.Evaluate(rtlgen.Mux(rtlgen.Eq(load, one), rtlgen.MustConst(8, 0), rtlgen.Add(count, one)))
	// s == "load == 1 ? 8'b00000000 : count + 1"

Compound operands in left or base position are always parenthesized, so the
output never depends on operator precedence in the target language.

An Evaluator is not safe for concurrent reconfiguration: SetModule and
SetResolver must not be called while another goroutine renders with the same
instance. Use one Evaluator per scope, or EvaluateWith, when rendering
concurrently.

*/
package rtlgen
