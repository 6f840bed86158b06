// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package rtltest provides utility functions for testing expression rendering.
//
package rtltest

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/db47h/rtlgen"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// Names maps ports to names. Its Resolve method is a rtlgen.Resolver.
//
type Names map[rtlgen.Port]string

// Resolve implements rtlgen.Resolver.
//
func (n Names) Resolve(p rtlgen.Port) (string, error) {
	s, ok := n[p]
	if !ok {
		return "", errors.Wrapf(rtlgen.ErrUnknownPort, "no name for %T %p", p, p)
	}
	return s, nil
}

// Trace logs the stack trace of err if it has one.
//
func Trace(t testing.TB, err error) {
	t.Helper()
	type tracer interface {
		StackTrace() errors.StackTrace
	}
	st, ok := err.(tracer)
	if !ok {
		return
	}
	for _, f := range st.StackTrace() {
		t.Logf("%+v ", f)
	}
}

// Render renders v and fails the test on error.
//
func Render(t testing.TB, ev *rtlgen.Evaluator, v rtlgen.Operand) string {
	t.Helper()
	s, err := ev.Evaluate(v)
	if err != nil {
		Trace(t, err)
		t.Fatalf("render %T: %v", v, err)
	}
	return s
}

// CompareLines fails the test if got and want differ, reporting a line diff.
//
func CompareLines(t testing.TB, want, got string) {
	t.Helper()
	if diff := cmp.Diff(strings.Split(want, "\n"), strings.Split(got, "\n")); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

// RandomTree returns a random well-formed expression tree of the given maximum
// depth over the provided ports. ports must not be empty.
//
func RandomTree(r *rand.Rand, ports []rtlgen.Port, depth int) rtlgen.SignalLike {
	if depth <= 0 || r.Intn(4) == 0 {
		return leaf(r, ports)
	}
	sub := func() rtlgen.SignalLike { return RandomTree(r, ports, depth-1) }
	switch r.Intn(8) {
	case 0:
		n := 1 + r.Intn(3)
		s := make([]rtlgen.SignalLike, n)
		for i := range s {
			s[i] = sub()
		}
		return rtlgen.Cat(s...)
	case 1:
		if r.Intn(2) == 0 {
			return rtlgen.Inv(sub())
		}
		return rtlgen.LNot(sub())
	case 2:
		return rtlgen.Comparison{A: sub(), B: operand(r, sub), Op: rtlgen.ComparisonOp(r.Intn(6))}
	case 3:
		return rtlgen.Bool(rtlgen.BooleanOp(r.Intn(9)), sub(), operand(r, sub))
	case 4:
		if r.Intn(2) == 0 {
			return rtlgen.Add(sub(), operand(r, sub))
		}
		return rtlgen.Sub(sub(), operand(r, sub))
	case 5:
		cond := rtlgen.Comparison{A: sub(), B: operand(r, sub), Op: rtlgen.ComparisonOp(r.Intn(6))}
		return rtlgen.Mux(cond, operand(r, sub), operand(r, sub))
	case 6:
		a := sub()
		from := r.Intn(a.Width())
		return rtlgen.Range(a, from, r.Intn(from+1))
	}
	return leaf(r, ports)
}

func operand(r *rand.Rand, sub func() rtlgen.SignalLike) rtlgen.Operand {
	if r.Intn(3) == 0 {
		return rtlgen.Literal(r.Intn(256))
	}
	return sub()
}

func leaf(r *rand.Rand, ports []rtlgen.Port) rtlgen.SignalLike {
	if r.Intn(5) == 0 {
		w := 1 + r.Intn(8)
		return rtlgen.Constant{Value: uint64(r.Int63n(1 << uint(w))), Bits: w}
	}
	return ports[r.Intn(len(ports))]
}
