// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlgen

import (
	"strconv"

	"github.com/db47h/rtlgen/internal/decl"
	"github.com/pkg/errors"
)

// SignalKind is the role of a port within a module.
//
type SignalKind int

// Signal kinds.
//
const (
	KindInput SignalKind = iota
	KindInternal
	KindOutput
	KindWire
)

var kindNames = [...]string{
	KindInput:    "input",
	KindInternal: "internal",
	KindOutput:   "output",
	KindWire:     "wire",
}

func (k SignalKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "SignalKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Descriptor describes a port declared in a module.
//
type Descriptor struct {
	Kind SignalKind
	Port Port
	Name string
}

// Module holds the ports declared in a module and their names.
// It is the default naming scope of an Evaluator.
//
type Module struct {
	name  string
	ports map[Port]*Descriptor
	names map[string]Port
	order []*Descriptor
}

// NewModule returns a new empty module.
//
func NewModule(name string) *Module {
	return &Module{
		name:  name,
		ports: make(map[Port]*Descriptor),
		names: make(map[string]Port),
	}
}

// Name returns the module name.
//
func (m *Module) Name() string { return m.name }

func (m *Module) add(k SignalKind, name string, p Port) error {
	if !decl.IsIdent(name) {
		return errors.Errorf("invalid signal name %q in module %s", name, m.name)
	}
	if p.Width() < 1 {
		return errors.Wrapf(ErrInvalidWidth, "%s %s width %d", k, name, p.Width())
	}
	if _, ok := m.names[name]; ok {
		return errors.Wrapf(ErrDuplicateName, "%s in module %s", name, m.name)
	}
	if _, ok := m.ports[p]; ok {
		return errors.Errorf("port %s already declared in module %s", name, m.name)
	}
	d := &Descriptor{Kind: k, Port: p, Name: name}
	m.ports[p] = d
	m.names[name] = p
	m.order = append(m.order, d)
	return nil
}

func (m *Module) signal(k SignalKind, name string, width int) (*Signal, error) {
	s := &Signal{Bits: width}
	if err := m.add(k, name, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Input declares a new input signal.
//
func (m *Module) Input(name string, width int) (*Signal, error) {
	return m.signal(KindInput, name, width)
}

// Output declares a new output signal.
//
func (m *Module) Output(name string, width int) (*Signal, error) {
	return m.signal(KindOutput, name, width)
}

// Internal declares a new internal register.
//
func (m *Module) Internal(name string, width int) (*Signal, error) {
	return m.signal(KindInternal, name, width)
}

// Wire declares a new wire.
//
func (m *Module) Wire(name string, width int) (*Wire, error) {
	w := &Wire{Bits: width}
	if err := m.add(KindWire, name, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Declare declares all the ports described by spec. The spec syntax is a comma
// separated list of names with an optional width in brackets:
//
//	ports, err := m.Declare(KindInput, "clk, rst, data[8]")
//
// Wires are returned for KindWire, Signals otherwise. On error, no port is
// declared.
//
func (m *Module) Declare(k SignalKind, spec string) ([]Port, error) {
	if k < KindInput || k > KindWire {
		return nil, errors.Errorf("invalid signal kind %v", k)
	}
	ds, err := decl.Parse(spec)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(ds))
	for _, d := range ds {
		if _, ok := m.names[d.Name]; ok || seen[d.Name] {
			return nil, errors.Wrapf(ErrDuplicateName, "%s in module %s", d.Name, m.name)
		}
		seen[d.Name] = true
	}
	out := make([]Port, 0, len(ds))
	for _, d := range ds {
		var p Port
		if k == KindWire {
			p = &Wire{Bits: d.Width}
		} else {
			p = &Signal{Bits: d.Width}
		}
		if err := m.add(k, d.Name, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Descriptor returns the descriptor of port p.
//
func (m *Module) Descriptor(p Port) (Descriptor, error) {
	d, ok := m.ports[p]
	if !ok {
		return Descriptor{}, errors.Wrapf(ErrUnknownPort, "module %s", m.name)
	}
	return *d, nil
}

// Lookup returns the port declared with the given name.
//
func (m *Module) Lookup(name string) (Port, bool) {
	p, ok := m.names[name]
	return p, ok
}

// Descriptors returns the descriptors of all declared ports in declaration order.
//
func (m *Module) Descriptors() []Descriptor {
	ds := make([]Descriptor, len(m.order))
	for i, d := range m.order {
		ds[i] = *d
	}
	return ds
}
