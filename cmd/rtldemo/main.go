// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command rtldemo renders the continuous assignments of a sample counter module.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/db47h/rtlgen"
	"github.com/db47h/rtlgen/internal/logger"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the command configuration.
type Config struct {
	Log    logger.Config `yaml:"log"`
	Module string        `yaml:"module"`
	Width  int           `yaml:"width"`
}

// Default sets the default configuration.
func (c *Config) Default() {
	c.Log.Default()
	c.Module = "counter"
	c.Width = 8
}

func loadConfig(name string) (Config, error) {
	var c Config
	c.Default()
	if name == "" {
		return c, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return c, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parse config %s", name)
	}
	return c, nil
}

type assignment struct {
	lhs rtlgen.Port
	rhs rtlgen.SignalLike
}

func counter(name string, w int) (*rtlgen.Module, []assignment, error) {
	if w < 2 || w > 32 || w%2 != 0 {
		return nil, nil, errors.Errorf("invalid counter width %d: must be even, between 2 and 32", w)
	}
	m := rtlgen.NewModule(name)
	in, err := m.Declare(rtlgen.KindInput, fmt.Sprintf("clk, rst, load, en, data[%d]", w))
	if err != nil {
		return nil, nil, err
	}
	out, err := m.Declare(rtlgen.KindOutput, fmt.Sprintf("out[%d], zero, swapped[%d], top, lsb", w, w))
	if err != nil {
		return nil, nil, err
	}
	count, err := m.Internal("count", w)
	if err != nil {
		return nil, nil, err
	}
	next, err := m.Wire("next", w)
	if err != nil {
		return nil, nil, err
	}
	rst, load, en, data := in[1], in[2], in[3], in[4]
	half := w / 2

	return m, []assignment{
		{next, rtlgen.Mux(rtlgen.Eq(rst, rtlgen.Literal(1)),
			rtlgen.MustConst(w, 0),
			rtlgen.Mux(rtlgen.Eq(load, rtlgen.Literal(1)),
				data,
				rtlgen.Mux(rtlgen.Eq(en, rtlgen.Literal(1)), rtlgen.Add(count, rtlgen.Literal(1)), count)))},
		{out[0], count},
		{out[1], rtlgen.Eq(count, rtlgen.Literal(0))},
		{out[2], rtlgen.Cat(rtlgen.Range(count, half-1, 0), rtlgen.Range(count, w-1, half))},
		{out[3], rtlgen.Eq(count, rtlgen.MustConst(w, 1<<uint(w)-1))},
		{out[4], rtlgen.Index(rtlgen.BitXor(count, data), 0)},
	}, nil
}

func run(w io.Writer, conf Config, log *slog.Logger) error {
	m, as, err := counter(conf.Module, conf.Width)
	if err != nil {
		return err
	}
	ev := rtlgen.NewEvaluator(m)
	for _, a := range as {
		d, err := m.Descriptor(a.lhs)
		if err != nil {
			return err
		}
		if err := rtlgen.Check(a.rhs); err != nil {
			return errors.Wrapf(err, "assignment to %s", d.Name)
		}
		rhs, err := ev.Evaluate(a.rhs)
		if err != nil {
			return errors.Wrapf(err, "assignment to %s", d.Name)
		}
		log.Debug("rendered assignment", "module", m.Name(), "signal", d.Name, "kind", d.Kind.String(), "width", a.rhs.Width())
		if _, err := fmt.Fprintf(w, "assign %s = %s;\n", d.Name, rhs); err != nil {
			return err
		}
	}
	log.Info("done", "module", m.Name(), "assignments", len(as))
	return nil
}

func main() {
	var (
		confFile = flag.String("config", "", "YAML configuration `file`")
		logLevel = flag.String("log-level", "", "log level (debug, info, warn, error)")
		logType  = flag.String("log-type", "", "log format (text, json)")
		width    = flag.Int("width", 0, "counter width in bits")
	)
	flag.Parse()

	conf, err := loadConfig(*confFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if *logLevel != "" {
		conf.Log.Level = *logLevel
	}
	if *logType != "" {
		conf.Log.Type = *logType
	}
	if *width != 0 {
		conf.Width = *width
	}

	log := logger.New(os.Stderr, conf.Log)
	if err := run(os.Stdout, conf, log); err != nil {
		log.Error("render failed", "error", err)
		os.Exit(1)
	}
}
