// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/rtlgen/internal/logger"
	"github.com/db47h/rtlgen/rtltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var conf Config
	conf.Default()
	var out, logs bytes.Buffer
	conf.Log.Level = "debug"

	err := run(&out, conf, logger.New(&logs, conf.Log))
	if err != nil {
		rtltest.Trace(t, err)
		t.Fatal(err)
	}
	rtltest.CompareLines(t, strings.Join([]string{
		"assign next = rst == 1 ? 8'b00000000 : load == 1 ? data : en == 1 ? count + 1 : count;",
		"assign out = count;",
		"assign zero = count == 0;",
		"assign swapped = {count[3:0], count[7:4]};",
		"assign top = count == 8'b11111111;",
		"assign lsb = (count ^ data)[0];",
		"",
	}, "\n"), out.String())
	assert.Equal(t, 6, strings.Count(logs.String(), "rendered assignment"))
}

func TestRun_width(t *testing.T) {
	var conf Config
	conf.Default()
	conf.Width = 4
	var out bytes.Buffer
	require.NoError(t, run(&out, conf, logger.New(io.Discard, conf.Log)))
	assert.Contains(t, out.String(), "assign swapped = {count[1:0], count[3:2]};\n")
	assert.Contains(t, out.String(), "assign top = count == 4'b1111;\n")

	for _, w := range []int{0, 3, 34} {
		conf.Width = w
		assert.Error(t, run(io.Discard, conf, logger.New(io.Discard, conf.Log)), "width %d", w)
	}
}

func TestLoadConfig(t *testing.T) {
	c, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 8, c.Width)
	assert.Equal(t, "counter", c.Module)
	assert.Equal(t, "info", c.Log.Level)

	name := filepath.Join(t.TempDir(), "rtldemo.yaml")
	require.NoError(t, os.WriteFile(name, []byte("module: ctr16\nwidth: 16\nlog:\n  type: json\n"), 0644))
	c, err = loadConfig(name)
	require.NoError(t, err)
	assert.Equal(t, "ctr16", c.Module)
	assert.Equal(t, 16, c.Width)
	assert.Equal(t, "json", c.Log.Type)
	assert.Equal(t, "info", c.Log.Level)

	require.NoError(t, os.WriteFile(name, []byte("width: [1"), 0644))
	_, err = loadConfig(name)
	assert.Error(t, err)
	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
