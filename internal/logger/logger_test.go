// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		conf    Config
		debug   bool
		isJSON  bool
		message string
	}{
		{"text info", Config{Level: "info", Type: "text"}, false, false, "hello"},
		{"json debug", Config{Level: "DEBUG", Type: "json"}, true, true, "hello"},
		{"unknown type", Config{Level: "warn", Type: "xml"}, false, false, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, tt.conf)
			require.NotNil(t, log)
			assert.Equal(t, tt.debug, log.Enabled(context.Background(), slog.LevelDebug))

			log.Error(tt.message, "k", 1)
			out := buf.String()
			if tt.isJSON {
				var m map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(out), &m))
				assert.Equal(t, tt.message, m["msg"])
			} else {
				assert.Contains(t, out, "msg="+tt.message)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	for s, l := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"Info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"bogus": slog.LevelInfo,
	} {
		assert.Equal(t, l, level(s), s)
	}
}

func TestSourcePath(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{Level: "info", AddSource: true, SourcePath: "internal/"})
	log.Info("x")
	out := buf.String()
	assert.Contains(t, out, "source=logger/logger_test.go:")
	assert.False(t, strings.Contains(out, "internal/logger"), out)
}

func TestDefault(t *testing.T) {
	c := Config{Level: "debug", AddSource: true}
	c.Default()
	assert.Equal(t, Config{Level: "info", Type: "text"}, c)
}
