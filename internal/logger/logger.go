// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logger builds the structured loggers used by the commands.
//
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Config is the logger configuration.
//
type Config struct {
	Level      string `yaml:"level"`
	Type       string `yaml:"type"`
	AddSource  bool   `yaml:"add_source"`
	SourcePath string `yaml:"source_path"`
}

// Default sets the default configuration.
//
func (c *Config) Default() {
	*c = Config{
		Level: "info",
		Type:  "text",
	}
}

// New returns a new logger writing to w.
//
func New(w io.Writer, conf Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       level(conf.Level),
		ReplaceAttr: replaceAttr(conf.SourcePath),
	}
	if strings.ToLower(conf.Type) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func level(l string) slog.Level {
	switch strings.ToLower(l) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// replaceAttr trims prefix from source file names.
func replaceAttr(prefix string) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		if a.Key != slog.SourceKey {
			return a
		}
		src, ok := a.Value.Any().(*slog.Source)
		if !ok || src == nil {
			return a
		}
		file := src.File
		if prefix != "" {
			if i := strings.Index(file, prefix); i >= 0 {
				file = file[i+len(prefix):]
			}
		}
		return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", file, src.Line))
	}
}
