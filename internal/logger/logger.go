/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the CLI's leveled logger. Library packages never
// log; they emit diagnostics, which Observer turns into log lines.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lukethacoder/lwc-module-resolver/diagnostic"
)

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stderr, log.WarnLevel)
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "lwc-resolve",
		Level:  level,
	})
	l.SetStyles(styles())
	return l
}

// styles highlights the diagnostic code and specifier keys.
func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Keys["code"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	s.Keys["specifier"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	s.Values["specifier"] = lipgloss.NewStyle().Bold(true)
	return s
}

func current() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w, logger.GetLevel())
}

// SetVerbose lowers the level to debug when verbose is true, and restores
// the default warn level otherwise.
func SetVerbose(verbose bool) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	current().SetLevel(level)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	current().Debugf(format, args...)
}

// Observer returns a diagnostic.Observer that logs each diagnostic. Info
// diagnostics are logged at debug level, so they only show when verbose.
func Observer() diagnostic.Observer {
	return diagnostic.ObserverFunc(func(d diagnostic.Diagnostic) {
		level := log.DebugLevel
		if d.Severity == diagnostic.SeverityWarning {
			level = log.WarnLevel
		}

		kv := []any{"code", string(d.Code), "specifier", d.Specifier}
		if d.Path != "" {
			kv = append(kv, "path", d.Path)
		}
		current().Log(level, d.Message, kv...)
	})
}
