// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/helper/gc"
)

// Level names used by [JSONLogger].
const (
	LevelInfo  = "info"
	LevelError = "error"
)

// Logger defines the interface for logging operations.
//
// The command-line tool writes its report to stdout and its diagnostics through a
// Logger, so implementations must never write to stdout by default.
type Logger interface {
	// Printf formats and prints an informational message.
	Printf(format string, v ...any)
	// Println prints an informational message with a newline.
	Println(v ...any)
	// Errorf formats and prints an error message.
	Errorf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It writes plain lines to stderr, prefixing errors with "error: ".
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger writing to stderr with timestamps disabled.
func NewCLILogger() *CLILogger {
	return &CLILogger{logger: log.New(os.Stderr, "", 0)}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Errorf prints an error message prefixed with "error: ".
func (c *CLILogger) Errorf(format string, v ...any) {
	c.logger.Print("error: " + fmt.Sprintf(format, v...))
}

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.logger.SetOutput(w)
}

// JSONLogger implements Logger with one JSON object per line:
//
//	{"level":"info","message":"..."}
//
// It is used by the MCP server, whose stdout carries the protocol stream, so it
// is usually pointed at stderr or silenced.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// entry is the wire form of a JSONLogger line.
type entry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NewJSONLogger creates a new JSON logger writing to writer. A nil writer discards
// output and silent suppresses it entirely.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs an info line.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write(LevelInfo, fmt.Sprintf(format, v...))
}

// Println logs an info line. Operands are joined the way fmt.Sprintln joins them.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	msg := fmt.Sprintln(v...)
	j.write(LevelInfo, msg[:len(msg)-1])
}

// Errorf formats and logs an error line.
func (j *JSONLogger) Errorf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write(LevelError, fmt.Sprintf(format, v...))
}

// write renders the line into a pooled buffer and writes it in a single call,
// so lines from concurrent callers never interleave.
func (j *JSONLogger) write(level, msg string) {
	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	// Encode appends the trailing newline.
	if err := json.NewEncoder(buf).Encode(entry{Level: level, Message: msg}); err != nil {
		return
	}

	j.mu.Lock()
	j.writer.Write(buf.Bytes())
	j.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
