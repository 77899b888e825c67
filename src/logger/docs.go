// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two implementations: CLILogger for
// human-readable diagnostics of the command-line tool, and JSONLogger for
// structured JSON lines written next to the MCP stdio stream. Both implementations
// are thread-safe; JSONLogger renders each line in a pooled buffer.
package logger
