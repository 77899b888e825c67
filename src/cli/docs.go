// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the TLS certificate metadata tools.
// It implements a Cobra-based CLI that reads a certificate from a file, stdin or a live
// TLS endpoint, runs every bounded extractor over it and renders the fields as text,
// JSON or a markdown table. Two helper commands expose the OpenSSL version parser and
// the GREASE filter. Diagnostics go through the logger package; the report itself is
// written to the command's output.
package cli
