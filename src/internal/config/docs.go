// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the settings shared by the command-line tool and the MCP
// server. Files are JSON or YAML, chosen by extension, and are checked against an
// embedded JSON Schema before defaults are applied.
//
// Example config.yaml:
//
//	bufferSize: 256
//	dnFormat: oneline
//	timeoutSeconds: 5
//	fields: [subject_cn, not_after]
package config
