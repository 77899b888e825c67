// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// ExecutableName returns the name the program was invoked as, without
// directory or ".exe" suffix, for use in CLI usage strings. It returns
// fallback when os.Args[0] is unavailable.
//
//   - Linux/macOS: "tls-cert-metadata" from "/usr/local/bin/tls-cert-metadata"
//   - Windows: "tls-cert-metadata" from "C:\bin\tls-cert-metadata.exe"
func ExecutableName(fallback string) string {
	if len(os.Args) == 0 {
		return fallback
	}
	if name := baseName(os.Args[0]); name != "" {
		return name
	}
	return fallback
}

// baseName strips every leading path component of arg0, splitting on both
// separators so a Windows path is handled on Unix and vice versa.
func baseName(arg0 string) string {
	if i := strings.LastIndexAny(arg0, `/\`); i >= 0 {
		arg0 = arg0[i+1:]
	}
	return strings.TrimSuffix(arg0, ".exe")
}
