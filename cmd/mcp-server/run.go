// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/logger"
	mcpserver "github.com/H0llyW00dzZ/tls-cert-metadata/src/mcp-server"
	verpkg "github.com/H0llyW00dzZ/tls-cert-metadata/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdout carries the protocol, so diagnostics go to stderr.
	log := logger.NewJSONLogger(os.Stderr, os.Getenv("TLS_CERT_METADATA_QUIET") != "")

	err := mcpserver.Run(ctx, mcpserver.Options{
		Version: version,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Logger:  log,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
