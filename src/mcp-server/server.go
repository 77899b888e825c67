// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/config"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/logger"
)

// Options configures [Run].
type Options struct {
	// Version announced to clients.
	Version string
	// ConfigPath names a JSON or YAML config file. When empty,
	// $TLS_CERT_METADATA_CONFIG is consulted, then the defaults.
	ConfigPath string
	// Stdin and Stdout carry the protocol messages.
	Stdin  io.Reader
	Stdout io.Writer
	// Logger receives diagnostics. It must not write to Stdout.
	Logger logger.Logger
}

// Run starts the MCP server over stdio and blocks until the client closes
// the input or ctx is cancelled.
//
// Server Lifecycle:
//  1. Load configuration from the given path or the environment
//  2. Build the MCP server using the ServerBuilder pattern
//  3. Serve stdio until either the transport ends or ctx is done
//
// Error Handling:
//   - Configuration errors: Wrapped with "failed to load config" prefix
//   - Server build errors: Wrapped with "failed to build server" prefix
//   - Shutdown errors: Wrapped with "server shutdown" prefix, wrapping ctx.Err()
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s, err := newServer(opts.Version, cfg, opts.Logger)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	stdioServer := server.NewStdioServer(s)
	if opts.Logger != nil {
		opts.Logger.Printf("serving %s %s on stdio", serverName, opts.Version)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, opts.Stdin, opts.Stdout)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}

// newServer assembles the MCP server with every tool and resource.
func newServer(version string, cfg *config.Config, log logger.Logger) (*server.MCPServer, error) {
	tools, toolsWithConfig := createTools()

	instructions, err := loadInstructions(tools, toolsWithConfig)
	if err != nil {
		return nil, err
	}

	return NewServerBuilder().
		WithConfig(cfg).
		WithVersion(version).
		WithLogger(log).
		WithTools(tools...).
		WithToolsWithConfig(toolsWithConfig...).
		WithResources(createResources(version, cfg)...).
		WithInstructions(instructions).
		Build()
}
