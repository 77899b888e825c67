// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/config"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/logger"
)

// serverName is the implementation name announced to MCP clients.
const serverName = "TLS Certificate Metadata"

// ErrMissingConfig is returned by [ServerBuilder.Build] when config-aware tools
// are registered without a configuration.
var ErrMissingConfig = errors.New("mcpserver: tools require a configuration")

// ToolHandler defines the signature for tool handlers that matches [MCP] server expectations.
// It processes tool calls and returns results.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithConfig defines tool handlers that require access to server configuration,
// such as the extraction buffer size or the handshake timeout.
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, config *config.Config) (*mcp.CallToolResult, error)

// ToolDefinition pairs an MCP tool definition with its handler.
//
// Fields:
//   - Tool: The MCP tool definition with name, description, and parameters
//   - Handler: The function that processes calls to this tool
//   - Role: Name under which the instructions template refers to the tool
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ToolDefinitionWithConfig holds a tool definition that requires configuration access.
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
	Role    string
}

// ServerDependencies holds all dependencies needed to create the MCP server.
//
// Fields:
//   - Config: Settings handed to config-aware tools
//   - Version: Version string announced to clients
//   - Logger: Destination for tool diagnostics, nil to discard
//   - Instructions: Text sent to clients on initialization
//   - Tools: Tools without config dependencies
//   - ToolsWithConfig: Tools that receive Config on every call
//   - Resources: Static resources
type ServerDependencies struct {
	Config          *config.Config
	Version         string
	Logger          logger.Logger
	Instructions    string
	Tools           []ToolDefinition
	ToolsWithConfig []ToolDefinitionWithConfig
	Resources       []server.ServerResource
}

// ServerBuilder helps construct the MCP server with proper dependencies
// through a fluent interface.
//
// Example usage:
//
//	s, err := NewServerBuilder().
//		WithConfig(cfg).
//		WithVersion("1.0.0").
//		WithDefaultTools().
//		WithResources(createResources("1.0.0", cfg)...).
//		Build()
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration handed to config-aware tools.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithVersion sets the server version.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithLogger sets the logger used by tool handlers.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.deps.Logger = log
	return b
}

// WithInstructions sets the instructions sent to clients on initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithTools adds tools that don't require configuration.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithConfig adds tools that require configuration.
func (b *ServerBuilder) WithToolsWithConfig(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, tools...)
	return b
}

// WithResources adds static resources.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithDefaultTools adds the metadata tools returned by createTools.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	tools, toolsWithConfig := createTools()
	b.deps.Tools = append(b.deps.Tools, tools...)
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, toolsWithConfig...)
	return b
}

// Build creates the [MCP] server with all configured dependencies.
//
// Config-aware tools are wrapped so they receive the builder's configuration
// on every call. Building fails with [ErrMissingConfig] if such tools are
// present and no configuration was set.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	if len(b.deps.ToolsWithConfig) > 0 && b.deps.Config == nil {
		return nil, ErrMissingConfig
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithRecovery(),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}
	s := server.NewMCPServer(serverName, b.deps.Version, opts...)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, b.logged(tool.Tool.Name, tool.Handler))
	}

	cfg := b.deps.Config
	for _, tool := range b.deps.ToolsWithConfig {
		handler := tool.Handler
		s.AddTool(tool.Tool, b.logged(tool.Tool.Name, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handler(ctx, request, cfg)
		}))
	}

	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	return s, nil
}

// logged wraps next so that every call and every tool error is reported to
// the builder's logger.
func (b *ServerBuilder) logged(name string, next ToolHandler) ToolHandler {
	log := b.deps.Logger
	if log == nil {
		return next
	}
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log.Printf("tool %s called", name)
		result, err := next(ctx, request)
		switch {
		case err != nil:
			log.Errorf("tool %s failed: %v", name, err)
		case result != nil && result.IsError:
			log.Errorf("tool %s returned an error result", name)
		}
		return result, err
	}
}
