// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/report"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/tlsutil"
)

// createTools creates and returns all MCP tool definitions with their handlers.
//
// Returns:
//   - A slice of ToolDefinition for tools without config dependencies
//   - A slice of ToolDefinitionWithConfig for tools that read the server configuration
//
// The function defines the following tools:
//   - parse_openssl_version: Packs an OpenSSL version string into its numeric form
//   - exclude_tls_grease: Strips GREASE values from a hex encoded codepoint list
//   - get_resource_usage: Reports runtime statistics and extraction counters
//   - extract_cert_metadata: Extracts metadata fields from a local certificate
//   - fetch_remote_metadata: Extracts metadata fields from a server's certificate
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	fieldList := strings.Join(report.FieldNames(), ", ")

	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("parse_openssl_version",
				mcp.WithDescription("Convert an OpenSSL version string such as 1.1.1w or 3.0.0-beta2 into its OPENSSL_VERSION_NUMBER value"),
				mcp.WithString("version",
					mcp.Required(),
					mcp.Description("OpenSSL version string"),
				),
			),
			Handler: handleParseOpenSSLVersion,
			Role:    "versionParser",
		},
		{
			Tool: mcp.NewTool("exclude_tls_grease",
				mcp.WithDescription("Remove RFC 8701 GREASE values from a hex encoded list of 16-bit TLS codepoints"),
				mcp.WithString("hex",
					mcp.Required(),
					mcp.Description("Hex encoded codepoint list, colons and whitespace are ignored"),
				),
			),
			Handler: handleExcludeGREASE,
			Role:    "greaseFilter",
		},
		{
			Tool: mcp.NewTool("get_resource_usage",
				mcp.WithDescription("Get runtime resource usage and extraction statistics of the server"),
				mcp.WithBoolean("detailed",
					mcp.Description("Include extraction counters (default: false)"),
					mcp.DefaultBool(false),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'json' or 'markdown' (default: json)"),
					mcp.DefaultString("json"),
					mcp.Enum("json", "markdown"),
				),
			),
			Handler: handleGetResourceUsage,
			Role:    "resourceMonitor",
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("extract_cert_metadata",
				mcp.WithDescription("Extract metadata fields from a X509 certificate using a bounded output buffer"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path, PEM text, or base64-encoded DER"),
				),
				mcp.WithNumber("buffer_size",
					mcp.Description("Per-field buffer capacity in bytes (default: from server configuration)"),
				),
				mcp.WithString("dn_format",
					mcp.Description("Distinguished name format: 'rfc2253' or 'oneline' (default: from server configuration)"),
					mcp.Enum(report.DNFormatRFC2253, report.DNFormatOneline),
				),
				mcp.WithString("fields",
					mcp.Description("Comma-separated subset of fields to report ("+fieldList+")"),
				),
				mcp.WithBoolean("chain",
					mcp.Description("Report every certificate of the input instead of only the first (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleExtractCertMetadata,
			Role:    "extractor",
		},
		{
			Tool: mcp.NewTool("fetch_remote_metadata",
				mcp.WithDescription("Connect to a TLS server and extract metadata fields from the certificate it presents"),
				mcp.WithString("hostname",
					mcp.Required(),
					mcp.Description("Hostname or IP address to connect to"),
				),
				mcp.WithNumber("port",
					mcp.Description("Port number (default: 443)"),
					mcp.DefaultNumber(tlsutil.DefaultPort),
				),
				mcp.WithNumber("buffer_size",
					mcp.Description("Per-field buffer capacity in bytes (default: from server configuration)"),
				),
				mcp.WithString("dn_format",
					mcp.Description("Distinguished name format: 'rfc2253' or 'oneline' (default: from server configuration)"),
					mcp.Enum(report.DNFormatRFC2253, report.DNFormatOneline),
				),
				mcp.WithString("fields",
					mcp.Description("Comma-separated subset of fields to report ("+fieldList+")"),
				),
				mcp.WithBoolean("chain",
					mcp.Description("Report every certificate the server presented instead of only the leaf (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleFetchRemoteMetadata,
			Role:    "remoteExtractor",
		},
	}

	return tools, toolsWithConfig
}
