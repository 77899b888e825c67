// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/config"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/report"
)

// Resource URIs served by the MCP server.
const (
	uriVersion        = "info://version"
	uriMetadataFields = "docs://metadata-fields"
	uriConfigSchema   = "config://schema"
	uriConfigCurrent  = "config://current"
)

// createResources returns the static resources of the server. The
// config://current resource reports cfg, the configuration in effect.
func createResources(version string, cfg *config.Config) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(uriVersion, "Server Version",
				mcp.WithResourceDescription("Server name, version and supported report fields"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return jsonResource(request.Params.URI, map[string]any{
					"name":      serverName,
					"version":   version,
					"type":      "MCP Server",
					"fields":    report.FieldNames(),
					"dnFormats": []string{report.DNFormatRFC2253, report.DNFormatOneline},
				})
			},
		},
		{
			Resource: mcp.NewResource(uriMetadataFields, "Metadata Field Reference",
				mcp.WithResourceDescription("Format of every metadata field and distinguished name format"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleMetadataFieldsResource,
		},
		{
			Resource: mcp.NewResource(uriConfigSchema, "Configuration Schema",
				mcp.WithResourceDescription("JSON Schema of the configuration file"),
				mcp.WithMIMEType("application/schema+json"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return []mcp.ResourceContents{
					mcp.TextResourceContents{
						URI:      request.Params.URI,
						MIMEType: "application/schema+json",
						Text:     string(config.Schema()),
					},
				}, nil
			},
		},
		{
			Resource: mcp.NewResource(uriConfigCurrent, "Current Configuration",
				mcp.WithResourceDescription("Configuration the server is running with, defaults applied"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return jsonResource(request.Params.URI, cfg)
			},
		},
	}
}

// handleMetadataFieldsResource serves the embedded field reference.
func handleMetadataFieldsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile("metadata-fields.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata field reference: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", uri, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
