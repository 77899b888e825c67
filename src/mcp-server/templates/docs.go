// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for the markdown
// served by the MCP server: the instructions template handed to clients on
// initialization and the reference describing each metadata field.
//
// Files are reached through the [EmbedFS] interface, with [MagicEmbed] as the
// default implementation:
//
//	import "github.com/H0llyW00dzZ/tls-cert-metadata/src/mcp-server/templates"
//
//	tmpl, err := templates.MagicEmbed.ReadFile("instructions.md")
//	if err != nil {
//		return fmt.Errorf("failed to read instructions: %w", err)
//	}
package templates
