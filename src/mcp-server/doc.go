// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the certificate metadata tools over the Model
// Context Protocol ([MCP]).
//
// The server speaks MCP on stdio and offers these tools:
//   - extract_cert_metadata: bounded-buffer metadata of a local [X509] certificate
//   - fetch_remote_metadata: the same for the certificate a TLS server presents
//   - parse_openssl_version: OpenSSL version string to OPENSSL_VERSION_NUMBER
//   - exclude_tls_grease: GREASE filtering of a hex encoded codepoint list
//   - get_resource_usage: runtime and extraction statistics
//
// Resources describe the server version, the report fields, and the
// configuration schema together with the configuration in effect.
//
// Servers are assembled with [ServerBuilder]; [Run] wires the default tools and
// resources and serves them until the client disconnects or the context ends.
//
// [X509]: https://grokipedia.com/page/X.509
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
