// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs turns the inputs accepted by the metadata tools into parsed
// [X.509] certificates. It understands [PEM] bundles, raw DER (single or
// concatenated), [PKCS7] certificate bags in either encoding, and base64 text as
// pasted into an MCP tool call.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
