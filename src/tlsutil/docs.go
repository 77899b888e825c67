// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tlsutil holds the TLS-session side of the metadata extraction: resolving
// the peer certificate of a connection, and reading ClientHello codepoint lists
// with the [GREASE] values removed.
//
// Peer certificates are handed out as [Ref] values, a shared handle with an
// explicit reference count. A certificate stashed on a [Session] during
// verification stays alive for as long as any caller still holds a reference.
//
// [GREASE]: https://www.rfc-editor.org/rfc/rfc8701
package tlsutil
