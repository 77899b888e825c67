// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package sslutils extracts certificate metadata into caller-owned, fixed-capacity
// [chunk.Buffer] values for logging, access control and header injection.
//
// Every extractor returns a [chunk.Result]:
//   - found: the value was copied in full and the buffer length is its size.
//   - not found: the value is absent or the filter matched nothing.
//   - too small: the value does not fit; the buffer holds none of it.
//
// The exceptions are spelled out on [DNOneline], which can leave a prefix of
// complete entries behind, and [DNFormatted], which truncates at capacity.
//
// Extractors are stateless, never retain the buffer, and only read the certificate,
// so a certificate may be shared between goroutines while each goroutine uses its
// own buffer.
package sslutils
