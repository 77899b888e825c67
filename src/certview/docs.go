// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package certview exposes read-only views over the parts of an [X.509] certificate
// that the metadata extractors consume: distinguished names with their raw attribute
// values, validity times with their original ASN.1 encoding, and the serial number
// magnitude.
//
// The standard library decodes these fields into Go values and drops the wire
// form (a [pkix.Name] holds strings, a [time.Time] has no UTCTime/GeneralizedTime
// tag). The views here are read back from the certificate's raw DER with [cryptobyte]
// so that bytes are reported verbatim. Views alias the certificate memory and must
// be treated as read-only.
//
// [X.509]: https://grokipedia.com/page/X.509
// [cryptobyte]: https://pkg.go.dev/golang.org/x/crypto/cryptobyte
package certview
