// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslutils

import (
	"crypto/x509"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/certview"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/chunk"
)

// Serial writes the serial number magnitude, big-endian and without the DER sign
// padding, as returned by [certview.SerialBytes].
func Serial(cert *x509.Certificate, out *chunk.Buffer) chunk.Result {
	serial, err := certview.SerialBytes(cert)
	if err != nil {
		return notFound(out)
	}
	if len(serial) > out.Size() {
		return chunk.TooSmall()
	}

	out.Set(serial)
	return chunk.Found(len(serial))
}

// DERLen returns the size of the DER encoding of cert, or 0 when it has none.
func DERLen(cert *x509.Certificate) int {
	if cert == nil {
		return 0
	}
	return len(cert.Raw)
}

// DER writes the DER encoding of cert. A certificate without an encoding is
// reported as not found.
func DER(cert *x509.Certificate, out *chunk.Buffer) chunk.Result {
	n := DERLen(cert)
	if n <= 0 {
		return notFound(out)
	}
	if n > out.Size() {
		return chunk.TooSmall()
	}

	out.Set(cert.Raw)
	return chunk.Found(n)
}

// Time writes a validity time as text.
//
// A GeneralizedTime must be at least 12 bytes and start with "20"; the century is
// stripped so the output has the same shape as a UTCTime. A UTCTime must be at
// least 10 bytes with a year below 50, and is copied verbatim. Anything else,
// including 19xx dates, is not found rather than reinterpreted.
func Time(t certview.Time, out *chunk.Buffer) chunk.Result {
	switch t.Kind {
	case certview.GeneralizedTime:
		if len(t.Raw) < 12 || t.Raw[0] != '2' || t.Raw[1] != '0' {
			return notFound(out)
		}
		if out.Size() < len(t.Raw)-2 {
			return chunk.TooSmall()
		}
		out.Set(t.Raw[2:])
		return chunk.Found(len(t.Raw) - 2)

	case certview.UTCTime:
		if len(t.Raw) < 10 || t.Raw[0] >= '5' {
			return notFound(out)
		}
		if out.Size() < len(t.Raw) {
			return chunk.TooSmall()
		}
		out.Set(t.Raw)
		return chunk.Found(len(t.Raw))
	}

	return notFound(out)
}

// NotBefore writes the start of the validity period of cert, see [Time].
func NotBefore(cert *x509.Certificate, out *chunk.Buffer) chunk.Result {
	t, err := certview.NotBefore(cert)
	if err != nil {
		return notFound(out)
	}
	return Time(t, out)
}

// NotAfter writes the end of the validity period of cert, see [Time].
func NotAfter(cert *x509.Certificate, out *chunk.Buffer) chunk.Result {
	t, err := certview.NotAfter(cert)
	if err != nil {
		return notFound(out)
	}
	return Time(t, out)
}
