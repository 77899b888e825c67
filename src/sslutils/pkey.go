// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslutils

import (
	"crypto/dsa"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"strconv"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/chunk"
)

// PublicKeyAlgo writes the key family and size of the certificate public key,
// e.g. "RSA2048", "EC256" or "DSA1024". Other key types are not found.
func PublicKeyAlgo(cert *x509.Certificate, out *chunk.Buffer) chunk.Result {
	if cert == nil {
		return notFound(out)
	}

	var (
		alg  string
		bits int
	)
	switch key := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		if key == nil || key.N == nil {
			return notFound(out)
		}
		alg, bits = "RSA", key.N.BitLen()
	case *ecdsa.PublicKey:
		if key == nil || key.Curve == nil {
			return notFound(out)
		}
		alg, bits = "EC", key.Curve.Params().BitSize
	case *dsa.PublicKey:
		if key == nil || key.P == nil {
			return notFound(out)
		}
		alg, bits = "DSA", key.P.BitLen()
	default:
		return notFound(out)
	}

	var tmp [24]byte
	label := strconv.AppendInt(append(tmp[:0], alg...), int64(bits), 10)
	if !out.Set(label) {
		return chunk.TooSmall()
	}
	return chunk.Found(len(label))
}

// notFound resets out and reports a missing value.
func notFound(out *chunk.Buffer) chunk.Result {
	out.Reset()
	return chunk.NotFound()
}
