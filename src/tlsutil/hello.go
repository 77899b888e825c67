// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsutil

import (
	"crypto/tls"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/chunk"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/helper/gc"
)

// CipherListBin writes the cipher suites offered in hello to out as big-endian
// two-byte codepoints, GREASE values excluded.
//
// Returns:
//   - Found with the written length when the whole list fit (possibly 0 bytes
//     when the client offered only GREASE values).
//   - TooSmall when out filled up; out keeps the prefix that fit.
//   - NotFound when hello is nil or offered no cipher suites; out is emptied.
func CipherListBin(hello *tls.ClientHelloInfo, out *chunk.Buffer) chunk.Result {
	if hello == nil {
		return listBin[uint16](nil, out)
	}
	return listBin(hello.CipherSuites, out)
}

// ExtensionListBin is [CipherListBin] for the extension types of hello, in the
// order the client sent them.
func ExtensionListBin(hello *tls.ClientHelloInfo, out *chunk.Buffer) chunk.Result {
	if hello == nil {
		return listBin[uint16](nil, out)
	}
	return listBin(hello.Extensions, out)
}

// CurveListBin is [CipherListBin] for the supported groups of hello.
func CurveListBin(hello *tls.ClientHelloInfo, out *chunk.Buffer) chunk.Result {
	if hello == nil {
		return listBin[tls.CurveID](nil, out)
	}
	return listBin(hello.SupportedCurves, out)
}

// SignatureSchemeListBin is [CipherListBin] for the signature algorithms of hello.
func SignatureSchemeListBin(hello *tls.ClientHelloInfo, out *chunk.Buffer) chunk.Result {
	if hello == nil {
		return listBin[tls.SignatureScheme](nil, out)
	}
	return listBin(hello.SignatureSchemes, out)
}

func listBin[T ~uint16](values []T, out *chunk.Buffer) chunk.Result {
	out.Reset()
	if len(values) == 0 {
		return chunk.NotFound()
	}

	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	for _, v := range values {
		buf.WriteByte(byte(v >> 8))
		buf.WriteByte(byte(v))
	}

	n, complete := excludeGREASE(buf.Bytes(), out)
	if !complete {
		return chunk.TooSmall()
	}
	return chunk.Found(n)
}
