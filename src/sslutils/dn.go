// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslutils

import (
	"strings"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/certview"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/chunk"
)

// FormatRFC2253 is the only format name accepted by [DNFormatted].
const FormatRFC2253 = "rfc2253"

// DNEntry writes the raw value of one attribute of name.
//
// attr is matched case-insensitively against each entry's short name (or dotted
// OID when the type has no short name). A non-negative pos selects the pos-th match
// counting from the first entry, starting at 0. A negative pos counts from the last
// entry, -1 being the last match.
//
// The buffer is emptied before the search, so it is also empty after a too-small
// result.
//
// Parameters:
//   - name: Distinguished name to search
//   - attr: Attribute short name, e.g. "CN" or "emailAddress"
//   - pos: Occurrence index, see above
//   - out: Destination buffer
//
// Returns:
//   - chunk.Result: found with the value length, not found, or too small
func DNEntry(name *certview.Name, attr string, pos int, out *chunk.Buffer) chunk.Result {
	out.Reset()
	if name == nil {
		return chunk.NotFound()
	}

	count := name.Len()
	cur := 0
	for i := range count {
		j := i
		if pos < 0 {
			j = count - 1 - i
		}

		e := name.Entry(j)
		if !strings.EqualFold(e.ShortName(), attr) {
			continue
		}

		if pos >= 0 {
			if cur != pos {
				cur++
				continue
			}
		} else {
			cur--
			if cur != pos {
				continue
			}
		}

		if len(e.Value) > out.Size() {
			return chunk.TooSmall()
		}
		out.Set(e.Value)
		return chunk.Found(len(e.Value))
	}

	return chunk.NotFound()
}

// DNFormatted writes name as RFC 2253 text using [pkix.RDNSequence.String], so the
// last RDN comes first. Only [FormatRFC2253] is recognized; any other format is
// not found.
//
// The text is copied into out up to its capacity. A text longer than the capacity is truncated and still reported as
// found, with the truncated length.
//
// [pkix.RDNSequence.String]: https://pkg.go.dev/crypto/x509/pkix#RDNSequence.String
func DNFormatted(name *certview.Name, format string, out *chunk.Buffer) chunk.Result {
	if name == nil || format != FormatRFC2253 {
		return notFound(out)
	}

	seq, err := name.RDNSequence()
	if err != nil {
		return notFound(out)
	}

	n := copy(out.Area(), seq.String())
	if n <= 0 {
		return notFound(out)
	}
	out.SetLen(n)
	return chunk.Found(n)
}

// DNOneline writes name in the legacy "/CN=a/O=b" form, in encoding order.
//
// Entries are appended one at a time. When the next entry does not fit, the
// result is too small and the buffer keeps the entries already written, so
// its length always ends on an entry boundary. An empty name is not found.
func DNOneline(name *certview.Name, out *chunk.Buffer) chunk.Result {
	out.Reset()
	if name == nil {
		return chunk.NotFound()
	}

	for _, e := range name.Entries() {
		sn := e.ShortName()
		if 1+len(sn)+1+len(e.Value) > out.Room() {
			return chunk.TooSmall()
		}
		out.AppendByte('/')
		out.AppendString(sn)
		out.AppendByte('=')
		out.Append(e.Value)
	}

	if out.Len() == 0 {
		return chunk.NotFound()
	}
	return chunk.Found(out.Len())
}
