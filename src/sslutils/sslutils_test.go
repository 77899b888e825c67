// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sslutils_test

import (
	"crypto/dsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/certview"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/chunk"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/testcert"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/sslutils"
)

// prefilled returns a buffer of the given capacity already holding marker, so
// tests can tell whether a call touched it.
func prefilled(t *testing.T, size int, marker string) *chunk.Buffer {
	t.Helper()
	b := chunk.New(size)
	require.True(t, b.Set([]byte(marker)))
	return b
}

func TestPublicKeyAlgo(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	_, edKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	ecCert := testcert.New(t, "ec")
	rsaCert := testcert.Issue(t, testcert.Template("rsa"), rsaKey)
	edCert := testcert.Issue(t, testcert.Template("ed25519"), edKey)
	dsaCert := &x509.Certificate{PublicKey: &dsa.PublicKey{
		Parameters: dsa.Parameters{P: new(big.Int).Lsh(big.NewInt(1), 1023)},
	}}

	tests := []struct {
		name   string
		cert   *x509.Certificate
		size   int
		status chunk.Status
		want   string
	}{
		{name: "EC", cert: ecCert, size: 16, status: chunk.StatusFound, want: "EC256"},
		{name: "RSA", cert: rsaCert, size: 16, status: chunk.StatusFound, want: "RSA2048"},
		{name: "DSA", cert: dsaCert, size: 16, status: chunk.StatusFound, want: "DSA1024"},
		{name: "Exact fit", cert: ecCert, size: 5, status: chunk.StatusFound, want: "EC256"},
		{name: "Unsupported key", cert: edCert, size: 16, status: chunk.StatusNotFound, want: ""},
		{name: "Nil certificate", cert: nil, size: 16, status: chunk.StatusNotFound, want: ""},
		{name: "Nil RSA key", cert: &x509.Certificate{PublicKey: (*rsa.PublicKey)(nil)}, size: 16, status: chunk.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := chunk.New(tt.size)
			res := sslutils.PublicKeyAlgo(tt.cert, out)
			assert.Equal(t, tt.status, res.Status())
			assert.Equal(t, tt.want, out.String())
			if res.Found() {
				assert.Equal(t, len(tt.want), res.Len())
			}
		})
	}

	t.Run("Too small leaves buffer alone", func(t *testing.T) {
		out := prefilled(t, 4, "keep")
		res := sslutils.PublicKeyAlgo(ecCert, out)
		assert.True(t, res.TooSmall())
		assert.Equal(t, "keep", out.String())
	})
}

func TestSerial(t *testing.T) {
	tmpl := testcert.Template("serial")
	tmpl.SerialNumber = new(big.Int).SetBytes([]byte{0x8b, 0x27, 0x0e, 0x1e, 0xc0})
	cert := testcert.Issue(t, tmpl, testcert.ECKey(t))
	want := []byte{0x8b, 0x27, 0x0e, 0x1e, 0xc0}

	t.Run("Found", func(t *testing.T) {
		for size := len(want); size <= len(want)+4; size++ {
			out := chunk.New(size)
			res := sslutils.Serial(cert, out)
			require.True(t, res.Found(), "capacity %d", size)
			assert.Equal(t, len(want), res.Len())
			assert.Equal(t, want, out.Bytes())
		}
	})

	t.Run("Too small leaves buffer alone", func(t *testing.T) {
		for size := 0; size < len(want); size++ {
			out := chunk.New(size)
			out.SetLen(size)
			res := sslutils.Serial(cert, out)
			assert.True(t, res.TooSmall(), "capacity %d", size)
			assert.Equal(t, size, out.Len())
		}
	})

	t.Run("Capacity equal to magnitude", func(t *testing.T) {
		tmpl := testcert.Template("serial")
		tmpl.SerialNumber = big.NewInt(0x8b27)
		cert := testcert.Issue(t, tmpl, testcert.ECKey(t))

		out := chunk.New(2)
		res := sslutils.Serial(cert, out)
		require.True(t, res.Found())
		assert.Equal(t, 2, res.Len())
		assert.Equal(t, []byte{0x8b, 0x27}, out.Bytes())

		wide := chunk.New(8)
		res = sslutils.Serial(cert, wide)
		require.True(t, res.Found())
		assert.Equal(t, []byte{0x8b, 0x27}, wide.Bytes())
	})

	t.Run("No serial", func(t *testing.T) {
		out := prefilled(t, 8, "old")
		res := sslutils.Serial(&x509.Certificate{}, out)
		assert.True(t, res.NotFound())
		assert.Equal(t, 0, out.Len())
	})
}

func TestDER(t *testing.T) {
	cert := testcert.New(t, "der")

	t.Run("Length matches pre-flight size", func(t *testing.T) {
		out := chunk.New(4096)
		res := sslutils.DER(cert, out)
		require.True(t, res.Found())
		assert.Equal(t, sslutils.DERLen(cert), res.Len())
		assert.Equal(t, cert.Raw, out.Bytes())

		parsed, err := x509.ParseCertificate(out.Bytes())
		require.NoError(t, err)
		assert.True(t, cert.Equal(parsed))
	})

	t.Run("Too small", func(t *testing.T) {
		out := prefilled(t, sslutils.DERLen(cert)-1, "keep")
		res := sslutils.DER(cert, out)
		assert.True(t, res.TooSmall())
		assert.Equal(t, "keep", out.String())
	})

	t.Run("No encoding", func(t *testing.T) {
		out := chunk.New(16)
		assert.True(t, sslutils.DER(&x509.Certificate{}, out).NotFound())
		assert.True(t, sslutils.DER(nil, out).NotFound())
		assert.Equal(t, 0, sslutils.DERLen(nil))
	})
}

func TestTime(t *testing.T) {
	gen := func(s string) certview.Time { return certview.Time{Kind: certview.GeneralizedTime, Raw: []byte(s)} }
	utc := func(s string) certview.Time { return certview.Time{Kind: certview.UTCTime, Raw: []byte(s)} }

	tests := []struct {
		name   string
		in     certview.Time
		size   int
		status chunk.Status
		want   string
	}{
		{name: "GeneralizedTime strips century", in: gen("20510102030405Z"), size: 32, status: chunk.StatusFound, want: "510102030405Z"},
		{name: "GeneralizedTime exact fit", in: gen("20510102030405Z"), size: 13, status: chunk.StatusFound, want: "510102030405Z"},
		{name: "GeneralizedTime too small", in: gen("20510102030405Z"), size: 12, status: chunk.StatusTooSmall},
		{name: "GeneralizedTime too short", in: gen("20510102030"), size: 32, status: chunk.StatusNotFound},
		{name: "GeneralizedTime 19xx rejected", in: gen("19991231235959Z"), size: 32, status: chunk.StatusNotFound},
		{name: "GeneralizedTime 21xx rejected", in: gen("21000101000000Z"), size: 32, status: chunk.StatusNotFound},
		{name: "UTCTime verbatim", in: utc("240301123045Z"), size: 32, status: chunk.StatusFound, want: "240301123045Z"},
		{name: "UTCTime minimum length", in: utc("2403011230"), size: 10, status: chunk.StatusFound, want: "2403011230"},
		{name: "UTCTime too small", in: utc("240301123045Z"), size: 12, status: chunk.StatusTooSmall},
		{name: "UTCTime too short", in: utc("240301123"), size: 32, status: chunk.StatusNotFound},
		{name: "UTCTime 19xx rejected", in: utc("500101000000Z"), size: 32, status: chunk.StatusNotFound},
		{name: "Unknown kind", in: certview.Time{Raw: []byte("240301123045Z")}, size: 32, status: chunk.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := prefilled(t, tt.size, "")
			res := sslutils.Time(tt.in, out)
			assert.Equal(t, tt.status, res.Status())
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestValidity(t *testing.T) {
	tmpl := testcert.Template("validity")
	tmpl.NotBefore = time.Date(2025, time.November, 24, 8, 41, 5, 0, time.UTC)
	tmpl.NotAfter = time.Date(2050, time.February, 16, 8, 41, 4, 0, time.UTC)
	cert := testcert.Issue(t, tmpl, testcert.ECKey(t))

	out := chunk.New(32)
	res := sslutils.NotBefore(cert, out)
	require.True(t, res.Found())
	assert.Equal(t, "251124084105Z", out.String())

	res = sslutils.NotAfter(cert, out)
	require.True(t, res.Found())
	assert.Equal(t, "500216084104Z", out.String(), "GeneralizedTime loses its century")

	assert.True(t, sslutils.NotBefore(nil, out).NotFound())
	assert.True(t, sslutils.NotAfter(nil, out).NotFound())
}

// sampleName is the DN [(CN,"a"),(O,"b"),(CN,"c")].
func sampleName() *certview.Name {
	return certview.NewName(
		certview.NewEntry(certview.OIDCommonName, "a"),
		certview.NewEntry(certview.OIDOrganization, "b"),
		certview.NewEntry(certview.OIDCommonName, "c"),
	)
}

func TestDNEntry(t *testing.T) {
	name := sampleName()

	tests := []struct {
		name   string
		attr   string
		pos    int
		status chunk.Status
		want   string
	}{
		{name: "First match", attr: "CN", pos: 0, status: chunk.StatusFound, want: "a"},
		{name: "Second match", attr: "CN", pos: 1, status: chunk.StatusFound, want: "c"},
		{name: "Last match", attr: "CN", pos: -1, status: chunk.StatusFound, want: "c"},
		{name: "Second from end", attr: "CN", pos: -2, status: chunk.StatusFound, want: "a"},
		{name: "Past the end", attr: "CN", pos: 2, status: chunk.StatusNotFound},
		{name: "Past the start", attr: "CN", pos: -3, status: chunk.StatusNotFound},
		{name: "Case insensitive", attr: "cn", pos: -1, status: chunk.StatusFound, want: "c"},
		{name: "Other attribute", attr: "o", pos: 0, status: chunk.StatusFound, want: "b"},
		{name: "Unknown attribute", attr: "OU", pos: 0, status: chunk.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := prefilled(t, 8, "stale")
			res := sslutils.DNEntry(name, tt.attr, tt.pos, out)
			assert.Equal(t, tt.status, res.Status())
			assert.Equal(t, tt.want, out.String())
		})
	}

	t.Run("Too small empties buffer", func(t *testing.T) {
		out := prefilled(t, 0, "")
		res := sslutils.DNEntry(name, "CN", 0, out)
		assert.True(t, res.TooSmall())
		assert.Equal(t, 0, out.Len())
	})

	t.Run("Dotted OID filter", func(t *testing.T) {
		odd := certview.NewName(certview.NewEntry([]int{1, 2, 3, 4}, "x"))
		out := chunk.New(8)
		res := sslutils.DNEntry(odd, "1.2.3.4", 0, out)
		assert.True(t, res.Found())
		assert.Equal(t, "x", out.String())
	})

	t.Run("Nil name", func(t *testing.T) {
		assert.True(t, sslutils.DNEntry(nil, "CN", 0, chunk.New(8)).NotFound())
	})
}

func TestDNOneline(t *testing.T) {
	t.Run("Whole name", func(t *testing.T) {
		out := chunk.New(64)
		res := sslutils.DNOneline(sampleName(), out)
		require.True(t, res.Found())
		assert.Equal(t, "/CN=a/O=b/CN=c", out.String())
		assert.Equal(t, 14, res.Len())
	})

	t.Run("Exact fit", func(t *testing.T) {
		out := chunk.New(14)
		assert.True(t, sslutils.DNOneline(sampleName(), out).Found())
		assert.Equal(t, "/CN=a/O=b/CN=c", out.String())
	})

	t.Run("Too small keeps complete entries", func(t *testing.T) {
		for size := 0; size < 14; size++ {
			out := chunk.New(size)
			res := sslutils.DNOneline(sampleName(), out)
			require.True(t, res.TooSmall(), "capacity %d", size)

			switch {
			case size < 5:
				assert.Equal(t, "", out.String())
			case size < 9:
				assert.Equal(t, "/CN=a", out.String())
			default:
				assert.Equal(t, "/CN=a/O=b", out.String())
			}
		}
	})

	t.Run("Empty name", func(t *testing.T) {
		out := prefilled(t, 8, "stale")
		assert.True(t, sslutils.DNOneline(certview.NewName(), out).NotFound())
		assert.Equal(t, 0, out.Len())
		assert.True(t, sslutils.DNOneline(nil, out).NotFound())
	})
}

func TestDNFormatted(t *testing.T) {
	t.Run("RFC2253 reverses RDN order", func(t *testing.T) {
		out := chunk.New(64)
		res := sslutils.DNFormatted(sampleName(), sslutils.FormatRFC2253, out)
		require.True(t, res.Found())
		assert.Equal(t, "CN=c,O=b,CN=a", out.String())
	})

	t.Run("Certificate subject", func(t *testing.T) {
		cert := testcert.New(t, "www.example.com")
		name, err := certview.Subject(cert)
		require.NoError(t, err)

		out := chunk.New(64)
		require.True(t, sslutils.DNFormatted(name, "rfc2253", out).Found())
		assert.Equal(t, cert.Subject.String(), out.String())
	})

	t.Run("Special characters are escaped", func(t *testing.T) {
		name := certview.NewName(certview.NewEntry(certview.OIDOrganization, "Acme, Inc."))
		out := chunk.New(64)
		require.True(t, sslutils.DNFormatted(name, "rfc2253", out).Found())
		assert.Equal(t, `O=Acme\, Inc.`, out.String())
	})

	t.Run("Unknown format", func(t *testing.T) {
		out := prefilled(t, 64, "stale")
		for _, format := range []string{"", "RFC2253", "oneline"} {
			assert.True(t, sslutils.DNFormatted(sampleName(), format, out).NotFound(), format)
			assert.Equal(t, 0, out.Len())
		}
	})

	// A text longer than the capacity is cut short and still reported as found,
	// unlike every other whole-value writer in the package.
	t.Run("Truncates at capacity", func(t *testing.T) {
		out := chunk.New(4)
		res := sslutils.DNFormatted(sampleName(), sslutils.FormatRFC2253, out)
		assert.True(t, res.Found())
		assert.Equal(t, 4, res.Len())
		assert.Equal(t, "CN=c", out.String())
	})

	t.Run("Zero capacity", func(t *testing.T) {
		assert.True(t, sslutils.DNFormatted(sampleName(), sslutils.FormatRFC2253, chunk.New(0)).NotFound())
	})

	t.Run("Empty name", func(t *testing.T) {
		assert.True(t, sslutils.DNFormatted(certview.NewName(), sslutils.FormatRFC2253, chunk.New(8)).NotFound())
		assert.True(t, sslutils.DNFormatted(nil, sslutils.FormatRFC2253, chunk.New(8)).NotFound())
	})
}
