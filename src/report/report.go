// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"crypto/x509"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/certview"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/chunk"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/sslutils"
)

// Field names accepted in [Options.Fields].
const (
	FieldPublicKey = "pkey_algo"
	FieldSerial    = "serial"
	FieldDERLen    = "der_len"
	FieldNotBefore = "not_before"
	FieldNotAfter  = "not_after"
	FieldSubject   = "subject"
	FieldIssuer    = "issuer"
	FieldSubjectCN = "subject_cn"
	FieldIssuerCN  = "issuer_cn"
)

// DN output formats accepted in [Options.DNFormat].
const (
	DNFormatRFC2253 = sslutils.FormatRFC2253
	DNFormatOneline = "oneline"
)

// DefaultBufferSize is the per-field buffer capacity used when none is configured.
const DefaultBufferSize = 1024

var (
	// ErrUnknownField indicates a field name outside [FieldNames].
	ErrUnknownField = errors.New("report: unknown field")

	// ErrUnknownDNFormat indicates a DN format other than rfc2253 or oneline.
	ErrUnknownDNFormat = errors.New("report: unknown DN format")

	// ErrInvalidBufferSize indicates a negative buffer capacity.
	ErrInvalidBufferSize = errors.New("report: invalid buffer size")
)

// FieldNames returns every field name in report order.
func FieldNames() []string {
	return []string{
		FieldPublicKey,
		FieldSerial,
		FieldDERLen,
		FieldNotBefore,
		FieldNotAfter,
		FieldSubject,
		FieldIssuer,
		FieldSubjectCN,
		FieldIssuerCN,
	}
}

// Options controls [Extract].
type Options struct {
	// BufferSize is the capacity of the buffer each field is extracted into.
	// Zero selects DefaultBufferSize.
	BufferSize int
	// DNFormat selects how subject and issuer render: "rfc2253" (default) or "oneline".
	DNFormat string
	// Fields lists the fields to extract, in output order. Empty selects all.
	Fields []string
}

// Field is the outcome of one extractor.
type Field struct {
	Name   string
	Status chunk.Status
	// Value is the printable rendering of the extracted bytes. It is empty
	// unless Status is found.
	Value string
}

// Report is the ordered list of extracted fields of one certificate.
type Report struct {
	Fields []Field
}

// Get returns the named field.
func (r *Report) Get(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Extract runs the selected extractors over cert.
//
// Options are validated before anything is extracted. A nil certificate is not an
// error: every field is then reported as not found.
func Extract(cert *x509.Certificate, opts Options) (*Report, error) {
	if opts.BufferSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBufferSize, opts.BufferSize)
	}
	if opts.BufferSize == 0 {
		opts.BufferSize = DefaultBufferSize
	}

	switch opts.DNFormat {
	case "":
		opts.DNFormat = DNFormatRFC2253
	case DNFormatRFC2253, DNFormatOneline:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDNFormat, opts.DNFormat)
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = FieldNames()
	}

	x := &extractor{
		cert:   cert,
		format: opts.DNFormat,
		out:    chunk.New(opts.BufferSize),
	}
	if cert != nil {
		x.subject, _ = certview.Subject(cert)
		x.issuer, _ = certview.Issuer(cert)
	}

	r := &Report{Fields: make([]Field, 0, len(fields))}
	for _, name := range fields {
		fn, ok := x.lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}

		x.out.Reset()
		res, render := fn()
		f := Field{Name: name, Status: res.Status()}
		if res.Found() {
			f.Value = render(x.out.Bytes())
		}
		r.Fields = append(r.Fields, f)
	}
	return r, nil
}

type renderFunc func([]byte) string

type extractor struct {
	cert    *x509.Certificate
	subject *certview.Name
	issuer  *certview.Name
	format  string
	out     *chunk.Buffer
}

func text(b []byte) string { return string(b) }

func (x *extractor) lookup(name string) (func() (chunk.Result, renderFunc), bool) {
	switch name {
	case FieldPublicKey:
		return func() (chunk.Result, renderFunc) {
			return sslutils.PublicKeyAlgo(x.cert, x.out), text
		}, true
	case FieldSerial:
		return func() (chunk.Result, renderFunc) {
			return sslutils.Serial(x.cert, x.out), hex.EncodeToString
		}, true
	case FieldDERLen:
		return x.derLen, true
	case FieldNotBefore:
		return func() (chunk.Result, renderFunc) {
			return sslutils.NotBefore(x.cert, x.out), text
		}, true
	case FieldNotAfter:
		return func() (chunk.Result, renderFunc) {
			return sslutils.NotAfter(x.cert, x.out), text
		}, true
	case FieldSubject:
		return func() (chunk.Result, renderFunc) { return x.dn(x.subject), text }, true
	case FieldIssuer:
		return func() (chunk.Result, renderFunc) { return x.dn(x.issuer), text }, true
	case FieldSubjectCN:
		return func() (chunk.Result, renderFunc) {
			return sslutils.DNEntry(x.subject, "CN", -1, x.out), text
		}, true
	case FieldIssuerCN:
		return func() (chunk.Result, renderFunc) {
			return sslutils.DNEntry(x.issuer, "CN", -1, x.out), text
		}, true
	}
	return nil, false
}

// derLen writes the decimal DER length, bounded like every other field.
func (x *extractor) derLen() (chunk.Result, renderFunc) {
	n := sslutils.DERLen(x.cert)
	if n == 0 {
		return chunk.NotFound(), text
	}
	var tmp [20]byte
	digits := strconv.AppendInt(tmp[:0], int64(n), 10)
	if !x.out.Set(digits) {
		return chunk.TooSmall(), text
	}
	return chunk.Found(len(digits)), text
}

func (x *extractor) dn(name *certview.Name) chunk.Result {
	if x.format == DNFormatOneline {
		return sslutils.DNOneline(name, x.out)
	}
	return sslutils.DNFormatted(name, sslutils.FormatRFC2253, x.out)
}
