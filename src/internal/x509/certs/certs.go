// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrEmptyInput indicates that no data was provided.
	ErrEmptyInput = errors.New("x509certs: empty input")

	// ErrInvalidBlockType indicates that a PEM input holds no certificate-bearing block.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")

	// ErrInvalidBase64 indicates that text input is neither PEM nor base64.
	ErrInvalidBase64 = errors.New("x509certs: input is neither PEM nor base64")
)

// PEM block types carrying certificates.
const (
	BlockCertificate        = "CERTIFICATE"
	BlockTrustedCertificate = "TRUSTED CERTIFICATE"
	BlockPKCS7              = "PKCS7"
)

// Decoder decodes certificates from the input formats of the metadata tools.
//
// A Decoder holds no mutable state and is safe for concurrent use.
type Decoder struct {
	blockTypes map[string]bool
}

// New creates a Decoder accepting CERTIFICATE, TRUSTED CERTIFICATE and PKCS7
// PEM blocks.
func New() *Decoder {
	return &Decoder{
		blockTypes: map[string]bool{
			BlockCertificate:        true,
			BlockTrustedCertificate: true,
			BlockPKCS7:              true,
		},
	}
}

// IsPEM checks if the data starts with a PEM block, ignoring leading text.
func (d *Decoder) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// Decode returns the first certificate found in data.
func (d *Decoder) Decode(data []byte) (*x509.Certificate, error) {
	certs, err := d.DecodeAll(data)
	if err != nil {
		return nil, err
	}
	return certs[0], nil
}

// DecodeAll decodes every certificate in data, in input order. PEM blocks of
// other types (keys, CSRs) are skipped. The result is never empty when err is nil.
func (d *Decoder) DecodeAll(data []byte) ([]*x509.Certificate, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	if d.IsPEM(data) {
		return d.decodePEM(data)
	}
	return decodeBinary(data)
}

func (d *Decoder) decodePEM(data []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate
	for {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		data = rest

		if !d.blockTypes[block.Type] {
			continue
		}

		var (
			found []*x509.Certificate
			err   error
		)
		if block.Type == BlockPKCS7 {
			found, err = decodePKCS7(block.Bytes)
		} else {
			found, err = parseCertificates(block.Bytes)
		}
		if err != nil {
			return nil, err
		}
		certs = append(certs, found...)
	}

	if len(certs) == 0 {
		return nil, ErrInvalidBlockType
	}
	return certs, nil
}

// decodeBinary handles DER certificates and DER PKCS7 bags.
func decodeBinary(der []byte) ([]*x509.Certificate, error) {
	certs, err := parseCertificates(der)
	if err == nil {
		return certs, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	if p7, p7err := decodePKCS7(der); p7err == nil {
		return p7, nil
	} else if errors.Is(p7err, ErrNoCertificatesInPKCS) {
		return nil, p7err
	}
	return nil, err
}

func parseCertificates(der []byte) ([]*x509.Certificate, error) {
	certs, err := x509.ParseCertificates(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseCertificate, err)
	}
	if len(certs) == 0 {
		return nil, ErrParseCertificate
	}
	return certs, nil
}

func decodePKCS7(der []byte) ([]*x509.Certificate, error) {
	p, err := pkcs7.ParsePKCS7(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsePKCS7, err)
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}
	return p.Content.SignedData.Certificates, nil
}

// DecodeString decodes the first certificate from text input: a PEM document, or
// the base64 encoding of DER or PKCS7 data (standard or URL alphabet, padding
// optional, whitespace ignored).
func (d *Decoder) DecodeString(s string) (*x509.Certificate, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyInput
	}
	if d.IsPEM([]byte(s)) {
		return d.Decode([]byte(s))
	}

	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
	compact = strings.TrimRight(compact, "=")

	for _, enc := range []*base64.Encoding{base64.RawStdEncoding, base64.RawURLEncoding} {
		if der, err := enc.DecodeString(compact); err == nil {
			return d.Decode(der)
		}
	}
	return nil, ErrInvalidBase64
}

// ReadFile decodes the first certificate stored in the named file.
func (d *Decoder) ReadFile(name string) (*x509.Certificate, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("x509certs: %w", err)
	}
	return d.Decode(data)
}
