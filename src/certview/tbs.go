// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certview

import (
	"crypto/x509"
	"math/big"
	"time"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// TimeKind is the ASN.1 type a validity time was encoded with.
type TimeKind uint8

const (
	// TimeUnknown is any encoding other than UTCTime or GeneralizedTime.
	TimeUnknown TimeKind = iota
	// UTCTime is a two-digit-year time, YYMMDDHHMMSSZ.
	UTCTime
	// GeneralizedTime is a four-digit-year time, YYYYMMDDHHMMSSZ.
	GeneralizedTime
)

// String returns the ASN.1 type name.
func (k TimeKind) String() string {
	switch k {
	case UTCTime:
		return "UTCTime"
	case GeneralizedTime:
		return "GeneralizedTime"
	default:
		return "unknown"
	}
}

// Time is a validity time as it appears on the wire: its ASN.1 type and the
// textual payload, with no year or century interpretation.
type Time struct {
	Kind TimeKind
	Raw  []byte
}

// tbsFields holds the TBSCertificate fields this package reports.
type tbsFields struct {
	serial    []byte
	notBefore Time
	notAfter  Time
}

// parseTBS walks a TBSCertificate up to the end of its validity.
func parseTBS(der []byte) (tbsFields, error) {
	var f tbsFields

	input := cryptobyte.String(der)
	var tbs cryptobyte.String
	if !input.ReadASN1(&tbs, cbasn1.SEQUENCE) {
		return f, ErrMalformedTBS
	}

	if !tbs.SkipOptionalASN1(cbasn1.Tag(0).Constructed().ContextSpecific()) {
		return f, ErrMalformedTBS
	}

	var serial cryptobyte.String
	if !tbs.ReadASN1(&serial, cbasn1.INTEGER) {
		return f, ErrMalformedTBS
	}
	f.serial = serial

	// signature algorithm, issuer
	if !tbs.SkipASN1(cbasn1.SEQUENCE) || !tbs.SkipASN1(cbasn1.SEQUENCE) {
		return f, ErrMalformedTBS
	}

	var validity cryptobyte.String
	if !tbs.ReadASN1(&validity, cbasn1.SEQUENCE) {
		return f, ErrMalformedTBS
	}

	var ok bool
	if f.notBefore, ok = readTime(&validity); !ok {
		return f, ErrMalformedTBS
	}
	if f.notAfter, ok = readTime(&validity); !ok {
		return f, ErrMalformedTBS
	}

	return f, nil
}

func readTime(s *cryptobyte.String) (Time, bool) {
	var raw cryptobyte.String
	var tag cbasn1.Tag
	if !s.ReadAnyASN1(&raw, &tag) {
		return Time{}, false
	}

	t := Time{Raw: raw}
	switch tag {
	case cbasn1.UTCTime:
		t.Kind = UTCTime
	case cbasn1.GeneralizedTime:
		t.Kind = GeneralizedTime
	}
	return t, true
}

// encodeTime renders t the way [x509.CreateCertificate] does, for certificates
// that only exist as Go values.
func encodeTime(t time.Time) Time {
	t = t.UTC()
	if y := t.Year(); y >= 1950 && y < 2050 {
		return Time{Kind: UTCTime, Raw: []byte(t.Format("060102150405Z0700"))}
	}
	return Time{Kind: GeneralizedTime, Raw: []byte(t.Format("20060102150405Z0700"))}
}

// SerialBytes returns the magnitude of the serial number, big-endian with no
// sign padding: the leading zero byte DER adds to a positive serial with its
// high bit set is dropped, and a negative serial yields its absolute value.
// Zero is a single zero byte.
func SerialBytes(cert *x509.Certificate) ([]byte, error) {
	if cert == nil {
		return nil, ErrNilCertificate
	}

	if len(cert.RawTBSCertificate) > 0 {
		f, err := parseTBS(cert.RawTBSCertificate)
		if err != nil {
			return nil, err
		}
		if len(f.serial) == 0 {
			return nil, ErrNoSerial
		}
		return serialMagnitude(f.serial), nil
	}

	if cert.SerialNumber == nil {
		return nil, ErrNoSerial
	}
	return magnitudeBytes(cert.SerialNumber), nil
}

// serialMagnitude converts the content octets of an INTEGER to its magnitude.
func serialMagnitude(content []byte) []byte {
	if content[0]&0x80 != 0 {
		v := new(big.Int).SetBytes(content)
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(len(content))*8))
		return magnitudeBytes(v)
	}
	if len(content) > 1 && content[0] == 0 {
		return content[1:]
	}
	return content
}

func magnitudeBytes(v *big.Int) []byte {
	b := new(big.Int).Abs(v).Bytes()
	if len(b) == 0 {
		return []byte{0x00}
	}
	return b
}

// NotBefore returns the start of the validity period of cert.
func NotBefore(cert *x509.Certificate) (Time, error) {
	if cert == nil {
		return Time{}, ErrNilCertificate
	}
	if len(cert.RawTBSCertificate) == 0 {
		return encodeTime(cert.NotBefore), nil
	}
	f, err := parseTBS(cert.RawTBSCertificate)
	if err != nil {
		return Time{}, err
	}
	return f.notBefore, nil
}

// NotAfter returns the end of the validity period of cert.
func NotAfter(cert *x509.Certificate) (Time, error) {
	if cert == nil {
		return Time{}, ErrNilCertificate
	}
	if len(cert.RawTBSCertificate) == 0 {
		return encodeTime(cert.NotAfter), nil
	}
	f, err := parseTBS(cert.RawTBSCertificate)
	if err != nil {
		return Time{}, err
	}
	return f.notAfter, nil
}
