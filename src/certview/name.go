// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certview

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// String tags that cryptobyte/asn1 does not name.
const (
	tagNumericString   = cbasn1.Tag(18)
	tagVisibleString   = cbasn1.Tag(26)
	tagUniversalString = cbasn1.Tag(28)
	tagBMPString       = cbasn1.Tag(30)
)

// Entry is a single attribute of a distinguished name.
type Entry struct {
	// OID is the attribute type.
	OID asn1.ObjectIdentifier
	// Tag is the ASN.1 tag of the value. Zero is treated as UTF8String.
	Tag cbasn1.Tag
	// Value holds the raw content octets of the attribute value.
	Value []byte
	// Set is the index of the relative distinguished name holding the entry.
	// Entries sharing a Set form a multi-valued RDN.
	Set int

	short string
}

// NewEntry returns a UTF8String entry for oid.
func NewEntry(oid asn1.ObjectIdentifier, value string) Entry {
	return Entry{OID: oid, Tag: cbasn1.UTF8String, Value: []byte(value)}
}

// ShortName returns the registered short name of the attribute type (for example
// "CN" or "emailAddress"), or its dotted OID text when none is registered.
func (e Entry) ShortName() string {
	if e.short != "" {
		return e.short
	}
	return shortName(e.OID)
}

func shortName(oid asn1.ObjectIdentifier) string {
	s := oid.String()
	if sn, ok := shortNames[s]; ok {
		return sn
	}
	return s
}

// decodedValue converts the raw value into what pkix expects in an
// AttributeTypeAndValue: a string for textual types, a RawValue otherwise.
func (e Entry) decodedValue() (any, error) {
	switch e.Tag {
	case 0, cbasn1.UTF8String, cbasn1.PrintableString, cbasn1.IA5String, cbasn1.T61String,
		tagNumericString, tagVisibleString:
		return string(e.Value), nil
	case tagBMPString:
		b, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(e.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: BMPString: %w", ErrMalformedName, err)
		}
		return string(b), nil
	case tagUniversalString:
		b, err := utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder().Bytes(e.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: UniversalString: %w", ErrMalformedName, err)
		}
		return string(b), nil
	default:
		return asn1.RawValue{
			Class:      int(e.Tag >> 6),
			Tag:        int(e.Tag & 0x1f),
			IsCompound: e.Tag&0x20 != 0,
			Bytes:      e.Value,
		}, nil
	}
}

// Name is an ordered view of a distinguished name. The order is the encoding order
// and is preserved by every formatter.
type Name struct {
	raw     []byte
	entries []Entry
}

// NewName builds a Name from entries, each one forming its own RDN.
func NewName(entries ...Entry) *Name {
	n := &Name{entries: make([]Entry, len(entries))}
	for i, e := range entries {
		e.Set = i
		e.short = shortName(e.OID)
		n.entries[i] = e
	}
	return n
}

// ParseName walks the DER encoding of an X.501 Name.
// The returned entries alias der.
func ParseName(der []byte) (*Name, error) {
	input := cryptobyte.String(der)
	var rdns cryptobyte.String
	if !input.ReadASN1(&rdns, cbasn1.SEQUENCE) || !input.Empty() {
		return nil, ErrMalformedName
	}

	n := &Name{raw: der}
	for set := 0; !rdns.Empty(); set++ {
		var rdn cryptobyte.String
		if !rdns.ReadASN1(&rdn, cbasn1.SET) {
			return nil, ErrMalformedName
		}
		for !rdn.Empty() {
			var atav cryptobyte.String
			if !rdn.ReadASN1(&atav, cbasn1.SEQUENCE) {
				return nil, ErrMalformedName
			}

			var oid asn1.ObjectIdentifier
			if !atav.ReadASN1ObjectIdentifier(&oid) {
				return nil, ErrMalformedName
			}

			var value cryptobyte.String
			var tag cbasn1.Tag
			if !atav.ReadAnyASN1(&value, &tag) {
				return nil, ErrMalformedName
			}

			n.entries = append(n.entries, Entry{
				OID:   oid,
				Tag:   tag,
				Value: value,
				Set:   set,
				short: shortName(oid),
			})
		}
	}

	return n, nil
}

// Subject returns the subject name of cert.
func Subject(cert *x509.Certificate) (*Name, error) {
	if cert == nil {
		return nil, ErrNilCertificate
	}
	return nameOf(cert.RawSubject, cert.Subject)
}

// Issuer returns the issuer name of cert.
func Issuer(cert *x509.Certificate) (*Name, error) {
	if cert == nil {
		return nil, ErrNilCertificate
	}
	return nameOf(cert.RawIssuer, cert.Issuer)
}

// nameOf prefers the raw encoding and only re-encodes the decoded name for
// certificates that were never serialized.
func nameOf(raw []byte, decoded pkix.Name) (*Name, error) {
	if len(raw) == 0 {
		der, err := asn1.Marshal(decoded.ToRDNSequence())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedName, err)
		}
		raw = der
	}
	return ParseName(raw)
}

// Len returns the number of entries.
func (n *Name) Len() int { return len(n.entries) }

// Entry returns the i-th entry in encoding order.
func (n *Name) Entry(i int) Entry { return n.entries[i] }

// Entries returns all entries in encoding order. The slice must not be modified.
func (n *Name) Entries() []Entry { return n.entries }

// Raw returns the DER the name was parsed from, or nil for names built with [NewName].
func (n *Name) Raw() []byte { return n.raw }

// RDNSequence regroups the entries into the form understood by [pkix.RDNSequence.String],
// which renders RFC 2253 text.
func (n *Name) RDNSequence() (pkix.RDNSequence, error) {
	seq := make(pkix.RDNSequence, 0, len(n.entries))
	set := -1
	for _, e := range n.entries {
		v, err := e.decodedValue()
		if err != nil {
			return nil, err
		}
		atv := pkix.AttributeTypeAndValue{Type: e.OID, Value: v}
		if len(seq) == 0 || e.Set != set {
			seq = append(seq, pkix.RelativeDistinguishedNameSET{atv})
			set = e.Set
			continue
		}
		seq[len(seq)-1] = append(seq[len(seq)-1], atv)
	}
	return seq, nil
}
