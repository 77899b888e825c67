// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsutil

import (
	"crypto/x509"
	"sync/atomic"
)

// Ref is a shared, reference-counted handle on a certificate.
//
// A new Ref holds one reference. Each [Ref.UpRef] adds one and each [Ref.Release]
// drops one; once the count reaches zero the handle forgets the certificate.
//
// Ref is safe for concurrent use by multiple goroutines.
type Ref struct {
	cert atomic.Pointer[x509.Certificate]
	refs atomic.Int32
}

// NewRef returns a handle on cert holding a single reference.
func NewRef(cert *x509.Certificate) *Ref {
	r := &Ref{}
	r.cert.Store(cert)
	r.refs.Store(1)
	return r
}

// Certificate returns the certificate, or nil once every reference was released.
func (r *Ref) Certificate() *x509.Certificate { return r.cert.Load() }

// UpRef takes an additional reference and returns r.
func (r *Ref) UpRef() *Ref {
	r.refs.Add(1)
	return r
}

// Release drops one reference and reports whether it was the last one.
// Releasing more references than were taken panics.
func (r *Ref) Release() bool {
	n := r.refs.Add(-1)
	switch {
	case n < 0:
		panic("tlsutil: Ref released more times than referenced")
	case n == 0:
		r.cert.Store(nil)
		return true
	default:
		return false
	}
}

// Refs returns the current reference count.
func (r *Ref) Refs() int { return int(r.refs.Load()) }
