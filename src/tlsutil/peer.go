// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsutil

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"sync"
)

// ConnectionStater is the part of [tls.Conn] a Session reads.
type ConnectionStater interface {
	ConnectionState() tls.ConnectionState
}

// Session pairs a TLS connection with the auxiliary data recorded while it was
// being verified.
//
// Session is safe for concurrent use by multiple goroutines.
type Session struct {
	conn ConnectionStater

	mu      sync.Mutex
	stashed *Ref
}

// NewSession returns a Session for conn. conn may be nil for sessions that only
// carry stashed data.
func NewSession(conn ConnectionStater) *Session {
	return &Session{conn: conn}
}

// Stash records ref as the session's client certificate, taking over the
// caller's reference. A previously stashed reference is released.
func (s *Session) Stash(ref *Ref) {
	s.mu.Lock()
	old := s.stashed
	s.stashed = ref
	s.mu.Unlock()

	if old != nil {
		old.Release()
	}
}

// StashVerifiedPeer has the signature of [tls.Config.VerifyPeerCertificate] and
// stashes the leaf the peer presented. It never rejects a handshake on its own
// account beyond an unparseable leaf.
//
// Example:
//
//	cfg := base.Clone()
//	conn := tls.Server(raw, cfg)
//	sess := tlsutil.NewSession(conn)
//	cfg.VerifyPeerCertificate = sess.StashVerifiedPeer
func (s *Session) StashVerifiedPeer(rawCerts [][]byte, verifiedChains [][]*x509.Certificate) error {
	if len(verifiedChains) > 0 && len(verifiedChains[0]) > 0 {
		s.Stash(NewRef(verifiedChains[0][0]))
		return nil
	}
	if len(rawCerts) == 0 {
		return nil
	}

	leaf, err := x509.ParseCertificate(rawCerts[0])
	if err != nil {
		return fmt.Errorf("tlsutil: failed to parse peer certificate: %w", err)
	}
	s.Stash(NewRef(leaf))
	return nil
}

// Release drops the stashed reference, if any.
func (s *Session) Release() { s.Stash(nil) }

// PeerCertificate returns the certificate presented by the peer of s.
//
// The connection's own peer certificates are consulted first. When the connection
// has none, for example on a resumed session, the certificate stashed during
// verification is returned with its reference count raised so that it outlives a
// concurrent [Session.Release]. The caller owns one reference of the returned
// handle and must release it. A nil result means no peer certificate was presented.
func PeerCertificate(s *Session) *Ref {
	if s == nil {
		return nil
	}

	if s.conn != nil {
		if certs := s.conn.ConnectionState().PeerCertificates; len(certs) > 0 && certs[0] != nil {
			return NewRef(certs[0])
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stashed == nil {
		return nil
	}
	return s.stashed.UpRef()
}
