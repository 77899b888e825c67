// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsutil

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// DefaultPort is the port used when an address carries none.
const DefaultPort = 443

// ErrNoPeerCertificate is returned by [FetchPeer] when the server presented no
// certificate.
var ErrNoPeerCertificate = errors.New("tlsutil: no certificates received from server")

// NormalizeAddress returns address as host:port, adding [DefaultPort] when
// address has no port.
func NormalizeAddress(address string) (string, error) {
	if address == "" {
		return "", errors.New("tlsutil: empty address")
	}
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		// Bare host or bracketed IPv6 literal without a port.
		host = address
		if len(host) > 1 && host[0] == '[' && host[len(host)-1] == ']' {
			host = host[1 : len(host)-1]
		}
		return net.JoinHostPort(host, strconv.Itoa(DefaultPort)), nil
	}
	if host == "" {
		return "", fmt.Errorf("tlsutil: missing host in %q", address)
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return "", fmt.Errorf("tlsutil: invalid port in %q", address)
	}
	return address, nil
}

// FetchPeer dials address, completes a TLS handshake and returns the peer's leaf
// certificate together with every certificate it presented.
//
// The chain is not verified; the point is to look at what the server sends.
// The connection is closed before FetchPeer returns. The caller owns one
// reference of the returned handle.
func FetchPeer(ctx context.Context, address string, timeout time.Duration) (*Ref, []*x509.Certificate, error) {
	addr, err := NormalizeAddress(address)
	if err != nil {
		return nil, nil, err
	}

	// The session is attached to the connection once the handshake is done; until
	// then it only collects what verification saw.
	sess := NewSession(nil)
	defer sess.Release()

	host, _, _ := net.SplitHostPort(addr)
	cfg := &tls.Config{
		// We just want the presented certificates, not to verify them.
		InsecureSkipVerify:    true,
		VerifyPeerCertificate: sess.StashVerifiedPeer,
	}
	if net.ParseIP(host) == nil {
		cfg.ServerName = host
	}

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: timeout},
		Config:    cfg,
	}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.NetDialer.Deadline = deadline
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("tlsutil: failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	tlsConn := conn.(*tls.Conn)
	sess.conn = tlsConn

	ref := PeerCertificate(sess)
	if ref == nil {
		return nil, nil, ErrNoPeerCertificate
	}
	return ref, tlsConn.ConnectionState().PeerCertificates, nil
}
