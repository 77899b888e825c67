// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// tls-cert-metadata is a command-line tool that extracts X.509 certificate
// metadata into fixed-capacity buffers, the way a TLS proxy does when it
// exposes certificate details to its rules and logs.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-cert-metadata/cmd/tls-cert-metadata@latest
//
// # Usage
//
//	tls-cert-metadata (-f INPUT_CERT | -r HOST[:PORT]) [FLAGS]
//	tls-cert-metadata openssl-version VERSION
//	tls-cert-metadata exclude-grease HEX
//
// # Flags
//
//	-f, --file          Input certificate file (PEM, DER or PKCS7), "-" for stdin
//	-r, --remote        Fetch the certificate presented by HOST[:PORT]
//	-c, --config        Config file (JSON or YAML), defaults to $TLS_CERT_METADATA_CONFIG
//	-o, --output        Destination file (default: stdout)
//	    --json          Emit the report as JSON
//	    --table         Emit the report as a markdown table
//	    --chain         Report every certificate, not only the first
//	    --buffer-size   Per-field buffer capacity in bytes
//	    --dn-format     Subject and issuer format: rfc2253 or oneline
//	    --fields        Comma-separated fields to report
//
// # Examples
//
// Show the metadata of a leaf certificate:
//
//	tls-cert-metadata -f cert.pem
//
// See which fields survive a 32 byte buffer:
//
//	tls-cert-metadata -f cert.pem --buffer-size 32 --table
//
// Inspect what a server presents:
//
//	tls-cert-metadata -r example.com --chain --json
//
// Pack an OpenSSL version string:
//
//	tls-cert-metadata openssl-version 1.1.1w
package main
