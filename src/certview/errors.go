// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certview

import "errors"

var (
	// ErrNilCertificate is returned when a nil certificate is passed in.
	ErrNilCertificate = errors.New("certview: nil certificate")

	// ErrMalformedTBS indicates that the TBSCertificate DER could not be walked.
	ErrMalformedTBS = errors.New("certview: malformed TBSCertificate")

	// ErrMalformedName indicates that a distinguished name DER could not be walked.
	ErrMalformedName = errors.New("certview: malformed distinguished name")

	// ErrNoSerial indicates that the certificate carries no serial number.
	ErrNoSerial = errors.New("certview: certificate has no serial number")
)
