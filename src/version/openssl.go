// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package version

import (
	"fmt"
	"math"
	"strings"
)

// OpenSSLVersion is a version packed the way OPENSSL_VERSION_NUMBER is:
//
//	MNNFFPPS: major(4) minor(8) fix(8) patch(8) status(4)
//
// Status is 0 for development builds, 1 to 14 for betas and 0xf for releases.
// The zero value means the version could not be parsed.
//
// See https://www.openssl.org/docs/man1.1.1/man3/OPENSSL_VERSION_NUMBER.html.
type OpenSSLVersion uint32

const (
	// StatusDevelopment is the status of any non-beta pre-release.
	StatusDevelopment = 0x0
	// StatusRelease is the status of a release or lettered patch release.
	StatusRelease = 0xf

	maxBeta = 14
)

// ParseOpenSSL packs s into an [OpenSSLVersion], returning 0 when s is not a
// version of the form "major.minor.fix" optionally followed by "-suffix" or by
// patch letters.
//
// Examples:
//
//	0x0090821f  0.9.8zh
//	0x1000215f  1.0.2u
//	0x30000000  3.0.0-alpha17
//	0x30000002  3.0.0-beta2
//	0x3000000e  3.0.0-beta14
//	0x3000000f  3.0.0
func ParseOpenSSL(s string) OpenSSLVersion {
	if s == "" {
		return 0
	}

	major, rest := parseNumber(s)
	if major < 0 || major > 0xf || !strings.HasPrefix(rest, ".") {
		return 0
	}

	minor, rest := parseNumber(rest[1:])
	if minor < 0 || minor > 0xff || !strings.HasPrefix(rest, ".") {
		return 0
	}

	fix, rest := parseNumber(rest[1:])
	if fix < 0 || fix > 0xff {
		return 0
	}

	var patch, status uint32
	switch {
	case rest == "":
		status = StatusRelease
	case rest[0] == '-':
		// Only betas count, every other pre-release is a development build.
		if after, ok := strings.CutPrefix(rest[1:], "beta"); ok {
			beta, _ := parseNumber(after)
			if beta < 0 || beta > maxBeta {
				return 0
			}
			status = uint32(beta)
		}
	default:
		patch = 1
		for i := 0; i < len(rest); i++ {
			patch += uint32(rest[i]&^0x20) - 'A'
		}
		status = StatusRelease
	}

	return OpenSSLVersion(uint32(major)<<28 |
		uint32(minor)<<20 |
		uint32(fix)<<12 |
		(patch&0xff)<<4 |
		status&0xf)
}

// parseNumber reads a base-10 integer from the front of s the way strtol does:
// leading spaces and a sign are accepted, and a string without digits yields 0
// with nothing consumed. Values beyond the int64 range saturate.
func parseNumber(s string) (int64, string) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	var n int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int64(s[i] - '0')
		if n > (math.MaxInt64-d)/10 {
			n = math.MaxInt64
			continue
		}
		n = n*10 + d
	}
	if i == start {
		return 0, s
	}
	if neg {
		n = -n
	}
	return n, s[i:]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Major returns the major version number.
func (v OpenSSLVersion) Major() int { return int(v >> 28 & 0xf) }

// Minor returns the minor version number.
func (v OpenSSLVersion) Minor() int { return int(v >> 20 & 0xff) }

// Fix returns the fix version number.
func (v OpenSSLVersion) Fix() int { return int(v >> 12 & 0xff) }

// Patch returns the patch counter, 0 for a release without patch letters.
func (v OpenSSLVersion) Patch() int { return int(v >> 4 & 0xff) }

// Status returns the status nibble.
func (v OpenSSLVersion) Status() int { return int(v & 0xf) }

// IsRelease reports whether v is a release or patch release.
func (v OpenSSLVersion) IsRelease() bool { return v.Status() == StatusRelease }

// IsBeta reports whether v is a beta pre-release.
func (v OpenSSLVersion) IsBeta() bool { return v.Status() > 0 && v.Status() <= maxBeta }

// String returns v in the hexadecimal notation of OPENSSL_VERSION_NUMBER.
func (v OpenSSLVersion) String() string { return fmt.Sprintf("0x%08x", uint32(v)) }
