// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsutil

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/chunk"
)

// IsGREASE reports whether the two-byte codepoint hi,lo is a GREASE value
// (0x0A0A, 0x1A1A, ... 0xFAFA).
func IsGREASE(hi, lo byte) bool { return hi == lo && hi&0x0f == 0x0a }

// ExcludeGREASE appends input to out with every GREASE codepoint removed and
// returns the number of bytes appended.
//
// input is read as a list of big-endian two-byte codepoints. Copying stops
// without error once out has fewer than two bytes of room left. When input has
// odd length, its last byte is then copied if one byte of room remains, even when
// pairs were skipped for lack of room. Existing data in out is kept.
func ExcludeGREASE(input []byte, out *chunk.Buffer) int {
	n, _ := excludeGREASE(input, out)
	return n
}

// excludeGREASE is ExcludeGREASE also reporting whether every pair fit in out.
func excludeGREASE(input []byte, out *chunk.Buffer) (int, bool) {
	start := out.Len()

	complete := true
	for ptr := 0; ptr+1 < len(input); ptr += 2 {
		if IsGREASE(input[ptr], input[ptr+1]) {
			continue
		}
		if out.Room() < 2 {
			complete = false
			break
		}
		out.Append(input[ptr : ptr+2])
	}

	if len(input)%2 == 1 && !out.AppendByte(input[len(input)-1]) {
		complete = false
	}
	return out.Len() - start, complete
}

// ExcludeGREASEHex is [ExcludeGREASE] over a hex encoded codepoint list, such as
// a JA3 component or a captured ClientHello field. ':' separators and whitespace
// are ignored; the result is lowercase hex without separators.
func ExcludeGREASEHex(s string) (string, error) {
	input, err := decodeHex(s)
	if err != nil {
		return "", err
	}
	out := chunk.New(len(input))
	ExcludeGREASE(input, out)
	return hex.EncodeToString(out.Bytes()), nil
}

func decodeHex(s string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ':', ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: invalid hex input: %w", err)
	}
	return b, nil
}
