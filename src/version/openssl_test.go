// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/version"
)

func TestParseOpenSSL(t *testing.T) {
	tests := []struct {
		in   string
		want version.OpenSSLVersion
	}{
		{in: "0.9.8zh", want: 0x0090821f},
		{in: "1.0.2u", want: 0x1000215f},
		{in: "1.1.1w", want: 0x1010117f},
		{in: "3.0.0-alpha17", want: 0x30000000},
		{in: "3.0.0-beta2", want: 0x30000002},
		{in: "3.0.0-beta14", want: 0x3000000e},
		{in: "3.0.0", want: 0x3000000f},
		{in: "3.5.255", want: 0x350ff00f},
		{in: "15.255.255", want: 0xfffff00f},
		{in: "3.0.0-beta", want: 0x30000000},
		{in: "3.0.0-dev", want: 0x30000000},
		{in: "1..2", want: 0x1000200f},

		{in: "", want: 0},
		{in: "1", want: 0},
		{in: "1.0", want: 0},
		{in: "16.0.0", want: 0},
		{in: "1.256.0", want: 0},
		{in: "1.0.256", want: 0},
		{in: "-1.0.0", want: 0},
		{in: "1.-1.0", want: 0},
		{in: "3.0.0-beta15", want: 0},
		{in: "99999999999999999999999.0.0", want: 0},
		{in: "v3.0.0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, version.ParseOpenSSL(tt.in), "got %s want %s",
				version.ParseOpenSSL(tt.in), tt.want)
		})
	}
}

func TestOpenSSLVersionFields(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Patch release",
			testFunc: func(t *testing.T) {
				v := version.ParseOpenSSL("1.0.2u")
				assert.Equal(t, 1, v.Major())
				assert.Equal(t, 0, v.Minor())
				assert.Equal(t, 2, v.Fix())
				assert.Equal(t, 21, v.Patch())
				assert.Equal(t, version.StatusRelease, v.Status())
				assert.True(t, v.IsRelease())
				assert.False(t, v.IsBeta())
				assert.Equal(t, "0x1000215f", v.String())
			},
		},
		{
			name: "Beta",
			testFunc: func(t *testing.T) {
				v := version.ParseOpenSSL("3.0.0-beta2")
				assert.Equal(t, 3, v.Major())
				assert.Equal(t, 0, v.Patch())
				assert.Equal(t, 2, v.Status())
				assert.True(t, v.IsBeta())
				assert.False(t, v.IsRelease())
			},
		},
		{
			name: "Development",
			testFunc: func(t *testing.T) {
				v := version.ParseOpenSSL("3.0.0-alpha17")
				assert.Equal(t, version.StatusDevelopment, v.Status())
				assert.False(t, v.IsBeta())
				assert.False(t, v.IsRelease())
			},
		},
		{
			name: "Ordering follows release order",
			testFunc: func(t *testing.T) {
				ordered := []string{"1.0.2", "1.0.2a", "1.0.2u", "1.1.0", "3.0.0-beta1", "3.0.0-beta2", "3.0.0"}
				for i := 1; i < len(ordered); i++ {
					assert.Less(t, version.ParseOpenSSL(ordered[i-1]), version.ParseOpenSSL(ordered[i]),
						"%s < %s", ordered[i-1], ordered[i])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}
