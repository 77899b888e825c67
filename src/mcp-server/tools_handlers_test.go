// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/config"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/testcert"
)

type jsonField struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Value  string `json:"value"`
}

type jsonReport struct {
	Fields []jsonField `json:"fields"`
}

func (r jsonReport) value(name string) (string, string) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Status, f.Value
		}
	}
	return "", ""
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// resultText joins the text content of result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	var content string
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			content += tc.Text
		}
	}
	return content
}

func pemOf(certs ...*x509.Certificate) string {
	var out []byte
	for _, c := range certs {
		out = append(out, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: c.Raw})...)
	}
	return string(out)
}

// serveTLS starts a TLS listener presenting cert and returns its host and port.
func serveTLS(t *testing.T, cn string) (string, int) {
	t.Helper()
	key := testcert.ECKey(t)
	cert := testcert.Issue(t, testcert.Template(cn), key)

	ln, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{
		Certificates: []tls.Certificate{{
			Certificate: [][]byte{cert.Raw},
			PrivateKey:  key,
			Leaf:        cert,
		}},
	})
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func() {
				defer conn.Close()
				conn.(*tls.Conn).Handshake()
			}()
		}
	}()

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	return host, p
}

func TestHandleExtractCertMetadata(t *testing.T) {
	leaf := testcert.New(t, "leaf.test")
	other := testcert.New(t, "other.test")

	bundle := filepath.Join(t.TempDir(), "bundle.pem")
	require.NoError(t, os.WriteFile(bundle, []byte(pemOf(leaf, other)), 0o600))

	cfg := config.Default()

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "PEM text",
			testFunc: func(t *testing.T) {
				result, err := handleExtractCertMetadata(context.Background(), callRequest("extract_cert_metadata", map[string]any{
					"certificate": pemOf(leaf),
				}), cfg)
				require.NoError(t, err)
				require.False(t, result.IsError, resultText(t, result))

				var r jsonReport
				require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &r))
				assert.Len(t, r.Fields, 9)

				status, value := r.value("subject_cn")
				assert.Equal(t, "found", status)
				assert.Equal(t, "leaf.test", value)
				_, value = r.value("pkey_algo")
				assert.Equal(t, "EC256", value)
				_, value = r.value("serial")
				assert.Equal(t, "1234", value)
				_, value = r.value("der_len")
				assert.Equal(t, strconv.Itoa(len(leaf.Raw)), value)
				_, value = r.value("subject")
				assert.Equal(t, "CN=leaf.test", value)
			},
		},
		{
			name: "Base64 DER with field selection",
			testFunc: func(t *testing.T) {
				result, err := handleExtractCertMetadata(context.Background(), callRequest("extract_cert_metadata", map[string]any{
					"certificate": base64.StdEncoding.EncodeToString(leaf.Raw),
					"fields":      "issuer_cn, serial",
				}), cfg)
				require.NoError(t, err)

				var r jsonReport
				require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &r))
				require.Len(t, r.Fields, 2)
				assert.Equal(t, "issuer_cn", r.Fields[0].Name)
				assert.Equal(t, "leaf.test", r.Fields[0].Value)
				assert.Equal(t, "serial", r.Fields[1].Name)
			},
		},
		{
			name: "File bundle as chain",
			testFunc: func(t *testing.T) {
				result, err := handleExtractCertMetadata(context.Background(), callRequest("extract_cert_metadata", map[string]any{
					"certificate": bundle,
					"fields":      "subject_cn",
					"chain":       true,
				}), cfg)
				require.NoError(t, err)

				var reports []jsonReport
				require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &reports))
				require.Len(t, reports, 2)
				_, first := reports[0].value("subject_cn")
				_, second := reports[1].value("subject_cn")
				assert.Equal(t, "leaf.test", first)
				assert.Equal(t, "other.test", second)
			},
		},
		{
			name: "File bundle without chain reports the first certificate",
			testFunc: func(t *testing.T) {
				result, err := handleExtractCertMetadata(context.Background(), callRequest("extract_cert_metadata", map[string]any{
					"certificate": bundle,
					"fields":      "subject_cn",
				}), cfg)
				require.NoError(t, err)

				var r jsonReport
				require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &r))
				_, value := r.value("subject_cn")
				assert.Equal(t, "leaf.test", value)
			},
		},
		{
			name: "Small buffer",
			testFunc: func(t *testing.T) {
				result, err := handleExtractCertMetadata(context.Background(), callRequest("extract_cert_metadata", map[string]any{
					"certificate": pemOf(leaf),
					"buffer_size": 4,
					"fields":      "serial,subject_cn,der_len",
				}), cfg)
				require.NoError(t, err)

				var r jsonReport
				require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &r))
				status, value := r.value("serial")
				assert.Equal(t, "found", status)
				assert.Equal(t, "1234", value)
				status, value = r.value("subject_cn")
				assert.Equal(t, "too small", status)
				assert.Empty(t, value)
				status, _ = r.value("der_len")
				assert.Equal(t, "found", status)
			},
		},
		{
			name: "Oneline DN",
			testFunc: func(t *testing.T) {
				result, err := handleExtractCertMetadata(context.Background(), callRequest("extract_cert_metadata", map[string]any{
					"certificate": pemOf(leaf),
					"dn_format":   "oneline",
					"fields":      "issuer",
				}), cfg)
				require.NoError(t, err)

				var r jsonReport
				require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &r))
				_, value := r.value("issuer")
				assert.Equal(t, "/CN=leaf.test", value)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestHandleExtractCertMetadata_Errors(t *testing.T) {
	leaf := testcert.New(t, "leaf.test")
	cfg := config.Default()

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{name: "Missing certificate", args: map[string]any{}, want: "certificate parameter required"},
		{name: "Garbage input", args: map[string]any{"certificate": "not a certificate!"}, want: "failed to decode certificate"},
		{name: "Zero buffer", args: map[string]any{"certificate": pemOf(leaf), "buffer_size": 0}, want: "invalid buffer size"},
		{name: "Negative buffer", args: map[string]any{"certificate": pemOf(leaf), "buffer_size": -8}, want: "invalid buffer size"},
		{name: "Unknown field", args: map[string]any{"certificate": pemOf(leaf), "fields": "fingerprint"}, want: "unknown field"},
		{name: "Unknown DN format", args: map[string]any{"certificate": pemOf(leaf), "dn_format": "ldap"}, want: "unknown DN format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleExtractCertMetadata(context.Background(), callRequest("extract_cert_metadata", tt.args), cfg)
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.want)
		})
	}
}

func TestHandleFetchRemoteMetadata(t *testing.T) {
	host, port := serveTLS(t, "remote.test")
	cfg := config.Default()

	t.Run("Leaf", func(t *testing.T) {
		result, err := handleFetchRemoteMetadata(context.Background(), callRequest("fetch_remote_metadata", map[string]any{
			"hostname": host,
			"port":     port,
			"fields":   "subject_cn,pkey_algo",
		}), cfg)
		require.NoError(t, err)
		require.False(t, result.IsError, resultText(t, result))

		var r jsonReport
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &r))
		_, cn := r.value("subject_cn")
		_, algo := r.value("pkey_algo")
		assert.Equal(t, "remote.test", cn)
		assert.Equal(t, "EC256", algo)
	})

	t.Run("Chain", func(t *testing.T) {
		result, err := handleFetchRemoteMetadata(context.Background(), callRequest("fetch_remote_metadata", map[string]any{
			"hostname": host,
			"port":     port,
			"fields":   "subject_cn",
			"chain":    true,
		}), cfg)
		require.NoError(t, err)

		var reports []jsonReport
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &reports))
		require.Len(t, reports, 1)
	})

	t.Run("Errors", func(t *testing.T) {
		tests := []struct {
			name string
			args map[string]any
			want string
		}{
			{name: "Missing hostname", args: map[string]any{}, want: "hostname parameter required"},
			{name: "Invalid port", args: map[string]any{"hostname": host, "port": 70000}, want: "invalid port"},
			{name: "Refused", args: map[string]any{"hostname": "127.0.0.1", "port": 1}, want: "failed to fetch remote certificate"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result, err := handleFetchRemoteMetadata(context.Background(), callRequest("fetch_remote_metadata", tt.args), cfg)
				require.NoError(t, err)
				assert.True(t, result.IsError)
				assert.Contains(t, resultText(t, result), tt.want)
			})
		}
	})
}

func TestHandleParseOpenSSLVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		number  string
		release bool
		beta    bool
	}{
		{name: "Patch letters", version: "0.9.8zh", number: "0x0090821f", release: true},
		{name: "Release", version: "3.0.0", number: "0x3000000f", release: true},
		{name: "Beta", version: "3.0.0-beta2", number: "0x30000002", beta: true},
		{name: "Alpha", version: "3.0.0-alpha17", number: "0x30000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleParseOpenSSLVersion(context.Background(), callRequest("parse_openssl_version", map[string]any{
				"version": tt.version,
			}))
			require.NoError(t, err)
			require.False(t, result.IsError, resultText(t, result))

			var got map[string]any
			require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
			assert.Equal(t, tt.version, got["version"])
			assert.Equal(t, tt.number, got["number"])
			assert.Equal(t, tt.release, got["release"])
			assert.Equal(t, tt.beta, got["beta"])
		})
	}

	t.Run("Unparsable", func(t *testing.T) {
		result, err := handleParseOpenSSLVersion(context.Background(), callRequest("parse_openssl_version", map[string]any{
			"version": "3.0.0-beta15",
		}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "failed to parse OpenSSL version")
	})

	t.Run("Missing", func(t *testing.T) {
		result, err := handleParseOpenSSLVersion(context.Background(), callRequest("parse_openssl_version", nil))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}

func TestHandleExcludeGREASE(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    string
		wantErr bool
	}{
		{name: "Mixed", hex: "0a0a13011a1a1302", want: "13011302"},
		{name: "Separators", hex: "0a:0a 13:01", want: "1301"},
		{name: "Only GREASE", hex: "2a2afafa", want: ""},
		{name: "Invalid", hex: "xyz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleExcludeGREASE(context.Background(), callRequest("exclude_tls_grease", map[string]any{
				"hex": tt.hex,
			}))
			require.NoError(t, err)
			if tt.wantErr {
				assert.True(t, result.IsError)
				return
			}
			require.False(t, result.IsError, resultText(t, result))
			assert.Equal(t, tt.want, resultText(t, result))
		})
	}
}
