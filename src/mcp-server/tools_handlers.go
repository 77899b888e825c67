// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/config"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/report"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/tlsutil"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/version"
)

// handleExtractCertMetadata extracts metadata from a certificate given as a
// file path, PEM text or base64-encoded DER.
//
// A file may hold a bundle; unless chain is set only its first certificate is
// reported. Buffer size, DN format and field selection default to config.
func handleExtractCertMetadata(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	opts, err := reportOptions(request, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	certs, err := readCertificates(certInput)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate: %v", err)), nil
	}
	if !request.GetBool("chain", false) {
		certs = certs[:1]
	}

	return extractReports(certs, opts)
}

// handleFetchRemoteMetadata connects to hostname:port, takes the certificates
// the server presents and extracts metadata from the leaf, or from every
// presented certificate when chain is set.
func handleFetchRemoteMetadata(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	hostname, err := request.RequireString("hostname")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("hostname parameter required: %v", err)), nil
	}
	port := request.GetInt("port", tlsutil.DefaultPort)
	if port <= 0 || port > 65535 {
		return mcp.NewToolResultError(fmt.Sprintf("invalid port: %d", port)), nil
	}

	opts, err := reportOptions(request, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	ref, presented, err := tlsutil.FetchPeer(ctx, net.JoinHostPort(hostname, strconv.Itoa(port)), cfg.Timeout())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch remote certificate: %v", err)), nil
	}
	defer ref.Release()

	certs := []*x509.Certificate{ref.Certificate()}
	if request.GetBool("chain", false) {
		certs = presented
	}

	return extractReports(certs, opts)
}

// handleParseOpenSSLVersion packs an OpenSSL version string and reports its
// decoded fields.
func handleParseOpenSSLVersion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("version")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("version parameter required: %v", err)), nil
	}

	v := version.ParseOpenSSL(input)
	if v == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("failed to parse OpenSSL version %q", input)), nil
	}

	result := map[string]any{
		"version": input,
		"number":  v.String(),
		"decimal": uint32(v),
		"major":   v.Major(),
		"minor":   v.Minor(),
		"fix":     v.Fix(),
		"patch":   v.Patch(),
		"status":  v.Status(),
		"release": v.IsRelease(),
		"beta":    v.IsBeta(),
	}
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleExcludeGREASE strips GREASE codepoints from a hex encoded list.
func handleExcludeGREASE(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("hex")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("hex parameter required: %v", err)), nil
	}

	filtered, err := tlsutil.ExcludeGREASEHex(input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(filtered), nil
}

// handleGetResourceUsage reports runtime statistics in JSON or markdown.
func handleGetResourceUsage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	detailed := request.GetBool("detailed", false)
	format := request.GetString("format", "json")

	data := CollectResourceUsage(detailed)
	switch format {
	case "json":
		out, err := FormatResourceUsageAsJSON(data)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	case "markdown":
		out, err := FormatResourceUsageAsMarkdown(data)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format: %s", format)), nil
	}
}

// reportOptions starts from the configured options and applies the
// per-call overrides of request.
func reportOptions(request mcp.CallToolRequest, cfg *config.Config) (report.Options, error) {
	opts := cfg.ReportOptions()

	opts.BufferSize = request.GetInt("buffer_size", opts.BufferSize)
	if opts.BufferSize <= 0 {
		return opts, fmt.Errorf("%w: %d", report.ErrInvalidBufferSize, opts.BufferSize)
	}
	opts.DNFormat = request.GetString("dn_format", opts.DNFormat)

	if fields := request.GetString("fields", ""); fields != "" {
		opts.Fields = nil
		for name := range strings.SplitSeq(fields, ",") {
			if name = strings.TrimSpace(name); name != "" {
				opts.Fields = append(opts.Fields, name)
			}
		}
	}
	return opts, nil
}

// readCertificates reads certInput as a file if one exists at that path and
// decodes the text itself otherwise: a PEM bundle, or one base64 certificate.
func readCertificates(certInput string) ([]*x509.Certificate, error) {
	decoder := x509certs.New()
	if data, err := os.ReadFile(certInput); err == nil {
		return decoder.DecodeAll(data)
	}
	if decoder.IsPEM([]byte(certInput)) {
		return decoder.DecodeAll([]byte(certInput))
	}

	cert, err := decoder.DecodeString(certInput)
	if err != nil {
		return nil, err
	}
	return []*x509.Certificate{cert}, nil
}

// extractReports runs the extraction over certs and returns the reports as
// JSON text.
func extractReports(certs []*x509.Certificate, opts report.Options) (*mcp.CallToolResult, error) {
	reports := make([]*report.Report, 0, len(certs))
	for _, cert := range certs {
		r, err := report.Extract(cert, opts)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to extract metadata: %v", err)), nil
		}
		stats.record(r)
		reports = append(reports, r)
	}

	buf := gc.Default.Get()
	defer gc.Default.Put(buf)
	if err := report.WriteJSON(buf, reports...); err != nil {
		return nil, fmt.Errorf("failed to render metadata: %w", err)
	}
	return mcp.NewToolResultText(buf.String()), nil
}
