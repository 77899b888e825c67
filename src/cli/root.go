// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/config"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/helper/posix"
	x509certs "github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/logger"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/report"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/tlsutil"
)

// defaultName is the usage name when the executable name is unknown.
const defaultName = "tls-cert-metadata"

var (
	// ErrInputRequired indicates that neither --file nor --remote was given.
	ErrInputRequired = errors.New("cli: one of --file or --remote is required")

	// ErrConflictingInput indicates that both --file and --remote were given.
	ErrConflictingInput = errors.New("cli: --file and --remote are mutually exclusive")

	// ErrConflictingFormat indicates that both --json and --table were given.
	ErrConflictingFormat = errors.New("cli: --json and --table are mutually exclusive")
)

// options holds the flags of the root command.
type options struct {
	file       string
	remote     string
	configPath string
	output     string
	jsonOut    bool
	tableOut   bool
	chain      bool
	bufferSize int
	dnFormat   string
	fields     []string
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewCommand(version, log).ExecuteContext(ctx)
}

// NewCommand builds the root command and its subcommands.
func NewCommand(version string, log logger.Logger) *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:   posix.ExecutableName(defaultName),
		Short: "Extract X.509 certificate metadata into bounded buffers",
		Long: `Extract X.509 certificate metadata the way a TLS proxy fetches it: every field
is written into a buffer of fixed capacity, and a field that does not fit is
reported as too small instead of being grown.`,
		Example:       examples("-f cert.pem", "-f bundle.pem --chain --table", "-r example.com --buffer-size 32 --json"),
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, log)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&o.file, "file", "f", "", `certificate file (PEM, DER or PKCS7), "-" for stdin`)
	flags.StringVarP(&o.remote, "remote", "r", "", "fetch the certificate presented by host[:port]")
	flags.StringVarP(&o.configPath, "config", "c", "", "config file (JSON or YAML), defaults to $"+config.EnvFile)
	flags.StringVarP(&o.output, "output", "o", "", "write the report to OUTPUT_FILE (default: stdout)")
	flags.BoolVar(&o.jsonOut, "json", false, "render the report as JSON")
	flags.BoolVar(&o.tableOut, "table", false, "render the report as a markdown table")
	flags.BoolVar(&o.chain, "chain", false, "report every certificate in the input or presented by the server")
	flags.IntVar(&o.bufferSize, "buffer-size", 0, "per-field buffer capacity in bytes (overrides config)")
	flags.StringVar(&o.dnFormat, "dn-format", "", "subject and issuer format: rfc2253 or oneline (overrides config)")
	flags.StringSliceVar(&o.fields, "fields", nil, "comma-separated fields to report (overrides config)")

	rootCmd.AddCommand(newOpenSSLVersionCommand(), newGREASECommand())
	return rootCmd
}

func (o *options) run(cmd *cobra.Command, log logger.Logger) error {
	switch {
	case o.file == "" && o.remote == "":
		return ErrInputRequired
	case o.file != "" && o.remote != "":
		return ErrConflictingInput
	case o.jsonOut && o.tableOut:
		return ErrConflictingFormat
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("buffer-size") {
		cfg.BufferSize = o.bufferSize
	}
	if flags.Changed("dn-format") {
		cfg.DNFormat = o.dnFormat
	}
	if flags.Changed("fields") {
		cfg.Fields = o.fields
	}

	certs, release, err := o.certificates(cmd, cfg, log)
	if err != nil {
		return err
	}
	defer release()

	reports := make([]*report.Report, 0, len(certs))
	for _, cert := range certs {
		r, err := report.Extract(cert, cfg.ReportOptions())
		if err != nil {
			return err
		}
		reports = append(reports, r)
	}

	return o.write(cmd.OutOrStdout(), reports, log)
}

// certificates loads the input. The returned release func must be called once
// the certificates are no longer used.
func (o *options) certificates(cmd *cobra.Command, cfg *config.Config, log logger.Logger) ([]*x509.Certificate, func(), error) {
	if o.remote != "" {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
		defer cancel()

		ref, presented, err := tlsutil.FetchPeer(ctx, o.remote, cfg.Timeout())
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Fetched %d certificate(s) from %s", len(presented), o.remote)

		release := func() { ref.Release() }
		if o.chain {
			return presented, release, nil
		}
		return []*x509.Certificate{ref.Certificate()}, release, nil
	}

	var (
		data []byte
		err  error
	)
	if o.file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(o.file)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error reading input file: %w", err)
	}

	certs, err := x509certs.New().DecodeAll(data)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding certificate: %w", err)
	}
	log.Printf("Decoded %d certificate(s) from %s", len(certs), o.file)

	if !o.chain {
		certs = certs[:1]
	}
	return certs, func() {}, nil
}

func (o *options) write(stdout io.Writer, reports []*report.Report, log logger.Logger) error {
	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	var err error
	switch {
	case o.jsonOut:
		err = report.WriteJSON(buf, reports...)
	case o.tableOut:
		err = report.WriteTable(buf, reports...)
	default:
		err = report.WriteText(buf, reports...)
	}
	if err != nil {
		return err
	}

	if o.output != "" {
		if err := os.WriteFile(o.output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("error writing to output file: %w", err)
		}
		log.Printf("Report written to %s", o.output)
		return nil
	}
	_, err = stdout.Write(buf.Bytes())
	return err
}
