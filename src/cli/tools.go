// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-cert-metadata/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/tlsutil"
	"github.com/H0llyW00dzZ/tls-cert-metadata/src/version"
)

// ErrUnparsableVersion indicates a version string the OpenSSL parser rejects.
var ErrUnparsableVersion = errors.New("cli: unparsable OpenSSL version")

func newOpenSSLVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "openssl-version VERSION",
		Short:   "Pack an OpenSSL version string into its OPENSSL_VERSION_NUMBER form",
		Example: examples("openssl-version 1.1.1w", "openssl-version 3.0.0-beta2"),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := version.ParseOpenSSL(args[0])
			if v == 0 {
				return fmt.Errorf("%w: %q", ErrUnparsableVersion, args[0])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

func newGREASECommand() *cobra.Command {
	return &cobra.Command{
		Use:     "exclude-grease HEX",
		Short:   "Drop GREASE (RFC 8701) codepoints from a hex list of 2-byte values",
		Example: examples("exclude-grease 0a0a13011a1a", "exclude-grease 'ca:ca:13:02'"),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := tlsutil.ExcludeGREASEHex(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

// examples prefixes each invocation with the executable name, one per line.
func examples(invocations ...string) string {
	name := posix.ExecutableName(defaultName)
	lines := make([]string, len(invocations))
	for i, inv := range invocations {
		lines[i] = "  " + name + " " + inv
	}
	return strings.Join(lines, "\n")
}
