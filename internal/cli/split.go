// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-gausshare.
//
// go-gausshare is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jeremyhahn/go-gausshare/pkg/bundle"
	"github.com/jeremyhahn/go-gausshare/pkg/crypto/gausshare"
)

var (
	splitSecret     string
	splitSecretHex  string
	splitSecretFile string
	splitShares     int
	splitThreshold  int
	splitPrime      string
	splitOut        string
	splitLabels     []string
)

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a secret into a threshold share bundle",
	Long: `Split a secret into N shares over GF(p), any K of which reconstruct it.

The secret may be given as a decimal integer (--secret), hex (--secret-hex),
or raw bytes from a file (--secret-file, interpreted big-endian). The prime
modulus is auto-selected to exceed the secret unless --prime is supplied.

Examples:
  # 3-of-5 split of a decimal secret, bundle to stdout
  gausshare split --secret 123456789012345678901234567890 -n 5 -k 3

  # Split a binary key file and write a YAML bundle
  gausshare split --secret-file master.key -n 6 -k 4 --out shares.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		secret, err := resolveSecret(cmd)
		if err != nil {
			handleError(err)
		}

		// Flags override config file and environment.
		total := splitShares
		if !cmd.Flags().Changed("shares") {
			total = viper.GetInt("split.shares")
		}
		threshold := splitThreshold
		if !cmd.Flags().Changed("threshold") {
			threshold = viper.GetInt("split.threshold")
		}

		var prime *big.Int
		if splitPrime != "" {
			p, ok := new(big.Int).SetString(splitPrime, 10)
			if !ok {
				handleError(fmt.Errorf("malformed --prime value %q", splitPrime))
			}
			prime = p
		}

		logger.Debugf("splitting %d-bit secret into %d shares, threshold %d",
			secret.BitLen(), total, threshold)

		selected, shares, err := gausshare.CreateShares(secret, total, threshold, prime)
		if err != nil {
			handleError(err)
		}

		b := bundle.New(selected, shares, threshold)
		for _, label := range splitLabels {
			key, value, found := strings.Cut(label, "=")
			if !found {
				handleError(fmt.Errorf("malformed --label %q (want key=value)", label))
			}
			b.Metadata[key] = value
		}

		if splitOut != "" {
			if err := b.Save(splitOut); err != nil {
				handleError(err)
			}
			logger.Info("wrote share bundle", "path", splitOut, "shares", total, "threshold", threshold)
			return
		}

		printer := NewPrinter(outputFormat, os.Stdout)
		if err := printer.PrintBundle(b); err != nil {
			handleError(err)
		}
	},
}

// resolveSecret builds the secret integer from whichever input flag was
// provided. Exactly one of --secret, --secret-hex, --secret-file is
// required.
func resolveSecret(cmd *cobra.Command) (*big.Int, error) {
	provided := 0
	for _, flag := range []string{"secret", "secret-hex", "secret-file"} {
		if cmd.Flags().Changed(flag) {
			provided++
		}
	}
	if provided != 1 {
		return nil, fmt.Errorf("exactly one of --secret, --secret-hex, --secret-file is required")
	}

	switch {
	case splitSecret != "":
		n, ok := new(big.Int).SetString(splitSecret, 10)
		if !ok {
			return nil, fmt.Errorf("malformed --secret value (want decimal integer)")
		}
		return n, nil
	case splitSecretHex != "":
		n, ok := new(big.Int).SetString(strings.TrimPrefix(splitSecretHex, "0x"), 16)
		if !ok {
			return nil, fmt.Errorf("malformed --secret-hex value")
		}
		return n, nil
	default:
		data, err := os.ReadFile(splitSecretFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read secret file: %w", err)
		}
		return gausshare.BytesToInteger(data), nil
	}
}

func init() {
	splitCmd.Flags().StringVar(&splitSecret, "secret", "", "secret as a decimal integer")
	splitCmd.Flags().StringVar(&splitSecretHex, "secret-hex", "", "secret as a hex integer")
	splitCmd.Flags().StringVar(&splitSecretFile, "secret-file", "", "file whose bytes are the secret (big-endian)")
	splitCmd.Flags().IntVarP(&splitShares, "shares", "n", 5, "total number of shares to create")
	splitCmd.Flags().IntVarP(&splitThreshold, "threshold", "k", 3, "shares required to reconstruct")
	splitCmd.Flags().StringVar(&splitPrime, "prime", "", "prime modulus in decimal (auto-selected when omitted)")
	splitCmd.Flags().StringVar(&splitOut, "out", "", "write the bundle to this file (.json or .yaml)")
	splitCmd.Flags().StringArrayVar(&splitLabels, "label", nil, "bundle metadata as key=value (repeatable)")
}
