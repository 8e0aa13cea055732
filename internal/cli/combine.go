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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-gausshare/pkg/bundle"
	"github.com/jeremyhahn/go-gausshare/pkg/crypto/gausshare"
)

var (
	combineBundle   string
	combineIndices  string
	combineShares   []string
	combinePrime    string
	combineStrict   bool
	combineBytesOut string
)

// combineCmd represents the combine command
var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Reconstruct a secret from shares",
	Long: `Reconstruct a secret from a share bundle or from raw shares.

With --bundle, shares are read from a bundle file; --indices picks which
shares to use (the first K otherwise). Raw shares can instead be passed as
repeated --share x:y pairs together with --prime.

The number of shares supplied must equal the threshold the bundle was
created with; --strict enforces this and rejects duplicates.

Examples:
  # Recover using shares 1, 3 and 5 from a bundle
  gausshare combine --bundle shares.yaml --indices 1,3,5

  # Recover from raw shares
  gausshare combine --prime 340282366920938463463374607431768211507 \
      --share 1:2675232... --share 2:163268... --share 3:8978687...

  # Write the secret bytes to a file
  gausshare combine --bundle shares.json --bytes-out master.key`,
	Run: func(cmd *cobra.Command, args []string) {
		secret, err := runCombine(cmd)
		if err != nil {
			handleError(err)
		}

		if combineBytesOut != "" {
			data, err := gausshare.IntegerToBytes(secret, 0)
			if err != nil {
				handleError(err)
			}
			if err := os.WriteFile(combineBytesOut, data, 0600); err != nil {
				handleError(fmt.Errorf("failed to write secret bytes: %w", err))
			}
			logger.Info("wrote recovered secret", "path", combineBytesOut, "bytes", len(data))
			return
		}

		printer := NewPrinter(outputFormat, os.Stdout)
		if err := printer.PrintSecret(secret.String()); err != nil {
			handleError(err)
		}
	},
}

func runCombine(cmd *cobra.Command) (*big.Int, error) {
	if combineBundle == "" && len(combineShares) == 0 {
		return nil, fmt.Errorf("either --bundle or --share is required")
	}
	if combineBundle != "" && len(combineShares) > 0 {
		return nil, fmt.Errorf("--bundle and --share are mutually exclusive")
	}

	if combineBundle != "" {
		return combineFromBundle()
	}
	return combineFromRawShares()
}

func combineFromBundle() (*big.Int, error) {
	b, err := bundle.Load(combineBundle)
	if err != nil {
		return nil, err
	}
	prime, err := b.PrimeInt()
	if err != nil {
		return nil, err
	}

	var shares []*gausshare.Share
	if combineIndices != "" {
		indices, err := parseIndices(combineIndices)
		if err != nil {
			return nil, err
		}
		shares, err = b.Select(indices...)
		if err != nil {
			return nil, err
		}
	} else {
		all, err := b.All()
		if err != nil {
			return nil, err
		}
		if len(all) < b.Threshold {
			return nil, fmt.Errorf("bundle holds %d shares, threshold is %d", len(all), b.Threshold)
		}
		shares = all[:b.Threshold]
	}

	logger.Debugf("reconstructing from %d shares, threshold %d", len(shares), b.Threshold)

	if combineStrict {
		return gausshare.RecoverSecretStrict(shares, b.Threshold, prime)
	}
	return gausshare.RecoverSecret(shares, prime)
}

func combineFromRawShares() (*big.Int, error) {
	if combinePrime == "" {
		return nil, fmt.Errorf("--prime is required with raw --share pairs")
	}
	prime, ok := new(big.Int).SetString(combinePrime, 10)
	if !ok {
		return nil, fmt.Errorf("malformed --prime value %q", combinePrime)
	}

	shares := make([]*gausshare.Share, len(combineShares))
	for i, raw := range combineShares {
		share, err := parseRawShare(raw)
		if err != nil {
			return nil, err
		}
		shares[i] = share
	}

	if combineStrict {
		return gausshare.RecoverSecretStrict(shares, len(shares), prime)
	}
	return gausshare.RecoverSecret(shares, prime)
}

// parseRawShare parses an x:y pair of decimal integers.
func parseRawShare(raw string) (*gausshare.Share, error) {
	xs, ys, found := strings.Cut(raw, ":")
	if !found {
		return nil, fmt.Errorf("malformed --share %q (want x:y)", raw)
	}
	x, ok := new(big.Int).SetString(xs, 10)
	if !ok {
		return nil, fmt.Errorf("malformed share x-coordinate %q", xs)
	}
	y, ok := new(big.Int).SetString(ys, 10)
	if !ok {
		return nil, fmt.Errorf("malformed share y-coordinate %q", ys)
	}
	share := &gausshare.Share{X: x, Y: y}
	if err := share.Validate(); err != nil {
		return nil, err
	}
	return share, nil
}

func parseIndices(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("malformed --indices entry %q", part)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

func init() {
	combineCmd.Flags().StringVar(&combineBundle, "bundle", "", "share bundle file (.json or .yaml)")
	combineCmd.Flags().StringVar(&combineIndices, "indices", "", "comma-separated share indices to use from the bundle")
	combineCmd.Flags().StringArrayVar(&combineShares, "share", nil, "raw share as x:y in decimal (repeatable)")
	combineCmd.Flags().StringVar(&combinePrime, "prime", "", "prime modulus in decimal (required with --share)")
	combineCmd.Flags().BoolVar(&combineStrict, "strict", false, "require the share count to match the threshold exactly")
	combineCmd.Flags().StringVar(&combineBytesOut, "bytes-out", "", "write the secret as big-endian bytes to this file")
}
