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

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-gausshare/pkg/crypto/gausshare"
)

var primeStart string

// primeCmd represents the prime command
var primeCmd = &cobra.Command{
	Use:   "prime",
	Short: "Search for and test prime moduli",
	Long: `Utilities for the prime moduli used by the sharing scheme.

'prime next' finds the smallest prime at or above a starting point, the
same search used when auto-selecting a modulus. 'prime check' runs the
deterministic Miller-Rabin test on a candidate.

Examples:
  gausshare prime next --start 1000000000000
  gausshare prime check 170141183460469231731687303715884105727`,
}

var primeNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Find the smallest prime >= the starting value",
	Run: func(cmd *cobra.Command, args []string) {
		start, ok := new(big.Int).SetString(primeStart, 10)
		if !ok {
			handleError(fmt.Errorf("malformed --start value %q", primeStart))
		}

		p := gausshare.NextPrime(start)

		printer := NewPrinter(outputFormat, os.Stdout)
		if err := printer.PrintMap(map[string]interface{}{
			"start": start.String(),
			"prime": p.String(),
		}); err != nil {
			handleError(err)
		}
	},
}

var primeCheckCmd = &cobra.Command{
	Use:   "check <candidate>",
	Short: "Test a candidate for primality",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		candidate, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			handleError(fmt.Errorf("malformed candidate %q", args[0]))
		}

		printer := NewPrinter(outputFormat, os.Stdout)
		if err := printer.PrintMap(map[string]interface{}{
			"candidate": candidate.String(),
			"is_prime":  gausshare.IsProbablePrime(candidate),
		}); err != nil {
			handleError(err)
		}
	},
}

func init() {
	primeNextCmd.Flags().StringVar(&primeStart, "start", "2", "starting value in decimal")

	primeCmd.AddCommand(primeNextCmd)
	primeCmd.AddCommand(primeCheckCmd)
}
