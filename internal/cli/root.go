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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jeremyhahn/go-gausshare/pkg/logging"
)

var (
	cfgFile      string
	outputFormat string
	verbose      bool

	logger *logging.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gausshare",
	Short: "Shamir secret sharing over GF(p) with Gaussian-elimination recovery",
	Long: `gausshare splits secrets into threshold share sets over a prime field
and reconstructs them by solving the share system with Gaussian
elimination modulo p.

Shares and the (public) prime modulus travel together as a bundle file
in JSON or YAML format. The secret never appears in a bundle.

Use 'gausshare split' to create a share bundle from a secret.
Use 'gausshare combine' to reconstruct a secret from shares.
Use 'gausshare prime' to search for and test prime moduli.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME/.gausshare")
			viper.AddConfigPath(".")
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}

		// Read config file if it exists
		if err := viper.ReadInConfig(); err == nil && verbose {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}

		// Environment variables
		viper.SetEnvPrefix("GAUSSHARE")
		viper.AutomaticEnv()

		logger = logging.NewLogger(verbose)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	viper.SetDefault("split.shares", 5)
	viper.SetDefault("split.threshold", 3)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.gausshare/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text",
		"output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(combineCmd)
	rootCmd.AddCommand(primeCmd)
	rootCmd.AddCommand(versionCmd)
}

// handleError prints an error and exits with code 1
func handleError(err error) {
	printer := NewPrinter(outputFormat, os.Stderr)
	_ = printer.PrintError(err)
	os.Exit(1)
}
