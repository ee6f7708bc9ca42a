// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main implements the gesuite CLI, which renders expectation suites
// into editable Jupyter notebooks.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gesuite",
	Short: "Render expectation suites as editable Jupyter notebooks",
	Long: `gesuite converts a declarative expectation suite (JSON or YAML) into a
Jupyter notebook whose cells recreate the suite, so the logic that produced
the expectations can be reviewed, adjusted, and re-run.`,
	SilenceUsage: true,
}

// newLogger builds the CLI logger. Verbose mode uses a development console
// logger; otherwise logging is off.
func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to gesuite.yaml (default: $GESUITE_CONFIG, then ./gesuite.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(templatesCmd)
}

func main() {
	// Local .env files may carry GESUITE_CONFIG; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
