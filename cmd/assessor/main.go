// Package main provides the candidate assessment CLI: single assessments and
// full pool rankings from JSON documents.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "assessor",
	Short: "Candidate assessment and ranking engine",
	Long:  "Assessor scores candidate profiles against job requirements through a deterministic pipeline: data quality gate, eligibility rules, weighted field scoring, contextual adjustments, confidence intervals, growth analysis and hiring recommendations.",
}

var (
	flagConfig   string
	flagVerbose  bool
	flagJSONLogs bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to an engine configuration file (defaults apply when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit logs as JSON")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
