package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to an explicit configuration file (--config)
var cfgFile string

// verbose enables debug logging
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "saleslens",
	Short: "SalesLens - sales transaction enrichment and analytics pipeline",
	Long: `SalesLens reads sales transactions from a delimited text file, validates
and cleans them, enriches each record with product metadata from the catalog
API, and writes an enriched dataset plus a sales analytics report.

Example Usage:
  saleslens run                          # run the full pipeline
  saleslens run --region south           # only transactions from one region
  saleslens stub-api --port 9090         # serve a local catalog for offline runs`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the configuration file (default: search ., ./config, /etc/saleslens)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
}
