// Package main provides the entry point for the huntboard server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "huntboard",
	Short: "Huntboard job search tracker",
	Long:  "Huntboard scores job postings against your profile, ranks your network contacts for target companies, and tracks application pipeline progress via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
