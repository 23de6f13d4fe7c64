package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kirana",
	Short: "Kirana — product catalogue service CLI",
	Long:  "Kirana serves a read-only product catalogue over HTTP and ships the batch tooling that loads it.",
}

func init() {
	// Server
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Data tooling
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(uploadImagesCmd)
}
