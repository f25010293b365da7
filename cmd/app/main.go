package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "shipdesk",
	Short: "Shipment desk service",
	Long: `shipdesk keeps per-user desks over the courier backend: the shipment
list with its fallback, the KPI tiles, cancellation and courier assignment.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newServeCmd(), newVersionCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
