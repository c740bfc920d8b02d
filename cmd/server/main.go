package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "thermonet",
	Short: "ThermoNet - crowd-sourced temperature readings service",
	Long: `ThermoNet collects temperature readings from phones acting as sensors,
keeps a bounded window of them and serves dashboard views over HTTP and gRPC.`,
	// running without a subcommand starts the server
	RunE: runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
