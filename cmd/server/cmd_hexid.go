package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"thermonet.xyz/thermonet-service/pkg/spatial"
)

var hexidCmd = &cobra.Command{
	Use:   "hexid <lat> <lng>",
	Short: "Print the spatial key of a coordinate",
	Args:  cobra.ExactArgs(2),
	RunE:  runHexID,
}

func init() {
	rootCmd.AddCommand(hexidCmd)
}

func runHexID(cmd *cobra.Command, args []string) error {
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q: %w", args[0], err)
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q: %w", args[1], err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), spatial.KeyFor(spatial.HexEncoder{}, &lat, &lng))
	return nil
}
