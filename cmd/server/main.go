// Package main is the entry point for the equipment calculator server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SoerenD/equipment-calculator-web/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "equipment-calculator",
	Short: "Equipment Calculator Server",
	Long:  `Equipment Calculator exposes an HTTP API that finds the best equipment combination for a unit under weight, forge and element constraints.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
