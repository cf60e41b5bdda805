package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var disableSeconds float64

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable DNS blocking",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Logout(cmd.Context())

		status, err := client.EnableBlocking(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Blocking: %s\n", status.Blocking)
		return nil
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable DNS blocking, optionally for a limited time",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Logout(cmd.Context())

		status, err := client.DisableBlocking(cmd.Context(), disableSeconds)
		if err != nil {
			return err
		}
		fmt.Printf("Blocking: %s\n", status.Blocking)
		if status.Timer != nil {
			fmt.Printf("Re-enables in: %.0fs\n", *status.Timer)
		}
		return nil
	},
}

func init() {
	disableCmd.Flags().Float64Var(&disableSeconds, "for", 0, "seconds until blocking re-enables (0 = permanent)")
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}
