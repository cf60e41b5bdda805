package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current DNS blocking state",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Logout(cmd.Context())

		status, err := client.GetBlocking(cmd.Context())
		if err != nil {
			return err
		}

		if flagJSON {
			return json.NewEncoder(os.Stdout).Encode(status)
		}

		fmt.Printf("Blocking: %s\n", status.Blocking)
		if status.Timer != nil {
			fmt.Printf("Reverts in: %.0fs\n", *status.Timer)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
