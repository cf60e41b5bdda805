package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show dashboard query statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Logout(cmd.Context())

		summary, err := client.GetSummary(cmd.Context())
		if err != nil {
			return err
		}

		if flagJSON {
			return json.NewEncoder(os.Stdout).Encode(summary)
		}

		fmt.Printf("Queries:        %d\n", summary.Queries.Total)
		fmt.Printf("Blocked:        %d (%.1f%%)\n", summary.Queries.Blocked, summary.Queries.PercentBlocked)
		fmt.Printf("Unique domains: %d\n", summary.Queries.UniqueDomains)
		fmt.Printf("Clients:        %d active / %d total\n", summary.Clients.Active, summary.Clients.Total)
		fmt.Printf("Gravity:        %d domains blocked\n", summary.Gravity.DomainsBeingBlocked)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
