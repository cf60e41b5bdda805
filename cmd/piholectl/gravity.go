package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gravityCmd = &cobra.Command{
	Use:   "gravity",
	Short: "Rebuild the gravity database from subscribed lists",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Logout(cmd.Context())

		fmt.Println("Rebuilding gravity, this can take a while...")
		reply, err := client.RunGravity(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Gravity: %s (%.1fs)\n", reply.Status, reply.Took)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gravityCmd)
}
