package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show installed Pi-hole component versions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Logout(cmd.Context())

		info, err := client.GetVersion(cmd.Context())
		if err != nil {
			return err
		}

		if flagJSON {
			return json.NewEncoder(os.Stdout).Encode(info)
		}

		fmt.Printf("Core: %s (latest %s)\n", info.Version.Core.Local.Version, info.Version.Core.Remote.Version)
		fmt.Printf("Web:  %s (latest %s)\n", info.Version.Web.Local.Version, info.Version.Web.Remote.Version)
		fmt.Printf("FTL:  %s (latest %s)\n", info.Version.FTL.Local.Version, info.Version.FTL.Remote.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
