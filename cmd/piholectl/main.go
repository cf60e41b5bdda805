// piholectl is a small command-line client for the Pi-hole v6 admin API.
//
// Connection settings come from PIHOLE_* environment variables (PIHOLE_URL,
// PIHOLE_PASSWORD, and friends), optionally loaded from a .env file in the
// working directory, with flags taking precedence.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
