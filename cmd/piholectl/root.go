package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	pihole "github.com/lexfrei/go-pihole"
	"github.com/lexfrei/go-pihole/observability"
)

var (
	flagURL      string
	flagPassword string
	flagInsecure bool
	flagVerbose  bool
	flagJSON     bool
)

var rootCmd = &cobra.Command{
	Use:   "piholectl",
	Short: "Control a Pi-hole instance from the command line",
	Long: `piholectl talks to the Pi-hole v6 admin API.

Connection settings are read from PIHOLE_* environment variables
(PIHOLE_URL, PIHOLE_PASSWORD, PIHOLE_INSECURE_SKIP_VERIFY, ...), a .env
file in the working directory, or flags. Flags win over the environment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logger := zerolog.New(os.Stderr)
		logger.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Pi-hole API base URL, e.g. http://pi.hole/api (overrides PIHOLE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "web interface password (overrides PIHOLE_PASSWORD)")
	rootCmd.PersistentFlags().BoolVarP(&flagInsecure, "insecure", "k", false, "skip TLS certificate verification")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output raw JSON instead of human-readable text")
}

// newClient builds a client from the environment and flags.
func newClient() (*pihole.Client, error) {
	// A missing .env file is fine; explicit environment still applies.
	_ = godotenv.Load()

	cfg, err := pihole.ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	if flagURL != "" {
		cfg.BaseURL = flagURL
	}
	if flagPassword != "" {
		cfg.Password = flagPassword
	}
	if flagInsecure {
		cfg.InsecureSkipVerify = true
	}

	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	cfg.Logger = observability.NewZerolog(zl)

	return pihole.NewWithConfig(cfg)
}
