package pihole

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
)

// envConfig mirrors ClientConfig for environment-based construction.
type envConfig struct {
	URL                string        `envconfig:"URL"`
	Password           string        `envconfig:"PASSWORD"`
	SessionID          string        `envconfig:"SESSION_ID"`
	CSRFToken          string        `envconfig:"CSRF_TOKEN"`
	Timeout            time.Duration `envconfig:"TIMEOUT"`
	MaxRetries         int           `envconfig:"MAX_RETRIES"`
	RetryDelayBase     time.Duration `envconfig:"RETRY_DELAY_BASE"`
	RetryDelayMax      time.Duration `envconfig:"RETRY_DELAY_MAX"`
	BackoffMultiplier  float64       `envconfig:"BACKOFF_MULTIPLIER"`
	DisableAutoRefresh bool          `envconfig:"DISABLE_AUTO_REFRESH"`
	RefreshThreshold   time.Duration `envconfig:"REFRESH_THRESHOLD"`
	InsecureSkipVerify bool          `envconfig:"INSECURE_SKIP_VERIFY"`
}

// ConfigFromEnv builds a ClientConfig from PIHOLE_* environment variables:
// PIHOLE_URL, PIHOLE_PASSWORD, PIHOLE_TIMEOUT, PIHOLE_MAX_RETRIES,
// PIHOLE_INSECURE_SKIP_VERIFY, and so on. Unset variables leave the
// corresponding defaults in place.
func ConfigFromEnv() (*ClientConfig, error) {
	var env envConfig
	if err := envconfig.Process("PIHOLE", &env); err != nil {
		return nil, errors.Wrap(err, "failed to read PIHOLE_* environment")
	}

	return &ClientConfig{
		BaseURL:            env.URL,
		Password:           env.Password,
		SessionID:          env.SessionID,
		CSRFToken:          env.CSRFToken,
		Timeout:            env.Timeout,
		MaxRetries:         env.MaxRetries,
		RetryDelayBase:     env.RetryDelayBase,
		RetryDelayMax:      env.RetryDelayMax,
		BackoffMultiplier:  env.BackoffMultiplier,
		DisableAutoRefresh: env.DisableAutoRefresh,
		RefreshThreshold:   env.RefreshThreshold,
		InsecureSkipVerify: env.InsecureSkipVerify,
	}, nil
}
