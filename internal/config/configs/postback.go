package configs

import "time"

// Postback configures outbound postback delivery. Timeout bounds each HTTP
// attempt; MaxAttempts bounds retries for transient failures.
type Postback struct {
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"15s"`
	MaxAttempts int           `env:"MAX_ATTEMPTS" envDefault:"3"`
}
