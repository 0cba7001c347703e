package configs

import "time"

// HTTP configures the tracking server. Click redirects must answer fast, so
// the defaults keep request handling on a short leash; postback delivery has
// its own budget in the Postback section.
type HTTP struct {
	// Port is the TCP port the server listens on.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout bounds reading one inbound request.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	// WriteTimeout bounds writing one response, redirects included.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
}
