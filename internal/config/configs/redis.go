package configs

// Redis configures the shared sampling-quota counter store. When Addr is
// empty the tracker falls back to an in-process counter, which is only safe
// for single-instance deployments.
type Redis struct {
	// Addr is the host:port of the Redis server. Empty disables Redis.
	Addr string `env:"ADDR" envDefault:""`
	// Password is the optional AUTH password.
	Password string `env:"PASSWORD" envDefault:""`
	// DB selects the logical Redis database.
	DB int `env:"DB" envDefault:"0"`
}
