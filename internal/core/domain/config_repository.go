package domain

import "context"

// ConfigRepository is the abstraction for any kind of database intended to
// persist the engine Config singleton.
type ConfigRepository interface {
	// GetConfig returns the stored config, or ErrConfigNotInitialized.
	GetConfig(ctx context.Context) (*Config, error)
	// UpdateConfig updates the stored config through a closure. The closure
	// receives a zero-value config if none was stored yet.
	UpdateConfig(
		ctx context.Context, updateFn func(c *Config) (*Config, error),
	) error
}
