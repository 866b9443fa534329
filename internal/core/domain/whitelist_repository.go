package domain

import "context"

// WhitelistRepository is the abstraction for any kind of database intended
// to persist per-identity whitelist entries.
type WhitelistRepository interface {
	// AddWhitelist adds a new entry, overwriting any previous one for the
	// same address.
	AddWhitelist(ctx context.Context, wl *Whitelist) error
	// GetWhitelist returns the entry of an address, or nil if there is none.
	GetWhitelist(ctx context.Context, address string) (*Whitelist, error)
	// UpdateWhitelist updates the entry of an address through a closure.
	UpdateWhitelist(
		ctx context.Context,
		address string, updateFn func(wl *Whitelist) (*Whitelist, error),
	) error
}
