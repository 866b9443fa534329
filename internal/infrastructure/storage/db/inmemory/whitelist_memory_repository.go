package inmemory

import (
	"context"
	"sync"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

type whitelistRepository struct {
	lock    sync.RWMutex
	entries map[string]domain.Whitelist
}

func (r *whitelistRepository) AddWhitelist(
	_ context.Context, wl *domain.Whitelist,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.entries[wl.Address] = *wl
	return nil
}

func (r *whitelistRepository) GetWhitelist(
	_ context.Context, address string,
) (*domain.Whitelist, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	wl, ok := r.entries[address]
	if !ok {
		return nil, nil
	}
	return &wl, nil
}

func (r *whitelistRepository) UpdateWhitelist(
	_ context.Context,
	address string, updateFn func(wl *domain.Whitelist) (*domain.Whitelist, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	current, ok := r.entries[address]
	if !ok {
		return ErrWhitelistNotFound
	}

	updated, err := updateFn(&current)
	if err != nil {
		return err
	}

	r.entries[address] = *updated
	return nil
}
