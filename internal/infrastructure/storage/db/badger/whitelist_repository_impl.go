package dbbadger

import (
	"context"
	"errors"

	"github.com/timshannon/badgerhold/v4"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

// ErrWhitelistNotFound ...
var ErrWhitelistNotFound = errors.New("whitelist entry not found")

type whitelistRepositoryImpl struct {
	store *badgerhold.Store
}

func newWhitelistRepositoryImpl(store *badgerhold.Store) domain.WhitelistRepository {
	return whitelistRepositoryImpl{store: store}
}

func (w whitelistRepositoryImpl) AddWhitelist(
	_ context.Context, wl *domain.Whitelist,
) error {
	return w.store.Upsert("wl:"+wl.Address, *wl)
}

func (w whitelistRepositoryImpl) GetWhitelist(
	_ context.Context, address string,
) (*domain.Whitelist, error) {
	var wl domain.Whitelist
	if err := w.store.Get("wl:"+address, &wl); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &wl, nil
}

func (w whitelistRepositoryImpl) UpdateWhitelist(
	ctx context.Context,
	address string, updateFn func(wl *domain.Whitelist) (*domain.Whitelist, error),
) error {
	current, err := w.GetWhitelist(ctx, address)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrWhitelistNotFound
	}

	updated, err := updateFn(current)
	if err != nil {
		return err
	}

	return w.store.Update("wl:"+address, *updated)
}
