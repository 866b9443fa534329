package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

const configKey = "config"

type configRepositoryImpl struct {
	store *badgerhold.Store
}

func newConfigRepositoryImpl(store *badgerhold.Store) domain.ConfigRepository {
	return configRepositoryImpl{store: store}
}

func (c configRepositoryImpl) GetConfig(_ context.Context) (*domain.Config, error) {
	var cfg domain.Config
	if err := c.store.Get(configKey, &cfg); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrConfigNotInitialized
		}
		return nil, err
	}
	if !cfg.Initialized {
		return nil, domain.ErrConfigNotInitialized
	}
	return &cfg, nil
}

func (c configRepositoryImpl) UpdateConfig(
	_ context.Context, updateFn func(cfg *domain.Config) (*domain.Config, error),
) error {
	current := domain.Config{}
	if err := c.store.Get(configKey, &current); err != nil && err != badgerhold.ErrNotFound {
		return err
	}

	updated, err := updateFn(&current)
	if err != nil {
		return err
	}

	return c.store.Upsert(configKey, *updated)
}
