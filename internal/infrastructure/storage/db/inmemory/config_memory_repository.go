package inmemory

import (
	"context"
	"sync"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

type configRepository struct {
	lock   sync.RWMutex
	config *domain.Config
}

func (r *configRepository) GetConfig(_ context.Context) (*domain.Config, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.config == nil || !r.config.Initialized {
		return nil, domain.ErrConfigNotInitialized
	}
	cfg := *r.config
	return &cfg, nil
}

func (r *configRepository) UpdateConfig(
	_ context.Context, updateFn func(c *domain.Config) (*domain.Config, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	current := domain.Config{}
	if r.config != nil {
		current = *r.config
	}

	updated, err := updateFn(&current)
	if err != nil {
		return err
	}

	r.config = updated
	return nil
}
